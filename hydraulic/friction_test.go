package hydraulic

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := NewCatalog(DefaultMaterials())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return cat
}

func water() Fluid {
	return Fluid{Density: 1000, KinematicViscosity: 1.004e-6, VaporPressure: 2338}
}

// flowForReynolds builds a flow rate that lands exactly on the requested
// Reynolds number for the given diameter and viscosity.
func flowForReynolds(re, diameter, viscosity float64) float64 {
	v := re * viscosity / diameter
	return v * math.Pi * diameter * diameter / 4.0
}

func TestComputeFrictionLossRegimes(t *testing.T) {
	cat := testCatalog(t)
	leg := PipeLeg{Diameter: 0.05, Length: 10, Material: "pvc"}
	fluid := water()

	tests := []struct {
		name   string
		re     float64
		regime FlowRegime
	}{
		{"laminar", 1500, RegimeLaminar},
		{"transitional", 3000, RegimeTransitional},
		{"turbulent", 50000, RegimeTurbulent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow := flowForReynolds(tt.re, leg.Diameter, fluid.KinematicViscosity)
			res, err := ComputeFrictionLoss(cat, leg, fluid, flow)
			if err != nil {
				t.Fatalf("ComputeFrictionLoss: %v", err)
			}
			if res.Regime != tt.regime {
				t.Errorf("regime = %s, want %s", res.Regime, tt.regime)
			}
			if !almostEqual(res.Reynolds, tt.re, tt.re*1e-9) {
				t.Errorf("Reynolds = %g, want %g", res.Reynolds, tt.re)
			}
			if res.FrictionFactor <= 0 || math.IsInf(res.FrictionFactor, 0) || math.IsNaN(res.FrictionFactor) {
				t.Errorf("friction factor = %g, want finite positive", res.FrictionFactor)
			}
			if res.MajorLoss <= 0 {
				t.Errorf("major loss = %g, want positive", res.MajorLoss)
			}
		})
	}
}

func TestFrictionFactorContinuity(t *testing.T) {
	cat := testCatalog(t)
	leg := PipeLeg{Diameter: 0.05, Length: 10, Material: "pvc"}
	fluid := water()

	factorAt := func(re float64) float64 {
		t.Helper()
		res, err := ComputeFrictionLoss(cat, leg, fluid, flowForReynolds(re, leg.Diameter, fluid.KinematicViscosity))
		if err != nil {
			t.Fatalf("ComputeFrictionLoss(Re=%g): %v", re, err)
		}
		return res.FrictionFactor
	}

	t.Run("laminar edge", func(t *testing.T) {
		below := factorAt(ReynoldsLaminarLimit - 0.1)
		at := factorAt(ReynoldsLaminarLimit)
		if !almostEqual(below, at, 1e-4) {
			t.Errorf("factor jumps across Re=%g: %g vs %g", ReynoldsLaminarLimit, below, at)
		}
		if want := 64.0 / ReynoldsLaminarLimit; !almostEqual(at, want, 1e-6) {
			t.Errorf("factor at laminar edge = %g, want %g", at, want)
		}
	})

	t.Run("turbulent edge", func(t *testing.T) {
		at := factorAt(ReynoldsTurbulentLimit)
		above := factorAt(ReynoldsTurbulentLimit + 0.1)
		if !almostEqual(at, above, 1e-4) {
			t.Errorf("factor jumps across Re=%g: %g vs %g", ReynoldsTurbulentLimit, at, above)
		}
	})

	t.Run("very low reynolds stays finite", func(t *testing.T) {
		f := factorAt(0.5)
		if math.IsInf(f, 0) || math.IsNaN(f) || f <= 0 {
			t.Fatalf("factor at Re=0.5 = %g, want finite positive", f)
		}
		if want := 64.0 / 0.5; !almostEqual(f, want, want*1e-9) {
			t.Errorf("factor = %g, want laminar %g", f, want)
		}
	})
}

func TestLaminarFactorMatchesFormula(t *testing.T) {
	cat := testCatalog(t)
	leg := PipeLeg{Diameter: 0.05, Length: 10, Material: "aco_comercial"}
	fluid := Fluid{Density: 900, KinematicViscosity: 1e-4, VaporPressure: 500}

	re := 800.0
	res, err := ComputeFrictionLoss(cat, leg, fluid, flowForReynolds(re, leg.Diameter, fluid.KinematicViscosity))
	if err != nil {
		t.Fatalf("ComputeFrictionLoss: %v", err)
	}
	if res.Regime != RegimeLaminar {
		t.Fatalf("regime = %s, want laminar", res.Regime)
	}
	if want := 64.0 / re; !almostEqual(res.FrictionFactor, want, 1e-9) {
		t.Errorf("factor = %g, want 64/Re = %g", res.FrictionFactor, want)
	}
}

func TestMajorLossQuadraticInFlow(t *testing.T) {
	cat := testCatalog(t)
	leg := PipeLeg{Diameter: 0.08, Length: 50, Material: "aco_comercial"}
	fluid := water()

	base, err := ComputeFrictionLoss(cat, leg, fluid, 0.005)
	if err != nil {
		t.Fatalf("ComputeFrictionLoss: %v", err)
	}
	double, err := ComputeFrictionLoss(cat, leg, fluid, 0.010)
	if err != nil {
		t.Fatalf("ComputeFrictionLoss: %v", err)
	}
	ratio := double.MajorLoss / base.MajorLoss
	// f drifts down slightly with Re, so the ratio sits just under 4.
	if ratio < 3.4 || ratio > 4.1 {
		t.Errorf("doubling flow scaled major loss by %.3f, want ~4", ratio)
	}
}

func TestZeroFlowYieldsZeroLosses(t *testing.T) {
	cat := testCatalog(t)
	leg := PipeLeg{
		Diameter: 0.1,
		Length:   25,
		Material: "ferro_fundido",
		Fittings: []Fitting{{Type: "elbow90", K: 0.9, Count: 3}},
	}
	res, err := ComputeFrictionLoss(cat, leg, water(), 0)
	if err != nil {
		t.Fatalf("ComputeFrictionLoss: %v", err)
	}
	if res.MajorLoss != 0 || res.MinorLoss != 0 || res.Velocity != 0 || res.Reynolds != 0 {
		t.Errorf("zero flow produced non-zero result: %+v", res)
	}
}

func TestZeroLengthLegKeepsMinorLosses(t *testing.T) {
	cat := testCatalog(t)
	leg := PipeLeg{
		Diameter: 0.1,
		Length:   0,
		Material: "pvc",
		Fittings: []Fitting{
			{Type: "foot_valve", K: 2.5},
			{Type: "gate_valve", LeOverD: 8},
		},
	}
	res, err := ComputeFrictionLoss(cat, leg, water(), 0.008)
	if err != nil {
		t.Fatalf("ComputeFrictionLoss: %v", err)
	}
	if res.MajorLoss != 0 {
		t.Errorf("major loss = %g, want 0 for zero-length leg", res.MajorLoss)
	}
	if res.MinorLoss <= 0 {
		t.Errorf("minor loss = %g, want positive", res.MinorLoss)
	}
}

func TestMinorLossComposition(t *testing.T) {
	cat := testCatalog(t)
	fluid := water()
	flow := 0.006
	base := PipeLeg{Diameter: 0.08, Length: 10, Material: "pvc"}

	plain, err := ComputeFrictionLoss(cat, base, fluid, flow)
	if err != nil {
		t.Fatalf("ComputeFrictionLoss: %v", err)
	}

	t.Run("k coefficient", func(t *testing.T) {
		leg := base
		leg.Fittings = []Fitting{{Type: "elbow90", K: 0.9, Count: 2}}
		res, err := ComputeFrictionLoss(cat, leg, fluid, flow)
		if err != nil {
			t.Fatalf("ComputeFrictionLoss: %v", err)
		}
		want := 2 * 0.9 * res.Velocity * res.Velocity / (2 * Gravity)
		if !almostEqual(res.MinorLoss, want, 1e-12) {
			t.Errorf("minor loss = %g, want %g", res.MinorLoss, want)
		}
	})

	t.Run("equivalent length behaves like straight pipe", func(t *testing.T) {
		leg := base
		leg.Fittings = []Fitting{{Type: "check_valve", LeOverD: 100}}
		res, err := ComputeFrictionLoss(cat, leg, fluid, flow)
		if err != nil {
			t.Fatalf("ComputeFrictionLoss: %v", err)
		}
		// Le/D=100 on D=0.08 is 8 m of extra pipe; the leg itself is 10 m.
		want := plain.MajorLoss * (100 * leg.Diameter) / leg.Length
		if !almostEqual(res.MinorLoss, want, want*1e-9) {
			t.Errorf("minor loss = %g, want %g", res.MinorLoss, want)
		}
	})

	t.Run("count defaults to one", func(t *testing.T) {
		one := base
		one.Fittings = []Fitting{{Type: "elbow90", K: 0.9, Count: 1}}
		implicit := base
		implicit.Fittings = []Fitting{{Type: "elbow90", K: 0.9}}
		a, err := ComputeFrictionLoss(cat, one, fluid, flow)
		if err != nil {
			t.Fatalf("ComputeFrictionLoss: %v", err)
		}
		b, err := ComputeFrictionLoss(cat, implicit, fluid, flow)
		if err != nil {
			t.Fatalf("ComputeFrictionLoss: %v", err)
		}
		if a.MinorLoss != b.MinorLoss {
			t.Errorf("count 1 and count 0 differ: %g vs %g", a.MinorLoss, b.MinorLoss)
		}
	})
}

func TestHazenWilliamsLeg(t *testing.T) {
	cat := testCatalog(t)
	leg := PipeLeg{Diameter: 0.15, Length: 120, Material: "cimento_amianto"}
	fluid := water()

	base, err := ComputeFrictionLoss(cat, leg, fluid, 0.02)
	if err != nil {
		t.Fatalf("ComputeFrictionLoss: %v", err)
	}
	if base.MajorLoss <= 0 || base.FrictionFactor <= 0 {
		t.Fatalf("expected positive loss and equivalent factor, got %+v", base)
	}
	if base.Regime != RegimeTurbulent {
		t.Errorf("regime = %s, want turbulent at this flow", base.Regime)
	}

	double, err := ComputeFrictionLoss(cat, leg, fluid, 0.04)
	if err != nil {
		t.Fatalf("ComputeFrictionLoss: %v", err)
	}
	ratio := double.MajorLoss / base.MajorLoss
	want := math.Pow(2, hazenWilliamsFlowExp)
	if !almostEqual(ratio, want, 1e-6) {
		t.Errorf("doubling flow scaled loss by %.4f, want %.4f", ratio, want)
	}
}

func TestComputeFrictionLossErrors(t *testing.T) {
	cat := testCatalog(t)
	fluid := water()
	good := PipeLeg{Diameter: 0.1, Length: 10, Material: "pvc"}

	tests := []struct {
		name  string
		leg   PipeLeg
		fluid Fluid
		flow  float64
		want  error
	}{
		{"unknown material", PipeLeg{Diameter: 0.1, Length: 10, Material: "titanium"}, fluid, 0.01, ErrUnknownMaterial},
		{"zero diameter", PipeLeg{Diameter: 0, Length: 10, Material: "pvc"}, fluid, 0.01, ErrInvalidGeometry},
		{"negative diameter", PipeLeg{Diameter: -0.1, Length: 10, Material: "pvc"}, fluid, 0.01, ErrInvalidGeometry},
		{"negative length", PipeLeg{Diameter: 0.1, Length: -1, Material: "pvc"}, fluid, 0.01, ErrInvalidGeometry},
		{"negative nozzle", PipeLeg{Diameter: 0.1, Length: 1, Material: "pvc", NozzleDiameter: -0.05}, fluid, 0.01, ErrInvalidGeometry},
		{"negative fitting k", PipeLeg{Diameter: 0.1, Length: 1, Material: "pvc", Fittings: []Fitting{{K: -1}}}, fluid, 0.01, ErrInvalidGeometry},
		{"negative fitting count", PipeLeg{Diameter: 0.1, Length: 1, Material: "pvc", Fittings: []Fitting{{K: 1, Count: -2}}}, fluid, 0.01, ErrInvalidGeometry},
		{"negative flow", good, fluid, -0.01, ErrInvalidFlow},
		{"zero viscosity", good, Fluid{Density: 1000}, 0.01, ErrInvalidFluid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeFrictionLoss(cat, tt.leg, tt.fluid, tt.flow)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRoughnessMustFitInsideDiameter(t *testing.T) {
	cat, err := NewCatalog([]Material{{Name: "gravel", Roughness: 0.05, Model: ModelColebrook}})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	leg := PipeLeg{Diameter: 0.04, Length: 10, Material: "gravel"}
	if _, err := ComputeFrictionLoss(cat, leg, water(), 0.01); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("error = %v, want ErrInvalidGeometry", err)
	}
}
