package hydraulic

import (
	"errors"
	"testing"
)

func TestGenerateSystemCurve(t *testing.T) {
	cat := testCatalog(t)
	cfg := transferDuty()

	curve, err := GenerateSystemCurve(cat, cfg, SweepSpec{Start: 0, End: 30, Points: 25})
	if err != nil {
		t.Fatalf("GenerateSystemCurve: %v", err)
	}
	if len(curve) != 25 {
		t.Fatalf("got %d points, want 25", len(curve))
	}

	for i := 1; i < len(curve); i++ {
		if curve[i].Flow <= curve[i-1].Flow {
			t.Fatalf("flows not strictly increasing at %d: %g then %g", i, curve[i-1].Flow, curve[i].Flow)
		}
		if curve[i].Head < curve[i-1].Head {
			t.Fatalf("head decreased at %d: %g then %g", i, curve[i-1].Head, curve[i].Head)
		}
	}

	// Sweep bounds are in the configuration unit (m³/h here), output in m³/s.
	if want := 30.0 / 3600.0; !almostEqual(curve[len(curve)-1].Flow, want, 1e-12) {
		t.Errorf("end flow = %g, want %g", curve[len(curve)-1].Flow, want)
	}
	if curve[0].Flow != 0 {
		t.Errorf("start flow = %g, want 0", curve[0].Flow)
	}
	if !almostEqual(curve[0].Head, 8, 1e-12) {
		t.Errorf("head at zero flow = %g, want the static head 8", curve[0].Head)
	}
}

func TestGenerateSystemCurveMatchesCalculate(t *testing.T) {
	cat := testCatalog(t)
	cfg := transferDuty()

	res, err := Calculate(cat, cfg)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	curve, err := GenerateSystemCurve(cat, cfg, SweepSpec{Start: cfg.DesignFlowRate, End: cfg.DesignFlowRate, Points: 1})
	if err != nil {
		t.Fatalf("GenerateSystemCurve: %v", err)
	}
	if len(curve) != 1 {
		t.Fatalf("got %d points, want 1", len(curve))
	}
	if curve[0].Head != res.Hmt {
		t.Errorf("curve head at design flow = %g, Calculate said %g", curve[0].Head, res.Hmt)
	}
	if curve[0].Flow != res.DesignFlow {
		t.Errorf("curve flow = %g, want %g", curve[0].Flow, res.DesignFlow)
	}
}

func TestCalculateHonorsCustomSweep(t *testing.T) {
	cat := testCatalog(t)
	cfg := transferDuty()
	cfg.Sweep = &SweepSpec{Start: 5, End: 40, Points: 8}

	res, err := Calculate(cat, cfg)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if len(res.SystemCurve) != 8 {
		t.Fatalf("curve has %d points, want 8", len(res.SystemCurve))
	}
	if want := 5.0 / 3600.0; !almostEqual(res.SystemCurve[0].Flow, want, 1e-12) {
		t.Errorf("first flow = %g, want %g", res.SystemCurve[0].Flow, want)
	}
	if want := 40.0 / 3600.0; !almostEqual(res.SystemCurve[7].Flow, want, 1e-12) {
		t.Errorf("last flow = %g, want %g", res.SystemCurve[7].Flow, want)
	}
}

func TestGenerateSystemCurveValidation(t *testing.T) {
	cat := testCatalog(t)
	cfg := transferDuty()

	tests := []struct {
		name  string
		sweep SweepSpec
	}{
		{"zero points", SweepSpec{Start: 0, End: 30, Points: 0}},
		{"negative points", SweepSpec{Start: 0, End: 30, Points: -3}},
		{"zero end", SweepSpec{Start: 0, End: 0, Points: 10}},
		{"negative end", SweepSpec{Start: 0, End: -5, Points: 10}},
		{"negative start", SweepSpec{Start: -1, End: 30, Points: 10}},
		{"reversed range", SweepSpec{Start: 30, End: 10, Points: 10}},
		{"flat range needs one point", SweepSpec{Start: 20, End: 20, Points: 10}},
		{"single point range mismatch", SweepSpec{Start: 10, End: 20, Points: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateSystemCurve(cat, cfg, tt.sweep); !errors.Is(err, ErrInvalidSweep) {
				t.Errorf("error = %v, want ErrInvalidSweep", err)
			}
		})
	}
}

func TestGenerateSystemCurvePropagatesLegErrors(t *testing.T) {
	cat := testCatalog(t)
	cfg := transferDuty()
	cfg.Discharge.Material = "adamantium"

	if _, err := GenerateSystemCurve(cat, cfg, SweepSpec{Start: 0, End: 30, Points: 5}); !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("error = %v, want ErrUnknownMaterial", err)
	}
}
