package hydraulic

import "fmt"

// Operating-envelope advisory thresholds.
const (
	// Kinematic viscosity in m²/s. Above 10 cSt a centrifugal pump needs
	// correction factors; above 100 cSt it is usually the wrong machine.
	ViscosityAlertThreshold    = 10e-6
	ViscosityCriticalThreshold = 100e-6
	// Total manometric head in meters.
	HeadAlertThreshold    = 200.0
	HeadCriticalThreshold = 300.0
)

// normalizedConfig carries the configuration scalars after unit and default
// resolution, so the duty-point pass and the curve pass agree on them.
type normalizedConfig struct {
	designFlow float64 // m³/s
	atm        float64 // Pa absolute at the site
	safety     float64 // NPSH safety margin, m
}

func normalizeConfiguration(cfg SystemConfiguration) (normalizedConfig, error) {
	var nc normalizedConfig
	flow, err := NormalizeFlow(cfg.DesignFlowRate, cfg.FlowUnit)
	if err != nil {
		return nc, err
	}
	if flow <= 0 {
		return nc, fmt.Errorf("%w: design flow must be positive, got %g %s",
			ErrInvalidFlow, cfg.DesignFlowRate, cfg.FlowUnit)
	}
	if cfg.Fluid.Density <= 0 {
		return nc, fmt.Errorf("%w: density must be positive, got %g kg/m3", ErrInvalidFluid, cfg.Fluid.Density)
	}
	if cfg.Fluid.KinematicViscosity <= 0 {
		return nc, fmt.Errorf("%w: kinematic viscosity must be positive, got %g m2/s",
			ErrInvalidFluid, cfg.Fluid.KinematicViscosity)
	}
	if cfg.Fluid.VaporPressure < 0 {
		return nc, fmt.Errorf("%w: vapor pressure must not be negative, got %g Pa",
			ErrInvalidFluid, cfg.Fluid.VaporPressure)
	}
	if cfg.AtmosphericPressure < 0 {
		return nc, fmt.Errorf("%w: atmospheric pressure must not be negative, got %g Pa",
			ErrInvalidFluid, cfg.AtmosphericPressure)
	}
	if cfg.NpshSafetyMargin < 0 {
		return nc, fmt.Errorf("%w: NPSH safety margin must not be negative, got %g m",
			ErrInvalidFluid, cfg.NpshSafetyMargin)
	}
	nc.designFlow = flow
	nc.atm = cfg.AtmosphericPressure
	if nc.atm == 0 {
		nc.atm = AtmosphericPressureAt(cfg.GeodeticElevation)
	}
	nc.safety = cfg.NpshSafetyMargin
	if nc.safety == 0 {
		nc.safety = DefaultNpshSafetyMargin
	}
	return nc, nil
}

// headBreakdown is one evaluation of the head balance at a single flow.
type headBreakdown struct {
	hmt       float64
	static    float64
	pressure  float64
	velocity  float64
	suction   FrictionResult
	discharge FrictionResult
}

// headAtFlow evaluates the full head balance at flow (m³/s). Both the duty
// point and every system-curve sample go through here, so the curve at the
// design flow reproduces Hmt exactly.
func headAtFlow(cat *Catalog, cfg SystemConfiguration, flow float64) (headBreakdown, error) {
	suc, err := ComputeFrictionLoss(cat, cfg.Suction, cfg.Fluid, flow)
	if err != nil {
		return headBreakdown{}, fmt.Errorf("suction leg: %w", err)
	}
	dis, err := ComputeFrictionLoss(cat, cfg.Discharge, cfg.Fluid, flow)
	if err != nil {
		return headBreakdown{}, fmt.Errorf("discharge leg: %w", err)
	}
	b := headBreakdown{
		static:    cfg.Discharge.StaticElevation - cfg.Suction.StaticElevation,
		pressure:  (cfg.Discharge.GaugePressure - cfg.Suction.GaugePressure) / (cfg.Fluid.Density * Gravity),
		velocity:  nozzleVelocityHead(cfg.Suction, cfg.Discharge, flow),
		suction:   suc,
		discharge: dis,
	}
	b.hmt = b.static + b.pressure + b.velocity + suc.TotalLoss() + dis.TotalLoss()
	return b, nil
}

// nozzleVelocityHead is (vd² − vs²)/(2g) across the pump nozzles. The term
// only exists when at least one leg declares a nozzle bore; an undeclared
// side falls back to its pipe bore. With no nozzles declared the term is
// zero.
func nozzleVelocityHead(suction, discharge PipeLeg, flow float64) float64 {
	if suction.NozzleDiameter <= 0 && discharge.NozzleDiameter <= 0 {
		return 0
	}
	ds := suction.NozzleDiameter
	if ds <= 0 {
		ds = suction.Diameter
	}
	dd := discharge.NozzleDiameter
	if dd <= 0 {
		dd = discharge.Diameter
	}
	vs := pipeVelocity(flow, ds)
	vd := pipeVelocity(flow, dd)
	return (vd*vd - vs*vs) / (2 * Gravity)
}

// Calculate runs the complete sizing for one configuration: friction on both
// legs at design flow, total manometric head, NPSH analysis, velocity checks,
// operating advisories, hydraulic power and the system curve.
func Calculate(cat *Catalog, cfg SystemConfiguration) (CalculationResult, error) {
	nc, err := normalizeConfiguration(cfg)
	if err != nil {
		return CalculationResult{}, err
	}

	duty, err := headAtFlow(cat, cfg, nc.designFlow)
	if err != nil {
		return CalculationResult{}, err
	}

	warnings := ValidateVelocity(SuctionLeg, duty.suction.Velocity)
	warnings = append(warnings, ValidateVelocity(DischargeLeg, duty.discharge.Velocity)...)

	npsh := AnalyzeNpsh(
		nc.atm+cfg.Suction.GaugePressure,
		cfg.Fluid.VaporPressure,
		cfg.Fluid.Density,
		cfg.Suction.StaticElevation,
		duty.suction.TotalLoss(),
		cfg.RequiredNpsh,
		nc.safety,
	)

	sweep := DefaultSweep(cfg.DesignFlowRate)
	if cfg.Sweep != nil {
		sweep = *cfg.Sweep
	}
	curve, err := generateCurve(cat, cfg, sweep)
	if err != nil {
		return CalculationResult{}, err
	}

	return CalculationResult{
		DesignFlow:       nc.designFlow,
		Hmt:              duty.hmt,
		StaticHead:       duty.static,
		PressureHead:     duty.pressure,
		VelocityHead:     duty.velocity,
		Suction:          duty.suction,
		Discharge:        duty.discharge,
		Npsh:             npsh,
		VelocityWarnings: warnings,
		Advisories:       operatingAdvisories(cfg.Fluid, duty.hmt),
		HydraulicPower:   cfg.Fluid.Density * Gravity * nc.designFlow * duty.hmt,
		PressureBar:      cfg.Fluid.Density * Gravity * duty.hmt / 1e5,
		SystemCurve:      curve,
		Recommendations:  selectionHints(nc.designFlow, duty.hmt, npsh),
	}, nil
}

// selectionHints phrases the duty point for the vendor conversation: required
// head at flow, the manufacturer-curve check, and the NPSHr ceiling that
// keeps the safety buffer intact.
func selectionHints(designFlow, hmt float64, npsh NpshResult) []string {
	return []string{
		fmt.Sprintf("pump with at least %.2f m of head at %.2f m³/h", hmt, designFlow*3600),
		"confirm the duty point against the manufacturer curve",
		fmt.Sprintf("required NPSH of at most %.2f m at duty flow", npsh.Available-npsh.SafetyMargin),
	}
}

func operatingAdvisories(fluid Fluid, hmt float64) []Advisory {
	var advs []Advisory
	switch {
	case fluid.KinematicViscosity >= ViscosityCriticalThreshold:
		advs = append(advs, Advisory{
			Severity:  SeverityCritical,
			Category:  "viscosity",
			Value:     fluid.KinematicViscosity,
			Threshold: ViscosityCriticalThreshold,
			Message: fmt.Sprintf("kinematic viscosity %.0f cSt above %.0f cSt: centrifugal pumping is unsuitable, consider positive displacement",
				fluid.KinematicViscosity*1e6, ViscosityCriticalThreshold*1e6),
		})
	case fluid.KinematicViscosity >= ViscosityAlertThreshold:
		advs = append(advs, Advisory{
			Severity:  SeverityAlert,
			Category:  "viscosity",
			Value:     fluid.KinematicViscosity,
			Threshold: ViscosityAlertThreshold,
			Message: fmt.Sprintf("kinematic viscosity %.0f cSt above %.0f cSt: apply the manufacturer viscosity corrections to head and efficiency",
				fluid.KinematicViscosity*1e6, ViscosityAlertThreshold*1e6),
		})
	}
	switch {
	case hmt > HeadCriticalThreshold:
		advs = append(advs, Advisory{
			Severity:  SeverityCritical,
			Category:  "head",
			Value:     hmt,
			Threshold: HeadCriticalThreshold,
			Message: fmt.Sprintf("total head %.0f m above %.0f m: split the duty into stages or review the layout",
				hmt, HeadCriticalThreshold),
		})
	case hmt > HeadAlertThreshold:
		advs = append(advs, Advisory{
			Severity:  SeverityAlert,
			Category:  "head",
			Value:     hmt,
			Threshold: HeadAlertThreshold,
			Message: fmt.Sprintf("total head %.0f m above %.0f m: verify the layout before selecting a multistage pump",
				hmt, HeadAlertThreshold),
		})
	}
	return advs
}
