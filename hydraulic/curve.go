package hydraulic

import "fmt"

// DefaultCurvePoints is the sample count of the default system-curve sweep.
const DefaultCurvePoints = 100

const defaultSweepSpan = 1.5

// DefaultSweep spans zero to 150 % of the design flow with DefaultCurvePoints
// samples. The returned spec is in the same unit as designFlow.
func DefaultSweep(designFlow float64) SweepSpec {
	return SweepSpec{Start: 0, End: defaultSweepSpan * designFlow, Points: DefaultCurvePoints}
}

// GenerateSystemCurve samples the head balance over the given sweep. Sweep
// bounds are expressed in the configuration's FlowUnit; returned flows are
// m³/s, strictly increasing, exactly sweep.Points long.
func GenerateSystemCurve(cat *Catalog, cfg SystemConfiguration, sweep SweepSpec) ([]CurvePoint, error) {
	if _, err := normalizeConfiguration(cfg); err != nil {
		return nil, err
	}
	return generateCurve(cat, cfg, sweep)
}

func generateCurve(cat *Catalog, cfg SystemConfiguration, sweep SweepSpec) ([]CurvePoint, error) {
	start, err := NormalizeFlow(sweep.Start, cfg.FlowUnit)
	if err != nil {
		return nil, err
	}
	end, err := NormalizeFlow(sweep.End, cfg.FlowUnit)
	if err != nil {
		return nil, err
	}
	switch {
	case sweep.Points < 1:
		return nil, fmt.Errorf("%w: needs at least one point, got %d", ErrInvalidSweep, sweep.Points)
	case end <= 0:
		return nil, fmt.Errorf("%w: end flow must be positive, got %g", ErrInvalidSweep, sweep.End)
	case start < 0:
		return nil, fmt.Errorf("%w: start flow must not be negative, got %g", ErrInvalidSweep, sweep.Start)
	case sweep.Points == 1 && start != end:
		return nil, fmt.Errorf("%w: a single-point sweep requires start == end", ErrInvalidSweep)
	case sweep.Points > 1 && end <= start:
		return nil, fmt.Errorf("%w: flow range must be increasing, got [%g, %g]", ErrInvalidSweep, sweep.Start, sweep.End)
	}

	points := make([]CurvePoint, sweep.Points)
	if sweep.Points == 1 {
		b, err := headAtFlow(cat, cfg, end)
		if err != nil {
			return nil, err
		}
		points[0] = CurvePoint{Flow: end, Head: b.hmt}
		return points, nil
	}

	step := (end - start) / float64(sweep.Points-1)
	for i := range points {
		flow := start + float64(i)*step
		if i == sweep.Points-1 {
			flow = end // pin the endpoint against float drift
		}
		b, err := headAtFlow(cat, cfg, flow)
		if err != nil {
			return nil, err
		}
		points[i] = CurvePoint{Flow: flow, Head: b.hmt}
	}
	return points, nil
}
