package hydraulic

import "fmt"

// FlowUnit identifies the unit a caller expresses flow rates in.
type FlowUnit string

const (
	FlowUnitM3PerSecond FlowUnit = "m3/s"
	FlowUnitM3PerHour   FlowUnit = "m3/h"
	FlowUnitLPerSecond  FlowUnit = "l/s"
)

// NormalizeFlow converts value from unit to m³/s. The empty unit means the
// value is already SI. Unknown units are an error, never a pass-through.
func NormalizeFlow(value float64, unit FlowUnit) (float64, error) {
	switch unit {
	case FlowUnitM3PerSecond, "":
		return value, nil
	case FlowUnitM3PerHour:
		return value / 3600.0, nil
	case FlowUnitLPerSecond:
		return value / 1000.0, nil
	default:
		return 0, fmt.Errorf("%w: flow unit %q (want m3/s, m3/h or l/s)", ErrInvalidUnit, unit)
	}
}
