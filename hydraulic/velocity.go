package hydraulic

import "fmt"

// Recommended velocity bands in m/s. Suction runs slower than discharge so
// the fluid reaches the impeller with pressure to spare.
const (
	SuctionMinVelocity   = 0.5
	SuctionMaxVelocity   = 3.0
	DischargeMinVelocity = 0.6
	DischargeMaxVelocity = 5.0
)

// ValidateVelocity checks the mean velocity of a leg against its recommended
// band and returns zero or more warnings. Warnings are advisory; the
// calculation proceeds regardless.
func ValidateVelocity(role LegRole, velocity float64) []VelocityWarning {
	min, max := SuctionMinVelocity, SuctionMaxVelocity
	highKind := WarnCavitation
	if role == DischargeLeg {
		min, max = DischargeMinVelocity, DischargeMaxVelocity
		highKind = WarnErosion
	}

	var warnings []VelocityWarning
	if velocity < min {
		warnings = append(warnings, VelocityWarning{
			Leg:       role,
			Kind:      WarnSedimentation,
			Velocity:  velocity,
			Threshold: min,
			Message: fmt.Sprintf("%s velocity %.2f m/s below %.2f m/s: solids may settle in the line",
				role, velocity, min),
		})
	}
	if velocity > max {
		msg := fmt.Sprintf("%s velocity %.2f m/s above %.2f m/s: cavitation risk at the impeller eye",
			role, velocity, max)
		if highKind == WarnErosion {
			msg = fmt.Sprintf("%s velocity %.2f m/s above %.2f m/s: pipe wall erosion and noise",
				role, velocity, max)
		}
		warnings = append(warnings, VelocityWarning{
			Leg:       role,
			Kind:      highKind,
			Velocity:  velocity,
			Threshold: max,
			Message:   msg,
		})
	}
	return warnings
}
