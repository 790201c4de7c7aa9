package hydraulic

// DefaultNpshSafetyMargin is the buffer in meters the NPSH margin must clear
// before the installation is considered safe from cavitation.
const DefaultNpshSafetyMargin = 0.5

// AnalyzeNpsh computes the available NPSH at the pump suction flange and
// judges it against the pump requirement.
//
//	NPSHa = (Pabs − Pvap)/(ρ·g) + staticElevation − suctionLoss
//
// surfacePressure is the absolute pressure over the suction free surface in
// Pa (atmospheric plus any vessel gauge pressure), vaporPressure the fluid
// vapor pressure in Pa absolute, density in kg/m³, staticElevation the
// suction surface elevation over the pump centerline in meters (negative for
// a suction lift), suctionLoss the suction-leg friction loss in meters.
// CavitationRisk is set when the margin does not clear safetyMargin.
func AnalyzeNpsh(surfacePressure, vaporPressure, density, staticElevation, suctionLoss, required, safetyMargin float64) NpshResult {
	pressureHead := (surfacePressure - vaporPressure) / (density * Gravity)
	available := pressureHead + staticElevation - suctionLoss
	margin := available - required
	return NpshResult{
		Available:      available,
		Required:       required,
		Margin:         margin,
		SafetyMargin:   safetyMargin,
		CavitationRisk: margin <= safetyMargin,
	}
}
