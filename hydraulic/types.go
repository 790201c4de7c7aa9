// Package hydraulic sizes centrifugal pump installations: friction losses per
// pipe leg, total manometric head, NPSH margin and the system curve. All
// internal math is SI (meters, seconds, pascals, kg/m³); flow rates cross the
// boundary in an explicit FlowUnit and are normalized to m³/s on entry.
package hydraulic

// Gravity is the standard acceleration used throughout, m/s².
const Gravity = 9.80665

// FrictionModel selects how a material computes its major loss.
type FrictionModel string

const (
	// ModelColebrook resolves the Darcy friction factor from roughness and
	// Reynolds number (laminar, transitional and turbulent branches).
	ModelColebrook FrictionModel = "colebrook"
	// ModelHazenWilliams uses the empirical C coefficient instead. Only valid
	// for water-like fluids; the two models are never mixed on one leg.
	ModelHazenWilliams FrictionModel = "hazen-williams"
)

// FlowRegime labels the Reynolds band a leg operates in.
type FlowRegime string

const (
	RegimeLaminar      FlowRegime = "laminar"
	RegimeTransitional FlowRegime = "transitional"
	RegimeTurbulent    FlowRegime = "turbulent"
)

// Reynolds band edges. Laminar below the lower edge, turbulent above the
// upper, linear blend in between so the friction factor stays continuous.
const (
	ReynoldsLaminarLimit   = 2000.0
	ReynoldsTurbulentLimit = 4000.0
)

// Material is a pipe wall description from the catalog.
type Material struct {
	// Name is the catalog key, matched case-insensitively.
	Name string `json:"name"`
	// Roughness is the absolute wall roughness in meters.
	Roughness float64 `json:"roughness"`
	// HazenWilliamsC is the empirical C coefficient, used only when Model is
	// ModelHazenWilliams.
	HazenWilliamsC float64 `json:"hazenWilliamsC"`
	// Model picks the friction formulation for legs of this material.
	Model FrictionModel `json:"model"`
	// Description is free text for listings; it never affects the math.
	Description string `json:"description,omitempty"`
}

// Fitting is a localized loss element on a leg: an elbow, a valve, a
// reduction. Either K or LeOverD (or both) may be set; each contributes its
// own share of the minor loss.
type Fitting struct {
	// Type is a label for reports, e.g. "elbow90" or "gate_valve".
	Type string `json:"type"`
	// K is the fixed loss coefficient, loss = K·v²/(2g).
	K float64 `json:"k"`
	// LeOverD is the equivalent-length factor Le/D; the fitting behaves like
	// LeOverD·D extra meters of straight pipe.
	LeOverD float64 `json:"leOverD"`
	// Count collapses identical fittings into one entry. Zero means one.
	Count int `json:"count"`
}

// PipeLeg describes one side of the installation, suction or discharge.
type PipeLeg struct {
	// Diameter is the internal pipe diameter in meters.
	Diameter float64 `json:"diameter"`
	// Length is the developed straight-pipe length in meters.
	Length float64 `json:"length"`
	// Material names a catalog entry.
	Material string `json:"material"`
	// Fittings are the localized loss elements along the leg.
	Fittings []Fitting `json:"fittings,omitempty"`
	// StaticElevation is the free-surface elevation of the vessel this leg
	// connects to, in meters over the pump centerline datum. Negative on
	// suction means the pump lifts the fluid.
	StaticElevation float64 `json:"staticElevation"`
	// NozzleDiameter is the pump nozzle diameter in meters. When neither leg
	// declares one the nozzle velocity-head term is zero; a declared nozzle
	// on one side makes the other fall back to its pipe bore.
	NozzleDiameter float64 `json:"nozzleDiameter,omitempty"`
	// GaugePressure is the vessel surface pressure in Pa gauge. Zero for an
	// open tank; negative for vacuum vessels is accepted.
	GaugePressure float64 `json:"gaugePressure,omitempty"`
}

// Fluid carries the pumped fluid properties. The service layer fills water
// defaults from temperature when the caller sends none.
type Fluid struct {
	// Density in kg/m³.
	Density float64 `json:"density"`
	// KinematicViscosity in m²/s (1 cSt = 1e-6 m²/s).
	KinematicViscosity float64 `json:"kinematicViscosity"`
	// VaporPressure in Pa absolute at pumping temperature.
	VaporPressure float64 `json:"vaporPressure"`
	// Name is optional free text for reports.
	Name string `json:"name,omitempty"`
}

// SweepSpec bounds a system-curve generation run. Flows are expressed in the
// configuration's FlowUnit.
type SweepSpec struct {
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Points int     `json:"points"`
}

// SystemConfiguration is the full calculation input.
type SystemConfiguration struct {
	Suction   PipeLeg `json:"suction"`
	Discharge PipeLeg `json:"discharge"`
	Fluid     Fluid   `json:"fluid"`
	// DesignFlowRate is the duty flow in FlowUnit.
	DesignFlowRate float64 `json:"designFlowRate"`
	// FlowUnit qualifies DesignFlowRate and the sweep bounds. Empty means
	// m³/s.
	FlowUnit FlowUnit `json:"flowUnit,omitempty"`
	// AtmosphericPressure in Pa absolute. Zero means derive it from
	// GeodeticElevation via the barometric formula.
	AtmosphericPressure float64 `json:"atmosphericPressure,omitempty"`
	// GeodeticElevation is the site elevation over sea level in meters, used
	// only when AtmosphericPressure is zero.
	GeodeticElevation float64 `json:"geodeticElevation,omitempty"`
	// RequiredNpsh is the pump's required NPSH at duty flow, in meters, from
	// the manufacturer datasheet.
	RequiredNpsh float64 `json:"requiredNpsh"`
	// NpshSafetyMargin overrides DefaultNpshSafetyMargin when positive.
	NpshSafetyMargin float64 `json:"npshSafetyMargin,omitempty"`
	// Sweep overrides the default system-curve sweep when non-nil.
	Sweep *SweepSpec `json:"sweep,omitempty"`
}

// FrictionResult is the per-leg outcome of the friction calculation.
type FrictionResult struct {
	// Velocity is the mean pipe velocity in m/s.
	Velocity float64 `json:"velocity"`
	// Reynolds is v·D/ν, dimensionless.
	Reynolds float64    `json:"reynolds"`
	Regime   FlowRegime `json:"regime"`
	// FrictionFactor is the Darcy factor; for Hazen-Williams legs it is the
	// equivalent factor back-computed from the unit loss, for reporting.
	FrictionFactor float64 `json:"frictionFactor"`
	// MajorLoss is the straight-pipe head loss in meters of fluid column.
	MajorLoss float64 `json:"majorLoss"`
	// MinorLoss is the summed fitting head loss in meters of fluid column.
	MinorLoss float64 `json:"minorLoss"`
}

// TotalLoss is the leg's total friction head loss in meters.
func (r FrictionResult) TotalLoss() float64 {
	return r.MajorLoss + r.MinorLoss
}

// NpshResult is the cavitation analysis outcome. All heads in meters of
// fluid column.
type NpshResult struct {
	Available float64 `json:"available"`
	Required  float64 `json:"required"`
	// Margin is Available − Required.
	Margin float64 `json:"margin"`
	// SafetyMargin is the buffer the margin was judged against.
	SafetyMargin float64 `json:"safetyMargin"`
	// CavitationRisk is set when Margin ≤ SafetyMargin.
	CavitationRisk bool `json:"cavitationRisk"`
}

// LegRole tells a velocity warning which side of the pump it refers to.
type LegRole string

const (
	SuctionLeg   LegRole = "suction"
	DischargeLeg LegRole = "discharge"
)

// VelocityWarningKind classifies a velocity band violation.
type VelocityWarningKind string

const (
	// WarnSedimentation flags velocity below the minimum for the leg:
	// suspended solids settle out.
	WarnSedimentation VelocityWarningKind = "sedimentation"
	// WarnCavitation flags suction velocity above the maximum: local pressure
	// drops toward vapor pressure.
	WarnCavitation VelocityWarningKind = "cavitation"
	// WarnErosion flags discharge velocity above the maximum: wall wear and
	// noise.
	WarnErosion VelocityWarningKind = "erosion"
)

// VelocityWarning is advisory only; it never fails the calculation.
type VelocityWarning struct {
	Leg       LegRole             `json:"leg"`
	Kind      VelocityWarningKind `json:"kind"`
	Velocity  float64             `json:"velocity"`
	Threshold float64             `json:"threshold"`
	Message   string              `json:"message"`
}

// AdvisorySeverity ranks an operating advisory.
type AdvisorySeverity string

const (
	SeverityAlert    AdvisorySeverity = "alert"
	SeverityCritical AdvisorySeverity = "critical"
)

// Advisory flags an operating condition outside the comfortable envelope:
// high viscosity, very high head. Advisories never fail the calculation.
type Advisory struct {
	Severity  AdvisorySeverity `json:"severity"`
	Category  string           `json:"category"`
	Value     float64          `json:"value"`
	Threshold float64          `json:"threshold"`
	Message   string           `json:"message"`
}

// CurvePoint is one sample of the system curve.
type CurvePoint struct {
	// Flow in m³/s.
	Flow float64 `json:"flow"`
	// Head is the total manometric head at Flow, in meters.
	Head float64 `json:"head"`
}

// CalculationResult aggregates everything the engine produces for one
// configuration at design flow.
type CalculationResult struct {
	// DesignFlow is the normalized duty flow in m³/s.
	DesignFlow float64 `json:"designFlow"`
	// Hmt is the total manometric head in meters of fluid column.
	Hmt float64 `json:"hmt"`
	// StaticHead is the discharge minus suction elevation difference.
	StaticHead float64 `json:"staticHead"`
	// PressureHead is the vessel gauge-pressure difference converted to head.
	PressureHead float64 `json:"pressureHead"`
	// VelocityHead is the nozzle velocity-head difference.
	VelocityHead     float64           `json:"velocityHead"`
	Suction          FrictionResult    `json:"suction"`
	Discharge        FrictionResult    `json:"discharge"`
	Npsh             NpshResult        `json:"npsh"`
	VelocityWarnings []VelocityWarning `json:"velocityWarnings,omitempty"`
	Advisories       []Advisory        `json:"advisories,omitempty"`
	// HydraulicPower is ρ·g·Q·H in watts.
	HydraulicPower float64 `json:"hydraulicPower"`
	// PressureBar is Hmt expressed as pump differential pressure in bar.
	PressureBar float64      `json:"pressureBar"`
	SystemCurve []CurvePoint `json:"systemCurve,omitempty"`
	// Recommendations are selection hints phrased for the datasheet exchange
	// with a pump vendor. Derived from the numbers above, never from a pump
	// catalog.
	Recommendations []string `json:"recommendations"`
}
