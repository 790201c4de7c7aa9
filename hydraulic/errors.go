package hydraulic

import "errors"

// Calculation failures are typed so the transport layer can tell caller
// mistakes apart from numeric limitations. Everything here is returned
// wrapped with parameter context via fmt.Errorf("%w: ...").
var (
	// ErrUnknownMaterial is returned when a pipe leg references a material
	// name that is not present in the catalog. Never substituted with a
	// default roughness.
	ErrUnknownMaterial = errors.New("unknown material")

	// ErrInvalidGeometry covers non-positive diameters, negative lengths and
	// malformed fittings.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidFlow is returned for a negative leg flow rate or a
	// non-positive design flow rate.
	ErrInvalidFlow = errors.New("invalid flow rate")

	// ErrInvalidFluid covers fluid and operating-condition properties outside
	// their physical range (density, viscosity, vapor pressure, atmospheric
	// pressure, NPSH safety margin).
	ErrInvalidFluid = errors.New("invalid fluid property")

	// ErrInvalidUnit is returned for a flow-rate unit outside the supported
	// set. Units are checked, never guessed.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrInvalidSweep is returned for a degenerate system-curve sweep: zero
	// points, a non-positive flow endpoint, or a non-increasing range.
	ErrInvalidSweep = errors.New("invalid sweep")

	// ErrConvergence is returned when the turbulent friction-factor iteration
	// exceeds its cap. It marks a numeric limitation, not a caller error, and
	// is fatal for the affected leg.
	ErrConvergence = errors.New("friction factor iteration did not converge")
)
