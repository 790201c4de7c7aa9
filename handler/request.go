package handler

// calculateRequest is the payload for POST /systems/calculate. Lengths and
// diameters are meters, pressures Pa, elevations meters above the pump
// centerline.
type calculateRequest struct {
	ProjectName string  `json:"projectName" binding:"max=128"`
	FlowRate    float64 `json:"flowRate" binding:"required,gt=0"`
	FlowUnit    string  `json:"flowUnit"`
	// Temperature in °C drives the water defaults when fluid is omitted.
	Temperature float64       `json:"temperature" binding:"gte=0,lte=100"`
	Fluid       *fluidPayload `json:"fluid"`
	Suction     legPayload    `json:"suction" binding:"required"`
	Discharge   legPayload    `json:"discharge" binding:"required"`
	// AtmosphericPressure is absolute; zero derives it from the elevation.
	AtmosphericPressure float64       `json:"atmosphericPressure" binding:"gte=0"`
	GeodeticElevation   float64       `json:"geodeticElevation"`
	RequiredNpsh        float64       `json:"requiredNpsh" binding:"gte=0"`
	NpshSafetyMargin    float64       `json:"npshSafetyMargin" binding:"gte=0"`
	Sweep               *sweepPayload `json:"sweep"`
}

type legPayload struct {
	Diameter        float64          `json:"diameter" binding:"required,gt=0"`
	Length          float64          `json:"length" binding:"gte=0"`
	Material        string           `json:"material" binding:"required"`
	Fittings        []fittingPayload `json:"fittings" binding:"dive"`
	StaticElevation float64          `json:"staticElevation"`
	NozzleDiameter  float64          `json:"nozzleDiameter" binding:"gte=0"`
	GaugePressure   float64          `json:"gaugePressure"`
}

type fittingPayload struct {
	Type    string  `json:"type"`
	K       float64 `json:"k" binding:"gte=0"`
	LeOverD float64 `json:"leOverD" binding:"gte=0"`
	Count   int     `json:"count" binding:"gte=0"`
}

type fluidPayload struct {
	Name               string  `json:"name"`
	Density            float64 `json:"density" binding:"gte=0"`
	KinematicViscosity float64 `json:"kinematicViscosity" binding:"gte=0"`
	VaporPressure      float64 `json:"vaporPressure" binding:"gte=0"`
}

type sweepPayload struct {
	Start  float64 `json:"start" binding:"gte=0"`
	End    float64 `json:"end" binding:"required,gt=0"`
	Points int     `json:"points" binding:"required,gte=1"`
}

type listCasesRequest struct {
	Project string `form:"project"`
	Limit   int    `form:"limit" binding:"gte=0"`
}
