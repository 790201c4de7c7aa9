package service

import "pumpsizer/hydraulic"

const (
	defaultWaterDensity   = 1000.0   // kg/m³
	defaultWaterViscosity = 1.004e-6 // m²/s, water around 20 °C
	defaultTemperature    = 20.0     // °C
)

// applyWaterDefaults fills absent fluid properties with water values at the
// given temperature. Explicit caller values always win; the temperature only
// drives the vapor-pressure default.
func applyWaterDefaults(fluid hydraulic.Fluid, tempC float64) hydraulic.Fluid {
	if tempC == 0 {
		tempC = defaultTemperature
	}
	if fluid.Density <= 0 {
		fluid.Density = defaultWaterDensity
	}
	if fluid.KinematicViscosity <= 0 {
		fluid.KinematicViscosity = defaultWaterViscosity
	}
	if fluid.VaporPressure <= 0 {
		fluid.VaporPressure = hydraulic.WaterVaporPressure(tempC)
	}
	return fluid
}
