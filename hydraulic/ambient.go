package hydraulic

import "math"

// waterVaporTable maps temperature (°C) to saturation vapor pressure (Pa)
// in 5 °C steps from 0 to 100. Values between rows are linearly interpolated.
var waterVaporTable = []struct {
	tempC float64
	pa    float64
}{
	{0, 611}, {5, 872}, {10, 1228}, {15, 1705}, {20, 2338},
	{25, 3169}, {30, 4246}, {35, 5628}, {40, 7384}, {45, 9593},
	{50, 12349}, {55, 15758}, {60, 19946}, {65, 25043}, {70, 31201},
	{75, 38595}, {80, 47414}, {85, 57867}, {90, 70182}, {95, 84608},
	{100, 101325},
}

// WaterVaporPressure returns the saturation vapor pressure of water at tempC
// in Pa absolute. Temperatures are clamped to the 0..100 °C table range.
func WaterVaporPressure(tempC float64) float64 {
	first := waterVaporTable[0]
	last := waterVaporTable[len(waterVaporTable)-1]
	if tempC <= first.tempC {
		return first.pa
	}
	if tempC >= last.tempC {
		return last.pa
	}
	for i := 1; i < len(waterVaporTable); i++ {
		hi := waterVaporTable[i]
		if tempC > hi.tempC {
			continue
		}
		lo := waterVaporTable[i-1]
		t := (tempC - lo.tempC) / (hi.tempC - lo.tempC)
		return lo.pa + t*(hi.pa-lo.pa)
	}
	return last.pa
}

// Atmospheric model constants (international standard atmosphere, troposphere).
const (
	SeaLevelPressure  = 101325.0 // Pa
	barometricLapse   = 2.25577e-5
	barometricExpo    = 5.25588
	tropopauseCeiling = 11000.0 // m; formula is not valid above this
)

// AtmosphericPressureAt returns the standard atmospheric pressure in Pa
// absolute at the given elevation over sea level in meters. Elevations above
// the troposphere are clamped to its ceiling.
func AtmosphericPressureAt(elevation float64) float64 {
	if elevation > tropopauseCeiling {
		elevation = tropopauseCeiling
	}
	return SeaLevelPressure * math.Pow(1.0-barometricLapse*elevation, barometricExpo)
}
