package hydraulic

import "testing"

func TestWaterVaporPressure(t *testing.T) {
	tests := []struct {
		tempC float64
		want  float64
	}{
		{0, 611},
		{20, 2338},
		{100, 101325},
		{-10, 611},     // clamped low
		{150, 101325},  // clamped high
		{22.5, 2753.5}, // halfway between 20 and 25 °C rows
	}
	for _, tt := range tests {
		if got := WaterVaporPressure(tt.tempC); !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("WaterVaporPressure(%g) = %g, want %g", tt.tempC, got, tt.want)
		}
	}

	// Saturation pressure only grows with temperature.
	prev := WaterVaporPressure(0)
	for temp := 1.0; temp <= 100; temp++ {
		cur := WaterVaporPressure(temp)
		if cur <= prev {
			t.Fatalf("vapor pressure not increasing at %g °C: %g then %g", temp, prev, cur)
		}
		prev = cur
	}
}

func TestAtmosphericPressureAt(t *testing.T) {
	if got := AtmosphericPressureAt(0); got != SeaLevelPressure {
		t.Errorf("sea level = %g, want %g", got, SeaLevelPressure)
	}
	// Standard atmosphere at 2500 m is about 74.7 kPa.
	if got := AtmosphericPressureAt(2500); !almostEqual(got, 74683, 150) {
		t.Errorf("at 2500 m = %g, want ~74683", got)
	}
	if lo, hi := AtmosphericPressureAt(1000), AtmosphericPressureAt(100); lo >= hi {
		t.Errorf("pressure should fall with elevation: %g at 1000 m vs %g at 100 m", lo, hi)
	}
	if a, b := AtmosphericPressureAt(11000), AtmosphericPressureAt(25000); a != b {
		t.Errorf("elevations above the ceiling should clamp: %g vs %g", a, b)
	}
}
