package hydraulic

import "testing"

func TestValidateVelocity(t *testing.T) {
	tests := []struct {
		name     string
		role     LegRole
		velocity float64
		kinds    []VelocityWarningKind
	}{
		{"suction in band", SuctionLeg, 1.5, nil},
		{"suction too slow", SuctionLeg, 0.3, []VelocityWarningKind{WarnSedimentation}},
		{"suction too fast", SuctionLeg, 3.5, []VelocityWarningKind{WarnCavitation}},
		{"suction at lower bound", SuctionLeg, 0.5, nil},
		{"suction at upper bound", SuctionLeg, 3.0, nil},
		{"discharge in band", DischargeLeg, 2.0, nil},
		{"discharge too slow", DischargeLeg, 0.4, []VelocityWarningKind{WarnSedimentation}},
		{"discharge too fast", DischargeLeg, 5.5, []VelocityWarningKind{WarnErosion}},
		{"discharge suction limit is not discharge limit", DischargeLeg, 4.0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateVelocity(tt.role, tt.velocity)
			if len(got) != len(tt.kinds) {
				t.Fatalf("got %d warnings (%+v), want %d", len(got), got, len(tt.kinds))
			}
			for i, kind := range tt.kinds {
				w := got[i]
				if w.Kind != kind {
					t.Errorf("warning %d kind = %s, want %s", i, w.Kind, kind)
				}
				if w.Leg != tt.role {
					t.Errorf("warning %d leg = %s, want %s", i, w.Leg, tt.role)
				}
				if w.Velocity != tt.velocity {
					t.Errorf("warning %d velocity = %g, want %g", i, w.Velocity, tt.velocity)
				}
				if w.Message == "" {
					t.Errorf("warning %d has no message", i)
				}
			}
		})
	}
}
