package movement

import (
	"math"
	"testing"
)

func TestPhysicsConfigDerivation(t *testing.T) {
	p := NewPhysicsConfig(4, 1, 0.4)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"gravity", p.Gravity(), -50},
		{"max jump velocity", p.MaxJumpVelocity(), 20},
		{"min jump velocity", p.MinJumpVelocity(), 10},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestPhysicsConfigSettersRederive(t *testing.T) {
	p := NewPhysicsConfig(4, 1, 0.4)

	p.SetTimeToJumpApex(0.5)
	if math.Abs(p.Gravity()+32) > 1e-9 || math.Abs(p.MaxJumpVelocity()-16) > 1e-9 || math.Abs(p.MinJumpVelocity()-8) > 1e-9 {
		t.Errorf("after SetTimeToJumpApex: g=%v max=%v min=%v", p.Gravity(), p.MaxJumpVelocity(), p.MinJumpVelocity())
	}

	p.SetMaxJumpHeight(2)
	if math.Abs(p.Gravity()+16) > 1e-9 || math.Abs(p.MaxJumpVelocity()-8) > 1e-9 {
		t.Errorf("after SetMaxJumpHeight: g=%v max=%v", p.Gravity(), p.MaxJumpVelocity())
	}
	if want := math.Sqrt(2 * 16 * 1); math.Abs(p.MinJumpVelocity()-want) > 1e-9 {
		t.Errorf("min jump velocity = %v, want %v", p.MinJumpVelocity(), want)
	}

	p.SetMinJumpHeight(0.5)
	if want := math.Sqrt(2 * 16 * 0.5); math.Abs(p.MinJumpVelocity()-want) > 1e-9 {
		t.Errorf("min jump velocity = %v, want %v", p.MinJumpVelocity(), want)
	}
}

func TestPhysicsConfigFloorsTimeToApex(t *testing.T) {
	for _, apex := range []float64{0, -1} {
		p := NewPhysicsConfig(4, 1, apex)
		if p.TimeToJumpApex() <= 0 {
			t.Errorf("apex %v: time not floored: %v", apex, p.TimeToJumpApex())
		}
		if math.IsInf(p.Gravity(), 0) || math.IsNaN(p.Gravity()) {
			t.Errorf("apex %v: gravity not finite: %v", apex, p.Gravity())
		}
	}
}
