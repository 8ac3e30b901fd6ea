package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestClampLength(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		max  float64
		want float64
	}{
		{"shorter untouched", V3(1, 2, 2), 15, 3},
		{"longer rescaled", V3(0, 0, 30), 15, 15},
		{"diagonal rescaled", V3(10, 10, 10), 5, 5},
		{"zero stays zero", V3(0, 0, 0), 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampLength(tt.in, tt.max)
			if math.Abs(got.Len()-tt.want) > epsilon {
				t.Errorf("Expected length %f, got %f", tt.want, got.Len())
			}
		})
	}
}

func TestClampLengthPreservesDirection(t *testing.T) {
	in := V3(3, 0, 4)
	got := ClampLength(in, 1)
	if math.Abs(got[0]-0.6) > epsilon || math.Abs(got[2]-0.8) > epsilon {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", got)
	}
	if in[0] != 3 {
		t.Errorf("Input mutated: %v", in)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(V3(0, 0, 0), V3(0, 3, 4)); math.Abs(d-5) > epsilon {
		t.Errorf("Expected 5, got %f", d)
	}
}

func TestSanitize(t *testing.T) {
	v := V3(math.NaN(), 2, math.Inf(1))
	if IsFinite(v) {
		t.Fatal("Expected non-finite vector")
	}
	s := Sanitize(v)
	if !IsFinite(s) {
		t.Errorf("Expected finite vector after sanitize, got %v", s)
	}
	if s[1] != 2 {
		t.Errorf("Expected finite component preserved, got %f", s[1])
	}
}

func TestSignAndClamp(t *testing.T) {
	if Sign(-0.5) != -1 || Sign(0) != 1 || Sign(2) != 1 {
		t.Error("Sign mismatch")
	}
	if Clamp(7, -6, -4) != -4 || Clamp(-9, -6, -4) != -6 || Clamp(-5, -6, -4) != -5 {
		t.Error("Clamp mismatch")
	}
}
