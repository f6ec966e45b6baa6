package geom

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero", V(0, 0), V(0, 0)},
		{"axis", V(5, 0), V(1, 0)},
		{"negative", V(0, -3), V(0, -1)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_UnitOrZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := V(rapid.Float64Range(-1e6, 1e6).Draw(t, "x"), rapid.Float64Range(-1e6, 1e6).Draw(t, "y"))
		n := v.Normalize()
		if v.IsZero() {
			if !n.IsZero() {
				t.Fatalf("Normalize(zero) = %v, want zero", n)
			}
			return
		}
		if math.Abs(n.Len()-1) > 1e-9 {
			t.Fatalf("len(Normalize(%v)) = %f, want 1", v, n.Len())
		}
	})
}

func TestDirection_Coincident(t *testing.T) {
	p := V(10, 10)
	if d := Direction(p, p); !d.IsZero() {
		t.Errorf("Direction(p, p) = %v, want zero", d)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := RectCentered(V(0, 0), 20)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same", RectCentered(V(0, 0), 20), true},
		{"inside", RectCentered(V(1, 1), 2), true},
		{"touching", RectCentered(V(20, 0), 20), true},
		{"apart x", RectCentered(V(21, 0), 20), false},
		{"apart y", RectCentered(V(0, -30), 20), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectClamp(t *testing.T) {
	field := R(0, 0, 1600, 1100)
	got := field.Clamp(V(-5, 2000))
	if got != V(0, 1100) {
		t.Errorf("Clamp = %v, want (0, 1100)", got)
	}
	if !field.Contains(got) {
		t.Errorf("clamped point %v is outside the field", got)
	}
}

func TestRect_Center(t *testing.T) {
	r := R(10, 20, 100, 40)
	if got := r.Center(); got != V(60, 40) {
		t.Errorf("Center() = %v, want (60, 40)", got)
	}
	if got := RectCentered(V(-5, 7), 12).Center(); got != V(-5, 7) {
		t.Errorf("RectCentered center = %v", got)
	}
}
