package math

import "testing"

func TestVec2Length(t *testing.T) {
	if l := (Vec2{3, 4}).Length(); l != 5 {
		t.Errorf("Length = %f, want 5", l)
	}
	if n := (Vec2{}).Normalize(); n != (Vec2{}) {
		t.Errorf("Normalize(0) = %v, want zero", n)
	}
	if n := (Vec2{0, 10}).Normalize(); n != (Vec2{0, 1}) {
		t.Errorf("Normalize = %v, want (0,1)", n)
	}
}

func TestVec2Limit(t *testing.T) {
	tests := []struct {
		in   Vec2
		max  float32
		want Vec2
	}{
		{Vec2{3, 4}, 10, Vec2{3, 4}},
		{Vec2{6, 8}, 5, Vec2{3, 4}},
		{Vec2{}, 1, Vec2{}},
	}
	for _, tt := range tests {
		if got := tt.in.Limit(tt.max); got != tt.want {
			t.Errorf("%v.Limit(%g) = %v, want %v", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 50}

	if !r.Contains(Vec2{10, 10}) || r.Contains(Vec2{110, 20}) {
		t.Error("Contains edge handling is wrong")
	}

	tests := []struct {
		in, want Vec2
	}{
		{Vec2{50, 30}, Vec2{50, 30}},
		{Vec2{-5, 30}, Vec2{10, 30}},
		{Vec2{500, 500}, Vec2{110, 60}},
	}
	for _, tt := range tests {
		if got := r.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
