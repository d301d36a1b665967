package plot

import (
	"math"
	"testing"
)

func TestTicks_DefaultView(t *testing.T) {
	xs := Ticks(-10, 10)
	if len(xs) != 11 {
		t.Fatalf("Ticks(-10,10)=%v, want 11 ticks", xs)
	}
	for i, x := range xs {
		want := -10 + 2*float64(i)
		if math.Abs(x-want) > 1e-12 {
			t.Fatalf("tick %d=%v, want %v", i, x, want)
		}
	}
}

func TestTicks_StartAtFirstMultiple(t *testing.T) {
	// Step 0.3: first multiple at or above 0.25 is 0.3.
	xs := Ticks(0.25, 3.25)
	if len(xs) == 0 {
		t.Fatalf("Ticks(0.25,3.25) empty")
	}
	if math.Abs(xs[0]-0.3) > 1e-12 {
		t.Fatalf("first tick=%v, want 0.3", xs[0])
	}
	for i, x := range xs {
		if x < 0.25 || x > 3.25+1e-9 {
			t.Fatalf("tick %d=%v outside [0.25,3.25]", i, x)
		}
	}
	if len(xs) != 10 {
		t.Fatalf("Ticks(0.25,3.25) count=%d, want 10", len(xs))
	}
}

func TestTicks_Degenerate(t *testing.T) {
	for _, iv := range [][2]float64{{0, 0}, {1, -1}, {math.NaN(), 1}, {0, math.Inf(1)}} {
		if xs := Ticks(iv[0], iv[1]); len(xs) != 0 {
			t.Fatalf("Ticks(%v,%v)=%v, want none", iv[0], iv[1], xs)
		}
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{v: 0, want: "0.0"},
		{v: math.Copysign(0, -1), want: "0.0"},
		{v: -0.01, want: "0.0"},
		{v: 2.26, want: "2.3"},
		{v: -10, want: "-10.0"},
		{v: 0.30000000000000004, want: "0.3"},
	}
	for _, tt := range tests {
		if got := FormatTick(tt.v); got != tt.want {
			t.Fatalf("FormatTick(%v)=%q, want %q", tt.v, got, tt.want)
		}
	}
}
