package game

import (
	"math"
	"testing"
)

func TestMoveNeverExceedsUnitLength(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		in := Input{
			Left:  mask&1 != 0,
			Right: mask&2 != 0,
			Up:    mask&4 != 0,
			Down:  mask&8 != 0,
		}
		if l := in.Move().Len(); l > 1+1e-12 {
			t.Errorf("mask %04b: |move| = %f, want <= 1", mask, l)
		}
	}
}

func TestMoveDirections(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		wantX float64
		wantY float64
	}{
		{name: "none", in: Input{}, wantX: 0, wantY: 0},
		{name: "right", in: Input{Right: true}, wantX: 1, wantY: 0},
		{name: "left", in: Input{Left: true}, wantX: -1, wantY: 0},
		{name: "up", in: Input{Up: true}, wantX: 0, wantY: -1},
		{name: "down", in: Input{Down: true}, wantX: 0, wantY: 1},
		{name: "left and right cancel", in: Input{Left: true, Right: true}, wantX: 0, wantY: 0},
		{name: "left up diagonal", in: Input{Left: true, Up: true}, wantX: -math.Sqrt2 / 2, wantY: -math.Sqrt2 / 2},
		{name: "right down diagonal", in: Input{Right: true, Down: true}, wantX: math.Sqrt2 / 2, wantY: math.Sqrt2 / 2},
		{name: "all four", in: Input{Left: true, Right: true, Up: true, Down: true}, wantX: 0, wantY: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Move()
			if math.Abs(got.X()-tc.wantX) > 1e-9 || math.Abs(got.Y()-tc.wantY) > 1e-9 {
				t.Errorf("Move() = (%f, %f), want (%f, %f)", got.X(), got.Y(), tc.wantX, tc.wantY)
			}
		})
	}
}

func TestMoveLeftUpHasUnitLengthAndAngle(t *testing.T) {
	v := Input{Left: true, Up: true}.Move()
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Fatalf("|move| = %f, want 1", v.Len())
	}
	angle := math.Atan2(v.Y(), v.X())
	if math.Abs(angle-(-3*math.Pi/4)) > 1e-12 {
		t.Fatalf("angle = %f, want %f", angle, -3*math.Pi/4)
	}
}

func TestTriggerFiresOnRisingEdgeOnly(t *testing.T) {
	var trig Trigger
	held := []bool{false, true, true, true, false, true, false}
	want := []bool{false, true, false, false, false, true, false}

	for i, h := range held {
		if got := trig.Update(h); got != want[i] {
			t.Fatalf("tick %d: Update(%v) = %v, want %v", i, h, got, want[i])
		}
	}
}
