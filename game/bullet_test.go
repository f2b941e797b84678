package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		want    mgl64.Vec2
	}{
		{name: "east", heading: 0, want: mgl64.Vec2{1, 0}},
		{name: "south", heading: math.Pi / 2, want: mgl64.Vec2{0, 1}},
		{name: "west", heading: math.Pi, want: mgl64.Vec2{-1, 0}},
		{name: "north", heading: -math.Pi / 2, want: mgl64.Vec2{0, -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Direction(tc.heading)
			if !got.ApproxEqualThreshold(tc.want, 1e-12) {
				t.Errorf("Direction(%f) = %v, want %v", tc.heading, got, tc.want)
			}
		})
	}
}

func TestBulletAdvanceMovesSpeedTimesDt(t *testing.T) {
	for _, heading := range []float64{0, 0.3, math.Pi / 2, 2.5, -1.2} {
		start := mgl64.Vec2{100, 50}
		b := Bullet{Position: start, Heading: heading, Speed: 200}
		dt := 0.25

		b.Advance(dt)

		moved := b.Position.Sub(start)
		if math.Abs(moved.Len()-200*dt) > 1e-9 {
			t.Errorf("heading %f: moved %f, want %f", heading, moved.Len(), 200*dt)
		}
		if got := math.Atan2(moved.Y(), moved.X()); math.Abs(got-heading) > 1e-9 {
			t.Errorf("heading %f: moved along %f", heading, got)
		}
	}
}

func TestBulletAdvanceEast(t *testing.T) {
	b := Bullet{Position: mgl64.Vec2{10, 20}, Heading: 0, Speed: 200}
	b.Advance(0.5)
	if b.Position.X() != 110 || b.Position.Y() != 20 {
		t.Fatalf("position = %v, want (110, 20)", b.Position)
	}
}

func TestBulletAdvanceZeroDt(t *testing.T) {
	b := Bullet{Position: mgl64.Vec2{10, 20}, Heading: 1, Speed: 200}
	b.Advance(0)
	if b.Position != (mgl64.Vec2{10, 20}) {
		t.Fatalf("position = %v, want unchanged", b.Position)
	}
}

func TestBulletSetPruneCallsHookForDroppedOnly(t *testing.T) {
	var removed []Bullet
	set := NewBulletSet(func(b Bullet) { removed = append(removed, b) })

	xs := []float64{10, 980, 20, 2000, 30}
	for _, x := range xs {
		set.Add(Bullet{Position: mgl64.Vec2{x, 0}, Speed: 200})
	}

	dropped := set.Prune(ScreenBound{Margin: 50}, View{Width: 1024, Height: 768})

	if dropped != 2 {
		t.Fatalf("dropped = %d, want 2", dropped)
	}
	if len(removed) != 2 {
		t.Fatalf("hook called %d times, want 2", len(removed))
	}
	if removed[0].Position.X() != 980 || removed[1].Position.X() != 2000 {
		t.Fatalf("hook saw %v", removed)
	}

	kept := set.All()
	wantKept := []float64{10, 20, 30}
	if len(kept) != len(wantKept) {
		t.Fatalf("kept %d bullets, want %d", len(kept), len(wantKept))
	}
	for i, b := range kept {
		if b.Position.X() != wantKept[i] {
			t.Errorf("kept[%d].x = %f, want %f", i, b.Position.X(), wantKept[i])
		}
	}
}

func TestBulletSetPruneWithoutHook(t *testing.T) {
	set := NewBulletSet(nil)
	set.Add(Bullet{Position: mgl64.Vec2{5000, 0}})

	if n := set.Prune(ScreenBound{Margin: 50}, View{Width: 1024}); n != 1 {
		t.Fatalf("dropped = %d, want 1", n)
	}
	if set.Len() != 0 {
		t.Fatalf("len = %d, want 0", set.Len())
	}
}

func TestBulletSetAdvance(t *testing.T) {
	set := NewBulletSet(nil)
	set.Add(Bullet{Position: mgl64.Vec2{0, 0}, Heading: 0, Speed: 100})
	set.Add(Bullet{Position: mgl64.Vec2{0, 0}, Heading: math.Pi, Speed: 50})

	set.Advance(1)

	all := set.All()
	if all[0].Position.X() != 100 {
		t.Errorf("bullet 0 x = %f, want 100", all[0].Position.X())
	}
	if math.Abs(all[1].Position.X()+50) > 1e-9 {
		t.Errorf("bullet 1 x = %f, want -50", all[1].Position.X())
	}
}
