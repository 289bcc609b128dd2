package anim

import (
	"math"
	"testing"
	"time"
)

type fixedRand struct{ n int }

func (f fixedRand) IntN(int) int { return f.n }

type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) IntN(int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

var box = Rect{X: 100, Y: 200, W: 40, H: 20}

func testSlide() Slide {
	return Slide{Speed: 100, Delay: time.Second, Duration: 2 * time.Second}
}

func TestSlide_HiddenPanelDoesNothing(t *testing.T) {
	p := NewSlide("n", box, testSlide(), fixedRand{0})
	p.Update(5*time.Second, 16*time.Millisecond)
	if p.Visible() || p.Direction() != DirNone || p.Box != box {
		t.Fatalf("hidden slide changed: visible=%v dir=%v box=%+v", p.Visible(), p.Direction(), p.Box)
	}
}

func TestSlide_HoldsBeforeDelay(t *testing.T) {
	p := NewSlide("n", box, testSlide(), fixedRand{1}) // right
	p.Show(10 * time.Second)
	p.Update(10*time.Second, 0)
	p.Update(10*time.Second+500*time.Millisecond, 500*time.Millisecond)
	if p.Box != box {
		t.Fatalf("expected home position before delay, got %+v", p.Box)
	}
	if p.Direction() != DirRight {
		t.Fatalf("expected right, got %v", p.Direction())
	}
}

func TestSlide_MovesAfterDelay(t *testing.T) {
	p := NewSlide("n", box, testSlide(), fixedRand{2}) // up
	p.Show(0)
	p.Update(0, 0)
	p.Update(1500*time.Millisecond, 1500*time.Millisecond)
	if !near(p.Box.Y, box.Y-50) || p.Box.X != box.X {
		t.Fatalf("expected y=%.1f, got %+v", box.Y-50, p.Box)
	}
}

func TestSlide_SkippedTicksLandInSamePlace(t *testing.T) {
	a := NewSlide("n", box, testSlide(), fixedRand{0}) // left
	b := NewSlide("n", box, testSlide(), fixedRand{0})
	a.Show(0)
	b.Show(0)
	a.Update(0, 0)
	b.Update(0, 0)
	for now := 16 * time.Millisecond; now <= 1800*time.Millisecond; now += 16 * time.Millisecond {
		a.Update(now, 16*time.Millisecond)
	}
	a.Update(1800*time.Millisecond, 0)
	b.Update(1800*time.Millisecond, 1800*time.Millisecond)
	if !near(a.Box.X, b.Box.X) {
		t.Fatalf("ticked %.3f vs skipped %.3f", a.Box.X, b.Box.X)
	}
	if !near(b.Box.X, box.X-80) {
		t.Fatalf("expected x=%.1f, got %.3f", box.X-80, b.Box.X)
	}
}

func TestSlide_HidesAndRewindsAtDuration(t *testing.T) {
	p := NewSlide("n", box, testSlide(), fixedRand{3})
	p.Show(time.Second)
	p.Update(time.Second, 0)
	p.Update(2500*time.Millisecond, 1500*time.Millisecond)
	if p.Box == box {
		t.Fatal("expected slide to have moved")
	}
	p.Update(3*time.Second, 500*time.Millisecond)
	if p.Visible() {
		t.Fatal("slide should hide once duration elapsed")
	}
	if p.Box != box || p.Direction() != DirNone {
		t.Fatalf("expected rewind, got box=%+v dir=%v", p.Box, p.Direction())
	}
}

func TestSlide_RedrawsDirectionOnNextActivation(t *testing.T) {
	rng := &seqRand{vals: []int{0, 3}}
	p := NewSlide("n", box, testSlide(), rng)
	p.Show(0)
	p.Update(0, 0)
	if p.Direction() != DirLeft {
		t.Fatalf("first activation: want left, got %v", p.Direction())
	}
	p.Update(2*time.Second, 2*time.Second)
	p.Show(5 * time.Second)
	p.Update(5*time.Second, 3*time.Second)
	if p.Direction() != DirDown {
		t.Fatalf("second activation: want down, got %v", p.Direction())
	}
	// timer restarted at 5s: still holding at 5.5s
	p.Update(5500*time.Millisecond, 500*time.Millisecond)
	if p.Box != box {
		t.Fatalf("restarted slide should hold, got %+v", p.Box)
	}
}

func TestSlide_ShowWhileAnimatingKeepsDirection(t *testing.T) {
	rng := &seqRand{vals: []int{1, 2}}
	p := NewSlide("n", box, testSlide(), rng)
	p.Show(0)
	p.Update(0, 0)
	p.Update(1200*time.Millisecond, 1200*time.Millisecond)
	p.Show(1200 * time.Millisecond)
	p.Update(1400*time.Millisecond, 200*time.Millisecond)
	if p.Direction() != DirRight {
		t.Fatalf("want right kept, got %v", p.Direction())
	}
	if !near(p.Box.X, box.X+40) {
		t.Fatalf("expected timer to continue, got x=%.3f", p.Box.X)
	}
}

func TestBounce_ReversesExactlyAtLowerBound(t *testing.T) {
	// Moving up from y=150 towards the lower bound 100.
	p := NewBounce("b", Rect{X: 0, Y: 150, W: 10, H: 20}, Bounce{Speed: 40, Dir: DirUp, Lower: 100, Upper: 400})
	p.Show(0)
	prev := p.Box.Y
	reversed := false
	for i := 0; i < 200; i++ {
		p.Update(0, 100*time.Millisecond)
		if p.Box.Y < 100 {
			t.Fatalf("tick %d overshot lower bound: y=%.3f", i, p.Box.Y)
		}
		if !reversed && p.Direction() == DirDown {
			reversed = true
			if p.Box.Y != 100 {
				t.Fatalf("expected reversal on the bound, y=%.3f", p.Box.Y)
			}
			prev = p.Box.Y
			p.Update(0, 100*time.Millisecond)
			if p.Box.Y <= prev {
				t.Fatalf("expected to move down after reversal, %.3f -> %.3f", prev, p.Box.Y)
			}
			break
		}
		if p.Box.Y > prev {
			t.Fatalf("moved down before reaching bound: %.3f -> %.3f", prev, p.Box.Y)
		}
		prev = p.Box.Y
	}
	if !reversed {
		t.Fatal("bounce never reversed")
	}
}

func TestBounce_LeadingEdgeHitsUpperBound(t *testing.T) {
	p := NewBounce("b", Rect{X: 0, Y: 360, W: 10, H: 20}, Bounce{Speed: 40, Dir: DirDown, Lower: 100, Upper: 400})
	p.Show(0)
	p.Update(0, time.Second) // 360 -> 400 clamps to 380
	if p.Box.Y != 380 || p.Direction() != DirUp {
		t.Fatalf("want y=380 dir=up, got y=%.3f dir=%v", p.Box.Y, p.Direction())
	}
}

func TestBounce_Horizontal(t *testing.T) {
	p := NewBounce("b", Rect{X: 15, Y: 0, W: 10, H: 10}, Bounce{Speed: 10, Dir: DirLeft, Lower: 10, Upper: 50})
	p.Show(0)
	p.Update(0, time.Second)
	if p.Box.X != 10 || p.Direction() != DirRight {
		t.Fatalf("want x=10 dir=right, got x=%.3f dir=%v", p.Box.X, p.Direction())
	}
	p.Update(0, 10*time.Second)
	if p.Box.X != 40 || p.Direction() != DirLeft {
		t.Fatalf("want x=40 dir=left, got x=%.3f dir=%v", p.Box.X, p.Direction())
	}
}

func TestBounce_HiddenDoesNotMove(t *testing.T) {
	p := NewBounce("b", box, Bounce{Speed: 40, Dir: DirUp, Lower: 0, Upper: 1000})
	p.Update(0, time.Second)
	if p.Box != box {
		t.Fatalf("hidden bounce moved: %+v", p.Box)
	}
}

func TestStatic_NeverMoves(t *testing.T) {
	p := NewStatic("s", box)
	p.Show(0)
	p.Update(time.Hour, time.Hour)
	if p.Box != box || !p.Visible() {
		t.Fatalf("static panel changed: %+v", p.Box)
	}
}

func TestContains_RequiresVisibility(t *testing.T) {
	p := NewStatic("s", box)
	if p.Contains(110, 210) {
		t.Fatal("hidden panel must not be clickable")
	}
	p.Show(0)
	if !p.Contains(110, 210) {
		t.Fatal("visible panel should contain point")
	}
	if p.Contains(10, 10) {
		t.Fatal("point outside box")
	}
}

func TestDirection_Opposite(t *testing.T) {
	cases := map[Direction]Direction{DirLeft: DirRight, DirRight: DirLeft, DirUp: DirDown, DirDown: DirUp, DirNone: DirNone}
	for in, want := range cases {
		if got := in.Opposite(); got != want {
			t.Fatalf("%v.Opposite() = %v, want %v", in, got, want)
		}
	}
}

func TestSlide_TimerStartsAtShow(t *testing.T) {
	p := NewSlide("n", box, testSlide(), fixedRand{1})
	p.Show(0)
	if p.Direction() != DirRight {
		t.Fatalf("direction should be drawn on show, got %v", p.Direction())
	}
	// The first tick arrives long after the slide should have finished.
	p.Update(10*time.Second, 10*time.Second)
	if p.Visible() || p.Box != box {
		t.Fatalf("late first tick: visible=%v box=%+v", p.Visible(), p.Box)
	}
}

func TestSlide_LateFirstTickMidSlide(t *testing.T) {
	p := NewSlide("n", box, testSlide(), fixedRand{3}) // down
	p.Show(4 * time.Second)
	p.Update(5500*time.Millisecond, 5500*time.Millisecond)
	if !near(p.Box.Y, box.Y+50) {
		t.Fatalf("expected y=%.1f measured from show, got %.3f", box.Y+50, p.Box.Y)
	}
}
