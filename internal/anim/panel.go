// internal/anim/panel.go
//
// Time-driven floating panels used for transient notices and buttons.
// Behaviours (fixed for a panel's lifetime):
//   - static: never moves.
//   - slide:  one-shot. Holds its home position for Delay after becoming
//             visible, then travels at Speed in a random direction and hides
//             itself (snapping home) once Duration has elapsed.
//   - bounce: moves back and forth between two bounds at Speed until hidden.
//
// Panels are advanced by the host once per tick with the time since the
// session started (now) and the time since the previous tick (delta).

package anim

import "time"

// Direction of travel. DirNone means "not yet chosen" for slides.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Opposite returns the reverse direction (DirNone stays DirNone).
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}

// Rand is the uniform integer source used to pick slide directions.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Rect is an axis-aligned box in window coordinates (y grows downwards).
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r (edges inclusive).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Kind identifies a panel's behaviour.
type Kind uint8

const (
	KindStatic Kind = iota
	KindSlide
	KindBounce
)

// Slide parameters. Speed is distance per second; Delay and Duration are
// measured from the moment passed to Show.
type Slide struct {
	Speed    float64
	Delay    time.Duration
	Duration time.Duration
}

// Bounce parameters. Lower/Upper bound the axis of Dir: y for Up/Down,
// x for Left/Right. The leading edge (Y+H or X+W) is held against Upper.
type Bounce struct {
	Speed float64
	Dir   Direction
	Lower float64
	Upper float64
}

// Panel is a floating box with one behaviour.
type Panel struct {
	Text string
	Box  Rect

	home    Rect
	visible bool
	kind    Kind
	slide   Slide
	bounce  Bounce
	rng     Rand

	dir     Direction
	shownAt time.Duration
}

// NewStatic builds a panel that never moves.
func NewStatic(text string, box Rect) *Panel {
	return &Panel{Text: text, Box: box, home: box, kind: KindStatic}
}

// NewSlide builds a one-shot sliding notice. rng picks the direction on each
// activation.
func NewSlide(text string, box Rect, s Slide, rng Rand) *Panel {
	return &Panel{Text: text, Box: box, home: box, kind: KindSlide, slide: s, rng: rng}
}

// NewBounce builds a panel that bounces between b.Lower and b.Upper.
func NewBounce(text string, box Rect, b Bounce) *Panel {
	return &Panel{Text: text, Box: box, home: box, kind: KindBounce, bounce: b, dir: b.Dir}
}

func (p *Panel) Visible() bool        { return p.visible }
func (p *Panel) Direction() Direction { return p.dir }

// Show makes the panel visible at now (time since session start). A slide
// starts its timer and draws a direction; an already animating slide keeps
// both.
func (p *Panel) Show(now time.Duration) {
	p.visible = true
	if p.kind == KindSlide && p.dir == DirNone {
		p.shownAt = now
		p.dir = p.randomDirection()
	}
}

// Hide removes the panel. A slide is rewound so the next Show restarts it.
func (p *Panel) Hide() {
	p.visible = false
	if p.kind == KindSlide {
		p.rewind()
	}
}

// Contains reports whether a visible panel covers (x, y).
func (p *Panel) Contains(x, y float64) bool {
	return p.visible && p.Box.Contains(x, y)
}

// Update advances the panel by one host tick.
func (p *Panel) Update(now, delta time.Duration) {
	if !p.visible {
		return
	}
	switch p.kind {
	case KindSlide:
		p.updateSlide(now)
	case KindBounce:
		p.updateBounce(delta)
	}
}

// updateSlide derives the position from the time since Show rather than
// accumulating deltas, so late or skipped ticks land in the same place.
func (p *Panel) updateSlide(now time.Duration) {
	elapsed := now - p.shownAt
	if elapsed >= p.slide.Duration {
		p.visible = false
		p.rewind()
		return
	}
	p.Box = p.home
	moving := elapsed - p.slide.Delay
	if moving <= 0 {
		return
	}
	offset := p.slide.Speed * moving.Seconds()
	switch p.dir {
	case DirLeft:
		p.Box.X -= offset
	case DirRight:
		p.Box.X += offset
	case DirUp:
		p.Box.Y -= offset
	case DirDown:
		p.Box.Y += offset
	}
}

func (p *Panel) updateBounce(delta time.Duration) {
	step := p.bounce.Speed * delta.Seconds()
	switch p.dir {
	case DirUp:
		p.Box.Y -= step
		if p.Box.Y <= p.bounce.Lower {
			p.Box.Y = p.bounce.Lower
			p.dir = p.dir.Opposite()
		}
	case DirDown:
		p.Box.Y += step
		if limit := p.bounce.Upper - p.Box.H; p.Box.Y >= limit {
			p.Box.Y = limit
			p.dir = p.dir.Opposite()
		}
	case DirLeft:
		p.Box.X -= step
		if p.Box.X <= p.bounce.Lower {
			p.Box.X = p.bounce.Lower
			p.dir = p.dir.Opposite()
		}
	case DirRight:
		p.Box.X += step
		if limit := p.bounce.Upper - p.Box.W; p.Box.X >= limit {
			p.Box.X = limit
			p.dir = p.dir.Opposite()
		}
	}
}

func (p *Panel) rewind() {
	p.Box = p.home
	p.dir = DirNone
	p.shownAt = 0
}

var slideDirections = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

func (p *Panel) randomDirection() Direction {
	if p.rng == nil {
		return DirUp
	}
	return slideDirections[p.rng.IntN(len(slideDirections))]
}
