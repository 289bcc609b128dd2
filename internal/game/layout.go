// internal/game/layout.go
//
// Window geometry used for panel placement and pointer hit-testing.
// Dimensions follow the desktop window the game was designed for (1080x800):
// the guess grid is centred near the top, the on-screen keyboard sits below
// it in QWERTY order with ENTER and DELETE on the bottom row, notices appear
// between grid and keyboard, and the PLAY AGAIN / STATISTICS buttons bounce
// beside the grid.

package game

import "github.com/robalobadob/wordle/apps/solo/internal/anim"

const (
	WindowWidth  = 1080.0
	WindowHeight = 800.0

	tileSize = 57.6
	tileGap  = 6.2
	gridTop  = 55.0

	keyWidth  = 42.8
	keyHeight = 57.6
	keyGap    = 6.2
	keysTop   = 575.0

	statsScale = 0.62
)

// qwerty lists keys in on-screen order; rows hold 10, 9 and 7 keys.
const qwerty = "QWERTYUIOPASDFGHJKLZXCVBNM"

// Layout is the resolved geometry of every clickable or animated region.
type Layout struct {
	Grid     anim.Rect
	Keys     [Letters]anim.Rect // indexed by position in qwerty
	Enter    anim.Rect
	Delete   anim.Rect
	Notice   anim.Rect
	Replay   anim.Rect
	SeeStats anim.Rect
	Overlay  anim.Rect
	Close    anim.Rect
}

// DefaultLayout computes the geometry for the standard window.
func DefaultLayout() Layout {
	var l Layout

	gridW := tileSize*Cols + tileGap*(Cols-1)
	gridH := tileSize*Rows + tileGap*(Rows-1)
	l.Grid = anim.Rect{X: (WindowWidth - gridW) / 2, Y: gridTop, W: gridW, H: gridH}

	keysLeft := (WindowWidth - (10*keyWidth + 9*keyGap)) / 2
	x, y := keysLeft, keysTop
	for i := 0; i < Letters; i++ {
		l.Keys[i] = anim.Rect{X: x, Y: y, W: keyWidth, H: keyHeight}
		x += keyWidth + keyGap
		switch i {
		case 9:
			x = keysLeft + keyWidth/2
			y += keyHeight + keyGap
		case 18:
			x = keysLeft + 3*keyWidth/2 + keyGap
			y += keyHeight + keyGap
		}
	}
	bottom := keysTop + 2*keyGap + 2*keyHeight
	l.Enter = anim.Rect{X: keysLeft, Y: bottom, W: keyWidth * 1.5, H: keyHeight}
	l.Delete = anim.Rect{X: keysLeft + 8*keyGap + 8.5*keyWidth, Y: bottom, W: keyWidth * 1.5, H: keyHeight}

	gridBottom := l.Grid.Y + l.Grid.H
	gridRight := l.Grid.X + l.Grid.W

	nw, nh := keyWidth*3.2, keyHeight*8/7
	l.Notice = anim.Rect{
		X: l.Grid.X + l.Grid.W/2 - nw/2,
		Y: gridBottom + (keysTop-gridBottom)/2 - nh/2,
		W: nw, H: nh,
	}

	bw, bh := keyWidth*3, keyHeight*1.8
	by := l.Grid.Y + l.Grid.H/2 - bh/2
	l.Replay = anim.Rect{X: gridRight + (WindowWidth-gridRight)/2 - bw/2, Y: by, W: bw, H: bh}
	l.SeeStats = anim.Rect{X: l.Grid.X/2 - bw/2, Y: by, W: bw, H: bh}

	ow, oh := WindowWidth*statsScale, WindowHeight*statsScale
	l.Overlay = anim.Rect{X: (WindowWidth - ow) / 2, Y: (WindowHeight - oh) / 2, W: ow, H: oh}
	l.Close = anim.Rect{X: l.Overlay.X + ow - 20, Y: l.Overlay.Y + 5, W: 15, H: 28}
	return l
}

// KeyAt returns the letter whose on-screen key covers (x, y).
func (l Layout) KeyAt(x, y float64) (byte, bool) {
	for i, r := range l.Keys {
		if r.Contains(x, y) {
			return qwerty[i], true
		}
	}
	return 0, false
}

// KeyRect returns the on-screen key of an uppercase letter.
func (l Layout) KeyRect(c byte) (anim.Rect, bool) {
	for i := 0; i < len(qwerty); i++ {
		if qwerty[i] == c {
			return l.Keys[i], true
		}
	}
	return anim.Rect{}, false
}
