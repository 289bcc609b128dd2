// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess, ordered unset < miss < present < hit.
//   - Cell/Board: the 6x5 grid owned by a Session.
//   - Keyboard: best-known Mark per alphabet letter.
//   - State: playing / won / lost.
//   - Action: the finite set of inputs a Session understands.

package game

import "fmt"

const (
	Rows    = 6
	Cols    = 5
	Letters = 26
)

// Mark represents the evaluation result for a single letter.
// The order matters: keyboard status never moves to a lower Mark.
//   - MarkUnset:   not evaluated yet.
//   - MarkMiss:    letter is not in the answer (or all its copies are used).
//   - MarkPresent: letter is in the answer at another position.
//   - MarkHit:     letter is correct and in the correct position.
type Mark uint8

const (
	MarkUnset Mark = iota
	MarkMiss
	MarkPresent
	MarkHit
)

func (m Mark) String() string {
	switch m {
	case MarkMiss:
		return "miss"
	case MarkPresent:
		return "present"
	case MarkHit:
		return "hit"
	}
	return ""
}

// MarshalText keeps the wire format of the HTTP API readable.
func (m Mark) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Cell is one board square. Letter is an uppercase ASCII letter, 0 when empty.
type Cell struct {
	Letter byte
	Mark   Mark
}

// Board is the full guess grid.
type Board [Rows][Cols]Cell

// Word is a five-letter uppercase sequence.
type Word [Cols]byte

func (w Word) String() string { return string(w[:]) }

// ParseWord validates and uppercases s into a Word.
func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) != Cols {
		return w, fmt.Errorf("%w: %q", ErrBadAnswer, s)
	}
	for i := 0; i < Cols; i++ {
		c, ok := upper(s[i])
		if !ok {
			return w, fmt.Errorf("%w: %q", ErrBadAnswer, s)
		}
		w[i] = c
	}
	return w, nil
}

// upper maps an ASCII letter of either case to uppercase.
func upper(c byte) (byte, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return c, true
	case c >= 'a' && c <= 'z':
		return c - 'a' + 'A', true
	}
	return 0, false
}

// State is the coarse session outcome.
type State uint8

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	}
	return "playing"
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Terminal reports whether the game is over.
func (s State) Terminal() bool { return s != StatePlaying }

// ActionKind tags an Action.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionLetter
	ActionEnter
	ActionDelete
	ActionOpenStats
	ActionCloseStats
	ActionReplay
)

var actionNames = map[ActionKind]string{
	ActionNone:       "none",
	ActionLetter:     "letter",
	ActionEnter:      "enter",
	ActionDelete:     "delete",
	ActionOpenStats:  "open_stats",
	ActionCloseStats: "close_stats",
	ActionReplay:     "replay",
}

func (k ActionKind) String() string { return actionNames[k] }

// ParseActionKind maps a wire name back to its kind.
func ParseActionKind(s string) (ActionKind, bool) {
	for k, name := range actionNames {
		if name == s && k != ActionNone {
			return k, true
		}
	}
	return ActionNone, false
}

// Action is an input routed to Session.Handle. Letter is only meaningful for
// ActionLetter.
type Action struct {
	Kind   ActionKind
	Letter byte
}

func Letter(c byte) Action { return Action{Kind: ActionLetter, Letter: c} }

// Verdict describes what an input did to the session.
type Verdict uint8

const (
	VerdictIgnored Verdict = iota
	VerdictApplied
	VerdictIncomplete
	VerdictUnknownWord
	VerdictContinue
	VerdictWon
	VerdictLost
)

var verdictNames = [...]string{
	VerdictIgnored:     "ignored",
	VerdictApplied:     "applied",
	VerdictIncomplete:  "incomplete",
	VerdictUnknownWord: "unknown_word",
	VerdictContinue:    "continue",
	VerdictWon:         "won",
	VerdictLost:        "lost",
}

func (v Verdict) String() string { return verdictNames[v] }

func (v Verdict) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
