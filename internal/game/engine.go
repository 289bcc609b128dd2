// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Own the board, keyboard status, cursor, answer and animated panels.
//   - Apply typed letters, deletions and submissions (6 rows x 5 columns).
//   - Score accepted guesses (see feedback.go) and track playing → won/lost.
//   - Record exactly one statistics result per finished game.
//   - Route actions while the statistics overlay is open (close only).
//
// Notes:
//   - Answers and the allowed list come from a WordSource (words package).
//   - Statistics go through a StatsBook (stats package), shared across resets.
//   - The host calls Update once per frame; nothing here blocks or sleeps.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solo/internal/anim"
	"github.com/robalobadob/wordle/apps/solo/internal/stats"
)

var (
	ErrNoWords   = errors.New("game: word source is required")
	ErrNoStats   = errors.New("game: statistics book is required")
	ErrBadAnswer = errors.New("game: answer must be five letters a-z")
)

// WordSource is the dictionary a session consults.
type WordSource interface {
	// Contains reports whether a lowercase five-letter word may be guessed.
	Contains(word string) bool
	// RandomAnswer returns a five-letter answer.
	RandomAnswer() string
}

// StatsBook receives one result per finished game.
type StatsBook interface {
	RecordWin(attempts int) error
	RecordLoss() error
	Record() stats.Record
}

var (
	noticeSlide = anim.Slide{Speed: 630, Delay: 1250 * time.Millisecond, Duration: 2500 * time.Millisecond}
	buttonSpeed = 40.0
)

// Option customises a Session.
type Option func(*Session)

// WithAnswer fixes the first answer (testing); resets still draw randomly.
func WithAnswer(answer string) Option {
	return func(s *Session) { s.fixed = answer }
}

// WithRand sets the source used for notice slide directions.
func WithRand(r anim.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithLayout overrides the window geometry.
func WithLayout(l Layout) Option {
	return func(s *Session) { s.layout = l }
}

// Session is one player's game, reusable across Reset.
type Session struct {
	ID string

	words  WordSource
	book   StatsBook
	rng    anim.Rand
	layout Layout
	fixed  string

	answer  Word
	board   Board
	keys    Keyboard
	row     int
	col     int
	state   State
	overlay bool
	clock   time.Duration // now of the latest Update

	won      *anim.Panel
	reveal   *anim.Panel
	invalid  *anim.Panel
	replay   *anim.Panel
	seeStats *anim.Panel
}

// New constructs a session and draws its first answer.
func New(words WordSource, book StatsBook, opts ...Option) (*Session, error) {
	if words == nil {
		return nil, ErrNoWords
	}
	if book == nil {
		return nil, ErrNoStats
	}
	s := &Session{
		ID:     randomID(),
		words:  words,
		book:   book,
		layout: DefaultLayout(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = mrand.New(mrand.NewPCG(mrand.Uint64(), mrand.Uint64()))
	}

	ans := s.fixed
	if ans == "" {
		ans = words.RandomAnswer()
	}
	w, err := ParseWord(ans)
	if err != nil {
		return nil, err
	}
	s.start(w)
	return s, nil
}

// Reset discards the current game and starts a new one with a fresh answer.
// Statistics are kept.
func (s *Session) Reset() error {
	w, err := ParseWord(s.words.RandomAnswer())
	if err != nil {
		return fmt.Errorf("draw answer: %w", err)
	}
	s.start(w)
	return nil
}

func (s *Session) start(answer Word) {
	s.answer = answer
	s.board = Board{}
	s.keys = Keyboard{}
	s.row, s.col = 0, 0
	s.state = StatePlaying
	s.overlay = false

	l := s.layout
	s.won = anim.NewStatic("YOU WON", l.Notice)
	s.reveal = anim.NewStatic(answer.String(), l.Notice)
	s.invalid = anim.NewSlide("Invalid word", l.Notice, noticeSlide, s.rng)
	s.replay = anim.NewBounce("PLAY AGAIN", l.Replay, anim.Bounce{
		Speed: buttonSpeed, Dir: anim.DirUp, Lower: l.Grid.Y, Upper: l.Grid.Y + l.Grid.H,
	})
	s.seeStats = anim.NewBounce("STATISTICS", l.SeeStats, anim.Bounce{
		Speed: buttonSpeed, Dir: anim.DirDown, Lower: l.Grid.Y, Upper: l.Grid.Y + l.Grid.H,
	})
}

// TypeLetter writes c into the cursor cell. No-op when the row is full, the
// game is over, or c is not a letter.
func (s *Session) TypeLetter(c byte) bool {
	if s.state.Terminal() || s.col == Cols {
		return false
	}
	u, ok := upper(c)
	if !ok {
		return false
	}
	s.board[s.row][s.col] = Cell{Letter: u}
	s.col++
	return true
}

// DeleteLetter clears the last typed cell of the current row.
func (s *Session) DeleteLetter() bool {
	if s.state.Terminal() || s.col == 0 {
		return false
	}
	s.col--
	s.board[s.row][s.col] = Cell{}
	return true
}

// Submit evaluates the current row.
//
// Validation:
//   - Game must not be finished.
//   - Row must be full (else "Invalid word" notice, VerdictIncomplete).
//   - Word must be in the dictionary (else notice, VerdictUnknownWord).
//
// State transitions:
//   - All hits → StateWon, RecordWin(row+1).
//   - Else on the last row → StateLost, RecordLoss().
//   - Else advance to the next row.
func (s *Session) Submit() Verdict {
	if s.state.Terminal() {
		return VerdictIgnored
	}
	if s.col != Cols {
		s.invalid.Show(s.clock)
		return VerdictIncomplete
	}
	var guess Word
	for i := 0; i < Cols; i++ {
		guess[i] = s.board[s.row][i].Letter
	}
	if !s.words.Contains(strings.ToLower(guess.String())) {
		s.invalid.Show(s.clock)
		return VerdictUnknownWord
	}

	marks := Classify(guess, s.answer)
	for i := 0; i < Cols; i++ {
		s.board[s.row][i].Mark = marks[i]
	}
	s.keys.Apply(guess, marks)

	switch {
	case allHit(marks):
		s.state = StateWon
		s.won.Show(s.clock)
		s.finish(s.book.RecordWin(s.row + 1))
		return VerdictWon
	case s.row == Rows-1:
		s.state = StateLost
		s.reveal.Show(s.clock)
		s.finish(s.book.RecordLoss())
		return VerdictLost
	}
	s.row++
	s.col = 0
	return VerdictContinue
}

func (s *Session) finish(saveErr error) {
	s.replay.Show(s.clock)
	s.seeStats.Show(s.clock)
	ev := log.Info()
	if saveErr != nil {
		ev = log.Warn().Err(saveErr)
	}
	ev.Str("game", s.ID).Str("state", s.state.String()).Int("row", s.row+1).Msg("game finished")
}

// OpenStats shows the statistics overlay. Fails if it is already open.
func (s *Session) OpenStats() bool {
	if s.overlay {
		return false
	}
	s.overlay = true
	return true
}

// CloseStats hides the statistics overlay.
func (s *Session) CloseStats() bool {
	if !s.overlay {
		return false
	}
	s.overlay = false
	return true
}

// Handle dispatches one action. While the overlay is open only
// ActionCloseStats is routed.
func (s *Session) Handle(a Action) Verdict {
	if s.overlay {
		if a.Kind == ActionCloseStats && s.CloseStats() {
			return VerdictApplied
		}
		return VerdictIgnored
	}
	switch a.Kind {
	case ActionLetter:
		return applied(s.TypeLetter(a.Letter))
	case ActionDelete:
		return applied(s.DeleteLetter())
	case ActionEnter:
		return s.Submit()
	case ActionOpenStats:
		return applied(s.OpenStats())
	case ActionReplay:
		if !s.state.Terminal() {
			return VerdictIgnored
		}
		if err := s.Reset(); err != nil {
			log.Error().Err(err).Str("game", s.ID).Msg("replay")
			return VerdictIgnored
		}
		return VerdictApplied
	}
	return VerdictIgnored
}

func applied(ok bool) Verdict {
	if ok {
		return VerdictApplied
	}
	return VerdictIgnored
}

// Click resolves a pointer press to an action using the session layout.
// Hidden panels are not clickable.
func (s *Session) Click(x, y float64) (Action, bool) {
	l := s.layout
	if s.overlay {
		if l.Close.Contains(x, y) {
			return Action{Kind: ActionCloseStats}, true
		}
		return Action{}, false
	}
	if c, ok := l.KeyAt(x, y); ok {
		return Letter(c), true
	}
	switch {
	case l.Delete.Contains(x, y):
		return Action{Kind: ActionDelete}, true
	case l.Enter.Contains(x, y):
		return Action{Kind: ActionEnter}, true
	case s.seeStats.Contains(x, y):
		return Action{Kind: ActionOpenStats}, true
	case s.replay.Contains(x, y):
		return Action{Kind: ActionReplay}, true
	}
	return Action{}, false
}

// Update advances every panel by one host tick. now also stamps panels
// shown before the next tick.
func (s *Session) Update(now, delta time.Duration) {
	s.clock = now
	for _, p := range s.panels() {
		p.Update(now, delta)
	}
}

func (s *Session) panels() []*anim.Panel {
	return []*anim.Panel{s.won, s.reveal, s.invalid, s.replay, s.seeStats}
}

func (s *Session) State() State          { return s.state }
func (s *Session) Cursor() (row, col int) { return s.row, s.col }
func (s *Session) Board() Board          { return s.board }
func (s *Session) Keyboard() Keyboard    { return s.keys }
func (s *Session) Answer() Word          { return s.answer }
func (s *Session) OverlayOpen() bool     { return s.overlay }
func (s *Session) Layout() Layout        { return s.layout }
func (s *Session) Stats() stats.Record   { return s.book.Record() }

// NoticeVisible reports whether the "Invalid word" notice is on screen.
func (s *Session) NoticeVisible() bool { return s.invalid.Visible() }

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
