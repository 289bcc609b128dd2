// internal/game/view.go
//
// Read-only snapshot of a Session for hosts (JSON for the HTTP API, plain
// structs for the terminal renderer).

package game

import "github.com/robalobadob/wordle/apps/solo/internal/anim"

// CellView is one board square.
type CellView struct {
	Letter string `json:"letter"`
	Mark   Mark   `json:"mark"`
}

// PanelView is a visible panel.
type PanelView struct {
	Name string  `json:"name"`
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

// StatsView summarises the statistics record.
type StatsView struct {
	Wins        [6]int     `json:"wins"`
	Losses      int        `json:"losses"`
	Last        int        `json:"last,omitempty"`
	GamesPlayed int        `json:"gamesPlayed"`
	WinRate     float64    `json:"winRate"`
	MostWins    int        `json:"mostWins"`
	Bars        [6]float64 `json:"bars"`
}

// View is the full snapshot.
type View struct {
	ID       string          `json:"id"`
	State    State           `json:"state"`
	Row      int             `json:"row"`
	Col      int             `json:"col"`
	Board    [][]CellView    `json:"board"`
	Keyboard map[string]Mark `json:"keyboard"`
	Overlay  bool            `json:"overlay"`
	Panels   []PanelView     `json:"panels"`
	Answer   string          `json:"answer,omitempty"`
	Stats    StatsView       `json:"stats"`
}

// Snapshot copies the session state into a View.
func (s *Session) Snapshot() View {
	v := View{
		ID:       s.ID,
		State:    s.state,
		Row:      s.row,
		Col:      s.col,
		Board:    make([][]CellView, Rows),
		Keyboard: make(map[string]Mark, Letters),
		Overlay:  s.overlay,
		Panels:   []PanelView{},
		Stats:    StatsSummary(s.book),
	}
	for r := 0; r < Rows; r++ {
		v.Board[r] = make([]CellView, Cols)
		for c := 0; c < Cols; c++ {
			cell := s.board[r][c]
			if cell.Letter != 0 {
				v.Board[r][c].Letter = string(cell.Letter)
			}
			v.Board[r][c].Mark = cell.Mark
		}
	}
	for i, m := range s.keys {
		v.Keyboard[string(rune('A'+i))] = m
	}
	if s.state == StateLost {
		v.Answer = s.answer.String()
	}

	named := []struct {
		name string
		p    *anim.Panel
	}{
		{"won", s.won},
		{"answer", s.reveal},
		{"invalid", s.invalid},
		{"replay", s.replay},
		{"stats", s.seeStats},
	}
	for _, n := range named {
		if !n.p.Visible() {
			continue
		}
		b := n.p.Box
		v.Panels = append(v.Panels, PanelView{Name: n.name, Text: n.p.Text, X: b.X, Y: b.Y, W: b.W, H: b.H})
	}
	return v
}

// StatsSummary derives the display values of a statistics book.
func StatsSummary(book StatsBook) StatsView {
	r := book.Record()
	sv := StatsView{
		Wins:        r.Wins,
		Losses:      r.Losses,
		Last:        r.Last,
		GamesPlayed: r.GamesPlayed(),
		WinRate:     r.WinRate(),
		MostWins:    r.MostWins(),
	}
	for n := 1; n <= 6; n++ {
		sv.Bars[n-1] = r.BarFraction(n)
	}
	return sv
}
