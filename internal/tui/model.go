// internal/tui/model.go
//
// Terminal host for one game session.
// Responsibilities:
//   - Map key presses to session actions (letters, enter, backspace, tab,
//     ctrl+r, esc, ctrl+c).
//   - Tick the session at FrameRate.
//   - Render board, keyboard, visible panels and the statistics overlay.

package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/solo/internal/game"
)

// FrameRate is the tick frequency driving session updates.
const FrameRate = 60

var keyRows = [3]string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

type tickMsg time.Time

// Model implements tea.Model around one session.
type Model struct {
	session *game.Session
	started time.Time
	last    time.Time
	now     func() time.Time

	width    int
	quitting bool
}

// NewModel wraps s. now defaults to time.Now.
func NewModel(s *game.Session, now func() time.Time) *Model {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &Model{session: s, started: t, last: t, now: now}
}

// Run starts the program on the terminal and blocks until the player quits.
func Run(ctx context.Context, s *game.Session) error {
	p := tea.NewProgram(NewModel(s, nil), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/FrameRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		m.advance()
		return m, tick()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// advance ticks the session to the current clock.
func (m *Model) advance() {
	now := m.now()
	delta := now.Sub(m.last)
	if delta < 0 {
		delta = 0
	}
	m.session.Update(now.Sub(m.started), delta)
	m.last = now
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := m.session
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return tea.Quit
	case tea.KeyEsc:
		if s.OverlayOpen() {
			s.Handle(game.Action{Kind: game.ActionCloseStats})
			return nil
		}
		m.quitting = true
		return tea.Quit
	case tea.KeyTab:
		if s.OverlayOpen() {
			s.Handle(game.Action{Kind: game.ActionCloseStats})
		} else {
			s.Handle(game.Action{Kind: game.ActionOpenStats})
		}
	case tea.KeyCtrlR:
		s.Handle(game.Action{Kind: game.ActionReplay})
	case tea.KeyEnter:
		s.Handle(game.Action{Kind: game.ActionEnter})
	case tea.KeyBackspace:
		s.Handle(game.Action{Kind: game.ActionDelete})
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < 0x80 {
				s.Handle(game.Letter(byte(r)))
			}
		}
	}
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.session
	if s.OverlayOpen() {
		return m.place(renderStats(s.Snapshot().Stats))
	}

	var b strings.Builder
	b.WriteString(Title.Render("WORDLE"))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(s.Board()))
	b.WriteString("\n")
	b.WriteString(renderPanels(s.Snapshot().Panels, s.Layout()))
	b.WriteString("\n")
	b.WriteString(renderKeyboard(s.Keyboard()))
	b.WriteString("\n\n")
	b.WriteString(Muted.Render(m.help()))
	return m.place(b.String())
}

func (m *Model) help() string {
	if m.session.State().Terminal() {
		return "ctrl+r play again • tab statistics • esc quit"
	}
	return "type letters • enter submit • backspace delete • tab statistics • esc quit"
}

func (m *Model) place(s string) string {
	if m.width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

func renderBoard(board game.Board) string {
	rows := make([]string, 0, game.Rows)
	for r := 0; r < game.Rows; r++ {
		cells := make([]string, 0, game.Cols)
		for c := 0; c < game.Cols; c++ {
			cell := board[r][c]
			letter := " "
			if cell.Letter != 0 {
				letter = string(cell.Letter)
			}
			cells = append(cells, tileStyle(cell).Render(letter))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n\n") + "\n"
}

// renderPanels draws visible panels on one line. A sliding notice is indented
// by its distance from home, scaled to terminal columns.
func renderPanels(panels []game.PanelView, l game.Layout) string {
	if len(panels) == 0 {
		return "\n"
	}
	parts := make([]string, 0, len(panels))
	for _, p := range panels {
		switch p.Name {
		case "replay":
			parts = append(parts, Button.Render(p.Text+" (ctrl+r)"))
		case "stats":
			parts = append(parts, Button.Render(p.Text+" (tab)"))
		case "invalid":
			shift := int((math.Abs(p.X-l.Notice.X) + math.Abs(p.Y-l.Notice.Y)) / (game.WindowWidth / 80))
			parts = append(parts, strings.Repeat(" ", shift)+Notice.Render(p.Text))
		default:
			parts = append(parts, Notice.Render(p.Text))
		}
	}
	return strings.Join(parts, "  ") + "\n"
}

func renderKeyboard(kb game.Keyboard) string {
	lines := make([]string, 0, len(keyRows))
	for i, row := range keyRows {
		keys := make([]string, 0, len(row))
		for j := 0; j < len(row); j++ {
			keys = append(keys, keyStyle(kb.Get(row[j])).Render(string(row[j])))
		}
		lines = append(lines, strings.Repeat(" ", i*2)+strings.Join(keys, " "))
	}
	return strings.Join(lines, "\n")
}

func renderStats(sv game.StatsView) string {
	var b strings.Builder
	b.WriteString(Title.Render("STATISTICS"))
	b.WriteString("   ")
	b.WriteString(Close.Render("x (esc)"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Played %d   Win %% %.0f   Lost %d\n\n", sv.GamesPlayed, sv.WinRate, sv.Losses)
	b.WriteString("GUESS DISTRIBUTION\n")
	const width = 30
	for n := 1; n <= 6; n++ {
		count := fmt.Sprintf(" %d ", sv.Wins[n-1])
		w := int(sv.Bars[n-1] * width)
		if w < len(count) {
			w = len(count)
		}
		style := Bar
		if sv.Last == n {
			style = BarLast
		}
		fmt.Fprintf(&b, "%d %s\n", n, style.Width(w).Render(count))
	}
	return Overlay.Render(b.String())
}
