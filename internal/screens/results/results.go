package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sequences/internal/screen"
	"github.com/abhisek/sequences/internal/session"
	"github.com/abhisek/sequences/internal/ui/layout"
	"github.com/abhisek/sequences/internal/ui/theme"
)

// ResultsScreen lists every question of a finished game as a collapsible
// row. Expanding a row shows the sequence and both answers.
type ResultsScreen struct {
	game     *session.Game
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for game. All rows start collapsed.
func New(game *session.Game) *ResultsScreen {
	return &ResultsScreen{
		game:     game,
		expanded: make(map[int]bool),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return s.game.Title()
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "New game"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	rows := len(s.game.Results())
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < rows-1 {
			s.selected++
		}
	case "enter", "space", " ":
		if rows > 0 {
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

// Expanded reports whether row i is showing its details.
func (s *ResultsScreen) Expanded(i int) bool {
	return s.expanded[i]
}

// Selected returns the highlighted row.
func (s *ResultsScreen) Selected() int {
	return s.selected
}

func (s *ResultsScreen) View(width, height int) string {
	results := s.game.Results()
	if len(results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No questions answered.")
	}

	sum := s.game.Summary()
	summary := theme.Title.Render(fmt.Sprintf("%d/%d correct", sum.TotalCorrect, sum.TotalQuestions))

	var lines []string
	selectedAt := 0
	for i, r := range results {
		if i == s.selected {
			selectedAt = len(lines)
		}
		block := s.renderRow(i, r, width)
		lines = append(lines, strings.Split(block, "\n")...)
	}

	// Two lines for the summary and the gap below it.
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	lines = window(lines, selectedAt, visible)

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, summary))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func (s *ResultsScreen) renderRow(i int, r session.Result, width int) string {
	mark := theme.Correct.Render("✓")
	if !r.Correct {
		mark = theme.Incorrect.Render("✗")
	}

	prefix := "  "
	style := theme.Body
	if i == s.selected {
		prefix = "> "
		style = theme.Selected
	}
	header := style.Render(fmt.Sprintf("%sQuestion %d ", prefix, i+1)) + mark

	cardWidth := width - 8
	if cardWidth < 20 {
		cardWidth = 20
	}

	if !s.expanded[i] {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Card.Width(cardWidth).Render(header))
	}

	q := r.Question
	details := []string{
		header,
		"",
		theme.Body.Bold(true).Render(fmt.Sprintf("%s Numbers:", q.Type)),
		theme.Sequence.Render(strings.Join(layout.WrapFixed(q.Sequence, cardWidth-8), "\n")),
		"",
		theme.Body.Render(fmt.Sprintf("Your answer is: %d", r.PlayerAnswer)),
		theme.Body.Render(fmt.Sprintf("The answer is: %d", q.Answer)),
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.CardExpanded.Width(cardWidth).Render(strings.Join(details, "\n")))
}

// window returns at most n lines, scrolled so the line at index at is
// visible.
func window(lines []string, at, n int) []string {
	if len(lines) <= n {
		return lines
	}
	start := 0
	if at >= n {
		start = at
	}
	if start+n > len(lines) {
		start = len(lines) - n
	}
	return lines[start : start+n]
}
