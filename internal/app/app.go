package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/sequences/internal/logging"
	"github.com/abhisek/sequences/internal/router"
	"github.com/abhisek/sequences/internal/screen"
	"github.com/abhisek/sequences/internal/screens/questions"
	"github.com/abhisek/sequences/internal/screens/results"
	"github.com/abhisek/sequences/internal/screens/welcome"
	"github.com/abhisek/sequences/internal/session"
	"github.com/abhisek/sequences/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	game   *session.Game
	logger zerolog.Logger
	width  int
	height int
}

// newAppModel creates an AppModel showing the welcome screen for game.
func newAppModel(game *session.Game, logger zerolog.Logger) AppModel {
	return AppModel{
		router: router.New(newWelcome(game)),
		game:   game,
		logger: logger,
	}
}

// newWelcome wires the screen chain welcome -> questions -> results for game.
func newWelcome(game *session.Game) screen.Screen {
	resultsFactory := func() screen.Screen {
		return results.New(game)
	}
	questionsFactory := func() screen.Screen {
		return questions.New(game, resultsFactory)
	}
	return welcome.New(game, questionsFactory)
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, m.restart()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// restart discards the current game and returns to a fresh welcome screen.
func (m AppModel) restart() tea.Cmd {
	m.logger.Debug().Str("session_id", m.game.Snapshot().SessionID).Msg("restart requested")
	m.game.Reset()
	next := newWelcome(m.game)
	return func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
}

// status returns the header's right-hand text.
func (m AppModel) status() string {
	st := m.game.Snapshot()
	if st.Page == session.PageWelcome || len(st.Answers) == 0 {
		return ""
	}
	sum := m.game.Summary()
	return fmt.Sprintf("✓ %d/%d", sum.TotalCorrect, sum.TotalQuestions)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render composes the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program for game. It logs through the logger
// stored in ctx, if any, and stops when ctx is cancelled.
func Run(ctx context.Context, game *session.Game) error {
	logger := logging.FromContext(ctx)
	logger.Info().Str("session_id", game.Snapshot().SessionID).Msg("tui starting")

	p := tea.NewProgram(newAppModel(game, logger), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		logger.Error().Err(err).Msg("tui exited with error")
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	logger.Info().Msg("tui stopped")
	return nil
}
