package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sequences/internal/router"
	"github.com/abhisek/sequences/internal/screen"
	"github.com/abhisek/sequences/internal/session"
	"github.com/abhisek/sequences/internal/ui/components"
	"github.com/abhisek/sequences/internal/ui/layout"
	"github.com/abhisek/sequences/internal/ui/theme"
)

// quantityDigits bounds how many digits the quantity field accepts.
const quantityDigits = 4

const invalidQuantityMsg = "Invalid input. Value must be greater than 0"

// WelcomeScreen asks how many questions to play.
type WelcomeScreen struct {
	game             *session.Game
	questionsFactory func() screen.Screen
	input            components.NumberInput
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that pushes the screen produced by
// questionsFactory once a quantity is accepted.
func New(game *session.Game, questionsFactory func() screen.Screen) *WelcomeScreen {
	input := components.NewNumberInput("Quantity", "e.g. 5", quantityDigits)
	input.ErrorMsg = invalidQuantityMsg
	input.SetValue(game.Snapshot().QuantityInput)

	return &WelcomeScreen{
		game:             game,
		questionsFactory: questionsFactory,
		input:            input,
	}
}

func (w *WelcomeScreen) Title() string {
	return w.game.Title()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "0-9", Description: "Type quantity"},
		{Key: "Enter", Description: "Continue"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return w.submit()
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) submit() (screen.Screen, tea.Cmd) {
	if err := w.game.SubmitQuantity(w.input.Value()); err != nil {
		w.input.SetInvalid(true)
		return w, nil
	}
	w.input.SetInvalid(false)

	next := w.questionsFactory()
	return w, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width),
		"",
		theme.Body.Render("How many questions do you want?"),
		"",
		w.input.View(),
		"",
		theme.ButtonActive.Render("Continue"),
		"",
		theme.Hint.Render("Count the digit groups in random sequences."),
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
