package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sequences/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for the game's integer prompts. It
// drops printable non-digit keys and renders an inline error when invalid.
type NumberInput struct {
	Model    textinput.Model
	Label    string
	ErrorMsg string
	invalid  bool
}

// NewNumberInput creates a focused input accepting up to maxDigits digits.
func NewNumberInput(label, placeholder string, maxDigits int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}

	return NumberInput{
		Model: ti,
		Label: label,
	}
}

// Init returns the initial command.
func (n NumberInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update handles messages.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the label, the field and any validation message.
func (n NumberInput) View() string {
	view := lipgloss.NewStyle().Foreground(theme.TextDim).Render(n.Label+": ") + n.Model.View()
	if n.invalid && n.ErrorMsg != "" {
		view += "\n" + theme.InputError.Render(n.ErrorMsg)
	}
	return view
}

// Value returns the raw input text.
func (n NumberInput) Value() string {
	return n.Model.Value()
}

// SetValue replaces the input text.
func (n *NumberInput) SetValue(s string) {
	n.Model.SetValue(s)
}

// NumericValue returns the input value as an integer.
func (n NumberInput) NumericValue() (int, error) {
	return strconv.Atoi(n.Model.Value())
}

// SetInvalid toggles the inline error message.
func (n *NumberInput) SetInvalid(invalid bool) {
	n.invalid = invalid
}

// Invalid reports whether the error message is showing.
func (n NumberInput) Invalid() bool {
	return n.invalid
}
