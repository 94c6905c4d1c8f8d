package questions

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sequences/internal/questiongen"
	"github.com/abhisek/sequences/internal/session"
	"github.com/abhisek/sequences/internal/ui/layout"
	"github.com/abhisek/sequences/internal/ui/theme"
)

const wrapNotice = "(the sequence wraps across lines)"

func (s *QuestionsScreen) View(width, height int) string {
	st := s.game.Snapshot()

	var body string
	if q, ok := st.Current(); ok && st.DifficultyChosen {
		body = s.renderQuestion(st, q, width)
	} else {
		body = s.renderChooseDifficulty()
	}

	if s.errMsg != "" {
		body += "\n\n" + theme.InputError.Render("Error: "+s.errMsg)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderChooseDifficulty renders the difficulty prompt.
func (s *QuestionsScreen) renderChooseDifficulty() string {
	sections := []string{
		theme.Body.Render("Choose difficulty (the length of the sequence):"),
		"",
		s.difficulty.View(),
		"",
		theme.ButtonActive.Render("Start"),
	}
	return strings.Join(sections, "\n")
}

// renderQuestion renders the sequence, the answer field and, once answered,
// the correct answer.
func (s *QuestionsScreen) renderQuestion(st session.State, q questiongen.Question, width int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render(
		fmt.Sprintf("How many %s numbers are in this sequence?", q.Type)))
	b.WriteString("\n\n")

	b.WriteString(RenderSequence(q.Sequence, width-8))
	b.WriteString("\n\n")

	if !st.Answered {
		b.WriteString(s.answer.View())
		b.WriteString("\n\n")
		b.WriteString(theme.ButtonActive.Render("Submit"))
		return b.String()
	}

	playerAnswer, _ := st.CurrentAnswer()
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Your answer: %d", playerAnswer)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("The answer is: %d", q.Answer)))
	b.WriteString("\n")
	if playerAnswer == q.Answer {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Not quite"))
	}
	b.WriteString("\n\n")

	label := "Next Question"
	if st.LastQuestion {
		label = "Show Results"
	}
	b.WriteString(theme.ButtonActive.Render(label))
	return b.String()
}

// RenderSequence renders seq in the sequence style, wrapped to width
// characters, with a notice when it does not fit on one line.
func RenderSequence(seq string, width int) string {
	// Two cells of padding.
	lines := layout.WrapFixed(seq, width-2)
	out := theme.Sequence.Render(strings.Join(lines, "\n"))
	if len(lines) > 1 {
		out += "\n" + theme.Hint.Render(wrapNotice)
	}
	return out
}
