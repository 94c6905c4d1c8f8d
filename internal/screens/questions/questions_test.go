package questions

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sequences/internal/questiongen"
	"github.com/abhisek/sequences/internal/router"
	"github.com/abhisek/sequences/internal/screen"
	"github.com/abhisek/sequences/internal/session"
)

// fixedGenerator returns "12a3b44"-style EVEN questions of any length.
type fixedGenerator struct{}

func (fixedGenerator) Generate(difficulty, index int) questiongen.Question {
	seq := strings.Repeat("12a3b44", difficulty/7+1)[:difficulty]
	return questiongen.Build(index, seq, questiongen.TypeEven, questiongen.PrimeRuleTrue)
}

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "results" }
func (s *stubScreen) Title() string                           { return "Results" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testQuestionsScreen(t *testing.T, quantity string) (*QuestionsScreen, *session.Game, *int) {
	t.Helper()
	game := session.NewGame(fixedGenerator{})
	if err := game.SubmitQuantity(quantity); err != nil {
		t.Fatalf("SubmitQuantity: %v", err)
	}
	calls := 0
	s := New(game, func() screen.Screen {
		calls++
		return &stubScreen{}
	})
	return s, game, &calls
}

func typeAndEnter(s *QuestionsScreen, text string) tea.Cmd {
	var scr screen.Screen = s
	for _, r := range text {
		scr, _ = scr.Update(keyPress(r))
	}
	_, cmd := scr.Update(enter())
	return cmd
}

func TestQuestionsScreen_Title(t *testing.T) {
	s, _, _ := testQuestionsScreen(t, "4")
	if s.Title() != "Question 1/4" {
		t.Errorf("Title = %q, want %q", s.Title(), "Question 1/4")
	}
}

func TestQuestionsScreen_InvalidDifficulty(t *testing.T) {
	s, game, _ := testQuestionsScreen(t, "2")

	typeAndEnter(s, "2")
	st := game.Snapshot()
	if st.DifficultyChosen {
		t.Error("difficulty 2 must be rejected")
	}
	if len(st.Questions) != 0 {
		t.Errorf("questions = %d, want 0", len(st.Questions))
	}
	view := s.View(80, 24)
	if !strings.Contains(view, invalidDifficultyMsg) {
		t.Error("expected difficulty validation message")
	}
	if s.difficulty.Value() != "2" {
		t.Errorf("difficulty input should be preserved, got %q", s.difficulty.Value())
	}
}

func TestQuestionsScreen_QuestionFlow(t *testing.T) {
	s, game, _ := testQuestionsScreen(t, "2")

	typeAndEnter(s, "7")
	st := game.Snapshot()
	if !st.DifficultyChosen || len(st.Questions) != 1 {
		t.Fatal("expected a generated question")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "How many EVEN numbers are in this sequence?") {
		t.Error("expected question prompt")
	}
	if !strings.Contains(view, "12a3b44") {
		t.Error("expected sequence in view")
	}

	typeAndEnter(s, "2")
	st = game.Snapshot()
	if !st.Answered {
		t.Fatal("expected answer to be recorded")
	}
	view = s.View(80, 24)
	if !strings.Contains(view, "The answer is: 2") {
		t.Error("expected correct answer in view")
	}
	if !strings.Contains(view, "Correct!") {
		t.Error("expected correct marker")
	}
	if !strings.Contains(view, "Next Question") {
		t.Error("expected next question button")
	}

	// Typing after answering must not change anything.
	s.Update(keyPress('9'))
	if s.answer.Value() != "2" {
		t.Errorf("answer input changed after submit: %q", s.answer.Value())
	}

	typeAndEnter(s, "")
	st = game.Snapshot()
	if st.CurrentQuestion != 1 || st.DifficultyChosen || st.Answered {
		t.Errorf("unexpected state after advance: %+v", st)
	}
	if s.difficulty.Value() != "" || s.answer.Value() != "" {
		t.Error("inputs should be cleared after advance")
	}
	if s.Title() != "Question 2/2" {
		t.Errorf("Title = %q, want %q", s.Title(), "Question 2/2")
	}
}

func TestQuestionsScreen_InvalidAnswer(t *testing.T) {
	s, game, _ := testQuestionsScreen(t, "1")
	typeAndEnter(s, "5")
	typeAndEnter(s, "")

	if game.Snapshot().Answered {
		t.Error("empty answer must be rejected")
	}
	if !strings.Contains(s.View(80, 24), invalidAnswerMsg) {
		t.Error("expected answer validation message")
	}
}

func TestQuestionsScreen_LastQuestionShowsResults(t *testing.T) {
	s, game, calls := testQuestionsScreen(t, "1")
	typeAndEnter(s, "3")
	typeAndEnter(s, "1")

	if !strings.Contains(s.View(80, 24), "Show Results") {
		t.Error("expected show results button on last question")
	}

	cmd := typeAndEnter(s, "")
	if cmd == nil {
		t.Fatal("expected a command to show results")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if *calls != 1 {
		t.Errorf("results factory calls = %d, want 1", *calls)
	}
	if game.Snapshot().Page != session.PageResults {
		t.Error("expected results page")
	}
}

func TestQuestionsScreen_KeyHints(t *testing.T) {
	s, _, _ := testQuestionsScreen(t, "1")
	hints := s.KeyHints()
	if len(hints) == 0 || hints[0].Description != "Start" {
		t.Errorf("unexpected hints %+v", hints)
	}
	typeAndEnter(s, "3")
	if s.KeyHints()[0].Description != "Submit" {
		t.Error("expected Submit hint")
	}
	typeAndEnter(s, "0")
	if s.KeyHints()[0].Description != "Show results" {
		t.Error("expected Show results hint")
	}
}

func TestRenderSequence_Wraps(t *testing.T) {
	short := RenderSequence("abc", 40)
	if strings.Contains(short, wrapNotice) {
		t.Error("short sequence should not show wrap notice")
	}
	long := RenderSequence(strings.Repeat("a1", 50), 40)
	if !strings.Contains(long, wrapNotice) {
		t.Error("long sequence should show wrap notice")
	}
}
