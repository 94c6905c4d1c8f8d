package questions

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sequences/internal/router"
	"github.com/abhisek/sequences/internal/screen"
	"github.com/abhisek/sequences/internal/session"
	"github.com/abhisek/sequences/internal/ui/components"
	"github.com/abhisek/sequences/internal/ui/layout"
)

const (
	difficultyDigits = 4
	answerDigits     = 4
)

const (
	invalidDifficultyMsg = "Invalid input. Value should be greater than 2"
	invalidAnswerMsg     = "Invalid input. Value should be 0 or greater"
)

// QuestionsScreen walks the player through every question of a game: pick a
// difficulty, answer, see the correct answer, move on.
type QuestionsScreen struct {
	game           *session.Game
	resultsFactory func() screen.Screen
	difficulty     components.NumberInput
	answer         components.NumberInput
	errMsg         string
}

var _ screen.Screen = (*QuestionsScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionsScreen)(nil)

// New creates a QuestionsScreen for game. resultsFactory builds the screen
// pushed after the last question.
func New(game *session.Game, resultsFactory func() screen.Screen) *QuestionsScreen {
	s := &QuestionsScreen{
		game:           game,
		resultsFactory: resultsFactory,
	}
	s.resetInputs()
	return s
}

func (s *QuestionsScreen) resetInputs() {
	st := s.game.Snapshot()

	s.difficulty = components.NewNumberInput("Difficulty", "e.g. 8", difficultyDigits)
	s.difficulty.ErrorMsg = invalidDifficultyMsg
	s.difficulty.SetValue(st.DifficultyInput)

	s.answer = components.NewNumberInput("Answer", "", answerDigits)
	s.answer.ErrorMsg = invalidAnswerMsg
	s.answer.SetValue(st.AnswerInput)
}

func (s *QuestionsScreen) Init() tea.Cmd {
	return s.difficulty.Init()
}

func (s *QuestionsScreen) Title() string {
	return s.game.Title()
}

func (s *QuestionsScreen) KeyHints() []layout.KeyHint {
	st := s.game.Snapshot()
	switch {
	case !st.DifficultyChosen:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "New game"},
		}
	case !st.Answered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "New game"},
		}
	case st.LastQuestion:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Show results"},
			{Key: "Esc", Description: "New game"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "Esc", Description: "New game"},
		}
	}
}

func (s *QuestionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return s.handleEnter()
	}

	// Forward everything else to whichever input is live.
	st := s.game.Snapshot()
	var cmd tea.Cmd
	switch {
	case !st.DifficultyChosen:
		s.difficulty, cmd = s.difficulty.Update(msg)
	case !st.Answered:
		s.answer, cmd = s.answer.Update(msg)
	}
	return s, cmd
}

// handleEnter performs the action for the current sub-state.
func (s *QuestionsScreen) handleEnter() (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	st := s.game.Snapshot()

	switch {
	case !st.DifficultyChosen:
		if err := s.game.SubmitDifficulty(s.difficulty.Value()); err != nil {
			return s.handleErr(err, &s.difficulty)
		}
		s.difficulty.SetInvalid(false)
		return s, s.answer.Init()

	case !st.Answered:
		if err := s.game.SubmitAnswer(s.answer.Value()); err != nil {
			return s.handleErr(err, &s.answer)
		}
		s.answer.SetInvalid(false)
		return s, nil

	case st.LastQuestion:
		if err := s.game.Finish(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		next := s.resultsFactory()
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}

	default:
		if err := s.game.Advance(); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.resetInputs()
		return s, s.difficulty.Init()
	}
}

// handleErr shows validation failures inline on input; anything else is a
// state error and is shown as a banner.
func (s *QuestionsScreen) handleErr(err error, input *components.NumberInput) (screen.Screen, tea.Cmd) {
	var verr *session.ValidationError
	if errors.As(err, &verr) {
		input.SetInvalid(true)
		return s, nil
	}
	s.errMsg = err.Error()
	return s, nil
}
