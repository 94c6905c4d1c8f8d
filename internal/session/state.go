package session

import "github.com/abhisek/sequences/internal/questiongen"

// Page is the coarse screen state of a game.
type Page int

const (
	PageWelcome   Page = iota // Choosing the number of questions
	PageQuestions             // Playing through questions
	PageResults               // Reviewing answers
)

func (p Page) String() string {
	switch p {
	case PageWelcome:
		return "welcome"
	case PageQuestions:
		return "questions"
	case PageResults:
		return "results"
	default:
		return "unknown"
	}
}

// State is a read-only snapshot of a Game, handed to the presentation layer.
type State struct {
	// SessionID identifies the current play-through in logs.
	SessionID string

	// Page is the active screen.
	Page Page

	// QuestionsQuantity is the number of questions in this game.
	QuestionsQuantity int

	// CurrentQuestion is the zero-based cursor into Questions and Answers.
	CurrentQuestion int

	// ValueValid is false after the most recent submission failed validation.
	ValueValid bool

	// DifficultyChosen is true once the current question has been generated.
	DifficultyChosen bool

	// Answered is true once the current question has an answer.
	Answered bool

	// LastQuestion is true while the cursor is on the final question.
	LastQuestion bool

	// Input buffers for the three prompts. A rejected input is kept so it
	// can be edited.
	QuantityInput   string
	DifficultyInput string
	AnswerInput     string

	// Questions generated so far, in creation order.
	Questions []questiongen.Question

	// Answers submitted so far; Answers[i] answers Questions[i].
	Answers []int
}

// Current returns the question under the cursor, if it has been generated.
func (s State) Current() (questiongen.Question, bool) {
	if s.CurrentQuestion < len(s.Questions) {
		return s.Questions[s.CurrentQuestion], true
	}
	return questiongen.Question{}, false
}

// CurrentAnswer returns the player's answer to the current question, if any.
func (s State) CurrentAnswer() (int, bool) {
	if s.CurrentQuestion < len(s.Answers) {
		return s.Answers[s.CurrentQuestion], true
	}
	return 0, false
}
