package session

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/sequences/internal/questiongen"
)

// Accepted sequence lengths.
const (
	MinDifficulty = 3
	MaxDifficulty = 9999
)

// Game is the state machine for one play-through. It is not safe for
// concurrent use; the UI drives it from a single event loop.
type Game struct {
	gen    questiongen.Generator
	logger zerolog.Logger
	newID  func() string

	sessionID string
	page      Page
	quantity  int
	current   int

	valueValid       bool
	difficultyChosen bool
	answered         bool
	lastQuestion     bool

	quantityInput   string
	difficultyInput string
	answerInput     string

	questions []questiongen.Question
	answers   []int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for session events.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithIDFunc overrides how session IDs are generated.
func WithIDFunc(f func() string) Option {
	return func(g *Game) { g.newID = f }
}

// NewGame creates a Game on the welcome page.
func NewGame(gen questiongen.Generator, opts ...Option) *Game {
	g := &Game{
		gen:    gen,
		logger: zerolog.Nop(),
		newID:  func() string { return uuid.New().String() },
	}
	for _, o := range opts {
		o(g)
	}
	g.Reset()
	return g
}

// Reset discards all questions and answers and returns to the welcome page.
// It is valid from any state.
func (g *Game) Reset() {
	prev := g.sessionID

	g.sessionID = g.newID()
	g.page = PageWelcome
	g.quantity = 0
	g.current = 0
	g.valueValid = true
	g.difficultyChosen = false
	g.answered = false
	g.lastQuestion = false
	g.quantityInput = ""
	g.difficultyInput = ""
	g.answerInput = ""
	g.questions = nil
	g.answers = nil

	if prev != "" {
		g.logger.Info().Str("session_id", prev).Str("next_session_id", g.sessionID).Msg("game reset")
	}
}

// SubmitQuantity sets how many questions the game has and moves to the
// questions page. The input must be an integer greater than zero.
func (g *Game) SubmitQuantity(input string) error {
	if g.page != PageWelcome {
		return fmt.Errorf("submit quantity: %w", ErrWrongPage)
	}
	g.quantityInput = input

	n, err := parseInt(input, 1, FieldQuantity, "value must be greater than 0")
	if err != nil {
		return g.reject(err)
	}

	g.quantity = n
	g.page = PageQuestions
	g.valueValid = true
	g.lastQuestion = n == 1

	g.logger.Info().Str("session_id", g.sessionID).Int("quantity", n).Msg("quantity set")
	return nil
}

// SubmitDifficulty generates the current question with a sequence of the
// given length. The input must be an integer between MinDifficulty and
// MaxDifficulty.
func (g *Game) SubmitDifficulty(input string) error {
	if g.page != PageQuestions {
		return fmt.Errorf("submit difficulty: %w", ErrWrongPage)
	}
	if g.difficultyChosen {
		return fmt.Errorf("submit difficulty: %w", ErrDifficultyChosen)
	}
	g.difficultyInput = input

	d, err := parseInt(input, MinDifficulty, FieldDifficulty, "value should be greater than 2")
	if err != nil {
		return g.reject(err)
	}
	if d > MaxDifficulty {
		return g.reject(&ValidationError{
			Field:  FieldDifficulty,
			Input:  input,
			Reason: fmt.Sprintf("value should be at most %d", MaxDifficulty),
		})
	}

	q := g.gen.Generate(d, g.current)
	g.questions = append(g.questions, q)
	g.difficultyChosen = true
	g.valueValid = true

	g.logger.Debug().
		Str("session_id", g.sessionID).
		Int("index", q.Index).
		Int("difficulty", q.Difficulty).
		Stringer("type", q.Type).
		Msg("question generated")
	return nil
}

// SubmitAnswer records the player's answer to the current question. The
// input must be an integer of at least 0.
func (g *Game) SubmitAnswer(input string) error {
	if g.page != PageQuestions {
		return fmt.Errorf("submit answer: %w", ErrWrongPage)
	}
	if !g.difficultyChosen {
		return fmt.Errorf("submit answer: %w", ErrDifficultyNotChosen)
	}
	if g.answered {
		return fmt.Errorf("submit answer: %w", ErrAlreadyAnswered)
	}
	g.answerInput = input

	a, err := parseInt(input, 0, FieldAnswer, "value should be 0 or greater")
	if err != nil {
		return g.reject(err)
	}

	g.answers = append(g.answers, a)
	g.answered = true
	g.valueValid = true

	q := g.questions[g.current]
	g.logger.Info().
		Str("session_id", g.sessionID).
		Int("index", g.current).
		Int("answer", a).
		Int("expected", q.Answer).
		Bool("correct", a == q.Answer).
		Msg("answer recorded")
	return nil
}

// Advance moves to the next question. It requires an answer to the current
// question and is refused on the last one.
func (g *Game) Advance() error {
	if g.page != PageQuestions {
		return fmt.Errorf("advance: %w", ErrWrongPage)
	}
	if !g.answered {
		return fmt.Errorf("advance: %w", ErrNotAnswered)
	}
	if g.lastQuestion {
		return fmt.Errorf("advance: %w", ErrLastQuestion)
	}

	g.difficultyInput = ""
	g.answerInput = ""
	g.current++
	g.difficultyChosen = false
	g.answered = false
	g.valueValid = true
	g.lastQuestion = g.current+1 == g.quantity

	g.logger.Debug().Str("session_id", g.sessionID).Int("index", g.current).Msg("advance")
	return nil
}

// Finish moves to the results page once the last question is answered.
func (g *Game) Finish() error {
	if g.page != PageQuestions {
		return fmt.Errorf("finish: %w", ErrWrongPage)
	}
	if !g.answered {
		return fmt.Errorf("finish: %w", ErrNotAnswered)
	}
	if !g.lastQuestion {
		return fmt.Errorf("finish: %w", ErrNotLastQuestion)
	}

	g.page = PageResults

	sum := g.Summary()
	g.logger.Info().
		Str("session_id", g.sessionID).
		Int("questions", sum.TotalQuestions).
		Int("correct", sum.TotalCorrect).
		Msg("game finished")
	return nil
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() State {
	return State{
		SessionID:         g.sessionID,
		Page:              g.page,
		QuestionsQuantity: g.quantity,
		CurrentQuestion:   g.current,
		ValueValid:        g.valueValid,
		DifficultyChosen:  g.difficultyChosen,
		Answered:          g.answered,
		LastQuestion:      g.lastQuestion,
		QuantityInput:     g.quantityInput,
		DifficultyInput:   g.difficultyInput,
		AnswerInput:       g.answerInput,
		Questions:         append([]questiongen.Question(nil), g.questions...),
		Answers:           append([]int(nil), g.answers...),
	}
}

// Title returns the header text for the current page.
func (g *Game) Title() string {
	switch g.page {
	case PageQuestions:
		return fmt.Sprintf("Question %d/%d", g.current+1, g.quantity)
	case PageResults:
		return "Results"
	default:
		return "Sequences"
	}
}

// reject marks the last submission invalid and returns err unchanged.
func (g *Game) reject(err *ValidationError) error {
	g.valueValid = false
	g.logger.Debug().
		Str("session_id", g.sessionID).
		Str("field", string(err.Field)).
		Str("input", err.Input).
		Msg("input rejected")
	return err
}

// parseInt parses input as a base-10 integer no smaller than lowest.
func parseInt(input string, lowest int, field Field, reason string) (int, *ValidationError) {
	n, err := strconv.Atoi(input)
	if err != nil || n < lowest {
		return 0, &ValidationError{Field: field, Input: input, Reason: reason}
	}
	return n, nil
}
