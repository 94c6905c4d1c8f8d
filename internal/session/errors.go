package session

import (
	"errors"
	"fmt"
)

// Errors returned when an operation is not allowed in the current state.
// State is left untouched when one of these is returned.
var (
	ErrWrongPage           = errors.New("operation not allowed on this page")
	ErrDifficultyChosen    = errors.New("difficulty already chosen")
	ErrDifficultyNotChosen = errors.New("difficulty not chosen")
	ErrAlreadyAnswered     = errors.New("question already answered")
	ErrNotAnswered         = errors.New("question not answered")
	ErrLastQuestion        = errors.New("no question after the last one")
	ErrNotLastQuestion     = errors.New("questions remain")
)

// Field names the prompt a ValidationError belongs to.
type Field string

const (
	FieldQuantity   Field = "quantity"
	FieldDifficulty Field = "difficulty"
	FieldAnswer     Field = "answer"
)

// ValidationError reports player input that was rejected. The game stays in
// the same sub-state and keeps the input for correction.
type ValidationError struct {
	Field  Field
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Reason)
}
