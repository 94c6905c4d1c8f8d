package questiongen

import (
	"fmt"
	"strings"
)

// Type is the predicate applied to every digit run of a sequence.
type Type int

const (
	TypeEven Type = iota
	TypeOdd
	TypePrime
)

// Types returns all question types in declaration order.
func Types() []Type {
	return []Type{TypeEven, TypeOdd, TypePrime}
}

func (t Type) String() string {
	switch t {
	case TypeEven:
		return "EVEN"
	case TypeOdd:
		return "ODD"
	case TypePrime:
		return "PRIME"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// PrimeRule selects how PRIME questions are scored.
type PrimeRule string

const (
	// PrimeRuleTrue counts runs whose value is a prime number.
	PrimeRuleTrue PrimeRule = "prime"

	// PrimeRuleOdd counts odd runs, matching the first release of the game.
	PrimeRuleOdd PrimeRule = "odd"
)

// ParsePrimeRule parses "prime" or "odd" (case-insensitive).
func ParsePrimeRule(s string) (PrimeRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(PrimeRuleTrue):
		return PrimeRuleTrue, nil
	case string(PrimeRuleOdd):
		return PrimeRuleOdd, nil
	default:
		return "", fmt.Errorf("invalid prime rule %q: must be prime or odd", s)
	}
}

// Question is one generated puzzle. Values are never mutated after
// construction.
type Question struct {
	// Difficulty is the sequence length chosen by the player.
	Difficulty int

	// Index is the zero-based position of the question in its session.
	Index int

	// Sequence holds Difficulty characters from [0-9a-zA-Z].
	Sequence string

	// Type is the predicate the player is asked about.
	Type Type

	// Answer is the number of digit runs satisfying Type.
	Answer int
}

// Generator produces questions.
type Generator interface {
	// Generate builds the question at index with a sequence of length
	// difficulty. difficulty must be positive.
	Generate(difficulty, index int) Question
}

// Config controls scoring for a RandomGenerator.
type Config struct {
	PrimeRule PrimeRule
}

// DefaultConfig scores PRIME questions with a real primality test.
func DefaultConfig() Config {
	return Config{PrimeRule: PrimeRuleTrue}
}
