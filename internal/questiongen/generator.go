package questiongen

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// charClass is an inclusive character range. Each class is picked with equal
// probability regardless of its size.
type charClass struct {
	lo, hi byte
}

var charClasses = [...]charClass{
	{'0', '9'},
	{'a', 'z'},
	{'A', 'Z'},
}

// RandomGenerator builds questions from an injected random source.
type RandomGenerator struct {
	rng *rand.Rand
	cfg Config
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator drawing from rng.
func New(rng *rand.Rand, cfg Config) *RandomGenerator {
	if cfg.PrimeRule == "" {
		cfg.PrimeRule = PrimeRuleTrue
	}
	return &RandomGenerator{rng: rng, cfg: cfg}
}

// NewSeeded creates a deterministic RandomGenerator. A zero seed picks a
// random one.
func NewSeeded(seed uint64, cfg Config) *RandomGenerator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), cfg)
}

// Generate implements Generator. It panics if difficulty is not positive;
// callers validate player input before getting here.
func (g *RandomGenerator) Generate(difficulty, index int) Question {
	if difficulty <= 0 {
		panic(fmt.Sprintf("questiongen: difficulty must be positive, got %d", difficulty))
	}

	var b strings.Builder
	b.Grow(difficulty)
	for range difficulty {
		class := charClasses[g.rng.IntN(len(charClasses))]
		b.WriteByte(class.lo + byte(g.rng.IntN(int(class.hi-class.lo)+1)))
	}

	types := Types()
	typ := types[g.rng.IntN(len(types))]

	return Build(index, b.String(), typ, g.cfg.PrimeRule)
}

// Build creates a question from a fixed sequence and computes its answer.
func Build(index int, sequence string, typ Type, rule PrimeRule) Question {
	return Question{
		Difficulty: len(sequence),
		Index:      index,
		Sequence:   sequence,
		Type:       typ,
		Answer:     Score(sequence, typ, rule),
	}
}
