package questiongen

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func TestGenerate_LengthAndCharset(t *testing.T) {
	gen := NewSeeded(42, DefaultConfig())

	q := gen.Generate(5, 0)
	require.Len(t, q.Sequence, 5)
	assert.Equal(t, 5, q.Difficulty)
	assert.Equal(t, 0, q.Index)
	for i := 0; i < len(q.Sequence); i++ {
		assert.Truef(t, isAlnum(q.Sequence[i]), "unexpected character %q", q.Sequence[i])
	}
}

func TestGenerate_AnswerMatchesScore(t *testing.T) {
	for _, rule := range []PrimeRule{PrimeRuleTrue, PrimeRuleOdd} {
		gen := NewSeeded(7, Config{PrimeRule: rule})
		for i := 0; i < 200; i++ {
			q := gen.Generate(3+i%40, i)
			require.Len(t, q.Sequence, q.Difficulty)
			assert.Equal(t, i, q.Index)
			assert.Equal(t, Score(q.Sequence, q.Type, rule), q.Answer)
			assert.GreaterOrEqual(t, q.Answer, 0)
			assert.LessOrEqual(t, q.Answer, len(DigitRuns(q.Sequence)))
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := NewSeeded(99, DefaultConfig())
	b := NewSeeded(99, DefaultConfig())
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Generate(12, i), b.Generate(12, i))
	}
}

func TestGenerate_ClassWeighting(t *testing.T) {
	// Digits are a third of the draws even though they are 10 of 62 symbols.
	gen := New(rand.New(rand.NewPCG(1, 2)), DefaultConfig())
	q := gen.Generate(30000, 0)

	digits := 0
	for i := 0; i < len(q.Sequence); i++ {
		if isDigit(q.Sequence[i]) {
			digits++
		}
	}
	ratio := float64(digits) / float64(len(q.Sequence))
	assert.InDelta(t, 1.0/3.0, ratio, 0.02)
}

func TestGenerate_AllTypesReachable(t *testing.T) {
	gen := NewSeeded(3, DefaultConfig())
	seen := make(map[Type]bool)
	for i := 0; i < 100; i++ {
		seen[gen.Generate(3, i).Type] = true
	}
	assert.Len(t, seen, 3)
}

func TestGenerate_PanicsOnNonPositiveDifficulty(t *testing.T) {
	gen := NewSeeded(1, DefaultConfig())
	assert.Panics(t, func() { gen.Generate(0, 0) })
	assert.Panics(t, func() { gen.Generate(-4, 0) })
}

func TestNew_DefaultsPrimeRule(t *testing.T) {
	gen := New(rand.New(rand.NewPCG(1, 1)), Config{})
	assert.Equal(t, PrimeRuleTrue, gen.cfg.PrimeRule)
}

func TestBuild(t *testing.T) {
	q := Build(4, "12a3b44", TypeEven, PrimeRuleTrue)
	assert.Equal(t, Question{
		Difficulty: 7,
		Index:      4,
		Sequence:   "12a3b44",
		Type:       TypeEven,
		Answer:     2,
	}, q)
}

func TestParsePrimeRule(t *testing.T) {
	tests := []struct {
		in      string
		want    PrimeRule
		wantErr bool
	}{
		{"prime", PrimeRuleTrue, false},
		{"PRIME", PrimeRuleTrue, false},
		{" odd ", PrimeRuleOdd, false},
		{"even", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrimeRule(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "EVEN", TypeEven.String())
	assert.Equal(t, "ODD", TypeOdd.String())
	assert.Equal(t, "PRIME", TypePrime.String())
	assert.Equal(t, "Type(9)", Type(9).String())
}
