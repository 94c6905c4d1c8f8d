package session

import "github.com/abhisek/sequences/internal/questiongen"

// Result pairs a question with the player's answer.
type Result struct {
	Question     questiongen.Question
	PlayerAnswer int
	Correct      bool
}

// Summary holds the totals shown on the results screen.
type Summary struct {
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
}

// Results returns one entry per answered question, in order.
func (g *Game) Results() []Result {
	results := make([]Result, 0, len(g.answers))
	for i, a := range g.answers {
		q := g.questions[i]
		results = append(results, Result{
			Question:     q,
			PlayerAnswer: a,
			Correct:      a == q.Answer,
		})
	}
	return results
}

// Summary tallies the answered questions.
func (g *Game) Summary() Summary {
	var sum Summary
	for _, r := range g.Results() {
		sum.TotalQuestions++
		if r.Correct {
			sum.TotalCorrect++
		}
	}
	if sum.TotalQuestions > 0 {
		sum.Accuracy = float64(sum.TotalCorrect) / float64(sum.TotalQuestions)
	}
	return sum
}
