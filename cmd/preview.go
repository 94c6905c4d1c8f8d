package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sequences/internal/logging"
	"github.com/abhisek/sequences/internal/questiongen"
	"github.com/abhisek/sequences/internal/session"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated questions with their answers (no TUI)",
	Long: `Generate questions and print each sequence, its digit runs and the
expected answer. Useful for checking the generator and the scoring rules.
Combine with --seed for reproducible output.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("difficulty", 8, "Sequence length (at least 3)")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	if difficulty < session.MinDifficulty || difficulty > session.MaxDifficulty {
		return fmt.Errorf("invalid difficulty %d: must be between %d and %d",
			difficulty, session.MinDifficulty, session.MaxDifficulty)
	}
	if count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", count)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.Console(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	cmd.SetContext(logging.IntoContext(cmd.Context(), logger))

	seed := resolveSeed(cfg.Seed)
	generatePreview(cmd, seed, cfg.GeneratorConfig(), difficulty, count)
	return nil
}

// generatePreview prints count questions, logging through the logger carried
// by the command context.
func generatePreview(cmd *cobra.Command, seed uint64, genCfg questiongen.Config, difficulty, count int) {
	logger := logging.FromContext(cmd.Context())
	logger.Debug().
		Uint64("seed", seed).
		Str("prime_rule", string(genCfg.PrimeRule)).
		Int("difficulty", difficulty).
		Int("count", count).
		Msg("preview")

	gen := questiongen.NewSeeded(seed, genCfg)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed: %d\n\n", seed)
	for i := 0; i < count; i++ {
		printQuestion(out, gen.Generate(difficulty, i), count)
	}
}

func printQuestion(w io.Writer, q questiongen.Question, count int) {
	runs := questiongen.DigitRuns(q.Sequence)
	if len(runs) == 0 {
		runs = []string{"(none)"}
	}

	fmt.Fprintf(w, "── Question %d/%d ──\n", q.Index+1, count)
	fmt.Fprintf(w, "Type:     %s\n", q.Type)
	fmt.Fprintf(w, "Sequence: %s\n", q.Sequence)
	fmt.Fprintf(w, "Runs:     %s\n", strings.Join(runs, " "))
	fmt.Fprintf(w, "Answer:   %d\n\n", q.Answer)
}
