package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/sequences/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "sequences",
	Short: "Count digit runs in random sequences",
	Long: `Sequences is a terminal quiz. Pick how many questions to play and how long
each sequence is, then count the EVEN, ODD or PRIME numbers hidden in it.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed for question generation (overrides SEQUENCES_SEED; 0 = random)")
	rootCmd.PersistentFlags().String("prime-rule", "", `PRIME scoring: "prime" or "odd" (overrides SEQUENCES_PRIME_RULE)`)
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file (overrides SEQUENCES_LOG_FILE)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (overrides SEQUENCES_LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads settings from .env and the environment, then applies
// any flags set on the command line.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("prime-rule") {
		cfg.PrimeRule, _ = flags.GetString("prime-rule")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
