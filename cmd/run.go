package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/sequences/internal/app"
	"github.com/abhisek/sequences/internal/logging"
	"github.com/abhisek/sequences/internal/questiongen"
	"github.com/abhisek/sequences/internal/session"
)

// runApp resolves configuration, builds the game and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	ctx := logging.IntoContext(cmd.Context(), logger)
	cmd.SetContext(ctx)

	seed := resolveSeed(cfg.Seed)
	logger.Info().
		Uint64("seed", seed).
		Str("prime_rule", cfg.PrimeRule).
		Str("version", version).
		Msg("starting")

	gen := questiongen.NewSeeded(seed, cfg.GeneratorConfig())
	game := session.NewGame(gen, session.WithLogger(logger))

	return app.Run(ctx, game)
}

// resolveSeed returns seed, or a fresh non-zero random seed when seed is 0,
// so the value that gets logged is the one that replays the game.
func resolveSeed(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}
