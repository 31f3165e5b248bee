package main

import (
	"context"
	"handi/internal/config"
	"handi/internal/engine"
	"handi/internal/ingest"
	"handi/internal/profiles"
	"handi/pkg/logger"
	"handi/pkg/metrics"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// replayCommand constructs the 'replay' subcommand that feeds a frame
// recording through the engine with the active profile.
func replayCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <frames.jsonl>",
		Short: "Replays recorded tracker frames through the active profile",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			opts := ingest.ReplayOptions{}
			opts.Realtime, _ = cmd.Flags().GetBool("realtime")
			opts.Speed, _ = cmd.Flags().GetFloat64("speed")
			opts.SkipInvalid, _ = cmd.Flags().GetBool("skip-invalid")
			if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
				cfg.MIDI.Driver = "log"
			}

			f, err := os.Open(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not open recording", zap.Error(err))
			}
			defer f.Close()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			tx, closeTx := setupTransmitter(ctx, cfg, metrics.Noop())
			defer closeTx()

			eng, err := engine.New(engine.NewOptions(cfg), tx, nil)
			if err != nil {
				logger.Fatal(ctx, "could not create engine", zap.Error(err))
			}
			active, err := profiles.New(strg, eng).Restore(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not apply active profile", zap.Error(err))
			}
			if active == nil {
				logger.Fatal(ctx, "no active profile, apply one before replaying")
			}

			// frames are processed synchronously so none are dropped
			n, err := ingest.Replay(ctx, f, ingest.SinkFunc(eng.Process), nil, opts)
			if err != nil {
				logger.Error(ctx, "replay stopped", zap.Int("frames", n), zap.Error(err))

				return
			}
			logger.Info(ctx, "replay finished", zap.Int("frames", n), zap.String("profile", active.Name))
		},
	}

	cmd.Flags().Bool("realtime", false, "Pace frames by their timestamps")
	cmd.Flags().Float64("speed", 1, "Realtime speed factor")
	cmd.Flags().Bool("skip-invalid", false, "Skip lines that do not decode")
	cmd.Flags().Bool("dry-run", false, "Log MIDI messages instead of sending them")

	return cmd
}
