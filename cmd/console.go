package main

import (
	"context"
	"handi/internal/config"
	"handi/internal/console"
	"handi/pkg/logger"
	"handi/pkg/metrics"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// consoleCommand constructs the 'console' subcommand, an interactive menu
// that plays notes on the configured output to check the MIDI routing.
func consoleCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Plays notes on the MIDI output from an interactive menu",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			channel, _ := cmd.Flags().GetUint8("channel")

			tx, closeTx := setupTransmitter(ctx, cfg, metrics.Noop())
			defer closeTx()

			if err := console.New(tx, console.SurveyPrompter{}, os.Stdout, channel).Run(ctx); err != nil {
				logger.Error(ctx, "console failed", zap.Error(err))
			}
		},
	}

	cmd.Flags().Uint8("channel", 0, "MIDI channel (0-15)")

	return cmd
}
