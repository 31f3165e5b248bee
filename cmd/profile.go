package main

import (
	"context"
	"handi/internal/config"
	"handi/internal/profiles"
	"handi/pkg/domain"
	"handi/pkg/logger"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// offlineApplier stands in for the engine when profiles are edited from the
// command line, where no engine runs.
type offlineApplier struct{}

func (offlineApplier) Apply(ctx context.Context, mappings []domain.Mapping) error {
	logger.Warn(ctx, "the active profile changed, re-apply it through the API for a running daemon",
		zap.Int("mappings", len(mappings)))

	return nil
}

// profileCommand constructs the 'profile' subcommand with import and export
// of YAML profile documents.
func profileCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Imports and exports mapping profiles",
	}

	importCmd := &cobra.Command{
		Use:   "import [file.yml]",
		Short: "Creates or replaces profiles from YAML documents, read from stdin without a file",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			var r io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					logger.Fatal(ctx, "could not open profile file", zap.Error(err))
				}
				defer f.Close()
				r = f
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			imported, err := profiles.New(strg, offlineApplier{}).Import(ctx, r)
			if err != nil {
				logger.Fatal(ctx, "could not import profiles", zap.Error(err))
			}
			for _, p := range imported {
				logger.Info(ctx, "profile imported", zap.String("name", p.Name), zap.Stringer("id", p.ID))
			}
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [name...]",
		Short: "Writes profiles as YAML documents to stdout, all of them without names",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := profiles.New(strg, offlineApplier{}).Export(ctx, os.Stdout, args...); err != nil {
				logger.Fatal(ctx, "could not export profiles", zap.Error(err))
			}
		},
	}

	cmd.AddCommand(importCmd, exportCmd)

	return cmd
}
