package main

import (
	"context"
	"errors"
	"handi/internal/api"
	"handi/internal/api/handler/v1handler"
	"handi/internal/config"
	"handi/internal/engine"
	"handi/internal/ingest"
	"handi/internal/profiles"
	"handi/internal/takes"
	"handi/internal/worker"
	"handi/pkg/logger"
	"handi/pkg/metrics"
	"handi/pkg/midiout"
	"handi/pkg/serrors"
	"handi/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// openOutput opens the configured MIDI output, or a logging output for the
// log driver.
func openOutput(ctx context.Context, cfg *config.Config) (midiout.Output, error) {
	if cfg.MIDI.Driver == "log" {
		return midiout.NewLogOutput(logger.Named(ctx, "midi")), nil
	}

	return midiout.OpenPort(cfg.MIDI.Port) //nolint: wrapcheck
}

// setupTransmitter opens the output and returns a transmitter with a cleanup
// function that silences and closes it.
func setupTransmitter(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*midiout.Transmitter, func()) {
	out, err := openOutput(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "could not open midi output", zap.Error(err))
	}
	logger.Info(ctx, "midi output opened", zap.String("port", out.Name()))

	tx := midiout.NewTransmitter(out, m, midiout.Options{
		CCRate:  cfg.MIDI.CCRate,
		CCBurst: cfg.MIDI.CCBurst,
	})

	return tx, func() {
		logger.Info(ctx, "closing midi output...")
		if err := tx.Close(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "could not close midi output", zap.Error(err))
		}
	}
}

// setupTracing installs the global tracer provider and returns a function
// flushing and stopping it.
func setupTracing(ctx context.Context, cfg *config.Config) func() {
	tp := tracing.NewProvider(ctx, tracing.Options{
		SampleRatio:   cfg.Tracing.SampleRatio,
		SlowThreshold: cfg.Tracing.SlowSpan,
	})
	otel.SetTracerProvider(tp)

	return func() {
		if err := tp.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "could not stop tracer provider", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupUDP starts the frame datagram listener, unless it is disabled.
func setupUDP(ctx context.Context, cfg *config.Config, sink ingest.Sink, m *metrics.Metrics, wg *sync.WaitGroup) {
	if cfg.Tracker.UDPAddr == "" {
		return
	}

	listener, err := ingest.ListenUDP(ctx, cfg.Tracker.UDPAddr, sink, m)
	if err != nil {
		logger.Fatal(ctx, "could not listen for tracker frames", zap.Error(err))
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := listener.Serve(ctx); err != nil {
			logger.Error(ctx, "udp listener stopped", zap.Error(err))
		}
	}()
}

// setupRecording opens path for appending frames and returns the writer with
// a cleanup function flushing and closing it.
func setupRecording(ctx context.Context, path string) (*ingest.FrameWriter, func()) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) //nolint: gosec
	if err != nil {
		logger.Fatal(ctx, "could not open frame recording", zap.Error(err))
	}
	logger.Info(ctx, "recording frames", zap.String("path", path))
	fw := ingest.NewFrameWriter(f)

	return fw, func() {
		if err := fw.Flush(); err != nil {
			logger.Warn(ctx, "could not flush frame recording", zap.Error(err))
		}
		if err := f.Close(); err != nil {
			logger.Warn(ctx, "could not close frame recording", zap.Error(err))
		}
	}
}

func runCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Starts the gesture engine, frame ingestion, API server and render workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := metrics.NewPrometheusProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			defer func() { _ = metrics.Shutdown(context.WithoutCancel(ctx), mp) }()
			m, err := metrics.New(mp)
			if err != nil {
				logger.Fatal(ctx, "could not create metrics", zap.Error(err))
			}

			stopTracing := setupTracing(ctx, cfg)
			defer stopTracing()

			tx, closeTx := setupTransmitter(ctx, cfg, m)
			defer closeTx()

			eng, err := engine.New(engine.NewOptions(cfg), tx, m)
			if err != nil {
				logger.Fatal(ctx, "could not create engine", zap.Error(err))
			}

			profileSvc := profiles.New(strg, eng)
			active, err := profileSvc.Restore(ctx)
			switch {
			case err != nil:
				logger.Error(ctx, "could not restore active profile", zap.Error(err))
			case active != nil:
				logger.Info(ctx, "active profile restored", zap.String("profile", active.Name))
			default:
				logger.Warn(ctx, "no active profile, gestures are ignored until one is applied")
			}

			takeSvc := takes.New(strg, tx, takes.NewOptions(cfg))
			if err := takeSvc.Recover(ctx); err != nil {
				logger.Error(ctx, "could not recover takes", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, strg.Pool, takeSvc, worker.Options{
				MaxWorkers: cfg.Worker.MaxWorkers,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			var sink ingest.Sink = eng
			if path, _ := cmd.Flags().GetString("record"); path != "" {
				fw, closeRecording := setupRecording(ctx, path)
				defer closeRecording()
				sink = ingest.Tee(eng, fw)
			}

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = eng.Run(ctx)
			}()
			setupUDP(ctx, cfg, sink, m, &wg)

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Engine:   eng,
				Profiles: profileSvc,
				Takes:    takeSvc,
				Sink:     sink,
				Metrics:  m,
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if _, err := takeSvc.Stop(shutdownCtx); err != nil && !errors.Is(err, serrors.ErrConflict) {
				logger.Warn(shutdownCtx, "could not stop recording take", zap.Error(err))
			}
			wg.Wait()

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	cmd.Flags().String("record", "", "Append received frames to this JSON lines file for replay")

	return cmd
}
