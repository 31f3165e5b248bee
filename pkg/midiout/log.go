package midiout

import (
	"context"
	"encoding/hex"
	"handi/pkg/logger"

	"gitlab.com/gomidi/midi/v2"
	"go.uber.org/zap"
)

// LogOutput is a dry-run Output that writes every message to the logger. It
// lets the daemon run on machines without a MIDI driver or virtual port.
type LogOutput struct {
	ctx context.Context //nolint: containedctx
}

// NewLogOutput returns an Output logging to the logger carried by ctx.
func NewLogOutput(ctx context.Context) *LogOutput {
	return &LogOutput{ctx: logger.Named(ctx, "midi")}
}

// Send implements Output.
func (l *LogOutput) Send(msg []byte) error {
	logger.Info(l.ctx, "midi message",
		zap.String("message", midi.Message(msg).String()),
		zap.String("bytes", hex.EncodeToString(msg)))

	return nil
}

// Close implements Output.
func (l *LogOutput) Close() error { return nil }

// Name implements Output.
func (l *LogOutput) Name() string { return "log" }
