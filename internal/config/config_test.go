package config_test

import (
	"handi/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: test\n"))
	require.NoError(t, err)

	require.Equal(t, "test", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "Python to VCV 1", cfg.MIDI.Port)
	require.Equal(t, "rtmidi", cfg.MIDI.Driver)
	require.Equal(t, ":9870", cfg.Tracker.UDPAddr)
	require.Equal(t, -1, cfg.Tracker.Camera)
	require.InDelta(t, 0.5, cfg.Tracker.MinConfidence, 0)
	require.Equal(t, 2, cfg.Tracker.QueueSize)
	require.InDelta(t, 120.0, cfg.Takes.BPM, 0)
	require.Equal(t, uint16(480), cfg.Takes.TicksPerQuarter)
	require.InDelta(t, 1.0, cfg.Tracing.SampleRatio, 0)
	require.Equal(t, 20*time.Millisecond, cfg.Tracing.SlowSpan)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Setenv("MIDI_PORT", "loopMIDI Port")

	cfg, err := config.Load(writeConfig(t, `
midi:
  port: from file
  driver: log
tracker:
  camera: 1
  hand: right
`))
	require.NoError(t, err)
	require.Equal(t, "loopMIDI Port", cfg.MIDI.Port)
	require.Equal(t, "log", cfg.MIDI.Driver)
	require.Equal(t, 1, cfg.Tracker.Camera)
	require.Equal(t, "right", cfg.Tracker.Hand)
}

func TestLoad_ExplicitZero(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
tracker:
  udpAddr: ""
  camera: 0
  minConfidence: 0
tracing:
  sampleRatio: 0
  slowSpan: 0s
`))
	require.NoError(t, err)
	require.Empty(t, cfg.Tracker.UDPAddr)
	require.Equal(t, 0, cfg.Tracker.Camera)
	require.Zero(t, cfg.Tracker.MinConfidence)
	require.Equal(t, 2, cfg.Tracker.QueueSize)
	require.Zero(t, cfg.Tracing.SampleRatio)
	require.Zero(t, cfg.Tracing.SlowSpan)
}

func TestLoad_TrackerEnv(t *testing.T) {
	t.Setenv("TRACKER_CAMERA", "0")
	t.Setenv("TRACKER_QUEUE_SIZE", "4")

	cfg, err := config.Load(writeConfig(t, "tracker:\n  camera: 3\n"))
	require.NoError(t, err)
	require.Equal(t, 0, cfg.Tracker.Camera)
	require.Equal(t, 4, cfg.Tracker.QueueSize)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"driver":     "midi:\n  driver: alsa\n",
		"hand":       "tracker:\n  hand: both\n",
		"confidence": "tracker:\n  minConfidence: 2\n",
		"queue":      "tracker:\n  queueSize: 0\n",
		"bpm":        "takes:\n  bpm: -1\n",
		"sampling":   "tracing:\n  sampleRatio: 1.5\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
