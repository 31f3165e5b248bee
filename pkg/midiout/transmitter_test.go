package midiout_test

import (
	"context"
	"errors"
	"handi/pkg/midiout"
	mockmidiout "handi/pkg/midiout/mock"
	"handi/pkg/serrors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"go.uber.org/mock/gomock"
)

// captureOutput records every message it is asked to send.
type captureOutput struct {
	mu   sync.Mutex
	msgs [][]byte
}

func (c *captureOutput) Send(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, append([]byte(nil), msg...))

	return nil
}

func (c *captureOutput) Close() error { return nil }
func (c *captureOutput) Name() string { return "capture" }

func (c *captureOutput) sent() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([][]byte(nil), c.msgs...)
}

func bytesOf(msgs ...midi.Message) [][]byte {
	out := make([][]byte, len(msgs))
	for i, m := range msgs {
		out[i] = []byte(m)
	}

	return out
}

func TestScaleCC(t *testing.T) {
	require.Equal(t, uint8(0), midiout.ScaleCC(-0.2))
	require.Equal(t, uint8(63), midiout.ScaleCC(0.5))
	require.Equal(t, uint8(127), midiout.ScaleCC(1))
	require.Equal(t, uint8(127), midiout.ScaleCC(3))
}

func TestSendCC_ScalesAndSuppressesDuplicates(t *testing.T) {
	out := &captureOutput{}
	tr := midiout.NewTransmitter(out, nil, midiout.Options{})
	ctx := context.Background()

	require.NoError(t, tr.SendCC(ctx, 0.5, 7, 0))
	require.NoError(t, tr.SendCC(ctx, 0.5, 7, 0))
	require.NoError(t, tr.SendCC(ctx, 0.6, 7, 0))
	require.NoError(t, tr.SendCC(ctx, 0.6, 1, 3))

	require.Equal(t, bytesOf(
		midi.ControlChange(0, 7, 63),
		midi.ControlChange(0, 7, 76),
		midi.ControlChange(3, 1, 76),
	), out.sent())

	v, ok := tr.CCValue(0, 7)
	require.True(t, ok)
	require.Equal(t, uint8(76), v)
	require.Equal(t, uint64(2), tr.CCWrites(0, 7), "suppressed duplicates are not counted")
	require.Equal(t, uint64(0), tr.CCWrites(0, 1))
}

func TestSendCC_Validation(t *testing.T) {
	tr := midiout.NewTransmitter(&captureOutput{}, nil, midiout.Options{})

	require.ErrorIs(t, tr.SendCC(context.Background(), 0.5, 7, 16), serrors.ErrBadRequest)
	require.ErrorIs(t, tr.SendCC(context.Background(), 0.5, 128, 0), serrors.ErrBadRequest)
	require.ErrorIs(t, tr.ControlChange(context.Background(), 0, 7, 200), serrors.ErrBadRequest)
	require.ErrorIs(t, tr.NoteOn(context.Background(), 0, 60, 128), serrors.ErrBadRequest)
}

func TestSendCC_RateLimitDropsLatestWins(t *testing.T) {
	out := &captureOutput{}
	tr := midiout.NewTransmitter(out, nil, midiout.Options{CCRate: 0.001, CCBurst: 1})
	ctx := context.Background()

	require.NoError(t, tr.SendCC(ctx, 0.1, 7, 0))
	require.NoError(t, tr.SendCC(ctx, 0.9, 7, 0))
	require.Len(t, out.sent(), 1, "second change exceeds the rate and is dropped")

	v, _ := tr.CCValue(0, 7)
	require.Equal(t, midiout.ScaleCC(0.1), v, "dropped value is not remembered")

	require.NoError(t, tr.ControlChange(ctx, 0, 7, 100))
	require.Len(t, out.sent(), 2, "raw control changes bypass the limiter")
}

func TestNotesAreTracked(t *testing.T) {
	out := &captureOutput{}
	tr := midiout.NewTransmitter(out, nil, midiout.Options{})
	ctx := context.Background()

	require.NoError(t, tr.NoteOff(ctx, 0, 60))
	require.Empty(t, out.sent(), "note off of a silent note is not sent")

	require.NoError(t, tr.NoteOn(ctx, 0, 60, 100))
	require.True(t, tr.Playing(0, 60))
	require.Equal(t, 1, tr.PlayingCount())

	require.NoError(t, tr.NoteOff(ctx, 0, 60))
	require.False(t, tr.Playing(0, 60))

	require.Equal(t, bytesOf(midi.NoteOn(0, 60, 100), midi.NoteOff(0, 60)), out.sent())
}

func TestPanicSilencesEverything(t *testing.T) {
	out := &captureOutput{}
	tr := midiout.NewTransmitter(out, nil, midiout.Options{})
	ctx := context.Background()

	require.NoError(t, tr.NoteOn(ctx, 2, 64, 90))
	require.NoError(t, tr.NoteOn(ctx, 0, 60, 100))
	before := len(out.sent())

	require.NoError(t, tr.Panic(ctx))
	require.Equal(t, bytesOf(
		midi.NoteOff(0, 60),
		midi.NoteOff(2, 64),
		midi.ControlChange(0, midiout.AllNotesOff, 0),
		midi.ControlChange(2, midiout.AllNotesOff, 0),
	), out.sent()[before:])
	require.Equal(t, 0, tr.PlayingCount())
}

func TestPanicWithoutNotesStillSendsAllNotesOff(t *testing.T) {
	out := &captureOutput{}
	tr := midiout.NewTransmitter(out, nil, midiout.Options{})

	require.NoError(t, tr.Panic(context.Background()))
	require.Equal(t, bytesOf(midi.ControlChange(0, midiout.AllNotesOff, 0)), out.sent())
}

func TestTransport(t *testing.T) {
	out := &captureOutput{}
	tr := midiout.NewTransmitter(out, nil, midiout.Options{})
	ctx := context.Background()

	require.False(t, tr.Running())
	require.NoError(t, tr.Start(ctx))
	require.True(t, tr.Running())
	require.NoError(t, tr.Stop(ctx))
	require.False(t, tr.Running())

	require.Equal(t, [][]byte{{0xFA}, {0xFC}}, out.sent())
}

func TestSendErrorLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := mockmidiout.NewMockOutput(ctrl)
	tr := midiout.NewTransmitter(out, nil, midiout.Options{})

	out.EXPECT().Send(gomock.Any()).Return(errors.New("port vanished"))

	err := tr.NoteOn(context.Background(), 0, 60, 100)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.False(t, tr.Playing(0, 60))
}

func TestRecorderReceivesMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mockmidiout.NewMockRecorder(ctrl)
	tr := midiout.NewTransmitter(&captureOutput{}, nil, midiout.Options{})
	tr.SetRecorder(rec)

	rec.EXPECT().Record([]byte(midi.NoteOn(1, 62, 80)))
	require.NoError(t, tr.NoteOn(context.Background(), 1, 62, 80))

	tr.SetRecorder(nil)
	require.NoError(t, tr.NoteOff(context.Background(), 1, 62))
}

func TestCloseSilencesAndCloses(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := mockmidiout.NewMockOutput(ctrl)
	tr := midiout.NewTransmitter(out, nil, midiout.Options{})

	gomock.InOrder(
		out.EXPECT().Send([]byte(midi.ControlChange(0, midiout.AllNotesOff, 0))).Return(nil),
		out.EXPECT().Close().Return(nil),
	)

	require.NoError(t, tr.Close(context.Background()))
}
