package ingest_test

import (
	"bytes"
	"context"
	"fmt"
	"handi/internal/ingest"
	mockingest "handi/internal/ingest/mock"
	"handi/pkg/domain"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/net/websocket"
)

// chanSink forwards frames to a channel.
type chanSink chan domain.Frame

func (c chanSink) Submit(_ context.Context, f domain.Frame) { c <- f }

func receiveFrame(t *testing.T, c chanSink) domain.Frame {
	t.Helper()

	select {
	case f := <-c:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("no frame received")
	}

	return domain.Frame{}
}

func TestUDPListener(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := make(chanSink, 4)
	l, err := ingest.ListenUDP(ctx, "127.0.0.1:0", sink, nil)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- l.Serve(ctx) }()

	conn, err := net.Dial("udp", l.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("not json"))
	require.NoError(t, err)
	_, err = conn.Write(ingest.EncodeFrame(sampleFrame()))
	require.NoError(t, err)

	got := receiveFrame(t, sink)
	require.Equal(t, uint64(42), got.Seq)

	cancel()
	require.NoError(t, <-done)
	require.NoError(t, l.Close())
}

func TestStreamHandler(t *testing.T) {
	sink := make(chanSink, 4)
	srv := httptest.NewServer(ingest.StreamHandler(context.Background(), sink, nil))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ws, err := websocket.Dial(url, "", srv.URL)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, websocket.Message.Send(ws, "{}"))
	require.NoError(t, websocket.Message.Send(ws, string(ingest.EncodeFrame(sampleFrame()))))

	got := receiveFrame(t, sink)
	require.Equal(t, 1, got.Camera)
	require.Len(t, got.Hands, 1)
}

func recording(n int) string {
	var b strings.Builder
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i := range n {
		f := sampleFrame()
		f.Seq = uint64(i) //nolint: gosec
		f.Timestamp = start.Add(time.Duration(i) * 20 * time.Millisecond)
		fmt.Fprintf(&b, "%s\n\n", ingest.EncodeFrame(f))
	}

	return b.String()
}

func TestReplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mockingest.NewMockSink(ctrl)

	var seqs []uint64
	sink.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, f domain.Frame) { seqs = append(seqs, f.Seq) }).
		Times(3)

	n, err := ingest.Replay(context.Background(), strings.NewReader(recording(3)), sink, nil, ingest.ReplayOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []uint64{0, 1, 2}, seqs)
}

func TestReplay_Realtime(t *testing.T) {
	sink := make(chanSink, 8)

	start := time.Now()
	n, err := ingest.Replay(context.Background(), strings.NewReader(recording(3)), sink, nil,
		ingest.ReplayOptions{Realtime: true, Speed: 2})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	// two 20ms gaps at double speed
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestReplay_Invalid(t *testing.T) {
	input := "garbage\n" + recording(1)

	_, err := ingest.Replay(context.Background(), strings.NewReader(input), make(chanSink, 1), nil, ingest.ReplayOptions{})
	require.ErrorIs(t, err, ingest.ErrInvalidFrame)
	require.ErrorContains(t, err, "line 1")

	n, err := ingest.Replay(context.Background(), strings.NewReader(input), make(chanSink, 1), nil,
		ingest.ReplayOptions{SkipInvalid: true})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestReplay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := ingest.Replay(ctx, strings.NewReader(recording(2)), make(chanSink, 2), nil, ingest.ReplayOptions{})
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, n)
}

func TestFrameWriter_Tee(t *testing.T) {
	var buf bytes.Buffer
	w := ingest.NewFrameWriter(&buf)
	sink := make(chanSink, 2)

	tee := ingest.Tee(w, sink)
	tee.Submit(context.Background(), sampleFrame())
	require.NoError(t, w.Flush())
	require.Equal(t, uint64(42), receiveFrame(t, sink).Seq)

	n, err := ingest.Replay(context.Background(), &buf, make(chanSink, 1), nil, ingest.ReplayOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
