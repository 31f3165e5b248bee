package ingest

import (
	"context"
	"errors"
	"handi/pkg/logger"
	"handi/pkg/metrics"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

// maxMessage bounds a single WebSocket frame document.
const maxMessage = 256 * 1024

// StreamHandler accepts a WebSocket connection from the tracker and submits
// every text or binary message as a frame. The tracker is not a browser, so
// the Origin header is not required. Connections are closed when ctx is done.
func StreamHandler(ctx context.Context, sink Sink, m *metrics.Metrics) http.Handler {
	recv := newReceiver("websocket", sink, m)

	return websocket.Server{
		Handshake: func(*websocket.Config, *http.Request) error { return nil },
		Handler: func(ws *websocket.Conn) {
			defer ws.Close()

			ws.MaxPayloadBytes = maxMessage
			// the server's read and write deadlines survive the hijack
			_ = ws.SetDeadline(time.Time{})
			stop := context.AfterFunc(ctx, func() { _ = ws.Close() })
			defer stop()

			connCtx := logger.WithFields(logger.Named(ctx, "websocket"),
				zap.String("remote", ws.Request().RemoteAddr))
			logger.Info(connCtx, "tracker connected")

			var (
				received int
				data     []byte
			)
			for {
				if err := websocket.Message.Receive(ws, &data); err != nil {
					if !errors.Is(err, io.EOF) && ctx.Err() == nil {
						logger.Warn(connCtx, "tracker stream failed", zap.Error(err))
					}
					break
				}
				if recv.receive(connCtx, data) {
					received++
				}
			}

			logger.Info(connCtx, "tracker disconnected", zap.Int("frames", received))
		},
	}
}
