package v1handler

import (
	"context"
	"handi/internal/ingest"
	"net/http"
)

// Stream accepts hand landmark frames from a tracker over WebSocket.
func (h Handler) Stream(ctx context.Context) http.Handler {
	return ingest.StreamHandler(ctx, h.deps.Sink, h.deps.Metrics)
}
