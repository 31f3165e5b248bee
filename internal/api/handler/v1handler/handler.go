// Package v1handler implements the v1 control API: live engine status and
// settings, mapping profiles, takes and the tracker frame stream.
package v1handler

import (
	"context"
	"errors"
	"handi/internal/engine"
	"handi/internal/ingest"
	"handi/internal/profiles"
	"handi/internal/takes"
	"handi/pkg/logger"
	"handi/pkg/metrics"
	"handi/pkg/midiout"
	"handi/pkg/serrors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

const (
	// DefaultLimit is the page size used when the request does not set one.
	DefaultLimit = 20
	// MaxLimit bounds the page size a client can request.
	MaxLimit = 100

	maxBodyBytes = 1 << 20
)

// Engine is the part of the engine the API drives.
//
//go:generate mockgen -package mockv1handler -source=handler.go -destination=mock/mockv1handler.go Engine
type Engine interface {
	Status() engine.Status
	Tracker() engine.TrackerSettings
	SetTracker(settings engine.TrackerSettings) error
	Panic(ctx context.Context) error
}

// Deps are the services behind the v1 API.
type Deps struct {
	Engine   Engine
	Profiles profiles.Profiles
	Takes    takes.Takes
	// Ports lists the MIDI output ports of the driver.
	Ports func() []midiout.PortInfo
	// Sink receives frames sent over the WebSocket stream.
	Sink    ingest.Sink
	Metrics *metrics.Metrics
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Noop()
	}
	if deps.Ports == nil {
		deps.Ports = midiout.Ports
	}

	return &Handler{deps: deps}
}

// ErrorResponse pairs an error document with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

var kindStatus = map[serrors.Kind]struct { //nolint: gochecknoglobals
	status  int
	message string
}{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to a response. Semantic errors keep their message; any
// other error is logged and reported as an internal error.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	mapped, ok := kindStatus[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorBody{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	msg := mapped.message
	var semantic *serrors.Error
	if errors.As(err, &semantic) && semantic.Message() != "" {
		msg = semantic.Message()
		// validation causes help the caller fix the request
		if kind == serrors.ErrBadRequest && semantic.Cause() != nil {
			msg = semantic.Error()
		}
	}
	if mapped.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: mapped.status,
		Response: ErrorBody{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, &res.Response)
}

type jsonEncoder interface {
	Encode(e *jx.Encoder)
}

type jsonDecoder interface {
	Decode(d *jx.Decoder) error
}

func writeJSON(w http.ResponseWriter, status int, v jsonEncoder) {
	var e jx.Encoder
	v.Encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func readJSON(r *http.Request, v jsonDecoder) error {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	d := jx.DecodeBytes(body)
	if err := v.Decode(d); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if d.Next() != jx.Invalid {
		return serrors.With(serrors.ErrBadRequest, "invalid request body: trailing data")
	}

	return nil
}

// page reads the cursor and limit query parameters.
func page(r *http.Request) (string, uint, error) {
	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || n == 0 || n > MaxLimit {
			return "", 0, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit)
		}
		limit = uint(n)
	}

	return r.URL.Query().Get("cursor"), limit, nil
}

// Routes registers the v1 endpoints on mux. Every route requires a bearer
// token; the frame stream also accepts it as the token query parameter.
func (h *Handler) Routes(ctx context.Context, mux *http.ServeMux, sec *SecHandler) {
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, sec.Require(fn, false))
	}

	handle("GET /v1/status", h.GetStatus)
	handle("POST /v1/midi/stop", h.StopMIDI)
	handle("GET /v1/ports", h.ListPorts)
	handle("GET /v1/tracker", h.GetTracker)
	handle("PUT /v1/tracker", h.UpdateTracker)

	handle("GET /v1/profiles", h.ListProfiles)
	handle("POST /v1/profiles", h.CreateProfile)
	handle("GET /v1/profiles/active", h.GetActiveProfile)
	handle("POST /v1/profiles/import", h.ImportProfiles)
	handle("GET /v1/profiles/export", h.ExportProfiles)
	handle("GET /v1/profiles/{id}", h.GetProfile)
	handle("PUT /v1/profiles/{id}", h.UpdateProfile)
	handle("DELETE /v1/profiles/{id}", h.DeleteProfile)
	handle("POST /v1/profiles/{id}/apply", h.ApplyProfile)

	handle("GET /v1/takes", h.ListTakes)
	handle("POST /v1/takes", h.StartTake)
	handle("POST /v1/takes/current/stop", h.StopTake)
	handle("GET /v1/takes/{id}", h.GetTake)
	handle("DELETE /v1/takes/{id}", h.DeleteTake)
	handle("GET /v1/takes/{id}/smf", h.GetTakeSMF)

	mux.Handle("GET /v1/stream", sec.Require(h.Stream(ctx), true))
}
