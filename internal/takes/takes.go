// Package takes records the MIDI output into takes and renders them to
// Standard MIDI Files in the background.
package takes

import (
	"context"
	"errors"
	"fmt"
	"handi/internal/config"
	"handi/pkg/domain"
	"handi/pkg/logger"
	"handi/pkg/midiout"
	"handi/pkg/serrors"
	"handi/pkg/storage"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// interruptedError is stored on takes that were recording when the daemon
// stopped without stopping them.
const interruptedError = "recording interrupted"

// Options configure recording and rendering.
type Options struct {
	// MaxAttempts is the number of render attempts before a take is marked failed.
	MaxAttempts int
	// MaxEvents caps the recorded events of a take; zero means no cap.
	MaxEvents int
	// Render controls the tempo and resolution of rendered files.
	Render midiout.RenderOptions
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Worker.MaxAttempts,
		MaxEvents:   cfg.Takes.MaxEvents,
		Render: midiout.RenderOptions{
			BPM:             cfg.Takes.BPM,
			TicksPerQuarter: cfg.Takes.TicksPerQuarter,
		},
	}
}

type takes struct {
	storage storage.Storage
	tap     Tap
	options Options

	// mu serializes Start and Stop and guards the recording state.
	mu       sync.Mutex
	current  *domain.Take
	recorder *recorder
}

// New returns a Takes recording from tap and persisting into storage.
func New(storage storage.Storage, tap Tap, options Options) Takes {
	return &takes{
		storage: storage,
		tap:     tap,
		options: options,
	}
}

// Start stores a new RECORDING take linked to the active profile and attaches
// a recorder to the output.
func (t *takes) Start(ctx context.Context) (*domain.Take, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current != nil {
		return nil, serrors.With(serrors.ErrConflict, "take %s is already recording", t.current.ID)
	}

	profileID, err := t.storage.ActiveProfileID(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get active profile: %w", err)
	}

	start := time.Now()
	take, err := t.storage.StoreTake(ctx, domain.Take{
		ProfileID: profileID,
		Status:    domain.TakeStatusRecording,
		StartedAt: start,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "another take is recording")
		}

		return nil, fmt.Errorf("could not store take: %w", err)
	}

	t.current = take
	t.recorder = newRecorder(context.WithoutCancel(logger.WithFields(ctx, zap.Stringer("take", take.ID))),
		start, t.options.MaxEvents)
	t.tap.SetRecorder(t.recorder)

	logger.Info(ctx, "take recording", zap.Stringer("take", take.ID))

	return take, nil
}

// Stop detaches the recorder and, in one transaction, stores the events and
// queues the render job. When that fails the take is marked FAILED so it does
// not block later recordings.
func (t *takes) Stop(ctx context.Context) (*domain.Take, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return nil, serrors.With(serrors.ErrConflict, "no take is recording")
	}

	t.tap.SetRecorder(nil)
	id := t.current.ID
	events := t.recorder.take()
	stoppedAt := time.Now()
	t.current, t.recorder = nil, nil

	var take *domain.Take
	err := t.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err := tx.UpdateTake(ctx, id, storage.TakeUpdates{
			Status:    domain.TakeStatusPending,
			Events:    &events,
			StoppedAt: &stoppedAt,
		})
		if err != nil {
			return fmt.Errorf("could not update take: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "take not found")
		}
		take = updated

		if _, err := tx.AddJob(ctx, RenderArgs{
			TakeID:      uuid.UUID(id),
			maxAttempts: t.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add render job: %w", err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, serrors.ErrNotFound) {
			msg := err.Error()
			if _, ferr := t.storage.UpdateTake(ctx, id, storage.TakeUpdates{
				Status:    domain.TakeStatusFailed,
				StoppedAt: &stoppedAt,
				LastError: &msg,
			}); ferr != nil {
				logger.Error(ctx, "could not mark take failed", zap.Stringer("take", id), zap.Error(ferr))
			}
		}

		return nil, fmt.Errorf("could not stop take: %w", err)
	}

	logger.Info(ctx, "take stopped", zap.Stringer("take", id), zap.Int("events", len(events)))

	return take, nil
}

func (t *takes) Recording() *domain.Take {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return nil
	}
	take := *t.current

	return &take
}

func (t *takes) Get(ctx context.Context, id domain.TakeID) (*domain.Take, error) {
	take, err := t.storage.TakeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get take: %w", err)
	}
	if take == nil {
		return nil, serrors.With(serrors.ErrNotFound, "take not found")
	}

	return take, nil
}

// List returns a page of takes, newest first. The cursor is the one returned
// with the previous page.
func (t *takes) List(ctx context.Context, cursor string, limit uint) ([]domain.Take, string, error) {
	var c storage.Cursor
	if cursor != "" {
		parsed, err := storage.ParseCursor(cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		c = parsed
	}

	page, err := t.storage.Takes(ctx, c, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not list takes: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.String()
	}

	return page.Takes, next, nil
}

// Delete removes a take. A pending render job finds the take gone and is
// cancelled by the worker.
func (t *takes) Delete(ctx context.Context, id domain.TakeID) error {
	if current := t.Recording(); current != nil && current.ID == id {
		return serrors.With(serrors.ErrConflict, "take is recording, stop it first")
	}

	deleted, err := t.storage.DeleteTake(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete take: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "take not found")
	}

	return nil
}

func (t *takes) SMF(ctx context.Context, id domain.TakeID) ([]byte, error) {
	take, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if take.Status != domain.TakeStatusRendered {
		return nil, serrors.With(serrors.ErrConflict, "take is %s, not rendered", take.Status)
	}

	return take.SMF, nil
}

// Render renders the events of a take and stores the file. Rendering an
// already rendered take is a no-op. Invalid render options cannot succeed on
// retry, so they mark the take failed right away.
func (t *takes) Render(ctx context.Context, id domain.TakeID, final bool) error {
	take, err := t.Get(ctx, id)
	if err != nil {
		return err
	}

	switch take.Status {
	case domain.TakeStatusRendered:
		return nil
	case domain.TakeStatusRecording:
		return serrors.With(serrors.ErrConflict, "take is still recording")
	}

	file, err := midiout.RenderSMF(take.Events, t.options.Render)
	if err != nil {
		msg := err.Error()
		updates := storage.TakeUpdates{
			LastError:         &msg,
			IncrementAttempts: true,
		}
		if final || errors.Is(err, serrors.ErrBadRequest) {
			updates.Status = domain.TakeStatusFailed
		}
		if _, uerr := t.storage.UpdateTake(ctx, id, updates); uerr != nil {
			return fmt.Errorf("could not record render failure: %w", uerr)
		}

		return fmt.Errorf("could not render take: %w", err)
	}

	empty := ""
	if _, err := t.storage.UpdateTake(ctx, id, storage.TakeUpdates{
		Status:            domain.TakeStatusRendered,
		SMF:               &file,
		LastError:         &empty,
		IncrementAttempts: true,
	}); err != nil {
		return fmt.Errorf("could not store rendered take: %w", err)
	}

	logger.Info(ctx, "take rendered", zap.Stringer("take", id), zap.Int("bytes", len(file)))

	return nil
}

func (t *takes) Recover(ctx context.Context) error {
	n, err := t.storage.FailRecordingTakes(ctx, interruptedError)
	if err != nil {
		return fmt.Errorf("could not recover takes: %w", err)
	}
	if n > 0 {
		logger.Warn(ctx, "failed interrupted takes", zap.Int64("count", n))
	}

	return nil
}
