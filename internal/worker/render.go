package worker

import (
	"context"
	"errors"
	"fmt"
	"handi/internal/takes"
	"handi/pkg/domain"
	"handi/pkg/logger"
	"handi/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// RenderTakeWorker is a River worker that renders stopped takes to Standard
// MIDI Files. Takes that were deleted, or that can never render, cancel the
// job instead of retrying it. On the last attempt a failing take is marked
// FAILED.
type RenderTakeWorker struct {
	river.WorkerDefaults[takes.RenderArgs]

	takes takes.Takes
}

// NewRenderTakeWorker constructs a RenderTakeWorker rendering through takes.
func NewRenderTakeWorker(takes takes.Takes) *RenderTakeWorker {
	return &RenderTakeWorker{
		takes: takes,
	}
}

func (w *RenderTakeWorker) Work(ctx context.Context, job *river.Job[takes.RenderArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("take", job.Args.TakeID.String()),
		zap.Int("attempt", job.Attempt))

	final := job.MaxAttempts > 0 && job.Attempt >= job.MaxAttempts
	if err := w.takes.Render(ctx, domain.TakeID(job.Args.TakeID), final); err != nil {
		if errors.Is(err, serrors.ErrNotFound) ||
			errors.Is(err, serrors.ErrBadRequest) ||
			errors.Is(err, serrors.ErrConflict) {
			logger.Warn(ctx, "render job cancelled", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error rendering take", zap.Error(err))

		return fmt.Errorf("could not render take: %w", err)
	}

	logger.Info(ctx, "take render finished")

	return nil
}
