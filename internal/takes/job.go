package takes

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RenderArgs are the arguments of the job rendering a stopped take.
type RenderArgs struct {
	// TakeID is unique so a take is never queued twice while a render of it
	// is pending or running.
	TakeID uuid.UUID `json:"takeId" river:"unique"`
	// maxAttempts configures how many times River runs the job before the
	// take is marked failed.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the render worker.
func (args RenderArgs) Kind() string { return "RenderTakeJob" }

func (args RenderArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
