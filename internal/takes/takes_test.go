package takes_test

import (
	"context"
	"errors"
	"handi/internal/takes"
	"testing"
	"time"

	mocktakes "handi/internal/takes/mock"
	mockstorage "handi/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"go.uber.org/mock/gomock"

	"handi/pkg/domain"
	"handi/pkg/logger"
	"handi/pkg/midiout"
	"handi/pkg/serrors"
	"handi/pkg/storage"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

var testOptions = takes.Options{
	MaxAttempts: 3,
	MaxEvents:   100,
	Render:      midiout.RenderOptions{BPM: 120, TicksPerQuarter: 480},
}

func newTestTakes(t *testing.T, opts takes.Options) (
	*gomock.Controller, *mockstorage.MockStorage, *mocktakes.MockTap, takes.Takes,
) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	tap := mocktakes.NewMockTap(ctrl)

	return ctrl, st, tap, takes.New(st, tap, opts)
}

// expectWithTx wires Storage.WithTx to run the callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage),
) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

// startTake runs Start and returns the recorder attached to the tap.
func startTake(t *testing.T, st *mockstorage.MockStorage, tap *mocktakes.MockTap, s takes.Takes) (
	*domain.Take, midiout.Recorder,
) {
	t.Helper()

	profileID := domain.ProfileID(uuid.New())
	st.EXPECT().ActiveProfileID(gomock.Any()).Return(&profileID, nil)
	st.EXPECT().StoreTake(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, take domain.Take) (*domain.Take, error) {
			require.Equal(t, domain.TakeStatusRecording, take.Status)
			require.Equal(t, profileID, *take.ProfileID)
			take.ID = domain.TakeID(uuid.New())

			return &take, nil
		},
	)

	var rec midiout.Recorder
	tap.EXPECT().SetRecorder(gomock.Not(gomock.Nil())).Do(func(r midiout.Recorder) { rec = r })

	take, err := s.Start(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rec)

	return take, rec
}

func TestTakes_StartStop(t *testing.T) {
	ctrl, st, tap, s := newTestTakes(t, testOptions)

	take, rec := startTake(t, st, tap, s)
	require.Equal(t, take.ID, s.Recording().ID)

	rec.Record(midi.NoteOn(0, 60, 100))
	time.Sleep(5 * time.Millisecond)
	rec.Record(midi.NoteOff(0, 60))

	_, err := s.Start(context.Background())
	require.ErrorIs(t, err, serrors.ErrConflict)

	tap.EXPECT().SetRecorder(gomock.Nil())
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateTake(gomock.Any(), take.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, id domain.TakeID, updates storage.TakeUpdates) (*domain.Take, error) {
				require.Equal(t, domain.TakeStatusPending, updates.Status)
				require.NotNil(t, updates.StoppedAt)
				events := *updates.Events
				require.Len(t, events, 2)
				require.Equal(t, []byte(midi.NoteOn(0, 60, 100)), events[0].Message)
				require.Greater(t, events[1].Offset, events[0].Offset)

				return &domain.Take{ID: id, Status: updates.Status, EventCount: len(events)}, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				render, ok := args.(takes.RenderArgs)
				require.True(t, ok)
				require.Equal(t, uuid.UUID(take.ID), render.TakeID)
				require.Equal(t, 3, render.InsertOpts().MaxAttempts)

				return true, nil
			},
		)
	})

	stopped, err := s.Stop(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.TakeStatusPending, stopped.Status)
	require.Equal(t, 2, stopped.EventCount)
	require.Nil(t, s.Recording())
}

func TestTakes_Start_AnotherRecording(t *testing.T) {
	_, st, _, s := newTestTakes(t, testOptions)

	st.EXPECT().ActiveProfileID(gomock.Any()).Return(nil, nil)
	st.EXPECT().StoreTake(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)

	_, err := s.Start(context.Background())
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Nil(t, s.Recording())
}

func TestTakes_Stop_NotRecording(t *testing.T) {
	_, _, _, s := newTestTakes(t, testOptions)

	_, err := s.Stop(context.Background())
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestTakes_Stop_FailureMarksTakeFailed(t *testing.T) {
	ctrl, st, tap, s := newTestTakes(t, testOptions)

	take, _ := startTake(t, st, tap, s)

	tap.EXPECT().SetRecorder(gomock.Nil())
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateTake(gomock.Any(), take.ID, gomock.Any()).Return(&domain.Take{ID: take.ID}, nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("queue down"))
	})
	st.EXPECT().UpdateTake(gomock.Any(), take.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, id domain.TakeID, updates storage.TakeUpdates) (*domain.Take, error) {
			require.Equal(t, domain.TakeStatusFailed, updates.Status)
			require.Contains(t, *updates.LastError, "queue down")

			return &domain.Take{ID: id, Status: updates.Status}, nil
		},
	)

	_, err := s.Stop(context.Background())
	require.Error(t, err)
	require.Nil(t, s.Recording())
}

func TestTakes_MaxEvents(t *testing.T) {
	ctrl, st, tap, s := newTestTakes(t, takes.Options{MaxAttempts: 1, MaxEvents: 2})

	take, rec := startTake(t, st, tap, s)
	for range 5 {
		rec.Record(midi.ControlChange(0, 7, 100))
	}

	tap.EXPECT().SetRecorder(gomock.Nil())
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateTake(gomock.Any(), take.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, id domain.TakeID, updates storage.TakeUpdates) (*domain.Take, error) {
				require.Len(t, *updates.Events, 2)

				return &domain.Take{ID: id}, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	_, err := s.Stop(context.Background())
	require.NoError(t, err)
}

func TestTakes_Delete(t *testing.T) {
	_, st, tap, s := newTestTakes(t, testOptions)

	st.EXPECT().DeleteTake(gomock.Any(), gomock.Any()).Return(nil, nil)
	err := s.Delete(context.Background(), domain.TakeID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)

	take, _ := startTake(t, st, tap, s)
	err = s.Delete(context.Background(), take.ID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestTakes_SMF(t *testing.T) {
	_, st, _, s := newTestTakes(t, testOptions)

	id := domain.TakeID(uuid.New())

	st.EXPECT().TakeByID(gomock.Any(), id).Return(&domain.Take{ID: id, Status: domain.TakeStatusPending}, nil)
	_, err := s.SMF(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrConflict)

	file := []byte("MThd")
	st.EXPECT().TakeByID(gomock.Any(), id).Return(&domain.Take{ID: id, Status: domain.TakeStatusRendered, SMF: file}, nil)
	got, err := s.SMF(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, file, got)
}

func TestTakes_List_Cursor(t *testing.T) {
	_, st, _, s := newTestTakes(t, testOptions)

	next := storage.Cursor{CreatedAt: time.Date(2026, 5, 1, 0, 0, 0, 42000, time.UTC), ID: uuid.New()}
	gomock.InOrder(
		st.EXPECT().Takes(gomock.Any(), storage.Cursor{}, uint(5)).Return(storage.TakePage{
			Takes:      []domain.Take{{Status: domain.TakeStatusRendered}},
			NextCursor: &next,
		}, nil),
		st.EXPECT().Takes(gomock.Any(), next, uint(5)).Return(storage.TakePage{}, nil),
	)

	list, cursor, err := s.List(context.Background(), "", 5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, next.String(), cursor)

	_, cursor, err = s.List(context.Background(), cursor, 5)
	require.NoError(t, err)
	require.Empty(t, cursor)

	_, _, err = s.List(context.Background(), "nope", 5)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestTakes_Render(t *testing.T) {
	_, st, _, s := newTestTakes(t, testOptions)

	id := domain.TakeID(uuid.New())
	st.EXPECT().TakeByID(gomock.Any(), id).Return(&domain.Take{
		ID:     id,
		Status: domain.TakeStatusPending,
		Events: []domain.TakeEvent{
			{Offset: 0, Message: midi.NoteOn(0, 60, 100)},
			{Offset: 500 * time.Millisecond, Message: midi.NoteOff(0, 60)},
		},
	}, nil)
	st.EXPECT().UpdateTake(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, id domain.TakeID, updates storage.TakeUpdates) (*domain.Take, error) {
			require.Equal(t, domain.TakeStatusRendered, updates.Status)
			require.True(t, updates.IncrementAttempts)
			require.Empty(t, *updates.LastError)
			require.Equal(t, "MThd", string((*updates.SMF)[:4]))

			return &domain.Take{ID: id, Status: updates.Status}, nil
		},
	)

	require.NoError(t, s.Render(context.Background(), id, false))
}

func TestTakes_Render_AlreadyRendered(t *testing.T) {
	_, st, _, s := newTestTakes(t, testOptions)

	id := domain.TakeID(uuid.New())
	st.EXPECT().TakeByID(gomock.Any(), id).Return(&domain.Take{ID: id, Status: domain.TakeStatusRendered}, nil)

	require.NoError(t, s.Render(context.Background(), id, false))
}

func TestTakes_Render_Missing(t *testing.T) {
	_, st, _, s := newTestTakes(t, testOptions)

	st.EXPECT().TakeByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	err := s.Render(context.Background(), domain.TakeID(uuid.New()), false)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestTakes_Render_InvalidOptionsFails(t *testing.T) {
	_, st, _, s := newTestTakes(t, takes.Options{Render: midiout.RenderOptions{BPM: 0, TicksPerQuarter: 480}})

	id := domain.TakeID(uuid.New())
	st.EXPECT().TakeByID(gomock.Any(), id).Return(&domain.Take{ID: id, Status: domain.TakeStatusPending}, nil)
	st.EXPECT().UpdateTake(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, id domain.TakeID, updates storage.TakeUpdates) (*domain.Take, error) {
			require.Equal(t, domain.TakeStatusFailed, updates.Status)
			require.True(t, updates.IncrementAttempts)
			require.NotEmpty(t, *updates.LastError)

			return &domain.Take{ID: id, Status: updates.Status}, nil
		},
	)

	err := s.Render(context.Background(), id, false)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestTakes_Recover(t *testing.T) {
	_, st, _, s := newTestTakes(t, testOptions)

	st.EXPECT().FailRecordingTakes(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	require.NoError(t, s.Recover(context.Background()))
}
