package postgres

import (
	"context"
	"fmt"
	"handi/pkg/domain"
	"handi/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	takesTable = "takes"
)

func (p *PgSQL) StoreTake(ctx context.Context, take domain.Take) (*domain.Take, error) {
	var row PgTake
	if err := row.FromDomain(take); err != nil {
		return nil, err
	}

	var result PgTake
	if _, err := p.Builder.Insert(takesTable).
		Rows(row).
		Returning(&PgTake{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("take already recording: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store take into pg: %w", err)
	}

	return result.ToDomain()
}

// UpdateTake sets only the non-nil fields of updates and bumps updated_at.
func (p *PgSQL) UpdateTake(ctx context.Context, id domain.TakeID, updates storage.TakeUpdates) (*domain.Take, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.Events != nil {
		events, err := marshalEvents(*updates.Events)
		if err != nil {
			return nil, err
		}
		rec["events"] = events
		rec["event_count"] = len(*updates.Events)
	}
	if updates.SMF != nil {
		rec["smf"] = *updates.SMF
	}
	if updates.StoppedAt != nil {
		rec["stopped_at"] = *updates.StoppedAt
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}
	if updates.IncrementAttempts {
		rec["attempts"] = goqu.L("attempts + 1")
	}

	var row PgTake
	found, err := p.Builder.Update(takesTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgTake{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update take in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) TakeByID(ctx context.Context, id domain.TakeID) (*domain.Take, error) {
	var row PgTake
	found, err := p.Builder.From(takesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch take by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Takes pages through live takes ordered by created_at DESC, id DESC. The
// events and the rendered file are not loaded.
func (p *PgSQL) Takes(ctx context.Context, cursor storage.Cursor, limit uint) (storage.TakePage, error) {
	w := []goqu.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, afterCursor(cursor))
	}

	var rows []PgTakeSummary
	if err := p.Builder.From(takesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.TakePage{}, fmt.Errorf("could not fetch takes from pg: %w", err)
	}

	var nextCursor *storage.Cursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
		}
	}

	takes := make([]domain.Take, 0, len(rows))
	for i := range rows {
		takes = append(takes, *rows[i].ToDomain())
	}

	return storage.TakePage{
		Takes:      takes,
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) DeleteTake(ctx context.Context, id domain.TakeID) (*domain.Take, error) {
	var row PgTakeSummary
	found, err := p.Builder.Update(takesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgTakeSummary{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete take in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) FailRecordingTakes(ctx context.Context, lastError string) (int64, error) {
	res, err := p.Builder.Update(takesTable).
		Set(goqu.Record{
			"status":     string(domain.TakeStatusFailed),
			"last_error": lastError,
			"stopped_at": goqu.L("CURRENT_TIMESTAMP"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("status").Eq(string(domain.TakeStatusRecording)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not fail recording takes in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count failed takes: %w", err)
	}

	return n, nil
}
