package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"handi/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgProfile struct {
	ID          uuid.UUID       `db:"id"          goqu:"skipinsert"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Mappings    json.RawMessage `db:"mappings"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgProfile) ToDomain() (*domain.Profile, error) {
	var mappings []domain.Mapping
	if len(p.Mappings) > 0 {
		if err := json.Unmarshal(p.Mappings, &mappings); err != nil {
			return nil, fmt.Errorf("could not unmarshal profile mappings: %w", err)
		}
	}

	return &domain.Profile{
		ID:          domain.ProfileID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Mappings:    mappings,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}, nil
}

func (p *PgProfile) FromDomain(profile domain.Profile) error {
	mappings := profile.Mappings
	if mappings == nil {
		mappings = []domain.Mapping{}
	}
	raw, err := json.Marshal(mappings)
	if err != nil {
		return fmt.Errorf("could not marshal profile mappings: %w", err)
	}

	*p = PgProfile{
		ID:          uuid.UUID(profile.ID),
		Name:        profile.Name,
		Description: profile.Description,
		Mappings:    raw,
		CreatedAt:   profile.CreatedAt,
	}

	return nil
}

func pgProfilesToDomain(rows []PgProfile) ([]domain.Profile, error) {
	out := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

// PgTakeSummary is a take row without the recorded events and the rendered
// file, used for listings.
type PgTakeSummary struct {
	ID         uuid.UUID     `db:"id"         goqu:"skipinsert"`
	ProfileID  uuid.NullUUID `db:"profile_id"`
	Status     string        `db:"status"`
	EventCount int           `db:"event_count"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	StartedAt time.Time    `db:"started_at"`
	StoppedAt sql.NullTime `db:"stopped_at"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgTakeSummary) ToDomain() *domain.Take {
	var profileID *domain.ProfileID
	if p.ProfileID.Valid {
		id := domain.ProfileID(p.ProfileID.UUID)
		profileID = &id
	}

	return &domain.Take{
		ID:         domain.TakeID(p.ID),
		ProfileID:  profileID,
		Status:     domain.TakeStatus(p.Status),
		EventCount: p.EventCount,
		Attempts:   p.Attempts,
		LastError:  p.LastError.String,
		StartedAt:  p.StartedAt,
		StoppedAt:  p.StoppedAt.Time,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
		DeletedAt:  p.DeletedAt.Time,
	}
}

type PgTake struct {
	PgTakeSummary

	Events json.RawMessage `db:"events"`
	SMF    []byte          `db:"smf" goqu:"skipinsert"`
}

func (p *PgTake) ToDomain() (*domain.Take, error) {
	take := p.PgTakeSummary.ToDomain()
	if len(p.Events) > 0 {
		if err := json.Unmarshal(p.Events, &take.Events); err != nil {
			return nil, fmt.Errorf("could not unmarshal take events: %w", err)
		}
	}
	take.SMF = p.SMF

	return take, nil
}

func (p *PgTake) FromDomain(take domain.Take) error {
	events, err := marshalEvents(take.Events)
	if err != nil {
		return err
	}

	*p = PgTake{
		PgTakeSummary: PgTakeSummary{
			ID: uuid.UUID(take.ID),
			ProfileID: uuid.NullUUID{
				Valid: take.ProfileID != nil,
			},
			Status:     string(take.Status),
			EventCount: len(take.Events),
			StartedAt:  take.StartedAt,
			StoppedAt: sql.NullTime{
				Time:  take.StoppedAt,
				Valid: !take.StoppedAt.IsZero(),
			},
		},
		Events: events,
	}
	if take.ProfileID != nil {
		p.ProfileID.UUID = uuid.UUID(*take.ProfileID)
	}

	return nil
}

func marshalEvents(events []domain.TakeEvent) (json.RawMessage, error) {
	if events == nil {
		events = []domain.TakeEvent{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return nil, fmt.Errorf("could not marshal take events: %w", err)
	}

	return raw, nil
}
