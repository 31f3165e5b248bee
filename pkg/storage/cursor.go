package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidCursor is returned by ParseCursor.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor is a keyset position in a list ordered by created_at DESC, id DESC.
// Rows created in one transaction share created_at, so the id breaks ties.
// The zero Cursor starts at the newest row.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// IsZero reports whether c is the first page cursor.
func (c Cursor) IsZero() bool {
	return c.CreatedAt.IsZero()
}

// String encodes c as "<RFC 3339 time>_<uuid>".
func (c Cursor) String() string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + "_" + c.ID.String()
}

// ParseCursor decodes a cursor produced by Cursor.String.
func ParseCursor(s string) (Cursor, error) {
	rawTime, rawID, ok := strings.Cut(s, "_")
	if !ok {
		return Cursor{}, fmt.Errorf("%w: %q", ErrInvalidCursor, s)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, rawTime)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}

	return Cursor{CreatedAt: createdAt, ID: id}, nil
}
