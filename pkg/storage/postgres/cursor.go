package postgres

import (
	"handi/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

// afterCursor matches rows that follow c in created_at DESC, id DESC order.
func afterCursor(c storage.Cursor) goqu.Expression {
	return goqu.Or(
		goqu.I("created_at").Lt(c.CreatedAt),
		goqu.And(
			goqu.I("created_at").Eq(c.CreatedAt),
			goqu.I("id").Lt(c.ID),
		),
	)
}
