package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// pick prefers the caller's transaction when one is open.
func pick(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}

func paginate(offset, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(offset).Limit(limit)
	}
}

type groupCount struct {
	Key   uuid.UUID `gorm:"column:group_key"`
	Count int64     `gorm:"column:count"`
}

// countGroupedBy counts rows of model per value of column, restricted to ids.
// Ids with no rows are absent from the result.
func countGroupedBy(ctx context.Context, db *gorm.DB, model interface{}, column string, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []groupCount
	err := db.WithContext(ctx).
		Model(model).
		Select(column+" AS group_key, COUNT(*) AS count").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.Key] = row.Count
	}
	return out, nil
}
