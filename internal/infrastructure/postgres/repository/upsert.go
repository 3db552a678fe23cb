package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// conflictKey names the unique columns a vendor row is matched on and their
// values for the row being written.
type conflictKey struct {
	table   string
	columns []string
	values  []interface{}
}

func (k conflictKey) where() map[string]interface{} {
	where := make(map[string]interface{}, len(k.columns))
	for i, c := range k.columns {
		where[c] = k.values[i]
	}
	return where
}

// upsertRow inserts model or, when a row with the same key exists, rewrites
// the mutable columns and updated_at. It returns the id of the stored row,
// which differs from the freshly generated one when the row already existed.
func upsertRow(ctx context.Context, db *gorm.DB, model interface{}, key conflictKey, mutable []string) (string, error) {
	target := make([]clause.Column, len(key.columns))
	for i, c := range key.columns {
		target[i] = clause.Column{Name: c}
	}
	updates := append(append(make([]string, 0, len(mutable)+1), mutable...), "updated_at")

	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   target,
		DoUpdates: clause.AssignmentColumns(updates),
	}).Create(model).Error
	if err != nil {
		return "", fmt.Errorf("upsert %s: %w", key.table, err)
	}

	var ids []string
	if err := db.WithContext(ctx).Table(key.table).Where(key.where()).Limit(1).Pluck("id", &ids).Error; err != nil {
		return "", fmt.Errorf("resolve %s id: %w", key.table, err)
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("resolve %s id: row missing after upsert", key.table)
	}
	return ids[0], nil
}

func newID() string {
	return uuid.NewString()
}
