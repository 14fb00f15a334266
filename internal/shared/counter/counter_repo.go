package counter

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// SequenceCounter backs application-assigned numbering (employee numbers).
// A row per counter type, bumped atomically. Bumped inside the caller's
// transaction the increment rolls back with it, so a failed request leaves
// neither a duplicate nor a gap.
type SequenceCounter struct {
	CounterType string `gorm:"primaryKey;type:varchar(40)"`
	LastValue   int64  `gorm:"not null"`
	UpdatedAt   time.Time
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetNextValue(ctx context.Context, counterType string, seed int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// GetNextValue bumps the counter and returns the new value. The first call
// for a counter type returns seed+1, so seeding employee_number with 1000
// keeps the historical numbering that starts at 1001.
func (r *repository) GetNextValue(ctx context.Context, counterType string, seed int64) (int64, error) {
	var nextValue int64

	// Raw SQL for an atomic upsert-and-increment; concurrent callers cannot
	// observe the same value.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (counter_type, last_value, updated_at)
		VALUES (?, ?, now())
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = sequence_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, counterType, seed+1).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
