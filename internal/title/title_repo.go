package title

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=title_repo.go -destination=mock/title_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, t *Title) error
	FindAll(ctx context.Context) ([]Title, error)
	FindByName(ctx context.Context, name string) (*Title, error)
	Update(ctx context.Context, t *Title) error
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

func (r *repository) Create(ctx context.Context, t *Title) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Title, error) {
	var titles []Title
	err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&titles).Error
	return titles, err
}

func (r *repository) FindByName(ctx context.Context, name string) (*Title, error) {
	var t Title
	err := r.db.WithContext(ctx).
		First(&t, "name = ?", name).Error
	return &t, err
}

func (r *repository) Update(ctx context.Context, t *Title) error {
	return r.db.WithContext(ctx).Save(t).Error
}
