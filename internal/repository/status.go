package repository

import (
	"context"

	"github.com/linskybing/project-review/internal/domain/project"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatusLedgerStore interface {
	Create(ctx context.Context, s *project.Status) error
	Get(ctx context.Context, projectID uint) (*project.Status, error)
	// GetForUpdate row-locks the ledger until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, projectID uint) (*project.Status, error)
	// Save writes every column, so nil accepted flags are stored as NULL.
	Save(ctx context.Context, s *project.Status) error
}

type DBStatusRepo struct {
	db *gorm.DB
}

func NewStatusRepo(db *gorm.DB) *DBStatusRepo {
	return &DBStatusRepo{
		db: db,
	}
}

func (r *DBStatusRepo) Create(ctx context.Context, s *project.Status) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *DBStatusRepo) Get(ctx context.Context, projectID uint) (*project.Status, error) {
	var s project.Status
	if err := r.db.WithContext(ctx).First(&s, "project_id = ?", projectID).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *DBStatusRepo) GetForUpdate(ctx context.Context, projectID uint) (*project.Status, error) {
	var s project.Status
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, "project_id = ?", projectID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *DBStatusRepo) Save(ctx context.Context, s *project.Status) error {
	return r.db.WithContext(ctx).Save(s).Error
}
