package repository

import (
	"context"

	"github.com/linskybing/project-review/internal/domain/project"
	"gorm.io/gorm"
)

// DocumentStore owns the Plan and Report rows. Each exists at most once per
// project; the primary key is the project id.
type DocumentStore interface {
	FindPlan(ctx context.Context, projectID uint) (*project.Plan, error)
	CreatePlan(ctx context.Context, p *project.Plan) error
	SavePlan(ctx context.Context, p *project.Plan) error
	DeletePlan(ctx context.Context, projectID uint) error

	FindReport(ctx context.Context, projectID uint) (*project.Report, error)
	CreateReport(ctx context.Context, r *project.Report) error
	SaveReport(ctx context.Context, r *project.Report) error
	DeleteReport(ctx context.Context, projectID uint) error
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{
		db: db,
	}
}

func (r *DBDocumentRepo) FindPlan(ctx context.Context, projectID uint) (*project.Plan, error) {
	var p project.Plan
	if err := r.db.WithContext(ctx).First(&p, "project_id = ?", projectID).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *DBDocumentRepo) CreatePlan(ctx context.Context, p *project.Plan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *DBDocumentRepo) SavePlan(ctx context.Context, p *project.Plan) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *DBDocumentRepo) DeletePlan(ctx context.Context, projectID uint) error {
	return deleteByProject(r.db.WithContext(ctx), &project.Plan{}, projectID)
}

func (r *DBDocumentRepo) FindReport(ctx context.Context, projectID uint) (*project.Report, error) {
	var rep project.Report
	if err := r.db.WithContext(ctx).First(&rep, "project_id = ?", projectID).Error; err != nil {
		return nil, translate(err)
	}
	return &rep, nil
}

func (r *DBDocumentRepo) CreateReport(ctx context.Context, rep *project.Report) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *DBDocumentRepo) SaveReport(ctx context.Context, rep *project.Report) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *DBDocumentRepo) DeleteReport(ctx context.Context, projectID uint) error {
	return deleteByProject(r.db.WithContext(ctx), &project.Report{}, projectID)
}

func deleteByProject(db *gorm.DB, model interface{}, projectID uint) error {
	res := db.Where("project_id = ?", projectID).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
