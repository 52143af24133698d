package repository

import (
	"context"

	"github.com/linskybing/project-review/internal/domain/project"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipStore interface {
	ListByProject(ctx context.Context, projectID uint) ([]project.Member, error)
	DeleteByProject(ctx context.Context, projectID uint) error
	CreateBatch(ctx context.Context, members []project.Member) error
}

type DBMemberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) *DBMemberRepo {
	return &DBMemberRepo{
		db: db,
	}
}

func (r *DBMemberRepo) ListByProject(ctx context.Context, projectID uint) ([]project.Member, error) {
	var members []project.Member
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("project_id = ?", projectID).
		Find(&members).Error
	return members, err
}

func (r *DBMemberRepo) DeleteByProject(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&project.Member{}).Error
}

func (r *DBMemberRepo) CreateBatch(ctx context.Context, members []project.Member) error {
	if len(members) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&members).Error
}
