package repository

import (
	"context"

	"github.com/linskybing/project-review/internal/domain/user"
	"gorm.io/gorm"
)

type UserStore interface {
	FindByUUID(ctx context.Context, uuid string) (*user.User, error)
	// FindByUUIDs returns the active users among uuids, in no particular order.
	FindByUUIDs(ctx context.Context, uuids []string) ([]user.User, error)
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) FindByUUID(ctx context.Context, uuid string) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("uuid = ? AND deleted = ?", uuid, false).
		First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *DBUserRepo) FindByUUIDs(ctx context.Context, uuids []string) ([]user.User, error) {
	if len(uuids) == 0 {
		return nil, nil
	}
	var users []user.User
	err := r.db.WithContext(ctx).
		Where("uuid IN ? AND deleted = ?", uuids, false).
		Find(&users).Error
	return users, err
}
