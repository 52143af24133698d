package repository

//go:generate mockgen -destination=mock/mock_repository.go -package=mock . ProjectStore,MembershipStore,DocumentStore,StatusLedgerStore,UserStore,ViewCounter,ObjectStore

import (
	"context"
	"errors"
	"fmt"

	"github.com/linskybing/project-review/internal/domain/project"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrTransaction marks a composite write that was rolled back.
	ErrTransaction = errors.New("transaction failed")
)

// TxFunc runs fn against a Repos bound to one transaction. Any error or
// panic from fn rolls the transaction back.
type TxFunc func(ctx context.Context, fn func(*Repos) error) error

type Repos struct {
	Project  ProjectStore
	Member   MembershipStore
	Document DocumentStore
	Status   StatusLedgerStore
	User     UserStore

	// Tx opens the unit of work. Nil runs fn against the receiver directly.
	Tx TxFunc
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Project:  NewProjectRepo(db),
		Member:   NewMemberRepo(db),
		Document: NewDocumentRepo(db),
		Status:   NewStatusRepo(db),
		User:     NewUserRepo(db),
		Tx:       gormTx(db),
	}
}

func gormTx(db *gorm.DB) TxFunc {
	return func(ctx context.Context, fn func(*Repos) error) error {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(NewRepositories(tx))
		})
	}
}

func (r *Repos) WithTransaction(ctx context.Context, fn func(*Repos) error) error {
	if r.Tx == nil {
		return fn(r)
	}
	return r.Tx(ctx, fn)
}

// CreateProject inserts the project, its members and its initial status row
// in one transaction. p.ID and p.Status are set on success.
func (r *Repos) CreateProject(ctx context.Context, p *project.Project, members []project.Member) error {
	status := &project.Status{}
	err := r.WithTransaction(ctx, func(tx *Repos) error {
		if err := tx.Project.Create(ctx, p); err != nil {
			return err
		}
		for i := range members {
			members[i].ProjectID = p.ID
		}
		if err := tx.Member.CreateBatch(ctx, members); err != nil {
			return err
		}
		status.ProjectID = p.ID
		return tx.Status.Create(ctx, status)
	})
	if err != nil {
		return fmt.Errorf("%w: create project: %w", ErrTransaction, err)
	}
	p.Status = status
	p.Members = members
	return nil
}

// ReplaceMembership deletes every member row of the project and inserts the
// replacement set. Readers never see a partial set.
func (r *Repos) ReplaceMembership(ctx context.Context, projectID uint, members []project.Member) error {
	err := r.WithTransaction(ctx, func(tx *Repos) error {
		if err := tx.Member.DeleteByProject(ctx, projectID); err != nil {
			return err
		}
		for i := range members {
			members[i].ProjectID = projectID
		}
		return tx.Member.CreateBatch(ctx, members)
	})
	if err != nil {
		return fmt.Errorf("%w: replace membership: %w", ErrTransaction, err)
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
