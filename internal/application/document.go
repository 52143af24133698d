package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/internal/repository"
	"go.uber.org/zap"
)

// lifecycle holds what the project, plan and report services share.
type lifecycle struct {
	Repos  *repository.Repos
	Policy PermissionPolicy
	Log    *zap.Logger
	Now    func() time.Time
}

func newLifecycle(repos *repository.Repos, log *zap.Logger) lifecycle {
	if log == nil {
		log = zap.NewNop()
	}
	return lifecycle{
		Repos:  repos,
		Policy: DefaultPolicy(),
		Log:    log,
		Now:    time.Now,
	}
}

func (l *lifecycle) findProject(ctx context.Context, repos *repository.Repos, uuid string) (*project.Project, error) {
	p, err := repos.Project.FindByUUID(ctx, uuid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	return p, nil
}

// findEditable loads the project and checks the caller may mutate it.
func (l *lifecycle) findEditable(ctx context.Context, repos *repository.Repos, uuid string, caller Caller) (*project.Project, error) {
	p, err := l.findProject(ctx, repos, uuid)
	if err != nil {
		return nil, err
	}
	if err := l.Policy.CheckPermission(p.MemberUUIDs(), caller); err != nil {
		return nil, err
	}
	return p, nil
}

func lockState(ctx context.Context, repos *repository.Repos, projectID uint, t project.DocumentType) (*project.Status, project.DocumentState, error) {
	st, err := repos.Status.GetForUpdate(ctx, projectID)
	if err != nil {
		return nil, 0, fmt.Errorf("lock status: %w", err)
	}
	state, err := st.State(t)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return st, state, nil
}

// submitDocument moves a Draft or Rejected document to Pending.
func (l *lifecycle) submitDocument(ctx context.Context, repos *repository.Repos, projectID uint, t project.DocumentType) error {
	st, state, err := lockState(ctx, repos, projectID, t)
	if err != nil {
		return err
	}
	if state == project.DocumentPending || state == project.DocumentAccepted {
		return ErrAlreadySubmitted
	}

	st.SetState(t, project.DocumentPending, l.Now())
	if err := repos.Status.Save(ctx, st); err != nil {
		return fmt.Errorf("save status: %w", err)
	}
	return nil
}

// prepareModify rejects edits of Pending or Accepted documents and moves a
// Rejected document back to Draft.
func (l *lifecycle) prepareModify(ctx context.Context, repos *repository.Repos, projectID uint, t project.DocumentType) error {
	st, state, err := lockState(ctx, repos, projectID, t)
	if err != nil {
		return err
	}
	switch state {
	case project.DocumentPending, project.DocumentAccepted:
		return ErrNotEditable
	case project.DocumentRejected:
		st.SetState(t, project.DocumentDraft, l.Now())
		if err := repos.Status.Save(ctx, st); err != nil {
			return fmt.Errorf("save status: %w", err)
		}
	}
	return nil
}

// confirmDocument accepts or rejects a Pending document.
func (l *lifecycle) confirmDocument(ctx context.Context, repos *repository.Repos, projectID uint, t project.DocumentType, accept bool) error {
	st, state, err := lockState(ctx, repos, projectID, t)
	if err != nil {
		return err
	}
	switch state {
	case project.DocumentAccepted:
		return ErrAlreadyAccepted
	case project.DocumentDraft, project.DocumentRejected:
		return ErrNotSubmitted
	}

	next := project.DocumentRejected
	if accept {
		next = project.DocumentAccepted
	}
	st.SetState(t, next, l.Now())
	if err := repos.Status.Save(ctx, st); err != nil {
		return fmt.Errorf("save status: %w", err)
	}
	return nil
}

// documentStatus reads the status without locking, for views.
func documentStatus(p *project.Project, t project.DocumentType) (project.DocumentStatus, error) {
	if p.Status == nil {
		return "", fmt.Errorf("%w: project %s has no status row", ErrInternal, p.UUID)
	}
	s, err := p.Status.DocumentStatus(t)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return s, nil
}

func notFoundAs(err, target error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return target
	}
	return err
}
