package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/internal/domain/user"
	"github.com/linskybing/project-review/internal/repository"
	"go.uber.org/zap"
)

type ProjectService struct {
	lifecycle
	// Views gates view count increments. Nil counts nothing.
	Views repository.ViewCounter
	// Objects is cleaned up after a delete. Nil skips the cleanup.
	Objects repository.ObjectStore
}

func NewProjectService(repos *repository.Repos, log *zap.Logger) *ProjectService {
	return &ProjectService{lifecycle: newLifecycle(repos, log)}
}

// validateMembers checks the co-member list against the category. The writer
// is never part of the list; it is appended by the caller.
func validateMembers(caller Caller, category project.Category, members []project.MemberDTO) error {
	if !category.Valid() {
		return ErrInvalidCategory
	}
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m.UserUUID == caller.UserID {
			return ErrWriterInMembers
		}
		if _, dup := seen[m.UserUUID]; dup {
			return ErrDuplicateMember
		}
		seen[m.UserUUID] = struct{}{}
	}

	if category == project.CategoryPersonal && len(members) > 0 {
		return ErrPersonalWithMembers
	}
	if category != project.CategoryPersonal && len(members) == 0 {
		return ErrTeamWithoutMembers
	}
	return nil
}

// resolveMembers looks up every listed user plus the writer and builds the
// member rows, writer last.
func (s *ProjectService) resolveMembers(ctx context.Context, repos *repository.Repos, writer *user.User, writerRole string, in []project.MemberDTO) ([]project.Member, error) {
	ids := make([]string, 0, len(in))
	for _, m := range in {
		ids = append(ids, m.UserUUID)
	}
	users, err := repos.User.FindByUUIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	byUUID := make(map[string]user.User, len(users))
	for _, u := range users {
		byUUID[u.UUID] = u
	}

	members := make([]project.Member, 0, len(in)+1)
	for _, m := range in {
		u, ok := byUUID[m.UserUUID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, m.UserUUID)
		}
		members = append(members, project.Member{UserID: u.ID, Role: m.Role, StudentNo: u.StudentNo, User: u})
	}
	members = append(members, project.Member{UserID: writer.ID, Role: writerRole, StudentNo: writer.StudentNo, User: *writer})
	return members, nil
}

func (s *ProjectService) findUser(ctx context.Context, repos *repository.Repos, id string) (*user.User, error) {
	u, err := repos.User.FindByUUID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return u, nil
}

// CreateProject stores the project, its members and a fresh status ledger
// atomically. The caller becomes the writer.
func (s *ProjectService) CreateProject(ctx context.Context, caller Caller, in project.CreateProjectDTO) (*project.Project, error) {
	if err := validateMembers(caller, in.Category, in.Members); err != nil {
		return nil, err
	}
	writer, err := s.findUser(ctx, s.Repos, caller.UserID)
	if err != nil {
		return nil, internal(err)
	}
	members, err := s.resolveMembers(ctx, s.Repos, writer, in.Role, in.Members)
	if err != nil {
		return nil, internal(err)
	}

	p := &project.Project{
		UUID:         uuid.NewString(),
		Name:         in.Name,
		Description:  in.Description,
		Category:     in.Category,
		Field:        in.Field,
		ThumbnailURL: in.ThumbnailURL,
		Emoji:        in.Emoji,
		WriterID:     writer.ID,
		Writer:       *writer,
	}
	if err := s.Repos.CreateProject(ctx, p, members); err != nil {
		s.Log.Error("create project rolled back", zap.String("writer", caller.UserID), zap.Error(err))
		return nil, internal(err)
	}

	s.Log.Info("project created", zap.String("project", p.UUID), zap.Int("members", len(members)))
	return p, nil
}

func (s *ProjectService) GetProject(ctx context.Context, caller Caller, id string) (*project.ProjectView, error) {
	p, err := s.findProject(ctx, s.Repos, id)
	if err != nil {
		return nil, internal(err)
	}

	status, err := project.DeriveProjectStatus(p.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	planStatus, err := documentStatus(p, project.DocumentPlan)
	if err != nil {
		return nil, err
	}
	reportStatus, err := documentStatus(p, project.DocumentReport)
	if err != nil {
		return nil, err
	}

	if s.countView(ctx, caller, p) {
		p.ViewCount++
	}

	view := &project.ProjectView{
		UUID:          p.UUID,
		Name:          p.Name,
		Description:   p.Description,
		Result:        p.Result,
		Category:      p.Category,
		Field:         p.Field,
		ViewCount:     p.ViewCount,
		ThumbnailURL:  p.ThumbnailURL,
		Emoji:         p.Emoji,
		CreatedAt:     p.CreatedAt,
		Writer:        summarize(p.Writer),
		Members:       make([]project.MemberView, 0, len(p.Members)),
		Status:        status,
		PlanStatus:    planStatus,
		ReportStatus:  reportStatus,
		RequestorType: string(s.Policy.Classify(p.MemberUUIDs(), caller)),
	}
	for _, m := range p.Members {
		view.Members = append(view.Members, project.MemberView{UserSummary: summarize(m.User), Role: m.Role})
	}
	return view, nil
}

// countView increments the view counter at most once per caller and TTL
// window. Failures are logged and never fail the read.
func (s *ProjectService) countView(ctx context.Context, caller Caller, p *project.Project) bool {
	if s.Views == nil {
		return false
	}
	ok, err := s.Views.ShouldCount(ctx, caller.UserID, p.UUID)
	if err != nil {
		s.Log.Warn("view count gate unavailable", zap.String("project", p.UUID), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := s.Repos.Project.IncreaseViewCount(ctx, p.ID); err != nil {
		s.Log.Warn("increase view count", zap.String("project", p.UUID), zap.Error(err))
		return false
	}
	return true
}

func summarize(u user.User) project.UserSummary {
	return project.UserSummary{UUID: u.UUID, Name: u.Name, StudentNo: u.StudentNo}
}

// ModifyProject updates the project fields and, when a member list is given,
// replaces the membership in the same transaction.
func (s *ProjectService) ModifyProject(ctx context.Context, caller Caller, id string, in project.UpdateProjectDTO) error {
	err := s.Repos.WithTransaction(ctx, func(tx *repository.Repos) error {
		p, err := s.findEditable(ctx, tx, id, caller)
		if err != nil {
			return err
		}

		applyUpdate(p, in)

		var members []project.Member
		switch {
		case in.Members != nil:
			if err := validateMembers(caller, p.Category, *in.Members); err != nil {
				return err
			}
			role, ok := s.writerRole(p, caller, in.Role)
			if !ok {
				return ErrMissingRole
			}
			writer, err := s.findUser(ctx, tx, caller.UserID)
			if err != nil {
				return err
			}
			members, err = s.resolveMembers(ctx, tx, writer, role, *in.Members)
			if err != nil {
				return err
			}
		case in.Category != nil:
			if err := validateMembers(caller, p.Category, coMembers(p, caller)); err != nil {
				return err
			}
		}

		if err := tx.Project.Update(ctx, p); err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		if members != nil {
			return tx.ReplaceMembership(ctx, p.ID, members)
		}
		return nil
	})
	return internal(err)
}

func applyUpdate(p *project.Project, in project.UpdateProjectDTO) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Result != nil {
		p.Result = in.Result
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Field != nil {
		p.Field = *in.Field
	}
	if in.ThumbnailURL != nil {
		p.ThumbnailURL = in.ThumbnailURL
	}
	if in.Emoji != nil {
		p.Emoji = in.Emoji
	}
}

// writerRole picks the role the caller keeps after a membership replacement.
func (s *ProjectService) writerRole(p *project.Project, caller Caller, given *string) (string, bool) {
	if given != nil && *given != "" {
		return *given, true
	}
	for _, m := range p.Members {
		if m.User.UUID == caller.UserID {
			return m.Role, true
		}
	}
	return "", false
}

// coMembers lists the current members other than the caller.
func coMembers(p *project.Project, caller Caller) []project.MemberDTO {
	out := make([]project.MemberDTO, 0, len(p.Members))
	for _, m := range p.Members {
		if m.User.UUID == caller.UserID {
			continue
		}
		out = append(out, project.MemberDTO{UserUUID: m.User.UUID, Role: m.Role})
	}
	return out
}

// DeleteProject removes the project; member, document and status rows go
// with it by cascade. Stored objects are removed afterwards on a best-effort basis.
func (s *ProjectService) DeleteProject(ctx context.Context, caller Caller, id string) error {
	err := s.Repos.WithTransaction(ctx, func(tx *repository.Repos) error {
		p, err := s.findEditable(ctx, tx, id, caller)
		if err != nil {
			return err
		}
		return notFoundAs(tx.Project.Delete(ctx, p.ID), ErrProjectNotFound)
	})
	if err != nil {
		return internal(err)
	}

	if s.Objects != nil {
		if err := s.Objects.RemoveProjectObjects(ctx, id); err != nil {
			s.Log.Warn("remove project objects", zap.String("project", id), zap.Error(err))
		}
	}
	s.Log.Info("project deleted", zap.String("project", id), zap.String("by", caller.UserID))
	return nil
}

// ConfirmProject accepts or rejects the submitted plan or report. Admin only.
func (s *ProjectService) ConfirmProject(ctx context.Context, caller Caller, id string, t project.DocumentType, accept bool) error {
	if !caller.IsAdmin() {
		return ErrAdminOnly
	}
	if !t.Valid() {
		return ErrInvalidDocumentType
	}

	err := s.Repos.WithTransaction(ctx, func(tx *repository.Repos) error {
		p, err := s.findProject(ctx, tx, id)
		if err != nil {
			return err
		}
		if t == project.DocumentPlan {
			_, err = tx.Document.FindPlan(ctx, p.ID)
			err = notFoundAs(err, ErrPlanNotFound)
		} else {
			_, err = tx.Document.FindReport(ctx, p.ID)
			err = notFoundAs(err, ErrReportNotFound)
		}
		if err != nil {
			return err
		}
		return s.confirmDocument(ctx, tx, p.ID, t, accept)
	})
	if err != nil {
		return internal(err)
	}

	s.Log.Info("document confirmed",
		zap.String("project", id),
		zap.String("type", string(t)),
		zap.Bool("accepted", accept),
	)
	return nil
}

// Authorize reports whether caller may edit the project, for transports that
// hold a long-lived session such as the websocket gateway.
func (s *ProjectService) Authorize(ctx context.Context, caller Caller, id string) error {
	_, err := s.findEditable(ctx, s.Repos, id, caller)
	return internal(err)
}
