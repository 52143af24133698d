package application

import (
	"context"
	"fmt"

	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/internal/repository"
	"go.uber.org/zap"
)

// ProfileService lists a user's projects and the review state of their
// documents.
type ProfileService struct {
	Repos *repository.Repos
	Log   *zap.Logger
}

func NewProfileService(repos *repository.Repos, log *zap.Logger) *ProfileService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileService{Repos: repos, Log: log}
}

// Projects lists the projects of userUUID, or of the caller when it is empty.
// Another user's profile only shows finished projects.
func (s *ProfileService) Projects(ctx context.Context, caller Caller, userUUID string, page, limit int) (*project.ProfilePage, error) {
	if userUUID == "" {
		userUUID = caller.UserID
	}
	u, err := s.Repos.User.FindByUUID(ctx, userUUID)
	if err != nil {
		return nil, internal(notFoundAs(err, ErrUserNotFound))
	}

	projects, total, err := s.Repos.Project.ListByMember(ctx, u.ID, userUUID != caller.UserID, page, limit)
	if err != nil {
		return nil, internal(fmt.Errorf("list projects of %s: %w", userUUID, err))
	}

	out := &project.ProfilePage{Count: total, Projects: make([]project.ProfileProject, 0, len(projects))}
	for i := range projects {
		p := &projects[i]
		status, err := project.DeriveProjectStatus(p.Status)
		if err != nil {
			s.Log.Warn("profile project with broken ledger", zap.String("project", p.UUID), zap.Error(err))
			continue
		}
		members := make([]project.UserSummary, 0, len(p.Members))
		for _, m := range p.Members {
			members = append(members, summarize(m.User))
		}
		out.Projects = append(out.Projects, project.ProfileProject{
			UUID:         p.UUID,
			Name:         p.Name,
			Description:  p.Description,
			Category:     p.Category,
			Field:        p.Field,
			ThumbnailURL: p.ThumbnailURL,
			Emoji:        p.Emoji,
			Status:       status,
			Members:      members,
		})
	}
	return out, nil
}

// Documents returns one page of every review bucket of the caller.
func (s *ProfileService) Documents(ctx context.Context, caller Caller, page, limit int) (project.ReviewSummary, error) {
	u, err := s.Repos.User.FindByUUID(ctx, caller.UserID)
	if err != nil {
		return nil, internal(notFoundAs(err, ErrUserNotFound))
	}
	out := project.ReviewSummary{}
	for _, b := range project.ReviewBuckets {
		res, err := s.bucket(ctx, u.ID, b, page, limit)
		if err != nil {
			return nil, err
		}
		out[b] = *res
	}
	return out, nil
}

// DocumentsIn returns one page of a single review bucket of the caller.
func (s *ProfileService) DocumentsIn(ctx context.Context, caller Caller, b project.ReviewBucket, page, limit int) (*project.ReviewPage, error) {
	if _, ok := b.State(); !ok {
		return nil, fmt.Errorf("%w: unknown review bucket %q", ErrUnprocessable, b)
	}
	u, err := s.Repos.User.FindByUUID(ctx, caller.UserID)
	if err != nil {
		return nil, internal(notFoundAs(err, ErrUserNotFound))
	}
	return s.bucket(ctx, u.ID, b, page, limit)
}

func (s *ProfileService) bucket(ctx context.Context, userID uint, b project.ReviewBucket, page, limit int) (*project.ReviewPage, error) {
	state, _ := b.State()
	rows, total, err := s.Repos.Project.ListByReviewState(ctx, userID, state, page, limit)
	if err != nil {
		return nil, internal(fmt.Errorf("list %s documents: %w", b, err))
	}
	out := &project.ReviewPage{Count: total, Documents: make([]project.ReviewItem, 0, len(rows))}
	for _, r := range rows {
		out.Documents = append(out.Documents, project.ReviewItem{
			UUID:         r.UUID,
			Name:         r.Name,
			ThumbnailURL: r.ThumbnailURL,
			Emoji:        r.Emoji,
			Type:         reportType(r.Type),
			SubmittedAt:  r.SubmittedAt,
		})
	}
	return out, nil
}
