package application

import (
	"context"
	"fmt"

	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/internal/repository"
	"go.uber.org/zap"
)

// FeedService lists finished projects and the review queue.
type FeedService struct {
	Repos *repository.Repos
	Log   *zap.Logger
}

func NewFeedService(repos *repository.Repos, log *zap.Logger) *FeedService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FeedService{Repos: repos, Log: log}
}

func feedPage(projects []project.Project, total int64) *project.FeedPage {
	page := &project.FeedPage{Count: total, Projects: make([]project.FeedItem, 0, len(projects))}
	for i := range projects {
		page.Projects = append(page.Projects, projects[i].FeedItem())
	}
	return page
}

func (s *FeedService) Feed(ctx context.Context, q project.FeedQuery) (*project.FeedPage, error) {
	projects, total, err := s.Repos.Project.ListDone(ctx, q.Order, q.Page, q.Limit)
	if err != nil {
		return nil, internal(fmt.Errorf("list feed: %w", err))
	}
	return feedPage(projects, total), nil
}

// Search matches finished projects by project name or by member name.
func (s *FeedService) Search(ctx context.Context, by project.SearchBy, keyword string, page, limit int) (*project.FeedPage, error) {
	var (
		projects []project.Project
		total    int64
		err      error
	)
	switch by {
	case project.SearchByProjectName:
		projects, total, err = s.Repos.Project.SearchByName(ctx, keyword, page, limit)
	case project.SearchByMemberName:
		projects, total, err = s.Repos.Project.SearchByMember(ctx, keyword, page, limit)
	default:
		return nil, fmt.Errorf("%w: unknown search field %q", ErrUnprocessable, by)
	}
	if err != nil {
		return nil, internal(fmt.Errorf("search %s: %w", by, err))
	}
	return feedPage(projects, total), nil
}

// SearchAll runs the search on every field.
func (s *FeedService) SearchAll(ctx context.Context, keyword string, page, limit int) (project.SearchResult, error) {
	result := project.SearchResult{}
	for _, by := range []project.SearchBy{project.SearchByProjectName, project.SearchByMemberName} {
		res, err := s.Search(ctx, by, keyword, page, limit)
		if err != nil {
			return nil, err
		}
		result[by] = *res
	}
	return result, nil
}

// Pending lists projects with a document awaiting review. Admins see every
// project, other callers only those they are a member of.
func (s *FeedService) Pending(ctx context.Context, caller Caller, page, limit int) (*project.PendingPage, error) {
	var memberID *uint
	if !caller.IsAdmin() {
		u, err := s.Repos.User.FindByUUID(ctx, caller.UserID)
		if err != nil {
			return nil, internal(notFoundAs(err, ErrUserNotFound))
		}
		memberID = &u.ID
	}

	projects, total, err := s.Repos.Project.ListPending(ctx, memberID, page, limit)
	if err != nil {
		return nil, internal(fmt.Errorf("list pending: %w", err))
	}

	out := &project.PendingPage{Count: total, Projects: make([]project.PendingItem, 0, len(projects))}
	for i := range projects {
		p := &projects[i]
		if p.Status == nil {
			s.Log.Warn("pending project without status", zap.String("project", p.UUID))
			continue
		}
		t := project.DocumentReport
		if state, err := p.Status.State(project.DocumentPlan); err == nil && state == project.DocumentPending {
			t = project.DocumentPlan
		}
		out.Projects = append(out.Projects, project.PendingItem{
			UUID:        p.UUID,
			Name:        p.Name,
			Category:    p.Category,
			ReportType:  reportType(t),
			SubmittedAt: p.Status.SubmittedAt(t),
			Writer:      summarize(p.Writer),
		})
	}
	return out, nil
}

func reportType(t project.DocumentType) string {
	if t == project.DocumentPlan {
		return "PLAN"
	}
	return "REPORT"
}
