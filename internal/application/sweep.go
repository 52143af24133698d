package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/linskybing/project-review/internal/repository"
	"go.uber.org/zap"
)

// SweepOrphanObjects removes stored objects whose project no longer exists.
// DeleteProject only cleans up on a best-effort basis; this catches the rest.
// It returns how many projects were cleaned.
func (s *ProjectService) SweepOrphanObjects(ctx context.Context) (int, error) {
	if s.Objects == nil {
		return 0, nil
	}
	ids, err := s.Objects.ListProjects(ctx)
	if err != nil {
		return 0, fmt.Errorf("list stored projects: %w", err)
	}

	removed := 0
	for _, id := range ids {
		_, err := s.Repos.Project.FindByUUID(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return removed, fmt.Errorf("check project %s: %w", id, err)
		}
		if err := s.Objects.RemoveProjectObjects(ctx, id); err != nil {
			s.Log.Warn("sweep project objects", zap.String("project", id), zap.Error(err))
			continue
		}
		removed++
	}
	return removed, nil
}
