package application

import (
	"github.com/linskybing/project-review/internal/repository"
	"go.uber.org/zap"
)

type Services struct {
	Project *ProjectService
	Plan    *PlanService
	Report  *ReportService
	Feed    *FeedService
	Profile *ProfileService
}

// New wires the services. views and objects may be nil.
func New(repos *repository.Repos, log *zap.Logger, views repository.ViewCounter, objects repository.ObjectStore) *Services {
	projects := NewProjectService(repos, log)
	projects.Views = views
	projects.Objects = objects

	return &Services{
		Project: projects,
		Plan:    NewPlanService(repos, log),
		Report:  NewReportService(repos, log),
		Feed:    NewFeedService(repos, log),
		Profile: NewProfileService(repos, log),
	}
}
