package handlers

import (
	"github.com/linskybing/project-review/internal/application"
	"go.uber.org/zap"
)

type Handlers struct {
	Project *ProjectHandler
	Plan    *PlanHandler
	Report  *ReportHandler
	Feed    *FeedHandler
	Profile *ProfileHandler
	Socket  *SocketHandler
	Hub     *Hub
}

func New(svc *application.Services, log *zap.Logger) *Handlers {
	hub := NewHub()
	return &Handlers{
		Project: NewProjectHandler(svc.Project),
		Plan:    NewPlanHandler(svc.Plan),
		Report:  NewReportHandler(svc.Report),
		Feed:    NewFeedHandler(svc.Feed),
		Profile: NewProfileHandler(svc.Profile),
		Socket:  NewSocketHandler(svc, hub, log),
		Hub:     hub,
	}
}
