package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/config"
	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/internal/domain/user"
	"github.com/linskybing/project-review/internal/repository/memstore"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	store    *memstore.Store
	svc      *application.Services
	writer   user.User
	mate     user.User
	outsider user.User
	admin    application.Caller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	f := &fixture{
		store:    store,
		writer:   store.AddUser(user.User{UUID: uuid.NewString(), Name: "Writer", StudentNo: 2020001}),
		mate:     store.AddUser(user.User{UUID: uuid.NewString(), Name: "Teammate", StudentNo: 2020002}),
		outsider: store.AddUser(user.User{UUID: uuid.NewString(), Name: "Outsider", StudentNo: 2020003}),
		admin:    application.Caller{UserID: uuid.NewString(), Role: config.AdminRole},
	}
	f.svc = application.New(store.Repos(), zap.NewNop(), nil, nil)
	f.svc.Report.RequireAcceptedPlan = true
	return f
}

func callerOf(u user.User) application.Caller {
	return application.Caller{UserID: u.UUID, Role: config.UserRole}
}

// createTeam creates a TEAM project written by f.writer with f.mate as member.
func (f *fixture) createTeam(t *testing.T) string {
	t.Helper()
	p, err := f.svc.Project.CreateProject(context.Background(), callerOf(f.writer), project.CreateProjectDTO{
		Name:     "Lifecycle",
		Category: project.CategoryTeam,
		Field:    "backend",
		Role:     "leader",
		Members:  []project.MemberDTO{{UserUUID: f.mate.UUID, Role: "developer"}},
	})
	require.NoError(t, err)
	return p.UUID
}

func samplePlan() project.PlanDTO {
	return project.PlanDTO{
		Goal:        "ship the review flow",
		Content:     "milestones",
		StartDate:   project.NewDate(2024, time.March, 1),
		EndDate:     project.NewDate(2024, time.June, 1),
		IncludeCode: true,
	}
}

func sampleReport() project.ReportDTO {
	return project.ReportDTO{Subject: "Final report", Content: "what we built"}
}

// acceptPlan walks the plan to ACCEPTED.
func (f *fixture) acceptPlan(t *testing.T, id string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.svc.Plan.CreatePlan(ctx, callerOf(f.writer), id, samplePlan()))
	require.NoError(t, f.svc.Plan.SubmitPlan(ctx, callerOf(f.writer), id))
	require.NoError(t, f.svc.Project.ConfirmProject(ctx, f.admin, id, project.DocumentPlan, true))
}

func (f *fixture) projectStatus(t *testing.T, id string) *project.ProjectView {
	t.Helper()
	view, err := f.svc.Project.GetProject(context.Background(), callerOf(f.writer), id)
	require.NoError(t, err)
	return view
}
