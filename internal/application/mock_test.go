package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/config"
	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/internal/domain/user"
	"github.com/linskybing/project-review/internal/repository"
	"github.com/linskybing/project-review/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mocks struct {
	project  *mock.MockProjectStore
	member   *mock.MockMembershipStore
	document *mock.MockDocumentStore
	status   *mock.MockStatusLedgerStore
	user     *mock.MockUserStore
	views    *mock.MockViewCounter
	objects  *mock.MockObjectStore
}

// setupMocks wires the services over gomock stores. Tx is left nil so
// units of work run directly on the mocks.
func setupMocks(t *testing.T) (*application.Services, *mocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &mocks{
		project:  mock.NewMockProjectStore(ctrl),
		member:   mock.NewMockMembershipStore(ctrl),
		document: mock.NewMockDocumentStore(ctrl),
		status:   mock.NewMockStatusLedgerStore(ctrl),
		user:     mock.NewMockUserStore(ctrl),
		views:    mock.NewMockViewCounter(ctrl),
		objects:  mock.NewMockObjectStore(ctrl),
	}
	repos := &repository.Repos{
		Project:  m.project,
		Member:   m.member,
		Document: m.document,
		Status:   m.status,
		User:     m.user,
	}
	return application.New(repos, zap.NewNop(), m.views, m.objects), m
}

func memberProject(callerID string) *project.Project {
	return &project.Project{
		ID:       7,
		UUID:     uuid.NewString(),
		Name:     "mocked",
		Category: project.CategoryPersonal,
		Writer:   user.User{UUID: callerID, Name: "w"},
		Members:  []project.Member{{ProjectID: 7, Role: "owner", User: user.User{UUID: callerID}}},
		Status:   &project.Status{ProjectID: 7},
	}
}

func TestStoreFailureIsInternal(t *testing.T) {
	svc, m := setupMocks(t)
	ctx := context.Background()
	caller := application.Caller{UserID: uuid.NewString(), Role: config.UserRole}
	storeErr := errors.New("connection reset")

	m.project.EXPECT().FindByUUID(gomock.Any(), "p-1").Return(nil, storeErr)

	err := svc.Plan.SubmitPlan(ctx, caller, "p-1")
	assert.ErrorIs(t, err, application.ErrInternal)
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, "Internal", application.Kind(err))
}

func TestInconsistentLedgerIsInternal(t *testing.T) {
	svc, m := setupMocks(t)
	ctx := context.Background()
	caller := application.Caller{UserID: uuid.NewString(), Role: config.UserRole}
	p := memberProject(caller.UserID)
	refused := false

	m.project.EXPECT().FindByUUID(gomock.Any(), p.UUID).Return(p, nil)
	m.document.EXPECT().FindPlan(gomock.Any(), p.ID).Return(&project.Plan{ProjectID: p.ID}, nil)
	m.status.EXPECT().GetForUpdate(gomock.Any(), p.ID).
		Return(&project.Status{ProjectID: p.ID, IsPlanSubmitted: true, IsPlanAccepted: &refused}, nil)

	err := svc.Plan.SubmitPlan(ctx, caller, p.UUID)
	assert.ErrorIs(t, err, application.ErrInternal)
	assert.ErrorIs(t, err, project.ErrInconsistentLedger)
}

func TestSubmitSavesPendingLedger(t *testing.T) {
	svc, m := setupMocks(t)
	ctx := context.Background()
	caller := application.Caller{UserID: uuid.NewString(), Role: config.UserRole}
	p := memberProject(caller.UserID)

	m.project.EXPECT().FindByUUID(gomock.Any(), p.UUID).Return(p, nil)
	m.document.EXPECT().FindReport(gomock.Any(), p.ID).Return(&project.Report{ProjectID: p.ID}, nil)
	m.status.EXPECT().GetForUpdate(gomock.Any(), p.ID).Return(&project.Status{ProjectID: p.ID}, nil)
	m.status.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *project.Status) error {
		assert.True(t, s.IsReportSubmitted)
		assert.Nil(t, s.IsReportAccepted)
		assert.NotNil(t, s.ReportSubmittedAt)
		assert.False(t, s.IsPlanSubmitted, "plan flags untouched")
		return nil
	})

	require.NoError(t, svc.Report.SubmitReport(ctx, caller, p.UUID))
}

func TestGetProjectCountsViews(t *testing.T) {
	svc, m := setupMocks(t)
	ctx := context.Background()
	caller := application.Caller{UserID: uuid.NewString(), Role: config.UserRole}

	t.Run("first view counts", func(t *testing.T) {
		p := memberProject(caller.UserID)
		p.ViewCount = 4
		m.project.EXPECT().FindByUUID(gomock.Any(), p.UUID).Return(p, nil)
		m.views.EXPECT().ShouldCount(gomock.Any(), caller.UserID, p.UUID).Return(true, nil)
		m.project.EXPECT().IncreaseViewCount(gomock.Any(), p.ID).Return(nil)

		view, err := svc.Project.GetProject(ctx, caller, p.UUID)
		require.NoError(t, err)
		assert.Equal(t, 5, view.ViewCount)
	})

	t.Run("repeat view inside the window", func(t *testing.T) {
		p := memberProject(caller.UserID)
		p.ViewCount = 4
		m.project.EXPECT().FindByUUID(gomock.Any(), p.UUID).Return(p, nil)
		m.views.EXPECT().ShouldCount(gomock.Any(), caller.UserID, p.UUID).Return(false, nil)

		view, err := svc.Project.GetProject(ctx, caller, p.UUID)
		require.NoError(t, err)
		assert.Equal(t, 4, view.ViewCount)
	})

	t.Run("counter unavailable", func(t *testing.T) {
		p := memberProject(caller.UserID)
		m.project.EXPECT().FindByUUID(gomock.Any(), p.UUID).Return(p, nil)
		m.views.EXPECT().ShouldCount(gomock.Any(), caller.UserID, p.UUID).Return(false, errors.New("redis down"))

		_, err := svc.Project.GetProject(ctx, caller, p.UUID)
		assert.NoError(t, err)
	})
}

func TestGetProjectWithoutLedger(t *testing.T) {
	svc, m := setupMocks(t)
	caller := application.Caller{UserID: uuid.NewString(), Role: config.UserRole}
	p := memberProject(caller.UserID)
	p.Status = nil

	m.project.EXPECT().FindByUUID(gomock.Any(), p.UUID).Return(p, nil)

	_, err := svc.Project.GetProject(context.Background(), caller, p.UUID)
	assert.ErrorIs(t, err, application.ErrInternal)
}

func TestDeleteProjectRemovesObjects(t *testing.T) {
	svc, m := setupMocks(t)
	ctx := context.Background()
	caller := application.Caller{UserID: uuid.NewString(), Role: config.UserRole}
	p := memberProject(caller.UserID)

	gomock.InOrder(
		m.project.EXPECT().FindByUUID(gomock.Any(), p.UUID).Return(p, nil),
		m.project.EXPECT().Delete(gomock.Any(), p.ID).Return(nil),
		m.objects.EXPECT().RemoveProjectObjects(gomock.Any(), p.UUID).Return(errors.New("bucket gone")),
	)

	assert.NoError(t, svc.Project.DeleteProject(ctx, caller, p.UUID), "object cleanup is best effort")
}

func TestDeleteProjectFailureKeepsObjects(t *testing.T) {
	svc, m := setupMocks(t)
	caller := application.Caller{UserID: uuid.NewString(), Role: config.UserRole}
	p := memberProject(caller.UserID)

	m.project.EXPECT().FindByUUID(gomock.Any(), p.UUID).Return(p, nil)
	m.project.EXPECT().Delete(gomock.Any(), p.ID).Return(errors.New("deadlock detected"))
	m.objects.EXPECT().RemoveProjectObjects(gomock.Any(), gomock.Any()).Times(0)

	err := svc.Project.DeleteProject(context.Background(), caller, p.UUID)
	assert.Equal(t, "Internal", application.Kind(err))
}

func TestPendingForMemberLooksUpUser(t *testing.T) {
	svc, m := setupMocks(t)
	caller := application.Caller{UserID: uuid.NewString(), Role: config.UserRole}

	m.user.EXPECT().FindByUUID(gomock.Any(), caller.UserID).Return(&user.User{ID: 3, UUID: caller.UserID}, nil)
	m.project.EXPECT().ListPending(gomock.Any(), gomock.Any(), 1, 20).
		DoAndReturn(func(_ context.Context, memberID *uint, _, _ int) ([]project.Project, int64, error) {
			require.NotNil(t, memberID)
			assert.Equal(t, uint(3), *memberID)
			return nil, 0, nil
		})

	page, err := svc.Feed.Pending(context.Background(), caller, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Count)
	assert.NotNil(t, page.Projects)

	m.user.EXPECT().FindByUUID(gomock.Any(), "ghost").Return(nil, repository.ErrNotFound)
	_, err = svc.Feed.Pending(context.Background(), application.Caller{UserID: "ghost"}, 1, 20)
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}

func TestSweepOrphanObjects(t *testing.T) {
	svc, m := setupMocks(t)
	ctx := context.Background()
	live, gone, broken := uuid.NewString(), uuid.NewString(), uuid.NewString()

	m.objects.EXPECT().ListProjects(ctx).Return([]string{live, gone, broken}, nil)
	m.project.EXPECT().FindByUUID(ctx, live).Return(&project.Project{UUID: live}, nil)
	m.project.EXPECT().FindByUUID(ctx, gone).Return(nil, repository.ErrNotFound)
	m.project.EXPECT().FindByUUID(ctx, broken).Return(nil, repository.ErrNotFound)
	m.objects.EXPECT().RemoveProjectObjects(ctx, gone).Return(nil)
	m.objects.EXPECT().RemoveProjectObjects(ctx, broken).Return(errors.New("bucket offline"))

	n, err := svc.Project.SweepOrphanObjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSweepOrphanObjectsStopsOnStoreError(t *testing.T) {
	svc, m := setupMocks(t)
	ctx := context.Background()
	id := uuid.NewString()

	m.objects.EXPECT().ListProjects(ctx).Return([]string{id}, nil)
	m.project.EXPECT().FindByUUID(ctx, id).Return(nil, assert.AnError)
	m.objects.EXPECT().RemoveProjectObjects(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Project.SweepOrphanObjects(ctx)
	assert.ErrorIs(t, err, assert.AnError)
}
