package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileProjects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	done := f.createTeam(t)
	f.finish(t, done)
	planning := f.createTeam(t)

	own, err := f.svc.Profile.Projects(ctx, callerOf(f.mate), "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), own.Count)
	require.Len(t, own.Projects, 2)
	assert.Equal(t, planning, own.Projects[0].UUID)
	assert.Equal(t, project.ProjectPlanning, own.Projects[0].Status)
	assert.Equal(t, project.ProjectDone, own.Projects[1].Status)
	assert.Len(t, own.Projects[1].Members, 2)

	same, err := f.svc.Profile.Projects(ctx, callerOf(f.mate), f.mate.UUID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, own.Count, same.Count, "naming yourself is the same as no user")

	visited, err := f.svc.Profile.Projects(ctx, callerOf(f.outsider), f.mate.UUID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), visited.Count, "others only see finished projects")
	require.Len(t, visited.Projects, 1)
	assert.Equal(t, done, visited.Projects[0].UUID)

	empty, err := f.svc.Profile.Projects(ctx, callerOf(f.outsider), "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.Count)
	assert.NotNil(t, empty.Projects)

	_, err = f.svc.Profile.Projects(ctx, callerOf(f.writer), uuid.NewString(), 1, 10)
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}

func TestProfileDocuments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	writer := callerOf(f.writer)

	accepted := f.createTeam(t)
	f.acceptPlan(t, accepted)

	rejected := f.createTeam(t)
	require.NoError(t, f.svc.Plan.CreatePlan(ctx, writer, rejected, samplePlan()))
	require.NoError(t, f.svc.Plan.SubmitPlan(ctx, writer, rejected))
	require.NoError(t, f.svc.Project.ConfirmProject(ctx, f.admin, rejected, project.DocumentPlan, false))

	pending := f.createTeam(t)
	require.NoError(t, f.svc.Plan.CreatePlan(ctx, writer, pending, samplePlan()))
	require.NoError(t, f.svc.Plan.SubmitPlan(ctx, writer, pending))

	// the accepted project also has a report in writing
	require.NoError(t, f.svc.Report.CreateReport(ctx, writer, accepted, sampleReport()))

	summary, err := f.svc.Profile.Documents(ctx, callerOf(f.mate), 1, 10)
	require.NoError(t, err)
	require.Len(t, summary, 4)

	expect := map[project.ReviewBucket]struct{ uuid, kind string }{
		project.BucketAccepted: {accepted, "PLAN"},
		project.BucketRejected: {rejected, "PLAN"},
		project.BucketPending:  {pending, "PLAN"},
		project.BucketWriting:  {accepted, "REPORT"},
	}
	for bucket, want := range expect {
		t.Run(string(bucket), func(t *testing.T) {
			page := summary[bucket]
			assert.Equal(t, int64(1), page.Count)
			require.Len(t, page.Documents, 1)
			assert.Equal(t, want.uuid, page.Documents[0].UUID)
			assert.Equal(t, want.kind, page.Documents[0].Type)

			single, err := f.svc.Profile.DocumentsIn(ctx, callerOf(f.mate), bucket, 1, 10)
			require.NoError(t, err)
			assert.Equal(t, page, *single)
		})
	}

	none, err := f.svc.Profile.DocumentsIn(ctx, callerOf(f.outsider), project.BucketPending, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), none.Count)

	_, err = f.svc.Profile.DocumentsIn(ctx, writer, project.ReviewBucket("declined"), 1, 10)
	assert.Equal(t, "Unprocessable", application.Kind(err))

	_, err = f.svc.Profile.Documents(ctx, f.admin, 1, 10)
	assert.ErrorIs(t, err, application.ErrUserNotFound, "admins have no profile")
}

func TestProfileStoreFailureIsInternal(t *testing.T) {
	svc, m := setupMocks(t)
	ctx := context.Background()
	callerID := uuid.NewString()

	m.user.EXPECT().FindByUUID(gomock.Any(), callerID).Return(&user.User{ID: 3, UUID: callerID}, nil).Times(2)
	m.project.EXPECT().ListByMember(gomock.Any(), uint(3), false, 1, 10).Return(nil, int64(0), errors.New("connection reset"))
	m.project.EXPECT().ListByReviewState(gomock.Any(), uint(3), project.DocumentAccepted, 1, 10).Return(nil, int64(0), errors.New("connection reset"))

	caller := application.Caller{UserID: callerID}
	_, err := svc.Profile.Projects(ctx, caller, "", 1, 10)
	assert.ErrorIs(t, err, application.ErrInternal)

	_, err = svc.Profile.Documents(ctx, caller, 1, 10)
	assert.ErrorIs(t, err, application.ErrInternal)
}
