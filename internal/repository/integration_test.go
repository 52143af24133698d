//go:build integration
// +build integration

package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/internal/domain/user"
	"github.com/linskybing/project-review/internal/repository"
	"github.com/linskybing/project-review/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUsers(t *testing.T, db *gorm.DB, names ...string) []user.User {
	t.Helper()
	out := make([]user.User, 0, len(names))
	for i, name := range names {
		u := user.User{UUID: uuid.NewString(), Email: name + "@example.com", Name: name, StudentNo: 1000 + i}
		require.NoError(t, db.Create(&u).Error)
		out = append(out, u)
	}
	return out
}

func newProject(writer user.User, name string) *project.Project {
	return &project.Project{
		UUID:     uuid.NewString(),
		Name:     name,
		Category: project.CategoryTeam,
		Field:    "backend",
		WriterID: writer.ID,
	}
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestCreateProjectPersistsAggregate(t *testing.T) {
	db := testutils.SetupPostgres(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()
	users := seedUsers(t, db, "writer", "mate")

	p := newProject(users[0], "aggregate")
	members := []project.Member{
		{UserID: users[1].ID, Role: "developer"},
		{UserID: users[0].ID, Role: "leader"},
	}
	require.NoError(t, repos.CreateProject(ctx, p, members))
	require.NotZero(t, p.ID)

	got, err := repos.Project.FindByUUID(ctx, p.UUID)
	require.NoError(t, err)
	assert.Equal(t, "writer", got.Writer.Name)
	assert.ElementsMatch(t, []string{users[0].UUID, users[1].UUID}, got.MemberUUIDs())
	require.NotNil(t, got.Status)
	assert.False(t, got.Status.IsPlanSubmitted)
	assert.Nil(t, got.Status.IsPlanAccepted)

	_, err = repos.Project.FindByUUID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateProjectRollsBack(t *testing.T) {
	db := testutils.SetupPostgres(t)
	repos := repository.NewRepositories(db)
	users := seedUsers(t, db, "writer", "mate")

	injected := errors.New("injected member failure")
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_members", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "members" {
			_ = tx.AddError(injected)
		}
	}))
	t.Cleanup(func() { _ = db.Callback().Create().Remove("test:fail_members") })

	err := repos.CreateProject(context.Background(), newProject(users[0], "broken"), []project.Member{
		{UserID: users[1].ID, Role: "developer"},
		{UserID: users[0].ID, Role: "leader"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrTransaction)
	assert.ErrorIs(t, err, injected)

	assert.Zero(t, count(t, db, &project.Project{}))
	assert.Zero(t, count(t, db, &project.Member{}))
	assert.Zero(t, count(t, db, &project.Status{}))
}

func TestStatusLedgerPersistsNulls(t *testing.T) {
	db := testutils.SetupPostgres(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()
	users := seedUsers(t, db, "writer")

	p := newProject(users[0], "ledger")
	require.NoError(t, repos.CreateProject(ctx, p, []project.Member{{UserID: users[0].ID, Role: "leader"}}))

	st, err := repos.Status.Get(ctx, p.ID)
	require.NoError(t, err)
	st.SetState(project.DocumentPlan, project.DocumentRejected, time.Now())
	require.NoError(t, repos.Status.Save(ctx, st))

	st.SetState(project.DocumentPlan, project.DocumentPending, time.Now())
	require.NoError(t, repos.Status.Save(ctx, st))

	got, err := repos.Status.Get(ctx, p.ID)
	require.NoError(t, err)
	state, err := got.State(project.DocumentPlan)
	require.NoError(t, err)
	assert.Equal(t, project.DocumentPending, state, "accepted flag cleared back to NULL")
	assert.NotNil(t, got.PlanSubmittedAt)
}

func TestStatusLockSerializes(t *testing.T) {
	db := testutils.SetupPostgres(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()
	users := seedUsers(t, db, "writer")

	p := newProject(users[0], "locked")
	require.NoError(t, repos.CreateProject(ctx, p, []project.Member{{UserID: users[0].ID, Role: "leader"}}))

	submit := func() error {
		return repos.WithTransaction(ctx, func(tx *repository.Repos) error {
			st, err := tx.Status.GetForUpdate(ctx, p.ID)
			if err != nil {
				return err
			}
			if st.IsPlanSubmitted {
				return errors.New("already submitted")
			}
			st.SetState(project.DocumentPlan, project.DocumentPending, time.Now())
			return tx.Status.Save(ctx, st)
		})
	}

	const workers = 5
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- submit()
		}()
	}
	wg.Wait()
	close(errs)

	var ok int
	for err := range errs {
		if err == nil {
			ok++
		}
	}
	assert.Equal(t, 1, ok)
}

func TestReplaceMembershipAndCascade(t *testing.T) {
	db := testutils.SetupPostgres(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()
	users := seedUsers(t, db, "writer", "mate", "other")

	p := newProject(users[0], "members")
	require.NoError(t, repos.CreateProject(ctx, p, []project.Member{
		{UserID: users[1].ID, Role: "developer"},
		{UserID: users[0].ID, Role: "leader"},
	}))
	require.NoError(t, repos.Document.CreatePlan(ctx, &project.Plan{ProjectID: p.ID, Goal: "g", Content: "c"}))

	require.NoError(t, repos.ReplaceMembership(ctx, p.ID, []project.Member{
		{UserID: users[2].ID, Role: "designer"},
		{UserID: users[0].ID, Role: "leader"},
	}))
	members, err := repos.Member.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	names := []string{}
	for _, m := range members {
		names = append(names, m.User.Name)
	}
	assert.ElementsMatch(t, []string{"writer", "other"}, names)

	require.NoError(t, repos.Project.Delete(ctx, p.ID))
	assert.Zero(t, count(t, db, &project.Member{}))
	assert.Zero(t, count(t, db, &project.Plan{}))
	assert.Zero(t, count(t, db, &project.Status{}))
	assert.ErrorIs(t, repos.Project.Delete(ctx, p.ID), repository.ErrNotFound)
}

func TestFeedQueries(t *testing.T) {
	db := testutils.SetupPostgres(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()
	users := seedUsers(t, db, "writer", "Alice")

	create := func(name string, st func(*project.Status)) *project.Project {
		p := newProject(users[0], name)
		require.NoError(t, repos.CreateProject(ctx, p, []project.Member{
			{UserID: users[1].ID, Role: "developer"},
			{UserID: users[0].ID, Role: "leader"},
		}))
		s, err := repos.Status.Get(ctx, p.ID)
		require.NoError(t, err)
		st(s)
		require.NoError(t, repos.Status.Save(ctx, s))
		return p
	}
	now := time.Now()
	done := func(s *project.Status) {
		s.SetState(project.DocumentPlan, project.DocumentPending, now)
		s.SetState(project.DocumentPlan, project.DocumentAccepted, now)
		s.SetState(project.DocumentReport, project.DocumentPending, now)
		s.SetState(project.DocumentReport, project.DocumentAccepted, now)
	}

	quiet := create("Quiet robot", done)
	popular := create("Popular robot", done)
	pending := create("Pending plan", func(s *project.Status) {
		s.SetState(project.DocumentPlan, project.DocumentPending, now)
	})
	require.NoError(t, repos.Project.IncreaseViewCount(ctx, popular.ID))

	list, total, err := repos.Project.ListDone(ctx, project.FeedPopularity, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, popular.UUID, list[0].UUID)
	assert.Equal(t, quiet.UUID, list[1].UUID)

	list, total, err = repos.Project.ListDone(ctx, project.FeedRecently, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 1)

	_, total, err = repos.Project.SearchByName(ctx, "ROBOT", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = repos.Project.SearchByMember(ctx, "ali", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	list, total, err = repos.Project.ListPending(ctx, nil, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, pending.UUID, list[0].UUID)
	assert.NotNil(t, list[0].Status)

	_, total, err = repos.Project.ListPending(ctx, &users[1].ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestProfileListings(t *testing.T) {
	db := testutils.SetupPostgres(t)
	repos := repository.NewRepositories(db)
	ctx := context.Background()
	users := seedUsers(t, db, "me", "other")
	me, other := users[0], users[1]
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	create := func(name string, created time.Time, members ...user.User) *project.Project {
		p := newProject(members[0], name)
		p.CreatedAt = created
		var rows []project.Member
		for _, u := range members {
			rows = append(rows, project.Member{UserID: u.ID, Role: "dev"})
		}
		require.NoError(t, repos.CreateProject(ctx, p, rows))
		return p
	}
	ledger := func(p *project.Project, apply func(s *project.Status)) {
		s, err := repos.Status.Get(ctx, p.ID)
		require.NoError(t, err)
		apply(s)
		require.NoError(t, repos.Status.Save(ctx, s))
	}

	done := create("done", base, me, other)
	require.NoError(t, repos.Document.CreatePlan(ctx, &project.Plan{ProjectID: done.ID, Goal: "g", Content: "c"}))
	require.NoError(t, repos.Document.CreateReport(ctx, &project.Report{ProjectID: done.ID, Subject: "s", Content: "c"}))
	ledger(done, func(s *project.Status) {
		s.SetState(project.DocumentPlan, project.DocumentPending, base.Add(time.Hour))
		s.SetState(project.DocumentPlan, project.DocumentAccepted, base)
		s.SetState(project.DocumentReport, project.DocumentPending, base.Add(2*time.Hour))
		s.SetState(project.DocumentReport, project.DocumentAccepted, base)
	})

	writing := create("writing", base.Add(24*time.Hour), me)
	require.NoError(t, repos.Document.CreatePlan(ctx, &project.Plan{ProjectID: writing.ID, Goal: "g", Content: "c"}))
	create("empty", base.Add(48*time.Hour), me)

	t.Run("by member", func(t *testing.T) {
		projects, total, err := repos.Project.ListByMember(ctx, me.ID, false, 1, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, projects, 3)
		assert.Equal(t, "empty", projects[0].Name)
		assert.Len(t, projects[2].Members, 2)
		assert.NotEmpty(t, projects[2].Members[0].User.UUID)

		projects, total, err = repos.Project.ListByMember(ctx, me.ID, true, 1, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, projects, 1)
		assert.Equal(t, done.UUID, projects[0].UUID)
	})

	t.Run("by review state", func(t *testing.T) {
		rows, total, err := repos.Project.ListByReviewState(ctx, me.ID, project.DocumentAccepted, 1, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, rows, 2)
		assert.Equal(t, project.DocumentReport, rows[0].Type)
		assert.Equal(t, project.DocumentPlan, rows[1].Type)
		require.NotNil(t, rows[0].SubmittedAt)

		rows, total, err = repos.Project.ListByReviewState(ctx, me.ID, project.DocumentAccepted, 2, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, rows, 1)
		assert.Equal(t, project.DocumentPlan, rows[0].Type)

		rows, total, err = repos.Project.ListByReviewState(ctx, me.ID, project.DocumentDraft, 1, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total, "a project without documents lists nothing")
		require.Len(t, rows, 1)
		assert.Equal(t, writing.UUID, rows[0].UUID)
		assert.Nil(t, rows[0].SubmittedAt)

		_, total, err = repos.Project.ListByReviewState(ctx, other.ID, project.DocumentDraft, 1, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
	})
}
