package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/project-review/internal/api/handlers"
	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/domain/project"
	"github.com/linskybing/project-review/internal/domain/user"
	"github.com/linskybing/project-review/internal/repository/memstore"
	"github.com/linskybing/project-review/internal/testutils"
	"github.com/linskybing/project-review/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type env struct {
	router   *gin.Engine
	handlers *handlers.Handlers
	writer   user.User
	mate     user.User
	outsider user.User
}

func setup(t *testing.T) *env {
	t.Helper()
	store := memstore.New()
	e := &env{
		writer:   store.AddUser(user.User{UUID: uuid.NewString(), Name: "Writer"}),
		mate:     store.AddUser(user.User{UUID: uuid.NewString(), Name: "Mate"}),
		outsider: store.AddUser(user.User{UUID: uuid.NewString(), Name: "Outsider"}),
	}
	svc := application.New(store.Repos(), zap.NewNop(), nil, nil)
	e.router, e.handlers = testutils.SetupRouter(svc)
	return e
}

func (e *env) client(t *testing.T, u user.User) *testutils.HTTPClient {
	return testutils.NewHTTPClient(e.router, testutils.Token(t, u.UUID, false))
}

func (e *env) admin(t *testing.T) *testutils.HTTPClient {
	return testutils.NewHTTPClient(e.router, testutils.Token(t, uuid.NewString(), true))
}

func (e *env) createProject(t *testing.T) string {
	t.Helper()
	resp, err := e.client(t, e.writer).POST("/projects", map[string]interface{}{
		"name":     "Handlers",
		"category": "TEAM",
		"field":    "web",
		"role":     "leader",
		"members":  []map[string]string{{"user_uuid": e.mate.UUID, "role": "developer"}},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	var created response.UUIDResponse
	require.NoError(t, resp.DecodeJSON(&created))
	return created.UUID
}

func planBody() map[string]interface{} {
	return map[string]interface{}{
		"goal":       "ship",
		"content":    "steps",
		"start_date": "2024-03-01",
		"end_date":   "2024-06-01",
	}
}

func errorKind(t *testing.T, resp *testutils.Response) string {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, resp.DecodeJSON(&body))
	return body.Kind
}

func TestRequiresToken(t *testing.T) {
	e := setup(t)
	resp, err := testutils.NewHTTPClient(e.router, "").GET("/projects/" + uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = testutils.NewHTTPClient(e.router, "not-a-jwt").GET("/auth/status")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = e.client(t, e.writer).GET("/auth/status")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProjectEndpoints(t *testing.T) {
	e := setup(t)
	id := e.createProject(t)

	t.Run("get", func(t *testing.T) {
		resp, err := e.client(t, e.outsider).GET("/projects/" + id)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var view project.ProjectView
		require.NoError(t, resp.DecodeJSON(&view))
		assert.Equal(t, project.ProjectPlanning, view.Status)
		assert.Equal(t, "USER_NON_EDITABLE", view.RequestorType)
		assert.Len(t, view.Members, 2)
	})

	t.Run("bad uuid", func(t *testing.T) {
		resp, err := e.client(t, e.writer).GET("/projects/not-a-uuid")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown project", func(t *testing.T) {
		resp, err := e.client(t, e.writer).GET("/projects/" + uuid.NewString())
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NotFound", errorKind(t, resp))
	})

	t.Run("writer listed as member", func(t *testing.T) {
		resp, err := e.client(t, e.writer).POST("/projects", map[string]interface{}{
			"name": "bad", "category": "TEAM", "field": "web", "role": "leader",
			"members": []map[string]string{{"user_uuid": e.writer.UUID, "role": "x"}},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "Unprocessable", errorKind(t, resp))
	})

	t.Run("missing fields", func(t *testing.T) {
		resp, err := e.client(t, e.writer).POST("/projects", map[string]interface{}{"category": "TEAM"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, string(resp.Body), "name is required")
	})

	t.Run("outsider cannot modify", func(t *testing.T) {
		resp, err := e.client(t, e.outsider).PATCH("/projects/"+id, map[string]interface{}{"name": "mine"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Forbidden", errorKind(t, resp))
	})

	t.Run("member modifies", func(t *testing.T) {
		resp, err := e.client(t, e.mate).PATCH("/projects/"+id, map[string]interface{}{"result": "shipped"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestPlanReviewOverHTTP(t *testing.T) {
	e := setup(t)
	id := e.createProject(t)
	writer := e.client(t, e.writer)

	resp, err := writer.POST("/projects/"+id+"/plan", planBody())
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	resp, err = writer.POST("/projects/"+id+"/plan", planBody())
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, err = writer.PATCH("/projects/"+id+"/plan/submit", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = writer.PATCH("/projects/"+id+"/plan/submit", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Conflict", errorKind(t, resp))

	resp, err = writer.PATCH("/projects/"+id+"/confirm?type=plan&value=true", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "confirm is admin only")

	admin := e.admin(t)
	resp, err = admin.PATCH("/projects/"+id+"/confirm?type=memo&value=true", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, err = admin.PATCH("/projects/"+id+"/confirm?type=plan&value=false", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	resp, err = e.client(t, e.outsider).GET("/projects/" + id + "/plan")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view project.PlanView
	require.NoError(t, resp.DecodeJSON(&view))
	assert.Equal(t, project.StatusRejected, view.Status)
	assert.Equal(t, "ship", view.Goal)

	resp, err = writer.PATCH("/projects/"+id+"/plan", planBody())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = admin.PATCH("/projects/"+id+"/confirm?type=plan&value=true", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "draft cannot be confirmed")

	resp, err = writer.POST("/projects/"+id+"/report", map[string]string{"subject": "s", "content": "c"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "plan not accepted yet")

	resp, err = writer.DELETE("/projects/" + id + "/plan")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = writer.GET("/projects/" + id + "/plan")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlanDates(t *testing.T) {
	e := setup(t)
	id := e.createProject(t)
	writer := e.client(t, e.writer)

	for name, dates := range map[string][2]string{
		"timestamp":    {"2024-03-01T00:00:00Z", "2024-06-01"},
		"slashes":      {"2024-03-01", "06/01/2024"},
		"out of range": {"2024-02-30", "2024-06-01"},
	} {
		t.Run(name, func(t *testing.T) {
			body := planBody()
			body["start_date"], body["end_date"] = dates[0], dates[1]
			resp, err := writer.POST("/projects/"+id+"/plan", body)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			assert.Contains(t, string(resp.Body), "must be a date (YYYY-MM-DD)")
		})
	}

	t.Run("reversed period", func(t *testing.T) {
		body := planBody()
		body["start_date"], body["end_date"] = "2024-06-01", "2024-03-01"
		resp, err := writer.POST("/projects/"+id+"/plan", body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "Unprocessable", errorKind(t, resp))
	})

	t.Run("missing dates", func(t *testing.T) {
		body := planBody()
		delete(body, "end_date")
		resp, err := writer.POST("/projects/"+id+"/plan", body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	resp, err := writer.POST("/projects/"+id+"/plan", planBody())
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	resp, err = writer.GET("/projects/" + id + "/plan")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), `"start_date":"2024-03-01"`)
	assert.Contains(t, string(resp.Body), `"end_date":"2024-06-01"`)
}

func TestDeleteProjectEndpoint(t *testing.T) {
	e := setup(t)
	id := e.createProject(t)

	resp, err := e.client(t, e.outsider).DELETE("/projects/" + id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = e.client(t, e.mate).DELETE("/projects/" + id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = e.client(t, e.writer).GET("/projects/" + id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFeedEndpoints(t *testing.T) {
	e := setup(t)
	id := e.createProject(t)
	anon := testutils.NewHTTPClient(e.router, "")

	resp, err := anon.GET("/feed?order=recently&page=1&limit=10")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page project.FeedPage
	require.NoError(t, resp.DecodeJSON(&page))
	assert.Equal(t, int64(0), page.Count)

	resp, err = anon.GET("/feed?page=1&limit=10")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, err = anon.GET("/feed/search?keyword=hand&page=1&limit=10")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result project.SearchResult
	require.NoError(t, resp.DecodeJSON(&result))
	assert.Contains(t, result, project.SearchByProjectName)
	assert.Contains(t, result, project.SearchByMemberName)

	resp, err = anon.GET("/feed/search?keyword=hand&search_by=writerId&page=1&limit=10")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	writer := e.client(t, e.writer)
	_, err = writer.POST("/projects/"+id+"/plan", planBody())
	require.NoError(t, err)
	_, err = writer.PATCH("/projects/"+id+"/plan/submit", nil)
	require.NoError(t, err)

	resp, err = e.admin(t).GET("/feed/pending?page=1&limit=10")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pending project.PendingPage
	require.NoError(t, resp.DecodeJSON(&pending))
	require.Len(t, pending.Projects, 1)
	assert.Equal(t, "PLAN", pending.Projects[0].ReportType)

	resp, err = anon.GET("/feed/pending?page=1&limit=10")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileEndpoints(t *testing.T) {
	e := setup(t)
	id := e.createProject(t)
	writer := e.client(t, e.writer)

	resp, err := writer.POST("/projects/"+id+"/plan", planBody())
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	resp, err = writer.PATCH("/projects/"+id+"/plan/submit", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	mate := e.client(t, e.mate)
	outsider := e.client(t, e.outsider)

	t.Run("own projects", func(t *testing.T) {
		resp, err := mate.GET("/profile/projects?page=1&limit=10")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))
		var page project.ProfilePage
		require.NoError(t, resp.DecodeJSON(&page))
		assert.Equal(t, int64(1), page.Count)
		require.Len(t, page.Projects, 1)
		assert.Equal(t, project.ProjectPendingPlan, page.Projects[0].Status)
	})

	t.Run("someone else's projects", func(t *testing.T) {
		resp, err := outsider.GET("/profile/projects?page=1&limit=10&user=" + e.mate.UUID)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var page project.ProfilePage
		require.NoError(t, resp.DecodeJSON(&page))
		assert.Equal(t, int64(0), page.Count, "unfinished projects stay private")
	})

	t.Run("bad queries", func(t *testing.T) {
		resp, err := mate.GET("/profile/projects?page=1&limit=10&user=nobody")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		resp, err = mate.GET("/profile/projects?page=1&limit=10&user=" + uuid.NewString())
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, err = mate.GET("/profile/documents")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		resp, err = mate.GET("/profile/documents/declined?page=1&limit=10")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("documents", func(t *testing.T) {
		resp, err := mate.GET("/profile/documents?page=1&limit=10")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))
		var summary project.ReviewSummary
		require.NoError(t, resp.DecodeJSON(&summary))
		assert.Len(t, summary, 4)
		assert.Equal(t, int64(1), summary[project.BucketPending].Count)
		assert.Equal(t, int64(0), summary[project.BucketWriting].Count)

		resp, err = mate.GET("/profile/documents/pending?page=1&limit=10")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var page project.ReviewPage
		require.NoError(t, resp.DecodeJSON(&page))
		require.Len(t, page.Documents, 1)
		assert.Equal(t, id, page.Documents[0].UUID)
		assert.Equal(t, "PLAN", page.Documents[0].Type)
		assert.NotNil(t, page.Documents[0].SubmittedAt)
	})

	resp, err = testutils.NewHTTPClient(e.router, "").GET("/profile/documents?page=1&limit=10")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
