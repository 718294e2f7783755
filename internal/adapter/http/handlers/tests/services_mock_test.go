package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jongwon/todo-app/internal/adapter/http/middleware"
	"github.com/jongwon/todo-app/internal/core/domain"
	"github.com/jongwon/todo-app/pkg/translator"
)

const (
	sessionCookie = "taskboard_session"
	aliceToken    = "alice-token"
	projectID     = "7d0c4a3e-2f55-4c1b-9a5e-1f2d3c4b5a60"
	taskID        = "0f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"
)

var alice = domain.CallerIdentity{UserID: "11111111-1111-4111-8111-111111111111"}

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) CreateProject(ctx context.Context, caller domain.CallerIdentity, in domain.CreateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, caller, in)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) ListProjects(ctx context.Context, caller domain.CallerIdentity) ([]domain.Project, error) {
	args := m.Called(ctx, caller)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectServiceMock) GetProject(ctx context.Context, caller domain.CallerIdentity, id string) (domain.ProjectWithTasks, error) {
	args := m.Called(ctx, caller, id)
	return args.Get(0).(domain.ProjectWithTasks), args.Error(1)
}

func (m *projectServiceMock) UpdateProject(ctx context.Context, caller domain.CallerIdentity, id string, in domain.UpdateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, caller, id, in)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) DeleteProject(ctx context.Context, caller domain.CallerIdentity, id string) error {
	return m.Called(ctx, caller, id).Error(0)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, caller domain.CallerIdentity, in domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, caller, in)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, caller domain.CallerIdentity, id string) (domain.Task, error) {
	args := m.Called(ctx, caller, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, caller domain.CallerIdentity, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, caller, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, caller domain.CallerIdentity, id string, in domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, caller, id, in)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, caller domain.CallerIdentity, id string) error {
	return m.Called(ctx, caller, id).Error(0)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (string, domain.Session, domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(domain.Session), args.Get(2).(domain.User), args.Error(3)
}

func (m *authServiceMock) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *authServiceMock) Authenticate(ctx context.Context, token string) (domain.CallerIdentity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.CallerIdentity), args.Error(1)
}

func (m *authServiceMock) CurrentUser(ctx context.Context, caller domain.CallerIdentity) (domain.User, error) {
	args := m.Called(ctx, caller)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) RegisterUser(ctx context.Context, in domain.RegisterUserInput) (domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) PruneSessions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// authedRouter returns a router whose routes run behind SessionAuth with
// aliceToken resolving to alice.
func authedRouter() (*gin.Engine, *gin.RouterGroup) {
	auth := new(authServiceMock)
	auth.On("Authenticate", mock.Anything, aliceToken).Return(alice, nil).Maybe()
	auth.On("Authenticate", mock.Anything, mock.Anything).Return(domain.CallerIdentity{}, domain.ErrUnauthenticated).Maybe()

	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), middleware.SessionAuth(auth, sessionCookie))
	return router, group
}

func doRequest(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", "Bearer "+aliceToken)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}
