package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	dbadapter "github.com/jongwon/todo-app/internal/adapter/db"
	httpadapter "github.com/jongwon/todo-app/internal/adapter/http"
	"github.com/jongwon/todo-app/internal/adapter/http/handlers"
	"github.com/jongwon/todo-app/internal/adapter/http/middleware"
	appservice "github.com/jongwon/todo-app/internal/app/service"
	"github.com/jongwon/todo-app/internal/core/domain"
	"github.com/jongwon/todo-app/pkg/translator"
)

const (
	translationFolder = "../../../../pkg/translator/translation"
	sessionCookie     = "taskboard_session"
	testPassword      = "correct horse battery"
)

// APISuiteBase wires the real router, services and repositories against a
// migrated database. The clock only moves when a test calls Advance.
type APISuiteBase struct {
	suite.Suite

	DB     *sqlx.DB
	Router *gin.Engine
	Auth   *appservice.AuthService
	now    time.Time
}

func (s *APISuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageKo},
	})
}

func (s *APISuiteBase) SetupTest() {
	s.DB = openTestDB(s.T())
	s.now = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	s.Router = s.newRouter(domain.TaskSortAuto)
}

func (s *APISuiteBase) newRouter(policy domain.TaskSortPolicy) *gin.Engine {
	clock := appservice.WithClock(func() time.Time { return s.now })

	s.Auth = appservice.NewAuthService(
		dbadapter.NewUserRepository(s.DB),
		dbadapter.NewSessionRepository(s.DB),
		time.Hour,
		bcrypt.MinCost,
		clock,
	)
	projectRepository := dbadapter.NewProjectRepository(s.DB)
	taskRepository := dbadapter.NewTaskRepository(s.DB)

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(s.DB),
		Auth:     handlers.NewAuthHandler(s.Auth, handlers.CookieConfig{Name: sessionCookie}),
		Projects: handlers.NewProjectHandler(appservice.NewProjectService(projectRepository, taskRepository, clock)),
		Tasks:    handlers.NewTaskHandler(appservice.NewTaskService(taskRepository, projectRepository, policy, clock)),
	}, middleware.SessionAuth(s.Auth, sessionCookie))
	return router
}

func (s *APISuiteBase) Advance(d time.Duration) {
	s.now = s.now.Add(d)
}

// SignUp registers a user and returns a session cookie for it.
func (s *APISuiteBase) SignUp(email string) *http.Cookie {
	_, err := s.Auth.RegisterUser(context.Background(), domain.RegisterUserInput{Email: email, Password: testPassword})
	s.Require().NoError(err)
	return s.Login(email, testPassword)
}

func (s *APISuiteBase) Login(email, password string) *http.Cookie {
	body := `{"email":"` + email + `","password":"` + password + `"}`
	rec := s.Do(http.MethodPost, "/api/auth/login", body, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookie {
			return cookie
		}
	}
	s.FailNow("login did not set a session cookie")
	return nil
}

func (s *APISuiteBase) Do(method, target, body string, session *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != nil {
		req.AddCookie(session)
	}
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

// DoJSON performs the request, checks the status and decodes the body.
func (s *APISuiteBase) DoJSON(method, target, body string, session *http.Cookie, wantStatus int, out any) {
	rec := s.Do(method, target, body, session)
	s.Require().Equal(wantStatus, rec.Code, rec.Body.String())
	if out != nil {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
	}
}

func (s *APISuiteBase) ErrorOf(rec *httptest.ResponseRecorder) string {
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}
