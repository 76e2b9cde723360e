package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Timomoulin/Todo0/internal/adapter/audit"
	dbadapter "github.com/Timomoulin/Todo0/internal/adapter/db"
	httpadapter "github.com/Timomoulin/Todo0/internal/adapter/http"
	"github.com/Timomoulin/Todo0/internal/adapter/http/handlers"
	"github.com/Timomoulin/Todo0/internal/adapter/http/middleware"
	"github.com/Timomoulin/Todo0/internal/adapter/security"
	appservice "github.com/Timomoulin/Todo0/internal/app/service"
	"github.com/Timomoulin/Todo0/internal/core/policy"
	"github.com/Timomoulin/Todo0/pkg/translator"
)

// IntegrationSuiteBase wires the whole application on a seeded in-memory
// sqlite database. Audit lines are captured by an observer core.
type IntegrationSuiteBase struct {
	suite.Suite

	DB     *sqlx.DB
	Router *gin.Engine
	Audit  *observer.ObservedLogs
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(projectRoot(s), "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
}

func (s *IntegrationSuiteBase) SetupTest() {
	ctx := context.Background()

	db, err := dbadapter.OpenSQLite(":memory:")
	s.Require().NoError(err)
	s.Require().NoError(dbadapter.Migrate(ctx, db))
	s.DB = db

	categoryRepository := dbadapter.NewCategoryRepository(db)
	todoRepository := dbadapter.NewTodoRepository(db)
	roleRepository := dbadapter.NewRoleRepository(db)
	userRepository := dbadapter.NewUserRepository(db)
	hasher := security.NewBcryptHasher(4)

	seeder := appservice.NewSeedService(categoryRepository, todoRepository, roleRepository, userRepository, hasher, dbadapter.NewTransactor(db))
	s.Require().NoError(seeder.Run(ctx))

	core, logs := observer.New(zapcore.InfoLevel)
	s.Audit = logs
	auditor := audit.NewAuditor(zap.New(core).Named(audit.LoggerName))

	sessions := security.NewSessionCodec("integration-tests", time.Hour)
	categoryService := appservice.NewCategoryService(categoryRepository)
	todoService := appservice.NewTodoService(todoRepository, categoryRepository)
	userService := appservice.NewUserService(userRepository, roleRepository, hasher, security.NewRegexPasswordPolicy())
	authService := appservice.NewAuthService(userRepository, hasher, auditor)

	router, err := httpadapter.NewRouter(
		httpadapter.RouterConfig{Logger: zap.NewNop()},
		httpadapter.Handlers{
			Main:       handlers.NewMainHandler(),
			Auth:       handlers.NewAuthHandler(authService, userService, sessions),
			Profile:    handlers.NewProfileHandler(userService),
			Categories: handlers.NewCategoryHandler(categoryService),
			Todos:      handlers.NewTodoHandler(todoService, categoryService),
			UserTodos:  handlers.NewUserTodoHandler(todoService, categoryService, auditor),
			Admin:      handlers.NewAdminHandler(userService),
			Errors:     handlers.NewErrorHandler(),
			Health:     handlers.NewHealthHandler(db),
			Console: handlers.NewConsoleHandler(
				handlers.NamedCounter{Table: "categories", Counter: categoryRepository},
				handlers.NamedCounter{Table: "todos", Counter: todoRepository},
				handlers.NamedCounter{Table: "roles", Counter: roleRepository},
				handlers.NamedCounter{Table: "users", Counter: userRepository},
			),
		},
		httpadapter.Security{
			Sessions: sessions,
			Flash:    middleware.NewFlashStore([]byte("integration-tests")),
			Policy:   policy.Default(),
			Auditor:  auditor,
		},
	)
	s.Require().NoError(err)
	s.Router = router
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
}

func (s *IntegrationSuiteBase) Get(path string, session *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return s.serve(req, session)
}

func (s *IntegrationSuiteBase) PostForm(path string, form url.Values, session *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.serve(req, session)
}

// Login posts the login form and returns the session cookie.
func (s *IntegrationSuiteBase) Login(email, password string) *http.Cookie {
	rec := s.PostForm("/todoapp/login", url.Values{
		"username": {email},
		"password": {password},
	}, nil)
	s.Require().Equal(http.StatusFound, rec.Code)
	s.Require().Equal(handlers.ProfilePath, rec.Header().Get("Location"))

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	s.FailNow("session cookie not set")
	return nil
}

// AuditEntries returns the audit lines of one event kind.
func (s *IntegrationSuiteBase) AuditEntries(event string) []observer.LoggedEntry {
	return s.Audit.FilterField(zap.String("event", event)).All()
}

func (s *IntegrationSuiteBase) serve(req *http.Request, session *http.Cookie) *httptest.ResponseRecorder {
	if session != nil {
		req.AddCookie(&http.Cookie{Name: session.Name, Value: session.Value})
	}
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func projectRoot(s *IntegrationSuiteBase) string {
	_, thisFile, _, ok := runtime.Caller(0)
	s.Require().True(ok)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", ".."))
}
