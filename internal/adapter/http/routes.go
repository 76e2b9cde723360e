package http

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Timomoulin/Todo0/internal/adapter/http/handlers"
	"github.com/Timomoulin/Todo0/internal/adapter/http/middleware"
	"github.com/Timomoulin/Todo0/internal/adapter/http/views"
	"github.com/Timomoulin/Todo0/internal/adapter/metrics"
	"github.com/Timomoulin/Todo0/internal/adapter/security"
	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/policy"
	"github.com/Timomoulin/Todo0/internal/core/ports"
)

type Handlers struct {
	Main       *handlers.MainHandler
	Auth       *handlers.AuthHandler
	Profile    *handlers.ProfileHandler
	Categories *handlers.CategoryHandler
	Todos      *handlers.TodoHandler
	UserTodos  *handlers.UserTodoHandler
	Admin      *handlers.AdminHandler
	Errors     *handlers.ErrorHandler
	Health     *handlers.HealthHandler
	// Console is nil unless the development console is enabled.
	Console *handlers.ConsoleHandler
}

type Security struct {
	Sessions *security.SessionCodec
	Flash    sessions.Store
	Policy   *policy.Policy
	Auditor  ports.AccessAuditor
}

type RouterConfig struct {
	Logger         *zap.Logger
	TrustedProxies []string
}

// NewRouter builds the gin engine with templates, the middleware chain and
// every route.
func NewRouter(cfg RouterConfig, h Handlers, sec Security) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	tmpl, err := views.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	logger := cfg.Logger
	if logger == nil {
		logger = zap.L()
	}

	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.RequestContextMiddleware(),
		middleware.GinZapMiddleware(logger),
		middleware.MetricsMiddleware(),
		middleware.LanguageMiddleware(),
		gin.CustomRecovery(h.Errors.Recover),
		middleware.FlashSessions(sec.Flash),
		middleware.FlashMiddleware(),
		middleware.SessionMiddleware(sec.Sessions),
		middleware.AuthorizationMiddleware(sec.Policy, sec.Auditor),
	)

	RegisterRoutes(r, h, sec)
	return r, nil
}

func RegisterRoutes(r *gin.Engine, h Handlers, sec Security) {
	r.StaticFS("/css", http.FS(views.Static()))
	r.NoRoute(h.Errors.NotFound)

	r.GET("/", h.Main.Home)
	r.GET("/403", h.Errors.Forbidden)
	r.GET("/404", h.Errors.NotFound)
	r.GET("/500", h.Errors.InternalError)

	health := r.Group("/health")
	{
		health.GET("", h.Health.CheckHealth)
		health.GET("/report", h.Health.CheckHealthReport)
	}

	if h.Console != nil {
		r.GET("/db-console", h.Console.Tables)
	}

	app := r.Group("/todoapp")
	{
		app.GET("/", h.Main.Home)
		app.GET("/login", h.Auth.LoginForm)
		app.POST("/login", h.Auth.Login)
		app.POST("/logout", h.Auth.Logout)
		app.GET("/inscription", h.Auth.RegisterForm)
		app.POST("/inscription", h.Auth.Register)
		app.GET("/profil", middleware.RequireRoles(sec.Auditor), h.Profile.Profile)
	}

	admin := app.Group("/admin")
	{
		admin.GET("/profil", middleware.RequireRoles(sec.Auditor, domain.RoleAdmin), h.Profile.AdminProfile)

		admin.GET("/categories", h.Categories.Index)
		admin.GET("/categories/create", h.Categories.Create)
		admin.POST("/categories", h.Categories.Store)
		admin.GET("/categories/edit/:id", h.Categories.Edit)
		admin.POST("/categories/update", h.Categories.Update)
		admin.POST("/categories/delete", h.Categories.Delete)

		admin.GET("/todos", h.Todos.Index)
		admin.GET("/todos/create", h.Todos.Create)
		admin.GET("/todos/:id", h.Todos.Show)
		admin.POST("/todos", h.Todos.Store)
		admin.GET("/todos/edit/:id", h.Todos.Edit)
		admin.POST("/todos/update", h.Todos.Update)
		admin.POST("/todos/delete", h.Todos.Delete)

		admin.GET("/utilisateurs", h.Admin.Users)
		admin.GET("/roles", h.Admin.Roles)
		admin.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	user := app.Group("/utilisateur", middleware.RequireRoles(sec.Auditor, domain.RoleUtilisateur, domain.RoleAdmin))
	{
		user.GET("/todos", h.UserTodos.Index)
		user.GET("/todos/create", h.UserTodos.Create)
		user.POST("/todos", h.UserTodos.Store)
	}
}
