package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Timomoulin/Todo0/internal/adapter/audit"
	dbadapter "github.com/Timomoulin/Todo0/internal/adapter/db"
	httpadapter "github.com/Timomoulin/Todo0/internal/adapter/http"
	"github.com/Timomoulin/Todo0/internal/adapter/http/handlers"
	"github.com/Timomoulin/Todo0/internal/adapter/http/middleware"
	"github.com/Timomoulin/Todo0/internal/adapter/security"
	appservice "github.com/Timomoulin/Todo0/internal/app/service"
	"github.com/Timomoulin/Todo0/internal/config"
	"github.com/Timomoulin/Todo0/internal/core/policy"
	"github.com/Timomoulin/Todo0/pkg/translator"
)

type repositories struct {
	tx         *dbadapter.Transactor
	categories *dbadapter.CategoryRepository
	todos      *dbadapter.TodoRepository
	roles      *dbadapter.RoleRepository
	users      *dbadapter.UserRepository
}

func newRepositories(db *sqlx.DB) repositories {
	return repositories{
		tx:         dbadapter.NewTransactor(db),
		categories: dbadapter.NewCategoryRepository(db),
		todos:      dbadapter.NewTodoRepository(db),
		roles:      dbadapter.NewRoleRepository(db),
		users:      dbadapter.NewUserRepository(db),
	}
}

// openDatabase connects with the configured driver and applies the schema.
func openDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.DbDriver, err)
	}
	if err := dbadapter.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func closeDatabase(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		zap.L().Warn("failed to close database connection", zap.Error(err))
	}
}

func seed(ctx context.Context, repos repositories, hasher *security.BcryptHasher) error {
	seeder := appservice.NewSeedService(repos.categories, repos.todos, repos.roles, repos.users, hasher, repos.tx)
	if err := seeder.Run(ctx); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg := config.LoadConfig()
	db, err := openDatabase(cmd.Context(), cfg)
	if err != nil {
		zap.L().Error("migration failed", zap.Error(err))
		return err
	}
	defer closeDatabase(db)

	zap.L().Info("schema applied", zap.String("driver", db.DriverName()))
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg := config.LoadConfig()
	db, err := openDatabase(cmd.Context(), cfg)
	if err != nil {
		zap.L().Error("migration failed", zap.Error(err))
		return err
	}
	defer closeDatabase(db)

	if err := seed(cmd.Context(), newRepositories(db), security.NewBcryptHasher(cfg.BcryptCost)); err != nil {
		zap.L().Error("seed failed", zap.Error(err))
		return err
	}

	zap.L().Info("demonstration data loaded")
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := zap.L()
	ctx := cmd.Context()
	cfg := config.LoadConfig()
	if err := cfg.ValidateForServe(); err != nil {
		logger.Error("refusing to start", zap.Error(err))
		return err
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		logger.Error("failed to prepare database", zap.Error(err))
		return err
	}
	defer closeDatabase(db)

	repos := newRepositories(db)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	if err := seed(ctx, repos, hasher); err != nil {
		logger.Error("failed to load demonstration data", zap.Error(err))
		return err
	}

	auditLogger, err := audit.NewLogger(cfg.AuditLogPath)
	if err != nil {
		logger.Error("failed to open audit log", zap.Error(err))
		return err
	}
	defer func() { _ = auditLogger.Sync() }()
	auditor := audit.NewAuditor(auditLogger)

	sessions := security.NewSessionCodec(cfg.SessionSecret, cfg.SessionTTL)
	categoryService := appservice.NewCategoryService(repos.categories)
	todoService := appservice.NewTodoService(repos.todos, repos.categories)
	userService := appservice.NewUserService(repos.users, repos.roles, hasher, security.NewRegexPasswordPolicy())
	authService := appservice.NewAuthService(repos.users, hasher, auditor)

	h := httpadapter.Handlers{
		Main:       handlers.NewMainHandler(),
		Auth:       handlers.NewAuthHandler(authService, userService, sessions),
		Profile:    handlers.NewProfileHandler(userService),
		Categories: handlers.NewCategoryHandler(categoryService),
		Todos:      handlers.NewTodoHandler(todoService, categoryService),
		UserTodos:  handlers.NewUserTodoHandler(todoService, categoryService, auditor),
		Admin:      handlers.NewAdminHandler(userService),
		Errors:     handlers.NewErrorHandler(),
		Health:     handlers.NewHealthHandler(db),
	}
	if cfg.DevConsole {
		logger.Warn("development database console enabled at /db-console")
		h.Console = handlers.NewConsoleHandler(
			handlers.NamedCounter{Table: "categories", Counter: repos.categories},
			handlers.NamedCounter{Table: "todos", Counter: repos.todos},
			handlers.NamedCounter{Table: "roles", Counter: repos.roles},
			handlers.NamedCounter{Table: "users", Counter: repos.users},
		)
	}

	r, err := httpadapter.NewRouter(
		httpadapter.RouterConfig{Logger: logger, TrustedProxies: cfg.TrustedProxies},
		h,
		httpadapter.Security{
			Sessions: sessions,
			Flash:    middleware.NewFlashStore([]byte(cfg.SessionSecret)),
			Policy:   policy.Default(),
			Auditor:  auditor,
		},
	)
	if err != nil {
		logger.Error("failed to build router", zap.Error(err))
		return err
	}

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("driver", db.DriverName()))
	if err := r.Run(addr); err != nil {
		logger.Error("could not start server", zap.Error(err))
		return err
	}
	return nil
}
