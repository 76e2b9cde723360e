package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Timomoulin/Todo0/internal/adapter/http/middleware"
	"github.com/Timomoulin/Todo0/pkg/apierrors"
)

const (
	StatusOk   = "ok"
	StatusDown = "down"

	healthDBTimeout  = 2 * time.Second
	healthTimeLayout = "2006-01-02 15:04:05"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
	DriverName() string
}

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Database string `json:"database"`
	Driver   string `json:"driver"`
}

type HealthAdvanced struct {
	AppName           string             `json:"app_name"`
	AppVersion        string             `json:"app_version"`
	CurrentSystemTime string             `json:"current_system_time"`
	Uptime            string             `json:"uptime"`
	Language          string             `json:"language"`
	Status            HealthServices     `json:"status"`
	Error             *apierrors.JsonErr `json:"error,omitempty"`
}

type HealthHandler struct {
	db      Pinger
	started time.Time
}

// NewHealthHandler accepts a nil db; the database is then reported down.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now()}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	services := h.checkServices(c.Request.Context())

	statusCode := http.StatusOK
	if services.Database != StatusOk {
		statusCode = http.StatusInternalServerError
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           appName(),
		AppVersion:        appVersion(),
		CurrentSystemTime: time.Now().Format(healthTimeLayout),
		Message:           services.Database,
	})
}

// CheckHealthReport always answers 200; a failing database is described in
// the translated error field.
func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	lang := middleware.GetLang(c)
	report := HealthAdvanced{
		AppName:           appName(),
		AppVersion:        appVersion(),
		CurrentSystemTime: time.Now().Format(healthTimeLayout),
		Uptime:            time.Since(h.started).Round(time.Second).String(),
		Language:          lang,
		Status:            h.checkServices(c.Request.Context()),
	}
	if report.Status.Database != StatusOk {
		jsonErr := apierrors.CreateError(http.StatusServiceUnavailable, apierrors.MsgDatabaseDown, lang)
		report.Error = &jsonErr
	}

	c.JSON(http.StatusOK, report)
}

func (h *HealthHandler) checkServices(ctx context.Context) HealthServices {
	services := HealthServices{Database: StatusDown}
	if h.db == nil {
		return services
	}
	services.Driver = h.db.DriverName()

	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	if h.db.PingContext(timeoutCtx) == nil {
		services.Database = StatusOk
	}
	return services
}

func appName() string {
	if name := os.Getenv("APP_NAME"); name != "" {
		return name
	}
	return "todo0"
}

func appVersion() string {
	if version := os.Getenv("APP_VERSION"); version != "" {
		return version
	}
	return "dev"
}
