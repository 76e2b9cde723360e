// Package audit writes security events to a dedicated log sink, separate
// from the application log.
package audit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Timomoulin/Todo0/internal/adapter/metrics"
	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/ports"
	"github.com/Timomoulin/Todo0/pkg/requestctx"
)

const (
	LoggerName    = "AUDIT"
	UnknownIP     = "IP inconnue"
	AnonymousUser = "ANONYME"

	timestampLayout = "2006-01-02 15:04:05"
)

const (
	EventLoginSucceeded  = "login_ok"
	EventLoginFailed     = "login_failed"
	EventAccessDenied    = "access_denied"
	EventUnauthenticated = "unauthenticated"
	EventTodoCreated     = "todo_created"
)

// NewLogger builds the audit sink. Lines are JSON encoded and appended to
// path as well as stdout.
func NewLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}
	if path != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, path)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build audit logger: %w", err)
	}
	return logger.Named(LoggerName), nil
}

type Auditor struct {
	logger *zap.Logger
	now    func() time.Time
}

var (
	_ ports.AuthEventListener = (*Auditor)(nil)
	_ ports.AccessAuditor     = (*Auditor)(nil)
)

func NewAuditor(logger *zap.Logger) *Auditor {
	return &Auditor{logger: logger, now: time.Now}
}

func (a *Auditor) OnAuthenticationSuccess(ctx context.Context, principal string) {
	ip := clientIP(ctx)
	a.write(zapcore.InfoLevel, EventLoginSucceeded,
		fmt.Sprintf("[%s] LOGIN OK : %s depuis IP %s", a.timestamp(), principal, ip),
		principal, ip, "")
}

func (a *Auditor) OnAuthenticationFailure(ctx context.Context, principal string, cause error) {
	ip := clientIP(ctx)
	a.write(zapcore.WarnLevel, EventLoginFailed,
		fmt.Sprintf("[%s] LOGIN ÉCHOUÉ : %s depuis IP %s", a.timestamp(), principal, ip),
		principal, ip, "", zap.NamedError("cause", cause))
}

func (a *Auditor) AccessDenied(ctx context.Context, username, resource string) {
	if username == "" {
		username = AnonymousUser
	}
	ip := clientIP(ctx)
	a.write(zapcore.WarnLevel, EventAccessDenied,
		fmt.Sprintf("[%s] ACCÈS REFUSÉ : Utilisateur %s depuis IP %s a tenté d'accéder à %s", a.timestamp(), username, ip, resource),
		username, ip, resource)
}

func (a *Auditor) Unauthenticated(ctx context.Context, resource string) {
	ip := clientIP(ctx)
	a.write(zapcore.WarnLevel, EventUnauthenticated,
		fmt.Sprintf("[%s] ACCÈS NON AUTHENTIFIÉ : depuis IP %s vers %s", a.timestamp(), ip, resource),
		AnonymousUser, ip, resource)
}

func (a *Auditor) TodoCreated(ctx context.Context, username string, todo domain.Todo) {
	if username == "" {
		username = AnonymousUser
	}
	ip := clientIP(ctx)
	a.write(zapcore.InfoLevel, EventTodoCreated,
		fmt.Sprintf("[%s] Utilisateur %s depuis IP %s a créé le Todo '%s' (id=%d)", a.timestamp(), username, ip, todo.Title, todo.ID),
		username, ip, fmt.Sprintf("todo:%d", todo.ID))
}

func (a *Auditor) write(level zapcore.Level, event, message, user, ip, resource string, extra ...zap.Field) {
	metrics.AuditEvents.WithLabelValues(event).Inc()

	fields := append([]zap.Field{
		zap.String("event", event),
		zap.String("user", user),
		zap.String("ip", ip),
	}, extra...)
	if resource != "" {
		fields = append(fields, zap.String("resource", resource))
	}

	if ce := a.logger.Check(level, message); ce != nil {
		ce.Write(fields...)
	}
}

func (a *Auditor) timestamp() string {
	return a.now().Format(timestampLayout)
}

func clientIP(ctx context.Context) string {
	if ip, ok := requestctx.ClientIP(ctx); ok {
		return ip
	}
	return UnknownIP
}
