package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Timomoulin/Todo0/internal/core/policy"
	"github.com/Timomoulin/Todo0/internal/core/ports"
)

const (
	LoginPath     = "/todoapp/login"
	ForbiddenPath = "/403"
)

// AuthorizationMiddleware applies the URL policy before any handler runs.
// Denied requests are audited and redirected.
func AuthorizationMiddleware(p *policy.Policy, auditor ports.AccessAuditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch p.Evaluate(c.Request.URL.Path, GetPrincipal(c)) {
		case policy.Unauthenticated:
			denyUnauthenticated(c, auditor)
		case policy.Forbidden:
			denyForbidden(c, auditor)
		default:
			c.Next()
		}
	}
}

// RequireRoles guards a single route. Without roles it only requires an
// authenticated principal.
func RequireRoles(auditor ports.AccessAuditor, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil {
			denyUnauthenticated(c, auditor)
			return
		}
		if len(roles) > 0 && !principal.HasAnyRole(roles...) {
			denyForbidden(c, auditor)
			return
		}
		c.Next()
	}
}

func denyUnauthenticated(c *gin.Context, auditor ports.AccessAuditor) {
	auditor.Unauthenticated(c.Request.Context(), c.Request.URL.Path)
	c.Redirect(http.StatusFound, LoginPath)
	c.Abort()
}

func denyForbidden(c *gin.Context, auditor ports.AccessAuditor) {
	var username string
	if principal := GetPrincipal(c); principal != nil {
		username = principal.Name
	}
	auditor.AccessDenied(c.Request.Context(), username, c.Request.URL.Path)
	c.Redirect(http.StatusFound, ForbiddenPath)
	c.Abort()
}
