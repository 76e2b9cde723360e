package ports

import (
	"context"

	"github.com/Timomoulin/Todo0/internal/core/domain"
)

// AuthEventListener observes authentication attempts. Implementations must
// not influence the outcome of the attempt.
type AuthEventListener interface {
	OnAuthenticationSuccess(ctx context.Context, principal string)
	OnAuthenticationFailure(ctx context.Context, principal string, cause error)
}

type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (domain.Principal, error)
}

// AccessAuditor records security relevant request events.
type AccessAuditor interface {
	AccessDenied(ctx context.Context, username, resource string)
	Unauthenticated(ctx context.Context, resource string)
	TodoCreated(ctx context.Context, username string, todo domain.Todo)
}
