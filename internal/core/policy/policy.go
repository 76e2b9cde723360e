// Package policy maps request paths to the roles allowed to reach them.
package policy

import (
	"strings"

	"github.com/bmatcuk/doublestar"

	"github.com/Timomoulin/Todo0/internal/core/domain"
)

type Decision int

const (
	Allow Decision = iota
	Unauthenticated
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Rule grants access to paths matching any of Patterns. A rule with Public
// set needs no principal, a rule with no Roles needs any principal.
type Rule struct {
	Patterns []string
	Public   bool
	Roles    []string
}

type Policy struct {
	rules []Rule
}

func New(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// Default is the fixed policy of the application. The user namespace is
// restricted to UTILISATEUR and ADMIN.
func Default() *Policy {
	return New(
		Rule{
			Public: true,
			Patterns: []string{
				"/", "/todoapp", "/todoapp/",
				"/todoapp/login", "/todoapp/logout", "/todoapp/inscription",
				"/css/**", "/js/**", "/img/**", "/favicon.ico",
				"/403", "/404", "/500",
				"/db-console/**", "/health/**",
			},
		},
		Rule{Patterns: []string{"/todoapp/admin/**"}, Roles: []string{domain.RoleAdmin}},
		Rule{Patterns: []string{"/todoapp/utilisateur/**"}, Roles: []string{domain.RoleUtilisateur, domain.RoleAdmin}},
		Rule{Patterns: []string{"/**"}},
	)
}

// Evaluate applies the first rule matching path. Paths matched by no rule
// need an authenticated principal.
func (p *Policy) Evaluate(path string, principal *domain.Principal) Decision {
	rule, ok := p.match(path)
	if ok && rule.Public {
		return Allow
	}
	if principal == nil {
		return Unauthenticated
	}
	if !ok || len(rule.Roles) == 0 {
		return Allow
	}
	if principal.HasAnyRole(rule.Roles...) {
		return Allow
	}
	return Forbidden
}

func (p *Policy) match(path string) (Rule, bool) {
	for _, rule := range p.rules {
		for _, pattern := range rule.Patterns {
			if Match(pattern, path) {
				return rule, true
			}
		}
	}
	return Rule{}, false
}

// Match reports whether path matches an ant style pattern. A trailing "/**"
// also matches the bare prefix.
func Match(pattern, path string) bool {
	if pattern == path {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		if path == prefix || path == prefix+"/" {
			return true
		}
		if prefix == "" {
			return strings.HasPrefix(path, "/")
		}
	}
	matched, err := doublestar.Match(pattern, path)
	return err == nil && matched
}
