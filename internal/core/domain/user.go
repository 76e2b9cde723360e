package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin       = "ADMIN"
	RoleUtilisateur = "UTILISATEUR"
)

type Role struct {
	ID   uint64
	Name string
}

type User struct {
	ID           uint64
	LastName     string
	FirstName    string
	Email        string
	PasswordHash string
	RoleID       *uint64
	CreatedAt    time.Time
	ModifiedAt   time.Time
	Role         *Role
}

// RegisterUserInput is the submitted registration form. Password and
// PasswordConfirmation are never persisted.
type RegisterUserInput struct {
	LastName             string
	FirstName            string
	Email                string
	Password             string
	PasswordConfirmation string
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID uint64
	Name   string
	Roles  []string
}

func (p *Principal) HasAnyRole(roles ...string) bool {
	if p == nil {
		return false
	}
	for _, held := range p.Roles {
		for _, wanted := range roles {
			if strings.EqualFold(held, wanted) {
				return true
			}
		}
	}
	return false
}
