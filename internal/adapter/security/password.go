package security

import (
	"time"

	"github.com/dlclark/regexp2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Timomoulin/Todo0/internal/core/ports"
)

// StrongPasswordPattern requires at least 8 characters with one upper-case
// letter, one digit and one special character. \z anchors the whole input;
// $ would also accept a trailing newline.
const StrongPasswordPattern = `^(?=.*[A-Z])(?=.*[0-9])(?=.*[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]).{8,}\z`

type BcryptHasher struct {
	cost int
}

var _ ports.PasswordHasher = (*BcryptHasher)(nil)

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type RegexPasswordPolicy struct {
	pattern *regexp2.Regexp
}

var _ ports.PasswordPolicy = (*RegexPasswordPolicy)(nil)

func NewRegexPasswordPolicy() *RegexPasswordPolicy {
	pattern := regexp2.MustCompile(StrongPasswordPattern, regexp2.None)
	pattern.MatchTimeout = 100 * time.Millisecond
	return &RegexPasswordPolicy{pattern: pattern}
}

func (p *RegexPasswordPolicy) IsStrong(password string) bool {
	matched, err := p.pattern.MatchString(password)
	if err != nil {
		zap.L().Warn("password policy evaluation failed", zap.Error(err))
		return false
	}
	return matched
}
