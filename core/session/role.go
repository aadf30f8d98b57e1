// Package session holds the client role-session: the role flag persisted by the
// client, the guard protecting role-scoped views and the view selector.
package session

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/smartschool/connect/core"
)

// StorageKey is the key the role flag is persisted under on the client.
const StorageKey = "userRole"

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

var (
	Roles = []Role{RoleStudent, RoleTeacher, RoleAdmin}

	ErrInvalidRole = errors.New("invalid role")

	roleTag = "role"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole returns the Role named by s. Matching is exact: roles are lowercase.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func roleNames() []string {
	names := make([]string, 0, len(Roles))
	for _, r := range Roles {
		names = append(names, string(r))
	}
	return names
}

// InitValidators registers the "role" validation tag.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	core.RegisterOneOf(validate, translator, roleTag, roleNames())
}
