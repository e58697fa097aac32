package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleDriver   Role = "driver"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleDriver, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}
