package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Role represents the authorization level of a principal.
type Role string

const (
	RoleStandard   Role = "standard"
	RolePrivileged Role = "privileged"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleStandard, RolePrivileged:
		return true
	}
	return false
}

func (r Role) IsPrivileged() bool {
	return r == RolePrivileged
}

// Principal is the authenticated actor behind a request. It is derived
// once by the token validator and is immutable for the request lifetime.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

// Action identifies an article mutation kind for authorization purposes.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

func (a Action) String() string { return string(a) }

// Authorize decides whether the principal may perform the action.
// Create is open to any authenticated principal (ownership is fixed to
// the actor); update and delete require the privileged role. The
// decision is pure: callers must evaluate it before touching storage so
// a denied principal cannot probe resource existence.
func Authorize(p Principal, action Action) error {
	switch action {
	case ActionCreate:
		return nil
	case ActionUpdate, ActionDelete:
		if !p.Role.IsPrivileged() {
			return fmt.Errorf("%s requires privileged role: %w", action, ErrForbidden)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q: %w", action, ErrForbidden)
	}
}
