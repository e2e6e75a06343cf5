package principal

import (
	"slices"

	"github.com/google/uuid"
)

// Role is the marketplace role a user acts under.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleBusiness Role = "BUSINESS"
	RoleInvestor Role = "INVESTOR"
	RoleBanker   Role = "BANKER"
	RoleAdvisor  Role = "ADVISOR"
)

var roles = []Role{RoleAdmin, RoleBusiness, RoleInvestor, RoleBanker, RoleAdvisor}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return slices.Contains(roles, r)
}

// Principal is the authenticated user a core operation acts on behalf of.
// It is always passed explicitly and never read from ambient state.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

func New(id uuid.UUID, role Role) Principal {
	return Principal{ID: id, Role: role}
}

// Is reports whether the principal holds any of the given roles.
func (p Principal) Is(roles ...Role) bool {
	return slices.Contains(roles, p.Role)
}
