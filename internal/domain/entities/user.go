package entities

// Role is the effective back-office role carried by an authenticated actor.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSeller     Role = "SELLER"
	RoleOperator   Role = "OPERATOR"
	RoleAccountant Role = "ACCOUNTANT"
)

// ParseRole maps a raw claim value onto a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleSeller, RoleOperator, RoleAccountant:
		return Role(s), true
	}
	return "", false
}

// Actor identifies who performs a mutation. The HTTP middleware resolves it
// from the bearer token and handlers pass it explicitly into every usecase
// call; there is no ambient session state below the adapter layer.
type Actor struct {
	ID   string
	Name string
	Role Role
}

// User is a back-office user as stored in the user directory.
type User struct {
	ID    string
	Name  string
	Email string
	Role  Role
}
