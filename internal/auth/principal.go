package auth

// Role discriminates the two principal kinds. Every operation checks it
// explicitly at entry instead of relying on an ambient lookup.
type Role string

const (
	RoleCustomer    Role = "customer"
	RoleBusinessman Role = "businessman"
)

// IsValid returns true if the role is one of the known principal kinds.
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleBusinessman
}

// Principal is the authenticated caller: an id tagged with its kind.
type Principal struct {
	ID    string
	Role  Role
	Email string
}
