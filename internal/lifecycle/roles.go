// Package lifecycle holds the role and status vocabulary of the marketplace
// and the transition tables consulted before any order or service-request
// status change. Permission decisions are table lookups keyed on
// (role, current status, requested status), not branching in handlers.
package lifecycle

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleRepairer Role = "repairer"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleSeller, RoleRepairer:
		return true
	}
	return false
}
