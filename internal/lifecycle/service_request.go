package lifecycle

type ServiceStatus string

const (
	ServicePending    ServiceStatus = "pending"
	ServiceAccepted   ServiceStatus = "accepted"
	ServiceInProgress ServiceStatus = "in-progress"
	ServiceCompleted  ServiceStatus = "completed"
	ServiceCancelled  ServiceStatus = "cancelled"
)

func ValidServiceStatus(s ServiceStatus) bool {
	switch s {
	case ServicePending, ServiceAccepted, ServiceInProgress, ServiceCompleted, ServiceCancelled:
		return true
	}
	return false
}

// TerminalServiceStatus reports whether no further transitions may leave s,
// except that a cancelled request can be reopened by its owner.
func TerminalServiceStatus(s ServiceStatus) bool {
	return s == ServiceCompleted
}

type serviceTransition struct {
	role Role
	from ServiceStatus
	to   ServiceStatus
}

// An owner edits and cancels while the request is pending and may reopen
// a cancelled one. A repairer accepts pending work and drives it to
// completion or cancellation. Nothing leaves completed: a completed
// request can never be cancelled and never completed twice.
var serviceTransitions = map[serviceTransition]bool{
	{RoleCustomer, ServicePending, ServiceCancelled}: true,
	{RoleCustomer, ServiceCancelled, ServicePending}: true,

	{RoleRepairer, ServicePending, ServiceAccepted}:     true,
	{RoleRepairer, ServiceAccepted, ServiceInProgress}:  true,
	{RoleRepairer, ServiceAccepted, ServiceCompleted}:   true,
	{RoleRepairer, ServiceAccepted, ServiceCancelled}:   true,
	{RoleRepairer, ServiceInProgress, ServiceCompleted}: true,
	{RoleRepairer, ServiceInProgress, ServiceCancelled}: true,
}

// ServiceStatusChangeAllowed reports whether role may move a service
// request from one status to another. Admin bypasses the table but may
// not leave completed either; the maintenance record behind a completed
// request is immutable history.
func ServiceStatusChangeAllowed(role Role, from, to ServiceStatus) bool {
	if from == to {
		return true
	}
	if TerminalServiceStatus(from) {
		return false
	}
	if role == RoleAdmin {
		return true
	}
	return serviceTransitions[serviceTransition{role, from, to}]
}
