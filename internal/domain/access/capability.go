// Package access holds the static role-based access policy. The navigation
// table below is the single source of truth: the sidebar, the route guard
// and every capability check derive from it.
package access

// Capability is a navigable surface of the application.
type Capability string

const (
	CapabilityDashboard   Capability = "dashboard"
	CapabilityProperties  Capability = "properties"
	CapabilityDeals       Capability = "deals"
	CapabilityCommissions Capability = "commissions"
	CapabilityLeads       Capability = "leads"
	CapabilityAgents      Capability = "agents"
	CapabilityDocuments   Capability = "documents"
	CapabilityCalls       Capability = "calls"
	CapabilityEmails      Capability = "emails"
	CapabilityReports     Capability = "reports"
	CapabilityUsers       Capability = "users"
	CapabilityProfile     Capability = "profile"
)

// String returns the string representation of the Capability.
func (c Capability) String() string {
	return string(c)
}

// DeniesInPlace reports whether an unauthorized request for this capability
// is answered with an in-place access-denied message instead of a redirect
// to the default landing page. User Management is the one surface that does
// this; the inconsistency is intentional, inherited behavior.
func (c Capability) DeniesInPlace() bool {
	return c == CapabilityUsers
}
