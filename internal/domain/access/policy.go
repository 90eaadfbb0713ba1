package access

import "dreamcrm/internal/domain/entity"

// DefaultLandingPath is where authenticated but unauthorized navigation is
// redirected.
const DefaultLandingPath = "/"

// LoginPath is where unauthenticated navigation is redirected.
const LoginPath = "/login"

// NavItem is one entry in the navigation surface: a path, a display name,
// an icon token and the set of roles permitted to reach it.
type NavItem struct {
	Path       string       `json:"path"`
	Name       string       `json:"name"`
	Icon       string       `json:"icon"`
	Capability Capability   `json:"capability"`
	Roles      entity.Roles `json:"roles"`
}

var allRoles = entity.Roles{entity.RoleAdmin, entity.RoleAgent, entity.RoleViewer}

var agentAdminRoles = entity.Roles{entity.RoleAdmin, entity.RoleAgent}

// navItems is the ordered navigation table. Order matters: the sidebar
// renders it top to bottom.
var navItems = []NavItem{
	{Path: "/", Name: "Dashboard", Icon: "layout-dashboard", Capability: CapabilityDashboard, Roles: allRoles},
	{Path: "/properties", Name: "Properties", Icon: "building-2", Capability: CapabilityProperties, Roles: allRoles},
	{Path: "/deals", Name: "Deals", Icon: "handshake", Capability: CapabilityDeals, Roles: agentAdminRoles},
	{Path: "/commissions", Name: "Commissions", Icon: "dollar-sign", Capability: CapabilityCommissions, Roles: agentAdminRoles},
	{Path: "/leads", Name: "Leads", Icon: "user-plus", Capability: CapabilityLeads, Roles: agentAdminRoles},
	{Path: "/agents", Name: "Agents", Icon: "trophy", Capability: CapabilityAgents, Roles: agentAdminRoles},
	{Path: "/documents", Name: "Documents", Icon: "file-text", Capability: CapabilityDocuments, Roles: agentAdminRoles},
	{Path: "/calls", Name: "Calls", Icon: "phone", Capability: CapabilityCalls, Roles: agentAdminRoles},
	{Path: "/emails", Name: "Emails", Icon: "mail", Capability: CapabilityEmails, Roles: agentAdminRoles},
	{Path: "/reports", Name: "Reports", Icon: "file-pie-chart", Capability: CapabilityReports, Roles: agentAdminRoles},
	{Path: "/users", Name: "User Management", Icon: "users", Capability: CapabilityUsers, Roles: entity.Roles{entity.RoleAdmin}},
	{Path: "/profile", Name: "Profile", Icon: "settings", Capability: CapabilityProfile, Roles: allRoles},
}

// NavItems returns the full ordered navigation table.
func NavItems() []NavItem {
	items := make([]NavItem, len(navItems))
	copy(items, navItems)

	return items
}

// CanAccess reports whether the role is permitted to use the capability.
// Unknown capabilities are denied.
func CanAccess(capability Capability, role entity.Role) bool {
	for _, item := range navItems {
		if item.Capability == capability {
			return item.Roles.Contains(role)
		}
	}

	return false
}

// VisibleItems filters the navigation table to the items the role may
// reach. The sidebar's visible set and the set of capabilities CanAccess
// grants are the same by construction.
func VisibleItems(role entity.Role) []NavItem {
	visible := make([]NavItem, 0, len(navItems))
	for _, item := range navItems {
		if item.Roles.Contains(role) {
			visible = append(visible, item)
		}
	}

	return visible
}

// Lookup finds the nav item for a capability.
func Lookup(capability Capability) (NavItem, bool) {
	for _, item := range navItems {
		if item.Capability == capability {
			return item, true
		}
	}

	return NavItem{}, false
}
