package access

import (
	"testing"

	"dreamcrm/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAccess_RoleMatrix(t *testing.T) {
	tests := []struct {
		name       string
		capability Capability
		role       entity.Role
		want       bool
	}{
		{name: "admin dashboard", capability: CapabilityDashboard, role: entity.RoleAdmin, want: true},
		{name: "viewer dashboard", capability: CapabilityDashboard, role: entity.RoleViewer, want: true},
		{name: "viewer properties", capability: CapabilityProperties, role: entity.RoleViewer, want: true},
		{name: "viewer profile", capability: CapabilityProfile, role: entity.RoleViewer, want: true},
		{name: "viewer deals", capability: CapabilityDeals, role: entity.RoleViewer, want: false},
		{name: "viewer commissions", capability: CapabilityCommissions, role: entity.RoleViewer, want: false},
		{name: "viewer leads", capability: CapabilityLeads, role: entity.RoleViewer, want: false},
		{name: "viewer agents", capability: CapabilityAgents, role: entity.RoleViewer, want: false},
		{name: "viewer documents", capability: CapabilityDocuments, role: entity.RoleViewer, want: false},
		{name: "viewer calls", capability: CapabilityCalls, role: entity.RoleViewer, want: false},
		{name: "viewer emails", capability: CapabilityEmails, role: entity.RoleViewer, want: false},
		{name: "viewer reports", capability: CapabilityReports, role: entity.RoleViewer, want: false},
		{name: "viewer users", capability: CapabilityUsers, role: entity.RoleViewer, want: false},
		{name: "agent deals", capability: CapabilityDeals, role: entity.RoleAgent, want: true},
		{name: "agent reports", capability: CapabilityReports, role: entity.RoleAgent, want: true},
		{name: "agent users", capability: CapabilityUsers, role: entity.RoleAgent, want: false},
		{name: "admin users", capability: CapabilityUsers, role: entity.RoleAdmin, want: true},
		{name: "unknown capability", capability: Capability("billing"), role: entity.RoleAdmin, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.capability, tt.role))
		})
	}
}

// The sidebar renders VisibleItems and the route guard checks CanAccess.
// Both must agree on every capability for every role, or a user could see
// a link they cannot open.
func TestVisibleItems_AgreesWithCanAccess(t *testing.T) {
	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleAgent, entity.RoleViewer} {
		visible := make(map[Capability]bool)
		for _, item := range VisibleItems(role) {
			visible[item.Capability] = true
		}

		for _, item := range NavItems() {
			assert.Equal(t, CanAccess(item.Capability, role), visible[item.Capability],
				"role %s, capability %s", role, item.Capability)
		}
	}
}

func TestVisibleItems_Counts(t *testing.T) {
	assert.Len(t, VisibleItems(entity.RoleAdmin), 12)
	assert.Len(t, VisibleItems(entity.RoleAgent), 11)
	assert.Len(t, VisibleItems(entity.RoleViewer), 3)
}

func TestVisibleItems_OrderFollowsNavTable(t *testing.T) {
	items := VisibleItems(entity.RoleViewer)
	require.Len(t, items, 3)
	assert.Equal(t, "/", items[0].Path)
	assert.Equal(t, "/properties", items[1].Path)
	assert.Equal(t, "/profile", items[2].Path)
}

func TestDeniesInPlace_OnlyUserManagement(t *testing.T) {
	for _, item := range NavItems() {
		if item.Capability == CapabilityUsers {
			assert.True(t, item.Capability.DeniesInPlace())
			continue
		}

		assert.False(t, item.Capability.DeniesInPlace(), "capability %s", item.Capability)
	}
}

func TestLookup(t *testing.T) {
	item, ok := Lookup(CapabilityUsers)
	require.True(t, ok)
	assert.Equal(t, "/users", item.Path)
	assert.Equal(t, "User Management", item.Name)

	_, ok = Lookup(Capability("billing"))
	assert.False(t, ok)
}
