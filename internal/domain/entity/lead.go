package entity

import "time"

// LeadStatus tracks a lead through the funnel.
type LeadStatus string

const (
	LeadNew       LeadStatus = "New"
	LeadContacted LeadStatus = "Contacted"
	LeadQualified LeadStatus = "Qualified"
	LeadLost      LeadStatus = "Lost"
)

// LeadStatuses returns the fixed enum domain in declaration order.
func LeadStatuses() []LeadStatus {
	return []LeadStatus{LeadNew, LeadContacted, LeadQualified, LeadLost}
}

// IsValid checks if the LeadStatus is a valid value.
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadLost:
		return true
	default:
		return false
	}
}

// Lead is a prospective client assigned to an agent.
type Lead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Source    string     `json:"source"`
	Status    LeadStatus `json:"status"`
	AgentID   string     `json:"agentId"`
	CreatedAt time.Time  `json:"createdAt"`
}
