package entity

import "time"

// DealStage tracks where a deal sits in the pipeline.
type DealStage string

const (
	DealNegotiation DealStage = "Negotiation"
	DealOffer       DealStage = "Offer"
	DealClosed      DealStage = "Closed"
	DealLost        DealStage = "Lost"
)

// DealStages returns the fixed enum domain in declaration order.
func DealStages() []DealStage {
	return []DealStage{DealNegotiation, DealOffer, DealClosed, DealLost}
}

// IsValid checks if the DealStage is a valid value.
func (s DealStage) IsValid() bool {
	switch s {
	case DealNegotiation, DealOffer, DealClosed, DealLost:
		return true
	default:
		return false
	}
}

// Deal links a property, an agent and a client through the sales pipeline.
type Deal struct {
	ID             string    `json:"id"`
	PropertyID     string    `json:"propertyId"`
	AgentID        string    `json:"agentId"`
	ClientID       string    `json:"clientId"`
	Stage          DealStage `json:"stage"`
	ValueAED       float64   `json:"valueAED"`
	CommissionRate float64   `json:"commissionRate"` // e.g., 0.02 for 2%
	CloseDate      time.Time `json:"closeDate"`
}

// Commission is the deal's commission amount: valueAED x commissionRate.
func (d Deal) Commission() float64 {
	return d.ValueAED * d.CommissionRate
}
