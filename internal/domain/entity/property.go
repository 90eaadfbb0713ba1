package entity

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyApartment  PropertyType = "Apartment"
	PropertyVilla      PropertyType = "Villa"
	PropertyCommercial PropertyType = "Commercial"
	PropertyLand       PropertyType = "Land"
)

// PropertyTypes returns the fixed enum domain in declaration order. The type
// distribution report iterates this so zero-count types still appear.
func PropertyTypes() []PropertyType {
	return []PropertyType{PropertyApartment, PropertyVilla, PropertyCommercial, PropertyLand}
}

// IsValid checks if the PropertyType is a valid value.
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyApartment, PropertyVilla, PropertyCommercial, PropertyLand:
		return true
	default:
		return false
	}
}

// PropertyStatus tracks a listing's market state.
type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "Available"
	PropertySold      PropertyStatus = "Sold"
	PropertyRented    PropertyStatus = "Rented"
)

// PropertyStatuses returns the fixed enum domain in declaration order.
func PropertyStatuses() []PropertyStatus {
	return []PropertyStatus{PropertyAvailable, PropertySold, PropertyRented}
}

// IsValid checks if the PropertyStatus is a valid value.
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyAvailable, PropertySold, PropertyRented:
		return true
	default:
		return false
	}
}

// Property is a real-estate listing. AgentID is advisory; a dangling
// reference degrades to "N/A" in enriched views rather than failing.
type Property struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Location  string         `json:"location"`
	PriceAED  float64        `json:"priceAED"`
	Type      PropertyType   `json:"type"`
	Status    PropertyStatus `json:"status"`
	AgentID   string         `json:"agentId"`
	ImageURL  string         `json:"imageUrl"`
	Bedrooms  int            `json:"bedrooms"`
	Bathrooms int            `json:"bathrooms"`
	AreaSqFt  int            `json:"areaSqFt"`
}
