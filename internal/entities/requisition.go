package entities

// Urgency is the priority tier of a stock request line-item.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

// IsValid reports whether the urgency is one of the known tiers.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

// Label returns the display label for the urgency tier.
func (u Urgency) Label() string {
	switch u {
	case UrgencyLow:
		return "Low Priority"
	case UrgencyNormal:
		return "Normal"
	case UrgencyHigh:
		return "High Priority"
	case UrgencyUrgent:
		return "Urgent - ASAP"
	default:
		return string(u)
	}
}

// Suppliers is the fixed supplier catalog offered for stock requests.
var Suppliers = []string{
	"Office Depot",
	"Tech Solutions Inc.",
	"Global Supply Co.",
	"Quality Furniture Ltd.",
	"Electra Electronics",
	"Central Stationery",
	"BestValue Wholesalers",
	"Premier Equipment Suppliers",
}

// StockRequestItem is one requisition line-item in a draft session.
//
// ProductName, CurrentStock and MinStock are copied from the inventory
// snapshot at admission time so the draft list keeps showing the stock
// levels the user saw when they added the line. They are display-only
// and are never sent to the server.
type StockRequestItem struct {
	// DraftID is assigned by the draft store: sequential within a
	// session, starting at 1, never reused even after removal.
	DraftID int `json:"draft_id"`

	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Supplier    string  `json:"supplier"`
	Urgency     Urgency `json:"urgency"`
	Notes       string  `json:"notes,omitempty"`

	CurrentStock int  `json:"current_stock"`
	MinStock     *int `json:"min_stock,omitempty"`
}
