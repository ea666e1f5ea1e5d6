package requisition

import "github.com/mwhitley/stockroom-console/internal/entities"

// Suggestion is a pre-fill for the request form.
type Suggestion struct {
	// Quantity is the recommended order quantity. Only meaningful when
	// HasQuantity is true; a product without a configured threshold
	// yields no suggestion and the quantity field is left blank.
	Quantity    int
	HasQuantity bool

	Urgency entities.Urgency
}

// SuggestQuantity recommends an order quantity that restocks to twice
// the configured minimum: max(0, 2*min - current). Returns false when
// the product has no threshold configured.
func SuggestQuantity(p *entities.Product) (int, bool) {
	if !p.HasThreshold() {
		return 0, false
	}

	suggested := *p.MinQuantity*2 - p.Quantity
	if suggested < 0 {
		suggested = 0
	}
	return suggested, true
}

// suggestUrgency derives the urgency tier for the low-stock shortcut:
// urgent when the shelf is effectively empty, high otherwise.
func suggestUrgency(p *entities.Product) entities.Urgency {
	if p.Quantity <= 1 {
		return entities.UrgencyUrgent
	}
	return entities.UrgencyHigh
}

// suggestForProduct is the manual-selection prefill: quantity suggestion
// only, urgency left at the default for the user to raise.
func suggestForProduct(p *entities.Product) *Suggestion {
	quantity, ok := SuggestQuantity(p)
	return &Suggestion{
		Quantity:    quantity,
		HasQuantity: ok,
		Urgency:     entities.UrgencyNormal,
	}
}

// suggestForLowStock is the low-stock-alert shortcut prefill: quantity
// clamped to at least one unit, urgency derived from how empty the
// shelf is. Intentionally diverges from the manual path.
func suggestForLowStock(p *entities.Product) *Suggestion {
	quantity, ok := SuggestQuantity(p)
	if ok && quantity < 1 {
		quantity = 1
	}

	return &Suggestion{
		Quantity:    quantity,
		HasQuantity: ok,
		Urgency:     suggestUrgency(p),
	}
}
