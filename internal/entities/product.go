package entities

// Product is an inventory catalog entry as reported by the backend.
// A snapshot is immutable once fetched; quantities are not re-read
// during a draft session.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`

	// MinQuantity is the configured reorder threshold. Nil means no
	// threshold is configured for this product.
	MinQuantity *int `json:"minQuantity,omitempty"`
}

// HasThreshold reports whether a reorder threshold is configured.
func (p *Product) HasThreshold() bool {
	return p != nil && p.MinQuantity != nil
}

// Snapshot is the inventory state fetched at view activation: the full
// catalog plus the server-filtered low-stock subset.
type Snapshot struct {
	Products []*Product
	LowStock []*Product
}

// FindProduct returns the catalog entry with the given ID, or nil.
func (s *Snapshot) FindProduct(id string) *Product {
	if s == nil {
		return nil
	}
	for _, p := range s.Products {
		if p.ID == id {
			return p
		}
	}
	return nil
}
