package requisition

import (
	"strconv"

	apperr "github.com/mwhitley/stockroom-console/internal/errors"
)

// Candidate is the raw form input for one line-item, before admission.
// Quantity arrives as text from the form.
type Candidate struct {
	ProductID string
	Quantity  string
	Supplier  string
}

// validateCandidate checks the admission rules in order and stops at
// the first violation so the user sees one actionable message at a
// time. Returns the parsed quantity on success.
func validateCandidate(c *Candidate) (int, error) {
	if c.ProductID == "" {
		return 0, apperr.Validation("product required")
	}

	quantity, err := strconv.Atoi(c.Quantity)
	if err != nil || quantity <= 0 {
		return 0, apperr.Validation("quantity must be positive")
	}

	if c.Supplier == "" {
		return 0, apperr.Validation("supplier required")
	}

	return quantity, nil
}
