package requisition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/mwhitley/stockroom-console/internal/errors"
)

func TestValidateCandidate(t *testing.T) {
	t.Run("accepts a complete candidate", func(t *testing.T) {
		quantity, err := validateCandidate(&Candidate{
			ProductID: "p1",
			Quantity:  "5",
			Supplier:  "Office Depot",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, quantity)
	})

	t.Run("rejects missing product first", func(t *testing.T) {
		// Quantity is also invalid here; the product check wins.
		_, err := validateCandidate(&Candidate{
			ProductID: "",
			Quantity:  "0",
			Supplier:  "Office Depot",
		})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		assert.Equal(t, "product required", err.Error())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := validateCandidate(&Candidate{
			ProductID: "p1",
			Quantity:  "0",
			Supplier:  "Office Depot",
		})
		require.Error(t, err)
		assert.Equal(t, "quantity must be positive", err.Error())
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := validateCandidate(&Candidate{
			ProductID: "p1",
			Quantity:  "-3",
			Supplier:  "Office Depot",
		})
		require.Error(t, err)
		assert.Equal(t, "quantity must be positive", err.Error())
	})

	t.Run("rejects non-numeric quantity", func(t *testing.T) {
		_, err := validateCandidate(&Candidate{
			ProductID: "p1",
			Quantity:  "lots",
			Supplier:  "Office Depot",
		})
		require.Error(t, err)
		assert.Equal(t, "quantity must be positive", err.Error())
	})

	t.Run("rejects missing supplier last", func(t *testing.T) {
		_, err := validateCandidate(&Candidate{
			ProductID: "p1",
			Quantity:  "5",
			Supplier:  "",
		})
		require.Error(t, err)
		assert.Equal(t, "supplier required", err.Error())
	})
}
