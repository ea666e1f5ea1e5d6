package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwhitley/stockroom-console/internal/entities"
)

func TestUrgency(t *testing.T) {
	t.Run("known tiers are valid", func(t *testing.T) {
		for _, u := range []entities.Urgency{
			entities.UrgencyLow,
			entities.UrgencyNormal,
			entities.UrgencyHigh,
			entities.UrgencyUrgent,
		} {
			assert.True(t, u.IsValid(), string(u))
		}
	})

	t.Run("unknown tier is invalid", func(t *testing.T) {
		assert.False(t, entities.Urgency("asap").IsValid())
	})

	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "Urgent - ASAP", entities.UrgencyUrgent.Label())
		assert.Equal(t, "Normal", entities.UrgencyNormal.Label())
	})
}

func TestSupplierCatalog(t *testing.T) {
	assert.NotEmpty(t, entities.Suppliers)
	assert.Contains(t, entities.Suppliers, "Office Depot")
}

func TestProduct(t *testing.T) {
	min := 10

	t.Run("threshold detection", func(t *testing.T) {
		assert.True(t, (&entities.Product{ID: "p1", MinQuantity: &min}).HasThreshold())
		assert.False(t, (&entities.Product{ID: "p1"}).HasThreshold())
	})

	t.Run("snapshot lookup", func(t *testing.T) {
		snapshot := &entities.Snapshot{
			Products: []*entities.Product{
				{ID: "p1", Name: "Printer Paper"},
				{ID: "p2", Name: "Staplers"},
			},
		}

		assert.Equal(t, "Staplers", snapshot.FindProduct("p2").Name)
		assert.Nil(t, snapshot.FindProduct("p3"))
	})
}
