package draftrequests

//go:generate mockgen -destination=mock/mock.go -package=mockdraftrequests -source=interface.go

import (
	"context"

	"github.com/mwhitley/stockroom-console/internal/entities"
)

// Repository is the ordered store of requisition line-items pending
// submission for a draft session.
//
// Draft IDs are assigned by the store: sequential per session, starting
// at 1, strictly increasing in admission order, and never reused even
// after a removal. Insertion order of unaffected items is stable across
// every operation.
type Repository interface {
	// Add appends the line-item and assigns its draft ID. The same
	// product may appear in multiple line-items; validation happens
	// upstream. Returns the stored item with its assigned ID.
	Add(ctx context.Context, sessionID string, item *entities.StockRequestItem) (*entities.StockRequestItem, error)

	// Remove deletes the line-item with the given draft ID. Removing an
	// absent ID is a no-op, not an error.
	Remove(ctx context.Context, sessionID string, draftID int) error

	// Clear empties the session's line-items without touching the ID
	// counter.
	Clear(ctx context.Context, sessionID string) error

	// Reset empties the session's line-items and resets the ID counter
	// to 1. Used after a successful submission and for the "clear all"
	// user action.
	Reset(ctx context.Context, sessionID string) error

	// List returns the session's line-items in insertion order, oldest
	// first.
	List(ctx context.Context, sessionID string) ([]*entities.StockRequestItem, error)
}
