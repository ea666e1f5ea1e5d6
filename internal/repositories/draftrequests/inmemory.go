package draftrequests

import (
	"context"
	"sync"

	apperr "github.com/mwhitley/stockroom-console/internal/errors"

	"github.com/mwhitley/stockroom-console/internal/entities"
)

// draftState holds one session's pending line-items and its ID counter.
type draftState struct {
	nextID int
	items  []*entities.StockRequestItem
}

// InMemoryRepository is an in-memory implementation of the draft request
// repository. Sessions are independent; each gets its own counter.
type InMemoryRepository struct {
	mu     sync.RWMutex
	drafts map[string]*draftState
}

// NewInMemoryRepository creates a new in-memory draft request repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		drafts: make(map[string]*draftState),
	}
}

// state returns the session's draft state, creating it on first use.
// Caller must hold the write lock.
func (r *InMemoryRepository) state(sessionID string) *draftState {
	if state, ok := r.drafts[sessionID]; ok {
		return state
	}

	state := &draftState{nextID: 1}
	r.drafts[sessionID] = state
	return state
}

// Add appends the line-item and assigns the next draft ID
func (r *InMemoryRepository) Add(ctx context.Context, sessionID string, item *entities.StockRequestItem) (*entities.StockRequestItem, error) {
	if sessionID == "" {
		return nil, apperr.InvalidArgument("session ID is required")
	}
	if item == nil {
		return nil, apperr.InvalidArgument("item cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.state(sessionID)

	stored := *item
	stored.DraftID = state.nextID
	state.nextID++
	state.items = append(state.items, &stored)

	return &stored, nil
}

// Remove deletes the line-item with the given draft ID if present
func (r *InMemoryRepository) Remove(ctx context.Context, sessionID string, draftID int) error {
	if sessionID == "" {
		return apperr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.drafts[sessionID]
	if !ok {
		return nil
	}

	for i, item := range state.items {
		if item.DraftID == draftID {
			state.items = append(state.items[:i], state.items[i+1:]...)
			return nil
		}
	}

	// Absent ID is a no-op
	return nil
}

// Clear empties the session's line-items, keeping the ID counter
func (r *InMemoryRepository) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if state, ok := r.drafts[sessionID]; ok {
		state.items = nil
	}

	return nil
}

// Reset empties the session's line-items and resets the counter to 1
func (r *InMemoryRepository) Reset(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.drafts, sessionID)

	return nil
}

// List returns the session's line-items in insertion order
func (r *InMemoryRepository) List(ctx context.Context, sessionID string) ([]*entities.StockRequestItem, error) {
	if sessionID == "" {
		return nil, apperr.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.drafts[sessionID]
	if !ok {
		return []*entities.StockRequestItem{}, nil
	}

	// Copy so callers cannot mutate stored items
	items := make([]*entities.StockRequestItem, 0, len(state.items))
	for _, item := range state.items {
		copied := *item
		items = append(items, &copied)
	}

	return items, nil
}
