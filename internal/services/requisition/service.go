package requisition

//go:generate mockgen -destination=mock/mock_service.go -package=mockrequisition -source=service.go

import (
	"context"
	"log"
	"sync"

	"github.com/mwhitley/stockroom-console/internal/clients/backend"
	"github.com/mwhitley/stockroom-console/internal/entities"
	apperr "github.com/mwhitley/stockroom-console/internal/errors"
	"github.com/mwhitley/stockroom-console/internal/repositories/draftrequests"
	"github.com/mwhitley/stockroom-console/internal/services/inventory"
	"github.com/mwhitley/stockroom-console/internal/uuid"
)

// Repository is an alias for the draft request repository interface
type Repository = draftrequests.Repository

// Service drives the stock-replenishment draft workflow: one session
// per open view, holding the inventory snapshot taken at activation and
// the batch of line-items pending submission.
type Service interface {
	// StartSession opens a draft session: fetches the inventory
	// snapshot and returns the new session ID with it.
	StartSession(ctx context.Context) (*StartSessionOutput, error)

	// EndSession discards the session's draft without submitting it.
	EndSession(ctx context.Context, sessionID string) error

	// SuggestForProduct is the manual-selection prefill: recommended
	// quantity when a threshold is configured, urgency left at normal.
	SuggestForProduct(sessionID, productID string) (*Suggestion, error)

	// SuggestForLowStock is the low-stock-alert shortcut prefill:
	// quantity clamped to at least 1, urgency derived from stock level.
	SuggestForLowStock(sessionID, productID string) (*Suggestion, error)

	// AddLineItem validates the candidate and admits it into the draft.
	AddLineItem(ctx context.Context, input *AddLineItemInput) (*AddLineItemOutput, error)

	// RemoveLineItem removes one line-item; absent IDs are a no-op.
	RemoveLineItem(ctx context.Context, sessionID string, draftID int) error

	// ClearAll empties the draft and restarts the ID counter at 1.
	ClearAll(ctx context.Context, sessionID string) error

	// ListDraft returns the pending line-items in insertion order.
	ListDraft(ctx context.Context, sessionID string) ([]*entities.StockRequestItem, error)

	// Submit sends the whole draft as one batch. On success the draft
	// is cleared and the counter reset; on any failure the draft is
	// left untouched for retry.
	Submit(ctx context.Context, sessionID string) (*SubmitOutput, error)
}

// StartSessionOutput contains the new session and its inventory snapshot
type StartSessionOutput struct {
	SessionID string
	Snapshot  *entities.Snapshot
}

// AddLineItemInput is the form content for one line-item
type AddLineItemInput struct {
	SessionID string
	ProductID string
	Quantity  string // raw form text, validated here
	Supplier  string
	Urgency   entities.Urgency // empty means normal
	Notes     string
}

// AddLineItemOutput contains the admitted line-item with its draft ID
type AddLineItemOutput struct {
	Item *entities.StockRequestItem
}

// SubmitOutput contains the server acknowledgment
type SubmitOutput struct {
	Message string
}

// sessionState is the per-session mutable state. All draft mutations
// funnel through mu, so the workflow stays correct on a multi-threaded
// host even though a UI drives it one event at a time.
type sessionState struct {
	mu         sync.Mutex
	snapshot   *entities.Snapshot
	submitting bool
}

// service implements the Service interface
type service struct {
	backendClient    backend.Client
	inventoryService inventory.Service
	repository       Repository
	uuidGenerator    uuid.Generator

	mu       sync.RWMutex
	sessions map[string]*sessionState
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	BackendClient    backend.Client    // Required
	InventoryService inventory.Service // Required
	Repository       Repository        // Required
	UUIDGenerator    uuid.Generator    // Optional, defaults to google UUIDs
}

// NewService creates a new requisition service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg is required")
	}
	if cfg.BackendClient == nil {
		return nil, apperr.InvalidArgument("cfg.BackendClient is required")
	}
	if cfg.InventoryService == nil {
		return nil, apperr.InvalidArgument("cfg.InventoryService is required")
	}
	if cfg.Repository == nil {
		return nil, apperr.InvalidArgument("cfg.Repository is required")
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}

	return &service{
		backendClient:    cfg.BackendClient,
		inventoryService: cfg.InventoryService,
		repository:       cfg.Repository,
		uuidGenerator:    generator,
		sessions:         make(map[string]*sessionState),
	}, nil
}

func (s *service) StartSession(ctx context.Context) (*StartSessionOutput, error) {
	snapshot, err := s.inventoryService.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	sessionID := s.uuidGenerator.New()

	s.mu.Lock()
	s.sessions[sessionID] = &sessionState{snapshot: snapshot}
	s.mu.Unlock()

	return &StartSessionOutput{
		SessionID: sessionID,
		Snapshot:  snapshot,
	}, nil
}

func (s *service) EndSession(ctx context.Context, sessionID string) error {
	state, err := s.session(sessionID)
	if err != nil {
		return err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if err := s.repository.Reset(ctx, sessionID); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	return nil
}

func (s *service) SuggestForProduct(sessionID, productID string) (*Suggestion, error) {
	product, err := s.findProduct(sessionID, productID)
	if err != nil {
		return nil, err
	}

	return suggestForProduct(product), nil
}

func (s *service) SuggestForLowStock(sessionID, productID string) (*Suggestion, error) {
	product, err := s.findProduct(sessionID, productID)
	if err != nil {
		return nil, err
	}

	return suggestForLowStock(product), nil
}

func (s *service) AddLineItem(ctx context.Context, input *AddLineItemInput) (*AddLineItemOutput, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	state, err := s.session(input.SessionID)
	if err != nil {
		return nil, err
	}

	quantity, err := validateCandidate(&Candidate{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Supplier:  input.Supplier,
	})
	if err != nil {
		return nil, err
	}

	urgency := input.Urgency
	if urgency == "" {
		urgency = entities.UrgencyNormal
	}
	if !urgency.IsValid() {
		return nil, apperr.Validationf("unknown urgency '%s'", urgency)
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	// Admission requires the product in the snapshot the session was
	// opened with. Name and stock levels are copied here on purpose:
	// the draft list keeps showing what the user saw at admission time.
	product := state.snapshot.FindProduct(input.ProductID)
	if product == nil {
		return nil, apperr.NotFoundf("product '%s' not found in current inventory", input.ProductID).
			WithMeta("product_id", input.ProductID)
	}

	item, err := s.repository.Add(ctx, input.SessionID, &entities.StockRequestItem{
		ProductID:    product.ID,
		ProductName:  product.Name,
		Quantity:     quantity,
		Supplier:     input.Supplier,
		Urgency:      urgency,
		Notes:        input.Notes,
		CurrentStock: product.Quantity,
		MinStock:     product.MinQuantity,
	})
	if err != nil {
		return nil, err
	}

	return &AddLineItemOutput{Item: item}, nil
}

func (s *service) RemoveLineItem(ctx context.Context, sessionID string, draftID int) error {
	state, err := s.session(sessionID)
	if err != nil {
		return err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	return s.repository.Remove(ctx, sessionID, draftID)
}

func (s *service) ClearAll(ctx context.Context, sessionID string) error {
	state, err := s.session(sessionID)
	if err != nil {
		return err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	return s.repository.Reset(ctx, sessionID)
}

func (s *service) ListDraft(ctx context.Context, sessionID string) ([]*entities.StockRequestItem, error) {
	if _, err := s.session(sessionID); err != nil {
		return nil, err
	}

	return s.repository.List(ctx, sessionID)
}

func (s *service) Submit(ctx context.Context, sessionID string) (*SubmitOutput, error) {
	state, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	// Only the in-progress flag is held across the network call, so the
	// user can keep editing the draft while the batch is in flight; a
	// second submit fails fast instead of racing the first.
	state.mu.Lock()
	if state.submitting {
		state.mu.Unlock()
		return nil, apperr.InvalidArgument("submission already in progress")
	}
	state.submitting = true
	state.mu.Unlock()

	defer func() {
		state.mu.Lock()
		state.submitting = false
		state.mu.Unlock()
	}()

	items, err := s.repository.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.InvalidArgument("nothing to submit")
	}

	result, err := s.backendClient.SubmitStockRequests(ctx, toWireRecords(items))
	if err != nil {
		// Draft retained in full so the user can correct and retry.
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if err := s.repository.Reset(ctx, sessionID); err != nil {
		// The server accepted the batch; failing the call here would
		// invite a duplicate submission on retry.
		log.Printf("Failed to clear draft after submission for session %s: %v", sessionID, err)
	}

	message := result.Message
	if message == "" {
		message = "Stock requests submitted successfully!"
	}

	return &SubmitOutput{Message: message}, nil
}

// session looks up the live session state
func (s *service) session(sessionID string) (*sessionState, error) {
	if sessionID == "" {
		return nil, apperr.InvalidArgument("session ID is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperr.NotFoundf("draft session '%s' not found", sessionID).
			WithMeta("session_id", sessionID)
	}

	return state, nil
}

func (s *service) findProduct(sessionID, productID string) (*entities.Product, error) {
	state, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	product := state.snapshot.FindProduct(productID)
	if product == nil {
		return nil, apperr.NotFoundf("product '%s' not found in current inventory", productID).
			WithMeta("product_id", productID)
	}

	return product, nil
}

// toWireRecords projects line-items to their wire form, dropping the
// denormalized display fields and preserving insertion order.
func toWireRecords(items []*entities.StockRequestItem) []*backend.StockRequestRecord {
	records := make([]*backend.StockRequestRecord, 0, len(items))
	for _, item := range items {
		records = append(records, &backend.StockRequestRecord{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Supplier:  item.Supplier,
			Urgency:   string(item.Urgency),
			Notes:     item.Notes,
		})
	}

	return records
}
