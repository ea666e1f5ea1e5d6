package requisition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mwhitley/stockroom-console/internal/clients/backend"
	mockbackend "github.com/mwhitley/stockroom-console/internal/clients/backend/mock"
	"github.com/mwhitley/stockroom-console/internal/entities"
	apperr "github.com/mwhitley/stockroom-console/internal/errors"
	"github.com/mwhitley/stockroom-console/internal/repositories/draftrequests"
	mockinventory "github.com/mwhitley/stockroom-console/internal/services/inventory/mock"
	"github.com/mwhitley/stockroom-console/internal/services/requisition"
	mockuuid "github.com/mwhitley/stockroom-console/internal/uuid/mocks"
)

type testDeps struct {
	client    *mockbackend.MockClient
	inventory *mockinventory.MockService
	uuid      *mockuuid.MockGenerator
	repo      requisition.Repository
	svc       requisition.Service
}

func intPtr(v int) *int { return &v }

func testSnapshot() *entities.Snapshot {
	paper := &entities.Product{ID: "p1", Name: "Printer Paper", Quantity: 3, MinQuantity: intPtr(10)}
	stapler := &entities.Product{ID: "p2", Name: "Staplers", Quantity: 40}
	toner := &entities.Product{ID: "p3", Name: "Toner", Quantity: 1, MinQuantity: intPtr(4)}

	return &entities.Snapshot{
		Products: []*entities.Product{paper, stapler, toner},
		LowStock: []*entities.Product{paper, toner},
	}
}

func setupService(t *testing.T) *testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := &testDeps{
		client:    mockbackend.NewMockClient(ctrl),
		inventory: mockinventory.NewMockService(ctrl),
		uuid:      mockuuid.NewMockGenerator(ctrl),
		repo:      draftrequests.NewInMemoryRepository(),
	}

	svc, err := requisition.NewService(&requisition.ServiceConfig{
		BackendClient:    deps.client,
		InventoryService: deps.inventory,
		Repository:       deps.repo,
		UUIDGenerator:    deps.uuid,
	})
	require.NoError(t, err)
	deps.svc = svc

	return deps
}

// startSession opens a session against the standard test snapshot.
func startSession(t *testing.T, deps *testDeps, sessionID string) string {
	t.Helper()

	deps.inventory.EXPECT().GetSnapshot(gomock.Any()).Return(testSnapshot(), nil)
	deps.uuid.EXPECT().New().Return(sessionID)

	output, err := deps.svc.StartSession(context.Background())
	require.NoError(t, err)
	return output.SessionID
}

func addItem(t *testing.T, deps *testDeps, sessionID, productID, quantity, supplier string) *entities.StockRequestItem {
	t.Helper()

	output, err := deps.svc.AddLineItem(context.Background(), &requisition.AddLineItemInput{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		Supplier:  supplier,
	})
	require.NoError(t, err)
	return output.Item
}

func TestService_StartSession(t *testing.T) {
	t.Run("returns session ID and snapshot", func(t *testing.T) {
		deps := setupService(t)

		deps.inventory.EXPECT().GetSnapshot(gomock.Any()).Return(testSnapshot(), nil)
		deps.uuid.EXPECT().New().Return("sess-1")

		output, err := deps.svc.StartSession(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "sess-1", output.SessionID)
		assert.Len(t, output.Snapshot.Products, 3)
		assert.Len(t, output.Snapshot.LowStock, 2)
	})

	t.Run("propagates snapshot fetch failure", func(t *testing.T) {
		deps := setupService(t)

		deps.inventory.EXPECT().GetSnapshot(gomock.Any()).
			Return(nil, apperr.Unavailable("network error, please check your connection"))

		_, err := deps.svc.StartSession(context.Background())
		require.Error(t, err)
		assert.True(t, apperr.IsUnavailable(err))
	})
}

func TestService_Suggestions(t *testing.T) {
	t.Run("manual selection prefills quantity only", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		suggestion, err := deps.svc.SuggestForProduct(sessionID, "p1")
		require.NoError(t, err)
		assert.True(t, suggestion.HasQuantity)
		assert.Equal(t, 17, suggestion.Quantity)
		assert.Equal(t, entities.UrgencyNormal, suggestion.Urgency)
	})

	t.Run("manual selection without threshold leaves quantity blank", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		suggestion, err := deps.svc.SuggestForProduct(sessionID, "p2")
		require.NoError(t, err)
		assert.False(t, suggestion.HasQuantity)
	})

	t.Run("low-stock shortcut raises urgency", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		suggestion, err := deps.svc.SuggestForLowStock(sessionID, "p3")
		require.NoError(t, err)
		assert.Equal(t, entities.UrgencyUrgent, suggestion.Urgency)
		assert.Equal(t, 7, suggestion.Quantity)

		suggestion, err = deps.svc.SuggestForLowStock(sessionID, "p1")
		require.NoError(t, err)
		assert.Equal(t, entities.UrgencyHigh, suggestion.Urgency)
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		_, err := deps.svc.SuggestForProduct(sessionID, "missing")
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestService_AddLineItem(t *testing.T) {
	t.Run("admits a valid candidate with denormalized snapshot fields", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		output, err := deps.svc.AddLineItem(context.Background(), &requisition.AddLineItemInput{
			SessionID: sessionID,
			ProductID: "p1",
			Quantity:  "17",
			Supplier:  "Office Depot",
			Urgency:   entities.UrgencyHigh,
			Notes:     "restock",
		})
		require.NoError(t, err)

		item := output.Item
		assert.Equal(t, 1, item.DraftID)
		assert.Equal(t, "p1", item.ProductID)
		assert.Equal(t, "Printer Paper", item.ProductName)
		assert.Equal(t, 17, item.Quantity)
		assert.Equal(t, "Office Depot", item.Supplier)
		assert.Equal(t, entities.UrgencyHigh, item.Urgency)
		assert.Equal(t, "restock", item.Notes)
		assert.Equal(t, 3, item.CurrentStock)
		require.NotNil(t, item.MinStock)
		assert.Equal(t, 10, *item.MinStock)
	})

	t.Run("defaults urgency to normal", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		item := addItem(t, deps, sessionID, "p2", "5", "Central Stationery")
		assert.Equal(t, entities.UrgencyNormal, item.Urgency)
		assert.Nil(t, item.MinStock)
	})

	t.Run("validation failures stop at the first violation", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		_, err := deps.svc.AddLineItem(context.Background(), &requisition.AddLineItemInput{
			SessionID: sessionID,
			ProductID: "",
			Quantity:  "5",
			Supplier:  "Office Depot",
		})
		require.Error(t, err)
		assert.Equal(t, "product required", err.Error())

		_, err = deps.svc.AddLineItem(context.Background(), &requisition.AddLineItemInput{
			SessionID: sessionID,
			ProductID: "p1",
			Quantity:  "0",
			Supplier:  "Office Depot",
		})
		require.Error(t, err)
		assert.Equal(t, "quantity must be positive", err.Error())

		_, err = deps.svc.AddLineItem(context.Background(), &requisition.AddLineItemInput{
			SessionID: sessionID,
			ProductID: "p1",
			Quantity:  "5",
			Supplier:  "",
		})
		require.Error(t, err)
		assert.Equal(t, "supplier required", err.Error())

		// Nothing was admitted
		items, err := deps.svc.ListDraft(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("rejects a product outside the snapshot", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		_, err := deps.svc.AddLineItem(context.Background(), &requisition.AddLineItemInput{
			SessionID: sessionID,
			ProductID: "ghost",
			Quantity:  "5",
			Supplier:  "Office Depot",
		})
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("allows split orders for the same product", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		addItem(t, deps, sessionID, "p1", "10", "Office Depot")
		addItem(t, deps, sessionID, "p1", "7", "BestValue Wholesalers")

		items, err := deps.svc.ListDraft(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("unknown session is rejected", func(t *testing.T) {
		deps := setupService(t)

		_, err := deps.svc.AddLineItem(context.Background(), &requisition.AddLineItemInput{
			SessionID: "nope",
			ProductID: "p1",
			Quantity:  "5",
			Supplier:  "Office Depot",
		})
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestService_RemoveAndClear(t *testing.T) {
	t.Run("draft IDs are never reused after removal", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		addItem(t, deps, sessionID, "p1", "10", "Office Depot")
		second := addItem(t, deps, sessionID, "p2", "5", "Office Depot")
		addItem(t, deps, sessionID, "p3", "7", "Office Depot")

		require.NoError(t, deps.svc.RemoveLineItem(context.Background(), sessionID, second.DraftID))

		items, err := deps.svc.ListDraft(context.Background(), sessionID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 1, items[0].DraftID)
		assert.Equal(t, 3, items[1].DraftID)

		fourth := addItem(t, deps, sessionID, "p1", "2", "Office Depot")
		assert.Equal(t, 4, fourth.DraftID)
	})

	t.Run("clear all restarts the counter at 1", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		addItem(t, deps, sessionID, "p1", "10", "Office Depot")
		addItem(t, deps, sessionID, "p2", "5", "Office Depot")

		require.NoError(t, deps.svc.ClearAll(context.Background(), sessionID))

		items, err := deps.svc.ListDraft(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Empty(t, items)

		next := addItem(t, deps, sessionID, "p3", "7", "Office Depot")
		assert.Equal(t, 1, next.DraftID)
	})
}

func TestService_Submit(t *testing.T) {
	t.Run("empty draft never reaches the network", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		// No SubmitStockRequests expectation: a call would fail the test.
		_, err := deps.svc.Submit(context.Background(), sessionID)
		require.Error(t, err)
		assert.True(t, apperr.IsInvalidArgument(err))
		assert.Equal(t, "nothing to submit", err.Error())
	})

	t.Run("projects the draft to wire records in insertion order", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		_, err := deps.svc.AddLineItem(context.Background(), &requisition.AddLineItemInput{
			SessionID: sessionID,
			ProductID: "p1",
			Quantity:  "17",
			Supplier:  "Office Depot",
			Urgency:   entities.UrgencyHigh,
			Notes:     "restock",
		})
		require.NoError(t, err)
		addItem(t, deps, sessionID, "p2", "5", "Central Stationery")

		var gotRecords []*backend.StockRequestRecord
		deps.client.EXPECT().
			SubmitStockRequests(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []*backend.StockRequestRecord) (*backend.SubmitResult, error) {
				gotRecords = records
				return &backend.SubmitResult{Message: "Stock requests submitted successfully!"}, nil
			})

		output, err := deps.svc.Submit(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Equal(t, "Stock requests submitted successfully!", output.Message)

		require.Len(t, gotRecords, 2)
		assert.Equal(t, &backend.StockRequestRecord{
			ProductID: "p1",
			Quantity:  17,
			Supplier:  "Office Depot",
			Urgency:   "high",
			Notes:     "restock",
		}, gotRecords[0])
		assert.Equal(t, "p2", gotRecords[1].ProductID)
	})

	t.Run("success clears the draft and restarts the counter", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		addItem(t, deps, sessionID, "p1", "17", "Office Depot")

		deps.client.EXPECT().
			SubmitStockRequests(gomock.Any(), gomock.Any()).
			Return(&backend.SubmitResult{}, nil)

		output, err := deps.svc.Submit(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Equal(t, "Stock requests submitted successfully!", output.Message)

		items, err := deps.svc.ListDraft(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Empty(t, items)

		next := addItem(t, deps, sessionID, "p2", "5", "Office Depot")
		assert.Equal(t, 1, next.DraftID)
	})

	t.Run("server rejection leaves the draft untouched", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		addItem(t, deps, sessionID, "p1", "17", "Office Depot")
		addItem(t, deps, sessionID, "p2", "5", "Office Depot")

		before, err := deps.svc.ListDraft(context.Background(), sessionID)
		require.NoError(t, err)

		deps.client.EXPECT().
			SubmitStockRequests(gomock.Any(), gomock.Any()).
			Return(nil, apperr.Internal("supplier is not approved"))

		_, err = deps.svc.Submit(context.Background(), sessionID)
		require.Error(t, err)
		assert.Equal(t, "supplier is not approved", err.Error())

		after, err := deps.svc.ListDraft(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Equal(t, before, after, "draft must be retained for retry")
	})

	t.Run("transport failure leaves the draft untouched", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		addItem(t, deps, sessionID, "p1", "17", "Office Depot")

		deps.client.EXPECT().
			SubmitStockRequests(gomock.Any(), gomock.Any()).
			Return(nil, apperr.Unavailable("network error, please check your connection"))

		_, err := deps.svc.Submit(context.Background(), sessionID)
		require.Error(t, err)
		assert.True(t, apperr.IsUnavailable(err))

		after, err := deps.svc.ListDraft(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Len(t, after, 1)
	})

	t.Run("rejects a re-entrant submit while one is in flight", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		addItem(t, deps, sessionID, "p1", "17", "Office Depot")

		entered := make(chan struct{})
		release := make(chan struct{})
		deps.client.EXPECT().
			SubmitStockRequests(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ []*backend.StockRequestRecord) (*backend.SubmitResult, error) {
				close(entered)
				<-release
				return &backend.SubmitResult{}, nil
			})

		done := make(chan error, 1)
		go func() {
			_, err := deps.svc.Submit(context.Background(), sessionID)
			done <- err
		}()

		<-entered
		_, err := deps.svc.Submit(context.Background(), sessionID)
		require.Error(t, err)
		assert.Equal(t, "submission already in progress", err.Error())

		close(release)
		require.NoError(t, <-done)
	})

	t.Run("authentication failure leaves the draft untouched", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		addItem(t, deps, sessionID, "p1", "17", "Office Depot")

		deps.client.EXPECT().
			SubmitStockRequests(gomock.Any(), gomock.Any()).
			Return(nil, apperr.Unauthenticated("authentication required"))

		_, err := deps.svc.Submit(context.Background(), sessionID)
		require.Error(t, err)
		assert.True(t, apperr.IsUnauthenticated(err))

		after, err := deps.svc.ListDraft(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Len(t, after, 1)
	})
}

func TestService_EndSession(t *testing.T) {
	t.Run("discards the draft and forgets the session", func(t *testing.T) {
		deps := setupService(t)
		sessionID := startSession(t, deps, "sess-1")

		addItem(t, deps, sessionID, "p1", "17", "Office Depot")

		require.NoError(t, deps.svc.EndSession(context.Background(), sessionID))

		_, err := deps.svc.ListDraft(context.Background(), sessionID)
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("sessions are independent", func(t *testing.T) {
		deps := setupService(t)
		first := startSession(t, deps, "sess-1")
		second := startSession(t, deps, "sess-2")

		addItem(t, deps, first, "p1", "17", "Office Depot")
		item := addItem(t, deps, second, "p2", "5", "Office Depot")
		assert.Equal(t, 1, item.DraftID, "each session has its own counter")

		require.NoError(t, deps.svc.EndSession(context.Background(), first))

		items, err := deps.svc.ListDraft(context.Background(), second)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}
