package backend

//go:generate mockgen -destination=mock/mock_client.go -package=mockbackend . Client

import (
	"context"

	"github.com/mwhitley/stockroom-console/internal/entities"
)

// StockRequestRecord is the wire form of one requisition line-item. Only
// the fields the server acts on are sent; denormalized display fields
// stay client-side.
type StockRequestRecord struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Supplier  string `json:"supplier"`
	Urgency   string `json:"urgency"`
	Notes     string `json:"notes"`
}

// SubmitResult carries the server acknowledgment for a batch submission.
type SubmitResult struct {
	Message string
}

// Client is the authenticated API client for the inventory backend.
type Client interface {
	ListProducts(ctx context.Context) ([]*entities.Product, error)
	ListLowStockProducts(ctx context.Context) ([]*entities.Product, error)

	// SubmitStockRequests sends the whole batch in one call. The server
	// either accepts the batch or the call fails; there is no partial
	// acknowledgment.
	SubmitStockRequests(ctx context.Context, records []*StockRequestRecord) (*SubmitResult, error)
}
