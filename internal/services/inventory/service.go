package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=mockinventory -source=service.go

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mwhitley/stockroom-console/internal/clients/backend"
	"github.com/mwhitley/stockroom-console/internal/entities"
	apperr "github.com/mwhitley/stockroom-console/internal/errors"
)

// Service supplies inventory snapshots. Pure read; the snapshot is
// fetched once per view activation and accepted as stale for the rest
// of the session.
type Service interface {
	// GetSnapshot fetches the full catalog and the low-stock subset.
	GetSnapshot(ctx context.Context) (*entities.Snapshot, error)
}

// service implements the Service interface
type service struct {
	client backend.Client
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	BackendClient backend.Client // Required
}

// NewService creates a new inventory service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg is required")
	}
	if cfg.BackendClient == nil {
		return nil, apperr.InvalidArgument("cfg.BackendClient is required")
	}

	return &service{
		client: cfg.BackendClient,
	}, nil
}

// GetSnapshot fetches the catalog and the low-stock subset in parallel
func (s *service) GetSnapshot(ctx context.Context) (*entities.Snapshot, error) {
	var (
		products []*entities.Product
		lowStock []*entities.Product
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := s.client.ListProducts(gctx)
		if err != nil {
			return err
		}
		products = result
		return nil
	})

	g.Go(func() error {
		result, err := s.client.ListLowStockProducts(gctx)
		if err != nil {
			return err
		}
		lowStock = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, apperr.Wrap(err, "failed to fetch inventory snapshot")
	}

	return &entities.Snapshot{
		Products: products,
		LowStock: lowStock,
	}, nil
}
