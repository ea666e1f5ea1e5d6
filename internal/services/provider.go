package services

import (
	"github.com/mwhitley/stockroom-console/internal/clients/backend"
	"github.com/mwhitley/stockroom-console/internal/repositories/draftrequests"
	inventoryService "github.com/mwhitley/stockroom-console/internal/services/inventory"
	requisitionService "github.com/mwhitley/stockroom-console/internal/services/requisition"
)

// Provider holds all service instances
type Provider struct {
	InventoryService   inventoryService.Service
	RequisitionService requisitionService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	BackendClient   backend.Client // Required
	DraftRepository draftrequests.Repository
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	// Use in-memory repository if none provided
	draftRepo := cfg.DraftRepository
	if draftRepo == nil {
		draftRepo = draftrequests.NewInMemoryRepository()
	}

	invService, err := inventoryService.NewService(&inventoryService.ServiceConfig{
		BackendClient: cfg.BackendClient,
	})
	if err != nil {
		return nil, err
	}

	reqService, err := requisitionService.NewService(&requisitionService.ServiceConfig{
		BackendClient:    cfg.BackendClient,
		InventoryService: invService,
		Repository:       draftRepo,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		InventoryService:   invService,
		RequisitionService: reqService,
	}, nil
}
