package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/mwhitley/stockroom-console/internal/auth"
	"github.com/mwhitley/stockroom-console/internal/clients/backend"
	"github.com/mwhitley/stockroom-console/internal/config"
	"github.com/mwhitley/stockroom-console/internal/repositories/draftrequests"
	"github.com/mwhitley/stockroom-console/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Backend URL: %s", cfg.Backend.BaseURL)

	tokens := auth.NewMemoryStore()
	if cfg.Backend.Token != "" {
		tokens.Set(cfg.Backend.Token)
	} else {
		log.Println("No BACKEND_TOKEN set, requests will be unauthenticated")
	}

	backendClient, err := backend.New(&backend.Config{
		HttpClient: &http.Client{
			Timeout: cfg.Backend.Timeout,
		},
		BaseURL:    cfg.Backend.BaseURL,
		TokenStore: tokens,
		SessionExpiredHandler: func() {
			log.Println("Session expired, please log in again")
		},
	})
	if err != nil {
		log.Fatalf("Failed to create backend client: %v", err)
	}

	providerConfig := &services.ProviderConfig{
		BackendClient: backendClient,
	}

	// Try to connect to Redis if URL is provided
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		log.Printf("Connecting to Redis at: %s", redisURL)

		opts, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory draft store")
		} else {
			redisClient := redis.NewClient(opts)
			defer func() {
				_ = redisClient.Close()
			}()

			if pingErr := redisClient.Ping(context.Background()).Err(); pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory draft store")
			} else {
				log.Println("Successfully connected to Redis")

				draftRepo, repoErr := draftrequests.NewRedisRepository(&draftrequests.RedisRepoConfig{
					Client: redisClient,
					TTL:    cfg.Redis.DraftTTL,
				})
				if repoErr != nil {
					log.Fatalf("Failed to create Redis draft repository: %v", repoErr)
				}
				providerConfig.DraftRepository = draftRepo
				log.Println("Using Redis for draft storage")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory draft store")
	}

	serviceProvider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	ctx := context.Background()

	session, err := serviceProvider.RequisitionService.StartSession(ctx)
	if err != nil {
		log.Fatalf("Failed to start draft session: %v", err)
	}

	fmt.Printf("Draft session %s\n", session.SessionID)
	fmt.Printf("Catalog: %d products, %d below minimum stock\n",
		len(session.Snapshot.Products), len(session.Snapshot.LowStock))

	if len(session.Snapshot.LowStock) > 0 {
		fmt.Println("\nLow stock alerts:")
		for _, product := range session.Snapshot.LowStock {
			suggestion, suggestErr := serviceProvider.RequisitionService.SuggestForLowStock(session.SessionID, product.ID)
			if suggestErr != nil {
				log.Printf("Failed to compute suggestion for %s: %v", product.ID, suggestErr)
				continue
			}

			line := fmt.Sprintf("  %-30s stock %3d", product.Name, product.Quantity)
			if product.MinQuantity != nil {
				line += fmt.Sprintf("  (min %d)", *product.MinQuantity)
			}
			if suggestion.HasQuantity {
				line += fmt.Sprintf("  -> order %d, %s", suggestion.Quantity, suggestion.Urgency.Label())
			}
			fmt.Println(line)
		}
	}

	if err := serviceProvider.RequisitionService.EndSession(ctx, session.SessionID); err != nil {
		log.Printf("Failed to end session: %v", err)
	}
}
