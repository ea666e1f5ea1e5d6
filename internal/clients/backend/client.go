package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mwhitley/stockroom-console/internal/auth"
	"github.com/mwhitley/stockroom-console/internal/entities"
	apperr "github.com/mwhitley/stockroom-console/internal/errors"
)

type client struct {
	httpClient       *http.Client
	baseURL          string
	tokens           auth.Store
	onSessionExpired func()
}

// Config holds the dependencies for the backend client.
type Config struct {
	HttpClient *http.Client
	BaseURL    string
	TokenStore auth.Store

	// SessionExpiredHandler runs after an authorization failure, once the
	// stored credential has been cleared. Optional.
	SessionExpiredHandler func()
}

// New creates an authenticated backend client.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg is required")
	}
	if cfg.BaseURL == "" {
		return nil, apperr.InvalidArgument("cfg.BaseURL is required")
	}
	if cfg.TokenStore == nil {
		return nil, apperr.InvalidArgument("cfg.TokenStore is required")
	}

	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		httpClient:       httpClient,
		baseURL:          cfg.BaseURL,
		tokens:           cfg.TokenStore,
		onSessionExpired: cfg.SessionExpiredHandler,
	}, nil
}

// apiProduct is the catalog entry shape returned by the backend.
type apiProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	MinQuantity *int   `json:"minQuantity"`
}

// submitBatchRequest is the body for the batch submission endpoint.
type submitBatchRequest struct {
	Requests []*StockRequestRecord `json:"requests"`
}

// apiResponse is the normalized envelope for non-list responses.
type apiResponse struct {
	Message string `json:"message"`
}

func (c *client) ListProducts(ctx context.Context) ([]*entities.Product, error) {
	var response []*apiProduct
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &response); err != nil {
		return nil, err
	}

	return apiProductsToProducts(response), nil
}

func (c *client) ListLowStockProducts(ctx context.Context) ([]*entities.Product, error) {
	var response []*apiProduct
	if err := c.do(ctx, http.MethodGet, "/api/products/low-stock", nil, &response); err != nil {
		return nil, err
	}

	return apiProductsToProducts(response), nil
}

func (c *client) SubmitStockRequests(ctx context.Context, records []*StockRequestRecord) (*SubmitResult, error) {
	if len(records) == 0 {
		return nil, apperr.InvalidArgument("nothing to submit")
	}

	var response apiResponse
	body := &submitBatchRequest{Requests: records}
	if err := c.do(ctx, http.MethodPost, "/api/stock-requests", body, &response); err != nil {
		return nil, err
	}

	return &SubmitResult{Message: response.Message}, nil
}

// do performs one request against the backend: injects the stored
// credential, normalizes failures into coded errors, and decodes the
// response body into out when out is non-nil.
func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperr.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apperr.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	// An absent credential sends the request unauthenticated; the server
	// answers with a 401 which is handled below.
	if token, ok := c.tokens.Get(); ok {
		req.Header.Set("Authorization", "Basic "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable,
			"network error, please check your connection")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized {
		// Global session teardown: the credential is gone for every
		// subsequent call, not just this one.
		c.tokens.Clear()
		if c.onSessionExpired != nil {
			c.onSessionExpired()
		}
		return apperr.Unauthenticated("authentication required")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.rejectionError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperr.Wrap(err, "failed to decode response body")
		}
	}

	return nil
}

// rejectionError surfaces the server-supplied message verbatim when the
// body carries one, else a generic fallback.
func (c *client) rejectionError(resp *http.Response) error {
	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return apperr.Internal(body.Message).
			WithMeta("status", resp.StatusCode)
	}

	return apperr.Internal(fmt.Sprintf("request failed with status %d, please try again", resp.StatusCode)).
		WithMeta("status", resp.StatusCode)
}

func apiProductToProduct(input *apiProduct) *entities.Product {
	if input == nil {
		return nil
	}

	return &entities.Product{
		ID:          input.ID,
		Name:        input.Name,
		Quantity:    input.Quantity,
		MinQuantity: input.MinQuantity,
	}
}

func apiProductsToProducts(input []*apiProduct) []*entities.Product {
	products := make([]*entities.Product, 0, len(input))
	for _, p := range input {
		if converted := apiProductToProduct(p); converted != nil {
			products = append(products, converted)
		}
	}

	return products
}
