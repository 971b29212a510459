package catalogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fashionhive/storefront/internal/config"
	"github.com/fashionhive/storefront/internal/domain"
	"github.com/fashionhive/storefront/internal/service"
	"github.com/fashionhive/storefront/pkg/errors"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new catalog API client
func NewClient(cfg config.CatalogConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// APIError is a non-2xx answer from the catalog API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog API error: status %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// GetProduct fetches one product by ID
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var resp envelope
	err := c.get(ctx, "/products/"+url.PathEscape(id), nil, &resp)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok {
			switch apiErr.StatusCode {
			case http.StatusNotFound:
				return nil, &errors.ErrNotFound{Resource: "product", ID: id}
			case http.StatusBadRequest:
				return nil, &errors.ErrValidation{Field: "id", Message: apiErr.Message}
			}
		}
		return nil, err
	}

	var product domain.Product
	if err := json.Unmarshal(resp.Data, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}
	return &product, nil
}

// ListProducts fetches one page of the cross-brand product listing
func (c *Client) ListProducts(ctx context.Context, query service.ProductQuery) (*service.ProductPage, error) {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		service.ProductPage
	}
	if err := c.get(ctx, "/products", encodeQuery(query), &resp); err != nil {
		return nil, err
	}
	return &resp.ProductPage, nil
}

// ListBrands fetches every brand summary
func (c *Client) ListBrands(ctx context.Context) ([]*domain.Brand, error) {
	var resp envelope
	if err := c.get(ctx, "/brands", nil, &resp); err != nil {
		return nil, err
	}

	var brands []*domain.Brand
	if err := json.Unmarshal(resp.Data, &brands); err != nil {
		return nil, fmt.Errorf("failed to unmarshal brands: %w", err)
	}
	return brands, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Catalog request failed", zap.Error(err), zap.String("url", endpoint))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure envelope
		message := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &failure) == nil && failure.Message != "" {
			message = failure.Message
		}
		c.logger.Debug("Catalog API returned an error",
			zap.Int("status", resp.StatusCode),
			zap.String("url", endpoint),
			zap.String("message", message),
		)
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func encodeQuery(q service.ProductQuery) url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}

	set("category", q.Category)
	set("brand", q.Brand)
	set("search", q.Search)
	set("sort", string(q.Sort))
	if q.MinPrice != nil {
		values.Set("minPrice", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		values.Set("maxPrice", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	return values
}
