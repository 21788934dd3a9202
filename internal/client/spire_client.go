// Package client implements the spire.Client interface: one resource client
// per endpoint family, sharing a single transport and an optional
// read-through entity cache.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spirekit/spire-client/internal/constants"
	"github.com/spirekit/spire-client/internal/http"
	"github.com/spirekit/spire-client/pkg/spire"
)

// Client implements the spire.Client interface.
type Client struct {
	httpClient *http.Client
	logger     spire.Logger
	cache      spire.Cache

	orders         spire.OrdersClient
	invoices       spire.InvoicesClient
	customers      spire.CustomersClient
	inventory      spire.InventoryClient
	purchaseOrders spire.PurchaseOrdersClient
	notes          spire.NotesClient
}

// New creates a Spire API client from validated configuration.
func New(config *spire.Config) (*Client, error) {
	if config == nil {
		return nil, spire.ErrConfigRequired
	}

	if config.Host == "" {
		return nil, spire.ErrHostRequired
	}

	if config.Company == "" {
		return nil, spire.ErrCompanyRequired
	}

	if config.Username == "" || config.Password == "" {
		return nil, spire.ErrCredentialsRequired
	}

	opts := []http.Option{
		http.WithUserAgent(config.UserAgent),
		http.WithTimeout(config.HTTPTimeout),
		http.WithDebug(config.Debug),
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.Debug && config.Logger != nil {
		chain := spire.NewInterceptorChain()
		chain.AddRequestInterceptor(spire.LoggingInterceptor(config.Logger))
		chain.AddResponseInterceptor(spire.LoggingResponseInterceptor(config.Logger))
		opts = append(opts, http.WithInterceptors(chain))
	}

	client := &Client{
		httpClient: http.NewClient(baseURL(config.Host, config.Company), config.Username, config.Password, opts...),
		logger:     config.Logger,
	}

	if config.Cache != nil {
		cache, err := spire.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("building cache: %w", err)
		}

		client.cache = cache
	}

	client.orders = NewOrdersClient(client)
	client.invoices = NewInvoicesClient(client)
	client.customers = NewCustomersClient(client)
	client.inventory = NewInventoryClient(client)
	client.purchaseOrders = NewPurchaseOrdersClient(client)
	client.notes = NewNotesClient(client)

	return client, nil
}

// baseURL builds the company database root. A bare host gets "https://" and a
// trailing slash is dropped.
func baseURL(host, company string) string {
	if !strings.Contains(host, "://") {
		host = "https://" + host
	}

	host = strings.TrimRight(host, "/")

	return host + constants.APIBasePath + "/" + company
}

// Orders returns the sales orders client.
func (c *Client) Orders() spire.OrdersClient {
	return c.orders
}

// Invoices returns the invoices client.
func (c *Client) Invoices() spire.InvoicesClient {
	return c.invoices
}

// Customers returns the customers client.
func (c *Client) Customers() spire.CustomersClient {
	return c.customers
}

// Inventory returns the inventory client.
func (c *Client) Inventory() spire.InventoryClient {
	return c.inventory
}

// PurchaseOrders returns the purchase orders client.
func (c *Client) PurchaseOrders() spire.PurchaseOrdersClient {
	return c.purchaseOrders
}

// Notes returns the CRM notes client.
func (c *Client) Notes() spire.NotesClient {
	return c.notes
}

// Requester exposes the underlying transport.
func (c *Client) Requester() spire.Requester {
	return c.httpClient
}

func cacheKey(endpoint string, id int) string {
	return fmt.Sprintf("spire:%s:%d", endpoint, id)
}

// getRecord fetches one raw record body by id, consulting the cache first
// when one is configured. Only single-record reads are cached; lists and
// writes always hit the server.
func (c *Client) getRecord(ctx context.Context, endpoint string, id int) ([]byte, error) {
	key := cacheKey(endpoint, id)

	if c.cache != nil {
		if entry, err := c.cache.Get(ctx, key); err == nil {
			return entry.Data, nil
		}
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("%s/%d", endpoint, id), nil)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		_ = c.cache.Set(ctx, key, &spire.CacheEntry{
			Data:      resp.Body,
			ExpiresAt: time.Now().Add(constants.DefaultCacheTTL),
			ETag:      resp.Headers.Get("ETag"),
		})
	}

	return resp.Body, nil
}
