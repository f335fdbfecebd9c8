// Package api implements the live catalog source and order sink over the
// store backend's JSON API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"shoptui/store"
)

// Client talks to the store backend. The zero value is not usable; build
// one with New.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// product is the backend's catalog wire shape.
type product struct {
	ID    int             `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// orderLine is the backend's order wire shape.
type orderLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// FetchProducts retrieves the full catalog. No pagination, no filtering.
func (c *Client) FetchProducts(ctx context.Context) ([]store.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build products request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch products: unexpected status %d", resp.StatusCode)
	}

	var wire []product
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]store.Product, 0, len(wire))
	for _, p := range wire {
		products = append(products, store.Product{
			ID:       p.ID,
			Name:     p.Title,
			Price:    p.Price,
			ImageURL: p.Image,
		})
	}
	c.logger.Info("fetched products", "count", len(products))
	return products, nil
}

// SendOrder submits the cart lines and returns the backend's confirmation
// message.
func (c *Client) SendOrder(ctx context.Context, items []store.CartItem) (string, error) {
	lines := make([]orderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, orderLine{ProductID: item.Product.ID, Quantity: item.Quantity})
	}
	body, err := json.Marshal(map[string]any{"products": lines})
	if err != nil {
		return "", fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/carts", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("send order: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("send order: unexpected status %d", resp.StatusCode)
	}

	var out struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode order response: %w", err)
	}
	c.logger.Info("order sent", "order_id", out.ID, "lines", len(lines))
	return fmt.Sprintf("Order #%d received.", out.ID), nil
}
