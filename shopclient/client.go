// Package shopclient implements the service boundaries the cart core
// consumes (product listing, order creation, tracking, admin operations)
// over the storefront HTTP API. The endpoint is injected per client; there
// is no module-level API base.
package shopclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/checkout"
	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/models"
	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/tracking"
)

type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ checkout.OrderCreator = (*Client)(nil)
	_ tracking.OrderFetcher = (*Client)(nil)
)

func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{})
}

func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// ListProducts fetches the catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products", "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateOrder submits the checkout payload and returns the order reference.
// Any non-success response surfaces as a generic creation failure.
func (c *Client) CreateOrder(ctx context.Context, req checkout.OrderRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/orders/place", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to reach order service: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("order service error (%d): %s", resp.StatusCode, errorMessage(respBody))
	}

	var created struct {
		OrderRef string `json:"order_ref"`
	}
	if err := json.Unmarshal(respBody, &created); err != nil {
		return "", fmt.Errorf("failed to parse order response: %v", err)
	}
	return created.OrderRef, nil
}

// OrdersByPhone fetches a customer's order history.
func (c *Client) OrdersByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, "/orders/track/"+url.PathEscape(phone), "", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAllOrders fetches every order; admin only.
func (c *Client) ListAllOrders(ctx context.Context, authToken string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, "/admin/orders", authToken, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to a new status; admin only.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID uint, status models.OrderStatus, authToken string) error {
	body, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut,
		c.baseURL+"/admin/orders/"+strconv.FormatUint(uint64(orderID), 10)+"/status",
		bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+authToken)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to reach order service: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("order service error (%d): %s", resp.StatusCode, errorMessage(respBody))
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path, authToken string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach order service: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("order service error (%d): %s", resp.StatusCode, errorMessage(body))
	}
	return json.Unmarshal(body, out)
}

func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(body)
}
