package paylink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pncplay/casino-bot/internal/domain"
)

// Link is one created payment link.
type Link struct {
	URL     string
	OrderID string
}

// Client is the payment-provider boundary: creating one-time payment
// links and reading the usable house balance.
type Client interface {
	// CreateLink creates a one-time payment link for the given JPY amount.
	CreateLink(ctx context.Context, amountJPY int64) (*Link, error)

	// UsableBalance returns the provider balance available for payouts,
	// in JPY.
	UsableBalance(ctx context.Context) (int64, error)
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a payment-provider client.
func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type createLinkRequest struct {
	Amount int64 `json:"amount"`
}

type createLinkResponse struct {
	LinkURL string `json:"link_url"`
	OrderID string `json:"order_id"`
}

type balanceResponse struct {
	Usable int64 `json:"usable"`
}

func (c *client) CreateLink(ctx context.Context, amountJPY int64) (*Link, error) {
	body, err := json.Marshal(createLinkRequest{Amount: amountJPY})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal link request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+LinksPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build link request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrPaylinkFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode, domain.ErrPaylinkFailed)
	}

	var out createLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode link response: %w", err)
	}
	if out.LinkURL == "" {
		return nil, fmt.Errorf("empty link url: %w", domain.ErrPaylinkFailed)
	}
	return &Link{URL: out.LinkURL, OrderID: out.OrderID}, nil
}

func (c *client) UsableBalance(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+BalancePath, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build balance request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("balance request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("balance request failed: status %d", resp.StatusCode)
	}

	var out balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("failed to decode balance response: %w", err)
	}
	return out.Usable, nil
}

func (c *client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}
