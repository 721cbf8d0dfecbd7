package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client calls the external win-rate model over HTTP. It satisfies
// winrate.Scorer; wrap it in a Cached client to bound request volume.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a scorer client. An empty baseURL returns nil, which
// the adjuster treats as "no scorer".
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type scoreRequest struct {
	ObservedWinRate float64 `json:"observed_win_rate"`
	AvgBet          float64 `json:"avg_bet"`
	BaseRate        float64 `json:"base_rate"`
}

type scoreResponse struct {
	PredictedWinRate float64 `json:"predicted_win_rate"`
}

// Score requests a personalized win-rate prediction from the model.
func (c *Client) Score(ctx context.Context, observedWinRate, avgBet, baseRate float64) (float64, error) {
	body, err := json.Marshal(scoreRequest{
		ObservedWinRate: observedWinRate,
		AvgBet:          avgBet,
		BaseRate:        baseRate,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ScorePath, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build score request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("score request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("score request failed: status %d", resp.StatusCode)
	}

	var out scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("failed to decode score response: %w", err)
	}
	return out.PredictedWinRate, nil
}
