package scorer

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cached wraps the model client with an expirable LRU keyed by quantized
// inputs. Predictions move slowly relative to bet volume, so a short TTL
// removes most model round trips without visibly staling the odds.
type Cached struct {
	inner *Client
	lru   *expirable.LRU[string, float64]
}

// NewCached wraps inner with a prediction cache. Taking the concrete
// client keeps the nil from NewClient("", ...) detectable here; a nil
// inner returns nil and the "no scorer" case stays a plain nil check
// upstream.
func NewCached(inner *Client, size int, ttl time.Duration) *Cached {
	if inner == nil {
		return nil
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{
		inner: inner,
		lru:   expirable.NewLRU[string, float64](size, nil, ttl),
	}
}

func (c *Cached) Score(ctx context.Context, observedWinRate, avgBet, baseRate float64) (float64, error) {
	key := cacheKey(observedWinRate, avgBet, baseRate)
	if predicted, found := c.lru.Get(key); found {
		return predicted, nil
	}

	predicted, err := c.inner.Score(ctx, observedWinRate, avgBet, baseRate)
	if err != nil {
		return 0, err
	}
	c.lru.Add(key, predicted)
	return predicted, nil
}

// cacheKey quantizes the inputs so near-identical feature vectors share an
// entry. Win rate rounds to the percent, average bet to the nearest 50.
func cacheKey(observedWinRate, avgBet, baseRate float64) string {
	return fmt.Sprintf("%d:%d:%.2f",
		int64(observedWinRate+0.5),
		int64(avgBet/50+0.5)*50,
		baseRate)
}
