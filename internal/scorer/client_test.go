package scorer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientScore(t *testing.T) {
	t.Run("Posts features and returns the prediction", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, ScorePath, r.URL.Path)

			var req scoreRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, 40.0, req.ObservedWinRate)
			assert.Equal(t, 500.0, req.AvgBet)
			assert.Equal(t, 47.0, req.BaseRate)

			json.NewEncoder(w).Encode(scoreResponse{PredictedWinRate: 38.5})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second)
		predicted, err := c.Score(context.Background(), 40, 500, 47)

		assert.NoError(t, err)
		assert.Equal(t, 38.5, predicted)
	})

	t.Run("Non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second)
		_, err := c.Score(context.Background(), 40, 500, 47)
		assert.Error(t, err)
	})

	t.Run("Context cancellation aborts the request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		c := NewClient(srv.URL, time.Second)
		_, err := c.Score(ctx, 40, 500, 47)
		assert.Error(t, err)
	})

	t.Run("Empty base URL means no scorer", func(t *testing.T) {
		assert.Nil(t, NewClient("", time.Second))
	})
}

func TestCached(t *testing.T) {
	t.Run("Repeated features hit the cache", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			json.NewEncoder(w).Encode(scoreResponse{PredictedWinRate: 38.5})
		}))
		defer srv.Close()

		c := NewCached(NewClient(srv.URL, time.Second), 16, time.Minute)
		for i := 0; i < 5; i++ {
			predicted, err := c.Score(context.Background(), 40, 500, 47)
			assert.NoError(t, err)
			assert.Equal(t, 38.5, predicted)
		}
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("Errors are not cached", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			json.NewEncoder(w).Encode(scoreResponse{PredictedWinRate: 41.0})
		}))
		defer srv.Close()

		c := NewCached(NewClient(srv.URL, time.Second), 16, time.Minute)

		_, err := c.Score(context.Background(), 40, 500, 47)
		assert.Error(t, err)

		predicted, err := c.Score(context.Background(), 40, 500, 47)
		assert.NoError(t, err)
		assert.Equal(t, 41.0, predicted)
	})

	t.Run("Nil inner means no scorer", func(t *testing.T) {
		assert.Nil(t, NewCached(nil, 16, time.Minute))
	})

	t.Run("Unconfigured client means no cached scorer", func(t *testing.T) {
		assert.Nil(t, NewCached(NewClient("", time.Second), 16, time.Minute))
	})

	t.Run("Nearby bet sizes share an entry", func(t *testing.T) {
		assert.Equal(t, cacheKey(40.2, 510, 47), cacheKey(39.8, 505, 47))
		assert.NotEqual(t, cacheKey(40, 500, 47), cacheKey(40, 1000, 47))
	})
}
