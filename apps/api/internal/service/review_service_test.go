package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WeddingServer/config"
)

func reviewsTestConfig(baseURL string) config.ReviewsConfig {
	cfg := config.DefaultReviewsConfig()
	cfg.APIKey = "test-key"
	cfg.PlaceID = "place-123"
	cfg.BaseURL = baseURL
	cfg.Timeout = 2 * time.Second
	cfg.CacheSize = 8
	cfg.CacheTTL = time.Minute
	return cfg
}

func TestReviewService_Fallback_WhenUnconfigured(t *testing.T) {
	initSvcTestLogger()

	cfg := config.DefaultReviewsConfig() // APIKey 为空
	svc := NewReviewService(cfg, nil)

	resp, err := svc.GetReviews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fallback", resp.Source)
	assert.Len(t, resp.Reviews, 3)
	assert.InDelta(t, 4.8, resp.Rating, 0.001)
}

func TestReviewService_UpstreamSuccess(t *testing.T) {
	initSvcTestLogger()

	var hits int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "place-123", r.URL.Query().Get("place_id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"result": {
				"rating": 4.6,
				"user_ratings_total": 214,
				"reviews": [
					{"author_name": "Priya S", "rating": 5, "text": "Wonderful", "relative_time_description": "a week ago"}
				]
			}
		}`))
	}))
	defer upstream.Close()

	svc := NewReviewService(reviewsTestConfig(upstream.URL), nil)

	resp, err := svc.GetReviews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "google", resp.Source)
	assert.InDelta(t, 4.6, resp.Rating, 0.001)
	assert.Equal(t, 214, resp.ReviewCount)
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, "Priya S", resp.Reviews[0].AuthorName)
	assert.Equal(t, "a week ago", resp.Reviews[0].TimeDesc)

	// 第二次命中本地缓存，不再访问上游
	_, err = svc.GetReviews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestReviewService_Fallback_OnUpstreamError(t *testing.T) {
	initSvcTestLogger()

	t.Run("http_5xx", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer upstream.Close()

		svc := NewReviewService(reviewsTestConfig(upstream.URL), nil)

		resp, err := svc.GetReviews(context.Background())
		require.NoError(t, err, "上游失败也不能把错误透给调用方")
		assert.Equal(t, "fallback", resp.Source)
	})

	t.Run("places_status_not_ok", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED"}`))
		}))
		defer upstream.Close()

		svc := NewReviewService(reviewsTestConfig(upstream.URL), nil)

		resp, err := svc.GetReviews(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "fallback", resp.Source)
	})
}
