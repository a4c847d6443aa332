package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/config"
	"WeddingServer/pkg/logger"
)

// reviewCacheKey Redis 里的评论缓存 key
const reviewCacheKey = "reviews:google:%s"

// reviewServiceImpl Google 评论代理服务实现。
// 读路径：本地 LRU -> Redis -> 上游（熔断保护）。
// 上游打开熔断或未配置 API Key 时返回内置示例评论，接口永不 5xx。
type reviewServiceImpl struct {
	config      config.ReviewsConfig
	client      *http.Client
	breaker     *gobreaker.CircuitBreaker
	local       *lru.LRU[string, *dto.ReviewsResponse]
	redisClient *redis.Client
}

// NewReviewService 创建评论代理服务实例
func NewReviewService(cfg config.ReviewsConfig, redisClient *redis.Client) IReviewService {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "google-reviews",
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn(context.Background(), "评论上游熔断状态变化",
				logger.String("name", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()))
		},
	})
	return &reviewServiceImpl{
		config:      cfg,
		client:      &http.Client{Timeout: cfg.Timeout},
		breaker:     breaker,
		local:       lru.NewLRU[string, *dto.ReviewsResponse](cfg.CacheSize, nil, cfg.CacheTTL),
		redisClient: redisClient,
	}
}

// GetReviews 查询商家的 Google 评论
func (s *reviewServiceImpl) GetReviews(ctx context.Context) (*dto.ReviewsResponse, error) {
	if s.config.APIKey == "" || s.config.PlaceID == "" {
		return fallbackReviews(), nil
	}

	// 1. 本地 LRU
	if cached, ok := s.local.Get(s.config.PlaceID); ok {
		return cached, nil
	}

	// 2. Redis
	if resp := s.getFromRedis(ctx); resp != nil {
		s.local.Add(s.config.PlaceID, resp)
		return resp, nil
	}

	// 3. 上游（熔断保护），失败降级为示例数据
	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.fetchUpstream(ctx)
	})
	if err != nil {
		logger.Warn(ctx, "评论上游不可用 返回示例数据",
			logger.String("place_id", s.config.PlaceID),
			logger.ErrorField(err))
		return fallbackReviews(), nil
	}

	resp := result.(*dto.ReviewsResponse)
	s.local.Add(s.config.PlaceID, resp)
	s.setToRedis(ctx, resp)
	return resp, nil
}

// ==================== 上游请求 ====================

// placesReply Places Details API 的响应结构（仅取用到的字段）
type placesReply struct {
	Status string `json:"status"`
	Result struct {
		Rating           float64 `json:"rating"`
		UserRatingsTotal int     `json:"user_ratings_total"`
		Reviews          []struct {
			AuthorName              string  `json:"author_name"`
			Rating                  float64 `json:"rating"`
			Text                    string  `json:"text"`
			RelativeTimeDescription string  `json:"relative_time_description"`
			ProfilePhotoURL         string  `json:"profile_photo_url"`
		} `json:"reviews"`
	} `json:"result"`
}

func (s *reviewServiceImpl) fetchUpstream(ctx context.Context) (*dto.ReviewsResponse, error) {
	params := url.Values{}
	params.Set("place_id", s.config.PlaceID)
	params.Set("fields", "rating,user_ratings_total,reviews")
	params.Set("key", s.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build places request: %w", err)
	}
	httpResp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api returned status %d", httpResp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read places response: %w", err)
	}

	var reply placesReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}
	if reply.Status != "OK" {
		return nil, fmt.Errorf("places api status: %s", reply.Status)
	}

	resp := &dto.ReviewsResponse{
		Rating:      reply.Result.Rating,
		ReviewCount: reply.Result.UserRatingsTotal,
		Reviews:     make([]*dto.ReviewItem, 0, len(reply.Result.Reviews)),
		Source:      "google",
	}
	for _, r := range reply.Result.Reviews {
		resp.Reviews = append(resp.Reviews, &dto.ReviewItem{
			AuthorName:   r.AuthorName,
			Rating:       r.Rating,
			Text:         r.Text,
			TimeDesc:     r.RelativeTimeDescription,
			ProfilePhoto: r.ProfilePhotoURL,
		})
	}
	return resp, nil
}

// ==================== Redis 缓存 ====================

func (s *reviewServiceImpl) getFromRedis(ctx context.Context) *dto.ReviewsResponse {
	if s.redisClient == nil {
		return nil
	}
	raw, err := s.redisClient.Get(ctx, fmt.Sprintf(reviewCacheKey, s.config.PlaceID)).Result()
	if err != nil {
		if err != redis.Nil {
			repository.LogRedisError(ctx, err)
		}
		return nil
	}
	var resp dto.ReviewsResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *reviewServiceImpl) setToRedis(ctx context.Context, resp *dto.ReviewsResponse) {
	if s.redisClient == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	key := fmt.Sprintf(reviewCacheKey, s.config.PlaceID)
	if err := s.redisClient.Set(ctx, key, payload, s.config.CacheTTL).Err(); err != nil {
		repository.LogRedisError(ctx, err)
	}
}

// ==================== 示例数据 ====================

// fallbackReviews 内置的示例评论，上游不可用或未配置时返回
func fallbackReviews() *dto.ReviewsResponse {
	return &dto.ReviewsResponse{
		Rating:      4.8,
		ReviewCount: 3,
		Source:      "fallback",
		Reviews: []*dto.ReviewItem{
			{
				AuthorName: "Priya S",
				Rating:     5,
				Text:       "Planning our wedding through this platform was effortless. The vendor shortlist saved us weeks.",
				TimeDesc:   "a month ago",
			},
			{
				AuthorName: "Rahul M",
				Rating:     5,
				Text:       "Great packages and transparent pricing. The booking confirmation flow worked flawlessly.",
				TimeDesc:   "2 months ago",
			},
			{
				AuthorName: "Ananya K",
				Rating:     4,
				Text:       "Guest list management and invitations were a lifesaver for our 300 person wedding.",
				TimeDesc:   "3 months ago",
			},
		},
	}
}
