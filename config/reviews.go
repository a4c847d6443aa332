package config

import "time"

// ReviewsConfig Google 评论代理配置。
// 未配置 API Key 时返回内置的示例评论，方便本地联调。
type ReviewsConfig struct {
	APIKey  string `json:"-" yaml:"apiKey"`          // Google Places API Key，严禁打印
	PlaceID string `json:"placeId" yaml:"placeId"`   // 商家 Place ID
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`   // Places API 地址
	Timeout time.Duration `json:"timeout" yaml:"timeout"` // 上游请求超时

	// 缓存配置
	CacheTTL  time.Duration `json:"cacheTtl" yaml:"cacheTtl"`   // 评论缓存有效期
	CacheSize int           `json:"cacheSize" yaml:"cacheSize"` // 本地 LRU 缓存条目数

	// 熔断配置
	BreakerMaxRequests uint32        `json:"breakerMaxRequests" yaml:"breakerMaxRequests"` // 半开状态放行请求数
	BreakerInterval    time.Duration `json:"breakerInterval" yaml:"breakerInterval"`       // 闭合状态计数周期
	BreakerTimeout     time.Duration `json:"breakerTimeout" yaml:"breakerTimeout"`         // 打开状态持续时间
	BreakerFailures    uint32        `json:"breakerFailures" yaml:"breakerFailures"`       // 触发熔断的连续失败次数
}

// DefaultReviewsConfig 返回本地开发的默认配置
func DefaultReviewsConfig() ReviewsConfig {
	return ReviewsConfig{
		APIKey:             "",
		PlaceID:            "",
		BaseURL:            "https://maps.googleapis.com/maps/api/place/details/json",
		Timeout:            5 * time.Second,
		CacheTTL:           time.Hour,
		CacheSize:          128,
		BreakerMaxRequests: 3,
		BreakerInterval:    60 * time.Second,
		BreakerTimeout:     30 * time.Second,
		BreakerFailures:    5,
	}
}

// ReviewsConfigFromEnv 在默认配置的基础上套用环境变量覆盖
func ReviewsConfigFromEnv() ReviewsConfig {
	cfg := DefaultReviewsConfig()
	cfg.APIKey = envString("GOOGLE_PLACES_API_KEY", cfg.APIKey)
	cfg.PlaceID = envString("GOOGLE_PLACE_ID", cfg.PlaceID)
	cfg.CacheTTL = envDuration("REVIEWS_CACHE_TTL", cfg.CacheTTL)
	return cfg
}
