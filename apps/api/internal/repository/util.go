package repository

import (
	"math/rand"
	"time"
)

// 缓存空占位符：区分"没查过"和"查过但不存在"，挡穿透
const emptyPlaceholder = "{}"

// getRandomExpireTime 生成带随机抖动的过期时间
// baseExpire: 基础过期时间
// 返回: 基础过期时间 ± 10% 的随机时间，防止缓存雪崩
func getRandomExpireTime(baseExpire time.Duration) time.Duration {
	jitterRange := float64(baseExpire) * 0.1
	jitter := time.Duration(rand.Float64()*float64(jitterRange)*2 - float64(jitterRange))

	return baseExpire + jitter
}

// getRandomBool 生成随机布尔值
// probability: 概率
// 返回: 概率为 probability 的布尔值（缓存概率性续期用）
func getRandomBool(probability float64) bool {
	return rand.Float64() < probability
}
