package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"WeddingServer/model"
	"WeddingServer/pkg/async"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// userRepositoryImpl 用户数据访问层实现
type userRepositoryImpl struct {
	db          *gorm.DB
	redisClient *redis.Client
}

// NewUserRepository 创建用户仓储实例。
// redisClient 可为 nil（降级到 MySQL-Only 模式）。
func NewUserRepository(db *gorm.DB, redisClient *redis.Client) IUserRepository {
	return &userRepositoryImpl{db: db, redisClient: redisClient}
}

func userCacheKey(id int64) string {
	return fmt.Sprintf("user:info:%d", id)
}

// GetById 根据 id 查询用户
func (r *userRepositoryImpl) GetById(ctx context.Context, id int64) (*model.User, error) {
	cacheKey := userCacheKey(id)

	// ==================== 1. 先查 Redis 缓存 ====================
	if r.redisClient != nil {
		cachedData, err := r.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			// 空占位符表示确认不存在，不回源
			if cachedData == emptyPlaceholder {
				return nil, ErrRecordNotFound
			}
			var user model.User
			if err := json.Unmarshal([]byte(cachedData), &user); err == nil {
				return &user, nil
			}
		}
		if err != nil && err != redis.Nil {
			LogRedisError(ctx, err) // 记录日志 降级处理
		}
	}

	// ==================== 2. 缓存未命中，查询 MySQL ====================
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		wrapped := WrapDBError(err)
		if wrapped == ErrRecordNotFound && r.redisClient != nil {
			// 存一份空占位 5min 过期，挡穿透
			ttl := getRandomExpireTime(5 * time.Minute)
			async.RunSafe(ctx, func(runCtx context.Context) {
				if err := r.redisClient.Set(runCtx, cacheKey, emptyPlaceholder, ttl).Err(); err != nil {
					LogRedisError(runCtx, err)
				}
			}, 0)
		}
		return nil, wrapped
	}

	// ==================== 3. 异步回填缓存 ====================
	r.cacheUser(ctx, &user)

	return &user, nil
}

// GetByPhone 根据手机号查询用户。
// 登录注册链路的低频查询，不走缓存。
func (r *userRepositoryImpl) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("phone_number = ?", phone).First(&user).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return &user, nil
}

// GetByFirebaseUid 根据 Firebase UID 查询用户
func (r *userRepositoryImpl) GetByFirebaseUid(ctx context.Context, uid string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("firebase_uid = ?", uid).First(&user).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return &user, nil
}

// Create 创建用户，手机号/邮箱/UID 冲突返回 ErrDuplicateKey
func (r *userRepositoryImpl) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return WrapDBError(err)
	}
	return nil
}

// Update 保存用户全量字段并失效缓存
func (r *userRepositoryImpl) Update(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return WrapDBError(err)
	}
	r.invalidateUser(ctx, user.Id)
	return nil
}

// Deactivate 停用用户
func (r *userRepositoryImpl) Deactivate(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return WrapDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	r.invalidateUser(ctx, id)
	return nil
}

// Transaction 在单个事务里执行 fn。
// 身份合并（创建 + 更新 + 冲突检查）必须整体生效或整体回滚。
func (r *userRepositoryImpl) Transaction(ctx context.Context, fn func(txRepo IUserRepository) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&userRepositoryImpl{db: tx, redisClient: r.redisClient})
	})
	if err == nil || isWrapped(err) {
		return err
	}
	return WrapDBError(err)
}

// cacheUser 异步回填缓存，1h ± 10% 抖动防止同批 key 一起过期
func (r *userRepositoryImpl) cacheUser(ctx context.Context, user *model.User) {
	if r.redisClient == nil {
		return
	}
	userJSON, err := json.Marshal(user)
	if err != nil {
		// 序列化失败，不影响主流程
		return
	}
	ttl := getRandomExpireTime(time.Hour)
	cacheKey := userCacheKey(user.Id)
	async.RunSafe(ctx, func(runCtx context.Context) {
		if err := r.redisClient.Set(runCtx, cacheKey, userJSON, ttl).Err(); err != nil {
			LogRedisError(runCtx, err)
		}
	}, 0)
}

// invalidateUser 写后删缓存
func (r *userRepositoryImpl) invalidateUser(ctx context.Context, id int64) {
	if r.redisClient == nil {
		return
	}
	cacheKey := userCacheKey(id)
	async.RunSafe(ctx, func(runCtx context.Context) {
		if err := r.redisClient.Del(runCtx, cacheKey).Err(); err != nil {
			LogRedisError(runCtx, err)
		}
	}, 0)
}
