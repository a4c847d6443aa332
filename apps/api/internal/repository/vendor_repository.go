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

// vendorRepositoryImpl 商家数据访问层实现
type vendorRepositoryImpl struct {
	db          *gorm.DB
	redisClient *redis.Client
}

// NewVendorRepository 创建商家仓储实例
func NewVendorRepository(db *gorm.DB, redisClient *redis.Client) IVendorRepository {
	return &vendorRepositoryImpl{db: db, redisClient: redisClient}
}

func vendorCacheKey(id int64) string {
	return fmt.Sprintf("vendor:info:%d", id)
}

// List 过滤 + 分页查询上架商家
func (r *vendorRepositoryImpl) List(ctx context.Context, filter VendorFilter) ([]*model.Vendor, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Vendor{}).Where("is_active = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Locality != "" {
		query = query.Where("locality = ?", filter.Locality)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, WrapDBError(err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var vendors []*model.Vendor
	err := query.
		Order("is_featured DESC, rating DESC, id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&vendors).Error
	if err != nil {
		return nil, 0, WrapDBError(err)
	}

	return vendors, total, nil
}

// ListCategories 查询上架商家覆盖的全部类目
func (r *vendorRepositoryImpl) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.Vendor{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return categories, nil
}

// ListLocalities 查询上架商家覆盖的全部城市
func (r *vendorRepositoryImpl) ListLocalities(ctx context.Context) ([]string, error) {
	var localities []string
	err := r.db.WithContext(ctx).Model(&model.Vendor{}).
		Where("is_active = ?", true).
		Distinct("locality").
		Order("locality ASC").
		Pluck("locality", &localities).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return localities, nil
}

// GetById 查询单个商家。
// 详情页是最热的读路径，走缓存；命中时 1% 概率提前续期，避免热 key 集中过期。
func (r *vendorRepositoryImpl) GetById(ctx context.Context, id int64) (*model.Vendor, error) {
	cacheKey := vendorCacheKey(id)

	// ==================== 1. 先查 Redis 缓存 ====================
	if r.redisClient != nil {
		cachedData, err := r.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedData == emptyPlaceholder {
				return nil, ErrRecordNotFound
			}
			var vendor model.Vendor
			if err := json.Unmarshal([]byte(cachedData), &vendor); err == nil {
				// 概率性续期
				if getRandomBool(0.01) {
					ttl := getRandomExpireTime(time.Hour)
					async.RunSafe(ctx, func(runCtx context.Context) {
						if err := r.redisClient.Expire(runCtx, cacheKey, ttl).Err(); err != nil {
							LogRedisError(runCtx, err)
						}
					}, 0)
				}
				return &vendor, nil
			}
		}
		if err != nil && err != redis.Nil {
			LogRedisError(ctx, err)
		}
	}

	// ==================== 2. 缓存未命中，查询 MySQL ====================
	var vendor model.Vendor
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&vendor).Error
	if err != nil {
		wrapped := WrapDBError(err)
		if wrapped == ErrRecordNotFound && r.redisClient != nil {
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
	r.cacheVendor(ctx, &vendor)

	return &vendor, nil
}

// Create 创建商家
func (r *vendorRepositoryImpl) Create(ctx context.Context, vendor *model.Vendor) error {
	if err := r.db.WithContext(ctx).Create(vendor).Error; err != nil {
		return WrapDBError(err)
	}
	return nil
}

// Update 保存商家全量字段并失效缓存
func (r *vendorRepositoryImpl) Update(ctx context.Context, vendor *model.Vendor) error {
	if err := r.db.WithContext(ctx).Save(vendor).Error; err != nil {
		return WrapDBError(err)
	}
	if r.redisClient != nil {
		cacheKey := vendorCacheKey(vendor.Id)
		async.RunSafe(ctx, func(runCtx context.Context) {
			if err := r.redisClient.Del(runCtx, cacheKey).Err(); err != nil {
				LogRedisError(runCtx, err)
			}
		}, 0)
	}
	return nil
}

// cacheVendor 异步回填缓存
func (r *vendorRepositoryImpl) cacheVendor(ctx context.Context, vendor *model.Vendor) {
	if r.redisClient == nil {
		return
	}
	vendorJSON, err := json.Marshal(vendor)
	if err != nil {
		return
	}
	ttl := getRandomExpireTime(time.Hour)
	cacheKey := vendorCacheKey(vendor.Id)
	async.RunSafe(ctx, func(runCtx context.Context) {
		if err := r.redisClient.Set(runCtx, cacheKey, vendorJSON, ttl).Err(); err != nil {
			LogRedisError(runCtx, err)
		}
	}, 0)
}
