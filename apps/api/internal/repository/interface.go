package repository

import (
	"context"
	"time"

	"WeddingServer/model"
)

// ==================== 用户 Repository ====================

// IUserRepository 用户数据访问接口。
// 查询未命中统一返回 ErrRecordNotFound，由 service 层映射业务码。
type IUserRepository interface {
	// GetById 根据 id 查询用户（带 Redis 缓存）
	GetById(ctx context.Context, id int64) (*model.User, error)

	// GetByPhone 根据手机号查询用户
	GetByPhone(ctx context.Context, phone string) (*model.User, error)

	// GetByFirebaseUid 根据 Firebase UID 查询用户
	GetByFirebaseUid(ctx context.Context, uid string) (*model.User, error)

	// Create 创建用户
	Create(ctx context.Context, user *model.User) error

	// Update 保存用户全量字段并失效缓存
	Update(ctx context.Context, user *model.User) error

	// Deactivate 停用用户（软删除前的开关，所有凭证即刻失效）
	Deactivate(ctx context.Context, id int64) error

	// Transaction 在单个数据库事务里执行 fn，fn 拿到的是绑定事务的仓储
	Transaction(ctx context.Context, fn func(txRepo IUserRepository) error) error
}

// ==================== 关系 Repository ====================

// IRelationshipRepository 用户关系数据访问接口
type IRelationshipRepository interface {
	// Create 创建关系请求，唯一键冲突返回 ErrDuplicateKey
	Create(ctx context.Context, rel *model.Relationship) error

	// GetById 根据 id 查询关系
	GetById(ctx context.Context, id int64) (*model.Relationship, error)

	// GetByTriple 根据（发起方，接收方，类型）查询关系
	GetByTriple(ctx context.Context, userId, relatedUserId int64, relType string) (*model.Relationship, error)

	// ListByUser 查询用户发起的全部关系
	ListByUser(ctx context.Context, userId int64) ([]*model.Relationship, error)

	// ListPendingForUser 查询发给用户的、未过期的待处理请求
	ListPendingForUser(ctx context.Context, relatedUserId int64, now time.Time) ([]*model.Relationship, error)

	// Update 保存关系全量字段
	Update(ctx context.Context, rel *model.Relationship) error

	// Delete 软删除关系
	Delete(ctx context.Context, id int64) error
}

// ==================== 婚礼 Repository ====================

// IWeddingRepository 婚礼数据访问接口
type IWeddingRepository interface {
	Create(ctx context.Context, wedding *model.Wedding) error

	// GetByIdForUser 查询归属指定用户的婚礼，越权访问等同不存在
	GetByIdForUser(ctx context.Context, id, userId int64) (*model.Wedding, error)

	ListByUser(ctx context.Context, userId int64) ([]*model.Wedding, error)

	Update(ctx context.Context, wedding *model.Wedding) error

	Delete(ctx context.Context, id int64) error
}

// ==================== 商家 Repository ====================

// VendorFilter 商家列表过滤条件
type VendorFilter struct {
	Category string // 服务类目，空表示不过滤
	Locality string // 城市，空表示不过滤
	Featured *bool  // 推荐位过滤，nil 表示不过滤
	Page     int    // 页码，从 1 开始
	PageSize int    // 每页条数
}

// IVendorRepository 商家数据访问接口
type IVendorRepository interface {
	// List 过滤 + 分页查询上架商家，返回当页数据和总数
	List(ctx context.Context, filter VendorFilter) ([]*model.Vendor, int64, error)

	// ListCategories 查询上架商家覆盖的全部类目
	ListCategories(ctx context.Context) ([]string, error)

	// ListLocalities 查询上架商家覆盖的全部城市
	ListLocalities(ctx context.Context) ([]string, error)

	// GetById 查询单个商家（带 Redis 缓存）
	GetById(ctx context.Context, id int64) (*model.Vendor, error)

	Create(ctx context.Context, vendor *model.Vendor) error

	// Update 保存商家全量字段并失效缓存
	Update(ctx context.Context, vendor *model.Vendor) error
}

// ==================== 套餐 Repository ====================

// IPackageRepository 套餐数据访问接口
type IPackageRepository interface {
	// ListActive 查询全部上架套餐
	ListActive(ctx context.Context) ([]*model.Package, error)

	// ListPopular 查询热门套餐
	ListPopular(ctx context.Context) ([]*model.Package, error)

	GetById(ctx context.Context, id int64) (*model.Package, error)

	Create(ctx context.Context, pkg *model.Package) error

	Update(ctx context.Context, pkg *model.Package) error
}

// ==================== 购物车 Repository ====================

// CartSummary 购物车汇总
type CartSummary struct {
	TotalItems int            `json:"total_items"` // 条目总数
	TotalPrice float64        `json:"total_price"` // 价格合计
	ByStatus   map[string]int `json:"by_status"`   // 各状态条目数
}

// ICartRepository 购物车数据访问接口
type ICartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error

	// GetByIdForUser 查询归属指定用户的条目
	GetByIdForUser(ctx context.Context, id, userId int64) (*model.CartItem, error)

	// ListByWedding 查询某个婚礼下用户的全部条目
	ListByWedding(ctx context.Context, userId, weddingId int64) ([]*model.CartItem, error)

	Update(ctx context.Context, item *model.CartItem) error

	Delete(ctx context.Context, id int64) error

	// SummaryByWedding 汇总某个婚礼的购物车（条目数、合计、状态分布）
	SummaryByWedding(ctx context.Context, userId, weddingId int64) (*CartSummary, error)
}

// ==================== 宾客 Repository ====================

// GuestStats 宾客统计
type GuestStats struct {
	Total           int `json:"total"`            // 总数
	Confirmed       int `json:"confirmed"`        // 已确认
	Declined        int `json:"declined"`         // 已婉拒
	Pending         int `json:"pending"`          // 待回复
	InvitationsSent int `json:"invitations_sent"` // 已发邀请数
}

// IGuestRepository 宾客数据访问接口
type IGuestRepository interface {
	Create(ctx context.Context, guest *model.Guest) error

	// GetByIdForUser 查询归属指定用户的宾客
	GetByIdForUser(ctx context.Context, id, userId int64) (*model.Guest, error)

	// ListByWedding 查询某个婚礼下的全部宾客
	ListByWedding(ctx context.Context, userId, weddingId int64) ([]*model.Guest, error)

	Update(ctx context.Context, guest *model.Guest) error

	Delete(ctx context.Context, id int64) error

	// StatsByWedding 统计某个婚礼的宾客出席情况
	StatsByWedding(ctx context.Context, userId, weddingId int64) (*GuestStats, error)
}
