package service

import (
	"context"
	"io"

	"WeddingServer/apps/api/internal/auth"
	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/model"
)

// ==================== 认证服务 ====================

// IAuthService 认证与身份合并服务接口
type IAuthService interface {
	// FirebaseSignup 用 Firebase 身份注册或补全资料。
	// 手机号已有记录时做合并：请求里的非空字段覆盖，空字段保留原值，
	// firebase_uid 无条件绑定，手机号标记已验证。整个合并在一个事务里。
	FirebaseSignup(ctx context.Context, ident *auth.Identity, req *dto.FirebaseSignupRequest) (*dto.SignupResponse, error)

	// IssueToken 为已注册用户签发本服务的访问令牌
	IssueToken(ctx context.Context, ident *auth.Identity) (*dto.TokenResponse, error)

	// ResolveUser 把校验通过的身份解析成用户实体，停用用户一律拒绝
	ResolveUser(ctx context.Context, ident *auth.Identity) (*model.User, error)
}

// ==================== 用户服务 ====================

// IUserService 用户资料服务接口
type IUserService interface {
	GetProfile(ctx context.Context, userId int64) (*dto.UserInfo, error)

	// GetByPhone 按手机号查询用户（婚礼协作中定位亲友）
	GetByPhone(ctx context.Context, phone string) (*dto.UserInfo, error)

	UpdateProfile(ctx context.Context, userId int64, req *dto.UpdateProfileRequest) (*dto.UserInfo, error)

	// Deactivate 停用账号，所有凭证即刻失效
	Deactivate(ctx context.Context, userId int64) error
}

// ==================== 亲友关系服务 ====================

// IRelationshipService 亲友关系服务接口
type IRelationshipService interface {
	// Create 发起关系请求，7 天内对方未响应则过期
	Create(ctx context.Context, userId int64, req *dto.CreateRelationshipRequest) (*dto.RelationshipItem, error)

	// List 查询自己发起的全部关系
	List(ctx context.Context, userId int64) ([]*dto.RelationshipItem, error)

	// ListPending 查询发给自己的、未过期的待处理请求
	ListPending(ctx context.Context, userId int64) ([]*dto.RelationshipItem, error)

	// Respond 接受或拒绝发给自己的请求，仅接收方可操作
	Respond(ctx context.Context, userId, relationshipId int64, accept bool) (*dto.RelationshipItem, error)

	// Update 更新关系元数据，仅发起方可操作
	Update(ctx context.Context, userId, relationshipId int64, req *dto.UpdateRelationshipRequest) (*dto.RelationshipItem, error)

	// Delete 删除关系，仅发起方可操作
	Delete(ctx context.Context, userId, relationshipId int64) error
}

// ==================== 婚礼服务 ====================

// IWeddingService 婚礼项目服务接口
type IWeddingService interface {
	Create(ctx context.Context, userId int64, req *dto.CreateWeddingRequest) (*dto.WeddingItem, error)

	List(ctx context.Context, userId int64) ([]*dto.WeddingItem, error)

	Get(ctx context.Context, userId, weddingId int64) (*dto.WeddingItem, error)

	Update(ctx context.Context, userId, weddingId int64, req *dto.UpdateWeddingRequest) (*dto.WeddingItem, error)

	Delete(ctx context.Context, userId, weddingId int64) error
}

// ==================== 商家服务 ====================

// IVendorService 商家服务接口
type IVendorService interface {
	List(ctx context.Context, req *dto.ListVendorsRequest) (*dto.ListVendorsResponse, error)

	// Categories 查询上架商家覆盖的全部类目
	Categories(ctx context.Context) ([]string, error)

	// Localities 查询上架商家覆盖的全部城市
	Localities(ctx context.Context) ([]string, error)

	Get(ctx context.Context, vendorId int64) (*dto.VendorItem, error)

	Create(ctx context.Context, req *dto.CreateVendorRequest) (*dto.VendorItem, error)

	Update(ctx context.Context, vendorId int64, req *dto.UpdateVendorRequest) (*dto.VendorItem, error)

	// UploadImage 上传商家图片到对象存储并追加到图片列表
	UploadImage(ctx context.Context, vendorId int64, reader io.Reader, fileSize int64, fileName string) (*dto.UploadImageResponse, error)
}

// ==================== 套餐服务 ====================

// IPackageService 套餐服务接口
type IPackageService interface {
	List(ctx context.Context) ([]*dto.PackageItem, error)

	// Popular 查询热门套餐
	Popular(ctx context.Context) ([]*dto.PackageItem, error)

	Get(ctx context.Context, packageId int64) (*dto.PackageItem, error)
}

// ==================== 预订清单服务 ====================

// ICartService 预订清单服务接口
type ICartService interface {
	Create(ctx context.Context, userId int64, req *dto.CreateCartItemRequest) (*dto.CartItemView, error)

	List(ctx context.Context, userId, weddingId int64) ([]*dto.CartItemView, error)

	// Update 更新条目，状态推进到 booked 时生成预订凭证号
	Update(ctx context.Context, userId, itemId int64, req *dto.UpdateCartItemRequest) (*dto.CartItemView, error)

	Delete(ctx context.Context, userId, itemId int64) error

	Summary(ctx context.Context, userId, weddingId int64) (*dto.CartSummaryResponse, error)
}

// ==================== 宾客服务 ====================

// IGuestService 宾客服务接口
type IGuestService interface {
	Create(ctx context.Context, userId int64, req *dto.CreateGuestRequest) (*dto.GuestItem, error)

	List(ctx context.Context, userId, weddingId int64) ([]*dto.GuestItem, error)

	Update(ctx context.Context, userId, guestId int64, req *dto.UpdateGuestRequest) (*dto.GuestItem, error)

	Delete(ctx context.Context, userId, guestId int64) error

	Stats(ctx context.Context, userId, weddingId int64) (*dto.GuestStatsResponse, error)

	// SendInvitation 给单个宾客发邀请邮件（经 Kafka 异步发送）
	SendInvitation(ctx context.Context, userId, guestId int64) (*dto.GuestItem, error)

	// SendInvitations 给婚礼下未发送过邀请且有邮箱的宾客批量发邀请
	SendInvitations(ctx context.Context, userId, weddingId int64) (*dto.SendInvitationResponse, error)
}

// ==================== 评论代理服务 ====================

// IReviewService Google 评论代理服务接口
type IReviewService interface {
	// GetReviews 查询商家的 Google 评论，上游不可用时返回内置示例
	GetReviews(ctx context.Context) (*dto.ReviewsResponse, error)
}
