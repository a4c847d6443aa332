package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/consts"
	"WeddingServer/model"
	"WeddingServer/pkg/logger"
)

// cartServiceImpl 预订清单服务实现
type cartServiceImpl struct {
	cartRepo    repository.ICartRepository
	weddingRepo repository.IWeddingRepository
	vendorRepo  repository.IVendorRepository
	node        *snowflake.Node // 预订凭证号发号器
}

// NewCartService 创建预订清单服务实例
func NewCartService(cartRepo repository.ICartRepository, weddingRepo repository.IWeddingRepository, vendorRepo repository.IVendorRepository, node *snowflake.Node) ICartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		weddingRepo: weddingRepo,
		vendorRepo:  vendorRepo,
		node:        node,
	}
}

// Create 加入预订清单。
// 婚礼必须归属当前用户，商家必须真实存在。
func (s *cartServiceImpl) Create(ctx context.Context, userId int64, req *dto.CreateCartItemRequest) (*dto.CartItemView, error) {
	if _, err := s.weddingRepo.GetByIdForUser(ctx, req.WeddingId, userId); err != nil {
		return nil, mapRepoError(err, consts.CodeWeddingNotFound, consts.CodeParamError)
	}
	if _, err := s.vendorRepo.GetById(ctx, req.VendorId); err != nil {
		return nil, mapRepoError(err, consts.CodeVendorNotFound, consts.CodeParamError)
	}

	item := &model.CartItem{
		UserId:      userId,
		WeddingId:   req.WeddingId,
		VendorId:    req.VendorId,
		Category:    req.Category,
		Price:       req.Price,
		BookingDate: req.BookingDate,
		Status:      model.CartStatusWishlisted,
		Notes:       req.Notes,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, mapRepoError(err, consts.CodeCartItemNotFound, consts.CodeParamError)
	}

	logger.Info(ctx, "商家已加入预订清单",
		logger.Int64("cart_item_id", item.Id),
		logger.Int64("wedding_id", req.WeddingId),
		logger.Int64("vendor_id", req.VendorId))
	return dto.NewCartItemView(item), nil
}

// List 查询某个婚礼的预订清单
func (s *cartServiceImpl) List(ctx context.Context, userId, weddingId int64) ([]*dto.CartItemView, error) {
	items, err := s.cartRepo.ListByWedding(ctx, userId, weddingId)
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}
	return dto.NewCartItemViews(items), nil
}

// Update 更新清单条目。
// 状态第一次推进到 booked 时生成预订凭证号，已有凭证号的不重发。
func (s *cartServiceImpl) Update(ctx context.Context, userId, itemId int64, req *dto.UpdateCartItemRequest) (*dto.CartItemView, error) {
	item, err := s.cartRepo.GetByIdForUser(ctx, itemId, userId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeCartItemNotFound, consts.CodeParamError)
	}

	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.BookingDate != nil {
		item.BookingDate = *req.BookingDate
	}
	if req.VisitDate != nil {
		item.VisitDate = req.VisitDate
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.Status != nil {
		item.Status = *req.Status
		if *req.Status == model.CartStatusBooked && item.BookingNo == "" {
			item.BookingNo = fmt.Sprintf("BK%s", s.node.Generate().Base36())
		}
	}

	if err := s.cartRepo.Update(ctx, item); err != nil {
		return nil, mapRepoError(err, consts.CodeCartItemNotFound, consts.CodeParamError)
	}

	if item.Status == model.CartStatusBooked {
		logger.Info(ctx, "清单条目已预订",
			logger.Int64("cart_item_id", item.Id),
			logger.String("booking_no", item.BookingNo))
	}
	return dto.NewCartItemView(item), nil
}

// Delete 从清单移除条目
func (s *cartServiceImpl) Delete(ctx context.Context, userId, itemId int64) error {
	item, err := s.cartRepo.GetByIdForUser(ctx, itemId, userId)
	if err != nil {
		return mapRepoError(err, consts.CodeCartItemNotFound, consts.CodeParamError)
	}
	if err := s.cartRepo.Delete(ctx, item.Id); err != nil {
		return mapRepoError(err, consts.CodeCartItemNotFound, consts.CodeParamError)
	}
	return nil
}

// Summary 汇总某个婚礼的预订清单
func (s *cartServiceImpl) Summary(ctx context.Context, userId, weddingId int64) (*dto.CartSummaryResponse, error) {
	if _, err := s.weddingRepo.GetByIdForUser(ctx, weddingId, userId); err != nil {
		return nil, mapRepoError(err, consts.CodeWeddingNotFound, consts.CodeParamError)
	}
	summary, err := s.cartRepo.SummaryByWedding(ctx, userId, weddingId)
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}
	return dto.NewCartSummaryResponse(summary), nil
}
