package service

import (
	"context"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/consts"
	"WeddingServer/model"
	"WeddingServer/pkg/logger"
)

// weddingServiceImpl 婚礼项目服务实现
type weddingServiceImpl struct {
	weddingRepo repository.IWeddingRepository
}

// NewWeddingService 创建婚礼服务实例
func NewWeddingService(weddingRepo repository.IWeddingRepository) IWeddingService {
	return &weddingServiceImpl{weddingRepo: weddingRepo}
}

// Create 创建婚礼项目
func (s *weddingServiceImpl) Create(ctx context.Context, userId int64, req *dto.CreateWeddingRequest) (*dto.WeddingItem, error) {
	wedding := &model.Wedding{
		UserId:        userId,
		Name:          req.Name,
		City:          req.City,
		Date:          req.Date,
		IsDateFixed:   req.IsDateFixed,
		Duration:      2,
		Events:        req.Events,
		Categories:    req.Categories,
		Budget:        req.Budget,
		FamilyDetails: req.FamilyDetails,
		Status:        model.WeddingStatusPlanning,
	}
	if req.Duration > 0 {
		wedding.Duration = req.Duration
	}
	if req.EstimatedGuests > 0 {
		wedding.EstimatedGuests = req.EstimatedGuests
	} else {
		wedding.EstimatedGuests = 100
	}

	if err := s.weddingRepo.Create(ctx, wedding); err != nil {
		return nil, mapRepoError(err, consts.CodeWeddingNotFound, consts.CodeParamError)
	}

	logger.Info(ctx, "婚礼项目已创建",
		logger.Int64("wedding_id", wedding.Id),
		logger.Int64("user_id", userId),
		logger.String("city", wedding.City))
	return dto.NewWeddingItem(wedding), nil
}

// List 查询用户的全部婚礼项目
func (s *weddingServiceImpl) List(ctx context.Context, userId int64) ([]*dto.WeddingItem, error) {
	weddings, err := s.weddingRepo.ListByUser(ctx, userId)
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}
	return dto.NewWeddingItems(weddings), nil
}

// Get 查询单个婚礼项目，越权访问等同不存在
func (s *weddingServiceImpl) Get(ctx context.Context, userId, weddingId int64) (*dto.WeddingItem, error) {
	wedding, err := s.weddingRepo.GetByIdForUser(ctx, weddingId, userId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeWeddingNotFound, consts.CodeParamError)
	}
	return dto.NewWeddingItem(wedding), nil
}

// Update 更新婚礼项目
func (s *weddingServiceImpl) Update(ctx context.Context, userId, weddingId int64, req *dto.UpdateWeddingRequest) (*dto.WeddingItem, error) {
	wedding, err := s.weddingRepo.GetByIdForUser(ctx, weddingId, userId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeWeddingNotFound, consts.CodeParamError)
	}

	if req.Name != nil {
		wedding.Name = *req.Name
	}
	if req.City != nil {
		wedding.City = *req.City
	}
	if req.Date != nil {
		wedding.Date = *req.Date
	}
	if req.IsDateFixed != nil {
		wedding.IsDateFixed = *req.IsDateFixed
	}
	if req.Duration != nil {
		wedding.Duration = *req.Duration
	}
	if req.Events != nil {
		wedding.Events = req.Events
	}
	if req.Categories != nil {
		wedding.Categories = req.Categories
	}
	if req.EstimatedGuests != nil {
		wedding.EstimatedGuests = *req.EstimatedGuests
	}
	if req.ActualGuests != nil {
		wedding.ActualGuests = req.ActualGuests
	}
	if req.Budget != nil {
		wedding.Budget = *req.Budget
	}
	if req.Spent != nil {
		wedding.Spent = *req.Spent
	}
	if req.Status != nil {
		wedding.Status = *req.Status
	}
	if req.FamilyDetails != nil {
		wedding.FamilyDetails = req.FamilyDetails
	}

	if err := s.weddingRepo.Update(ctx, wedding); err != nil {
		return nil, mapRepoError(err, consts.CodeWeddingNotFound, consts.CodeParamError)
	}
	return dto.NewWeddingItem(wedding), nil
}

// Delete 删除婚礼项目
func (s *weddingServiceImpl) Delete(ctx context.Context, userId, weddingId int64) error {
	wedding, err := s.weddingRepo.GetByIdForUser(ctx, weddingId, userId)
	if err != nil {
		return mapRepoError(err, consts.CodeWeddingNotFound, consts.CodeParamError)
	}
	if err := s.weddingRepo.Delete(ctx, wedding.Id); err != nil {
		return mapRepoError(err, consts.CodeWeddingNotFound, consts.CodeParamError)
	}
	logger.Info(ctx, "婚礼项目已删除",
		logger.Int64("wedding_id", weddingId),
		logger.Int64("user_id", userId))
	return nil
}
