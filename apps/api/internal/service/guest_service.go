package service

import (
	"context"
	"time"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/consts"
	"WeddingServer/model"
	"WeddingServer/mq"
	"WeddingServer/pkg/async"
	"WeddingServer/pkg/logger"
	"WeddingServer/pkg/mail"
)

// guestServiceImpl 宾客服务实现
type guestServiceImpl struct {
	guestRepo   repository.IGuestRepository
	weddingRepo repository.IWeddingRepository
	userRepo    repository.IUserRepository
}

// NewGuestService 创建宾客服务实例
func NewGuestService(guestRepo repository.IGuestRepository, weddingRepo repository.IWeddingRepository, userRepo repository.IUserRepository) IGuestService {
	return &guestServiceImpl{
		guestRepo:   guestRepo,
		weddingRepo: weddingRepo,
		userRepo:    userRepo,
	}
}

// Create 添加宾客，婚礼必须归属当前用户
func (s *guestServiceImpl) Create(ctx context.Context, userId int64, req *dto.CreateGuestRequest) (*dto.GuestItem, error) {
	if _, err := s.weddingRepo.GetByIdForUser(ctx, req.WeddingId, userId); err != nil {
		return nil, mapRepoError(err, consts.CodeWeddingNotFound, consts.CodeParamError)
	}

	guest := &model.Guest{
		UserId:             userId,
		WeddingId:          req.WeddingId,
		Name:               req.Name,
		PhoneNumber:        req.PhoneNumber,
		Email:              req.Email,
		Relation:           req.Relation,
		Category:           "Family",
		ConfirmationStatus: model.GuestStatusPending,
		Notes:              req.Notes,
	}
	if req.Category != "" {
		guest.Category = req.Category
	}
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, mapRepoError(err, consts.CodeGuestNotFound, consts.CodeParamError)
	}
	return dto.NewGuestItem(guest), nil
}

// List 查询某个婚礼的全部宾客
func (s *guestServiceImpl) List(ctx context.Context, userId, weddingId int64) ([]*dto.GuestItem, error) {
	guests, err := s.guestRepo.ListByWedding(ctx, userId, weddingId)
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}
	return dto.NewGuestItems(guests), nil
}

// Update 更新宾客信息。
// 出席状态变化时记录响应时间。
func (s *guestServiceImpl) Update(ctx context.Context, userId, guestId int64, req *dto.UpdateGuestRequest) (*dto.GuestItem, error) {
	guest, err := s.guestRepo.GetByIdForUser(ctx, guestId, userId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeGuestNotFound, consts.CodeParamError)
	}

	if req.Name != nil {
		guest.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		guest.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		guest.Email = *req.Email
	}
	if req.Relation != nil {
		guest.Relation = *req.Relation
	}
	if req.Category != nil {
		guest.Category = *req.Category
	}
	if req.Notes != nil {
		guest.Notes = *req.Notes
	}
	if req.ConfirmationStatus != nil && *req.ConfirmationStatus != guest.ConfirmationStatus {
		now := time.Now()
		guest.ConfirmationStatus = *req.ConfirmationStatus
		guest.ResponseAt = &now
	}

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, mapRepoError(err, consts.CodeGuestNotFound, consts.CodeParamError)
	}
	return dto.NewGuestItem(guest), nil
}

// Delete 移除宾客
func (s *guestServiceImpl) Delete(ctx context.Context, userId, guestId int64) error {
	guest, err := s.guestRepo.GetByIdForUser(ctx, guestId, userId)
	if err != nil {
		return mapRepoError(err, consts.CodeGuestNotFound, consts.CodeParamError)
	}
	return mapRepoError(s.guestRepo.Delete(ctx, guest.Id), consts.CodeGuestNotFound, consts.CodeParamError)
}

// Stats 统计某个婚礼的宾客出席情况
func (s *guestServiceImpl) Stats(ctx context.Context, userId, weddingId int64) (*dto.GuestStatsResponse, error) {
	if _, err := s.weddingRepo.GetByIdForUser(ctx, weddingId, userId); err != nil {
		return nil, mapRepoError(err, consts.CodeWeddingNotFound, consts.CodeParamError)
	}
	stats, err := s.guestRepo.StatsByWedding(ctx, userId, weddingId)
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}
	return dto.NewGuestStatsResponse(stats), nil
}

// SendInvitation 给单个宾客发邀请。
// 没留邮箱的宾客视为参数错误；已发过的直接返回当前状态，不重复打扰。
func (s *guestServiceImpl) SendInvitation(ctx context.Context, userId, guestId int64) (*dto.GuestItem, error) {
	guest, err := s.guestRepo.GetByIdForUser(ctx, guestId, userId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeGuestNotFound, consts.CodeParamError)
	}
	if guest.Email == "" {
		return nil, NewBizError(consts.CodeParamError)
	}
	if guest.InvitationSent {
		return dto.NewGuestItem(guest), nil
	}

	wedding, err := s.weddingRepo.GetByIdForUser(ctx, guest.WeddingId, userId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeWeddingNotFound, consts.CodeParamError)
	}
	host, err := s.userRepo.GetById(ctx, userId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeUserNotFound, consts.CodeParamError)
	}

	if err := s.dispatchInvitation(ctx, wedding, host, guest); err != nil {
		return nil, err
	}
	return dto.NewGuestItem(guest), nil
}

// SendInvitations 给未发送过邀请且留有邮箱的宾客批量发邀请
func (s *guestServiceImpl) SendInvitations(ctx context.Context, userId, weddingId int64) (*dto.SendInvitationResponse, error) {
	wedding, err := s.weddingRepo.GetByIdForUser(ctx, weddingId, userId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeWeddingNotFound, consts.CodeParamError)
	}
	host, err := s.userRepo.GetById(ctx, userId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeUserNotFound, consts.CodeParamError)
	}
	guests, err := s.guestRepo.ListByWedding(ctx, userId, weddingId)
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}

	queued := 0
	for _, guest := range guests {
		if guest.InvitationSent || guest.Email == "" {
			continue
		}
		if err := s.dispatchInvitation(ctx, wedding, host, guest); err != nil {
			logger.Error(ctx, "标记邀请已发送失败",
				logger.Int64("guest_id", guest.Id),
				logger.ErrorField(err))
			continue
		}
		queued++
	}

	logger.Info(ctx, "宾客邀请已发送",
		logger.Int64("wedding_id", weddingId),
		logger.Int("queued", queued))
	return &dto.SendInvitationResponse{Queued: queued}, nil
}

// dispatchInvitation 发出一封邀请并标记宾客已发送。
// 1. 事件进 Kafka，worker 消费后发邮件
// 2. Kafka 不可用时降级为异步直发
// 3. 入队成功即标记已发送，避免重复打扰
func (s *guestServiceImpl) dispatchInvitation(ctx context.Context, wedding *model.Wedding, host *model.User, guest *model.Guest) error {
	event := mq.BuildInvitationEvent(
		wedding.Id, guest.Id,
		guest.Email, guest.Name,
		wedding.Name, wedding.City, wedding.Date.Format("2006-01-02"), host.Name,
	).WithContext(ctx)

	if err := mq.SendNotifyEvent(ctx, event); err != nil {
		logger.Warn(ctx, "邀请入队失败 降级为直发",
			logger.Int64("guest_id", guest.Id),
			logger.ErrorField(err))
		s.sendDirect(ctx, event)
	}

	now := time.Now()
	guest.InvitationSent = true
	guest.InvitationSentAt = &now
	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return mapRepoError(err, consts.CodeGuestNotFound, consts.CodeParamError)
	}
	return nil
}

// sendDirect Kafka 不可用时的兜底：异步直发邮件
func (s *guestServiceImpl) sendDirect(ctx context.Context, event mq.NotifyEvent) {
	async.RunSafe(ctx, func(taskCtx context.Context) {
		subject, body, err := mq.RenderInvitation(event)
		if err != nil {
			logger.Error(taskCtx, "邀请邮件渲染失败",
				logger.Int64("guest_id", event.GuestId),
				logger.ErrorField(err))
			return
		}
		if err := mail.Global().Send(taskCtx, event.ToEmail, subject, body); err != nil {
			logger.Error(taskCtx, "邀请邮件直发失败",
				logger.Int64("guest_id", event.GuestId),
				logger.String("to", event.ToEmail),
				logger.ErrorField(err))
		}
	}, 30*time.Second)
}
