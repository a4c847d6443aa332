package service

import (
	"context"
	"errors"
	"time"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/consts"
	"WeddingServer/model"
	"WeddingServer/mq"
	"WeddingServer/pkg/async"
	"WeddingServer/pkg/logger"
)

// relationshipServiceImpl 亲友关系服务实现
type relationshipServiceImpl struct {
	relRepo  repository.IRelationshipRepository
	userRepo repository.IUserRepository
}

// NewRelationshipService 创建亲友关系服务实例
func NewRelationshipService(relRepo repository.IRelationshipRepository, userRepo repository.IUserRepository) IRelationshipService {
	return &relationshipServiceImpl{relRepo: relRepo, userRepo: userRepo}
}

// Create 发起关系请求。
// 1. 校验关系类型和接收方
// 2. 同一（发起方，接收方，类型）只允许一条
// 3. 初始状态 pending，7 天后自动过期
func (s *relationshipServiceImpl) Create(ctx context.Context, userId int64, req *dto.CreateRelationshipRequest) (*dto.RelationshipItem, error) {
	if !model.IsValidRelationshipType(req.Type) {
		return nil, NewBizError(consts.CodeParamError)
	}
	if req.RelatedUserId == userId {
		return nil, NewBizError(consts.CodeParamError)
	}

	// 接收方必须是真实存在的用户
	related, err := s.userRepo.GetById(ctx, req.RelatedUserId)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, NewBizError(consts.CodeRelatedUserNotFound)
		}
		return nil, WrapBizError(consts.CodeInternalError, err)
	}
	if !related.IsActive {
		return nil, NewBizError(consts.CodeRelatedUserNotFound)
	}

	// 唯一三元组检查，数据库唯一键兜底
	if _, err := s.relRepo.GetByTriple(ctx, userId, req.RelatedUserId, req.Type); err == nil {
		return nil, NewBizError(consts.CodeDuplicateRelationship)
	} else if !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}

	now := time.Now()
	expiresAt := now.Add(model.PendingExpireDuration)
	rel := &model.Relationship{
		UserId:        userId,
		RelatedUserId: req.RelatedUserId,
		Type:          req.Type,
		Name:          req.Name,
		PrivacyLevel:  model.PrivacyLevelPrivate,
		Status:        model.RelationshipStatusPending,
		ExpiresAt:     &expiresAt,
	}
	if req.IsPrimary != nil {
		rel.IsPrimary = *req.IsPrimary
	}
	if req.PrivacyLevel != "" {
		rel.PrivacyLevel = req.PrivacyLevel
	}

	if err := s.relRepo.Create(ctx, rel); err != nil {
		return nil, mapRepoError(err, consts.CodeRelatedUserNotFound, consts.CodeDuplicateRelationship)
	}

	s.notifyTarget(ctx, rel, related)

	logger.Info(ctx, "关系请求已创建",
		logger.Int64("relationship_id", rel.Id),
		logger.Int64("user_id", userId),
		logger.Int64("related_user_id", req.RelatedUserId),
		logger.String("type", req.Type))
	return dto.NewRelationshipItem(rel), nil
}

// notifyTarget 给接收方发关系请求通知。
// 纯粹的尽力而为：接收方没邮箱就跳过，入队失败只记日志，不影响请求创建。
func (s *relationshipServiceImpl) notifyTarget(ctx context.Context, rel *model.Relationship, related *model.User) {
	if related.Email == nil || *related.Email == "" {
		return
	}
	requester, err := s.userRepo.GetById(ctx, rel.UserId)
	if err != nil {
		logger.Warn(ctx, "查询关系发起方失败 跳过通知",
			logger.Int64("relationship_id", rel.Id),
			logger.ErrorField(err))
		return
	}

	event := mq.BuildRelationshipRequestEvent(
		rel.Id, *related.Email, related.Name, requester.Name, rel.Name,
	).WithContext(ctx)

	async.RunSafe(ctx, func(taskCtx context.Context) {
		if err := mq.SendNotifyEvent(taskCtx, event); err != nil {
			logger.Warn(taskCtx, "关系请求通知入队失败",
				logger.Int64("relationship_id", event.RelationshipId),
				logger.ErrorField(err))
		}
	}, 10*time.Second)
}

// List 查询自己发起的全部关系
func (s *relationshipServiceImpl) List(ctx context.Context, userId int64) ([]*dto.RelationshipItem, error) {
	rels, err := s.relRepo.ListByUser(ctx, userId)
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}
	return dto.NewRelationshipItems(rels), nil
}

// ListPending 查询发给自己的、未过期的待处理请求
func (s *relationshipServiceImpl) ListPending(ctx context.Context, userId int64) ([]*dto.RelationshipItem, error) {
	rels, err := s.relRepo.ListPendingForUser(ctx, userId, time.Now())
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}
	return dto.NewRelationshipItems(rels), nil
}

// Respond 接受或拒绝关系请求。
// 只有接收方能响应；非接收方查不到这条请求（不暴露他人关系）。
// 过期的请求既不能接受也不能拒绝。
func (s *relationshipServiceImpl) Respond(ctx context.Context, userId, relationshipId int64, accept bool) (*dto.RelationshipItem, error) {
	rel, err := s.relRepo.GetById(ctx, relationshipId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeRelationshipNotFound, consts.CodeDuplicateRelationship)
	}
	if rel.RelatedUserId != userId {
		return nil, NewBizError(consts.CodeRelationshipNotFound)
	}
	if rel.Status != model.RelationshipStatusPending {
		return nil, NewBizError(consts.CodeRelationshipNotFound)
	}
	if rel.IsExpired(time.Now()) {
		return nil, NewBizError(consts.CodeRelationshipExpired)
	}

	now := time.Now()
	if accept {
		rel.Status = model.RelationshipStatusAccepted
	} else {
		rel.Status = model.RelationshipStatusRejected
	}
	rel.RespondedAt = &now

	if err := s.relRepo.Update(ctx, rel); err != nil {
		return nil, mapRepoError(err, consts.CodeRelationshipNotFound, consts.CodeDuplicateRelationship)
	}

	logger.Info(ctx, "关系请求已响应",
		logger.Int64("relationship_id", rel.Id),
		logger.Int64("user_id", userId),
		logger.String("status", rel.Status))
	return dto.NewRelationshipItem(rel), nil
}

// Update 更新关系元数据，仅发起方可操作
func (s *relationshipServiceImpl) Update(ctx context.Context, userId, relationshipId int64, req *dto.UpdateRelationshipRequest) (*dto.RelationshipItem, error) {
	rel, err := s.getOwned(ctx, userId, relationshipId)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		rel.Name = *req.Name
	}
	if req.IsPrimary != nil {
		rel.IsPrimary = *req.IsPrimary
	}
	if req.PrivacyLevel != nil {
		rel.PrivacyLevel = *req.PrivacyLevel
	}

	if err := s.relRepo.Update(ctx, rel); err != nil {
		return nil, mapRepoError(err, consts.CodeRelationshipNotFound, consts.CodeDuplicateRelationship)
	}
	return dto.NewRelationshipItem(rel), nil
}

// Delete 删除关系，仅发起方可操作
func (s *relationshipServiceImpl) Delete(ctx context.Context, userId, relationshipId int64) error {
	rel, err := s.getOwned(ctx, userId, relationshipId)
	if err != nil {
		return err
	}
	if err := s.relRepo.Delete(ctx, rel.Id); err != nil {
		return mapRepoError(err, consts.CodeRelationshipNotFound, consts.CodeDuplicateRelationship)
	}
	logger.Info(ctx, "关系已删除",
		logger.Int64("relationship_id", rel.Id),
		logger.Int64("user_id", userId))
	return nil
}

// getOwned 查询发起方是自己的关系，别人的关系等同不存在
func (s *relationshipServiceImpl) getOwned(ctx context.Context, userId, relationshipId int64) (*model.Relationship, error) {
	rel, err := s.relRepo.GetById(ctx, relationshipId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeRelationshipNotFound, consts.CodeDuplicateRelationship)
	}
	if rel.UserId != userId {
		return nil, NewBizError(consts.CodeRelationshipNotFound)
	}
	return rel, nil
}
