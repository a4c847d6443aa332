package service

import (
	"context"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/consts"
	"WeddingServer/pkg/logger"
)

// userServiceImpl 用户资料服务实现
type userServiceImpl struct {
	userRepo repository.IUserRepository
}

// NewUserService 创建用户服务实例
func NewUserService(userRepo repository.IUserRepository) IUserService {
	return &userServiceImpl{userRepo: userRepo}
}

// GetProfile 获取个人资料
func (s *userServiceImpl) GetProfile(ctx context.Context, userId int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetById(ctx, userId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeUserNotFound, consts.CodeDuplicatePhone)
	}
	return dto.NewUserInfo(user), nil
}

// GetByPhone 按手机号查询用户，停用用户等同不存在。
// 显式查询接口，未命中按 404 报手机号未注册，不复用身份解析场景的 401 错误码。
func (s *userServiceImpl) GetByPhone(ctx context.Context, phone string) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, mapRepoError(err, consts.CodePhoneNotFound, consts.CodeDuplicatePhone)
	}
	if !user.IsActive {
		return nil, NewBizError(consts.CodePhoneNotFound)
	}
	return dto.NewUserInfo(user), nil
}

// UpdateProfile 更新个人资料。
// 手机号和 firebase_uid 是身份字段，不在这里改。
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userId int64, req *dto.UpdateProfileRequest) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetById(ctx, userId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeUserNotFound, consts.CodeDuplicatePhone)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		if *req.Email == "" {
			user.Email = nil
		} else {
			user.Email = req.Email
		}
	}
	if req.Locality != nil {
		user.Locality = *req.Locality
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, mapRepoError(err, consts.CodeUserNotFound, consts.CodeDuplicateEmail)
	}
	return dto.NewUserInfo(user), nil
}

// Deactivate 停用账号
func (s *userServiceImpl) Deactivate(ctx context.Context, userId int64) error {
	if err := s.userRepo.Deactivate(ctx, userId); err != nil {
		return mapRepoError(err, consts.CodeUserNotFound, consts.CodeDuplicatePhone)
	}
	logger.Info(ctx, "账号已停用", logger.Int64("user_id", userId))
	return nil
}
