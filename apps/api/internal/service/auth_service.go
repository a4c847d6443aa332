package service

import (
	"context"
	"errors"

	"WeddingServer/apps/api/internal/auth"
	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/consts"
	"WeddingServer/model"
	"WeddingServer/pkg/logger"
)

// authServiceImpl 认证与身份合并服务实现
type authServiceImpl struct {
	userRepo repository.IUserRepository
	issuer   *auth.TokenIssuer
}

// NewAuthService 创建认证服务实例
func NewAuthService(userRepo repository.IUserRepository, issuer *auth.TokenIssuer) IAuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// FirebaseSignup 用 Firebase 身份注册或补全资料
func (s *authServiceImpl) FirebaseSignup(ctx context.Context, ident *auth.Identity, req *dto.FirebaseSignupRequest) (*dto.SignupResponse, error) {
	if ident == nil || ident.Kind != auth.KindFirebase {
		// 历史 JWT 不携带手机号，无法走注册合并
		return nil, NewBizError(consts.CodeInvalidCredential)
	}

	var merged *model.User

	// 查找、合并、落库必须在一个事务里：
	// 并发的两次注册只能有一次建新行，另一次要么合并要么撞唯一键。
	err := s.userRepo.Transaction(ctx, func(txRepo repository.IUserRepository) error {
		// 1. 按手机号找既有记录
		existing, err := txRepo.GetByPhone(ctx, ident.Phone)
		if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
			return WrapBizError(consts.CodeInternalError, err)
		}

		// 2. UID 不能已经绑在别的手机号上
		byUid, err := txRepo.GetByFirebaseUid(ctx, ident.FirebaseUid)
		if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
			return WrapBizError(consts.CodeInternalError, err)
		}
		if byUid != nil && (existing == nil || byUid.Id != existing.Id) {
			logger.Warn(ctx, "Firebase UID 已绑定到其他手机号",
				logger.String("uid", ident.FirebaseUid),
				logger.Int64("bound_user_id", byUid.Id),
			)
			return NewBizError(consts.CodeDuplicatePhone)
		}

		if existing == nil {
			// 3a. 新用户：直接创建
			user := &model.User{
				PhoneNumber: ident.Phone,
				FirebaseUid: &ident.FirebaseUid,
				Name:        req.Name,
				Locality:    req.Locality,
				IsActive:    true,
				IsVerified:  true, // Firebase 已完成手机号验证
			}
			if req.Email != "" {
				user.Email = &req.Email
			}
			// 事务内已确认手机号和 UID 都没有归属，此处撞到唯一键
			// 只可能是两个注册请求在抢同一个新手机号，输家报手机号冲突
			if err := txRepo.Create(ctx, user); err != nil {
				return mapRepoError(err, consts.CodeUserNotFound, consts.CodeDuplicatePhone)
			}
			merged = user
			return nil
		}

		// 3b. 老用户：合并资料。请求的非空字段覆盖，空字段保留原值；
		// firebase_uid 无条件绑定到当前凭证。
		if req.Name != "" {
			existing.Name = req.Name
		}
		if req.Email != "" {
			existing.Email = &req.Email
		}
		if req.Locality != "" {
			existing.Locality = req.Locality
		}
		existing.FirebaseUid = &ident.FirebaseUid
		existing.IsVerified = true

		if err := txRepo.Update(ctx, existing); err != nil {
			return mapRepoError(err, consts.CodeUserNotFound, consts.CodeDuplicateEmail)
		}
		merged = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. 注册即登录：顺带签发访问令牌
	tokenResp, err := s.issueFor(merged)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "用户注册/合并完成",
		logger.Int64("user_id", merged.Id),
		logger.String("kind", string(ident.Kind)),
	)

	return &dto.SignupResponse{
		User:  dto.NewUserInfo(merged),
		Token: tokenResp,
	}, nil
}

// IssueToken 为已注册用户签发访问令牌。
// 身份对应的用户不存在时返回"请先注册"，客户端据此跳注册页。
func (s *authServiceImpl) IssueToken(ctx context.Context, ident *auth.Identity) (*dto.TokenResponse, error) {
	user, err := s.lookup(ctx, ident)
	if err != nil {
		if CodeOf(err) == consts.CodeUserNotFound {
			return nil, NewBizError(consts.CodeSignupRequired)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, NewBizError(consts.CodeUserInactive)
	}
	return s.issueFor(user)
}

// ResolveUser 把校验通过的身份解析成用户实体
func (s *authServiceImpl) ResolveUser(ctx context.Context, ident *auth.Identity) (*model.User, error) {
	user, err := s.lookup(ctx, ident)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, NewBizError(consts.CodeUserInactive)
	}
	return user, nil
}

// lookup 按身份来源选择查询维度
func (s *authServiceImpl) lookup(ctx context.Context, ident *auth.Identity) (*model.User, error) {
	if ident == nil {
		return nil, NewBizError(consts.CodeUnauthorized)
	}

	var (
		user *model.User
		err  error
	)
	switch ident.Kind {
	case auth.KindFirebase:
		user, err = s.userRepo.GetByPhone(ctx, ident.Phone)
	case auth.KindLegacy:
		user, err = s.userRepo.GetById(ctx, ident.UserId)
	default:
		return nil, NewBizError(consts.CodeUnauthorized)
	}
	if err != nil {
		return nil, mapRepoError(err, consts.CodeUserNotFound, consts.CodeDuplicatePhone)
	}
	return user, nil
}

// issueFor 为用户签发令牌并组响应
func (s *authServiceImpl) issueFor(user *model.User) (*dto.TokenResponse, error) {
	token, err := s.issuer.Issue(user.Id)
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.issuer.TTL().Seconds()),
	}, nil
}
