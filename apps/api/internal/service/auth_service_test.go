package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"WeddingServer/apps/api/internal/auth"
	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/config"
	"WeddingServer/consts"
	"WeddingServer/model"
	"WeddingServer/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var svcLoggerOnce sync.Once

func initSvcTestLogger() {
	svcLoggerOnce.Do(func() {
		logger.ReplaceGlobal(zap.NewNop())
	})
}

// fakeUserRepo 可编程的用户仓储桩。
// 未设置的方法被调用视为用例编排错误，返回明显的错误。
type fakeUserRepo struct {
	repository.IUserRepository
	getByIdFn          func(ctx context.Context, id int64) (*model.User, error)
	getByPhoneFn       func(ctx context.Context, phone string) (*model.User, error)
	getByFirebaseUidFn func(ctx context.Context, uid string) (*model.User, error)
	createFn           func(ctx context.Context, user *model.User) error
	updateFn           func(ctx context.Context, user *model.User) error
	deactivateFn       func(ctx context.Context, id int64) error
}

var _ repository.IUserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) GetById(ctx context.Context, id int64) (*model.User, error) {
	if f.getByIdFn == nil {
		return nil, errors.New("unexpected GetById call")
	}
	return f.getByIdFn(ctx, id)
}

func (f *fakeUserRepo) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	if f.getByPhoneFn == nil {
		return nil, errors.New("unexpected GetByPhone call")
	}
	return f.getByPhoneFn(ctx, phone)
}

func (f *fakeUserRepo) GetByFirebaseUid(ctx context.Context, uid string) (*model.User, error) {
	if f.getByFirebaseUidFn == nil {
		return nil, errors.New("unexpected GetByFirebaseUid call")
	}
	return f.getByFirebaseUidFn(ctx, uid)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if f.createFn == nil {
		return errors.New("unexpected Create call")
	}
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	if f.updateFn == nil {
		return errors.New("unexpected Update call")
	}
	return f.updateFn(ctx, user)
}

func (f *fakeUserRepo) Deactivate(ctx context.Context, id int64) error {
	if f.deactivateFn == nil {
		return errors.New("unexpected Deactivate call")
	}
	return f.deactivateFn(ctx, id)
}

// Transaction 直接把自己作为事务内仓储传给 fn
func (f *fakeUserRepo) Transaction(ctx context.Context, fn func(txRepo repository.IUserRepository) error) error {
	return fn(f)
}

func newTestIssuer() *auth.TokenIssuer {
	cfg := config.DefaultAuthConfig()
	cfg.JWTSecret = "unit-test-secret"
	cfg.AccessTTL = time.Hour
	return auth.NewTokenIssuer(cfg)
}

func firebaseIdent(phone, uid string) *auth.Identity {
	return &auth.Identity{Kind: auth.KindFirebase, Phone: phone, FirebaseUid: uid}
}

func TestAuthService_FirebaseSignup(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	t.Run("new_user_created_verified", func(t *testing.T) {
		var created *model.User
		repo := &fakeUserRepo{
			getByPhoneFn: func(ctx context.Context, phone string) (*model.User, error) {
				return nil, repository.ErrRecordNotFound
			},
			getByFirebaseUidFn: func(ctx context.Context, uid string) (*model.User, error) {
				return nil, repository.ErrRecordNotFound
			},
			createFn: func(ctx context.Context, user *model.User) error {
				user.Id = 101
				created = user
				return nil
			},
		}
		svc := NewAuthService(repo, newTestIssuer())

		resp, err := svc.FirebaseSignup(ctx, firebaseIdent("+919812345678", "fb-uid-1"), &dto.FirebaseSignupRequest{
			Name:     "Priya",
			Email:    "priya@example.com",
			Locality: "Mumbai",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, "+919812345678", created.PhoneNumber)
		require.NotNil(t, created.FirebaseUid)
		assert.Equal(t, "fb-uid-1", *created.FirebaseUid)
		assert.True(t, created.IsActive)
		assert.True(t, created.IsVerified, "Firebase 已验证手机号，新用户应直接标记已验证")
		require.NotNil(t, created.Email)
		assert.Equal(t, "priya@example.com", *created.Email)

		require.NotNil(t, resp.Token)
		assert.Equal(t, "bearer", resp.Token.TokenType)
		assert.NotEmpty(t, resp.Token.AccessToken)
		require.NotNil(t, resp.User)
		assert.Equal(t, int64(101), resp.User.Id)
	})

	t.Run("existing_user_merged", func(t *testing.T) {
		oldEmail := "old@example.com"
		existing := &model.User{
			Id:          5,
			PhoneNumber: "+919812345678",
			Name:        "Old Name",
			Email:       &oldEmail,
			Locality:    "Pune",
			IsActive:    true,
		}
		var updated *model.User
		repo := &fakeUserRepo{
			getByPhoneFn: func(ctx context.Context, phone string) (*model.User, error) {
				return existing, nil
			},
			getByFirebaseUidFn: func(ctx context.Context, uid string) (*model.User, error) {
				return nil, repository.ErrRecordNotFound
			},
			updateFn: func(ctx context.Context, user *model.User) error {
				updated = user
				return nil
			},
		}
		svc := NewAuthService(repo, newTestIssuer())

		// 只传 name，email 和 locality 留空
		_, err := svc.FirebaseSignup(ctx, firebaseIdent("+919812345678", "fb-uid-2"), &dto.FirebaseSignupRequest{
			Name: "New Name",
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, "New Name", updated.Name)
		require.NotNil(t, updated.Email)
		assert.Equal(t, oldEmail, *updated.Email, "空字段不应覆盖既有资料")
		assert.Equal(t, "Pune", updated.Locality)
		require.NotNil(t, updated.FirebaseUid)
		assert.Equal(t, "fb-uid-2", *updated.FirebaseUid, "UID 应无条件绑定当前凭证")
		assert.True(t, updated.IsVerified)
	})

	t.Run("signup_race_loser_gets_phone_conflict", func(t *testing.T) {
		// 两个注册请求抢同一个新手机号：输家的 INSERT 撞手机号唯一键
		repo := &fakeUserRepo{
			getByPhoneFn: func(ctx context.Context, phone string) (*model.User, error) {
				return nil, repository.ErrRecordNotFound
			},
			getByFirebaseUidFn: func(ctx context.Context, uid string) (*model.User, error) {
				return nil, repository.ErrRecordNotFound
			},
			createFn: func(ctx context.Context, user *model.User) error {
				return repository.ErrDuplicateKey
			},
		}
		svc := NewAuthService(repo, newTestIssuer())

		_, err := svc.FirebaseSignup(ctx, firebaseIdent("+919812345678", "fb-uid-9"), &dto.FirebaseSignupRequest{Name: "Priya"})
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeDuplicatePhone), CodeOf(err))
	})

	t.Run("uid_bound_to_other_user", func(t *testing.T) {
		repo := &fakeUserRepo{
			getByPhoneFn: func(ctx context.Context, phone string) (*model.User, error) {
				return nil, repository.ErrRecordNotFound
			},
			getByFirebaseUidFn: func(ctx context.Context, uid string) (*model.User, error) {
				return &model.User{Id: 999, PhoneNumber: "+919800000000"}, nil
			},
		}
		svc := NewAuthService(repo, newTestIssuer())

		_, err := svc.FirebaseSignup(ctx, firebaseIdent("+919812345678", "fb-uid-3"), &dto.FirebaseSignupRequest{})
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeDuplicatePhone), CodeOf(err))
	})

	t.Run("legacy_identity_rejected", func(t *testing.T) {
		svc := NewAuthService(&fakeUserRepo{}, newTestIssuer())

		_, err := svc.FirebaseSignup(ctx, &auth.Identity{Kind: auth.KindLegacy, UserId: 3}, &dto.FirebaseSignupRequest{})
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeInvalidCredential), CodeOf(err))
	})
}

func TestAuthService_IssueToken(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	t.Run("registered_user", func(t *testing.T) {
		repo := &fakeUserRepo{
			getByPhoneFn: func(ctx context.Context, phone string) (*model.User, error) {
				return &model.User{Id: 7, PhoneNumber: phone, IsActive: true}, nil
			},
		}
		svc := NewAuthService(repo, newTestIssuer())

		resp, err := svc.IssueToken(ctx, firebaseIdent("+919812345678", "fb-uid-1"))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
	})

	t.Run("unknown_user_needs_signup", func(t *testing.T) {
		repo := &fakeUserRepo{
			getByPhoneFn: func(ctx context.Context, phone string) (*model.User, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		svc := NewAuthService(repo, newTestIssuer())

		_, err := svc.IssueToken(ctx, firebaseIdent("+919812345678", "fb-uid-1"))
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeSignupRequired), CodeOf(err))
	})

	t.Run("inactive_user_rejected", func(t *testing.T) {
		repo := &fakeUserRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.User, error) {
				return &model.User{Id: id, IsActive: false}, nil
			},
		}
		svc := NewAuthService(repo, newTestIssuer())

		_, err := svc.IssueToken(ctx, &auth.Identity{Kind: auth.KindLegacy, UserId: 9})
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeUserInactive), CodeOf(err))
	})
}

func TestAuthService_ResolveUser(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	t.Run("legacy_by_id", func(t *testing.T) {
		repo := &fakeUserRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.User, error) {
				return &model.User{Id: id, IsActive: true}, nil
			},
		}
		svc := NewAuthService(repo, newTestIssuer())

		user, err := svc.ResolveUser(ctx, &auth.Identity{Kind: auth.KindLegacy, UserId: 21})
		require.NoError(t, err)
		assert.Equal(t, int64(21), user.Id)
	})

	t.Run("nil_identity", func(t *testing.T) {
		svc := NewAuthService(&fakeUserRepo{}, newTestIssuer())

		_, err := svc.ResolveUser(ctx, nil)
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeUnauthorized), CodeOf(err))
	})
}
