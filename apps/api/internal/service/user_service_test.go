package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/consts"
	"WeddingServer/model"
)

func TestUserService_UpdateProfile(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	existing := func() *model.User {
		email := "old@example.com"
		uid := "fb-uid-1"
		return &model.User{
			Id:          1,
			PhoneNumber: "+919812345678",
			FirebaseUid: &uid,
			Name:        "Old Name",
			Email:       &email,
			Locality:    "Pune",
			IsActive:    true,
		}
	}

	t.Run("partial_update", func(t *testing.T) {
		var saved *model.User
		repo := &fakeUserRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.User, error) {
				return existing(), nil
			},
			updateFn: func(ctx context.Context, user *model.User) error {
				saved = user
				return nil
			},
		}
		svc := NewUserService(repo)

		name := "New Name"
		_, err := svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{Name: &name})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "New Name", saved.Name)
		require.NotNil(t, saved.Email, "未提交的字段不应被改动")
		assert.Equal(t, "old@example.com", *saved.Email)
		assert.Equal(t, "+919812345678", saved.PhoneNumber, "手机号不可在资料接口修改")
	})

	t.Run("empty_email_clears", func(t *testing.T) {
		var saved *model.User
		repo := &fakeUserRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.User, error) {
				return existing(), nil
			},
			updateFn: func(ctx context.Context, user *model.User) error {
				saved = user
				return nil
			},
		}
		svc := NewUserService(repo)

		empty := ""
		_, err := svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{Email: &empty})
		require.NoError(t, err)
		assert.Nil(t, saved.Email, "空字符串表示清除邮箱")
	})

	t.Run("user_not_found", func(t *testing.T) {
		repo := &fakeUserRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.User, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		svc := NewUserService(repo)

		name := "X"
		_, err := svc.UpdateProfile(ctx, 1, &dto.UpdateProfileRequest{Name: &name})
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeUserNotFound), CodeOf(err))
	})
}

func TestUserService_GetByPhone(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	t.Run("active_user", func(t *testing.T) {
		repo := &fakeUserRepo{
			getByPhoneFn: func(ctx context.Context, phone string) (*model.User, error) {
				return &model.User{Id: 2, PhoneNumber: phone, IsActive: true}, nil
			},
		}
		svc := NewUserService(repo)

		info, err := svc.GetByPhone(ctx, "+919812345678")
		require.NoError(t, err)
		assert.Equal(t, int64(2), info.Id)
	})

	t.Run("missing_is_404_not_auth_error", func(t *testing.T) {
		// 显式查询未命中报 404，而不是身份解析场景用的 401 错误码
		repo := &fakeUserRepo{
			getByPhoneFn: func(ctx context.Context, phone string) (*model.User, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		svc := NewUserService(repo)

		_, err := svc.GetByPhone(ctx, "+919800000000")
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodePhoneNotFound), CodeOf(err))
		assert.Equal(t, http.StatusNotFound, consts.GetHTTPStatus(CodeOf(err)))
	})

	t.Run("inactive_treated_as_missing", func(t *testing.T) {
		repo := &fakeUserRepo{
			getByPhoneFn: func(ctx context.Context, phone string) (*model.User, error) {
				return &model.User{Id: 2, PhoneNumber: phone, IsActive: false}, nil
			},
		}
		svc := NewUserService(repo)

		_, err := svc.GetByPhone(ctx, "+919812345678")
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodePhoneNotFound), CodeOf(err))
	})
}

func TestUserService_Deactivate(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	var deactivatedId int64
	repo := &fakeUserRepo{
		deactivateFn: func(ctx context.Context, id int64) error {
			deactivatedId = id
			return nil
		},
	}
	svc := NewUserService(repo)

	require.NoError(t, svc.Deactivate(ctx, 5))
	assert.Equal(t, int64(5), deactivatedId)
}
