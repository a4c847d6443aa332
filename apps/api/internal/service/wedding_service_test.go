package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/consts"
	"WeddingServer/model"
)

func TestWeddingService_Create(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	t.Run("defaults_applied", func(t *testing.T) {
		var created *model.Wedding
		repo := &fakeWeddingRepo{
			createFn: func(ctx context.Context, wedding *model.Wedding) error {
				wedding.Id = 10
				created = wedding
				return nil
			},
		}
		svc := NewWeddingService(repo)

		item, err := svc.Create(ctx, 1, &dto.CreateWeddingRequest{
			Name:   "Sharma Wedding",
			City:   "Jaipur",
			Date:   time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
			Budget: 2500000,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, int64(1), created.UserId)
		assert.Equal(t, model.WeddingStatusPlanning, created.Status)
		assert.Equal(t, 2, created.Duration, "未指定时默认 2 天")
		assert.Equal(t, 100, created.EstimatedGuests, "未指定时默认 100 人")
		assert.Equal(t, int64(10), item.Id)
	})

	t.Run("explicit_values_kept", func(t *testing.T) {
		var created *model.Wedding
		repo := &fakeWeddingRepo{
			createFn: func(ctx context.Context, wedding *model.Wedding) error {
				created = wedding
				return nil
			},
		}
		svc := NewWeddingService(repo)

		_, err := svc.Create(ctx, 1, &dto.CreateWeddingRequest{
			Name:            "Sharma Wedding",
			City:            "Jaipur",
			Date:            time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
			Duration:        3,
			EstimatedGuests: 350,
			Budget:          2500000,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, created.Duration)
		assert.Equal(t, 350, created.EstimatedGuests)
	})
}

func TestWeddingService_Update(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	t.Run("partial_update", func(t *testing.T) {
		var saved *model.Wedding
		repo := &fakeWeddingRepo{
			getByIdForUserFn: func(ctx context.Context, id, userId int64) (*model.Wedding, error) {
				return &model.Wedding{
					Id: id, UserId: userId,
					Name: "Sharma Wedding", City: "Jaipur",
					Status: model.WeddingStatusPlanning, Budget: 2500000,
				}, nil
			},
			updateFn: func(ctx context.Context, wedding *model.Wedding) error {
				saved = wedding
				return nil
			},
		}
		svc := NewWeddingService(repo)

		status := model.WeddingStatusBooked
		spent := 1800000.0
		_, err := svc.Update(ctx, 1, 10, &dto.UpdateWeddingRequest{
			Status: &status,
			Spent:  &spent,
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, model.WeddingStatusBooked, saved.Status)
		assert.Equal(t, 1800000.0, saved.Spent)
		assert.Equal(t, "Jaipur", saved.City, "未提交的字段不应被改动")
	})

	t.Run("not_owned", func(t *testing.T) {
		repo := &fakeWeddingRepo{
			getByIdForUserFn: func(ctx context.Context, id, userId int64) (*model.Wedding, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		svc := NewWeddingService(repo)

		name := "Hijacked"
		_, err := svc.Update(ctx, 2, 10, &dto.UpdateWeddingRequest{Name: &name})
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeWeddingNotFound), CodeOf(err))
	})
}

func TestWeddingService_Delete(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	var deletedId int64
	repo := &fakeWeddingRepo{
		getByIdForUserFn: func(ctx context.Context, id, userId int64) (*model.Wedding, error) {
			return &model.Wedding{Id: id, UserId: userId}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deletedId = id
			return nil
		},
	}
	svc := NewWeddingService(repo)

	require.NoError(t, svc.Delete(ctx, 1, 10))
	assert.Equal(t, int64(10), deletedId)
}
