package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/consts"
	"WeddingServer/model"
)

// fakeGuestRepo 可编程的宾客仓储桩
type fakeGuestRepo struct {
	repository.IGuestRepository
	createFn         func(ctx context.Context, guest *model.Guest) error
	getByIdForUserFn func(ctx context.Context, id, userId int64) (*model.Guest, error)
	listByWeddingFn  func(ctx context.Context, userId, weddingId int64) ([]*model.Guest, error)
	updateFn         func(ctx context.Context, guest *model.Guest) error
	deleteFn         func(ctx context.Context, id int64) error
	statsByWeddingFn func(ctx context.Context, userId, weddingId int64) (*repository.GuestStats, error)
}

var _ repository.IGuestRepository = (*fakeGuestRepo)(nil)

func (f *fakeGuestRepo) Create(ctx context.Context, guest *model.Guest) error {
	if f.createFn == nil {
		return errors.New("unexpected Create call")
	}
	return f.createFn(ctx, guest)
}

func (f *fakeGuestRepo) GetByIdForUser(ctx context.Context, id, userId int64) (*model.Guest, error) {
	if f.getByIdForUserFn == nil {
		return nil, errors.New("unexpected GetByIdForUser call")
	}
	return f.getByIdForUserFn(ctx, id, userId)
}

func (f *fakeGuestRepo) ListByWedding(ctx context.Context, userId, weddingId int64) ([]*model.Guest, error) {
	if f.listByWeddingFn == nil {
		return nil, errors.New("unexpected ListByWedding call")
	}
	return f.listByWeddingFn(ctx, userId, weddingId)
}

func (f *fakeGuestRepo) Update(ctx context.Context, guest *model.Guest) error {
	if f.updateFn == nil {
		return errors.New("unexpected Update call")
	}
	return f.updateFn(ctx, guest)
}

func (f *fakeGuestRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		return errors.New("unexpected Delete call")
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeGuestRepo) StatsByWedding(ctx context.Context, userId, weddingId int64) (*repository.GuestStats, error) {
	if f.statsByWeddingFn == nil {
		return nil, errors.New("unexpected StatsByWedding call")
	}
	return f.statsByWeddingFn(ctx, userId, weddingId)
}

func guestWeddingRepo() *fakeWeddingRepo {
	return &fakeWeddingRepo{
		getByIdForUserFn: func(ctx context.Context, id, userId int64) (*model.Wedding, error) {
			return &model.Wedding{
				Id:     id,
				UserId: userId,
				Name:   "Sharma Wedding",
				City:   "Jaipur",
				Date:   time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
}

func TestGuestService_Create(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	t.Run("defaults_applied", func(t *testing.T) {
		var created *model.Guest
		guestRepo := &fakeGuestRepo{
			createFn: func(ctx context.Context, guest *model.Guest) error {
				guest.Id = 71
				created = guest
				return nil
			},
		}
		svc := NewGuestService(guestRepo, guestWeddingRepo(), &fakeUserRepo{})

		item, err := svc.Create(ctx, 1, &dto.CreateGuestRequest{
			WeddingId:   10,
			Name:        "Rahul",
			PhoneNumber: "+919812345678",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "Family", created.Category, "未指定分类时默认 Family")
		assert.Equal(t, model.GuestStatusPending, created.ConfirmationStatus)
		assert.False(t, created.InvitationSent)
		assert.Equal(t, int64(71), item.Id)
	})

	t.Run("wedding_not_owned", func(t *testing.T) {
		weddingRepo := &fakeWeddingRepo{
			getByIdForUserFn: func(ctx context.Context, id, userId int64) (*model.Wedding, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		svc := NewGuestService(&fakeGuestRepo{}, weddingRepo, &fakeUserRepo{})

		_, err := svc.Create(ctx, 1, &dto.CreateGuestRequest{WeddingId: 10, Name: "Rahul"})
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeWeddingNotFound), CodeOf(err))
	})
}

func TestGuestService_Update_ResponseTime(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	guest := func() *model.Guest {
		return &model.Guest{
			Id:                 71,
			UserId:             1,
			WeddingId:          10,
			Name:               "Rahul",
			ConfirmationStatus: model.GuestStatusPending,
		}
	}

	t.Run("status_change_records_response_time", func(t *testing.T) {
		var updated *model.Guest
		guestRepo := &fakeGuestRepo{
			getByIdForUserFn: func(ctx context.Context, id, userId int64) (*model.Guest, error) {
				return guest(), nil
			},
			updateFn: func(ctx context.Context, g *model.Guest) error {
				updated = g
				return nil
			},
		}
		svc := NewGuestService(guestRepo, guestWeddingRepo(), &fakeUserRepo{})

		confirmed := model.GuestStatusConfirmed
		_, err := svc.Update(ctx, 1, 71, &dto.UpdateGuestRequest{ConfirmationStatus: &confirmed})
		require.NoError(t, err)
		assert.Equal(t, model.GuestStatusConfirmed, updated.ConfirmationStatus)
		assert.NotNil(t, updated.ResponseAt)
	})

	t.Run("same_status_keeps_response_time", func(t *testing.T) {
		var updated *model.Guest
		guestRepo := &fakeGuestRepo{
			getByIdForUserFn: func(ctx context.Context, id, userId int64) (*model.Guest, error) {
				return guest(), nil
			},
			updateFn: func(ctx context.Context, g *model.Guest) error {
				updated = g
				return nil
			},
		}
		svc := NewGuestService(guestRepo, guestWeddingRepo(), &fakeUserRepo{})

		pending := model.GuestStatusPending
		notes := "vegetarian"
		_, err := svc.Update(ctx, 1, 71, &dto.UpdateGuestRequest{
			ConfirmationStatus: &pending,
			Notes:              &notes,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.ResponseAt, "状态未变化不应记录响应时间")
		assert.Equal(t, "vegetarian", updated.Notes)
	})
}

func TestGuestService_Stats(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	guestRepo := &fakeGuestRepo{
		statsByWeddingFn: func(ctx context.Context, userId, weddingId int64) (*repository.GuestStats, error) {
			return &repository.GuestStats{
				Total:           120,
				Confirmed:       80,
				Declined:        10,
				Pending:         30,
				InvitationsSent: 100,
			}, nil
		},
	}
	svc := NewGuestService(guestRepo, guestWeddingRepo(), &fakeUserRepo{})

	resp, err := svc.Stats(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 120, resp.Total)
	assert.Equal(t, 80, resp.Confirmed)
	assert.Equal(t, 100, resp.InvitationsSent)
}

func TestGuestService_SendInvitation(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	hostRepo := &fakeUserRepo{
		getByIdFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{Id: id, Name: "Anita", IsActive: true}, nil
		},
	}

	t.Run("marks_invitation_sent", func(t *testing.T) {
		var updated *model.Guest
		guestRepo := &fakeGuestRepo{
			getByIdForUserFn: func(ctx context.Context, id, userId int64) (*model.Guest, error) {
				return &model.Guest{
					Id: 71, UserId: 1, WeddingId: 10,
					Name: "Rahul", Email: "rahul@example.com",
				}, nil
			},
			updateFn: func(ctx context.Context, g *model.Guest) error {
				updated = g
				return nil
			},
		}
		svc := NewGuestService(guestRepo, guestWeddingRepo(), hostRepo)

		item, err := svc.SendInvitation(ctx, 1, 71)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.InvitationSent)
		assert.NotNil(t, updated.InvitationSentAt)
		assert.True(t, item.InvitationSent)
	})

	t.Run("no_email_rejected", func(t *testing.T) {
		guestRepo := &fakeGuestRepo{
			getByIdForUserFn: func(ctx context.Context, id, userId int64) (*model.Guest, error) {
				return &model.Guest{Id: 71, UserId: 1, WeddingId: 10, Name: "Rahul"}, nil
			},
		}
		svc := NewGuestService(guestRepo, guestWeddingRepo(), hostRepo)

		_, err := svc.SendInvitation(ctx, 1, 71)
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeParamError), CodeOf(err))
	})

	t.Run("already_sent_is_noop", func(t *testing.T) {
		sentAt := time.Now().Add(-time.Hour)
		guestRepo := &fakeGuestRepo{
			getByIdForUserFn: func(ctx context.Context, id, userId int64) (*model.Guest, error) {
				return &model.Guest{
					Id: 71, UserId: 1, WeddingId: 10,
					Name: "Rahul", Email: "rahul@example.com",
					InvitationSent: true, InvitationSentAt: &sentAt,
				}, nil
			},
		}
		svc := NewGuestService(guestRepo, guestWeddingRepo(), hostRepo)

		// updateFn 未设置：重复调用不应触发任何写操作
		item, err := svc.SendInvitation(ctx, 1, 71)
		require.NoError(t, err)
		assert.True(t, item.InvitationSent)
	})
}

func TestGuestService_SendInvitations(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	hostRepo := &fakeUserRepo{
		getByIdFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{Id: id, Name: "Anita", IsActive: true}, nil
		},
	}

	var updatedIds []int64
	guestRepo := &fakeGuestRepo{
		listByWeddingFn: func(ctx context.Context, userId, weddingId int64) ([]*model.Guest, error) {
			return []*model.Guest{
				{Id: 1, UserId: 1, WeddingId: 10, Name: "A", Email: "a@example.com"},
				{Id: 2, UserId: 1, WeddingId: 10, Name: "B"},                                        // 没邮箱，跳过
				{Id: 3, UserId: 1, WeddingId: 10, Name: "C", Email: "c@example.com", InvitationSent: true}, // 已发过，跳过
				{Id: 4, UserId: 1, WeddingId: 10, Name: "D", Email: "d@example.com"},
			}, nil
		},
		updateFn: func(ctx context.Context, g *model.Guest) error {
			updatedIds = append(updatedIds, g.Id)
			return nil
		},
	}
	svc := NewGuestService(guestRepo, guestWeddingRepo(), hostRepo)

	resp, err := svc.SendInvitations(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Queued)
	assert.Equal(t, []int64{1, 4}, updatedIds)
}
