package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/consts"
	"WeddingServer/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRelRepo 可编程的关系仓储桩
type fakeRelRepo struct {
	repository.IRelationshipRepository
	createFn             func(ctx context.Context, rel *model.Relationship) error
	getByIdFn            func(ctx context.Context, id int64) (*model.Relationship, error)
	getByTripleFn        func(ctx context.Context, userId, relatedUserId int64, relType string) (*model.Relationship, error)
	listByUserFn         func(ctx context.Context, userId int64) ([]*model.Relationship, error)
	listPendingForUserFn func(ctx context.Context, relatedUserId int64, now time.Time) ([]*model.Relationship, error)
	updateFn             func(ctx context.Context, rel *model.Relationship) error
	deleteFn             func(ctx context.Context, id int64) error
}

var _ repository.IRelationshipRepository = (*fakeRelRepo)(nil)

func (f *fakeRelRepo) Create(ctx context.Context, rel *model.Relationship) error {
	if f.createFn == nil {
		return errors.New("unexpected Create call")
	}
	return f.createFn(ctx, rel)
}

func (f *fakeRelRepo) GetById(ctx context.Context, id int64) (*model.Relationship, error) {
	if f.getByIdFn == nil {
		return nil, errors.New("unexpected GetById call")
	}
	return f.getByIdFn(ctx, id)
}

func (f *fakeRelRepo) GetByTriple(ctx context.Context, userId, relatedUserId int64, relType string) (*model.Relationship, error) {
	if f.getByTripleFn == nil {
		return nil, errors.New("unexpected GetByTriple call")
	}
	return f.getByTripleFn(ctx, userId, relatedUserId, relType)
}

func (f *fakeRelRepo) ListByUser(ctx context.Context, userId int64) ([]*model.Relationship, error) {
	if f.listByUserFn == nil {
		return nil, errors.New("unexpected ListByUser call")
	}
	return f.listByUserFn(ctx, userId)
}

func (f *fakeRelRepo) ListPendingForUser(ctx context.Context, relatedUserId int64, now time.Time) ([]*model.Relationship, error) {
	if f.listPendingForUserFn == nil {
		return nil, errors.New("unexpected ListPendingForUser call")
	}
	return f.listPendingForUserFn(ctx, relatedUserId, now)
}

func (f *fakeRelRepo) Update(ctx context.Context, rel *model.Relationship) error {
	if f.updateFn == nil {
		return errors.New("unexpected Update call")
	}
	return f.updateFn(ctx, rel)
}

func (f *fakeRelRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		return errors.New("unexpected Delete call")
	}
	return f.deleteFn(ctx, id)
}

// activeUserRepo 返回任意 id 的活跃用户
func activeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		getByIdFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{Id: id, IsActive: true}, nil
		},
	}
}

func validCreateReq() *dto.CreateRelationshipRequest {
	return &dto.CreateRelationshipRequest{
		RelatedUserId: 2,
		Type:          "sibling",
		Name:          "Sister",
	}
}

func TestRelationshipService_Create(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	t.Run("success_pending_with_expiry", func(t *testing.T) {
		var created *model.Relationship
		relRepo := &fakeRelRepo{
			getByTripleFn: func(ctx context.Context, userId, relatedUserId int64, relType string) (*model.Relationship, error) {
				return nil, repository.ErrRecordNotFound
			},
			createFn: func(ctx context.Context, rel *model.Relationship) error {
				rel.Id = 31
				created = rel
				return nil
			},
		}
		svc := NewRelationshipService(relRepo, activeUserRepo())

		before := time.Now()
		item, err := svc.Create(ctx, 1, validCreateReq())
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, model.RelationshipStatusPending, created.Status)
		assert.Equal(t, model.PrivacyLevelPrivate, created.PrivacyLevel)
		require.NotNil(t, created.ExpiresAt)
		// 过期时间 = 创建时刻 + 7 天
		assert.WithinDuration(t, before.Add(model.PendingExpireDuration), *created.ExpiresAt, 5*time.Second)
		assert.Equal(t, int64(31), item.Id)
	})

	t.Run("invalid_type", func(t *testing.T) {
		svc := NewRelationshipService(&fakeRelRepo{}, &fakeUserRepo{})

		req := validCreateReq()
		req.Type = "cousin"
		_, err := svc.Create(ctx, 1, req)
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeParamError), CodeOf(err))
	})

	t.Run("self_relationship", func(t *testing.T) {
		svc := NewRelationshipService(&fakeRelRepo{}, &fakeUserRepo{})

		req := validCreateReq()
		req.RelatedUserId = 1
		_, err := svc.Create(ctx, 1, req)
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeParamError), CodeOf(err))
	})

	t.Run("related_user_missing", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.User, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		svc := NewRelationshipService(&fakeRelRepo{}, userRepo)

		_, err := svc.Create(ctx, 1, validCreateReq())
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeRelatedUserNotFound), CodeOf(err))
	})

	t.Run("related_user_inactive", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.User, error) {
				return &model.User{Id: id, IsActive: false}, nil
			},
		}
		svc := NewRelationshipService(&fakeRelRepo{}, userRepo)

		_, err := svc.Create(ctx, 1, validCreateReq())
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeRelatedUserNotFound), CodeOf(err))
	})

	t.Run("duplicate_triple", func(t *testing.T) {
		relRepo := &fakeRelRepo{
			getByTripleFn: func(ctx context.Context, userId, relatedUserId int64, relType string) (*model.Relationship, error) {
				return &model.Relationship{Id: 9}, nil
			},
		}
		svc := NewRelationshipService(relRepo, activeUserRepo())

		_, err := svc.Create(ctx, 1, validCreateReq())
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeDuplicateRelationship), CodeOf(err))
	})

	t.Run("unique_key_race", func(t *testing.T) {
		// 三元组检查通过后另一请求先插入，唯一键兜底
		relRepo := &fakeRelRepo{
			getByTripleFn: func(ctx context.Context, userId, relatedUserId int64, relType string) (*model.Relationship, error) {
				return nil, repository.ErrRecordNotFound
			},
			createFn: func(ctx context.Context, rel *model.Relationship) error {
				return repository.ErrDuplicateKey
			},
		}
		svc := NewRelationshipService(relRepo, activeUserRepo())

		_, err := svc.Create(ctx, 1, validCreateReq())
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeDuplicateRelationship), CodeOf(err))
	})
}

func TestRelationshipService_Respond(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	pendingRel := func() *model.Relationship {
		expiresAt := time.Now().Add(24 * time.Hour)
		return &model.Relationship{
			Id:            31,
			UserId:        1,
			RelatedUserId: 2,
			Type:          "sibling",
			Status:        model.RelationshipStatusPending,
			ExpiresAt:     &expiresAt,
		}
	}

	t.Run("accept", func(t *testing.T) {
		var updated *model.Relationship
		relRepo := &fakeRelRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.Relationship, error) {
				return pendingRel(), nil
			},
			updateFn: func(ctx context.Context, rel *model.Relationship) error {
				updated = rel
				return nil
			},
		}
		svc := NewRelationshipService(relRepo, &fakeUserRepo{})

		item, err := svc.Respond(ctx, 2, 31, true)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, model.RelationshipStatusAccepted, updated.Status)
		assert.NotNil(t, updated.RespondedAt)
		assert.Equal(t, model.RelationshipStatusAccepted, item.Status)
	})

	t.Run("reject", func(t *testing.T) {
		var updated *model.Relationship
		relRepo := &fakeRelRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.Relationship, error) {
				return pendingRel(), nil
			},
			updateFn: func(ctx context.Context, rel *model.Relationship) error {
				updated = rel
				return nil
			},
		}
		svc := NewRelationshipService(relRepo, &fakeUserRepo{})

		_, err := svc.Respond(ctx, 2, 31, false)
		require.NoError(t, err)
		assert.Equal(t, model.RelationshipStatusRejected, updated.Status)
	})

	t.Run("only_target_can_respond", func(t *testing.T) {
		relRepo := &fakeRelRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.Relationship, error) {
				return pendingRel(), nil
			},
		}
		svc := NewRelationshipService(relRepo, &fakeUserRepo{})

		// 发起方自己来响应，等同不存在
		_, err := svc.Respond(ctx, 1, 31, true)
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeRelationshipNotFound), CodeOf(err))
	})

	t.Run("already_responded", func(t *testing.T) {
		relRepo := &fakeRelRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.Relationship, error) {
				rel := pendingRel()
				rel.Status = model.RelationshipStatusAccepted
				return rel, nil
			},
		}
		svc := NewRelationshipService(relRepo, &fakeUserRepo{})

		_, err := svc.Respond(ctx, 2, 31, true)
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeRelationshipNotFound), CodeOf(err))
	})

	t.Run("expired_request", func(t *testing.T) {
		relRepo := &fakeRelRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.Relationship, error) {
				rel := pendingRel()
				expired := time.Now().Add(-time.Hour)
				rel.ExpiresAt = &expired
				return rel, nil
			},
		}
		svc := NewRelationshipService(relRepo, &fakeUserRepo{})

		_, err := svc.Respond(ctx, 2, 31, true)
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeRelationshipExpired), CodeOf(err))
	})

	t.Run("not_found", func(t *testing.T) {
		relRepo := &fakeRelRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.Relationship, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		svc := NewRelationshipService(relRepo, &fakeUserRepo{})

		_, err := svc.Respond(ctx, 2, 404, true)
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeRelationshipNotFound), CodeOf(err))
	})
}

func TestRelationshipService_UpdateAndDelete(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	owned := func() *model.Relationship {
		return &model.Relationship{
			Id:            31,
			UserId:        1,
			RelatedUserId: 2,
			Type:          "sibling",
			Name:          "Sister",
			Status:        model.RelationshipStatusAccepted,
			PrivacyLevel:  model.PrivacyLevelPrivate,
		}
	}

	t.Run("update_metadata", func(t *testing.T) {
		var updated *model.Relationship
		relRepo := &fakeRelRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.Relationship, error) {
				return owned(), nil
			},
			updateFn: func(ctx context.Context, rel *model.Relationship) error {
				updated = rel
				return nil
			},
		}
		svc := NewRelationshipService(relRepo, &fakeUserRepo{})

		name := "Big Sister"
		privacy := model.PrivacyLevelFriends
		_, err := svc.Update(ctx, 1, 31, &dto.UpdateRelationshipRequest{
			Name:         &name,
			PrivacyLevel: &privacy,
		})
		require.NoError(t, err)
		assert.Equal(t, "Big Sister", updated.Name)
		assert.Equal(t, model.PrivacyLevelFriends, updated.PrivacyLevel)
	})

	t.Run("update_by_non_owner", func(t *testing.T) {
		relRepo := &fakeRelRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.Relationship, error) {
				return owned(), nil
			},
		}
		svc := NewRelationshipService(relRepo, &fakeUserRepo{})

		name := "Hijacked"
		_, err := svc.Update(ctx, 2, 31, &dto.UpdateRelationshipRequest{Name: &name})
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeRelationshipNotFound), CodeOf(err))
	})

	t.Run("delete_by_owner", func(t *testing.T) {
		var deletedId int64
		relRepo := &fakeRelRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.Relationship, error) {
				return owned(), nil
			},
			deleteFn: func(ctx context.Context, id int64) error {
				deletedId = id
				return nil
			},
		}
		svc := NewRelationshipService(relRepo, &fakeUserRepo{})

		err := svc.Delete(ctx, 1, 31)
		require.NoError(t, err)
		assert.Equal(t, int64(31), deletedId)
	})

	t.Run("delete_by_non_owner", func(t *testing.T) {
		relRepo := &fakeRelRepo{
			getByIdFn: func(ctx context.Context, id int64) (*model.Relationship, error) {
				return owned(), nil
			},
		}
		svc := NewRelationshipService(relRepo, &fakeUserRepo{})

		err := svc.Delete(ctx, 2, 31)
		require.Error(t, err)
		assert.Equal(t, int32(consts.CodeRelationshipNotFound), CodeOf(err))
	})
}

// 用带唯一索引语义的内存存储模拟真实库：删除必须真正腾出索引位，
// 同一（发起方，接收方，类型）三元组删掉后可以重新发起。
func TestRelationshipService_DeleteThenRecreate(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	type tripleKey struct {
		userId, relatedUserId int64
		relType               string
	}
	rows := map[int64]*model.Relationship{}
	index := map[tripleKey]int64{}
	nextId := int64(100)

	relRepo := &fakeRelRepo{
		createFn: func(ctx context.Context, rel *model.Relationship) error {
			key := tripleKey{rel.UserId, rel.RelatedUserId, rel.Type}
			if _, taken := index[key]; taken {
				return repository.ErrDuplicateKey
			}
			nextId++
			rel.Id = nextId
			rows[rel.Id] = rel
			index[key] = rel.Id
			return nil
		},
		getByTripleFn: func(ctx context.Context, userId, relatedUserId int64, relType string) (*model.Relationship, error) {
			id, ok := index[tripleKey{userId, relatedUserId, relType}]
			if !ok {
				return nil, repository.ErrRecordNotFound
			}
			return rows[id], nil
		},
		getByIdFn: func(ctx context.Context, id int64) (*model.Relationship, error) {
			rel, ok := rows[id]
			if !ok {
				return nil, repository.ErrRecordNotFound
			}
			return rel, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			rel, ok := rows[id]
			if !ok {
				return repository.ErrRecordNotFound
			}
			delete(index, tripleKey{rel.UserId, rel.RelatedUserId, rel.Type})
			delete(rows, id)
			return nil
		},
	}
	svc := NewRelationshipService(relRepo, activeUserRepo())

	first, err := svc.Create(ctx, 1, validCreateReq())
	require.NoError(t, err)

	// 第一条边还在时重复发起被拒
	_, err = svc.Create(ctx, 1, validCreateReq())
	require.Error(t, err)
	assert.Equal(t, int32(consts.CodeDuplicateRelationship), CodeOf(err))

	// 删除腾出索引位，同一三元组可以重建
	require.NoError(t, svc.Delete(ctx, 1, first.Id))
	second, err := svc.Create(ctx, 1, validCreateReq())
	require.NoError(t, err)
	assert.NotEqual(t, first.Id, second.Id)
}

func TestRelationshipService_ListPending(t *testing.T) {
	initSvcTestLogger()
	ctx := context.Background()

	relRepo := &fakeRelRepo{
		listPendingForUserFn: func(ctx context.Context, relatedUserId int64, now time.Time) ([]*model.Relationship, error) {
			assert.Equal(t, int64(2), relatedUserId)
			return []*model.Relationship{
				{Id: 1, UserId: 5, RelatedUserId: 2, Status: model.RelationshipStatusPending},
			}, nil
		},
	}
	svc := NewRelationshipService(relRepo, &fakeUserRepo{})

	items, err := svc.ListPending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].Id)
}
