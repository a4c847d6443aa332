package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/service"
	"WeddingServer/consts"
	"WeddingServer/pkg/logger"
	"WeddingServer/pkg/result"
)

var handlerLoggerOnce sync.Once

func initHandlerTestLogger() {
	handlerLoggerOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		logger.ReplaceGlobal(zap.NewNop())
	})
}

// fakeRelationshipService 可编程的关系服务桩
type fakeRelationshipService struct {
	service.IRelationshipService
	createFn      func(ctx context.Context, userId int64, req *dto.CreateRelationshipRequest) (*dto.RelationshipItem, error)
	listFn        func(ctx context.Context, userId int64) ([]*dto.RelationshipItem, error)
	listPendingFn func(ctx context.Context, userId int64) ([]*dto.RelationshipItem, error)
	respondFn     func(ctx context.Context, userId, relationshipId int64, accept bool) (*dto.RelationshipItem, error)
	updateFn      func(ctx context.Context, userId, relationshipId int64, req *dto.UpdateRelationshipRequest) (*dto.RelationshipItem, error)
	deleteFn      func(ctx context.Context, userId, relationshipId int64) error
}

var _ service.IRelationshipService = (*fakeRelationshipService)(nil)

func (f *fakeRelationshipService) Create(ctx context.Context, userId int64, req *dto.CreateRelationshipRequest) (*dto.RelationshipItem, error) {
	if f.createFn == nil {
		return nil, errors.New("unexpected Create call")
	}
	return f.createFn(ctx, userId, req)
}

func (f *fakeRelationshipService) List(ctx context.Context, userId int64) ([]*dto.RelationshipItem, error) {
	if f.listFn == nil {
		return nil, errors.New("unexpected List call")
	}
	return f.listFn(ctx, userId)
}

func (f *fakeRelationshipService) ListPending(ctx context.Context, userId int64) ([]*dto.RelationshipItem, error) {
	if f.listPendingFn == nil {
		return nil, errors.New("unexpected ListPending call")
	}
	return f.listPendingFn(ctx, userId)
}

func (f *fakeRelationshipService) Respond(ctx context.Context, userId, relationshipId int64, accept bool) (*dto.RelationshipItem, error) {
	if f.respondFn == nil {
		return nil, errors.New("unexpected Respond call")
	}
	return f.respondFn(ctx, userId, relationshipId, accept)
}

func (f *fakeRelationshipService) Update(ctx context.Context, userId, relationshipId int64, req *dto.UpdateRelationshipRequest) (*dto.RelationshipItem, error) {
	if f.updateFn == nil {
		return nil, errors.New("unexpected Update call")
	}
	return f.updateFn(ctx, userId, relationshipId, req)
}

func (f *fakeRelationshipService) Delete(ctx context.Context, userId, relationshipId int64) error {
	if f.deleteFn == nil {
		return errors.New("unexpected Delete call")
	}
	return f.deleteFn(ctx, userId, relationshipId)
}

// newRelationshipRouter 挂好登录态的测试路由
func newRelationshipRouter(svc service.IRelationshipService) *gin.Engine {
	initHandlerTestLogger()
	h := NewRelationshipHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(consts.ContextKeyUserID, int64(1))
	})
	r.POST("/relationships", h.Create)
	r.GET("/relationships", h.List)
	r.GET("/relationships/pending", h.ListPending)
	r.POST("/relationships/:id/respond", h.Respond)
	r.PUT("/relationships/:id", h.Update)
	r.DELETE("/relationships/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) *result.Response {
	t.Helper()
	var resp result.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return &resp
}

func TestRelationshipHandler_Create(t *testing.T) {
	t.Run("created_201", func(t *testing.T) {
		svc := &fakeRelationshipService{
			createFn: func(ctx context.Context, userId int64, req *dto.CreateRelationshipRequest) (*dto.RelationshipItem, error) {
				assert.Equal(t, int64(1), userId)
				assert.Equal(t, "sibling", req.Type)
				return &dto.RelationshipItem{Id: 31, UserId: userId, RelatedUserId: req.RelatedUserId}, nil
			},
		}
		r := newRelationshipRouter(svc)

		w := doJSON(t, r, http.MethodPost, "/relationships", gin.H{
			"related_user_id":   2,
			"relationship_type": "sibling",
			"relationship_name": "Sister",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, int32(consts.CodeSuccess), resp.Code)
	})

	t.Run("validation_422", func(t *testing.T) {
		r := newRelationshipRouter(&fakeRelationshipService{})

		// 缺少必填字段，绑定失败
		w := doJSON(t, r, http.MethodPost, "/relationships", gin.H{
			"related_user_id": 2,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, int32(consts.CodeParamError), resp.Code)
	})

	t.Run("duplicate_maps_to_400", func(t *testing.T) {
		svc := &fakeRelationshipService{
			createFn: func(ctx context.Context, userId int64, req *dto.CreateRelationshipRequest) (*dto.RelationshipItem, error) {
				return nil, service.NewBizError(consts.CodeDuplicateRelationship)
			},
		}
		r := newRelationshipRouter(svc)

		w := doJSON(t, r, http.MethodPost, "/relationships", gin.H{
			"related_user_id":   2,
			"relationship_type": "sibling",
			"relationship_name": "Sister",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, int32(consts.CodeDuplicateRelationship), resp.Code)
	})
}

func TestRelationshipHandler_Respond(t *testing.T) {
	t.Run("accept_ok", func(t *testing.T) {
		svc := &fakeRelationshipService{
			respondFn: func(ctx context.Context, userId, relationshipId int64, accept bool) (*dto.RelationshipItem, error) {
				assert.Equal(t, int64(31), relationshipId)
				assert.True(t, accept)
				return &dto.RelationshipItem{Id: relationshipId, Status: "accepted"}, nil
			},
		}
		r := newRelationshipRouter(svc)

		w := doJSON(t, r, http.MethodPost, "/relationships/31/respond", gin.H{"accept": true})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("expired_maps_to_400", func(t *testing.T) {
		svc := &fakeRelationshipService{
			respondFn: func(ctx context.Context, userId, relationshipId int64, accept bool) (*dto.RelationshipItem, error) {
				return nil, service.NewBizError(consts.CodeRelationshipExpired)
			},
		}
		r := newRelationshipRouter(svc)

		w := doJSON(t, r, http.MethodPost, "/relationships/31/respond", gin.H{"accept": true})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, int32(consts.CodeRelationshipExpired), resp.Code)
	})

	t.Run("not_found_maps_to_404", func(t *testing.T) {
		svc := &fakeRelationshipService{
			respondFn: func(ctx context.Context, userId, relationshipId int64, accept bool) (*dto.RelationshipItem, error) {
				return nil, service.NewBizError(consts.CodeRelationshipNotFound)
			},
		}
		r := newRelationshipRouter(svc)

		w := doJSON(t, r, http.MethodPost, "/relationships/31/respond", gin.H{"accept": false})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad_id_param", func(t *testing.T) {
		r := newRelationshipRouter(&fakeRelationshipService{})

		w := doJSON(t, r, http.MethodPost, "/relationships/abc/respond", gin.H{"accept": true})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestRelationshipHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var deletedId int64
		svc := &fakeRelationshipService{
			deleteFn: func(ctx context.Context, userId, relationshipId int64) error {
				deletedId = relationshipId
				return nil
			},
		}
		r := newRelationshipRouter(svc)

		w := doJSON(t, r, http.MethodDelete, "/relationships/31", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(31), deletedId)
	})

	t.Run("internal_error_500", func(t *testing.T) {
		svc := &fakeRelationshipService{
			deleteFn: func(ctx context.Context, userId, relationshipId int64) error {
				return service.WrapBizError(consts.CodeInternalError, errors.New("db down"))
			},
		}
		r := newRelationshipRouter(svc)

		w := doJSON(t, r, http.MethodDelete, "/relationships/31", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRelationshipHandler_MissingLogin(t *testing.T) {
	initHandlerTestLogger()
	h := NewRelationshipHandler(&fakeRelationshipService{})

	// 不挂登录中间件
	r := gin.New()
	r.GET("/relationships", h.List)

	w := doJSON(t, r, http.MethodGet, "/relationships", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, int32(consts.CodeUnauthorized), resp.Code)
}
