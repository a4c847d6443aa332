package repository

import (
	"context"
	"time"

	"WeddingServer/model"

	"gorm.io/gorm"
)

// relationshipRepositoryImpl 用户关系数据访问层实现
type relationshipRepositoryImpl struct {
	db *gorm.DB
}

// NewRelationshipRepository 创建关系仓储实例
func NewRelationshipRepository(db *gorm.DB) IRelationshipRepository {
	return &relationshipRepositoryImpl{db: db}
}

// Create 创建关系请求。
// （发起方，接收方，类型）唯一索引兜底并发重复提交，冲突返回 ErrDuplicateKey。
func (r *relationshipRepositoryImpl) Create(ctx context.Context, rel *model.Relationship) error {
	if err := r.db.WithContext(ctx).Create(rel).Error; err != nil {
		return WrapDBError(err)
	}
	return nil
}

// GetById 根据 id 查询关系
func (r *relationshipRepositoryImpl) GetById(ctx context.Context, id int64) (*model.Relationship, error) {
	var rel model.Relationship
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rel).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return &rel, nil
}

// GetByTriple 根据（发起方，接收方，类型）查询关系
func (r *relationshipRepositoryImpl) GetByTriple(ctx context.Context, userId, relatedUserId int64, relType string) (*model.Relationship, error) {
	var rel model.Relationship
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND related_user_id = ? AND relationship_type = ?", userId, relatedUserId, relType).
		First(&rel).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return &rel, nil
}

// ListByUser 查询用户发起的全部关系，最新的在前
func (r *relationshipRepositoryImpl) ListByUser(ctx context.Context, userId int64) ([]*model.Relationship, error) {
	var rels []*model.Relationship
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&rels).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return rels, nil
}

// ListPendingForUser 查询发给用户的待处理请求。
// 过期的请求直接在 SQL 里滤掉，不依赖后台清理任务。
func (r *relationshipRepositoryImpl) ListPendingForUser(ctx context.Context, relatedUserId int64, now time.Time) ([]*model.Relationship, error) {
	var rels []*model.Relationship
	err := r.db.WithContext(ctx).
		Where("related_user_id = ? AND status = ?", relatedUserId, model.RelationshipStatusPending).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("requested_at DESC").
		Find(&rels).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return rels, nil
}

// Update 保存关系全量字段
func (r *relationshipRepositoryImpl) Update(ctx context.Context, rel *model.Relationship) error {
	if err := r.db.WithContext(ctx).Save(rel).Error; err != nil {
		return WrapDBError(err)
	}
	return nil
}

// Delete 物理删除关系。
// 必须真删：唯一索引 uidx_user_related_type 不区分软删除行，
// 留下墓碑会挡住同一三元组的重新发起。
func (r *relationshipRepositoryImpl) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Unscoped().Delete(&model.Relationship{}, id)
	if res.Error != nil {
		return WrapDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
