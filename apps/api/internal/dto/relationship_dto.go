package dto

import "WeddingServer/model"

// ==================== 用户关系相关 DTO ====================

// CreateRelationshipRequest 发起关系请求 DTO
type CreateRelationshipRequest struct {
	RelatedUserId int64  `json:"related_user_id" binding:"required,min=1"`                             // 接收方用户 id
	Type          string `json:"relationship_type" binding:"required,oneof=spouse parent child sibling other"` // 关系类型
	Name          string `json:"relationship_name" binding:"required,max=100"`                         // 关系称呼
	IsPrimary     *bool  `json:"is_primary" binding:"omitempty"`                                       // 是否主要关系
	PrivacyLevel  string `json:"privacy_level" binding:"omitempty,oneof=public friends private"`       // 可见性
}

// RespondRelationshipRequest 响应关系请求 DTO
type RespondRelationshipRequest struct {
	Accept bool `json:"accept"` // true 接受 / false 拒绝
}

// UpdateRelationshipRequest 更新关系请求 DTO（仅发起方，元数据字段）
type UpdateRelationshipRequest struct {
	Name         *string `json:"relationship_name" binding:"omitempty,max=100"`                  // 关系称呼
	IsPrimary    *bool   `json:"is_primary" binding:"omitempty"`                                 // 是否主要关系
	PrivacyLevel *string `json:"privacy_level" binding:"omitempty,oneof=public friends private"` // 可见性
}

// RelationshipItem 关系 DTO
type RelationshipItem struct {
	Id            int64  `json:"id"`
	UserId        int64  `json:"user_id"`           // 发起方
	RelatedUserId int64  `json:"related_user_id"`   // 接收方
	Type          string `json:"relationship_type"` // 关系类型
	Name          string `json:"relationship_name"` // 关系称呼
	IsPrimary     bool   `json:"is_primary"`
	PrivacyLevel  string `json:"privacy_level"`
	Status        string `json:"status"`
	RequestedAt   string `json:"requested_at"`
	RespondedAt   string `json:"responded_at,omitempty"`
	ExpiresAt     string `json:"expires_at,omitempty"`
}

// NewRelationshipItem 由关系实体构造 DTO
func NewRelationshipItem(rel *model.Relationship) *RelationshipItem {
	return &RelationshipItem{
		Id:            rel.Id,
		UserId:        rel.UserId,
		RelatedUserId: rel.RelatedUserId,
		Type:          rel.Type,
		Name:          rel.Name,
		IsPrimary:     rel.IsPrimary,
		PrivacyLevel:  rel.PrivacyLevel,
		Status:        rel.Status,
		RequestedAt:   formatTime(rel.RequestedAt),
		RespondedAt:   formatTimePtr(rel.RespondedAt),
		ExpiresAt:     formatTimePtr(rel.ExpiresAt),
	}
}

// NewRelationshipItems 批量转换
func NewRelationshipItems(rels []*model.Relationship) []*RelationshipItem {
	items := make([]*RelationshipItem, 0, len(rels))
	for _, rel := range rels {
		items = append(items, NewRelationshipItem(rel))
	}
	return items
}
