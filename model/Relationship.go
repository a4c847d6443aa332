package model

import (
	"time"
)

// Relationship 用户关系表（配偶/父母/子女/兄弟姐妹等）。
// 约束：uniqueIndex:uidx_user_related_type 保证同一对用户同一种关系只存在一条记录，
// 重复发起走 400 而不是插入第二条。
// 删除是物理删除：删掉的边会从唯一索引里移出，同一三元组可以重新发起。
type Relationship struct {
	Id            int64  `gorm:"column:id;primaryKey;autoIncrement;comment:自增id"`
	UserId        int64  `gorm:"column:user_id;not null;uniqueIndex:uidx_user_related_type;index:idx_user_status;comment:发起方用户id"`
	RelatedUserId int64  `gorm:"column:related_user_id;not null;uniqueIndex:uidx_user_related_type;index:idx_related_status;comment:接收方用户id"`
	Type          string `gorm:"column:relationship_type;type:varchar(50);not null;uniqueIndex:uidx_user_related_type;comment:关系类型 spouse/parent/child/sibling/other"`
	Name          string `gorm:"column:relationship_name;type:varchar(100);not null;comment:关系称呼 如 Mother/Sister"`

	IsPrimary    bool   `gorm:"column:is_primary;not null;default:1;comment:是否主要关系"`
	PrivacyLevel string `gorm:"column:privacy_level;type:varchar(20);not null;default:'private';comment:可见性 public/friends/private"`
	Status       string `gorm:"column:status;type:varchar(20);not null;default:'pending';index:idx_user_status;index:idx_related_status;comment:状态 pending/accepted/rejected"`

	RequestedAt time.Time  `gorm:"column:requested_at;autoCreateTime;comment:发起时间"`
	RespondedAt *time.Time `gorm:"column:responded_at;comment:响应时间"`
	ExpiresAt   *time.Time `gorm:"column:expires_at;index;comment:待处理请求的过期时间"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Relationship) TableName() string { return "relationships" }

// 关系请求状态
const (
	RelationshipStatusPending  = "pending"  // 待对方处理
	RelationshipStatusAccepted = "accepted" // 已接受
	RelationshipStatusRejected = "rejected" // 已拒绝
)

// 关系可见性
const (
	PrivacyLevelPublic  = "public"
	PrivacyLevelFriends = "friends"
	PrivacyLevelPrivate = "private"
)

// PendingExpireDuration 待处理请求的有效期，超时后对方不可再响应
const PendingExpireDuration = 7 * 24 * time.Hour

// ValidRelationshipTypes 允许的关系类型
var ValidRelationshipTypes = []string{"spouse", "parent", "child", "sibling", "other"}

// IsValidRelationshipType 校验关系类型取值
func IsValidRelationshipType(t string) bool {
	for _, v := range ValidRelationshipTypes {
		if v == t {
			return true
		}
	}
	return false
}

// IsExpired 判断待处理请求是否已过期
func (r *Relationship) IsExpired(now time.Time) bool {
	return r.ExpiresAt != nil && !r.ExpiresAt.After(now)
}
