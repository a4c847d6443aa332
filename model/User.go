package model

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表。
// 手机号是身份的主键维度：Firebase 登录和历史 JWT 登录最终都落到同一条手机号记录上。
// FirebaseUid 用指针，老用户没绑定过 Firebase 时为 NULL，不占用唯一索引。
type User struct {
	Id          int64   `gorm:"column:id;primaryKey;autoIncrement;comment:自增id"`
	PhoneNumber string  `gorm:"column:phone_number;type:varchar(20);not null;uniqueIndex:uidx_phone;comment:手机号(E.164)"`
	FirebaseUid *string `gorm:"column:firebase_uid;type:varchar(128);uniqueIndex:uidx_firebase_uid;comment:Firebase UID"`
	Name        string  `gorm:"column:name;type:varchar(100);comment:姓名"`
	Email       *string `gorm:"column:email;type:varchar(100);uniqueIndex:uidx_email;comment:邮箱"`
	Locality    string  `gorm:"column:locality;type:varchar(100);comment:所在城市"`

	IsActive   bool `gorm:"column:is_active;not null;default:1;comment:是否可用 停用后所有凭证拒绝"`
	IsVerified bool `gorm:"column:is_verified;not null;default:0;comment:手机号是否已验证"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string { return "users" }
