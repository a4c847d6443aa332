package model

import (
	"time"

	"gorm.io/gorm"
)

// Guest 宾客表，挂在具体婚礼下。
type Guest struct {
	Id        int64 `gorm:"column:id;primaryKey;autoIncrement;comment:自增id"`
	UserId    int64 `gorm:"column:user_id;not null;index;comment:归属用户id"`
	WeddingId int64 `gorm:"column:wedding_id;not null;index;comment:归属婚礼id"`

	Name        string `gorm:"column:name;type:varchar(200);not null;comment:姓名"`
	PhoneNumber string `gorm:"column:phone_number;type:varchar(20);not null;comment:手机号"`
	Email       string `gorm:"column:email;type:varchar(100);comment:邮箱"`
	Relation    string `gorm:"column:relation;type:varchar(100);comment:与主人的关系"`
	Category    string `gorm:"column:category;type:varchar(50);not null;default:'Family';comment:分组 Family/Friends/Colleagues"`

	ConfirmationStatus string     `gorm:"column:confirmation_status;type:varchar(50);not null;default:'pending';comment:出席确认 pending/confirmed/declined"`
	InvitationSent     bool       `gorm:"column:invitation_sent;not null;default:0;comment:邀请是否已发送"`
	InvitationSentAt   *time.Time `gorm:"column:invitation_sent_at;comment:邀请发送时间"`
	ResponseAt         *time.Time `gorm:"column:response_at;comment:回复时间"`
	Notes              string     `gorm:"column:notes;type:text;comment:备注"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Guest) TableName() string { return "guests" }

// 宾客出席确认状态
const (
	GuestStatusPending   = "pending"
	GuestStatusConfirmed = "confirmed"
	GuestStatusDeclined  = "declined"
)
