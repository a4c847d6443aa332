package model

import (
	"time"

	"gorm.io/gorm"
)

// Wedding 婚礼计划表。
// Events/Categories/FamilyDetails 是前端自由结构，存 JSON 列，后端不解释内容。
type Wedding struct {
	Id     int64  `gorm:"column:id;primaryKey;autoIncrement;comment:自增id"`
	UserId int64  `gorm:"column:user_id;not null;index;comment:归属用户id"`
	Name   string `gorm:"column:name;type:varchar(200);not null;comment:婚礼名称"`
	City   string `gorm:"column:city;type:varchar(100);not null;comment:举办城市"`

	Date        time.Time `gorm:"column:date;not null;comment:婚礼日期"`
	IsDateFixed bool      `gorm:"column:is_date_fixed;not null;default:0;comment:日期是否已确定"`
	Duration    int       `gorm:"column:duration;not null;default:2;comment:持续天数"`

	Events     MapList    `gorm:"column:events;type:json;comment:活动列表"`
	Categories StringList `gorm:"column:categories;type:json;comment:服务类目列表"`

	EstimatedGuests int  `gorm:"column:estimated_guests;not null;default:100;comment:预估宾客数"`
	ActualGuests    *int `gorm:"column:actual_guests;comment:实际宾客数"`

	Budget float64 `gorm:"column:budget;type:decimal(12,2);not null;comment:预算"`
	Spent  float64 `gorm:"column:spent;type:decimal(12,2);not null;default:0;comment:已花费"`

	Status        string  `gorm:"column:status;type:varchar(50);not null;default:'planning';comment:状态 planning/partially_booked/booked/completed"`
	FamilyDetails MapList `gorm:"column:family_details;type:json;comment:家庭成员列表"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Wedding) TableName() string { return "weddings" }

// 婚礼状态
const (
	WeddingStatusPlanning        = "planning"
	WeddingStatusPartiallyBooked = "partially_booked"
	WeddingStatusBooked          = "booked"
	WeddingStatusCompleted       = "completed"
)
