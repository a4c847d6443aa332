package model

import (
	"time"

	"gorm.io/gorm"
)

// CartItem 购物车/预订条目：一个婚礼对一个商家的一次选择。
// BookingNo 在状态推进到 booked 时用雪花算法生成，作为对外的预订凭证号。
type CartItem struct {
	Id        int64 `gorm:"column:id;primaryKey;autoIncrement;comment:自增id"`
	UserId    int64 `gorm:"column:user_id;not null;index;comment:归属用户id"`
	WeddingId int64 `gorm:"column:wedding_id;not null;index;comment:归属婚礼id"`
	VendorId  int64 `gorm:"column:vendor_id;not null;index;comment:商家id"`

	Category    string    `gorm:"column:category;type:varchar(100);not null;comment:服务类目"`
	Price       float64   `gorm:"column:price;type:decimal(12,2);not null;comment:价格"`
	BookingDate time.Time `gorm:"column:booking_date;not null;comment:预订服务日期"`

	Status    string     `gorm:"column:status;type:varchar(50);not null;default:'wishlisted';comment:状态 wishlisted/visited/selected/booked"`
	VisitDate *time.Time `gorm:"column:visit_date;comment:到店参观日期"`
	BookingNo string     `gorm:"column:booking_no;type:varchar(32);comment:预订凭证号"`
	Notes     string     `gorm:"column:notes;type:text;comment:备注"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (CartItem) TableName() string { return "cart_items" }

// 购物车条目状态
const (
	CartStatusWishlisted = "wishlisted" // 收藏
	CartStatusVisited    = "visited"    // 已参观
	CartStatusSelected   = "selected"   // 已选定
	CartStatusBooked     = "booked"     // 已预订
)
