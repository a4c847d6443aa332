package model

import (
	"time"

	"gorm.io/gorm"
)

// Vendor 商家表（场地/摄影/化妆等服务商）。
// 列表页按 category/locality 过滤，都有索引。
type Vendor struct {
	Id          int64  `gorm:"column:id;primaryKey;autoIncrement;comment:自增id"`
	Name        string `gorm:"column:name;type:varchar(200);not null;index;comment:商家名称"`
	Category    string `gorm:"column:category;type:varchar(100);not null;index;comment:服务类目"`
	Locality    string `gorm:"column:locality;type:varchar(100);not null;index;comment:所在城市"`
	Description string `gorm:"column:description;type:text;comment:描述"`

	Images       StringList `gorm:"column:images;type:json;comment:图片URL列表"`
	Availability StringList `gorm:"column:availability;type:json;comment:可预订日期列表"`
	Services     StringList `gorm:"column:services;type:json;comment:提供的服务列表"`
	Portfolio    StringList `gorm:"column:portfolio;type:json;comment:作品集图片URL列表"`

	PriceMin *float64 `gorm:"column:price_min;type:decimal(12,2);comment:最低价"`
	PriceMax *float64 `gorm:"column:price_max;type:decimal(12,2);comment:最高价"`

	Rating      float64 `gorm:"column:rating;type:decimal(3,2);not null;default:0;comment:评分"`
	ReviewCount int     `gorm:"column:review_count;not null;default:0;comment:评论数"`

	ContactPhone   string `gorm:"column:contact_phone;type:varchar(20);comment:联系电话"`
	ContactEmail   string `gorm:"column:contact_email;type:varchar(100);comment:联系邮箱"`
	ContactWebsite string `gorm:"column:contact_website;type:varchar(200);comment:官网"`

	IsActive   bool `gorm:"column:is_active;not null;default:1;comment:是否上架"`
	IsFeatured bool `gorm:"column:is_featured;not null;default:0;comment:是否推荐位"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Vendor) TableName() string { return "vendors" }
