package model

import (
	"time"

	"gorm.io/gorm"
)

// Package 打包套餐表（一口价组合多类服务）。
type Package struct {
	Id          int64  `gorm:"column:id;primaryKey;autoIncrement;comment:自增id"`
	Name        string `gorm:"column:name;type:varchar(200);not null;comment:套餐名称"`
	Description string `gorm:"column:description;type:text;comment:描述"`

	Price              float64  `gorm:"column:price;type:decimal(12,2);not null;comment:套餐价"`
	OriginalPrice      *float64 `gorm:"column:original_price;type:decimal(12,2);comment:原价"`
	DiscountPercentage int      `gorm:"column:discount_percentage;not null;default:0;comment:折扣百分比"`

	Duration string     `gorm:"column:duration;type:varchar(50);comment:时长 如 3 Days"`
	Includes StringList `gorm:"column:includes;type:json;comment:包含的服务列表"`
	Vendors  MapList    `gorm:"column:vendors;type:json;comment:关联商家映射列表"`

	IsPopular      bool `gorm:"column:is_popular;not null;default:0;comment:是否热门"`
	IsCustomizable bool `gorm:"column:is_customizable;not null;default:1;comment:是否可定制"`
	IsActive       bool `gorm:"column:is_active;not null;default:1;comment:是否上架"`

	ImageUrl string `gorm:"column:image_url;type:varchar(500);comment:封面图URL"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Package) TableName() string { return "packages" }
