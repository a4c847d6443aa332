package dto

import (
	"time"

	"WeddingServer/model"
)

// ==================== 婚礼相关 DTO ====================

// CreateWeddingRequest 创建婚礼请求 DTO
type CreateWeddingRequest struct {
	Name            string                   `json:"name" binding:"required,max=200"`          // 婚礼名称
	City            string                   `json:"city" binding:"required,max=100"`          // 举办城市
	Date            time.Time                `json:"date" binding:"required"`                  // 婚礼日期
	IsDateFixed     bool                     `json:"is_date_fixed"`                            // 日期是否已确定
	Duration        int                      `json:"duration" binding:"omitempty,min=1,max=30"` // 持续天数
	Events          []map[string]interface{} `json:"events"`                                   // 活动列表
	Categories      []string                 `json:"categories"`                               // 服务类目
	EstimatedGuests int                      `json:"estimated_guests" binding:"omitempty,min=1"` // 预估宾客数
	Budget          float64                  `json:"budget" binding:"required,gt=0"`           // 预算
	FamilyDetails   []map[string]interface{} `json:"family_details"`                           // 家庭成员
}

// UpdateWeddingRequest 更新婚礼请求 DTO，指针字段区分"不改"和"清空"
type UpdateWeddingRequest struct {
	Name            *string                  `json:"name" binding:"omitempty,max=200"`
	City            *string                  `json:"city" binding:"omitempty,max=100"`
	Date            *time.Time               `json:"date"`
	IsDateFixed     *bool                    `json:"is_date_fixed"`
	Duration        *int                     `json:"duration" binding:"omitempty,min=1,max=30"`
	Events          []map[string]interface{} `json:"events"`
	Categories      []string                 `json:"categories"`
	EstimatedGuests *int                     `json:"estimated_guests" binding:"omitempty,min=1"`
	ActualGuests    *int                     `json:"actual_guests" binding:"omitempty,min=0"`
	Budget          *float64                 `json:"budget" binding:"omitempty,gt=0"`
	Spent           *float64                 `json:"spent" binding:"omitempty,min=0"`
	Status          *string                  `json:"status" binding:"omitempty,oneof=planning partially_booked booked completed"`
	FamilyDetails   []map[string]interface{} `json:"family_details"`
}

// WeddingItem 婚礼 DTO
type WeddingItem struct {
	Id              int64                    `json:"id"`
	Name            string                   `json:"name"`
	City            string                   `json:"city"`
	Date            string                   `json:"date"`
	IsDateFixed     bool                     `json:"is_date_fixed"`
	Duration        int                      `json:"duration"`
	Events          []map[string]interface{} `json:"events"`
	Categories      []string                 `json:"categories"`
	EstimatedGuests int                      `json:"estimated_guests"`
	ActualGuests    *int                     `json:"actual_guests,omitempty"`
	Budget          float64                  `json:"budget"`
	Spent           float64                  `json:"spent"`
	Status          string                   `json:"status"`
	FamilyDetails   []map[string]interface{} `json:"family_details"`
	CreatedAt       string                   `json:"created_at"`
}

// NewWeddingItem 由婚礼实体构造 DTO
func NewWeddingItem(w *model.Wedding) *WeddingItem {
	return &WeddingItem{
		Id:              w.Id,
		Name:            w.Name,
		City:            w.City,
		Date:            formatTime(w.Date),
		IsDateFixed:     w.IsDateFixed,
		Duration:        w.Duration,
		Events:          w.Events,
		Categories:      w.Categories,
		EstimatedGuests: w.EstimatedGuests,
		ActualGuests:    w.ActualGuests,
		Budget:          w.Budget,
		Spent:           w.Spent,
		Status:          w.Status,
		FamilyDetails:   w.FamilyDetails,
		CreatedAt:       formatTime(w.CreatedAt),
	}
}

// NewWeddingItems 批量转换
func NewWeddingItems(weddings []*model.Wedding) []*WeddingItem {
	items := make([]*WeddingItem, 0, len(weddings))
	for _, w := range weddings {
		items = append(items, NewWeddingItem(w))
	}
	return items
}
