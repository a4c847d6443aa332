package dto

import (
	"time"

	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/model"
)

// ==================== 购物车相关 DTO ====================

// CreateCartItemRequest 加入购物车请求 DTO
type CreateCartItemRequest struct {
	WeddingId   int64     `json:"wedding_id" binding:"required,min=1"`
	VendorId    int64     `json:"vendor_id" binding:"required,min=1"`
	Category    string    `json:"category" binding:"required,max=100"`
	Price       float64   `json:"price" binding:"required,gt=0"`
	BookingDate time.Time `json:"booking_date" binding:"required"`
	Notes       string    `json:"notes"`
}

// UpdateCartItemRequest 更新购物车条目请求 DTO
type UpdateCartItemRequest struct {
	Status      *string    `json:"status" binding:"omitempty,oneof=wishlisted visited selected booked"`
	Price       *float64   `json:"price" binding:"omitempty,gt=0"`
	BookingDate *time.Time `json:"booking_date"`
	VisitDate   *time.Time `json:"visit_date"`
	Notes       *string    `json:"notes"`
}

// CartItemView 购物车条目 DTO
type CartItemView struct {
	Id          int64   `json:"id"`
	WeddingId   int64   `json:"wedding_id"`
	VendorId    int64   `json:"vendor_id"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	BookingDate string  `json:"booking_date"`
	Status      string  `json:"status"`
	VisitDate   string  `json:"visit_date,omitempty"`
	BookingNo   string  `json:"booking_no,omitempty"`
	Notes       string  `json:"notes"`
	CreatedAt   string  `json:"created_at"`
}

// CartSummaryResponse 购物车汇总响应 DTO
type CartSummaryResponse struct {
	TotalItems int            `json:"total_items"`
	TotalPrice float64        `json:"total_price"`
	ByStatus   map[string]int `json:"by_status"`
}

// NewCartItemView 由购物车实体构造 DTO
func NewCartItemView(item *model.CartItem) *CartItemView {
	return &CartItemView{
		Id:          item.Id,
		WeddingId:   item.WeddingId,
		VendorId:    item.VendorId,
		Category:    item.Category,
		Price:       item.Price,
		BookingDate: formatTime(item.BookingDate),
		Status:      item.Status,
		VisitDate:   formatTimePtr(item.VisitDate),
		BookingNo:   item.BookingNo,
		Notes:       item.Notes,
		CreatedAt:   formatTime(item.CreatedAt),
	}
}

// NewCartItemViews 批量转换
func NewCartItemViews(items []*model.CartItem) []*CartItemView {
	views := make([]*CartItemView, 0, len(items))
	for _, item := range items {
		views = append(views, NewCartItemView(item))
	}
	return views
}

// NewCartSummaryResponse 由仓储汇总结果构造 DTO
func NewCartSummaryResponse(summary *repository.CartSummary) *CartSummaryResponse {
	return &CartSummaryResponse{
		TotalItems: summary.TotalItems,
		TotalPrice: summary.TotalPrice,
		ByStatus:   summary.ByStatus,
	}
}
