package dto

import (
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/model"
)

// ==================== 宾客相关 DTO ====================

// CreateGuestRequest 添加宾客请求 DTO
type CreateGuestRequest struct {
	WeddingId   int64  `json:"wedding_id" binding:"required,min=1"`
	Name        string `json:"name" binding:"required,max=200"`
	PhoneNumber string `json:"phone_number" binding:"required,max=20"`
	Email       string `json:"email" binding:"omitempty,email,max=100"`
	Relation    string `json:"relation" binding:"omitempty,max=100"`
	Category    string `json:"category" binding:"omitempty,max=50"`
	Notes       string `json:"notes"`
}

// UpdateGuestRequest 更新宾客请求 DTO
type UpdateGuestRequest struct {
	Name               *string `json:"name" binding:"omitempty,max=200"`
	PhoneNumber        *string `json:"phone_number" binding:"omitempty,max=20"`
	Email              *string `json:"email" binding:"omitempty,email,max=100"`
	Relation           *string `json:"relation" binding:"omitempty,max=100"`
	Category           *string `json:"category" binding:"omitempty,max=50"`
	ConfirmationStatus *string `json:"confirmation_status" binding:"omitempty,oneof=pending confirmed declined"`
	Notes              *string `json:"notes"`
}

// GuestItem 宾客 DTO
type GuestItem struct {
	Id                 int64  `json:"id"`
	WeddingId          int64  `json:"wedding_id"`
	Name               string `json:"name"`
	PhoneNumber        string `json:"phone_number"`
	Email              string `json:"email"`
	Relation           string `json:"relation"`
	Category           string `json:"category"`
	ConfirmationStatus string `json:"confirmation_status"`
	InvitationSent     bool   `json:"invitation_sent"`
	InvitationSentAt   string `json:"invitation_sent_at,omitempty"`
	ResponseAt         string `json:"response_at,omitempty"`
	Notes              string `json:"notes"`
}

// GuestStatsResponse 宾客统计响应 DTO
type GuestStatsResponse struct {
	Total           int `json:"total"`
	Confirmed       int `json:"confirmed"`
	Declined        int `json:"declined"`
	Pending         int `json:"pending"`
	InvitationsSent int `json:"invitations_sent"`
}

// SendInvitationResponse 发送邀请响应 DTO
type SendInvitationResponse struct {
	Queued int `json:"queued"` // 已入队的邀请数
}

// NewGuestItem 由宾客实体构造 DTO
func NewGuestItem(g *model.Guest) *GuestItem {
	return &GuestItem{
		Id:                 g.Id,
		WeddingId:          g.WeddingId,
		Name:               g.Name,
		PhoneNumber:        g.PhoneNumber,
		Email:              g.Email,
		Relation:           g.Relation,
		Category:           g.Category,
		ConfirmationStatus: g.ConfirmationStatus,
		InvitationSent:     g.InvitationSent,
		InvitationSentAt:   formatTimePtr(g.InvitationSentAt),
		ResponseAt:         formatTimePtr(g.ResponseAt),
		Notes:              g.Notes,
	}
}

// NewGuestItems 批量转换
func NewGuestItems(guests []*model.Guest) []*GuestItem {
	items := make([]*GuestItem, 0, len(guests))
	for _, g := range guests {
		items = append(items, NewGuestItem(g))
	}
	return items
}

// NewGuestStatsResponse 由仓储统计结果构造 DTO
func NewGuestStatsResponse(stats *repository.GuestStats) *GuestStatsResponse {
	return &GuestStatsResponse{
		Total:           stats.Total,
		Confirmed:       stats.Confirmed,
		Declined:        stats.Declined,
		Pending:         stats.Pending,
		InvitationsSent: stats.InvitationsSent,
	}
}
