package dto

import (
	"time"

	"WeddingServer/model"
)

// ==================== 通用 DTO 定义 ====================

// PaginationInfo 分页信息 DTO
type PaginationInfo struct {
	Page     int   `json:"page"`      // 当前页码
	PageSize int   `json:"page_size"` // 每页大小
	Total    int64 `json:"total"`     // 总条数
}

// UserInfo 用户信息 DTO
type UserInfo struct {
	Id          int64  `json:"id"`           // 用户 id
	PhoneNumber string `json:"phone_number"` // 手机号
	Name        string `json:"name"`         // 姓名
	Email       string `json:"email"`        // 邮箱
	Locality    string `json:"locality"`     // 所在城市
	IsActive    bool   `json:"is_active"`    // 是否可用
	IsVerified  bool   `json:"is_verified"`  // 手机号是否已验证
	CreatedAt   string `json:"created_at"`   // 创建时间(RFC3339)
}

// NewUserInfo 由用户实体构造 DTO
func NewUserInfo(user *model.User) *UserInfo {
	info := &UserInfo{
		Id:          user.Id,
		PhoneNumber: user.PhoneNumber,
		Name:        user.Name,
		Locality:    user.Locality,
		IsActive:    user.IsActive,
		IsVerified:  user.IsVerified,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
	if user.Email != nil {
		info.Email = *user.Email
	}
	return info
}

// formatTime 输出 RFC3339，零值输出空串
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// formatTimePtr 指针时间的 RFC3339，nil 输出空串
func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
