package dto

import "WeddingServer/model"

// ==================== 商家相关 DTO ====================

// ListVendorsRequest 商家列表请求 DTO
type ListVendorsRequest struct {
	Category string `form:"category" binding:"omitempty,max=100"`        // 类目过滤
	Locality string `form:"locality" binding:"omitempty,max=100"`        // 城市过滤
	Featured *bool  `form:"featured" binding:"omitempty"`                // 推荐位过滤
	Page     int    `form:"page" binding:"omitempty,min=1"`              // 页码
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"` // 每页大小
}

// CreateVendorRequest 创建商家请求 DTO
type CreateVendorRequest struct {
	Name           string   `json:"name" binding:"required,max=200"`
	Category       string   `json:"category" binding:"required,max=100"`
	Locality       string   `json:"locality" binding:"required,max=100"`
	Description    string   `json:"description"`
	Images         []string `json:"images"`
	PriceMin       *float64 `json:"price_min" binding:"omitempty,min=0"`
	PriceMax       *float64 `json:"price_max" binding:"omitempty,min=0"`
	Availability   []string `json:"availability"`
	Services       []string `json:"services"`
	Portfolio      []string `json:"portfolio"`
	ContactPhone   string   `json:"contact_phone" binding:"omitempty,max=20"`
	ContactEmail   string   `json:"contact_email" binding:"omitempty,email,max=100"`
	ContactWebsite string   `json:"contact_website" binding:"omitempty,max=200"`
	IsFeatured     bool     `json:"is_featured"`
}

// UpdateVendorRequest 更新商家请求 DTO
type UpdateVendorRequest struct {
	Name           *string  `json:"name" binding:"omitempty,max=200"`
	Category       *string  `json:"category" binding:"omitempty,max=100"`
	Locality       *string  `json:"locality" binding:"omitempty,max=100"`
	Description    *string  `json:"description"`
	Images         []string `json:"images"`
	PriceMin       *float64 `json:"price_min" binding:"omitempty,min=0"`
	PriceMax       *float64 `json:"price_max" binding:"omitempty,min=0"`
	Availability   []string `json:"availability"`
	Services       []string `json:"services"`
	Portfolio      []string `json:"portfolio"`
	ContactPhone   *string  `json:"contact_phone" binding:"omitempty,max=20"`
	ContactEmail   *string  `json:"contact_email" binding:"omitempty,email,max=100"`
	ContactWebsite *string  `json:"contact_website" binding:"omitempty,max=200"`
	IsFeatured     *bool    `json:"is_featured"`
	IsActive       *bool    `json:"is_active"`
}

// VendorItem 商家 DTO
type VendorItem struct {
	Id             int64    `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Locality       string   `json:"locality"`
	Description    string   `json:"description"`
	Images         []string `json:"images"`
	PriceMin       *float64 `json:"price_min,omitempty"`
	PriceMax       *float64 `json:"price_max,omitempty"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	Availability   []string `json:"availability"`
	Services       []string `json:"services"`
	Portfolio      []string `json:"portfolio"`
	ContactPhone   string   `json:"contact_phone"`
	ContactEmail   string   `json:"contact_email"`
	ContactWebsite string   `json:"contact_website"`
	IsFeatured     bool     `json:"is_featured"`
}

// ListVendorsResponse 商家列表响应 DTO
type ListVendorsResponse struct {
	Items      []*VendorItem   `json:"items"`
	Pagination *PaginationInfo `json:"pagination"`
}

// UploadImageResponse 商家图片上传响应 DTO
type UploadImageResponse struct {
	URL         string `json:"url"`          // 图片访问地址
	ObjectName  string `json:"object_name"`  // 存储对象名
	Size        int64  `json:"size"`         // 大小（字节）
	ContentType string `json:"content_type"` // 类型
}

// NewVendorItem 由商家实体构造 DTO
func NewVendorItem(v *model.Vendor) *VendorItem {
	return &VendorItem{
		Id:             v.Id,
		Name:           v.Name,
		Category:       v.Category,
		Locality:       v.Locality,
		Description:    v.Description,
		Images:         v.Images,
		PriceMin:       v.PriceMin,
		PriceMax:       v.PriceMax,
		Rating:         v.Rating,
		ReviewCount:    v.ReviewCount,
		Availability:   v.Availability,
		Services:       v.Services,
		Portfolio:      v.Portfolio,
		ContactPhone:   v.ContactPhone,
		ContactEmail:   v.ContactEmail,
		ContactWebsite: v.ContactWebsite,
		IsFeatured:     v.IsFeatured,
	}
}

// NewVendorItems 批量转换
func NewVendorItems(vendors []*model.Vendor) []*VendorItem {
	items := make([]*VendorItem, 0, len(vendors))
	for _, v := range vendors {
		items = append(items, NewVendorItem(v))
	}
	return items
}
