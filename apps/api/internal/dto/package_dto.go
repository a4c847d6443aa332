package dto

import "WeddingServer/model"

// ==================== 套餐相关 DTO ====================

// PackageItem 套餐 DTO
type PackageItem struct {
	Id                 int64                    `json:"id"`
	Name               string                   `json:"name"`
	Description        string                   `json:"description"`
	Price              float64                  `json:"price"`
	OriginalPrice      *float64                 `json:"original_price,omitempty"`
	DiscountPercentage int                      `json:"discount_percentage"`
	Duration           string                   `json:"duration"`
	Includes           []string                 `json:"includes"`
	Vendors            []map[string]interface{} `json:"vendors"`
	IsPopular          bool                     `json:"is_popular"`
	IsCustomizable     bool                     `json:"is_customizable"`
	ImageUrl           string                   `json:"image_url"`
}

// NewPackageItem 由套餐实体构造 DTO
func NewPackageItem(p *model.Package) *PackageItem {
	return &PackageItem{
		Id:                 p.Id,
		Name:               p.Name,
		Description:        p.Description,
		Price:              p.Price,
		OriginalPrice:      p.OriginalPrice,
		DiscountPercentage: p.DiscountPercentage,
		Duration:           p.Duration,
		Includes:           p.Includes,
		Vendors:            p.Vendors,
		IsPopular:          p.IsPopular,
		IsCustomizable:     p.IsCustomizable,
		ImageUrl:           p.ImageUrl,
	}
}

// NewPackageItems 批量转换
func NewPackageItems(pkgs []*model.Package) []*PackageItem {
	items := make([]*PackageItem, 0, len(pkgs))
	for _, p := range pkgs {
		items = append(items, NewPackageItem(p))
	}
	return items
}
