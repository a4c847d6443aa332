package dto

// ==================== Google 评论代理相关 DTO ====================

// ReviewItem 单条评论 DTO
type ReviewItem struct {
	AuthorName  string  `json:"author_name"`  // 作者
	Rating      float64 `json:"rating"`       // 评分
	Text        string  `json:"text"`         // 内容
	TimeDesc    string  `json:"time_desc"`    // 相对时间描述，如 "a month ago"
	ProfilePhoto string `json:"profile_photo"` // 头像 URL
}

// ReviewsResponse 评论响应 DTO
type ReviewsResponse struct {
	Rating      float64       `json:"rating"`       // 商家总评分
	ReviewCount int           `json:"review_count"` // 评论总数
	Reviews     []*ReviewItem `json:"reviews"`      // 评论列表
	Source      string        `json:"source"`       // 数据来源 google / fallback
}
