package dto

// ==================== 认证相关 DTO ====================

// FirebaseSignupRequest Firebase 注册/补资料请求 DTO。
// 手机号和 UID 不在请求体里，一律取自已校验的凭证。
type FirebaseSignupRequest struct {
	Name     string `json:"name" binding:"omitempty,max=100"`           // 姓名
	Email    string `json:"email" binding:"omitempty,email,max=100"`   // 邮箱
	Locality string `json:"locality" binding:"omitempty,max=100"`      // 所在城市
}

// TokenResponse 令牌响应 DTO
type TokenResponse struct {
	AccessToken string `json:"access_token"` // 访问令牌
	TokenType   string `json:"token_type"`   // 固定 bearer
	ExpiresIn   int64  `json:"expires_in"`   // 有效期（秒）
}

// SignupResponse 注册响应 DTO
type SignupResponse struct {
	User  *UserInfo      `json:"user"`  // 注册/合并后的用户
	Token *TokenResponse `json:"token"` // 同时签发的访问令牌
}

// UpdateProfileRequest 更新个人资料请求 DTO
type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`         // 姓名
	Email    *string `json:"email" binding:"omitempty,email,max=100"`  // 邮箱
	Locality *string `json:"locality" binding:"omitempty,max=100"`     // 所在城市
}
