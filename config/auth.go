package config

import "time"

// AuthConfig 认证配置。
// 双通道：优先 Firebase ID Token 校验，失败后回退到本服务签发的 JWT。
type AuthConfig struct {
	// JWT 配置（本服务签发的访问令牌）
	JWTSecret   string        `json:"-" yaml:"jwtSecret"`                 // HS256 签名密钥，严禁打印
	JWTIssuer   string        `json:"jwtIssuer" yaml:"jwtIssuer"`         // 签发方标识
	AccessTTL   time.Duration `json:"accessTtl" yaml:"accessTtl"`         // 访问令牌有效期
	ClockSkew   time.Duration `json:"clockSkew" yaml:"clockSkew"`         // 校验时允许的时钟偏移
	HeaderName  string        `json:"headerName" yaml:"headerName"`       // 携带令牌的请求头
	TokenPrefix string        `json:"tokenPrefix" yaml:"tokenPrefix"`     // 令牌前缀，如 "Bearer "
	// Firebase 配置
	FirebaseCredentialsFile string `json:"firebaseCredentialsFile" yaml:"firebaseCredentialsFile"` // 服务账号凭证文件路径
	FirebaseProjectID       string `json:"firebaseProjectId" yaml:"firebaseProjectId"`             // 项目 ID（凭证文件里有则可留空）
}

// DefaultAuthConfig 返回本地开发的默认配置
func DefaultAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret:               "dev-secret-change-me",
		JWTIssuer:               "weddingserver",
		AccessTTL:               30 * 24 * time.Hour, // 移动端长会话
		ClockSkew:               30 * time.Second,
		HeaderName:              "Authorization",
		TokenPrefix:             "Bearer ",
		FirebaseCredentialsFile: "firebase-credentials.json",
		FirebaseProjectID:       "",
	}
}

// AuthConfigFromEnv 在默认配置的基础上套用环境变量覆盖
func AuthConfigFromEnv() AuthConfig {
	cfg := DefaultAuthConfig()
	cfg.JWTSecret = envString("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = envString("JWT_ISSUER", cfg.JWTIssuer)
	if minutes := envInt("ACCESS_TOKEN_EXPIRE_MINUTES", 0); minutes > 0 {
		cfg.AccessTTL = time.Duration(minutes) * time.Minute
	}
	cfg.FirebaseCredentialsFile = envString("FIREBASE_CREDENTIALS_FILE", cfg.FirebaseCredentialsFile)
	cfg.FirebaseProjectID = envString("FIREBASE_PROJECT_ID", cfg.FirebaseProjectID)
	return cfg
}
