package config

import "time"

// MinIOConfig MinIO 对象存储配置。
// 存放商家图片，上传后返回可公开访问的 URL。
type MinIOConfig struct {
	// 连接配置
	Endpoint        string `json:"endpoint" yaml:"endpoint"`               // MinIO 服务地址，如: localhost:9000
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`         // Access Key
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"` // Secret Key
	UseSSL          bool   `json:"useSSL" yaml:"useSSL"`                   // 是否使用 HTTPS

	// Bucket 配置
	BucketName string `json:"bucketName" yaml:"bucketName"` // 默认存储桶名称
	Location   string `json:"location" yaml:"location"`     // Bucket 区域，如: us-east-1

	// 上传配置
	MaxFileSize   int64         `json:"maxFileSize" yaml:"maxFileSize"`     // 最大文件大小（字节）
	AllowedTypes  []string      `json:"allowedTypes" yaml:"allowedTypes"`   // 允许的文件类型
	UploadTimeout time.Duration `json:"uploadTimeout" yaml:"uploadTimeout"` // 上传超时时间

	// 访问配置
	PublicRead bool   `json:"publicRead" yaml:"publicRead"` // 是否公开读取
	BaseURL    string `json:"baseUrl" yaml:"baseUrl"`       // 外部访问的基础 URL
}

// DefaultMinIOConfig 返回本地开发的默认配置（与 docker-compose.yml 对齐）
func DefaultMinIOConfig() MinIOConfig {
	return MinIOConfig{
		Endpoint:        "minio:9000",
		AccessKeyID:     "minioadmin",
		SecretAccessKey: "minioadmin",
		UseSSL:          false,
		BucketName:      "weddingserver",
		Location:        "us-east-1",
		MaxFileSize:     10 * 1024 * 1024, // 10MB
		AllowedTypes:    []string{"image/jpeg", "image/jpg", "image/png", "image/webp"},
		UploadTimeout:   30 * time.Second,
		PublicRead:      true, // 商家图片公开访问
		BaseURL:         "http://localhost:9000",
	}
}

// MinIOConfigFromEnv 在默认配置的基础上套用环境变量覆盖
func MinIOConfigFromEnv() MinIOConfig {
	cfg := DefaultMinIOConfig()
	cfg.Endpoint = envString("MINIO_ENDPOINT", cfg.Endpoint)
	cfg.AccessKeyID = envString("MINIO_ACCESS_KEY", cfg.AccessKeyID)
	cfg.SecretAccessKey = envString("MINIO_SECRET_KEY", cfg.SecretAccessKey)
	cfg.UseSSL = envBool("MINIO_USE_SSL", cfg.UseSSL)
	cfg.BucketName = envString("MINIO_BUCKET", cfg.BucketName)
	cfg.BaseURL = envString("MINIO_BASE_URL", cfg.BaseURL)
	return cfg
}
