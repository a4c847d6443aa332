package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"WeddingServer/config"
	"WeddingServer/pkg/logger"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var global *Client

// Client MinIO 客户端封装，只服务商家图片这一种场景
type Client struct {
	client *minio.Client
	config config.MinIOConfig
}

// Global 返回全局 MinIO 客户端（未初始化时为 nil）
func Global() *Client {
	return global
}

// ReplaceGlobal 设置全局 MinIO 客户端
func ReplaceGlobal(c *Client) {
	global = c
}

// Build 基于配置创建 MinIO 客户端，并确保 Bucket 存在。
func Build(cfg config.MinIOConfig) (*Client, error) {
	// 1. 验证必填配置
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("minio endpoint is empty")
	}
	if strings.TrimSpace(cfg.AccessKeyID) == "" || strings.TrimSpace(cfg.SecretAccessKey) == "" {
		return nil, errors.New("minio credentials are empty")
	}
	if strings.TrimSpace(cfg.BucketName) == "" {
		return nil, errors.New("minio bucketName is empty")
	}

	// 2. 创建 MinIO 客户端
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	c := &Client{client: mc, config: cfg}

	// 3. 确保 Bucket 存在
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := mc.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket exists: %w", err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Location}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Info(ctx, "MinIO Bucket 创建成功",
			logger.String("bucket", cfg.BucketName),
		)

		// 4. 商家图片需要公开访问，设置公开读策略
		if cfg.PublicRead {
			policy := fmt.Sprintf(`{
				"Version": "2012-10-17",
				"Statement": [
					{
						"Effect": "Allow",
						"Principal": {"AWS": ["*"]},
						"Action": ["s3:GetObject"],
						"Resource": ["arn:aws:s3:::%s/*"]
					}
				]
			}`, cfg.BucketName)
			if err := mc.SetBucketPolicy(ctx, cfg.BucketName, policy); err != nil {
				logger.Warn(ctx, "设置 Bucket 公开策略失败",
					logger.String("bucket", cfg.BucketName),
					logger.ErrorField(err),
				)
			}
		}
	}

	return c, nil
}

// UploadResult 上传结果
type UploadResult struct {
	ObjectName  string // 对象名称（完整路径，如: vendors/3/uuid.jpg）
	Size        int64  // 文件大小（字节）
	ETag        string // 文件的 MD5 哈希
	URL         string // 完整访问 URL
	ContentType string // 内容类型
}

// UploadImage 上传图片。
// 基于文件内容（Magic Bytes）检测真实类型，扩展名伪装的文件会被拒绝。
func (c *Client) UploadImage(ctx context.Context, reader io.Reader, fileSize int64, pathPrefix, fileName string) (*UploadResult, error) {
	// 1. 验证文件大小
	if c.config.MaxFileSize > 0 && fileSize > c.config.MaxFileSize {
		return nil, fmt.Errorf("文件大小超过限制: %d bytes (最大: %d bytes)", fileSize, c.config.MaxFileSize)
	}

	// 2. 读取前 512 字节检测真实 Content-Type（http.DetectContentType 的要求）
	buffer := make([]byte, 512)
	n, err := io.ReadFull(reader, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("读取文件内容失败: %w", err)
	}
	buffer = buffer[:n]
	contentType := http.DetectContentType(buffer)

	// 3. 验证类型在允许列表中
	if !c.isAllowedType(contentType) {
		logger.Warn(ctx, "文件类型不在允许列表中",
			logger.String("detected_type", contentType),
			logger.String("file_name", fileName),
			logger.Any("allowed_types", c.config.AllowedTypes),
		)
		return nil, fmt.Errorf("不支持的文件类型: %s", contentType)
	}

	// 4. 验证扩展名与真实类型一致（防止恶意文件伪装）
	if fileName != "" && !extensionMatches(fileName, contentType) {
		logger.Warn(ctx, "文件扩展名与实际内容类型不匹配",
			logger.String("file_name", fileName),
			logger.String("detected_type", contentType),
		)
		return nil, fmt.Errorf("文件扩展名与实际内容类型不匹配（检测到: %s）", contentType)
	}

	// 5. 生成对象名称（UUID 避免覆盖）
	objectName := uuid.New().String() + strings.ToLower(filepath.Ext(fileName))
	if prefix := strings.TrimSuffix(pathPrefix, "/"); prefix != "" {
		objectName = prefix + "/" + objectName
	}

	// 6. 重新组合 reader（已读取的 512 字节 + 剩余内容）
	multiReader := io.MultiReader(strings.NewReader(string(buffer)), reader)

	uploadCtx := ctx
	if c.config.UploadTimeout > 0 {
		var cancel context.CancelFunc
		uploadCtx, cancel = context.WithTimeout(ctx, c.config.UploadTimeout)
		defer cancel()
	}

	// 7. 执行上传
	info, err := c.client.PutObject(uploadCtx, c.config.BucketName, objectName, multiReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.Error(ctx, "MinIO 上传失败",
			logger.String("object", objectName),
			logger.Int64("size", fileSize),
			logger.ErrorField(err),
		)
		return nil, fmt.Errorf("上传失败: %w", err)
	}

	url := c.ObjectURL(objectName)
	logger.Info(ctx, "MinIO 上传成功",
		logger.String("object", objectName),
		logger.String("url", url),
		logger.Int64("size", info.Size),
	)

	return &UploadResult{
		ObjectName:  objectName,
		Size:        info.Size,
		ETag:        info.ETag,
		URL:         url,
		ContentType: contentType,
	}, nil
}

// Delete 删除对象
func (c *Client) Delete(ctx context.Context, objectName string) error {
	if err := c.client.RemoveObject(ctx, c.config.BucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		logger.Error(ctx, "MinIO 删除失败",
			logger.String("object", objectName),
			logger.ErrorField(err),
		)
		return fmt.Errorf("删除失败: %w", err)
	}
	return nil
}

// Exists 检查对象是否存在
func (c *Client) Exists(ctx context.Context, objectName string) (bool, error) {
	_, err := c.client.StatObject(ctx, c.config.BucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("检查对象存在失败: %w", err)
	}
	return true, nil
}

// ObjectURL 拼出对象的公开访问 URL
func (c *Client) ObjectURL(objectName string) string {
	baseURL := strings.TrimSuffix(c.config.BaseURL, "/")
	objectName = strings.TrimPrefix(objectName, "/")
	return fmt.Sprintf("%s/%s/%s", baseURL, c.config.BucketName, objectName)
}

// isAllowedType 检查文件类型是否允许
func (c *Client) isAllowedType(contentType string) bool {
	for _, allowed := range c.config.AllowedTypes {
		if strings.EqualFold(contentType, allowed) {
			return true
		}
	}
	return false
}

// extensionMatches 验证扩展名与检测到的内容类型一致
func extensionMatches(fileName, contentType string) bool {
	validExts := map[string][]string{
		"image/jpeg": {".jpg", ".jpeg"},
		"image/png":  {".png"},
		"image/gif":  {".gif"},
		"image/webp": {".webp"},
	}
	exts, ok := validExts[strings.ToLower(contentType)]
	if !ok {
		// 未知类型交给允许列表拦截
		return true
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
