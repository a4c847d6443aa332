package firebase

import (
	"context"
	"fmt"

	"WeddingServer/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// TokenVerifier 校验 Firebase ID Token。
// 抽成接口方便在认证链路的单测里替换成假实现。
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Client Firebase Admin SDK 封装
type Client struct {
	auth *auth.Client
}

var _ TokenVerifier = (*Client)(nil)

// Build 根据服务账号凭证初始化 Firebase Admin 客户端。
// 凭证无效时这里直接报错，进程启动阶段就会失败，
// 避免带病运行到第一个登录请求才暴露配置问题。
func Build(ctx context.Context, cfg config.AuthConfig) (*Client, error) {
	opts := []option.ClientOption{
		option.WithCredentialsFile(cfg.FirebaseCredentialsFile),
	}
	fbCfg := &firebase.Config{ProjectID: cfg.FirebaseProjectID}

	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase auth client: %w", err)
	}

	return &Client{auth: authClient}, nil
}

// VerifyIDToken 校验 ID Token，返回解码后的声明
func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	return c.auth.VerifyIDToken(ctx, idToken)
}
