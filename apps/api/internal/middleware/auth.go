package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"WeddingServer/apps/api/internal/auth"
	"WeddingServer/apps/api/internal/service"
	"WeddingServer/consts"
	"WeddingServer/model"
	"WeddingServer/pkg/result"
)

// contextKeyIdentity 存放链路校验出来的身份（可能还没注册）
const contextKeyIdentity = "auth_identity"

// extractBearer 从 Authorization 头取出 Bearer token
func extractBearer(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// IdentityMiddleware 凭证校验中间件。
// 只做身份校验（Firebase 优先，失败后回退本服务令牌），不要求用户已注册，
// 注册接口和换发令牌接口使用。
func IdentityMiddleware(chain *auth.Chain) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearer(c)
		if !ok {
			// 客户端请求错误,属于正常业务流程,不记录日志
			result.Fail(c, nil, consts.CodeUnauthorized)
			c.Abort()
			return
		}

		ident, code := chain.Verify(c, token)
		if ident == nil {
			result.Fail(c, nil, code)
			c.Abort()
			return
		}

		c.Set(contextKeyIdentity, ident)
		c.Next()
	}
}

// AuthMiddleware 认证中间件。
// 在凭证校验之上再把身份解析成已注册用户，用户信息存入 Context 供后续 Handler 使用。
func AuthMiddleware(chain *auth.Chain, authService service.IAuthService) gin.HandlerFunc {
	identity := IdentityMiddleware(chain)
	return func(c *gin.Context) {
		identity(c)
		if c.IsAborted() {
			return
		}

		ident, _ := GetIdentity(c)
		user, err := authService.ResolveUser(c, ident)
		if err != nil {
			result.Fail(c, nil, service.CodeOf(err))
			c.Abort()
			return
		}

		c.Set(consts.ContextKeyUserID, user.Id)
		c.Set(consts.ContextKeyUser, user)
		c.Next()
	}
}

// GetIdentity 从 Context 中获取校验通过的身份
func GetIdentity(c *gin.Context) (*auth.Identity, bool) {
	value, exists := c.Get(contextKeyIdentity)
	if !exists {
		return nil, false
	}
	ident, ok := value.(*auth.Identity)
	return ident, ok
}

// GetUserId 从 Context 中获取当前登录用户的 ID
func GetUserId(c *gin.Context) (int64, bool) {
	value, exists := c.Get(consts.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

// GetCurrentUser 从 Context 中获取当前登录用户实体
func GetCurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(consts.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
