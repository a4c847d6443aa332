package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"WeddingServer/apps/api/internal/middleware"
	v1 "WeddingServer/apps/api/internal/router/v1"
	"WeddingServer/pkg/util"
)

// Handlers 路由依赖的全部处理器
type Handlers struct {
	Auth         *v1.AuthHandler
	User         *v1.UserHandler
	Relationship *v1.RelationshipHandler
	Wedding      *v1.WeddingHandler
	Vendor       *v1.VendorHandler
	Package      *v1.PackageHandler
	Cart         *v1.CartHandler
	Guest        *v1.GuestHandler
	Review       *v1.ReviewHandler
}

// InitRouter 初始化路由
// identityMW: 仅 Firebase 的凭证校验中间件（注册/换发令牌接口，失败即拒绝）
// authMW: 完整认证中间件（Firebase 优先，本服务令牌回退，解析出已注册用户）
// handlerTimeout: 单请求业务处理超时
func InitRouter(h *Handlers, identityMW, authMW gin.HandlerFunc, limiter *middleware.RateLimiter, handlerTimeout time.Duration) *gin.Engine {
	r := gin.New()

	// 恢复中间件
	r.Use(middleware.GinRecovery())

	// 追踪中间件 (生成 trace_id)
	r.Use(util.TraceLogger())

	// 客户端 IP 中间件
	r.Use(middleware.ClientIPMiddleware())

	// 日志中间件
	r.Use(middleware.GinLogger())

	// 请求超时中间件
	r.Use(middleware.TimeoutMiddleware(handlerTimeout))

	// Prometheus 监控中间件
	r.Use(middleware.MetricsMiddleware())

	// 跨域中间件
	r.Use(middleware.CorsMiddleware())

	// IP 限流中间件
	if limiter != nil {
		r.Use(middleware.IPRateLimitMiddleware(limiter))
	}

	// 健康检查（无需认证）
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Prometheus 指标暴露接口
	r.GET("/metrics", middleware.MetricsHandler())

	// API 路由组
	api := r.Group("/api/v1")
	{
		// 认证入口：只认 Firebase 凭证，失败即拒绝
		authGroup := api.Group("/auth")
		authGroup.Use(identityMW)
		{
			authGroup.POST("/firebase-signup", h.Auth.FirebaseSignup)
			authGroup.POST("/token", h.Auth.IssueToken)
		}

		// 公开读接口（不需要认证）
		vendors := api.Group("/vendors")
		{
			vendors.GET("", h.Vendor.List)
			vendors.GET("/featured", h.Vendor.Featured)
			vendors.GET("/categories", h.Vendor.Categories)
			vendors.GET("/localities", h.Vendor.Localities)
			vendors.GET("/:id", h.Vendor.Get)
		}

		packages := api.Group("/packages")
		{
			packages.GET("", h.Package.List)
			packages.GET("/popular", h.Package.Popular)
			packages.GET("/:id", h.Package.Get)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", h.Review.List)
			reviews.GET("/rating", h.Review.Rating)
			reviews.GET("/stats", h.Review.Stats)
		}

		// 需要认证的接口（Firebase 优先，本服务令牌回退）
		authed := api.Group("", authMW)
		// 用户级限流，叠在 IP 限流之上
		if limiter != nil {
			authed.Use(middleware.UserRateLimitMiddleware(limiter))
		}
		{
			users := authed.Group("/users")
			{
				users.GET("/me", h.User.Me)
				users.PUT("/me", h.User.UpdateMe)
				users.DELETE("/me", h.User.DeactivateMe)
				users.GET("/by-phone/:phone", h.User.GetByPhone)
			}

			relationships := authed.Group("/relationships")
			{
				relationships.POST("", h.Relationship.Create)
				relationships.GET("", h.Relationship.List)
				relationships.GET("/pending", h.Relationship.ListPending)
				relationships.POST("/:id/respond", h.Relationship.Respond)
				relationships.PUT("/:id", h.Relationship.Update)
				relationships.DELETE("/:id", h.Relationship.Delete)
			}

			weddings := authed.Group("/weddings")
			{
				weddings.POST("", h.Wedding.Create)
				weddings.GET("", h.Wedding.List)
				weddings.GET("/:id", h.Wedding.Get)
				weddings.PUT("/:id", h.Wedding.Update)
				weddings.DELETE("/:id", h.Wedding.Delete)
			}

			// 商家写接口需要认证
			authedVendors := authed.Group("/vendors")
			{
				authedVendors.POST("", h.Vendor.Create)
				authedVendors.PUT("/:id", h.Vendor.Update)
				authedVendors.POST("/:id/images", h.Vendor.UploadImage)
			}

			cart := authed.Group("/cart")
			{
				cart.POST("", h.Cart.Create)
				cart.GET("", h.Cart.List)
				cart.GET("/summary", h.Cart.Summary)
				cart.PUT("/:id", h.Cart.Update)
				cart.DELETE("/:id", h.Cart.Delete)
			}

			guests := authed.Group("/guests")
			{
				guests.POST("", h.Guest.Create)
				guests.GET("", h.Guest.List)
				guests.GET("/statistics", h.Guest.Statistics)
				guests.POST("/send-invitations", h.Guest.SendInvitations)
				guests.POST("/:id/send-invitation", h.Guest.SendInvitation)
				guests.PUT("/:id", h.Guest.Update)
				guests.DELETE("/:id", h.Guest.Delete)
			}
		}
	}

	return r
}
