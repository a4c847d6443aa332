package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	"WeddingServer/apps/api/internal/auth"
	"WeddingServer/apps/api/internal/middleware"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/apps/api/internal/router"
	v1 "WeddingServer/apps/api/internal/router/v1"
	"WeddingServer/apps/api/internal/service"
	"WeddingServer/config"
	"WeddingServer/consts"
	"WeddingServer/model"
	"WeddingServer/mq"
	"WeddingServer/pkg/async"
	"WeddingServer/pkg/firebase"
	pkgkafka "WeddingServer/pkg/kafka"
	"WeddingServer/pkg/logger"
	pkgmail "WeddingServer/pkg/mail"
	pkgminio "WeddingServer/pkg/minio"
	pkgmysql "WeddingServer/pkg/mysql"
	pkgredis "WeddingServer/pkg/redis"
)

func main() {
	ctx := context.WithValue(context.Background(), consts.ContextKeyTraceID, "0")

	// 1. 加载环境变量
	config.LoadDotEnv()

	// 2. 初始化日志
	loggerCfg := config.LoggerConfigFromEnv()
	l, err := logger.Build(loggerCfg)
	if err != nil {
		fmt.Printf("初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	logger.ReplaceGlobal(l)
	defer logger.Sync()

	logger.Info(ctx, "API 服务初始化中...")

	// 3. 初始化 MySQL
	mysqlCfg := config.MySQLConfigFromEnv()
	db, err := pkgmysql.Build(mysqlCfg)
	if err != nil {
		logger.Fatal(ctx, "初始化 MySQL 失败", logger.ErrorField(err))
	}
	pkgmysql.ReplaceGlobal(db)
	defer func() {
		if err := pkgmysql.Close(db); err != nil {
			logger.Error(ctx, "关闭 MySQL 连接失败", logger.ErrorField(err))
		}
	}()
	logger.Info(ctx, "MySQL 初始化成功", logger.String("host", mysqlCfg.Host))

	// 4. 迁移表结构
	if err := db.AutoMigrate(
		&model.User{},
		&model.Relationship{},
		&model.Wedding{},
		&model.Vendor{},
		&model.Package{},
		&model.CartItem{},
		&model.Guest{},
	); err != nil {
		logger.Fatal(ctx, "表结构迁移失败", logger.ErrorField(err))
	}

	// 5. 初始化 Redis（失败不阻塞启动，缓存和分布式限流降级）
	redisCfg := config.RedisConfigFromEnv()
	redisClient, err := pkgredis.Build(redisCfg)
	if err != nil {
		logger.Error(ctx, "初始化 Redis 失败 缓存降级", logger.ErrorField(err))
		redisClient = nil
	} else {
		pkgredis.ReplaceGlobal(redisClient)
		logger.Info(ctx, "Redis 初始化成功", logger.String("addr", redisCfg.Addr()))
	}

	// 6. 初始化异步任务池
	asyncCfg := config.AsyncConfigFromEnv()
	if err := async.Init(asyncCfg); err != nil {
		logger.Fatal(ctx, "初始化异步任务池失败", logger.ErrorField(err))
	}
	defer func() {
		if err := async.Release(); err != nil {
			logger.Error(ctx, "释放异步任务池失败", logger.ErrorField(err))
		}
	}()

	// 7. 初始化 Kafka 邀请事件生产者
	kafkaCfg := config.KafkaConfigFromEnv()
	producer := pkgkafka.NewProducer(kafkaCfg, kafkaCfg.NotifyTopic)
	mq.SetGlobalProducer(producer)
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Error(ctx, "关闭 Kafka 生产者失败", logger.ErrorField(err))
		}
	}()
	logger.Info(ctx, "Kafka 生产者初始化成功", logger.String("topic", kafkaCfg.NotifyTopic))

	// 8. 初始化 MinIO（商家图片存储）
	minioCfg := config.MinIOConfigFromEnv()
	minioClient, err := pkgminio.Build(minioCfg)
	if err != nil {
		logger.Fatal(ctx, "初始化 MinIO 失败", logger.ErrorField(err))
	}
	pkgminio.ReplaceGlobal(minioClient)
	logger.Info(ctx, "MinIO 初始化成功", logger.String("bucket", minioCfg.BucketName))

	// 9. 初始化邮件发送器（Kafka 降级直发用）
	mailCfg := config.MailConfigFromEnv()
	pkgmail.ReplaceGlobal(pkgmail.Build(mailCfg))
	if !mailCfg.Enabled() {
		logger.Warn(ctx, "邮件通道未配置 邀请邮件直发将被跳过")
	}

	// 10. 初始化 Firebase（凭证校验依赖，失败直接退出）
	authCfg := config.AuthConfigFromEnv()
	firebaseClient, err := firebase.Build(ctx, authCfg)
	if err != nil {
		logger.Fatal(ctx, "初始化 Firebase 失败", logger.ErrorField(err))
	}
	logger.Info(ctx, "Firebase 初始化成功")

	// 11. 初始化认证组件
	issuer := auth.NewTokenIssuer(authCfg)
	firebaseVerifier := auth.NewFirebaseVerifier(firebaseClient)
	legacyVerifier := auth.NewLegacyVerifier(issuer)
	// 注册/换发令牌只认 Firebase；业务接口 Firebase 优先、本服务令牌回退
	firebaseChain := auth.NewChain(firebaseVerifier)
	fullChain := auth.NewChain(firebaseVerifier, legacyVerifier)

	// 12. 初始化 Repository 层（依赖注入）
	userRepo := repository.NewUserRepository(db, redisClient)
	relationshipRepo := repository.NewRelationshipRepository(db)
	weddingRepo := repository.NewWeddingRepository(db)
	vendorRepo := repository.NewVendorRepository(db, redisClient)
	packageRepo := repository.NewPackageRepository(db)
	cartRepo := repository.NewCartRepository(db)
	guestRepo := repository.NewGuestRepository(db)

	// 13. 初始化 Service 层（依赖注入）
	snowflakeNode, err := snowflake.NewNode(1)
	if err != nil {
		logger.Fatal(ctx, "初始化雪花发号器失败", logger.ErrorField(err))
	}

	authService := service.NewAuthService(userRepo, issuer)
	userService := service.NewUserService(userRepo)
	relationshipService := service.NewRelationshipService(relationshipRepo, userRepo)
	weddingService := service.NewWeddingService(weddingRepo)
	vendorService := service.NewVendorService(vendorRepo)
	packageService := service.NewPackageService(packageRepo)
	cartService := service.NewCartService(cartRepo, weddingRepo, vendorRepo, snowflakeNode)
	guestService := service.NewGuestService(guestRepo, weddingRepo, userRepo)
	reviewService := service.NewReviewService(config.ReviewsConfigFromEnv(), redisClient)
	logger.Info(ctx, "服务层初始化完成")

	// 14. 初始化 Handler 层（依赖注入）
	handlers := &router.Handlers{
		Auth:         v1.NewAuthHandler(authService),
		User:         v1.NewUserHandler(userService),
		Relationship: v1.NewRelationshipHandler(relationshipService),
		Wedding:      v1.NewWeddingHandler(weddingService),
		Vendor:       v1.NewVendorHandler(vendorService),
		Package:      v1.NewPackageHandler(packageService),
		Cart:         v1.NewCartHandler(cartService),
		Guest:        v1.NewGuestHandler(guestService),
		Review:       v1.NewReviewHandler(reviewService),
	}

	// 15. 初始化限流器和路由
	serverCfg := config.ServerConfigFromEnv()
	gin.SetMode(serverCfg.Mode)
	limiter := middleware.NewRateLimiter(redisClient, 10.0, 20)
	r := router.InitRouter(handlers,
		middleware.IdentityMiddleware(firebaseChain),
		middleware.AuthMiddleware(fullChain, authService),
		limiter,
		serverCfg.HandlerTimeout,
	)
	logger.Info(ctx, "路由初始化完成")

	// 16. 配置并启动服务器
	addr := fmt.Sprintf("%s:%d", serverCfg.Host, serverCfg.Port)
	srv := &http.Server{
		Addr:           addr,
		Handler:        r,
		ReadTimeout:    serverCfg.ReadTimeout,
		WriteTimeout:   serverCfg.WriteTimeout,
		MaxHeaderBytes: 1 << 20, // 最大请求头 1MB
	}

	go func() {
		logger.Info(ctx, "API 服务器启动中", logger.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "服务器启动失败", logger.ErrorField(err))
			os.Exit(1)
		}
	}()

	logger.Info(ctx, "API 服务器启动成功，按 Ctrl+C 关闭")

	// 17. 优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info(ctx, "收到关闭信号，开始优雅停机...", logger.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "服务器强制关闭", logger.ErrorField(err))
		os.Exit(1)
	}

	logger.Info(ctx, "API 服务器已优雅退出")
}
