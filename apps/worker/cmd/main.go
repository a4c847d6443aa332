package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"WeddingServer/apps/worker/internal/consumer"
	"WeddingServer/config"
	"WeddingServer/consts"
	"WeddingServer/mq"
	pkgkafka "WeddingServer/pkg/kafka"
	"WeddingServer/pkg/logger"
	pkgmail "WeddingServer/pkg/mail"
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

	logger.Info(ctx, "通知 Worker 初始化中...")

	// 3. 初始化邮件发送器
	mailCfg := config.MailConfigFromEnv()
	sender := pkgmail.Build(mailCfg)
	pkgmail.ReplaceGlobal(sender)
	if !mailCfg.Enabled() {
		logger.Warn(ctx, "邮件通道未配置 邀请事件将被消费后丢弃")
	}

	// 4. 初始化 Kafka 消费者和重试用的生产者
	kafkaCfg := config.KafkaConfigFromEnv()
	kafkaConsumer := pkgkafka.NewConsumer(kafkaCfg, kafkaCfg.NotifyTopic)
	defer func() {
		if err := kafkaConsumer.Close(); err != nil {
			logger.Error(ctx, "关闭 Kafka 消费者失败", logger.ErrorField(err))
		}
	}()

	producer := pkgkafka.NewProducer(kafkaCfg, kafkaCfg.NotifyTopic)
	mq.SetGlobalProducer(producer)
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Error(ctx, "关闭 Kafka 生产者失败", logger.ErrorField(err))
		}
	}()
	logger.Info(ctx, "Kafka 初始化成功",
		logger.String("topic", kafkaCfg.NotifyTopic),
		logger.String("group_id", kafkaCfg.GroupID))

	// 5. 启动消费循环，收到退出信号后取消 ctx 优雅退出
	runCtx, cancel := context.WithCancel(ctx)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		logger.Info(ctx, "收到关闭信号，停止消费...", logger.String("signal", sig.String()))
		cancel()
	}()

	notifyConsumer := consumer.NewNotifyConsumer(kafkaConsumer, sender)
	logger.Info(ctx, "通知 Worker 启动成功，按 Ctrl+C 关闭")
	if err := notifyConsumer.Run(runCtx); err != nil {
		logger.Error(ctx, "消费循环退出", logger.ErrorField(err))
		os.Exit(1)
	}

	logger.Info(ctx, "通知 Worker 已优雅退出")
}
