package kafka

import (
	"context"
	"fmt"
	"time"

	"WeddingServer/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer Kafka 生产者封装
type Producer struct {
	writer *kafka.Writer
}

// NewProducer 创建指定主题的生产者。
// 使用 Hash 均衡器，同一个 key 的消息落到同一分区，保证单个婚礼的通知有序。
func NewProducer(cfg config.KafkaConfig, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    cfg.BatchSize,
		BatchBytes:   cfg.BatchBytes,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &Producer{writer: writer}
}

// Send 发送单条消息
func (p *Producer) Send(ctx context.Context, key string, value []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write kafka message: %w", err)
	}
	return nil
}

// Close 关闭生产者
func (p *Producer) Close() error {
	return p.writer.Close()
}

// Consumer Kafka 消费者封装，手动提交位移
type Consumer struct {
	reader *kafka.Reader
}

// NewConsumer 创建消费组消费者
func NewConsumer(cfg config.KafkaConfig, topic string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       topic,
		GroupID:     cfg.GroupID,
		MinBytes:    cfg.MinBytes,
		MaxBytes:    cfg.MaxBytes,
		MaxWait:     cfg.MaxWait,
		StartOffset: kafka.FirstOffset,
	})
	return &Consumer{reader: reader}
}

// Fetch 拉取一条消息（不自动提交）
func (c *Consumer) Fetch(ctx context.Context) (kafka.Message, error) {
	return c.reader.FetchMessage(ctx)
}

// Commit 提交位移。消息处理成功后才提交，失败的消息会被重新投递。
func (c *Consumer) Commit(ctx context.Context, msg kafka.Message) error {
	return c.reader.CommitMessages(ctx, msg)
}

// Close 关闭消费者
func (c *Consumer) Close() error {
	return c.reader.Close()
}

// ZapLoggerAdapter 把 kafka-go 的日志接到 zap 上
type ZapLoggerAdapter struct {
	l *zap.Logger
}

// NewZapLoggerAdapter 创建日志适配器
func NewZapLoggerAdapter(l *zap.Logger) *ZapLoggerAdapter {
	return &ZapLoggerAdapter{l: l}
}

// Printf 实现 kafka.Logger 接口
func (a *ZapLoggerAdapter) Printf(format string, args ...interface{}) {
	if a.l != nil {
		a.l.Sugar().Infof(format, args...)
	}
}
