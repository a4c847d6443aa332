package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"WeddingServer/consts"
	"WeddingServer/mq"
	pkgkafka "WeddingServer/pkg/kafka"
	"WeddingServer/pkg/logger"
	"WeddingServer/pkg/mail"
)

// NotifyConsumer 通知事件消费器。
// 从 Kafka 拉取邀请事件，渲染后经邮件通道发出，成功才提交位点。
type NotifyConsumer struct {
	consumer *pkgkafka.Consumer
	sender   *mail.Sender
}

// NewNotifyConsumer 创建通知消费器
func NewNotifyConsumer(consumer *pkgkafka.Consumer, sender *mail.Sender) *NotifyConsumer {
	return &NotifyConsumer{consumer: consumer, sender: sender}
}

// Run 持续消费直到 ctx 取消
func (c *NotifyConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.consumer.Fetch(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			logger.Error(ctx, "拉取通知事件失败", logger.ErrorField(err))
			// 短暂退避，避免 broker 故障时空转
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}

		c.handle(ctx, msg.Value)

		if err := c.consumer.Commit(ctx, msg); err != nil {
			logger.Error(ctx, "提交消费位点失败", logger.ErrorField(err))
		}
	}
}

// handle 处理一条通知事件。
// 解析失败的消息无法重试，记日志后丢弃；发送失败的事件重新入队（带重试计数）。
func (c *NotifyConsumer) handle(ctx context.Context, payload []byte) {
	var event mq.NotifyEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		logger.Error(ctx, "通知事件反序列化失败 丢弃",
			logger.ErrorField(err))
		return
	}

	// 把事件里的 trace_id 续到处理上下文
	eventCtx := ctx
	if event.TraceID != "" {
		eventCtx = context.WithValue(ctx, consts.ContextKeyTraceID, event.TraceID)
	}

	c.deliver(eventCtx, event)
}

// deliver 渲染并发送一封通知邮件。
// 渲染失败（含未知类型）的事件重试也不会变好，直接丢弃。
func (c *NotifyConsumer) deliver(ctx context.Context, event mq.NotifyEvent) {
	subject, body, err := mq.Render(event)
	if err != nil {
		logger.Error(ctx, "通知邮件渲染失败 丢弃",
			logger.String("type", string(event.Type)),
			logger.ErrorField(err))
		return
	}

	if err := c.sender.Send(ctx, event.ToEmail, subject, body); err != nil {
		if errors.Is(err, mail.ErrDisabled) {
			logger.Warn(ctx, "邮件通道未配置 通知丢弃",
				logger.String("type", string(event.Type)))
			return
		}
		c.retry(ctx, event, err)
		return
	}

	logger.Info(ctx, "通知邮件已发送",
		logger.String("type", string(event.Type)),
		logger.Int64("wedding_id", event.WeddingId),
		logger.Int64("guest_id", event.GuestId),
		logger.String("to", event.ToEmail))
}

// retry 发送失败时把事件重新入队，超过最大重试次数后丢弃
func (c *NotifyConsumer) retry(ctx context.Context, event mq.NotifyEvent, cause error) {
	event.RetryCount++
	if event.RetryCount > event.MaxRetries {
		logger.Error(ctx, "通知邮件重试次数用尽 丢弃",
			logger.String("type", string(event.Type)),
			logger.Int("retry_count", event.RetryCount),
			logger.ErrorField(cause))
		return
	}

	logger.Warn(ctx, "通知邮件发送失败 重新入队",
		logger.String("type", string(event.Type)),
		logger.Int("retry_count", event.RetryCount),
		logger.ErrorField(cause))

	if err := mq.SendNotifyEvent(ctx, event); err != nil {
		logger.Error(ctx, "通知事件重新入队失败 丢弃",
			logger.String("type", string(event.Type)),
			logger.ErrorField(err))
	}
}
