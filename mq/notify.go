package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"WeddingServer/consts"
	"WeddingServer/pkg/kafka"
)

// ==================== 通知事件定义 ====================

// EventType 通知事件类型
type EventType string

const (
	// EventGuestInvitation 宾客邀请邮件
	EventGuestInvitation EventType = "guest_invitation"
	// EventRelationshipRequest 亲友关系请求通知邮件
	EventRelationshipRequest EventType = "relationship_request"
)

// NotifyEvent 存放在 Kafka 里的通知事件。
// api 进程只负责入队，渲染和发送都在 worker 进程完成。
type NotifyEvent struct {
	Type EventType `json:"type"`

	// 收件信息
	ToEmail string `json:"to_email"` // 收件邮箱
	ToName  string `json:"to_name"`  // 收件人姓名

	// 邀请上下文
	WeddingId   int64  `json:"wedding_id"`   // 婚礼 id
	WeddingName string `json:"wedding_name"` // 婚礼名称
	WeddingCity string `json:"wedding_city"` // 举办城市
	WeddingDate string `json:"wedding_date"` // 婚礼日期（展示用）
	HostName    string `json:"host_name"`    // 主人姓名
	GuestId     int64  `json:"guest_id"`     // 宾客 id

	// 关系请求上下文（仅 relationship_request）
	RequesterName  string `json:"requester_name,omitempty"`  // 发起方姓名
	RelationLabel  string `json:"relation_label,omitempty"`  // 关系称呼
	RelationshipId int64  `json:"relationship_id,omitempty"` // 关系记录 id

	// 元数据
	TraceID    string    `json:"trace_id,omitempty"` // 链路追踪 ID
	Timestamp  time.Time `json:"timestamp"`          // 入队时间
	RetryCount int       `json:"retry_count"`        // 已重试次数
	MaxRetries int       `json:"max_retries"`        // 最大重试次数
}

// BuildInvitationEvent 构造一条宾客邀请事件
func BuildInvitationEvent(weddingId, guestId int64, toEmail, toName, weddingName, weddingCity, weddingDate, hostName string) NotifyEvent {
	return NotifyEvent{
		Type:        EventGuestInvitation,
		ToEmail:     toEmail,
		ToName:      toName,
		WeddingId:   weddingId,
		WeddingName: weddingName,
		WeddingCity: weddingCity,
		WeddingDate: weddingDate,
		HostName:    hostName,
		GuestId:     guestId,
		Timestamp:   time.Now(),
		RetryCount:  0,
		MaxRetries:  3,
	}
}

// BuildRelationshipRequestEvent 构造一条关系请求通知事件
func BuildRelationshipRequestEvent(relationshipId int64, toEmail, toName, requesterName, relationLabel string) NotifyEvent {
	return NotifyEvent{
		Type:           EventRelationshipRequest,
		ToEmail:        toEmail,
		ToName:         toName,
		RequesterName:  requesterName,
		RelationLabel:  relationLabel,
		RelationshipId: relationshipId,
		Timestamp:      time.Now(),
		RetryCount:     0,
		MaxRetries:     3,
	}
}

// WithContext 从 ctx 提取 trace_id 附到事件上
func (e NotifyEvent) WithContext(ctx context.Context) NotifyEvent {
	if ctx != nil {
		if traceId, ok := ctx.Value(consts.ContextKeyTraceID).(string); ok {
			e.TraceID = traceId
		}
	}
	return e
}

// ==================== 全局 Producer ====================

var globalProducer *kafka.Producer

// SetGlobalProducer 设置全局通知生产者（main 初始化时调用）
func SetGlobalProducer(p *kafka.Producer) {
	globalProducer = p
}

// SendNotifyEvent 发送通知事件。
// key 用婚礼 id，同一个婚礼的邀请落到同一分区保持有序；
// 不挂在婚礼下的事件（关系请求）按收件邮箱分区。
func SendNotifyEvent(ctx context.Context, event NotifyEvent) error {
	if globalProducer == nil {
		return fmt.Errorf("notify producer not initialized")
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notify event: %w", err)
	}
	key := strconv.FormatInt(event.WeddingId, 10)
	if event.WeddingId == 0 {
		key = event.ToEmail
	}
	return globalProducer.Send(ctx, key, payload)
}
