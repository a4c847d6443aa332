package config

import "time"

// KafkaConfig 消息队列配置。
// 通知事件（宾客邀请邮件等）写入 Kafka，由 worker 进程异步消费发送。
type KafkaConfig struct {
	Brokers     []string      `json:"brokers" yaml:"brokers"`         // broker 地址列表
	NotifyTopic string        `json:"notifyTopic" yaml:"notifyTopic"` // 通知事件主题
	GroupID     string        `json:"groupId" yaml:"groupId"`         // 消费组 ID（worker 使用）
	BatchSize   int           `json:"batchSize" yaml:"batchSize"`     // 生产端批量大小
	BatchBytes  int64         `json:"batchBytes" yaml:"batchBytes"`   // 生产端批量字节上限
	MinBytes    int           `json:"minBytes" yaml:"minBytes"`       // 消费端最小抓取字节
	MaxBytes    int           `json:"maxBytes" yaml:"maxBytes"`       // 消费端最大抓取字节
	MaxWait     time.Duration `json:"maxWait" yaml:"maxWait"`         // 消费端最长等待时间
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"` // 消费失败最大重试次数
}

// DefaultKafkaConfig 返回本地开发的默认配置
func DefaultKafkaConfig() KafkaConfig {
	return KafkaConfig{
		Brokers:     []string{"kafka:9092"},
		NotifyTopic: "wedding.notify",
		GroupID:     "wedding-notify-worker",
		BatchSize:   100,
		BatchBytes:  1 << 20, // 1MB
		MinBytes:    1,
		MaxBytes:    10 << 20, // 10MB
		MaxWait:     500 * time.Millisecond,
		MaxAttempts: 3,
	}
}

// KafkaConfigFromEnv 在默认配置的基础上套用环境变量覆盖
func KafkaConfigFromEnv() KafkaConfig {
	cfg := DefaultKafkaConfig()
	if broker := envString("KAFKA_BROKER", ""); broker != "" {
		cfg.Brokers = []string{broker}
	}
	cfg.NotifyTopic = envString("KAFKA_NOTIFY_TOPIC", cfg.NotifyTopic)
	cfg.GroupID = envString("KAFKA_GROUP_ID", cfg.GroupID)
	return cfg
}
