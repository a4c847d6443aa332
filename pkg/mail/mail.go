package mail

import (
	"context"
	"errors"
	"fmt"

	"WeddingServer/config"
	"WeddingServer/pkg/logger"

	"gopkg.in/gomail.v2"
)

// ErrDisabled 表示邮件通道未配置（缺少账号或密码）。
var ErrDisabled = errors.New("mail channel is not configured")

var global *Sender

// Global 返回全局邮件发送器（未初始化时为 nil）
func Global() *Sender {
	return global
}

// ReplaceGlobal 设置全局邮件发送器
func ReplaceGlobal(s *Sender) {
	global = s
}

// Sender SMTP 邮件发送器封装
type Sender struct {
	dialer *gomail.Dialer
	config config.MailConfig
}

// Build 根据配置创建发送器。未配置账号时返回可用但会拒发的实例。
func Build(cfg config.MailConfig) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		config: cfg,
	}
}

// Send 发送一封 HTML 邮件。
// SMTP 协议没有 ctx 挂钩，这里只用 ctx 带 trace_id 打日志。
func (s *Sender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if !s.config.Enabled() {
		return ErrDisabled
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.From, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		logger.Error(ctx, "邮件发送失败",
			logger.String("to", to),
			logger.String("subject", subject),
			logger.ErrorField(err),
		)
		return fmt.Errorf("failed to send mail: %w", err)
	}

	logger.Info(ctx, "邮件发送成功",
		logger.String("to", to),
		logger.String("subject", subject),
	)
	return nil
}
