package config

// MailConfig SMTP 邮件配置。
// 用于发送宾客邀请邮件，默认走 Gmail SMTP。
type MailConfig struct {
	SMTPHost string `json:"smtpHost" yaml:"smtpHost"` // SMTP 服务器地址
	SMTPPort int    `json:"smtpPort" yaml:"smtpPort"` // SMTP 端口
	Username string `json:"username" yaml:"username"` // 发件账号
	Password string `json:"-" yaml:"password"`        // 应用专用密码，严禁打印
	From     string `json:"from" yaml:"from"`         // 发件人展示地址
	FromName string `json:"fromName" yaml:"fromName"` // 发件人展示名称
}

// Enabled 账号密码齐全才认为邮件通道可用
func (c MailConfig) Enabled() bool {
	return c.Username != "" && c.Password != ""
}

// DefaultMailConfig 返回默认配置（账号密码必须由环境变量提供）
func DefaultMailConfig() MailConfig {
	return MailConfig{
		SMTPHost: "smtp.gmail.com",
		SMTPPort: 587,
		Username: "",
		Password: "",
		From:     "",
		FromName: "Wedding Planner",
	}
}

// MailConfigFromEnv 在默认配置的基础上套用环境变量覆盖
func MailConfigFromEnv() MailConfig {
	cfg := DefaultMailConfig()
	cfg.SMTPHost = envString("SMTP_HOST", cfg.SMTPHost)
	cfg.SMTPPort = envInt("SMTP_PORT", cfg.SMTPPort)
	cfg.Username = envString("SMTP_USERNAME", cfg.Username)
	cfg.Password = envString("SMTP_PASSWORD", cfg.Password)
	cfg.From = envString("SMTP_FROM", cfg.Username)
	cfg.FromName = envString("SMTP_FROM_NAME", cfg.FromName)
	return cfg
}
