package config

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level            string   `json:"level" yaml:"level"`                       // 日志级别: debug / info / warn / error
	Encoding         string   `json:"encoding" yaml:"encoding"`                 // 编码方式: json / console
	EnableColor      bool     `json:"enableColor" yaml:"enableColor"`           // console 编码时是否彩色输出
	Development      bool     `json:"development" yaml:"development"`           // 开发模式（error 级别带堆栈）
	OutputPaths      []string `json:"outputPaths" yaml:"outputPaths"`           // 普通日志输出路径，支持 stdout / 文件
	ErrorOutputPaths []string `json:"errorOutputPaths" yaml:"errorOutputPaths"` // 错误日志输出路径，支持 stderr / 文件
}

// DefaultLoggerConfig 返回本地开发的默认配置
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:            "debug",
		Encoding:         "console",
		EnableColor:      true,
		Development:      true,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
}

// LoggerConfigFromEnv 在默认配置的基础上套用环境变量覆盖
func LoggerConfigFromEnv() LoggerConfig {
	cfg := DefaultLoggerConfig()
	cfg.Level = envString("LOG_LEVEL", cfg.Level)
	cfg.Encoding = envString("LOG_ENCODING", cfg.Encoding)
	if cfg.Encoding == "json" {
		cfg.EnableColor = false
		cfg.Development = false
	}
	return cfg
}
