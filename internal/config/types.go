package config

import "github.com/sirupsen/logrus"

// 环境变量名称。
const (
	// ConfigEnv 指定配置文件路径，未设置时不读取任何配置文件。
	ConfigEnv = "GOMONKEY_CONFIG"
	// DebugEnv 存在即开启调试跟踪输出，与取值无关。
	DebugEnv = "GOMONKEY_DEBUG"
)

// GlobalConfig 描述日志与调试相关的运行时行为。
type GlobalConfig struct {
	LogLevel      logrus.Level `mapstructure:"LogLevel"`
	LogFilePath   string       `mapstructure:"LogFilePath"`
	LogMaxSize    int          `mapstructure:"LogMaxSize"`
	LogMaxBackups int          `mapstructure:"LogMaxBackups"`
	LogCompress   bool         `mapstructure:"LogCompress"`
	Debug         bool         `mapstructure:"Debug"`
}

// Config 是 TOML 文件映射的整体结构。
type Config struct {
	Global GlobalConfig `mapstructure:",squash"`
	// Manifests 列出额外的入口点清单文件（.hcl/.yaml/.yml）。
	Manifests []string `mapstructure:"Manifests"`
}
