package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Load 读取可选的 TOML 配置文件，注入默认值并完成校验。
// path 为空时只使用默认值与环境变量。
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置失败: %w", err)
		}
	}

	var cfg Config
	hook := mapstructure.ComposeDecodeHookFunc(
		levelDecodeHook(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.Unmarshal(&cfg, viper.DecodeHook(hook)); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if _, ok := os.LookupEnv(DebugEnv); ok {
		cfg.Global.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if path != "" {
		base := filepath.Dir(path)
		for i, m := range cfg.Manifests {
			if !filepath.IsAbs(m) {
				cfg.Manifests[i] = filepath.Join(base, m)
			}
		}
	}

	return &cfg, nil
}

// PathFromEnv 返回环境变量中指定的配置文件路径。
func PathFromEnv() string {
	return strings.TrimSpace(os.Getenv(ConfigEnv))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LogLevel", "warn")
	v.SetDefault("LogFilePath", "")
	v.SetDefault("LogMaxSize", 100)
	v.SetDefault("LogMaxBackups", 10)
	v.SetDefault("LogCompress", true)
	v.SetDefault("Debug", false)
	v.SetDefault("Manifests", []string{})
}

func levelDecodeHook() mapstructure.DecodeHookFunc {
	targetType := reflect.TypeOf(logrus.Level(0))

	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != targetType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return logrus.WarnLevel, nil
			}
			level, err := logrus.ParseLevel(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("无法解析日志级别: %s", v)
			}
			return level, nil
		case logrus.Level:
			return v, nil
		default:
			return nil, fmt.Errorf("不支持的日志级别类型: %T", v)
		}
	}
}
