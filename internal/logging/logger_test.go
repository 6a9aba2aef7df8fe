package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/any-hub/gomonkey/internal/config"
)

func TestConfigureDefaultsToStderr(t *testing.T) {
	logger, err := InitLogger(config.GlobalConfig{LogLevel: logrus.InfoLevel})
	if err != nil {
		t.Fatalf("配置失败: %v", err)
	}
	if logger.Out != os.Stderr {
		t.Fatalf("未指定文件时应输出到 stderr")
	}
	if logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("日志级别未生效: %s", logger.GetLevel())
	}
}

func TestInitLoggerRejectsInvalidLevel(t *testing.T) {
	if _, err := InitLogger(config.GlobalConfig{LogLevel: logrus.Level(42)}); err == nil {
		t.Fatalf("非法日志级别应失败")
	}
}

func TestInitLoggerFallbackOnPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root 用户忽略目录权限")
	}
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	if err := os.Mkdir(blocked, 0o755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}
	if err := os.Chmod(blocked, 0o000); err != nil {
		t.Fatalf("设置目录权限失败: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(blocked, 0o755) })

	prev := fallbackOutput
	buf := &bytes.Buffer{}
	fallbackOutput = buf
	t.Cleanup(func() { fallbackOutput = prev })

	cfg := config.GlobalConfig{
		LogLevel:    logrus.InfoLevel,
		LogFilePath: filepath.Join(blocked, "sub", "gomonkey.log"),
	}
	logger, err := InitLogger(cfg)
	if err != nil {
		t.Fatalf("初始化不应失败: %v", err)
	}
	if logger.Out != buf {
		t.Fatalf("fallback 时应退回 stderr")
	}
	if !bytes.Contains(buf.Bytes(), []byte("logger_fallback")) {
		t.Fatalf("fallback 时应输出提示: %q", buf.String())
	}
}

func TestConfigureCreatesRotatingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "gomonkey.log")
	cfg := config.GlobalConfig{LogLevel: logrus.DebugLevel, LogFilePath: path, LogMaxSize: 1}
	logger, err := InitLogger(cfg)
	if err != nil {
		t.Fatalf("配置失败: %v", err)
	}
	logger.WithFields(BaseFields("test")).Info("test")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("预期创建日志文件: %v", err)
	}
}

func TestBaseFieldsCarryRunID(t *testing.T) {
	fields := BaseFields("resolve")
	if fields["action"] != "resolve" {
		t.Fatalf("action 字段错误: %v", fields["action"])
	}
	if fields["run_id"] != RunID() || RunID() == "" {
		t.Fatalf("run_id 字段错误: %v", fields["run_id"])
	}
}
