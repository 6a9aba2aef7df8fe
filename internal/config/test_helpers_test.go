package config

import (
	"os"
	"path/filepath"
	"testing"
)

func testConfigPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join("testdata", name)
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "gomonkey.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("写入临时配置失败: %v", err)
	}
	return path
}

func skipIfDebugEnvSet(t *testing.T) {
	t.Helper()
	if _, ok := os.LookupEnv(DebugEnv); ok {
		t.Skipf("%s 已在环境中设置", DebugEnv)
	}
}
