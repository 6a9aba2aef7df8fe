package config

import (
	"errors"
	"path/filepath"
	"strings"
)

var supportedManifestExts = map[string]struct{}{
	".hcl":  {},
	".yaml": {},
	".yml":  {},
}

// Validate 针对语义级别做进一步校验，防止非法配置进入运行阶段。
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("配置为空")
	}

	g := c.Global
	if g.LogMaxSize <= 0 {
		return newFieldError("Global.LogMaxSize", "必须大于 0")
	}
	if g.LogMaxBackups < 0 {
		return newFieldError("Global.LogMaxBackups", "不能为负数")
	}

	for i, path := range c.Manifests {
		if strings.TrimSpace(path) == "" {
			return newFieldError(manifestField(i), "不能为空")
		}
		if _, ok := supportedManifestExts[strings.ToLower(filepath.Ext(path))]; !ok {
			return newFieldError(manifestField(i), "仅支持 .hcl|.yaml|.yml")
		}
	}
	return nil
}
