// Package compat 提供 "compat" 模块：加载时向 meta path 追加别名 Finder，
// 使 compat.moves 由该 Finder 而非源码注册表提供。
package compat

import (
	"strings"

	"github.com/any-hub/gomonkey/internal/modules"
)

const (
	// Name 是包模块名。
	Name = "compat"
	// Moves 由别名 Finder 提供。
	Moves = "compat.moves"

	implName = "compat._impl"
)

func init() {
	Register(modules.DefaultSources())
}

// Register 将 compat 模块注册到 src。
func Register(src *modules.Sources) {
	src.MustRegister(Name, func(rt *modules.Runtime, m *modules.Module) error {
		rt.MetaPath().Append(modules.NewAliasFinder(rt, map[string]string{Moves: implName}))
		return nil
	})
	src.MustRegister(implName, func(_ *modules.Runtime, m *modules.Module) error {
		m.Set("join", strings.Join)
		return nil
	})
}
