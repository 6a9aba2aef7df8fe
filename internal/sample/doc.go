// Package sample 收录随 gomonkey 一起发布的示例模块：
// compat 提供别名 Finder，targetmod 是被包装的示例命令，patchingmod 是示例补丁。
//
// 每个子包在 init() 中注册到全局注册表，同时暴露 Register 以便测试注册到隔离的注册表。
package sample

import (
	"github.com/any-hub/gomonkey/internal/entrypoint"
	"github.com/any-hub/gomonkey/internal/modules"
	"github.com/any-hub/gomonkey/internal/sample/compat"
	"github.com/any-hub/gomonkey/internal/sample/patchingmod"
	"github.com/any-hub/gomonkey/internal/sample/targetmod"
)

// RegisterAll 将全部示例模块注册到给定的注册表。
func RegisterAll(src *modules.Sources, reg *entrypoint.Registry) {
	compat.Register(src)
	targetmod.Register(src, reg)
	patchingmod.Register(src, reg)
}
