package modules

import "fmt"

// NotFoundError 表示没有任何 Finder 或源码注册项能够提供该模块。
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no module named %q", e.Name)
}

// AttributeError 表示模块缺少请求的属性，或属性类型与调用方期望不符。
type AttributeError struct {
	Module string
	Attr   string
	Reason string
}

func (e *AttributeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("module %q attribute %q: %s", e.Module, e.Attr, e.Reason)
	}
	return fmt.Sprintf("module %q has no attribute %q", e.Module, e.Attr)
}
