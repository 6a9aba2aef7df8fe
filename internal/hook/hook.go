// Package hook 实现加载期拦截点：hook 位于 meta path 最前端，
// 先让常规机制构建模块，再把新模块依次交给每个选中的补丁。
package hook

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/any-hub/gomonkey/internal/modules"
	"github.com/any-hub/gomonkey/internal/patch"
)

// Runtime 是 hook 依赖的模块运行时能力。
type Runtime interface {
	Import(name string) (*modules.Module, error)
	MetaPath() *modules.MetaPath
	Cache() *modules.Cache
	Probe(name string) bool
}

// Hook 在模块加载时应用补丁。
type Hook struct {
	rt       Runtime
	patches  []patch.Resolved[patch.Func]
	data     map[string]any
	handling *Stack
	trace    logrus.FieldLogger
}

// Option 调整 Hook 的构建参数。
type Option func(*Hook)

// WithStack 注入处理栈。
func WithStack(s *Stack) Option {
	return func(h *Hook) {
		if s != nil {
			h.handling = s
		}
	}
}

// WithTracer 指定以 debug 级别接收查找/加载决策的 logger。
func WithTracer(l logrus.FieldLogger) Option {
	return func(h *Hook) {
		if l != nil {
			h.trace = l
		}
	}
}

// New 为给定补丁创建 hook。每个补丁的配置初始为 nil，直到 SetEntryData 写入解析结果。
func New(rt Runtime, patches []patch.Resolved[patch.Func], opts ...Option) *Hook {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	h := &Hook{
		rt:       rt,
		patches:  append([]patch.Resolved[patch.Func](nil), patches...),
		data:     make(map[string]any, len(patches)),
		handling: NewStack(),
		trace:    discard,
	}
	for _, p := range patches {
		h.data[p.Name] = nil
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Install 把 hook 插入 meta path 最前端。
func (h *Hook) Install() {
	h.rt.MetaPath().Insert(0, h)
}

// SetEntryData 设置传给指定补丁的配置。
func (h *Hook) SetEntryData(name string, data any) {
	h.data[name] = data
}

// EntryData 返回指定补丁的配置。
func (h *Hook) EntryData(name string) any {
	return h.data[name]
}

// Handling 返回处理栈。
func (h *Hook) Handling() *Stack {
	return h.handling
}

// FindModule 实现 modules.Finder。
func (h *Hook) FindModule(name string) modules.Loader {
	switch {
	case h.handling.Contains(name):
		// 自身委托的导入又绕回来了
		h.trace.Debugf("already handling %s", name)
		return nil
	case h.ModuleExists(name):
		h.trace.Debugf("found %s", name)
		return h
	default:
		h.trace.Debugf("not found %s", name)
		return nil
	}
}

// LoadModule 实现 modules.Loader。真正的导入委托回运行时，
// name 在处理栈上期间运行时会跳过本 hook。
func (h *Hook) LoadModule(name string) (*modules.Module, error) {
	h.handling.Push(name)
	defer h.handling.Pop(name)

	m, err := h.rt.Import(name)
	if err != nil {
		return nil, err
	}
	for _, p := range h.patches {
		if err := p.Fn(m, h.data[p.Name]); err != nil {
			h.discard(m)
			return nil, err
		}
	}
	return m, nil
}

// discard 让补丁失败的模块不可达：移出模块表，并解除在父包上的绑定。
func (h *Hook) discard(m *modules.Module) {
	h.rt.Cache().Delete(m.Name)
	pkg := m.Package()
	if pkg == "" {
		return
	}
	parent, ok := h.rt.Cache().Get(pkg)
	if !ok {
		return
	}
	attr := modules.BaseName(m.Name)
	if bound, ok := parent.Get(attr); ok && bound == any(m) {
		parent.Delete(attr)
	}
}

// ModuleExists 判断其他 Finder（或退而求其次的基础探测）能否提供 name，不会加载任何模块。
func (h *Hook) ModuleExists(name string) bool {
	for _, f := range h.rt.MetaPath().Finders() {
		if f == modules.Finder(h) {
			continue
		}
		if f.FindModule(name) != nil {
			return true
		}
	}
	return h.rt.Probe(name)
}
