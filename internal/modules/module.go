package modules

import (
	"sort"
	"strings"
)

// Module 是一次加载产生的模块对象，属性表在加载后仍可被补丁修改。
type Module struct {
	Name  string
	attrs map[string]any
}

// NewModule 创建一个没有任何属性的空模块。
func NewModule(name string) *Module {
	return &Module{Name: name, attrs: make(map[string]any)}
}

// Get 返回属性值以及属性是否存在。
func (m *Module) Get(key string) (any, bool) {
	v, ok := m.attrs[key]
	return v, ok
}

// Set 写入或覆盖属性。
func (m *Module) Set(key string, value any) {
	m.attrs[key] = value
}

// Delete 移除属性，属性不存在时不做任何事。
func (m *Module) Delete(key string) {
	delete(m.attrs, key)
}

// Attr 与 Get 相同，但缺失时返回 *AttributeError。
func (m *Module) Attr(key string) (any, error) {
	if v, ok := m.attrs[key]; ok {
		return v, nil
	}
	return nil, &AttributeError{Module: m.Name, Attr: key}
}

// Keys 返回按名称排序的属性列表，供诊断输出使用。
func (m *Module) Keys() []string {
	keys := make([]string, 0, len(m.attrs))
	for k := range m.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package 返回模块的父包名，顶层模块返回空字符串。
func (m *Module) Package() string {
	return parentName(m.Name)
}

func parentName(name string) string {
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		return name[:idx]
	}
	return ""
}

// BaseName 返回模块名最后一段，即子模块挂在父包上的属性名。
func BaseName(name string) string {
	return baseName(name)
}

func baseName(name string) string {
	return name[strings.LastIndexByte(name, '.')+1:]
}

// IsAncestor 判断 pkg 是否为 name 的祖先包（按 '.' 边界比较，不含自身）。
func IsAncestor(pkg, name string) bool {
	return len(name) > len(pkg) && strings.HasPrefix(name, pkg) && name[len(pkg)] == '.'
}
