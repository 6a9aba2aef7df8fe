package entrypoint

import (
	"fmt"
	"strings"
	"sync"
)

var globalRegistry = NewRegistry()

// Registry 按 group 保存入口点，保持注册顺序。
type Registry struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

// NewRegistry 创建空注册表。
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string][]Entry)}
}

// Default 返回 init() 注册使用的全局注册表。
func Default() *Registry {
	return globalRegistry
}

// Register 将入口点加入全局注册表，同组重名会返回错误。
func Register(e Entry) error {
	return globalRegistry.Register(e)
}

// MustRegister 在注册失败时 panic，适合模块 init() 中调用。
func MustRegister(e Entry) {
	if err := Register(e); err != nil {
		panic(err)
	}
}

// Register 注册入口点。
func (r *Registry) Register(e Entry) error {
	e.Group = strings.TrimSpace(e.Group)
	e.Name = strings.TrimSpace(e.Name)
	e.Unit = strings.TrimSpace(e.Unit)
	if e.Group == "" {
		return fmt.Errorf("entry point group is required")
	}
	if e.Name == "" {
		return fmt.Errorf("entry point name is required")
	}
	if e.Unit == "" {
		return fmt.Errorf("entry point %s: unit is required", e.Name)
	}
	e.Attrs = append([]string(nil), e.Attrs...)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.entries[e.Group] {
		if existing.Name == e.Name {
			return fmt.Errorf("entry point %s already registered in group %s", e.Name, e.Group)
		}
	}
	r.entries[e.Group] = append(r.entries[e.Group], e)
	return nil
}

// MustRegister 与 Register 相同，失败时 panic。
func (r *Registry) MustRegister(e Entry) {
	if err := r.Register(e); err != nil {
		panic(err)
	}
}

// Group 返回指定分组的入口点副本，按注册顺序排列。
func (r *Registry) Group(group string) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.entries[strings.TrimSpace(group)]
	if len(items) == 0 {
		return nil
	}
	out := make([]Entry, len(items))
	copy(out, items)
	return out
}

// Lookup 返回分组内所有名称匹配的入口点。
func (r *Registry) Lookup(group, name string) []Entry {
	var out []Entry
	for _, e := range r.Group(group) {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// Names 返回分组内的入口点名称，按注册顺序排列。
func (r *Registry) Names(group string) []string {
	items := r.Group(group)
	names := make([]string, len(items))
	for i, e := range items {
		names[i] = e.Name
	}
	return names
}
