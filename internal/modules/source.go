package modules

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory 构建模块属性。工厂内部对 rt.Import 的调用即模块的依赖导入。
type Factory func(rt *Runtime, m *Module) error

var globalSources = NewSources()

// Sources 保存模块名到工厂函数的映射，是 Runtime 隐式查找的后备来源。
type Sources struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewSources 创建空的源码注册表，测试中可用于隔离全局状态。
func NewSources() *Sources {
	return &Sources{factories: make(map[string]Factory)}
}

// DefaultSources 返回 init() 注册使用的全局注册表。
func DefaultSources() *Sources {
	return globalSources
}

// RegisterSource 将模块加入全局注册表，重复名称会返回错误。
func RegisterSource(name string, factory Factory) error {
	return globalSources.Register(name, factory)
}

// MustRegisterSource 在注册失败时 panic，适合模块 init() 中调用。
func MustRegisterSource(name string, factory Factory) {
	if err := RegisterSource(name, factory); err != nil {
		panic(err)
	}
}

func normalizeName(name string) string {
	return strings.TrimSpace(name)
}

// Register 注册模块工厂。
func (s *Sources) Register(name string, factory Factory) error {
	key := normalizeName(name)
	if key == "" {
		return fmt.Errorf("module name is required")
	}
	if factory == nil {
		return fmt.Errorf("module %s: factory is required", key)
	}
	if strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") || strings.Contains(key, "..") {
		return fmt.Errorf("module %s: invalid dotted name", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.factories[key]; exists {
		return fmt.Errorf("module %s already registered", key)
	}
	s.factories[key] = factory
	return nil
}

// MustRegister 与 Register 相同，失败时 panic。
func (s *Sources) MustRegister(name string, factory Factory) {
	if err := s.Register(name, factory); err != nil {
		panic(err)
	}
}

// Lookup 返回模块工厂。
func (s *Sources) Lookup(name string) (Factory, bool) {
	key := normalizeName(name)
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.factories[key]
	return f, ok
}

// Names 返回按名称排序的模块列表。
func (s *Sources) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.factories))
	for name := range s.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
