package modules

import (
	"io"
	"os"
)

// Runtime 持有模块表、meta path 以及模块可见的进程参数与标准流。
// 同一进程只应构建一个 Runtime，由驱动层显式传递。
type Runtime struct {
	sources  *Sources
	cache    *Cache
	metaPath *MetaPath
	argv     []string
	stdout   io.Writer
	stderr   io.Writer
}

// Option 调整 Runtime 的构建参数。
type Option func(*Runtime)

// WithSources 指定源码注册表，默认使用全局注册表。
func WithSources(s *Sources) Option {
	return func(rt *Runtime) {
		if s != nil {
			rt.sources = s
		}
	}
}

// WithStdout 指定模块写入的标准输出。
func WithStdout(w io.Writer) Option {
	return func(rt *Runtime) {
		if w != nil {
			rt.stdout = w
		}
	}
}

// WithStderr 指定模块写入的标准错误。
func WithStderr(w io.Writer) Option {
	return func(rt *Runtime) {
		if w != nil {
			rt.stderr = w
		}
	}
}

// WithArgv 指定初始参数向量。
func WithArgv(argv []string) Option {
	return func(rt *Runtime) {
		rt.argv = append([]string(nil), argv...)
	}
}

// New 创建 Runtime，meta path 初始为空。
func New(opts ...Option) *Runtime {
	rt := &Runtime{
		sources:  globalSources,
		cache:    newCache(),
		metaPath: &MetaPath{},
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Cache 返回已加载模块表。
func (rt *Runtime) Cache() *Cache { return rt.cache }

// MetaPath 返回 Finder 链。
func (rt *Runtime) MetaPath() *MetaPath { return rt.metaPath }

// Sources 返回源码注册表。
func (rt *Runtime) Sources() *Sources { return rt.sources }

// Stdout 返回模块使用的标准输出。
func (rt *Runtime) Stdout() io.Writer { return rt.stdout }

// Stderr 返回模块使用的标准错误。
func (rt *Runtime) Stderr() io.Writer { return rt.stderr }

// Argv 返回当前参数向量的副本。
func (rt *Runtime) Argv() []string {
	return append([]string(nil), rt.argv...)
}

// SetArgv 替换模块可见的参数向量。
func (rt *Runtime) SetArgv(argv []string) {
	rt.argv = append([]string(nil), argv...)
}

// Import 加载模块：命中缓存直接返回；否则先加载父包，再依次询问 meta path，
// 最后回退到源码注册表。加载失败的模块不会留在缓存中。
func (rt *Runtime) Import(name string) (*Module, error) {
	name = normalizeName(name)
	if name == "" {
		return nil, &NotFoundError{Name: name}
	}
	if m, ok := rt.cache.Get(name); ok {
		return m, nil
	}

	var parent *Module
	if pkg := parentName(name); pkg != "" {
		p, err := rt.Import(pkg)
		if err != nil {
			return nil, err
		}
		parent = p
		// 父包加载过程中可能已经导入了该子模块
		if m, ok := rt.cache.Get(name); ok {
			return m, nil
		}
	}

	for _, finder := range rt.metaPath.Finders() {
		loader := finder.FindModule(name)
		if loader == nil {
			continue
		}
		m, err := loader.LoadModule(name)
		if err != nil {
			return nil, err
		}
		return rt.commit(name, m, parent), nil
	}

	factory, ok := rt.sources.Lookup(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	m, err := rt.loadSource(name, factory)
	if err != nil {
		return nil, err
	}
	return rt.commit(name, m, parent), nil
}

// Probe 是不触发加载的基础存在性检查，只查询源码注册表。
// 子模块要求父包已加载或同样可被探测到，且子模块自身已注册。
func (rt *Runtime) Probe(name string) bool {
	name = normalizeName(name)
	if name == "" {
		return false
	}
	if pkg := parentName(name); pkg != "" {
		if !rt.cache.Has(pkg) && !rt.Probe(pkg) {
			return false
		}
	}
	_, ok := rt.sources.Lookup(name)
	return ok
}

func (rt *Runtime) loadSource(name string, factory Factory) (*Module, error) {
	m := NewModule(name)
	rt.cache.Put(m)
	if err := factory(rt, m); err != nil {
		rt.cache.Delete(name)
		return nil, err
	}
	return m, nil
}

// commit 以缓存中的对象为准（Loader 可能已自行写入），并把子模块挂到父包上。
func (rt *Runtime) commit(name string, m *Module, parent *Module) *Module {
	if cached, ok := rt.cache.Get(name); ok {
		m = cached
	} else {
		rt.cache.Put(m)
	}
	if parent != nil {
		parent.Set(baseName(name), m)
	}
	return m
}
