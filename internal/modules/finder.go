package modules

// Finder 判断自己能否提供某个模块；返回 nil 表示不处理，交由后续 Finder。
type Finder interface {
	FindModule(name string) Loader
}

// Loader 真正构建模块对象。
type Loader interface {
	LoadModule(name string) (*Module, error)
}

// MetaPath 是 Runtime 在隐式源码查找之前依次询问的 Finder 链。
type MetaPath struct {
	finders []Finder
}

// Insert 将 Finder 插入到指定位置，越界时追加到末尾。
func (p *MetaPath) Insert(index int, f Finder) {
	if index < 0 {
		index = 0
	}
	if index >= len(p.finders) {
		p.finders = append(p.finders, f)
		return
	}
	p.finders = append(p.finders, nil)
	copy(p.finders[index+1:], p.finders[index:])
	p.finders[index] = f
}

// Append 将 Finder 追加到链尾。
func (p *MetaPath) Append(f Finder) {
	p.finders = append(p.finders, f)
}

// Finders 返回当前链的副本，遍历期间的插入不会影响本次查找。
func (p *MetaPath) Finders() []Finder {
	out := make([]Finder, len(p.finders))
	copy(out, p.finders)
	return out
}

// Len 返回链长度。
func (p *MetaPath) Len() int {
	return len(p.finders)
}

// AliasFinder 以别名暴露已有模块，类似兼容层在导入期重定向模块名。
// 别名模块是目标模块属性的快照，拥有独立的模块对象。
type AliasFinder struct {
	rt      *Runtime
	aliases map[string]string
}

// NewAliasFinder 创建别名 Finder，aliases 的键为别名、值为真实模块名。
func NewAliasFinder(rt *Runtime, aliases map[string]string) *AliasFinder {
	copied := make(map[string]string, len(aliases))
	for k, v := range aliases {
		copied[k] = v
	}
	return &AliasFinder{rt: rt, aliases: copied}
}

// FindModule 实现 Finder。
func (f *AliasFinder) FindModule(name string) Loader {
	if _, ok := f.aliases[name]; ok {
		return f
	}
	return nil
}

// LoadModule 实现 Loader。
func (f *AliasFinder) LoadModule(name string) (*Module, error) {
	target, ok := f.aliases[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	src, err := f.rt.Import(target)
	if err != nil {
		return nil, err
	}
	alias := NewModule(name)
	for _, key := range src.Keys() {
		v, _ := src.Get(key)
		alias.Set(key, v)
	}
	return alias, nil
}
