package modules

import "sort"

// Cache 是已加载模块表，记录整个 Runtime 生命周期内构建过的模块。
type Cache struct {
	modules map[string]*Module
}

func newCache() *Cache {
	return &Cache{modules: make(map[string]*Module)}
}

// Get 返回已缓存的模块。
func (c *Cache) Get(name string) (*Module, bool) {
	m, ok := c.modules[name]
	return m, ok
}

// Put 写入模块，重复写入以后者为准。
func (c *Cache) Put(m *Module) {
	c.modules[m.Name] = m
}

// Delete 移除模块，用于加载失败时回滚。
func (c *Cache) Delete(name string) {
	delete(c.modules, name)
}

// Has 判断模块是否已加载。
func (c *Cache) Has(name string) bool {
	_, ok := c.modules[name]
	return ok
}

// Names 返回当前已加载模块名的快照（已排序）。
func (c *Cache) Names() []string {
	names := make([]string, 0, len(c.modules))
	for name := range c.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len 返回已加载模块数量。
func (c *Cache) Len() int {
	return len(c.modules)
}
