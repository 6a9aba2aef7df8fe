package patch

import (
	"sort"

	"github.com/any-hub/gomonkey/internal/modules"
)

// Guard 执行 load 并检查其间新加载的模块：除 unit 自身、其祖先包与子包之外的
// 任何新模块都视为加载期副作用，返回 *DefinitionError。load 自身的错误原样返回。
func Guard(cache *modules.Cache, unit string, load func() error) error {
	before := make(map[string]struct{}, cache.Len())
	for _, name := range cache.Names() {
		before[name] = struct{}{}
	}

	if err := load(); err != nil {
		return err
	}

	var unexpected []string
	for _, name := range cache.Names() {
		if _, ok := before[name]; ok {
			continue
		}
		if related(unit, name) {
			continue
		}
		unexpected = append(unexpected, name)
	}
	if len(unexpected) == 0 {
		return nil
	}
	sort.Strings(unexpected)
	return &DefinitionError{Unit: unit, Modules: unexpected}
}

func related(unit, name string) bool {
	return name == unit || modules.IsAncestor(name, unit) || modules.IsAncestor(unit, name)
}
