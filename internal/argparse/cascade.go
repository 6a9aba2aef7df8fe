package argparse

import (
	"fmt"

	"github.com/any-hub/gomonkey/internal/patch"
)

// EntryDataSetter 接收每个补丁解析得到的配置，通常由 hook.Hook 实现。
type EntryDataSetter interface {
	SetEntryData(name string, data any)
}

// Cascade 按目录顺序依次调用参数解析函数，每个只调用一次，并把配置交给 setter。
// 返回所有解析函数处理之后剩余的参数。
func Cascade(parsers []patch.Resolved[patch.ArgparseFunc], rest []string, setter EntryDataSetter) ([]string, error) {
	seen := make(map[string]struct{}, len(parsers))
	remaining := append([]string(nil), rest...)
	for _, p := range parsers {
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("argument parser %s registered twice", p.Name)
		}
		seen[p.Name] = struct{}{}

		data, next, err := p.Fn(remaining)
		if err != nil {
			return nil, fmt.Errorf("argument parser %s: %w", p.Name, err)
		}
		setter.SetEntryData(p.Name, data)
		remaining = next
	}
	return remaining, nil
}
