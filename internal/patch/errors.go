package patch

import (
	"fmt"
	"sort"
	"strings"
)

// SelectionError 表示请求的补丁不在目录中。
type SelectionError struct {
	Missing []string
}

func (e *SelectionError) Error() string {
	return "Could not find patch(es): " + FormatSet(e.Missing)
}

// DefinitionError 表示补丁模块在加载期导入了无关模块。
type DefinitionError struct {
	Unit    string
	Modules []string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf(
		"patch modules must not trigger imports at the module scope.  "+
			"The following modules were imported while importing %s:\n\t%s",
		e.Unit, strings.Join(e.Modules, "\n\t"),
	)
}

// FormatSet 以 {"a", "b"} 的形式输出无序集合，名称排序以保证输出稳定。
func FormatSet(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	quoted := make([]string, len(sorted))
	for i, name := range sorted {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}
