package entrypoint

import (
	"fmt"
	"strings"
)

// 内置的入口点分组。
const (
	GroupPatch    = "gomonkey"
	GroupArgparse = "gomonkey.argparse"
	GroupCommands = "commands"
)

// Entry 描述一个入口点。
type Entry struct {
	Group string
	Name  string
	Unit  string
	Attrs []string
}

// Target 返回 "unit:attr.sub" 形式的目标字符串。
func (e Entry) Target() string {
	if len(e.Attrs) == 0 {
		return e.Unit
	}
	return e.Unit + ":" + strings.Join(e.Attrs, ".")
}

func (e Entry) String() string {
	return fmt.Sprintf("%s = %s", e.Name, e.Target())
}

// ParseTarget 解析 "unit" 或 "unit:attr.sub" 形式的目标。
func ParseTarget(target string) (string, []string, error) {
	raw := strings.TrimSpace(target)
	if raw == "" {
		return "", nil, fmt.Errorf("entry point target is required")
	}
	unit, attrPath, hasAttrs := strings.Cut(raw, ":")
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return "", nil, fmt.Errorf("entry point target %q: unit is required", target)
	}
	if !hasAttrs {
		return unit, nil, nil
	}
	attrs := strings.Split(strings.TrimSpace(attrPath), ".")
	for _, attr := range attrs {
		if attr == "" {
			return "", nil, fmt.Errorf("entry point target %q: empty attribute", target)
		}
	}
	return unit, attrs, nil
}

// Parse 解析 "name = unit:attr" 形式的入口点声明。
func Parse(group, spec string) (Entry, error) {
	name, target, ok := strings.Cut(spec, "=")
	if !ok {
		return Entry{}, fmt.Errorf("entry point %q: expected 'name = target'", spec)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, fmt.Errorf("entry point %q: name is required", spec)
	}
	unit, attrs, err := ParseTarget(target)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Group: group, Name: name, Unit: unit, Attrs: attrs}, nil
}

// MustParse 与 Parse 相同，失败时 panic，适合 init() 与测试中使用。
func MustParse(group, spec string) Entry {
	e, err := Parse(group, spec)
	if err != nil {
		panic(err)
	}
	return e
}
