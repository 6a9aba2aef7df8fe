package patch

import (
	"fmt"

	"github.com/any-hub/gomonkey/internal/entrypoint"
	"github.com/any-hub/gomonkey/internal/modules"
)

// Resolve 将目录中被选中的入口点解析为可调用对象，结果保持目录顺序。
// all 为 true 时忽略 requested 并解析全部入口点；否则 requested 中任何不在目录内的
// 名称都会导致 *SelectionError。
func Resolve[F any](rt *modules.Runtime, all bool, requested []string, catalog []entrypoint.Entry, kind Kind[F]) ([]Resolved[F], error) {
	selected, err := Select(all, requested, catalog)
	if err != nil {
		return nil, err
	}

	out := make([]Resolved[F], 0, len(selected))
	for _, entry := range selected {
		r, err := resolveEntry(rt, entry, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Select 按目录顺序挑选入口点，不加载任何模块。
func Select(all bool, requested []string, catalog []entrypoint.Entry) ([]entrypoint.Entry, error) {
	if all {
		return append([]entrypoint.Entry(nil), catalog...), nil
	}

	want := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		want[name] = struct{}{}
	}
	known := make(map[string]struct{}, len(catalog))
	selected := make([]entrypoint.Entry, 0, len(want))
	for _, entry := range catalog {
		known[entry.Name] = struct{}{}
		if _, ok := want[entry.Name]; ok {
			selected = append(selected, entry)
		}
	}

	var missing []string
	for name := range want {
		if _, ok := known[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SelectionError{Missing: missing}
	}
	return selected, nil
}

func resolveEntry[F any](rt *modules.Runtime, entry entrypoint.Entry, kind Kind[F]) (Resolved[F], error) {
	var r Resolved[F]
	err := Guard(rt.Cache(), entry.Unit, func() error {
		var err error
		r, err = Load(rt, entry, kind)
		return err
	})
	return r, err
}

// Load 加载入口点所在模块并取出可调用对象，不做副作用检查。
// 目标命令等本身需要导入依赖的入口点应使用 Load，而非 Resolve。
func Load[F any](rt *modules.Runtime, entry entrypoint.Entry, kind Kind[F]) (Resolved[F], error) {
	unit, err := rt.Import(entry.Unit)
	if err != nil {
		return Resolved[F]{}, err
	}

	value, err := walkAttrs(unit, entry.Attrs)
	if err != nil {
		return Resolved[F]{}, err
	}

	if fn, ok := kind.convert(value); ok {
		return Resolved[F]{Name: entry.Name, Unit: entry.Unit, Via: ViaDirect, Fn: fn}, nil
	}

	m, ok := value.(*modules.Module)
	if !ok {
		return Resolved[F]{}, &modules.AttributeError{
			Module: entry.Unit,
			Attr:   entry.Target(),
			Reason: fmt.Sprintf("%T is neither callable nor a module", value),
		}
	}
	attr, err := m.Attr(kind.Attr)
	if err != nil {
		return Resolved[F]{}, err
	}
	fn, ok := kind.convert(attr)
	if !ok {
		return Resolved[F]{}, &modules.AttributeError{
			Module: m.Name,
			Attr:   kind.Attr,
			Reason: fmt.Sprintf("unexpected type %T", attr),
		}
	}
	return Resolved[F]{Name: entry.Name, Unit: entry.Unit, Via: ViaAttribute, Attr: kind.Attr, Fn: fn}, nil
}

// walkAttrs 沿属性路径逐级取值，中间节点必须是模块。
func walkAttrs(m *modules.Module, attrs []string) (any, error) {
	var value any = m
	for _, attr := range attrs {
		cur, ok := value.(*modules.Module)
		if !ok {
			return nil, &modules.AttributeError{Attr: attr, Reason: fmt.Sprintf("%T has no attributes", value)}
		}
		next, err := cur.Attr(attr)
		if err != nil {
			return nil, err
		}
		value = next
	}
	return value, nil
}

// Known 过滤出目录中存在的名称，保持 requested 的顺序。
// 用于参数解析阶段：没有注册参数解析函数的补丁直接跳过。
func Known(requested []string, catalog []entrypoint.Entry) []string {
	known := make(map[string]struct{}, len(catalog))
	for _, entry := range catalog {
		known[entry.Name] = struct{}{}
	}
	var out []string
	for _, name := range requested {
		if _, ok := known[name]; ok {
			out = append(out, name)
		}
	}
	return out
}
