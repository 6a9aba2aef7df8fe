package patch

import (
	"github.com/any-hub/gomonkey/internal/entrypoint"
	"github.com/any-hub/gomonkey/internal/modules"
)

// 模块形式的入口点上约定的属性名。
const (
	AttrPatch    = "gomonkey_patch"
	AttrArgparse = "gomonkey_argparse"
)

// Func 将补丁应用到刚加载的模块上，data 为该补丁参数解析得到的配置。
type Func func(m *modules.Module, data any) error

// ArgparseFunc 从剩余参数中解析自己认识的部分，返回配置与未消费的参数。
type ArgparseFunc func(argv []string) (any, []string, error)

// Kind 描述一类入口点：所在分组、模块形式时的属性名以及可调用类型的识别方式。
type Kind[F any] struct {
	Group   string
	Attr    string
	convert func(v any) (F, bool)
}

// NewKind 创建自定义入口点类别，convert 负责识别可调用类型。
func NewKind[F any](group, attr string, convert func(v any) (F, bool)) Kind[F] {
	return Kind[F]{Group: group, Attr: attr, convert: convert}
}

// PatchKind 对应 gomonkey 分组中的补丁。
var PatchKind = Kind[Func]{
	Group: entrypoint.GroupPatch,
	Attr:  AttrPatch,
	convert: func(v any) (Func, bool) {
		switch fn := v.(type) {
		case Func:
			return fn, fn != nil
		case func(*modules.Module, any) error:
			return fn, fn != nil
		}
		return nil, false
	},
}

// ArgparseKind 对应 gomonkey.argparse 分组中的参数解析函数。
var ArgparseKind = Kind[ArgparseFunc]{
	Group: entrypoint.GroupArgparse,
	Attr:  AttrArgparse,
	convert: func(v any) (ArgparseFunc, bool) {
		switch fn := v.(type) {
		case ArgparseFunc:
			return fn, fn != nil
		case func([]string) (any, []string, error):
			return fn, fn != nil
		}
		return nil, false
	},
}

// Via 记录可调用对象的来源：入口点本身即可调用，或取自模块上的约定属性。
type Via int

const (
	ViaDirect Via = iota
	ViaAttribute
)

func (v Via) String() string {
	if v == ViaAttribute {
		return "attribute"
	}
	return "direct"
}

// Resolved 是解析完成的入口点。
type Resolved[F any] struct {
	Name string
	Unit string
	Via  Via
	// Attr 仅在 Via == ViaAttribute 时有效。
	Attr string
	Fn   F
}
