// Package patchingmod 是示例补丁：把 targetmod.global_var 设置为 --patch 的值（默认 2）。
package patchingmod

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/any-hub/gomonkey/internal/argparse"
	"github.com/any-hub/gomonkey/internal/entrypoint"
	"github.com/any-hub/gomonkey/internal/modules"
	"github.com/any-hub/gomonkey/internal/patch"
)

// Name 既是模块名也是补丁名。
const Name = "patchingmod"

const defaultPatch = 2

// Options 是补丁的参数解析结果。
type Options struct {
	Patch int
}

func init() {
	Register(modules.DefaultSources(), entrypoint.Default())
}

// Register 注册模块以及补丁、参数解析两个入口点。
func Register(src *modules.Sources, reg *entrypoint.Registry) {
	src.MustRegister(Name, func(_ *modules.Runtime, m *modules.Module) error {
		m.Set(patch.AttrPatch, patch.Func(Patch))
		m.Set(patch.AttrArgparse, patch.ArgparseFunc(ParseArgs))
		return nil
	})
	reg.MustRegister(entrypoint.Entry{Group: entrypoint.GroupPatch, Name: Name, Unit: Name})
	reg.MustRegister(entrypoint.Entry{Group: entrypoint.GroupArgparse, Name: Name, Unit: Name})
}

// Patch 只作用于 targetmod。
func Patch(m *modules.Module, data any) error {
	if m.Name != "targetmod" {
		return nil
	}
	opts := &Options{Patch: defaultPatch}
	if data != nil {
		parsed, ok := data.(*Options)
		if !ok {
			return fmt.Errorf("%s: unexpected entry data %T", Name, data)
		}
		opts = parsed
	}
	m.Set("global_var", opts.Patch)
	return nil
}

// ParseArgs 解析 --patch，其余参数原样返回。
func ParseArgs(argv []string) (any, []string, error) {
	fs := pflag.NewFlagSet(Name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := &Options{}
	fs.IntVar(&opts.Patch, "patch", defaultPatch, "value assigned to targetmod.global_var")
	rest, err := argparse.ParseKnown(fs, argv)
	if err != nil {
		return nil, nil, err
	}
	return opts, rest, nil
}
