// Package targetmod 提供示例命令 targetmod：打印模块变量 global_var 以及剩余参数。
package targetmod

import (
	"errors"
	"fmt"

	"github.com/any-hub/gomonkey/internal/entrypoint"
	"github.com/any-hub/gomonkey/internal/modules"
	"github.com/any-hub/gomonkey/internal/sample/compat"
)

// Name 既是模块名也是命令名。
const Name = "targetmod"

func init() {
	Register(modules.DefaultSources(), entrypoint.Default())
}

// Register 注册模块与命令入口点。
func Register(src *modules.Sources, reg *entrypoint.Registry) {
	src.MustRegister(Name, build)
	reg.MustRegister(entrypoint.Entry{Group: entrypoint.GroupCommands, Name: Name, Unit: Name, Attrs: []string{"main"}})
}

func build(rt *modules.Runtime, m *modules.Module) error {
	moves, err := rt.Import(compat.Moves)
	if err != nil {
		return err
	}
	m.Set("global_var", 1)
	m.Set("main", func() int { return run(rt, m, moves) })
	return nil
}

func run(rt *modules.Runtime, m *modules.Module, moves *modules.Module) int {
	joinAttr, err := moves.Attr("join")
	if err != nil {
		fmt.Fprintln(rt.Stderr(), err)
		return 1
	}
	join, ok := joinAttr.(func([]string, string) string)
	if !ok {
		fmt.Fprintf(rt.Stderr(), "%s.join has unexpected type %T\n", compat.Moves, joinAttr)
		return 1
	}

	v, _ := m.Get("global_var")
	fmt.Fprintln(rt.Stdout(), v)
	if argv := rt.Argv(); len(argv) > 1 {
		fmt.Fprintln(rt.Stdout(), join(argv[1:], ", "))
	}

	// 缺失的模块在补丁生效时仍应照常报错
	var nf *modules.NotFoundError
	if _, err := rt.Import("i_dont_exist"); !errors.As(err, &nf) {
		fmt.Fprintf(rt.Stderr(), "expected missing module error, got %v\n", err)
		return 1
	}
	return 0
}
