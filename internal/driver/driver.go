// Package driver 串联整个流程：拆分命令行、解析补丁、安装 hook、
// 执行参数解析级联，最后通过 hook 导入目标命令并调用其 main。
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/any-hub/gomonkey/internal/argparse"
	"github.com/any-hub/gomonkey/internal/cli"
	"github.com/any-hub/gomonkey/internal/entrypoint"
	"github.com/any-hub/gomonkey/internal/hook"
	"github.com/any-hub/gomonkey/internal/logging"
	"github.com/any-hub/gomonkey/internal/modules"
	"github.com/any-hub/gomonkey/internal/patch"
)

// DefaultProg 是使用说明中显示的程序名。
const DefaultProg = "gomonkey"

// MainFunc 是目标命令的入口函数，返回进程退出码。
type MainFunc func() int

// MainKind 对应 commands 分组中的目标命令。
var MainKind = patch.NewKind(entrypoint.GroupCommands, "main", func(v any) (MainFunc, bool) {
	switch fn := v.(type) {
	case MainFunc:
		return fn, fn != nil
	case func() int:
		return fn, fn != nil
	}
	return nil, false
})

// Options 汇总 Driver 的可注入依赖，零值字段使用进程级默认值。
type Options struct {
	Prog    string
	Sources *modules.Sources
	Entries *entrypoint.Registry
	Stdout  io.Writer
	Stderr  io.Writer
	// Logger 接收运行日志，Tracer 接收 hook 的调试跟踪。
	Logger logrus.FieldLogger
	Tracer logrus.FieldLogger
}

// Driver 持有一次运行所需的 Runtime 与入口点注册表。
type Driver struct {
	prog    string
	rt      *modules.Runtime
	entries *entrypoint.Registry
	stdout  io.Writer
	stderr  io.Writer
	logger  logrus.FieldLogger
	tracer  logrus.FieldLogger
}

// New 创建 Driver 及其专属的 Runtime。
func New(opts Options) *Driver {
	d := &Driver{
		prog:    opts.Prog,
		entries: opts.Entries,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
		logger:  opts.Logger,
		tracer:  opts.Tracer,
	}
	if d.prog == "" {
		d.prog = DefaultProg
	}
	if d.entries == nil {
		d.entries = entrypoint.Default()
	}
	if d.stdout == nil {
		d.stdout = os.Stdout
	}
	if d.stderr == nil {
		d.stderr = os.Stderr
	}
	if d.logger == nil {
		d.logger = discardLogger()
	}
	if d.tracer == nil {
		d.tracer = discardLogger()
	}

	rtOpts := []modules.Option{modules.WithStdout(d.stdout), modules.WithStderr(d.stderr)}
	if opts.Sources != nil {
		rtOpts = append(rtOpts, modules.WithSources(opts.Sources))
	}
	d.rt = modules.New(rtOpts...)
	return d
}

// Runtime 返回 Driver 使用的模块运行时。
func (d *Driver) Runtime() *modules.Runtime {
	return d.rt
}

// Main 执行一次完整流程并返回退出码。
func (d *Driver) Main(argv []string) int {
	code, err := d.run(argv)
	if err == nil {
		return code
	}
	return d.report(err)
}

func (d *Driver) run(argv []string) (int, error) {
	args, err := cli.Parse(argv)
	if err != nil {
		return 0, err
	}

	fields := logging.BaseFields("patch")
	for k, v := range logging.PatchFields(args.All, args.Patches, args.Cmd[0]) {
		fields[k] = v
	}
	logger := d.logger.WithFields(fields)

	patches, err := patch.Resolve(d.rt, args.All, args.Patches, d.entries.Group(entrypoint.GroupPatch), patch.PatchKind)
	if err != nil {
		return 0, err
	}

	h := hook.New(d.rt, patches, hook.WithTracer(d.tracer))
	h.Install()

	names := make([]string, len(patches))
	for i, p := range patches {
		names[i] = p.Name
	}
	argCatalog := d.entries.Group(entrypoint.GroupArgparse)
	parsers, err := patch.Resolve(d.rt, false, patch.Known(names, argCatalog), argCatalog, patch.ArgparseKind)
	if err != nil {
		return 0, err
	}

	rest, err := argparse.Cascade(parsers, args.Cmd[1:], h)
	if err != nil {
		return 0, err
	}

	command := args.Cmd[0]
	matches := d.entries.Lookup(entrypoint.GroupCommands, command)
	if len(matches) != 1 {
		return 0, &CommandError{Command: command, Matches: len(matches)}
	}

	d.rt.SetArgv(append([]string{command}, rest...))
	logger.WithField("patches", names).Info("hook installed")

	target, err := patch.Load(d.rt, matches[0], MainKind)
	if err != nil {
		return 0, err
	}
	logger.WithField("target", matches[0].Target()).Debug("running command")
	return target.Fn(), nil
}

// report 将错误映射为退出码：用法错误为 2，其余为 1。
func (d *Driver) report(err error) int {
	var usageErr *cli.UsageError
	if errors.As(err, &usageErr) {
		if usageErr.Message != "" {
			fmt.Fprintln(d.stderr, usageErr.Message)
		}
		fmt.Fprintln(d.stderr, cli.HelpMessage(d.prog))
		return 2
	}

	var (
		selErr *patch.SelectionError
		defErr *patch.DefinitionError
		cmdErr *CommandError
	)
	switch {
	case errors.As(err, &selErr), errors.As(err, &defErr), errors.As(err, &cmdErr):
		fmt.Fprintln(d.stderr, err.Error())
	default:
		fmt.Fprintf(d.stderr, "%s: %v\n", d.prog, err)
	}
	d.logger.WithFields(logging.BaseFields("patch")).WithError(err).Debug("run failed")
	return 1
}

// MakeEntryPoint 生成固定补丁与目标命令的入口函数，
// 等价于在新的 Runtime 上执行 Main(patches + ["--", command] + argv)。
func MakeEntryPoint(patches []string, command string, opts Options) func(argv []string) int {
	fixed := append([]string(nil), patches...)
	return func(argv []string) int {
		full := make([]string, 0, len(fixed)+2+len(argv))
		full = append(full, fixed...)
		full = append(full, "--", command)
		full = append(full, argv...)
		return New(opts).Main(full)
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
