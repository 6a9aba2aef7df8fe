// Package cli 把命令行拆分为补丁选择与目标命令两部分。
//
// 标准 flag 解析器无法表达 "patches -- cmd" 这种以 "--" 分隔、且命令部分完全不解析的结构，
// 因此这里手工处理参数。
package cli

import (
	"fmt"
	"strings"
)

// Arguments 是解析后的命令行。All 与非空 Patches 互斥，Cmd 至少包含命令名。
type Arguments struct {
	All     bool
	Patches []string
	Cmd     []string
}

const helpTemplate = `usage: %s [-h] [--all] [patches [patches ...]] -- cmd [cmd ...]

A tool for applying monkeypatches to executables. Patches are registered by
supplying an entry point in the ` + "`gomonkey`" + ` group. Patches are selected by
listing them on the commandline when running the gomonkey tool. For example,
consider a registered patch pip_faster when using pip. An invocation may look
like ` + "`gomonkey pip_faster -- pip install ...`" + `.

positional arguments:
  patches
  cmd

optional arguments:
  -h, --help  show this help message and exit
  --all       Apply all known patches`

// HelpMessage 返回使用说明文本。
func HelpMessage(prog string) string {
	return fmt.Sprintf(helpTemplate, prog)
}

// UsageError 表示命令行不合法，调用方应输出 Message（若非空）和使用说明后退出。
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	if e.Message == "" {
		return "usage requested"
	}
	return e.Message
}

// Parse 拆分命令行参数。"--" 之后的内容原样作为命令，不做任何检查。
func Parse(argv []string) (Arguments, error) {
	if len(argv) == 0 || (len(argv) == 1 && (argv[0] == "-h" || argv[0] == "--help")) {
		return Arguments{}, &UsageError{}
	}

	idx := indexOf(argv, "--")
	if idx < 0 {
		return Arguments{}, &UsageError{Message: "Must separate command by '--'"}
	}

	patches := append([]string(nil), argv[:idx]...)
	cmd := append([]string(nil), argv[idx+1:]...)

	if indexOf(patches, "--help") >= 0 || indexOf(patches, "-h") >= 0 {
		return Arguments{}, &UsageError{}
	}

	all := false
	if i := indexOf(patches, "--all"); i >= 0 {
		all = true
		patches = append(patches[:i], patches[i+1:]...)
	}

	var unknown []string
	for _, p := range patches {
		if strings.HasPrefix(p, "-") {
			unknown = append(unknown, p)
		}
	}
	if len(unknown) > 0 {
		return Arguments{}, &UsageError{Message: "Unknown options: " + FormatList(unknown)}
	}

	if all && len(patches) > 0 {
		return Arguments{}, &UsageError{Message: "--all and patches specified: " + FormatList(patches)}
	}

	if len(cmd) == 0 {
		return Arguments{}, &UsageError{Message: "Must specify a command after '--'"}
	}

	if len(patches) == 0 {
		patches = nil
	}
	return Arguments{All: all, Patches: patches, Cmd: cmd}, nil
}

// FormatList 以 ["a", "b"] 的形式输出有序列表。
func FormatList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}
