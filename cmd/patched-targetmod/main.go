// Command patched-targetmod 以固定的 patchingmod 补丁运行 targetmod。
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/any-hub/gomonkey/internal/config"
	"github.com/any-hub/gomonkey/internal/driver"
	"github.com/any-hub/gomonkey/internal/logging"
	_ "github.com/any-hub/gomonkey/internal/sample"
)

const prog = "patched-targetmod"

var (
	stdOut io.Writer = os.Stdout
	stdErr io.Writer = os.Stderr
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run 与 gomonkey 共用配置与日志初始化，补丁与目标命令固定。
func run(argv []string) int {
	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		fmt.Fprintf(stdErr, "加载配置失败: %v\n", err)
		return 1
	}

	logger, err := logging.InitLogger(cfg.Global)
	if err != nil {
		fmt.Fprintf(stdErr, "初始化日志失败: %v\n", err)
		return 1
	}

	entry := driver.MakeEntryPoint([]string{"patchingmod"}, "targetmod", driver.Options{
		Prog:   prog,
		Stdout: stdOut,
		Stderr: stdErr,
		Logger: logger,
		Tracer: logging.NewTracer(cfg.Global.Debug, stdErr),
	})
	return entry(argv)
}
