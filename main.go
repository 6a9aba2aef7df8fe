package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/any-hub/gomonkey/internal/config"
	"github.com/any-hub/gomonkey/internal/driver"
	"github.com/any-hub/gomonkey/internal/entrypoint"
	"github.com/any-hub/gomonkey/internal/logging"
)

var (
	stdOut io.Writer = os.Stdout
	stdErr io.Writer = os.Stderr
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run 加载配置与日志后交给 driver 执行，并返回退出码，方便测试。
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

	entries := entrypoint.Default()
	if err := loadManifests(entries, cfg.Manifests, logger); err != nil {
		fmt.Fprintf(stdErr, "加载入口点清单失败: %v\n", err)
		return 1
	}

	// 启动遵循“配置 → 日志 → 入口点清单 → driver”顺序，
	// 清单中的入口点与 init() 注册的入口点共享同一个注册表。
	d := driver.New(driver.Options{
		Prog:    driver.DefaultProg,
		Entries: entries,
		Stdout:  stdOut,
		Stderr:  stdErr,
		Logger:  logger,
		Tracer:  logging.NewTracer(cfg.Global.Debug, stdErr),
	})
	return d.Main(argv)
}

func loadManifests(reg *entrypoint.Registry, paths []string, logger *logrus.Logger) error {
	for _, path := range paths {
		n, err := entrypoint.LoadManifest(reg, path)
		if err != nil {
			return err
		}
		fields := logging.BaseFields("load_manifest")
		fields["path"] = path
		fields["entries"] = n
		logger.WithFields(fields).Debug("入口点清单已加载")
	}
	return nil
}
