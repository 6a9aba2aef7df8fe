package logging

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/any-hub/gomonkey/internal/version"
)

// runID 在进程内唯一，用于串联同一次运行的所有日志。
var runID = uuid.NewString()

// RunID 返回当前进程的运行标识。
func RunID() string {
	return runID
}

// BaseFields 构建 action + run_id + version 等基础字段，便于不同入口复用。
func BaseFields(action string) logrus.Fields {
	return logrus.Fields{
		"action":  action,
		"run_id":  runID,
		"version": version.Full(),
	}
}

// PatchFields 提供补丁选择相关字段，供解析与安装日志复用。
func PatchFields(all bool, requested []string, command string) logrus.Fields {
	return logrus.Fields{
		"all":       all,
		"requested": requested,
		"command":   command,
	}
}
