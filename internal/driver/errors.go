package driver

import "fmt"

// CommandError 表示目标命令无法在 commands 分组中唯一定位。
type CommandError struct {
	Command string
	Matches int
}

func (e *CommandError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("Could not find command %q", e.Command)
	}
	return fmt.Sprintf("Command %q is registered %d times", e.Command, e.Matches)
}
