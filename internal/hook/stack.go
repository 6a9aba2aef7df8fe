package hook

import "fmt"

// ReentrancyError 表示处理栈的 LIFO 配对被破坏，只可能来自 hook 自身的缺陷，因此以 panic 抛出。
type ReentrancyError struct {
	Pushed string
	Popped string
}

func (e *ReentrancyError) Error() string {
	return fmt.Sprintf("handling stack corrupted: popped %q while finishing %q", e.Popped, e.Pushed)
}

// Stack 记录 hook 正在处理的模块名。
type Stack struct {
	names []string
}

// NewStack 返回空的处理栈。
func NewStack() *Stack {
	return &Stack{}
}

// Push 标记 name 正在处理中。
func (s *Stack) Push(name string) {
	s.names = append(s.names, name)
}

// Pop 弹出栈顶，栈顶必须是 name。
func (s *Stack) Pop(name string) {
	if len(s.names) == 0 {
		panic(&ReentrancyError{Pushed: name})
	}
	top := s.names[len(s.names)-1]
	s.names = s.names[:len(s.names)-1]
	if top != name {
		panic(&ReentrancyError{Pushed: name, Popped: top})
	}
}

// Contains 判断 name 是否正在处理中。
func (s *Stack) Contains(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Len 返回处理中的模块数量。
func (s *Stack) Len() int {
	return len(s.names)
}

// Names 返回栈内容的副本，栈底在前。
func (s *Stack) Names() []string {
	return append([]string(nil), s.names...)
}
