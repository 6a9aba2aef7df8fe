package hook

import (
	"errors"
	"testing"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	s.Push("a")
	s.Push("b")
	if !s.Contains("a") || !s.Contains("b") || s.Len() != 2 {
		t.Fatalf("栈状态异常: %v", s.Names())
	}
	s.Pop("b")
	s.Pop("a")
	if s.Len() != 0 || s.Contains("a") {
		t.Fatalf("栈应为空，得到 %v", s.Names())
	}
}

func expectReentrancyPanic(t *testing.T, fn func()) *ReentrancyError {
	t.Helper()
	var got *ReentrancyError
	func() {
		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok || !errors.As(err, &got) {
				t.Fatalf("期望 ReentrancyError panic，得到 %v", r)
			}
		}()
		fn()
	}()
	return got
}

func TestStackPopMismatchPanics(t *testing.T) {
	s := NewStack()
	s.Push("a")
	s.Push("b")
	err := expectReentrancyPanic(t, func() { s.Pop("a") })
	if err.Pushed != "a" || err.Popped != "b" {
		t.Fatalf("错误内容异常: %+v", err)
	}
}

func TestStackPopEmptyPanics(t *testing.T) {
	s := NewStack()
	expectReentrancyPanic(t, func() { s.Pop("a") })
}

func TestStackNamesIsCopy(t *testing.T) {
	s := NewStack()
	s.Push("a")
	names := s.Names()
	names[0] = "x"
	if !s.Contains("a") {
		t.Fatalf("Names 应返回副本")
	}
}
