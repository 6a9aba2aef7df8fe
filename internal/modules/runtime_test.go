package modules

import (
	"errors"
	"testing"
)

func newTestRuntime(t *testing.T) (*Runtime, *Sources) {
	t.Helper()
	src := NewSources()
	return New(WithSources(src)), src
}

func TestImportCachesModule(t *testing.T) {
	rt, src := newTestRuntime(t)
	calls := 0
	src.MustRegister("alpha", func(_ *Runtime, m *Module) error {
		calls++
		m.Set("value", 1)
		return nil
	})

	first, err := rt.Import("alpha")
	if err != nil {
		t.Fatalf("导入失败: %v", err)
	}
	second, err := rt.Import("alpha")
	if err != nil {
		t.Fatalf("第二次导入失败: %v", err)
	}
	if first != second {
		t.Fatalf("应返回缓存中的模块")
	}
	if calls != 1 {
		t.Fatalf("构建函数应只执行一次，实际 %d 次", calls)
	}
	if v, _ := first.Get("value"); v != 1 {
		t.Fatalf("属性值异常: %v", v)
	}
}

func TestImportLoadsParentAndBindsChild(t *testing.T) {
	rt, src := newTestRuntime(t)
	var order []string
	src.MustRegister("pkg", func(_ *Runtime, m *Module) error {
		order = append(order, m.Name)
		return nil
	})
	src.MustRegister("pkg.child", func(_ *Runtime, m *Module) error {
		order = append(order, m.Name)
		return nil
	})

	child, err := rt.Import("pkg.child")
	if err != nil {
		t.Fatalf("导入失败: %v", err)
	}
	if len(order) != 2 || order[0] != "pkg" || order[1] != "pkg.child" {
		t.Fatalf("加载顺序异常: %v", order)
	}
	parent, _ := rt.Cache().Get("pkg")
	if bound, _ := parent.Get("child"); bound != child {
		t.Fatalf("子模块应挂在父包上")
	}
	if child.Package() != "pkg" {
		t.Fatalf("父包名异常: %s", child.Package())
	}
}

func TestImportMissingModule(t *testing.T) {
	rt, src := newTestRuntime(t)
	src.MustRegister("pkg", func(*Runtime, *Module) error { return nil })

	for _, name := range []string{"i_dont_exist", "pkg.nope", "nope.child"} {
		_, err := rt.Import(name)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("%s: expected NotFoundError, got %v", name, err)
		}
	}
}

func TestImportFailureIsNotCached(t *testing.T) {
	rt, src := newTestRuntime(t)
	boom := errors.New("boom")
	fail := true
	src.MustRegister("flaky", func(*Runtime, *Module) error {
		if fail {
			return boom
		}
		return nil
	})

	if _, err := rt.Import("flaky"); !errors.Is(err, boom) {
		t.Fatalf("期望原样返回构建错误，得到 %v", err)
	}
	if rt.Cache().Has("flaky") {
		t.Fatalf("加载失败的模块不应留在模块表中")
	}
	fail = false
	if _, err := rt.Import("flaky"); err != nil {
		t.Fatalf("重试应成功: %v", err)
	}
}

func TestMetaPathTakesPrecedence(t *testing.T) {
	rt, src := newTestRuntime(t)
	src.MustRegister("real", func(_ *Runtime, m *Module) error {
		m.Set("origin", "source")
		return nil
	})
	rt.MetaPath().Append(NewAliasFinder(rt, map[string]string{"compat": "real"}))

	m, err := rt.Import("compat")
	if err != nil {
		t.Fatalf("别名导入失败: %v", err)
	}
	if m.Name != "compat" {
		t.Fatalf("别名模块应保留自己的名称，得到 %s", m.Name)
	}
	if v, _ := m.Get("origin"); v != "source" {
		t.Fatalf("别名模块应暴露目标模块的属性，得到 %v", v)
	}
	if !rt.Cache().Has("real") {
		t.Fatalf("别名目标模块应已加载")
	}
}

func TestProbe(t *testing.T) {
	rt, src := newTestRuntime(t)
	src.MustRegister("pkg", func(*Runtime, *Module) error { return nil })
	src.MustRegister("pkg.sub", func(*Runtime, *Module) error { return nil })
	src.MustRegister("orphan.sub", func(*Runtime, *Module) error { return nil })

	cases := map[string]bool{
		"pkg":          true,
		"pkg.sub":      true,
		"pkg.missing":  false,
		"i_dont_exist": false,
		"orphan.sub":   false,
		"":             false,
	}
	for name, want := range cases {
		if got := rt.Probe(name); got != want {
			t.Fatalf("Probe(%q) = %v, want %v", name, got, want)
		}
	}
	if rt.Cache().Len() != 0 {
		t.Fatalf("探测不应加载模块")
	}
}

func TestMetaPathInsert(t *testing.T) {
	rt, _ := newTestRuntime(t)
	a := NewAliasFinder(rt, nil)
	b := NewAliasFinder(rt, nil)
	c := NewAliasFinder(rt, nil)
	p := rt.MetaPath()
	p.Append(a)
	p.Append(b)
	p.Insert(0, c)

	got := p.Finders()
	if len(got) != 3 || got[0] != c || got[1] != a || got[2] != b {
		t.Fatalf("Finder 顺序异常")
	}
	p.Insert(10, a)
	if p.Len() != 4 {
		t.Fatalf("越界插入应追加到末尾")
	}
}

func TestArgvIsCopied(t *testing.T) {
	rt := New(WithArgv([]string{"cmd", "a"}))
	argv := rt.Argv()
	argv[0] = "mutated"
	if rt.Argv()[0] != "cmd" {
		t.Fatalf("Argv 应返回副本")
	}
	rt.SetArgv([]string{"other"})
	if got := rt.Argv(); len(got) != 1 || got[0] != "other" {
		t.Fatalf("参数向量异常: %v", got)
	}
}

func TestModuleDelete(t *testing.T) {
	m := NewModule("pkg.sub")
	m.Set("a", 1)
	m.Delete("a")
	m.Delete("missing")
	if _, ok := m.Get("a"); ok {
		t.Fatalf("属性应已删除")
	}
	if BaseName(m.Name) != "sub" {
		t.Fatalf("BaseName 错误: %s", BaseName(m.Name))
	}
}
