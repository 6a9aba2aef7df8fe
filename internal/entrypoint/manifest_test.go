package entrypoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadHCLManifest(t *testing.T) {
	path := writeManifest(t, "gomonkey.hcl", `
entry_point "gomonkey" "mod-1" {
  target = "patchingmod"
}

entry_point "commands" "targetmod" {
  target = "targetmod:main"
}
`)
	reg := NewRegistry()
	n, err := LoadManifest(reg, path)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	patches := reg.Group(GroupPatch)
	require.Len(t, patches, 1)
	require.Equal(t, "mod-1", patches[0].Name)
	require.Equal(t, "patchingmod", patches[0].Unit)
	require.Empty(t, patches[0].Attrs)

	cmds := reg.Lookup(GroupCommands, "targetmod")
	require.Len(t, cmds, 1)
	require.Equal(t, []string{"main"}, cmds[0].Attrs)
}

func TestLoadYAMLManifest(t *testing.T) {
	path := writeManifest(t, "gomonkey.yaml", `
entry_points:
  - group: gomonkey.argparse
    name: patchingmod
    target: patchingmod:gomonkey_argparse
`)
	reg := NewRegistry()
	n, err := LoadManifest(reg, path)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []string{"patchingmod"}, reg.Names(GroupArgparse))
}

func TestLoadManifestErrors(t *testing.T) {
	reg := NewRegistry()

	_, err := LoadManifest(reg, writeManifest(t, "gomonkey.json", `{}`))
	require.Error(t, err)

	_, err = LoadManifest(reg, writeManifest(t, "bad.hcl", `entry_point "gomonkey" {`))
	require.Error(t, err)

	_, err = LoadManifest(reg, writeManifest(t, "bad.yaml", "entry_points:\n  - group: gomonkey\n    name: x\n    target: ''\n"))
	require.Error(t, err)

	_, err = LoadManifest(reg, filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestLoadManifestDuplicate(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(MustParse(GroupPatch, "mod-1 = other"))
	path := writeManifest(t, "dup.hcl", `
entry_point "gomonkey" "mod-1" {
  target = "patchingmod"
}
`)
	n, err := LoadManifest(reg, path)
	require.Error(t, err)
	require.Equal(t, 0, n)
}

func TestLoadManifestIsAllOrNothing(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(MustParse(GroupPatch, "taken = other"))
	path := writeManifest(t, "partial.yaml", `
entry_points:
  - group: gomonkey
    name: fresh
    target: patchingmod
  - group: commands
    name: fresh-cmd
    target: targetmod:main
  - group: gomonkey
    name: taken
    target: patchingmod
`)
	n, err := LoadManifest(reg, path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "taken")
	require.Equal(t, 0, n)
	require.Equal(t, []string{"taken"}, reg.Names(GroupPatch))
	require.Empty(t, reg.Lookup(GroupCommands, "fresh-cmd"))
}

func TestLoadManifestRejectsDuplicateWithinFile(t *testing.T) {
	reg := NewRegistry()
	path := writeManifest(t, "twice.hcl", `
entry_point "gomonkey" "mod-1" {
  target = "patchingmod"
}

entry_point "gomonkey" "mod-1" {
  target = "other"
}
`)
	n, err := LoadManifest(reg, path)
	require.Error(t, err)
	require.Equal(t, 0, n)
	require.Empty(t, reg.Group(GroupPatch))
}
