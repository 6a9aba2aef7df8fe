package entrypoint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// hclManifestFile 对应 HCL 清单顶层结构：
//
//	entry_point "gomonkey" "mod-1" {
//	  target = "patchingmod"
//	}
type hclManifestFile struct {
	EntryPoints []hclEntryPoint `hcl:"entry_point,block"`
}

type hclEntryPoint struct {
	Group  string `hcl:"group,label"`
	Name   string `hcl:"name,label"`
	Target string `hcl:"target"`
}

// yamlManifestFile 对应 YAML 清单顶层结构。
type yamlManifestFile struct {
	EntryPoints []yamlEntryPoint `yaml:"entry_points"`
}

type yamlEntryPoint struct {
	Group  string `yaml:"group"`
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
}

// LoadManifest 读取清单文件并把其中的入口点注册到 reg，返回新增数量。
// 根据扩展名选择格式：.hcl 或 .yaml/.yml。
func LoadManifest(reg *Registry, path string) (int, error) {
	var (
		entries []Entry
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		entries, err = readHCLManifest(path)
	case ".yaml", ".yml":
		entries, err = readYAMLManifest(path)
	default:
		return 0, fmt.Errorf("manifest %s: unsupported format", path)
	}
	if err != nil {
		return 0, err
	}

	if err := checkBatch(reg, entries); err != nil {
		return 0, fmt.Errorf("manifest %s: %w", path, err)
	}
	for i, e := range entries {
		if err := reg.Register(e); err != nil {
			return i, fmt.Errorf("manifest %s: %w", path, err)
		}
	}
	return len(entries), nil
}

// checkBatch 在注册前检查整个清单：清单内部以及与已注册入口点都不能重名，
// 保证清单要么全部注册，要么一个都不注册。
func checkBatch(reg *Registry, entries []Entry) error {
	seen := make(map[[2]string]struct{}, len(entries))
	for _, e := range entries {
		key := [2]string{e.Group, e.Name}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("entry point %q already declared in group %q", e.Name, e.Group)
		}
		seen[key] = struct{}{}
		if len(reg.Lookup(e.Group, e.Name)) > 0 {
			return fmt.Errorf("entry point %q already registered in group %q", e.Name, e.Group)
		}
	}
	return nil
}

func readHCLManifest(path string) ([]Entry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL manifest %s: %w", path, diags)
	}

	var parsed hclManifestFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL manifest %s: %w", path, diags)
	}

	entries := make([]Entry, 0, len(parsed.EntryPoints))
	for _, ep := range parsed.EntryPoints {
		e, err := newManifestEntry(ep.Group, ep.Name, ep.Target)
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func readYAMLManifest(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var parsed yamlManifestFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode YAML manifest %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(parsed.EntryPoints))
	for _, ep := range parsed.EntryPoints {
		e, err := newManifestEntry(ep.Group, ep.Name, ep.Target)
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func newManifestEntry(group, name, target string) (Entry, error) {
	unit, attrs, err := ParseTarget(target)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Group: strings.TrimSpace(group), Name: strings.TrimSpace(name), Unit: unit, Attrs: attrs}, nil
}
