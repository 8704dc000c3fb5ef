package devtools

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios/*.yaml
var builtinScenarios embed.FS

// Manager loads scenarios from a directory of YAML files.
type Manager struct {
	fsys fs.FS
}

// NewManager serves the scenarios built into the binary.
func NewManager() *Manager {
	sub, err := fs.Sub(builtinScenarios, "scenarios")
	if err != nil {
		panic(err)
	}
	return &Manager{fsys: sub}
}

func NewManagerFS(fsys fs.FS) *Manager {
	return &Manager{fsys: fsys}
}

// List returns scenario names in sorted order.
func (m *Manager) List() ([]string, error) {
	entries, err := fs.ReadDir(m.fsys, ".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

func (m *Manager) Scenario(name string) (Scenario, error) {
	var sc Scenario
	b, err := fs.ReadFile(m.fsys, name+".yaml")
	if err != nil {
		return sc, fmt.Errorf("load scenario %s: %w", name, err)
	}
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return sc, fmt.Errorf("parse scenario %s: %w", name, err)
	}
	if sc.Name == "" {
		sc.Name = name
	}
	if err := sc.Validate(); err != nil {
		return sc, err
	}
	return sc, nil
}
