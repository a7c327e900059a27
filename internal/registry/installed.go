package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/winkty-official/winkty-ui-sub001/internal/branding"
)

const installedFileName = "installed.json"

// InstalledIndex records which components a project has installed and the
// files each one wrote.
type InstalledIndex struct {
	Components map[string]InstalledComponent `json:"components"`
}

// InstalledComponent is one entry of the InstalledIndex.
type InstalledComponent struct {
	Files       []string  `json:"files"`
	InstalledAt time.Time `json:"installed_at"`
}

// InstalledPath returns the install record path for a project:
// <project>/.winkty/installed.json.
func InstalledPath(projectRoot string) string {
	return filepath.Join(projectRoot, "."+branding.CLIName(), installedFileName)
}

// LoadInstalled reads the install record of a project. A project without a
// record has nothing installed.
func LoadInstalled(projectRoot string) (*InstalledIndex, error) {
	path := InstalledPath(projectRoot)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &InstalledIndex{Components: map[string]InstalledComponent{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading install record: %w", err)
	}

	var idx InstalledIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing install record %s: %w", path, err)
	}
	if idx.Components == nil {
		idx.Components = map[string]InstalledComponent{}
	}
	return &idx, nil
}

// Has reports whether name is recorded as installed.
func (x *InstalledIndex) Has(name string) bool {
	if x == nil {
		return false
	}
	_, ok := x.Components[name]
	return ok
}

// Names returns the installed component names, sorted.
func (x *InstalledIndex) Names() []string {
	names := make([]string, 0, len(x.Components))
	for name := range x.Components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Save writes the record under projectRoot.
func (x *InstalledIndex) Save(projectRoot string) error {
	path := InstalledPath(projectRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating install record directory: %w", err)
	}
	data, err := json.MarshalIndent(x, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing install record: %w", err)
	}
	return nil
}
