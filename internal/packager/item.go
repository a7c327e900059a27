package packager

import (
	"bytes"
	"encoding/json"
	"path"
	"strings"

	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

// IndexFileName is the name of the registry index written by Build.
const IndexFileName = "registry.json"

// Item is a registry item document, as served at /r/<name>.json.
type Item struct {
	Schema               string     `json:"$schema,omitempty"`
	Name                 string     `json:"name"`
	Type                 string     `json:"type"`
	Title                string     `json:"title,omitempty"`
	Description          string     `json:"description,omitempty"`
	Dependencies         []string   `json:"dependencies,omitempty"`
	RegistryDependencies []string   `json:"registryDependencies,omitempty"`
	Files                []ItemFile `json:"files"`
}

// ItemFile is one file of an Item. Content is omitted in the index.
type ItemFile struct {
	Path    string `json:"path"`
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
}

// Index is the registry.json document.
type Index struct {
	Schema   string `json:"$schema,omitempty"`
	Name     string `json:"name"`
	Homepage string `json:"homepage,omitempty"`
	Items    []Item `json:"items"`
}

// ItemFileName returns the item document path for a component, relative to
// the destination root.
func ItemFileName(name string) string {
	return name + ".json"
}

// newItem builds the item for d. contents holds file content in d.Files
// order; nil produces an index entry.
func newItem(schema string, d manifest.Descriptor, contents []string) Item {
	item := Item{
		Schema:               schema,
		Name:                 d.Name,
		Type:                 d.Kind.RegistryType(),
		Title:                d.Title,
		Description:          d.Description,
		Dependencies:         d.PackageDependencyStrings(),
		RegistryDependencies: d.RegistryDependencyStrings(),
		Files:                make([]ItemFile, len(d.Files)),
	}
	for i, f := range d.Files {
		item.Files[i] = ItemFile{Path: f, Type: fileType(f, d.Kind)}
		if contents != nil {
			item.Files[i].Content = contents[i]
		}
	}
	return item
}

// fileType derives the registry file type from its location. Shared helpers
// under lib/ and hooks/ keep their own type regardless of the owning kind.
func fileType(p string, kind manifest.Kind) string {
	switch dir := strings.Split(path.Clean(p), "/"); {
	case containsSegment(dir, "lib"):
		return "registry:lib"
	case containsSegment(dir, "hooks"):
		return "registry:hook"
	default:
		return kind.RegistryType()
	}
}

func containsSegment(segments []string, want string) bool {
	for _, s := range segments[:len(segments)-1] {
		if s == want {
			return true
		}
	}
	return false
}

// marshal encodes v as indented JSON with a trailing newline. HTML escaping
// is off so component source stays readable.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
