package manifest

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Kind distinguishes UI primitives from composite blocks.
type Kind string

// Kind values. The installer-facing spelling is "registry:<kind>".
const (
	KindUI    Kind = "ui"
	KindBlock Kind = "block"
)

// ValidKinds contains all valid kind values.
var ValidKinds = []Kind{KindUI, KindBlock}

const registryTypePrefix = "registry:"

// ParseKind converts a kind string to a Kind. Both the short form ("ui")
// and the installer-facing form ("registry:ui") are accepted.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.TrimPrefix(s, registryTypePrefix))
	if !slices.Contains(ValidKinds, k) {
		return "", fmt.Errorf("invalid kind %q: must be one of ui, block", s)
	}
	return k, nil
}

// RegistryType returns the installer-facing type, e.g. "registry:ui".
func (k Kind) RegistryType() string {
	return registryTypePrefix + string(k)
}

// Dependency is a registry dependency of a component. It is either a
// LocalDependency naming another component in the same manifest or a
// RemoteDependency pointing at an item in an external registry.
type Dependency interface {
	String() string
	isDependency()
}

// LocalDependency references another component of the same manifest.
type LocalDependency struct {
	Name string
}

func (d LocalDependency) String() string { return d.Name }
func (LocalDependency) isDependency()    {}

// RemoteDependency references an item of an external registry by URL.
// The URL is opaque: it is never fetched or resolved by this module.
type RemoteDependency struct {
	URL string
}

func (d RemoteDependency) String() string { return d.URL }
func (RemoteDependency) isDependency()    {}

// ParseDependency decides the dependency variant once, at load time.
// Strings with an http:// or https:// scheme are remote; everything else
// is a local component name.
func ParseDependency(s string) (Dependency, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty registry dependency")
	}

	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return LocalDependency{Name: s}, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid registry dependency URL %q: %w", s, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid registry dependency URL %q: missing host", s)
	}
	return RemoteDependency{URL: s}, nil
}

// PackageDependency is an external package required at runtime by a
// component's code, e.g. "framer-motion" or "@radix-ui/react-popover@^1.1.0".
type PackageDependency struct {
	Name       string
	Constraint string // optional version or range after the last '@'
}

// ParsePackageDependency splits an npm-style package spec into name and
// optional constraint. Scoped names ("@scope/pkg") are supported.
func ParsePackageDependency(s string) (PackageDependency, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PackageDependency{}, fmt.Errorf("empty package dependency")
	}

	// Skip the scope marker so "@scope/pkg" is not split at index 0.
	at := strings.LastIndex(s, "@")
	if at <= 0 {
		return PackageDependency{Name: s}, nil
	}

	name, constraint := s[:at], s[at+1:]
	if name == "" || name == "@" {
		return PackageDependency{}, fmt.Errorf("invalid package dependency %q: missing name", s)
	}
	if constraint == "" {
		return PackageDependency{}, fmt.Errorf("invalid package dependency %q: empty version after '@'", s)
	}
	if strings.HasPrefix(name, "@") && !strings.Contains(name, "/") {
		// "@scope@1.0" has no package segment.
		return PackageDependency{}, fmt.Errorf("invalid package dependency %q: scoped name needs a package", s)
	}
	return PackageDependency{Name: name, Constraint: constraint}, nil
}

// String returns the package spec in its original form.
func (p PackageDependency) String() string {
	if p.Constraint == "" {
		return p.Name
	}
	return p.Name + "@" + p.Constraint
}

// Descriptor describes one publishable component.
type Descriptor struct {
	Name                 string
	Kind                 Kind
	Title                string
	Description          string
	RegistryDependencies []Dependency
	PackageDependencies  []PackageDependency

	// Files are source paths relative to the source root. A file may be
	// listed by several components.
	Files []string
}

// LocalDependencies returns the names of local registry dependencies in order.
func (d Descriptor) LocalDependencies() []string {
	var names []string
	for _, dep := range d.RegistryDependencies {
		if local, ok := dep.(LocalDependency); ok {
			names = append(names, local.Name)
		}
	}
	return names
}

// RemoteDependencies returns the URLs of remote registry dependencies in order.
func (d Descriptor) RemoteDependencies() []string {
	var urls []string
	for _, dep := range d.RegistryDependencies {
		if remote, ok := dep.(RemoteDependency); ok {
			urls = append(urls, remote.URL)
		}
	}
	return urls
}

// RegistryDependencyStrings returns every registry dependency in its wire form.
func (d Descriptor) RegistryDependencyStrings() []string {
	out := make([]string, 0, len(d.RegistryDependencies))
	for _, dep := range d.RegistryDependencies {
		out = append(out, dep.String())
	}
	return out
}

// PackageDependencyStrings returns every package dependency in its wire form.
func (d Descriptor) PackageDependencyStrings() []string {
	out := make([]string, 0, len(d.PackageDependencies))
	for _, dep := range d.PackageDependencies {
		out = append(out, dep.String())
	}
	return out
}

// OwnsFile reports whether path is listed in the descriptor's files.
func (d Descriptor) OwnsFile(path string) bool {
	return slices.Contains(d.Files, path)
}

func (d Descriptor) clone() Descriptor {
	d.RegistryDependencies = slices.Clone(d.RegistryDependencies)
	d.PackageDependencies = slices.Clone(d.PackageDependencies)
	d.Files = slices.Clone(d.Files)
	return d
}

// rawDocument is the on-disk shape of a manifest file.
type rawDocument struct {
	Schema     string         `yaml:"$schema,omitempty" json:"$schema,omitempty"`
	Name       string         `yaml:"name,omitempty" json:"name,omitempty"`
	Homepage   string         `yaml:"homepage,omitempty" json:"homepage,omitempty"`
	Components []rawComponent `yaml:"components" json:"components"`
}

// rawComponent is the on-disk shape of a component descriptor.
type rawComponent struct {
	Name                 string   `yaml:"name" json:"name"`
	Kind                 string   `yaml:"kind" json:"kind"`
	Title                string   `yaml:"title,omitempty" json:"title,omitempty"`
	Description          string   `yaml:"description,omitempty" json:"description,omitempty"`
	RegistryDependencies []string `yaml:"registryDependencies,omitempty" json:"registryDependencies,omitempty"`
	PackageDependencies  []string `yaml:"packageDependencies,omitempty" json:"packageDependencies,omitempty"`
	Files                []string `yaml:"files" json:"files"`
}
