package manifest

import (
	"fmt"
	"path"
	"regexp"
	"slices"
	"strings"
)

// namePattern restricts component names to lowercase path-safe segments so
// a name maps directly onto "<name>.<ext>" under a source root.
var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*(/[a-z0-9][a-z0-9-]*)*$`)

// ValidName reports whether name is a well-formed component name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Manifest is the read-only, ordered catalog of component descriptors.
// Construct it once with New, Parse, ParseFile or Default and pass it to
// whatever needs it.
type Manifest struct {
	name       string
	homepage   string
	components []Descriptor
	index      map[string]int
}

// New builds a manifest from already-typed descriptors and validates it.
// Every violation is reported in the returned *ValidationErrors.
func New(name, homepage string, components []Descriptor) (*Manifest, error) {
	entries := make([]entry, len(components))
	for i, d := range components {
		entries[i] = entry{index: i, desc: d}
	}
	errs := &ValidationErrors{}
	checkEntries(entries, errs)
	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}
	return build(name, homepage, components), nil
}

func build(name, homepage string, components []Descriptor) *Manifest {
	m := &Manifest{
		name:       name,
		homepage:   homepage,
		components: make([]Descriptor, len(components)),
		index:      make(map[string]int, len(components)),
	}
	for i, d := range components {
		m.components[i] = d.clone()
		m.index[d.Name] = i
	}
	return m
}

// Name returns the registry name.
func (m *Manifest) Name() string { return m.name }

// Homepage returns the registry homepage URL, if any.
func (m *Manifest) Homepage() string { return m.homepage }

// Len returns the number of components.
func (m *Manifest) Len() int { return len(m.components) }

// Components returns a copy of the descriptors in manifest order.
func (m *Manifest) Components() []Descriptor {
	out := make([]Descriptor, len(m.components))
	for i, d := range m.components {
		out[i] = d.clone()
	}
	return out
}

// Names returns the component names in manifest order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.components))
	for i, d := range m.components {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the descriptor with the given name. The error wraps
// ErrNotFound when the name is absent.
func (m *Manifest) Lookup(name string) (Descriptor, error) {
	i, ok := m.index[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("component %q: %w", name, ErrNotFound)
	}
	return m.components[i].clone(), nil
}

// Has reports whether a component with the given name exists.
func (m *Manifest) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Owners returns the names of every component that lists file, in
// manifest order.
func (m *Manifest) Owners(file string) []string {
	var owners []string
	for _, d := range m.components {
		if d.OwnsFile(file) {
			owners = append(owners, d.Name)
		}
	}
	return owners
}

// entry pairs a descriptor with its position in the source document.
// skip marks entries whose fields already failed schema validation; they
// still count as names for uniqueness and dependency resolution.
type entry struct {
	index int
	desc  Descriptor
	skip  bool
}

// checkEntries runs the load-time semantic checks and appends every
// violation to errs.
func checkEntries(entries []entry, errs *ValidationErrors) {
	firstSeen := make(map[string]int, len(entries))
	for _, e := range entries {
		name := e.desc.Name
		if name == "" {
			continue
		}
		if first, dup := firstSeen[name]; dup {
			errs.Addf(componentField(e.index, "name"), "duplicate name %q (first defined at components[%d])", name, first)
			continue
		}
		firstSeen[name] = e.index
	}

	for _, e := range entries {
		if e.skip {
			continue
		}
		checkDescriptor(e, firstSeen, errs)
	}
}

func checkDescriptor(e entry, names map[string]int, errs *ValidationErrors) {
	d := e.desc
	switch {
	case d.Name == "":
		errs.Add(componentField(e.index, "name"), "name is required")
	case !namePattern.MatchString(d.Name):
		errs.Addf(componentField(e.index, "name"), "invalid name %q: must match %s", d.Name, namePattern.String())
	}

	if !slices.Contains(ValidKinds, d.Kind) {
		errs.Addf(componentField(e.index, "kind"), "invalid kind %q: must be one of ui, block", d.Kind)
	}

	if len(d.Files) == 0 {
		errs.Add(componentField(e.index, "files"), "at least one file is required")
	}
	seenFiles := make(map[string]bool, len(d.Files))
	for j, f := range d.Files {
		field := componentField(e.index, fmt.Sprintf("files[%d]", j))
		if msg := checkRelativePath(f); msg != "" {
			errs.Add(field, msg)
			continue
		}
		if seenFiles[f] {
			errs.Addf(field, "duplicate file %q", f)
			continue
		}
		seenFiles[f] = true
	}

	seenDeps := make(map[string]bool, len(d.RegistryDependencies))
	for j, dep := range d.RegistryDependencies {
		field := componentField(e.index, fmt.Sprintf("registryDependencies[%d]", j))
		if dep == nil {
			errs.Add(field, "empty registry dependency")
			continue
		}
		key := dep.String()
		if seenDeps[key] {
			errs.Addf(field, "duplicate registry dependency %q", key)
			continue
		}
		seenDeps[key] = true

		local, ok := dep.(LocalDependency)
		if !ok {
			continue
		}
		if local.Name == d.Name {
			errs.Add(field, "component cannot depend on itself")
			continue
		}
		if _, found := names[local.Name]; !found {
			errs.Addf(field, "unknown component %q", local.Name)
		}
	}

	for j, p := range d.PackageDependencies {
		if p.Name == "" {
			errs.Add(componentField(e.index, fmt.Sprintf("packageDependencies[%d]", j)), "empty package dependency")
		}
	}
}

// checkRelativePath returns a message when p is not a clean relative path
// that stays inside its root, or "" when it is acceptable.
func checkRelativePath(p string) string {
	if strings.TrimSpace(p) == "" {
		return "file path is empty"
	}
	if strings.Contains(p, `\`) {
		return fmt.Sprintf("file path %q must use forward slashes", p)
	}
	if path.IsAbs(p) {
		return fmt.Sprintf("file path %q must be relative", p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return fmt.Sprintf("file path %q must not leave the source root", p)
		}
	}
	return ""
}
