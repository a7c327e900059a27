package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/winkty-official/winkty-ui-sub001/internal/branding"
	"go.yaml.in/yaml/v3"
)

// ParseFile reads a manifest file (YAML or JSON) and returns the validated
// manifest. Read failures and validation failures are distinct: the latter
// unwrap to *ValidationErrors.
func ParseFile(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a manifest document. Schema violations and
// semantic violations (duplicate names, unresolved local dependencies,
// unsafe file paths) are collected together so a single call reports every
// problem in the document.
func Parse(data []byte) (*Manifest, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	raw = normalizeDocument(normalizeYAML(raw))

	result, err := validateValue(raw)
	if err != nil {
		return nil, err
	}

	errs := &ValidationErrors{}
	schemaFailed := make(map[int]bool)
	for _, issue := range result.Issues {
		errs.Add(issue.Field(), issue.Message)
		if i, ok := issue.componentIndex(); ok {
			schemaFailed[i] = true
		}
	}

	doc, _ := raw.(map[string]any)
	items, _ := doc["components"].([]any)

	entries := make([]entry, 0, len(items))
	for i, item := range items {
		d, ok := decodeComponent(i, item, !schemaFailed[i], errs)
		entries = append(entries, entry{index: i, desc: d, skip: !ok || schemaFailed[i]})
	}
	checkEntries(entries, errs)

	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}

	name := stringField(doc, "name")
	if name == "" {
		name = branding.RegistryName()
	}
	components := make([]Descriptor, len(entries))
	for i, e := range entries {
		components[i] = e.desc
	}
	return build(name, stringField(doc, "homepage"), components), nil
}

// decodeComponent converts one normalized component value into a
// Descriptor. It returns false when the value cannot be decoded at all; the
// returned descriptor then carries only the name, if one was present.
// Dependency parse failures are reported only when report is true, so a
// component already flagged by the schema is not reported twice.
func decodeComponent(i int, item any, report bool, errs *ValidationErrors) (Descriptor, bool) {
	obj, ok := item.(map[string]any)
	if !ok {
		return Descriptor{}, false
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return Descriptor{Name: stringField(obj, "name")}, false
	}
	var rc rawComponent
	if err := json.Unmarshal(data, &rc); err != nil {
		return Descriptor{Name: stringField(obj, "name")}, false
	}

	d := Descriptor{
		Name:        rc.Name,
		Title:       rc.Title,
		Description: rc.Description,
		Files:       rc.Files,
	}

	kind, err := ParseKind(rc.Kind)
	if err != nil {
		kind = Kind(rc.Kind) // left invalid for checkDescriptor to report
	}
	d.Kind = kind

	for j, s := range rc.RegistryDependencies {
		dep, err := ParseDependency(s)
		if err != nil {
			if report {
				errs.Add(componentField(i, fmt.Sprintf("registryDependencies[%d]", j)), err.Error())
			}
			continue
		}
		d.RegistryDependencies = append(d.RegistryDependencies, dep)
	}

	for j, s := range rc.PackageDependencies {
		pkg, err := ParsePackageDependency(s)
		if err != nil {
			if report {
				errs.Add(componentField(i, fmt.Sprintf("packageDependencies[%d]", j)), err.Error())
			}
			continue
		}
		d.PackageDependencies = append(d.PackageDependencies, pkg)
	}

	return d, true
}

// Encode renders the manifest back into its YAML document form.
func Encode(m *Manifest) ([]byte, error) {
	doc := rawDocument{
		Name:     m.name,
		Homepage: m.homepage,
	}
	for _, d := range m.components {
		doc.Components = append(doc.Components, rawComponent{
			Name:                 d.Name,
			Kind:                 string(d.Kind),
			Title:                d.Title,
			Description:          d.Description,
			RegistryDependencies: nonEmpty(d.RegistryDependencyStrings()),
			PackageDependencies:  nonEmpty(d.PackageDependencyStrings()),
			Files:                d.Files,
		})
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return data, nil
}

func nonEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
