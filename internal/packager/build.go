package packager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/winkty-official/winkty-ui-sub001/internal/branding"
	"github.com/winkty-official/winkty-ui-sub001/internal/manifest"
)

// BuildOptions selects what Build packages.
type BuildOptions struct {
	// SourceRoot is the directory descriptor file paths are relative to.
	// Defaults to Options.SourceDir.
	SourceRoot string
	// Names restricts the build to these components, in this order.
	// Repeated names are built once. Empty means every manifest entry in
	// manifest order.
	Names []string
}

// Build writes one registry item document per component into the
// destination root, then a registry.json index. The index lists, in
// manifest order, every component whose item document is present in the
// destination after the run, so a subset build keeps items from earlier
// builds listed. A missing file fails only its own component. Failing to
// write the index is returned as an error alongside the Summary.
func (p *Packager) Build(ctx context.Context, m *manifest.Manifest, opts BuildOptions) (*Summary, error) {
	root := opts.SourceRoot
	if root == "" {
		root = p.opts.SourceDir
	}
	bp := *p
	bp.opts.SourceDir = root
	if err := bp.prepare(); err != nil {
		return nil, err
	}

	names := uniqueNames(opts.Names)
	if len(names) == 0 {
		names = m.Names()
	}

	p.logger.Debug("building registry items",
		"count", len(names),
		"source", root,
		"dest", p.opts.DestDir)

	results := make([]Result, len(names))
	err := p.forEach(ctx, len(names), func(i int) {
		results[i] = p.buildOne(m, root, names[i])
	})
	if err != nil {
		return nil, err
	}

	s := &Summary{Action: "Built", Results: results}
	p.logSummary(s)

	index := Index{
		Schema:   branding.RegistrySchemaURL(),
		Name:     m.Name(),
		Homepage: m.Homepage(),
		Items:    []Item{},
	}
	built := make(map[string]bool, len(results))
	for _, r := range results {
		if r.OK() {
			built[r.Name] = true
		}
	}
	for _, d := range m.Components() {
		if built[d.Name] || p.itemExists(d.Name) {
			index.Items = append(index.Items, newItem("", d, nil))
		}
	}

	data, err := marshal(index)
	if err != nil {
		return s, fmt.Errorf("encoding registry index: %w", err)
	}
	indexPath := filepath.Join(p.opts.DestDir, IndexFileName)
	if err := writeFile(indexPath, data); err != nil {
		return s, fmt.Errorf("writing registry index: %w", err)
	}
	p.logger.Info("wrote registry index", "path", indexPath, "items", len(index.Items))
	return s, nil
}

// itemExists reports whether an item document for name is already in the
// destination root.
func (p *Packager) itemExists(name string) bool {
	rel, err := componentPath(name, ".json")
	if err != nil {
		return false
	}
	info, err := os.Stat(filepath.Join(p.opts.DestDir, rel))
	return err == nil && info.Mode().IsRegular()
}

// uniqueNames drops repeats, keeping the first occurrence.
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

func (p *Packager) buildOne(m *manifest.Manifest, root, name string) Result {
	r := Result{Name: name}

	d, err := m.Lookup(name)
	if err != nil {
		r.Status = StatusNotFound
		r.Err = err
		p.logResult(r)
		return r
	}

	rel, err := componentPath(name, ".json")
	if err != nil {
		r.Status = StatusInvalid
		r.Err = err
		p.logResult(r)
		return r
	}
	r.Dest = filepath.Join(p.opts.DestDir, rel)

	contents := make([]string, len(d.Files))
	for i, f := range d.Files {
		src := filepath.Join(root, filepath.FromSlash(f))
		data, err := os.ReadFile(src)
		if err != nil {
			r.Source = src
			r.Err = &sourceError{Path: src, Err: err}
			r.Status = classify(r.Err)
			p.logResult(r)
			return r
		}
		contents[i] = string(data)
	}
	r.Source = filepath.Join(root, filepath.FromSlash(d.Files[0]))

	item := newItem(branding.ItemSchemaURL(), d, contents)
	data, err := marshal(item)
	if err != nil {
		r.Status = StatusIOError
		r.Err = fmt.Errorf("encoding item %s: %w", name, err)
		p.logResult(r)
		return r
	}
	if err := writeFile(r.Dest, data); err != nil {
		r.Status = StatusIOError
		r.Err = err
		p.logResult(r)
		return r
	}

	r.Status = StatusCopied
	r.Bytes = int64(len(data))
	p.logResult(r)
	return r
}
