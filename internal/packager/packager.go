package packager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/winkty-official/winkty-ui-sub001/internal/logging"
)

// DefaultExt is appended to component names when Options.Ext is empty.
const DefaultExt = ".tsx"

// Options configures a Packager.
type Options struct {
	SourceDir string
	DestDir   string
	Ext       string
	// Concurrency bounds the number of items processed at once. Values
	// below 2 process items one at a time.
	Concurrency int
}

// Packager copies or builds components from a source tree into a
// destination registry directory.
type Packager struct {
	opts   Options
	logger *slog.Logger
}

// New returns a Packager. A nil logger discards all output.
func New(opts Options, logger *slog.Logger) *Packager {
	if opts.Ext == "" {
		opts.Ext = DefaultExt
	} else if !strings.HasPrefix(opts.Ext, ".") {
		opts.Ext = "." + opts.Ext
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Packager{opts: opts, logger: logger}
}

// Options returns the effective options.
func (p *Packager) Options() Options { return p.opts }

// Copy copies <source>/<name><ext> to <dest>/<name><ext> for each name, in
// order. Names may contain "/" to address nested files.
//
// Missing or unreadable sources are recorded in the Summary and do not stop
// the run. The returned error is non-nil only when the destination root
// cannot be prepared (a *SetupError, nothing is written) or ctx is
// cancelled.
func (p *Packager) Copy(ctx context.Context, names []string) (*Summary, error) {
	if err := p.prepare(); err != nil {
		return nil, err
	}

	p.logger.Debug("copying components",
		"count", len(names),
		"source", p.opts.SourceDir,
		"dest", p.opts.DestDir,
		"concurrency", p.opts.Concurrency)

	results := make([]Result, len(names))
	err := p.forEach(ctx, len(names), func(i int) {
		results[i] = p.copyOne(names[i])
	})
	if err != nil {
		return nil, err
	}

	s := &Summary{Action: "Copied", Results: results}
	p.logSummary(s)
	return s, nil
}

func (p *Packager) copyOne(name string) Result {
	r := Result{Name: name}

	rel, err := componentPath(name, p.opts.Ext)
	if err != nil {
		r.Status = StatusInvalid
		r.Err = err
		p.logResult(r)
		return r
	}

	r.Source = filepath.Join(p.opts.SourceDir, rel)
	r.Dest = filepath.Join(p.opts.DestDir, rel)

	n, err := copyFile(r.Source, r.Dest)
	r.Bytes = n
	r.Status = classify(err)
	r.Err = err
	p.logResult(r)
	return r
}

// prepare creates the destination root. Failure here is fatal.
func (p *Packager) prepare() error {
	if p.opts.SourceDir == "" {
		return &SetupError{Op: "resolve source", Err: errors.New("source directory is not set")}
	}
	if p.opts.DestDir == "" {
		return &SetupError{Op: "resolve destination", Err: errors.New("destination directory is not set")}
	}
	if err := os.MkdirAll(p.opts.DestDir, 0755); err != nil {
		return &SetupError{Op: "create destination", Path: p.opts.DestDir, Err: err}
	}
	return nil
}

// forEach runs fn for indexes [0, n). Results are stored by index by the
// caller, so output order never depends on completion order.
func (p *Packager) forEach(ctx context.Context, n int, fn func(i int)) error {
	if p.opts.Concurrency < 2 {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("packaging interrupted: %w", err)
			}
			fn(i)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)
	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("packaging interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("packaging interrupted: %w", err)
	}
	return nil
}

// componentPath maps a component name onto a relative, OS-specific path.
func componentPath(name, ext string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("component name is empty")
	}
	if strings.Contains(name, `\`) {
		return "", fmt.Errorf("component name %q must use forward slashes", name)
	}
	rel := filepath.FromSlash(name + ext)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("component name %q resolves outside the source directory", name)
	}
	return rel, nil
}

func (p *Packager) logResult(r Result) {
	switch r.Status {
	case StatusCopied:
		p.logger.Info("packaged component", "component", r.Name, "dest", r.Dest, "bytes", r.Bytes)
	case StatusNotFound:
		p.logger.Warn("component source not found", "component", r.Name, "path", r.Source)
	case StatusInvalid:
		p.logger.Warn("invalid component name", "component", r.Name, "error", r.Err)
	default:
		p.logger.Error("packaging component failed", "component", r.Name, "error", r.Err)
	}
}

func (p *Packager) logSummary(s *Summary) {
	p.logger.Info("packaging finished",
		"succeeded", s.Succeeded(),
		"total", len(s.Results),
		"not_found", s.NotFound(),
		"failed", s.IOErrors()+s.Invalid())
}
