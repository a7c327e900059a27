package manifest

import (
	_ "embed"
	"sync"
)

// catalogYAML is the component catalog shipped with the binary.
//
//go:embed registry-components.yaml
var catalogYAML []byte

var (
	defaultOnce     sync.Once
	defaultManifest *Manifest
	defaultErr      error
)

// Default returns the embedded component catalog. It is parsed and
// validated on first use; the returned manifest is shared and read-only.
func Default() (*Manifest, error) {
	defaultOnce.Do(func() {
		defaultManifest, defaultErr = Parse(catalogYAML)
	})
	return defaultManifest, defaultErr
}
