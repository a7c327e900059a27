// Package manifest defines the component registry manifest: the ordered,
// read-only catalog of component descriptors (name, kind, registry and
// package dependencies, source files) consumed by the packager and by
// installer CLIs. Manifests are validated when they are constructed, with
// every violation reported at once, and never change afterwards.
package manifest
