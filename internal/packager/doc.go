// Package packager materializes component sources into a distributable
// registry directory.
//
// Copy is the flat packaging run: each component name maps to
// <source>/<name><ext> and is copied byte-for-byte to <dest>/<name><ext>.
// Build is descriptor-driven: each manifest entry becomes a registry item
// JSON file embedding the content of all of its files, plus a registry.json
// index. In both, a missing or unreadable file fails only its own item; the
// run aborts only when the destination root cannot be prepared.
package packager
