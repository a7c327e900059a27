// Package server exposes a built registry directory over HTTP, in the
// layout the component installer fetches from: /r/<name>.json for items
// and /registry.json for the index.
package server
