// Package config loads project settings for the registry toolchain from
// winkty.yaml (or an explicit --config file) and WINKTY_* environment
// variables: the manifest location, the fixed source/destination pair of
// the copy run, the build output directory, the serve address and logging.
package config
