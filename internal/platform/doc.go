// Package platform smooths over filesystem differences between Unix and
// Windows for the packager and installer: permission bits and replacing a
// file in place.
package platform
