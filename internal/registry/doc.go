// Package registry resolves component dependencies against a manifest,
// plans installations, and copies component files into a project.
//
// Local registry dependencies are resolved recursively into a tree
// (dependencies first when flattened); remote dependencies are collected
// as URLs for the consumer to fetch. Installed components are tracked in a
// per-project record so removal can keep files shared with other
// components.
package registry
