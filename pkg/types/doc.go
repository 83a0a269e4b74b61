// Package types defines the core data model shared by every podbundle
// package: aggregate targets, pod targets, file accessors, build
// settings, and the filesystem abstraction used by the installer.
//
// All entities here are constructed fresh per installation pass from
// resolved target-graph state and discarded afterwards; nothing in this
// package persists across passes.
package types
