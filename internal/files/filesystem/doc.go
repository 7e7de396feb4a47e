// Package filesystem abstracts file access behind a small Provider interface
// with OS-backed and in-memory implementations. The in-memory implementation
// lets the loader and generator be tested against synthetic metadata trees
// without touching the disk.
package filesystem
