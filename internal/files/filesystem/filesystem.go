package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// DirEntry is an alias for fs.DirEntry from the standard library.
type DirEntry = fs.DirEntry

// Provider abstracts the filesystem operations the pipeline needs: listing
// immediate directory entries, reading descriptor files, and writing output.
// The metadata tree is shallow by construction (object dirs with one nested
// fields/ dir), so no recursive walk is exposed.
type Provider interface {
	// ReadDir returns the entries of the directory at path, sorted by name.
	ReadDir(path string) ([]DirEntry, error)

	// ReadFile reads a specific file at the given path.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// MkdirAll creates the directory at path along with any missing parents.
	MkdirAll(path string) error

	// WriteFile writes data to the file at path, creating it if necessary.
	WriteFile(path string, data []byte) error
}
