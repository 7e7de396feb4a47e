package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryDirEntry implements fs.DirEntry backed by a memoryFileInfo
type memoryDirEntry struct {
	info *memoryFileInfo
}

func (e *memoryDirEntry) Name() string               { return e.info.name }
func (e *memoryDirEntry) IsDir() bool                { return e.info.isDir }
func (e *memoryDirEntry) Type() fs.FileMode          { return e.info.mode.Type() }
func (e *memoryDirEntry) Info() (fs.FileInfo, error) { return e.info, nil }

// memoryNode is a single file or directory entry in the virtual tree
type memoryNode struct {
	absPath string
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements Provider for in-memory testing.
// Paths use forward slashes regardless of host platform.
type MemoryFileSystem struct {
	nodes map[string]*memoryNode // absolute path -> node
	root  string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		nodes: make(map[string]*memoryNode),
		root:  root,
	}
	mfs.addDir(root)
	return mfs
}

// AddFile adds a file to the in-memory filesystem, creating parent
// directories as needed. Relative paths are resolved against the root.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.abs(filePath)
	data := []byte(content)

	mfs.nodes[absPath] = &memoryNode{
		absPath: absPath,
		content: data,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(data)),
			mode:    0644,
			modTime: time.Now(),
			isDir:   false,
		},
	}
	mfs.ensureParents(absPath)
}

// AddDir adds an (empty) directory entry.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.abs(dirPath)
	mfs.addDir(absPath)
	mfs.ensureParents(absPath)
}

func (mfs *MemoryFileSystem) addDir(absPath string) {
	if node, exists := mfs.nodes[absPath]; exists && node.info.isDir {
		return
	}
	mfs.nodes[absPath] = &memoryNode{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

func (mfs *MemoryFileSystem) ensureParents(absPath string) {
	dir := path.Dir(absPath)
	for dir != "/" && dir != "." && dir != mfs.root {
		mfs.addDir(dir)
		dir = path.Dir(dir)
	}
}

func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if !strings.HasPrefix(p, "/") {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ReadDir returns the immediate children of the directory, sorted by name.
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]DirEntry, error) {
	absPath := mfs.abs(dirPath)

	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %s: no such directory", dirPath)
	}
	if !node.info.isDir {
		return nil, fmt.Errorf("failed to read directory: %s: not a directory", dirPath)
	}

	var entries []DirEntry
	prefix := absPath + "/"
	if absPath == "/" {
		prefix = "/"
	}
	for p, n := range mfs.nodes {
		if !strings.HasPrefix(p, prefix) || p == absPath {
			continue
		}
		// Immediate children only
		if strings.Contains(p[len(prefix):], "/") {
			continue
		}
		entries = append(entries, &memoryDirEntry{info: n.info})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// ReadFile implements Provider.ReadFile.
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.abs(filePath)

	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if node.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return node.content, nil
}

// Stat implements Provider.Stat.
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.abs(statPath)

	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}
	return node.info, nil
}

// MkdirAll implements Provider.MkdirAll.
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	absPath := mfs.abs(dirPath)
	mfs.addDir(absPath)
	mfs.ensureParents(absPath)
	return nil
}

// WriteFile implements Provider.WriteFile.
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	mfs.AddFile(filePath, string(data))
	return nil
}

var _ Provider = (*MemoryFileSystem)(nil)
