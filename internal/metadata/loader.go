package metadata

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sftools/sferd/internal/files/filesystem"
	"github.com/sftools/sferd/pkg/sferd"
)

// Loader discovers objects under a metadata root and parses their
// descriptors into the normalized entity model.
type Loader struct {
	fs  filesystem.Provider
	log sferd.Logger
}

// NewLoader creates a loader backed by the OS filesystem.
// Panics if log is nil.
func NewLoader(log sferd.Logger) *Loader {
	return NewLoaderWithFS(filesystem.NewOSFileSystem(), log)
}

// NewLoaderWithFS creates a loader with a custom filesystem provider.
// This is primarily useful for testing with in-memory trees.
// Panics if fs or log is nil.
func NewLoaderWithFS(fs filesystem.Provider, log sferd.Logger) *Loader {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if log == nil {
		panic("log cannot be nil")
	}
	return &Loader{fs: fs, log: log}
}

// Load enumerates the immediate subdirectories of rootPath and parses each
// recognized object. filter, when non-empty, restricts the load to the named
// objects.
//
// Error policy:
//   - rootPath missing or not a directory: fatal, wraps sferd.ErrObjectsPathNotFound
//   - object directory without a matching descriptor: silently skipped
//   - malformed descriptor or field missing required elements: unit skipped,
//     warning logged and recorded in the result
//
// The returned entity map is keyed by object name; Order preserves discovery
// order (directory entries sorted by name) for reproducible downstream output.
func (l *Loader) Load(rootPath string, filter []string) (*sferd.LoadResult, error) {
	info, err := l.fs.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("objects path %s: %w", rootPath, sferd.ErrObjectsPathNotFound)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("objects path %s is not a directory: %w", rootPath, sferd.ErrObjectsPathNotFound)
	}

	var filterSet map[string]bool
	if len(filter) > 0 {
		filterSet = make(map[string]bool, len(filter))
		for _, name := range filter {
			filterSet[name] = true
		}
	}

	entries, err := l.fs.ReadDir(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate objects path: %w", err)
	}

	result := &sferd.LoadResult{
		Entities: make(map[string]*sferd.Entity),
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filterSet != nil && !filterSet[name] {
			continue
		}

		entity, ok := l.loadObject(rootPath, name, result)
		if !ok {
			continue
		}

		if _, exists := result.Entities[name]; exists {
			// Last writer wins, but the collision is surfaced instead of
			// being silently swallowed.
			result.Warnings = append(result.Warnings, sferd.LoadWarning{
				Path:   filepath.Join(rootPath, name),
				Object: name,
				Reason: sferd.ReasonDuplicateEntity,
				Detail: fmt.Sprintf("object %s loaded more than once; keeping the last occurrence", name),
			})
			l.log.Error("Duplicate object name %s; keeping the last occurrence", name)
		} else {
			result.Order = append(result.Order, name)
		}
		result.Entities[name] = entity

		l.log.Verbose("Loaded object: %s (%s), %d fields", name, entity.Label, len(entity.Fields))
	}

	l.log.Info("Loaded %d objects", len(result.Entities))
	return result, nil
}

// loadObject parses one object directory. Returns ok=false when the directory
// is not a recognized object or its descriptor is malformed.
func (l *Loader) loadObject(rootPath, name string, result *sferd.LoadResult) (*sferd.Entity, bool) {
	descPath := filepath.Join(rootPath, name, name+sferd.ObjectDescriptorSuffix)

	data, err := l.fs.ReadFile(descPath)
	if err != nil {
		// No descriptor just means "not a recognized object".
		l.log.Verbose("Skipping %s: no object descriptor", name)
		return nil, false
	}

	label, err := parseObjectDescriptor(data, descPath)
	if err != nil {
		result.Warnings = append(result.Warnings, sferd.LoadWarning{
			Path:   descPath,
			Object: name,
			Reason: sferd.ReasonMalformedDescriptor,
			Detail: err.Error(),
		})
		l.log.Error("Skipping object %s: %v", name, err)
		return nil, false
	}
	if label == "" {
		label = name
	}

	return &sferd.Entity{
		Name:     name,
		Label:    label,
		Fields:   l.loadFields(rootPath, name, result),
		Category: categoryForName(name),
	}, true
}

// loadFields parses every field descriptor under <object>/fields.
// An absent fields directory yields an empty list.
func (l *Loader) loadFields(rootPath, name string, result *sferd.LoadResult) []sferd.Field {
	fieldsDir := filepath.Join(rootPath, name, sferd.FieldsDirName)

	entries, err := l.fs.ReadDir(fieldsDir)
	if err != nil {
		return nil
	}

	var fields []sferd.Field
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), sferd.FieldDescriptorSuffix) {
			continue
		}
		fieldPath := filepath.Join(fieldsDir, entry.Name())

		data, err := l.fs.ReadFile(fieldPath)
		if err != nil {
			result.Warnings = append(result.Warnings, sferd.LoadWarning{
				Path:   fieldPath,
				Object: name,
				Reason: sferd.ReasonMalformedDescriptor,
				Detail: err.Error(),
			})
			l.log.Error("Skipping field %s of %s: %v", entry.Name(), name, err)
			continue
		}

		field, err := parseFieldDescriptor(data, fieldPath)
		if err != nil {
			reason := sferd.ReasonMalformedDescriptor
			if isMissingRequired(err) {
				reason = sferd.ReasonMissingRequiredElement
			}
			result.Warnings = append(result.Warnings, sferd.LoadWarning{
				Path:   fieldPath,
				Object: name,
				Reason: reason,
				Detail: err.Error(),
			})
			l.log.Error("Skipping field %s of %s: %v", entry.Name(), name, err)
			continue
		}

		fields = append(fields, *field)
	}
	return fields
}

// Verify Loader implements the public interface at compile time
var _ sferd.ObjectLoader = (*Loader)(nil)
