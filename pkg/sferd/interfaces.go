package sferd

// ObjectLoader discovers and parses object metadata from a directory tree.
type ObjectLoader interface {
	// Load enumerates the immediate subdirectories of rootPath and parses
	// each recognized object. filter, when non-empty, restricts the load to
	// the named objects. A missing rootPath is fatal; individual malformed
	// descriptors are skipped and reported through LoadResult.Warnings.
	Load(rootPath string, filter []string) (*LoadResult, error)
}

// Renderer turns a DOT document into image bytes.
// It models the external layout tool as a narrow port so the pipeline can be
// tested without any external binary present.
type Renderer interface {
	// Render produces an image in the given format ("svg", "png", "pdf").
	// A failure is scoped to the single format; it never invalidates the
	// DOT text that produced it.
	Render(dot string, format string) ([]byte, error)
}
