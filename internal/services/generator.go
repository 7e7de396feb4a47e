package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sftools/sferd/internal/dot"
	"github.com/sftools/sferd/internal/files/filesystem"
	"github.com/sftools/sferd/internal/graph"
	"github.com/sftools/sferd/pkg/sferd"
)

// RendererFactory produces a renderer for a layout engine name. Injected so
// the pipeline can be tested without Graphviz installed.
type RendererFactory func(engine string) sferd.Renderer

// Generator orchestrates the full pipeline: load metadata, infer
// relationships, select the most connected subset, serialize DOT, write
// outputs, and render images.
//
// Thread-Safety: safe for concurrent Generate() calls; the generator holds
// no per-run state.
type Generator struct {
	loader          sferd.ObjectLoader
	rendererFactory RendererFactory
	fs              filesystem.Provider
	log             sferd.Logger
	style           dot.Style
}

// NewGenerator creates a Generator with all dependencies injected.
// Panics on nil dependencies: those are programmer errors that should fail
// loudly at startup, not surface as nil dereferences mid-run.
func NewGenerator(loader sferd.ObjectLoader, rendererFactory RendererFactory, fs filesystem.Provider, log sferd.Logger, style dot.Style) *Generator {
	if loader == nil {
		panic("loader cannot be nil")
	}
	if rendererFactory == nil {
		panic("rendererFactory cannot be nil")
	}
	if fs == nil {
		panic("fs cannot be nil")
	}
	if log == nil {
		panic("log cannot be nil")
	}
	return &Generator{
		loader:          loader,
		rendererFactory: rendererFactory,
		fs:              fs,
		log:             log,
		style:           style,
	}
}

// Generate runs one diagram generation pass.
//
// The returned Summary is non-nil whenever the DOT document was produced,
// even if image rendering failed for some or all formats; a per-format
// failure never invalidates the DOT output. The error is non-nil when the
// run as a whole failed: invalid config, unreadable metadata root, nothing
// to diagram, or zero images produced out of a non-empty format list.
func (g *Generator) Generate(cfg sferd.GenerateConfig) (*sferd.Summary, error) {
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result, err := g.loader.Load(cfg.ObjectsPath, cfg.Objects)
	if err != nil {
		return nil, err
	}
	if len(result.Order) == 0 {
		return nil, fmt.Errorf("no objects found under %s: %w", cfg.ObjectsPath, sferd.ErrNoObjects)
	}

	rels := graph.Build(result)
	g.log.Verbose("Found %d relationships", len(rels))

	ranked := graph.RankByConnectivity(rels)
	selected := graph.SelectTop(ranked, cfg.MaxObjects)
	if len(selected) == 0 {
		return nil, fmt.Errorf("no connected objects to diagram: %w", sferd.ErrNoObjects)
	}
	g.log.Info("Selected %d objects: %s", len(selected), previewNames(selected, 10))

	policy := sferd.DisplayPolicy{
		ShowFields:         cfg.ShowFields,
		MaxFieldsPerEntity: cfg.MaxFieldsPerEntity,
	}
	if policy.MaxFieldsPerEntity == nil && cfg.AutoLimitFields {
		if limit := g.style.AutoFieldLimit(len(selected)); limit != nil {
			policy.MaxFieldsPerEntity = limit
			g.log.Info("Auto-limiting to %d fields per entity for readability", *limit)
		}
	}

	dotText := dot.NewSerializer(g.style).Render(selected, result.Entities, rels, policy, cfg.Title)

	if err := g.fs.MkdirAll(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	dotPath := filepath.Join(cfg.OutputDir, cfg.Filename+".dot")
	if err := g.fs.WriteFile(dotPath, []byte(dotText)); err != nil {
		return nil, fmt.Errorf("failed to write DOT file: %w", err)
	}
	g.log.Info("Saved ERD DOT: %s", dotPath)

	summary := &sferd.Summary{
		ObjectsLoaded: len(result.Order),
		Relationships: len(rels),
		Selected:      selected,
		Warnings:      result.Warnings,
		DOTPath:       dotPath,
		FormatErrors:  make(map[string]error),
	}

	if err := g.renderImages(cfg, dotText, summary); err != nil {
		return summary, err
	}

	g.log.Info("✓ ERD generation complete")
	return summary, nil
}

// renderImages renders every requested format into <output>/images.
// Individual format failures are recorded in the summary and logged; the
// run only fails when formats were requested and none succeeded.
func (g *Generator) renderImages(cfg sferd.GenerateConfig, dotText string, summary *sferd.Summary) error {
	if len(cfg.Formats) == 0 {
		return nil
	}

	imagesDir := filepath.Join(cfg.OutputDir, sferd.ImagesSubdir)
	if err := g.fs.MkdirAll(imagesDir); err != nil {
		return fmt.Errorf("failed to create images directory: %w", err)
	}

	renderer := g.rendererFactory(cfg.Engine)
	var firstErr error

	for i, format := range cfg.Formats {
		data, err := renderer.Render(dotText, format)
		if err != nil {
			g.log.Error("Failed to render %s: %v", format, err)
			summary.FormatErrors[format] = err
			if firstErr == nil {
				firstErr = err
			}
			if errors.Is(err, sferd.ErrRendererNotFound) {
				// The binary will not appear between formats.
				for _, remaining := range cfg.Formats[i+1:] {
					summary.FormatErrors[remaining] = err
				}
				break
			}
			continue
		}

		imagePath := filepath.Join(imagesDir, cfg.Filename+"."+format)
		if err := g.fs.WriteFile(imagePath, data); err != nil {
			g.log.Error("Failed to write %s image: %v", format, err)
			summary.FormatErrors[format] = err
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		summary.Images = append(summary.Images, imagePath)
		g.log.Info("Generated %s: %s", strings.ToUpper(format), imagePath)
	}

	if len(summary.Images) == 0 {
		if errors.Is(firstErr, sferd.ErrRendererNotFound) {
			return firstErr
		}
		return fmt.Errorf("no images produced: %w", sferd.ErrRenderFailed)
	}
	return nil
}

// applyDefaults fills unset config fields with the built-in defaults.
func applyDefaults(cfg *sferd.GenerateConfig) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = sferd.DefaultOutputDir
	}
	if cfg.Filename == "" {
		cfg.Filename = sferd.DefaultFilename
	}
	if cfg.Title == "" {
		cfg.Title = sferd.DefaultTitle
	}
	if cfg.Engine == "" {
		cfg.Engine = sferd.DefaultEngine
	}
	if cfg.MaxObjects == 0 {
		cfg.MaxObjects = sferd.DefaultMaxObjects
	}
	if cfg.Formats == nil {
		cfg.Formats = sferd.DefaultFormats()
	}
}

// previewNames joins up to max names for log output.
func previewNames(names []string, max int) string {
	if len(names) <= max {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:max], ", ") + "..."
}
