package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sftools/sferd/internal/config"
	"github.com/sftools/sferd/internal/dot"
	"github.com/sftools/sferd/internal/files/filesystem"
	"github.com/sftools/sferd/internal/logging"
	"github.com/sftools/sferd/internal/metadata"
	"github.com/sftools/sferd/internal/render"
	"github.com/sftools/sferd/internal/services"
	"github.com/sftools/sferd/internal/tui"
	"github.com/sftools/sferd/internal/tui/components"
	"github.com/sftools/sferd/pkg/sferd"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an ERD from a Salesforce objects directory",
	Long: `Generate scans the objects directory, infers relationships from Lookup and
MasterDetail fields, selects the most connected objects, and writes a DOT
document plus rendered images.

Configuration precedence: flags > sferd.yaml > SFERD_* environment variables
(a .env file in the working directory is loaded first) > built-in defaults.

Examples:
  # Diagram the 15 most connected objects as SVG
  sferd generate --objects-path force-app/main/default/objects

  # Specific objects, PNG and PDF output
  sferd generate --objects-path ./objects \
    --objects Account --objects Contact --objects Opportunity \
    --formats png,pdf

  # Large org: more objects, tighter field display
  sferd generate --objects-path ./objects \
    --max-objects 100 --max-fields-per-entity 4

  # Pick objects interactively
  sferd generate --objects-path ./objects --interactive`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

type generateFlagValues struct {
	objectsPath        string
	outputDir          string
	maxObjects         int
	formats            []string
	filename           string
	objects            []string
	engine             string
	title              string
	hideFields         bool
	maxFieldsPerEntity int
	noAutoLimitFields  bool
	interactive        bool
}

var generateFlags generateFlagValues

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateFlags.objectsPath, "objects-path", "",
		"Path to the Salesforce objects directory\n"+
			"Precedence: --objects-path > sferd.yaml objects_path > $SFERD_OBJECTS_PATH")
	generateCmd.Flags().StringVar(&generateFlags.outputDir, "output-dir", "",
		"Output directory for generated files (default: output)")
	generateCmd.Flags().IntVar(&generateFlags.maxObjects, "max-objects", 0,
		"Maximum number of objects in the diagram, chosen by connectivity (default: 15)")
	generateCmd.Flags().StringSliceVar(&generateFlags.formats, "formats", nil,
		"Image formats to render: svg, png, pdf (default: svg)")
	generateCmd.Flags().StringVar(&generateFlags.filename, "filename", "",
		"Base filename for output files (default: final_erd)")
	generateCmd.Flags().StringSliceVar(&generateFlags.objects, "objects", nil,
		"Restrict the load to specific object names (can be repeated)\n"+
			"Default: load everything and auto-select the most connected")
	generateCmd.Flags().StringVar(&generateFlags.engine, "engine", "",
		"Graphviz layout engine: dot (hierarchical), neato (spring), fdp (force-directed),\n"+
			"sfdp (scalable force), circo (circular), twopi (radial) (default: dot)")
	generateCmd.Flags().StringVar(&generateFlags.title, "title", "",
		"Diagram title (default: Salesforce System ERD)")
	generateCmd.Flags().BoolVar(&generateFlags.hideFields, "hide-fields", false,
		"Hide field lines inside object boxes")
	generateCmd.Flags().IntVar(&generateFlags.maxFieldsPerEntity, "max-fields-per-entity", -1,
		"Cap the field lines shown per object; -1 derives the cap from diagram size")
	generateCmd.Flags().BoolVar(&generateFlags.noAutoLimitFields, "no-auto-limit-fields", false,
		"Disable the size-based field cap; show every relationship field")
	generateCmd.Flags().BoolVar(&generateFlags.interactive, "interactive", false,
		"Pick the objects to include in a terminal UI before generating")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	log := logging.NewConsoleLogger(verbose)

	cfg, err := buildGenerateConfig(cmd, verbose)
	if err != nil {
		return err
	}

	if generateFlags.interactive {
		objects, err := pickObjectsInteractively(cfg, log)
		if err != nil {
			return err
		}
		cfg.Objects = objects
	}

	summary, err := newGenerator(log).Generate(cfg)
	if summary != nil {
		reportWarnings(log, summary)
	}
	return err
}

// buildGenerateConfig merges flags, sferd.yaml, and SFERD_* environment
// variables into one GenerateConfig. Flags win over the file; the file wins
// over the environment.
func buildGenerateConfig(cmd *cobra.Command, verbose bool) (sferd.GenerateConfig, error) {
	projectCfg, err := loadProjectConfig()
	if err != nil {
		return sferd.GenerateConfig{}, err
	}

	cfg := sferd.GenerateConfig{
		ObjectsPath:     firstNonEmpty(generateFlags.objectsPath, projectCfg.ObjectsPath),
		OutputDir:       firstNonEmpty(generateFlags.outputDir, projectCfg.OutputDir),
		Filename:        firstNonEmpty(generateFlags.filename, projectCfg.Filename),
		Title:           firstNonEmpty(generateFlags.title, projectCfg.Title),
		Engine:          firstNonEmpty(generateFlags.engine, projectCfg.Engine),
		AutoLimitFields: !generateFlags.noAutoLimitFields,
		Verbose:         verbose,
	}

	cfg.MaxObjects = generateFlags.maxObjects
	if cfg.MaxObjects == 0 {
		cfg.MaxObjects = projectCfg.MaxObjects
	}

	cfg.Formats = generateFlags.formats
	if cfg.Formats == nil {
		cfg.Formats = projectCfg.Formats
	}

	cfg.Objects = generateFlags.objects
	if cfg.Objects == nil {
		cfg.Objects = projectCfg.Objects
	}

	cfg.ShowFields = !generateFlags.hideFields
	if !cmd.Flags().Changed("hide-fields") && projectCfg.HideFields {
		cfg.ShowFields = false
	}

	if generateFlags.maxFieldsPerEntity >= 0 {
		limit := generateFlags.maxFieldsPerEntity
		cfg.MaxFieldsPerEntity = &limit
	} else {
		cfg.MaxFieldsPerEntity = projectCfg.MaxFieldsPerEntity
	}

	if cfg.ObjectsPath == "" {
		return sferd.GenerateConfig{}, fmt.Errorf("objects path is required (--objects-path, %s, or $%s): %w",
			config.ConfigFileName, config.EnvObjectsPath, sferd.ErrInvalidConfig)
	}
	return cfg, nil
}

// pickObjectsInteractively loads the full object inventory and lets the user
// choose the diagram members in a terminal UI.
func pickObjectsInteractively(cfg sferd.GenerateConfig, log sferd.Logger) ([]string, error) {
	if !tui.IsInteractive() {
		return nil, fmt.Errorf("--interactive requires a terminal: %w", sferd.ErrInvalidConfig)
	}

	result, err := metadata.NewLoader(log).Load(cfg.ObjectsPath, nil)
	if err != nil {
		return nil, err
	}
	if len(result.Order) == 0 {
		return nil, fmt.Errorf("no objects found under %s: %w", cfg.ObjectsPath, sferd.ErrNoObjects)
	}

	items := make([]components.Item, 0, len(result.Order))
	for _, name := range result.Order {
		entity := result.Entities[name]
		item := components.Item{Label: name, Value: name}
		if entity.Label != name {
			item.Description = entity.Label
		}
		items = append(items, item)
	}

	return tui.PickObjects("Select objects to include", items, cfg.Objects)
}

// newGenerator wires the production pipeline.
func newGenerator(log sferd.Logger) *services.Generator {
	return services.NewGenerator(
		metadata.NewLoader(log),
		func(engine string) sferd.Renderer { return render.NewGraphviz(engine) },
		filesystem.NewOSFileSystem(),
		log,
		dot.DefaultStyle(),
	)
}

func reportWarnings(log sferd.Logger, summary *sferd.Summary) {
	for _, w := range summary.Warnings {
		log.Verbose("Warning [%s] %s: %s", w.Reason, w.Path, w.Detail)
	}
	if n := len(summary.Warnings); n > 0 {
		log.Info("%d descriptor(s) skipped during load (run with --verbose for details)", n)
	}
}

// loadProjectConfig loads .env, sferd.yaml, and SFERD_* fallbacks.
// A missing sferd.yaml is not an error.
func loadProjectConfig() (*config.ProjectConfig, error) {
	config.LoadDotEnv()

	projectCfg, err := config.Load(".")
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load %s: %v: %w", config.ConfigFileName, err, sferd.ErrInvalidConfig)
		}
		projectCfg = &config.ProjectConfig{}
	}
	if err := config.ApplyEnvironment(projectCfg); err != nil {
		return nil, fmt.Errorf("%v: %w", err, sferd.ErrInvalidConfig)
	}
	return projectCfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
