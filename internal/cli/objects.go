package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sftools/sferd/internal/config"
	"github.com/sftools/sferd/internal/logging"
	"github.com/sftools/sferd/internal/metadata"
	"github.com/sftools/sferd/pkg/sferd"
)

var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "List the objects discovered in the metadata directory",
	Long: `Objects loads the metadata tree and prints the object inventory without
generating a diagram: name, display label, category, and field counts.

Useful for checking what a generate run would see, or for feeding object
names into --objects.

Examples:
  sferd objects --objects-path force-app/main/default/objects
  sferd objects --objects-path ./objects --json | jq '.[].name'`,
	Args: cobra.NoArgs,
	RunE: runObjects,
}

type objectsFlagValues struct {
	objectsPath string
	asJSON      bool
}

var objectsFlags objectsFlagValues

func init() {
	rootCmd.AddCommand(objectsCmd)

	objectsCmd.Flags().StringVar(&objectsFlags.objectsPath, "objects-path", "",
		"Path to the Salesforce objects directory\n"+
			"Precedence: --objects-path > sferd.yaml objects_path > $SFERD_OBJECTS_PATH")
	objectsCmd.Flags().BoolVar(&objectsFlags.asJSON, "json", false,
		"Emit the inventory as JSON")
}

// inventoryEntry is the JSON shape of one discovered object.
type inventoryEntry struct {
	Name            string `json:"name"`
	Label           string `json:"label"`
	Category        string `json:"category"`
	Fields          int    `json:"fields"`
	ReferenceFields int    `json:"referenceFields"`
}

func runObjects(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	log := logging.NewConsoleLogger(verbose)

	projectCfg, err := loadProjectConfig()
	if err != nil {
		return err
	}
	objectsPath := firstNonEmpty(objectsFlags.objectsPath, projectCfg.ObjectsPath)
	if objectsPath == "" {
		return fmt.Errorf("objects path is required (--objects-path, %s, or $%s): %w",
			config.ConfigFileName, config.EnvObjectsPath, sferd.ErrInvalidConfig)
	}

	result, err := metadata.NewLoader(log).Load(objectsPath, nil)
	if err != nil {
		return err
	}
	if len(result.Order) == 0 {
		return fmt.Errorf("no objects found under %s: %w", objectsPath, sferd.ErrNoObjects)
	}

	entries := make([]inventoryEntry, 0, len(result.Order))
	for _, name := range result.Order {
		entity := result.Entities[name]
		entries = append(entries, inventoryEntry{
			Name:            entity.Name,
			Label:           entity.Label,
			Category:        entity.Category.String(),
			Fields:          len(entity.Fields),
			ReferenceFields: len(entity.ReferenceFields()),
		})
	}

	if objectsFlags.asJSON {
		return printInventoryJSON(os.Stdout, entries)
	}
	printInventoryTable(os.Stdout, entries)
	return nil
}

func printInventoryJSON(out *os.File, entries []inventoryEntry) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func printInventoryTable(out *os.File, entries []inventoryEntry) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLABEL\tCATEGORY\tFIELDS\tREFS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", e.Name, e.Label, e.Category, e.Fields, e.ReferenceFields)
	}
	w.Flush()
}
