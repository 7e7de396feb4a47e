package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `     __              _
 ___ / _| ___ _ __ __| |
/ __| |_ / _ \ '__/ _' |
\__ \  _|  __/ | | (_| |
|___/_|  \___|_|  \__,_|`

var rootCmd = &cobra.Command{
	Use:   "sferd",
	Short: "Salesforce metadata ERD generator",
	Long: asciiLogo + `

sferd scans a Salesforce metadata directory, infers object relationships from
Lookup and MasterDetail fields, and renders an entity-relationship diagram
as Graphviz DOT plus SVG/PNG/PDF images.

Corrupt or incomplete metadata never aborts a run: broken descriptors are
skipped with a warning and the remaining objects still produce a diagram.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Objects path not found
  12 - No objects to diagram
  13 - Image rendering failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for sferd")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
