package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbmrq/todo/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show detailed version information for todo.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  todo version          # Show detailed version info
  todo version --json   # Machine-readable output`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	addVersionFlags(versionCmd)
}

func addVersionFlags(c *cobra.Command) {
	c.Flags().Bool("json", false, "Output as JSON")
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, args []string) error {
	info := version.NewInfo(Version, Commit, Date)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), info.FullString())
	return err
}
