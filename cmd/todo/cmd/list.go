package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all entries",
	Long: `List every entry with its id, priority, text, status and deadline.

Entries that are due today or overdue and not resolved are shown in red.
This is also what running todo with no command does.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// runList handles the list command and the bare root command.
func runList(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	return e.list()
}
