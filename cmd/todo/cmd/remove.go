package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbmrq/todo/internal/logging"
)

// removeCmd represents the remove command.
var removeCmd = &cobra.Command{
	Use:     "remove [id]",
	Aliases: []string{"rm"},
	Short:   "Remove an entry",
	Long: `Remove every entry with the given id.

Without an id, an interactive picker opens when running in a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	id, ok, err := targetID(cmd, e, args, "Remove which entry?")
	if err != nil || !ok {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removing '%s'\n", id)
	if err := e.manager.Remove(id); err != nil {
		if reportNotFound(cmd, e, id, "remove", err) {
			return nil
		}
		return err
	}

	ctx := logging.WithEntryID(cmd.Context(), id)
	logging.FromContext(ctx).Info("entry removed")

	if err := e.list(); err != nil {
		return err
	}
	return e.save()
}
