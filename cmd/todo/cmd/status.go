package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbmrq/todo/internal/logging"
	"github.com/dbmrq/todo/internal/task"
)

// startCmd represents the start command.
var startCmd = &cobra.Command{
	Use:   "start [id]",
	Short: "Mark an entry as started",
	Long: `Mark an entry as started.

Without an id, an interactive picker opens when running in a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStart,
}

// resolveCmd represents the resolve command.
var resolveCmd = &cobra.Command{
	Use:     "resolve [id]",
	Aliases: []string{"done"},
	Short:   "Mark an entry as resolved",
	Long: `Mark an entry as resolved.

Without an id, an interactive picker opens when running in a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(resolveCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	return setStatus(cmd, args, task.StatusStarted, "Starting", "Start which entry?")
}

func runResolve(cmd *cobra.Command, args []string) error {
	return setStatus(cmd, args, task.StatusResolved, "Resolving", "Resolve which entry?")
}

// setStatus updates one entry, lists the result and saves. An unknown id
// is reported without touching the data file.
func setStatus(cmd *cobra.Command, args []string, status task.Status, verb, title string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	id, ok, err := targetID(cmd, e, args, title)
	if err != nil || !ok {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s '%s'\n", verb, id)
	if err := e.manager.SetStatus(id, status); err != nil {
		if reportNotFound(cmd, e, id, "update", err) {
			return nil
		}
		return err
	}

	ctx := logging.WithEntryID(cmd.Context(), id)
	logging.FromContext(ctx).Info("status changed", "status", status)

	if err := e.list(); err != nil {
		return err
	}
	return e.save()
}
