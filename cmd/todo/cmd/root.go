// Package cmd provides the CLI commands for todo.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	todoerrors "github.com/dbmrq/todo/internal/errors"
	"github.com/dbmrq/todo/internal/version"
)

// Version information - set via ldflags at build time in main.go.
var (
	Version = version.DevVersion
	Commit  = version.UnknownCommit
	Date    = version.UnknownDate
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "A small personal task list",
	Long: `todo keeps a personal task list in a JSON file under ~/.todo.d.

Each entry gets a random word as its id, an optional deadline and a
priority. Deadlines can be tomorrow, today, tonight, evening, week
(or "next week") or a day of the current month as a single number.

Running todo with no command lists your entries.`,
	RunE:          runList,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	addPersistentFlags(rootCmd)
}

// addPersistentFlags registers the flags every command accepts.
func addPersistentFlags(c *cobra.Command) {
	c.PersistentFlags().String("data-dir", "", "Data directory (default $TODO_DATA_DIR or ~/.todo.d)")
	c.PersistentFlags().String("config", "", "Config file (default <data-dir>/config.yaml)")
	c.PersistentFlags().BoolP("verbose", "v", false, "Write debug logs to stderr")
	c.PersistentFlags().String("color", "", "Colour output: auto, always or never")
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	rootCmd.Version = version.NewInfo(Version, Commit, Date).String()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

// printError writes err to w, with details and suggestions for *TodoError.
func printError(w io.Writer, err error) {
	if te, ok := todoerrors.As(err); ok {
		fmt.Fprint(w, te.Format())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
