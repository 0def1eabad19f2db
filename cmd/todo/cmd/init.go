package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dbmrq/todo/internal/config"
	"github.com/dbmrq/todo/internal/names"
	"github.com/dbmrq/todo/internal/task"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory",
	Long: `Create the data directory and its default files:
  <data-dir>/config.yaml    Default configuration
  <data-dir>/nouns.txt      Word list used to name entries
  <data-dir>/data.json      Empty task list

Existing files are kept. Use --force to reset config.yaml and nouns.txt;
data.json is never overwritten.

Examples:
  todo init
  todo init --data-dir ~/work/.todo.d
  todo init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	addInitFlags(initCmd)
}

func addInitFlags(c *cobra.Command) {
	c.Flags().BoolP("force", "f", false, "Overwrite existing config and word list")
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	dataDirFlag, _ := cmd.Flags().GetString("data-dir")
	configFlag, _ := cmd.Flags().GetString("config")

	dataDir, err := config.ResolveDataDir(dataDirFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing todo in %s...\n", dataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := config.NewConfig()
	cfg.DataDir = dataDir

	configPath := cfg.ConfigPath()
	if configFlag != "" {
		configPath = configFlag
	}
	written, err := config.WriteDefault(configPath, force)
	if err != nil {
		return err
	}
	report(cmd, configPath, written)

	wordsPath := cfg.WordsPath()
	written, err = writeIfMissing(wordsPath, []byte(names.DefaultWordList), force)
	if err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	report(cmd, wordsPath, written)

	dataPath := cfg.DataPath()
	written = false
	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		if err := task.NewStore(dataPath, task.WithClock(now)).Save(); err != nil {
			return err
		}
		written = true
	}
	report(cmd, dataPath, written)

	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "todo initialized successfully!")
	fmt.Fprintln(out, "Run 'todo add <text>' to add your first entry.")
	return nil
}

func report(cmd *cobra.Command, path string, written bool) {
	if written {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Kept existing %s\n", path)
	}
}

// writeIfMissing writes data to path unless it exists and force is unset.
func writeIfMissing(path string, data []byte, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, err
	}
	return true, nil
}
