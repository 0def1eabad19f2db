package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbmrq/todo/internal/deadline"
	"github.com/dbmrq/todo/internal/logging"
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Add a new entry",
	Long: `Add a new entry. All arguments are joined into the entry text and
the entry is named with a random word from the word list.

Deadlines:
  tomorrow          this time tomorrow
  today, tonight    23:30 today
  evening           23:00 today
  week, next week   this time in seven days
  <day>             15:00 on that day of the current month

Examples:
  todo add buy milk
  todo add "file taxes" -d 28 -p 5
  todo add call the landlord --deadline tomorrow`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addAddFlags(addCmd)
}

func addAddFlags(c *cobra.Command) {
	c.Flags().StringP("deadline", "d", "", "Deadline (tomorrow, today, tonight, evening, week or a day number)")
	c.Flags().Uint8P("priority", "p", 0, "Priority, 0 for none")
}

// runAdd handles the add command.
func runAdd(cmd *cobra.Command, args []string) error {
	deadlineFlag, _ := cmd.Flags().GetString("deadline")
	priority, _ := cmd.Flags().GetUint8("priority")
	text := strings.Join(args, " ")

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	// Resolve the deadline before loading the word list so a typo fails fast.
	var dueAt *time.Time
	if deadlineFlag != "" {
		t, err := deadline.ParseAndResolve(deadlineFlag, now())
		if err != nil {
			return err
		}
		dueAt = &t
	}

	if err := e.withNames(); err != nil {
		return err
	}

	entry, err := e.manager.Add(text, dueAt, priority)
	if err != nil {
		return err
	}

	ctx := logging.WithEntryID(cmd.Context(), entry.ID)
	logging.FromContext(ctx).Info("entry added", "priority", entry.Priority, "has_deadline", entry.HasDeadline())

	fmt.Fprintf(cmd.OutOrStdout(), "Adding %s - '%s'\n", entry.ID, entry.Task)
	if err := e.list(); err != nil {
		return err
	}
	return e.save()
}
