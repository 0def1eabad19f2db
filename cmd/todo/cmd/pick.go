package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	todoerrors "github.com/dbmrq/todo/internal/errors"
	"github.com/dbmrq/todo/internal/tui"
)

// maxSuggestions bounds the "did you mean" list.
const maxSuggestions = 3

// pickEntry is swapped in tests so the picker never needs a terminal.
var pickEntry = func(cmd *cobra.Command, e *env, title string) (string, bool, error) {
	return tui.Pick(title, e.store.Entries(), cmd.InOrStdin(), cmd.OutOrStdout(), e.renderer.Styles())
}

// targetID returns the id given on the command line or, on a terminal,
// the one picked interactively. ok is false when the user backed out.
func targetID(cmd *cobra.Command, e *env, args []string, title string) (id string, ok bool, err error) {
	if len(args) > 0 {
		return args[0], true, nil
	}
	if !stdinIsTerminal(cmd) {
		return "", false, fmt.Errorf("%s requires an entry id", cmd.Name())
	}
	return pickEntry(cmd, e, title)
}

// reportNotFound prints the not-found message and any close matches.
// It returns true when err was a not-found error it handled.
func reportNotFound(cmd *cobra.Command, e *env, id, verb string, err error) bool {
	if !errors.Is(err, todoerrors.ErrNotFound) {
		return false
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Could not find '%s' to %s, exiting..\n", id, verb)
	suggestions := e.manager.Suggest(id, maxSuggestions)
	if len(suggestions) > 0 {
		fmt.Fprintf(out, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
	}
	e.log.Debug("entry not found", "id", id, "suggestions", len(suggestions))
	return true
}
