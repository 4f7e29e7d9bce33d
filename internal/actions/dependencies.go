// Package actions holds the executors behind the demo shell's commands.
// Each action is a dispatch.Callable closed over a Deps value so tests can
// swap the store, the admin gate, and the question prompt.
package actions

import (
	"os"

	"github.com/conch-tools/conch/internal/store"
)

// Deps carries everything the actions need from the host shell.
type Deps struct {
	Store *store.Store

	// Admin reports whether gated commands are allowed.
	Admin func() bool

	// Question asks the user one direct question and returns the answer.
	Question func(text string) (string, error)

	// Stop asks the console loop to exit.
	Stop func()
}

// AdminFromEnv is the default admin gate: set CONCH_ADMIN=1 to enable.
func AdminFromEnv() bool {
	return os.Getenv("CONCH_ADMIN") == "1"
}
