package actions

import (
	"context"
	"strings"

	"github.com/conch-tools/conch/dispatch"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// NoMatch is the root executor: it resolves for any line no command
// consumed.
func NoMatch() dispatch.Callable {
	return func(_ context.Context, remaining string, _ dispatch.MatchStack, _ *dispatch.PatternMatch, _ dispatch.ValidatorState) (any, error) {
		return "Command " + remaining + " not found.", nil
	}
}

// Quit stops the console loop.
func Quit(deps Deps) dispatch.Callable {
	return func(_ context.Context, _ string, _ dispatch.MatchStack, _ *dispatch.PatternMatch, _ dispatch.ValidatorState) (any, error) {
		deps.Stop()
		return "Bye.", nil
	}
}

// Help returns the command summary.
func Help() dispatch.Executor {
	lines := []string{
		"menu                         show the menu",
		"menu add <name> <kind> <c>   add a menu item",
		"order <item>                 place an order",
		"order coffee-<name>          place a coffee order",
		"order list                   list placed orders",
		"admin reset                  clear all orders (gated)",
		"admin seed                   restore the default menu (gated)",
		"version                      show version",
		"exit | quit                  leave the shell",
	}
	return dispatch.Static(strings.Join(lines, "\n   "))
}
