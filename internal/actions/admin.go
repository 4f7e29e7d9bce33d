package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/conch-tools/conch/dispatch"
	"github.com/conch-tools/conch/internal/usage"
)

// AdminGate is the validator on the admin command group.
func AdminGate(deps Deps) dispatch.Validator {
	return func(_ context.Context, _ string, _ *dispatch.PatternMatch) (bool, error) {
		return deps.Admin(), nil
	}
}

// AdminRoot is the admin group's own executor. When the gate failed, no
// subcommand was attempted and the validator state says so; otherwise the
// user typed "admin" with no known subcommand.
func AdminRoot() dispatch.Callable {
	return func(_ context.Context, remaining string, _ dispatch.MatchStack, _ *dispatch.PatternMatch, state dispatch.ValidatorState) (any, error) {
		if state == dispatch.ValidatorFailed {
			return nil, usage.NotAllowed("admin")
		}
		return "admin commands: reset, seed", nil
	}
}

// ResetOrders clears all orders after a direct confirmation.
func ResetOrders(deps Deps) dispatch.Callable {
	return func(_ context.Context, _ string, _ dispatch.MatchStack, _ *dispatch.PatternMatch, _ dispatch.ValidatorState) (any, error) {
		answer, err := deps.Question("Clear all orders? [y/N] ")
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			return "Reset cancelled.", nil
		}

		n, err := deps.Store.ClearOrders()
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("Cleared %d orders.", n), nil
	}
}

// SeedMenu restores the default menu items.
func SeedMenu(deps Deps) dispatch.Callable {
	return func(_ context.Context, _ string, _ dispatch.MatchStack, _ *dispatch.PatternMatch, _ dispatch.ValidatorState) (any, error) {
		if err := deps.Store.SeedDefaultMenu(); err != nil {
			return nil, err
		}
		return "Menu seeded.", nil
	}
}
