package actions

import (
	"context"
	"fmt"
	"strconv"

	"github.com/conch-tools/conch/dispatch"
)

// ShowMenu lists the menu as a structured result.
func ShowMenu(deps Deps) dispatch.Callable {
	return func(_ context.Context, _ string, _ dispatch.MatchStack, _ *dispatch.PatternMatch, _ dispatch.ValidatorState) (any, error) {
		items, err := deps.Store.MenuItems()
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return "The menu is empty.", nil
		}
		return items, nil
	}
}

// AddMenuItem handles "menu add <name> <kind> <price-cents>", captured by a
// single pattern matcher.
func AddMenuItem(deps Deps) dispatch.Callable {
	return func(_ context.Context, _ string, _ dispatch.MatchStack, m *dispatch.PatternMatch, _ dispatch.ValidatorState) (any, error) {
		name, kind := m.Group(1), m.Group(2)
		price, err := strconv.Atoi(m.Group(3))
		if err != nil {
			return nil, fmt.Errorf("invalid price %q: %w", m.Group(3), err)
		}

		if err := deps.Store.AddItem(storeItem(name, kind, price)); err != nil {
			return nil, err
		}
		return fmt.Sprintf("Added %s (%s) at %d cents.", name, kind, price), nil
	}
}
