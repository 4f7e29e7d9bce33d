package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/conch-tools/conch/dispatch"
	"github.com/conch-tools/conch/internal/store"
	"github.com/conch-tools/conch/internal/usage"
)

func storeItem(name, kind string, priceCents int) store.MenuItem {
	return store.MenuItem{Name: name, Kind: kind, PriceCents: priceCents}
}

// PlaceOrder places an order for the item named by the pattern's first
// capture group. Both "order coffee-mocha" and "order mocha" route here.
func PlaceOrder(deps Deps) dispatch.Callable {
	return func(_ context.Context, _ string, _ dispatch.MatchStack, m *dispatch.PatternMatch, _ dispatch.ValidatorState) (any, error) {
		name := m.Group(1)
		o, err := deps.Store.PlaceOrder(name)
		if errors.Is(err, store.ErrNoSuchItem) {
			return nil, usage.UnknownItem(name)
		}
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("One %s coming up. Order %s.", o.Item, shortID(o.ID)), nil
	}
}

// ListOrders returns all orders as a structured result.
func ListOrders(deps Deps) dispatch.Callable {
	return func(_ context.Context, _ string, _ dispatch.MatchStack, _ *dispatch.PatternMatch, _ dispatch.ValidatorState) (any, error) {
		orders, err := deps.Store.Orders()
		if err != nil {
			return nil, err
		}
		if len(orders) == 0 {
			return "No orders yet.", nil
		}
		return orders, nil
	}
}

// SuggestItems completes menu item names. Wired as the order group's
// suggestor, so it only fires at the level the user is typing on.
func SuggestItems(deps Deps) dispatch.Suggestor {
	return func(_ context.Context, remaining string, _ dispatch.MatchStack) ([]string, error) {
		items, err := deps.Store.MenuItems()
		if err != nil {
			return nil, err
		}
		var out []string
		for _, it := range items {
			if strings.HasPrefix(it.Name, remaining) {
				out = append(out, it.Name)
			}
		}
		return out, nil
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
