// Package cli assembles the demo shell's command tree.
package cli

import (
	"github.com/conch-tools/conch/console"
	"github.com/conch-tools/conch/dispatch"
	"github.com/conch-tools/conch/internal/actions"
)

// BuildTree registers the demo café commands on the console's root node.
// Everything goes through the declarative Decl form so the tree reads as a
// table.
func BuildTree(c *console.Console, deps actions.Deps) {
	root := c.Root()

	dispatch.Build(root,
		dispatch.Decl{
			Matchers: dispatch.Lit("menu", "m"),
			Executor: dispatch.Func(actions.ShowMenu(deps)),
			Children: []dispatch.Decl{
				{
					Matchers: dispatch.Pat(`add (\S+) (\S+) (\d+)`),
					Executor: dispatch.Func(actions.AddMenuItem(deps)),
				},
			},
		},
		dispatch.Decl{
			Matchers:  dispatch.Lit("order"),
			Executor:  dispatch.Static("usage: order <item> | order coffee-<name> | order list"),
			Suggestor: actions.SuggestItems(deps),
			Children: []dispatch.Decl{
				{
					Matchers: dispatch.Lit("list"),
					Executor: dispatch.Func(actions.ListOrders(deps)),
				},
				{
					Matchers: dispatch.Pat(`coffee-(.+)`),
					Executor: dispatch.Func(actions.PlaceOrder(deps)),
				},
				// Catch-all by item name; literals above win first.
				{
					Matchers: dispatch.Pat(`(\S+)`),
					Executor: dispatch.Func(actions.PlaceOrder(deps)),
				},
			},
		},
		dispatch.Decl{
			Matchers:  dispatch.Lit("admin"),
			Executor:  dispatch.Func(actions.AdminRoot()),
			Validator: actions.AdminGate(deps),
			Children: []dispatch.Decl{
				{
					Matchers: dispatch.Lit("reset"),
					Executor: dispatch.Func(actions.ResetOrders(deps)),
				},
				{
					Matchers: dispatch.Lit("seed"),
					Executor: dispatch.Func(actions.SeedMenu(deps)),
				},
			},
		},
		dispatch.Decl{
			Matchers: dispatch.Lit("help"),
			Executor: actions.Help(),
		},
		dispatch.Decl{
			Matchers: dispatch.Lit("version"),
			Executor: dispatch.Static("conch " + actions.Version),
		},
		dispatch.Decl{
			Matchers: dispatch.Lit("exit", "quit"),
			Executor: dispatch.Func(actions.Quit(deps)),
		},
	)
}
