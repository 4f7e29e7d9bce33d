package dispatch

import "context"

// Suggest returns candidate continuations of remaining for tab-completion,
// along with the input echoed back. It mirrors Match's consumption rules
// exactly (prefix versus search semantics, whitespace trimming) but never
// invokes an executor, so it is a side-effect-free preview.
//
// stopOnNextLevel bounds how far a bare query expands: once the leading
// token is empty, children are descended a single further level and then
// skipped entirely. Custom suggestors fire only while stopOnNextLevel is
// false, i.e. at the level the user is actually typing on.
func (n *Node) Suggest(ctx context.Context, remaining string, stack MatchStack, stopOnNextLevel bool) ([]string, string, error) {
	var out []string
	first := firstToken(remaining)

	for _, e := range n.children {
		stop := stopOnNextLevel
		if first == "" {
			if stopOnNextLevel {
				continue
			}
			stop = true
		}

		comp, ok := e.matcher.complete(remaining, first)
		if !ok {
			continue
		}

		subs, _, err := e.node.Suggest(ctx, comp.rest, stack.push(comp.frame), stop)
		if err != nil {
			return nil, remaining, err
		}
		for _, sub := range subs {
			out = append(out, comp.prefix+" "+sub)
		}
		if comp.bare != "" {
			out = append(out, comp.bare)
		}
	}

	if !stopOnNextLevel && n.suggestor != nil {
		extra, err := n.suggestor(ctx, remaining, stack)
		if err != nil {
			return nil, remaining, err
		}
		out = append(out, extra...)
	}

	return out, remaining, nil
}
