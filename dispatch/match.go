package dispatch

import "context"

// Match consumes remaining left to right against this node's children and
// resolves the executor of the deepest node reached.
//
// The node's validator, if any, runs first. A false result suppresses child
// matching entirely but the node's own executor still runs, receiving
// ValidatorFailed so it can report the rejected gate. Children are tried in
// insertion order and the first that consumes wins; siblings after it are
// never tried. When no child consumes, the node's own executor resolves with
// whatever was left.
//
// Errors from validators and executors propagate unwrapped; catching them is
// the caller's concern (the console does so once per dispatched line).
//
// Callers start a dispatch with Match(ctx, line, nil, nil).
func (n *Node) Match(ctx context.Context, remaining string, stack MatchStack, match *PatternMatch) (any, error) {
	state := ValidatorUnset
	if n.validator != nil {
		ok, err := n.validator(ctx, remaining, match)
		if err != nil {
			return nil, err
		}
		state = ValidatorPassed
		if !ok {
			state = ValidatorFailed
		}
	}

	if state != ValidatorFailed {
		for _, e := range n.children {
			frame, rest, ok := e.matcher.consume(remaining)
			if !ok {
				continue
			}
			return e.node.Match(ctx, rest, stack.push(frame), frame.Match)
		}
	}

	return n.exec.resolve(ctx, remaining, stack, match, state)
}
