// Package dispatch implements a recursive tree of command listeners. Input
// lines are matched left to right against registered literal tokens and
// patterns, optionally gated by validators, and resolved to the executor of
// the deepest node reached. The same tree drives prefix-based completion
// through Suggest, which mirrors Match's consumption rules without invoking
// any executor.
package dispatch

import "context"

// ValidatorState tells an executor how the node's validator resolved.
type ValidatorState int

const (
	// ValidatorUnset means the node has no validator.
	ValidatorUnset ValidatorState = iota
	// ValidatorPassed means the validator accepted the input.
	ValidatorPassed
	// ValidatorFailed means the validator rejected the input; child
	// matching was suppressed and the node's own executor ran instead.
	ValidatorFailed
)

func (s ValidatorState) String() string {
	switch s {
	case ValidatorPassed:
		return "passed"
	case ValidatorFailed:
		return "failed"
	default:
		return "unset"
	}
}

// Callable is a dynamic executor. It receives the unconsumed input, the
// matchers consumed en route to this node, the most recent pattern result
// (nil after a literal), and the node's validator state.
type Callable func(ctx context.Context, remaining string, stack MatchStack, match *PatternMatch, state ValidatorState) (any, error)

// Validator gates whether a node's children may be tried. Returning false is
// not an error: the node's own executor still runs with ValidatorFailed.
type Validator func(ctx context.Context, remaining string, match *PatternMatch) (bool, error)

// Suggestor contributes extra completion candidates for a node.
type Suggestor func(ctx context.Context, remaining string, stack MatchStack) ([]string, error)

// Executor is the value or function a node resolves to. It is a two-armed
// union: Static wraps a fixed result, Func wraps a Callable. The zero
// Executor resolves to nil.
type Executor struct {
	fn     Callable
	static any
}

// Static returns an executor that always resolves to v.
func Static(v any) Executor {
	return Executor{static: v}
}

// Func returns an executor that resolves by calling fn.
func Func(fn Callable) Executor {
	return Executor{fn: fn}
}

func (e Executor) resolve(ctx context.Context, remaining string, stack MatchStack, match *PatternMatch, state ValidatorState) (any, error) {
	if e.fn != nil {
		return e.fn(ctx, remaining, stack, match, state)
	}
	return e.static, nil
}

// Frame records one consumed matcher: either a literal token or a pattern
// with its match result.
type Frame struct {
	Token   string        // literal frames
	Pattern string        // pattern frames: the expression source
	Match   *PatternMatch // pattern frames: the match result
}

// MatchStack is the ordered record of matchers consumed from the root to the
// current node during one Match invocation. It is never mutated in place;
// each recursive step pushes onto a fresh copy so callables can retain the
// slice they were handed.
type MatchStack []Frame

func (s MatchStack) push(f Frame) MatchStack {
	out := make(MatchStack, len(s), len(s)+1)
	copy(out, s)
	return append(out, f)
}

// Node is one listener in the command tree. Children are kept in insertion
// order because matchers may overlap (a literal and a pattern that also
// matches it); the first registered wins. The tree is built during process
// configuration and is read-only afterwards, with one documented exception:
// re-registering a shared node with validator or suggestor options mutates
// that shared node for every parent it hangs under.
type Node struct {
	exec      Executor
	validator Validator
	suggestor Suggestor
	children  []childEntry
	index     map[string]int
}

type childEntry struct {
	matcher Matcher
	node    *Node
}

// NewNode returns a leaf node with the given executor.
func NewNode(exec Executor) *Node {
	return &Node{exec: exec}
}

// SetValidator replaces the node's validator. When the node is shared under
// several matchers or parents, the change is visible to all of them.
func (n *Node) SetValidator(v Validator) { n.validator = v }

// SetSuggestor replaces the node's suggestor. The same sharing caveat as
// SetValidator applies.
func (n *Node) SetSuggestor(s Suggestor) { n.suggestor = s }

// put inserts matcher -> child, preserving first-insertion order for new
// matchers and replacing the mapped child in place for known ones.
func (n *Node) put(m Matcher, child *Node) {
	if n.index == nil {
		n.index = make(map[string]int)
	}
	if i, ok := n.index[m.key()]; ok {
		n.children[i] = childEntry{matcher: m, node: child}
		return
	}
	n.index[m.key()] = len(n.children)
	n.children = append(n.children, childEntry{matcher: m, node: child})
}
