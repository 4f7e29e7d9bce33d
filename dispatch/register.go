package dispatch

// ChildSpec describes one registration beneath a node. Either Executor or
// Node is used as the child: passing an existing Node attaches it as-is,
// which is how one subtree is shared under several matchers or parents
// (a shared command group).
type ChildSpec struct {
	// Matchers all map to the same resulting child. At least one is
	// required.
	Matchers []Matcher

	// Executor becomes the new child's executor. Ignored when Node is set.
	Executor Executor

	// Node, when non-nil, is attached instead of constructing a new child.
	Node *Node

	// Validator, when non-nil, is set on the child. For a shared Node this
	// overwrites the node's validator for every parent it hangs under;
	// last writer wins.
	Validator Validator

	// Suggestor, when non-nil, is set on the child, with the same sharing
	// semantics as Validator.
	Suggestor Suggestor
}

// Register inserts a child under this node for each matcher in the spec and
// returns the child so callers can chain further registration beneath it.
//
// Matchers already present on this node have their mapped child replaced;
// the earlier child becomes unreachable from this parent. Matchers of
// different kinds may overlap freely: resolution is strictly insertion
// order, no uniqueness is enforced across kinds.
func (n *Node) Register(spec ChildSpec) *Node {
	if len(spec.Matchers) == 0 {
		panic("dispatch: Register called without matchers")
	}

	child := spec.Node
	if child == nil {
		child = &Node{
			exec:      spec.Executor,
			validator: spec.Validator,
			suggestor: spec.Suggestor,
		}
	} else {
		if spec.Validator != nil {
			child.validator = spec.Validator
		}
		if spec.Suggestor != nil {
			child.suggestor = spec.Suggestor
		}
	}

	for _, m := range spec.Matchers {
		n.put(m, child)
	}

	return child
}

// Command registers a single literal token mapped to an executor. It is the
// common case shorthand for Register.
func (n *Node) Command(token string, exec Executor) *Node {
	return n.Register(ChildSpec{Matchers: []Matcher{Literal(token)}, Executor: exec})
}

// Group registers an executor-less node under one or more alias tokens and
// returns it for chaining subcommands.
func (n *Node) Group(tokens ...string) *Node {
	ms := make([]Matcher, len(tokens))
	for i, tok := range tokens {
		ms[i] = Literal(tok)
	}
	return n.Register(ChildSpec{Matchers: ms})
}
