package dispatch

// Decl is the declarative form of one registration: plain data describing a
// node and its subtree. A Decl tree is walked by Build, which calls the same
// Register primitive as direct construction, so the two entry points produce
// identical trees.
type Decl struct {
	Matchers  []Matcher
	Executor  Executor
	Node      *Node // attach an existing node instead of building one
	Validator Validator
	Suggestor Suggestor
	Children  []Decl
}

// Lit is shorthand for a list of literal matchers.
func Lit(tokens ...string) []Matcher {
	ms := make([]Matcher, len(tokens))
	for i, tok := range tokens {
		ms[i] = Literal(tok)
	}
	return ms
}

// Pat is shorthand for a list of pattern matchers.
func Pat(exprs ...string) []Matcher {
	ms := make([]Matcher, len(exprs))
	for i, expr := range exprs {
		ms[i] = Pattern(expr)
	}
	return ms
}

// Build registers each declaration beneath parent, recursing into children.
func Build(parent *Node, decls ...Decl) {
	for _, d := range decls {
		child := parent.Register(ChildSpec{
			Matchers:  d.Matchers,
			Executor:  d.Executor,
			Node:      d.Node,
			Validator: d.Validator,
			Suggestor: d.Suggestor,
		})
		Build(child, d.Children...)
	}
}
