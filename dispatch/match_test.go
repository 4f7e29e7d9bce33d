package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// noMatch is the root executor used across these tests; it mirrors the
// "command not found" fallback a console would install.
func noMatch() Executor {
	return Func(func(_ context.Context, remaining string, _ MatchStack, _ *PatternMatch, _ ValidatorState) (any, error) {
		return "Command " + remaining + " not found.", nil
	})
}

func TestMatch_LiteralLeaf(t *testing.T) {
	root := NewNode(noMatch())
	root.Command("get", Static("ok"))

	res, err := root.Match(context.Background(), "get", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "ok", res)
}

func TestMatch_LiteralWordBoundary(t *testing.T) {
	root := NewNode(noMatch())
	root.Command("get", Static("ok"))

	// "getter" is a distinct word; it must not route into "get".
	res, err := root.Match(context.Background(), "getter", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "Command getter not found.", res)
}

func TestMatch_NestedLiterals(t *testing.T) {
	root := NewNode(noMatch())
	get := root.Command("get", Static("get what?"))
	get.Command("pies", Static("cake"))

	tests := []struct {
		name  string
		input string
		want  any
	}{
		{name: "unknown command", input: "hello", want: "Command hello not found."},
		{name: "group alone", input: "get", want: "get what?"},
		{name: "full path", input: "get pies", want: "cake"},
		{name: "extra whitespace", input: "get   pies", want: "cake"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := root.Match(context.Background(), tt.input, nil, nil)
			require.NoError(t, err)
			require.Equal(t, tt.want, res)
		})
	}
}

func TestMatch_PatternCaptureGroup(t *testing.T) {
	root := NewNode(noMatch())
	root.Register(ChildSpec{
		Matchers: []Matcher{Pattern(`coffee-(.+)`)},
		Executor: Func(func(_ context.Context, _ string, _ MatchStack, m *PatternMatch, _ ValidatorState) (any, error) {
			return m.Group(1), nil
		}),
	})

	res, err := root.Match(context.Background(), "coffee-mocha", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "mocha", res)
}

func TestMatch_PatternConsumesFirstOccurrenceAnywhere(t *testing.T) {
	var got string
	root := NewNode(noMatch())
	root.Register(ChildSpec{
		Matchers: []Matcher{Pattern(`--verbose`)},
		Executor: Func(func(_ context.Context, remaining string, _ MatchStack, _ *PatternMatch, _ ValidatorState) (any, error) {
			got = remaining
			return nil, nil
		}),
	})

	// The flag sits mid-input; the matched span is removed where it
	// occurred, not prefix stripped.
	_, err := root.Match(context.Background(), "run --verbose now", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "run  now", got)
}

func TestMatch_InsertionOrderWins(t *testing.T) {
	root := NewNode(noMatch())
	root.Command("status", Static("literal"))
	root.Register(ChildSpec{
		Matchers: []Matcher{Pattern(`st\w+`)},
		Executor: Static("pattern"),
	})

	// Both children accept "status"; the first registered wins.
	res, err := root.Match(context.Background(), "status", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "literal", res)

	// The pattern still serves inputs the literal rejects.
	res, err = root.Match(context.Background(), "stop", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "pattern", res)
}

func TestMatch_ValidatorGatesChildren(t *testing.T) {
	var sawState ValidatorState
	childRan := false

	root := NewNode(noMatch())
	gate := root.Register(ChildSpec{
		Matchers: []Matcher{Literal("admin")},
		Executor: Func(func(_ context.Context, _ string, _ MatchStack, _ *PatternMatch, state ValidatorState) (any, error) {
			sawState = state
			return "gated", nil
		}),
		Validator: func(_ context.Context, _ string, _ *PatternMatch) (bool, error) {
			return false, nil
		},
	})
	gate.Command("reset", Func(func(_ context.Context, _ string, _ MatchStack, _ *PatternMatch, _ ValidatorState) (any, error) {
		childRan = true
		return "reset", nil
	}))

	res, err := root.Match(context.Background(), "admin reset", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "gated", res)
	require.Equal(t, ValidatorFailed, sawState)
	require.False(t, childRan, "validator false must suppress child matching")
}

func TestMatch_ValidatorPassedReachesExecutor(t *testing.T) {
	var sawState ValidatorState

	root := NewNode(noMatch())
	root.Register(ChildSpec{
		Matchers: []Matcher{Literal("admin")},
		Executor: Func(func(_ context.Context, _ string, _ MatchStack, _ *PatternMatch, state ValidatorState) (any, error) {
			sawState = state
			return nil, nil
		}),
		Validator: func(_ context.Context, _ string, _ *PatternMatch) (bool, error) {
			return true, nil
		},
	})

	_, err := root.Match(context.Background(), "admin", nil, nil)
	require.NoError(t, err)
	require.Equal(t, ValidatorPassed, sawState)
}

func TestMatch_ValidatorErrorPropagates(t *testing.T) {
	boom := errors.New("gate exploded")

	root := NewNode(noMatch())
	root.Register(ChildSpec{
		Matchers: []Matcher{Literal("admin")},
		Executor: Static("never"),
		Validator: func(_ context.Context, _ string, _ *PatternMatch) (bool, error) {
			return false, boom
		},
	})

	_, err := root.Match(context.Background(), "admin", nil, nil)
	require.ErrorIs(t, err, boom)
}

func TestMatch_ExecutorErrorPropagates(t *testing.T) {
	boom := errors.New("executor exploded")

	root := NewNode(noMatch())
	root.Command("fail", Func(func(_ context.Context, _ string, _ MatchStack, _ *PatternMatch, _ ValidatorState) (any, error) {
		return nil, boom
	}))

	_, err := root.Match(context.Background(), "fail", nil, nil)
	require.ErrorIs(t, err, boom)
}

func TestMatch_StackRecordsPath(t *testing.T) {
	var gotStack MatchStack

	root := NewNode(noMatch())
	get := root.Command("get", Static(nil))
	get.Register(ChildSpec{
		Matchers: []Matcher{Pattern(`coffee-(\w+)`)},
		Executor: Func(func(_ context.Context, _ string, stack MatchStack, _ *PatternMatch, _ ValidatorState) (any, error) {
			gotStack = stack
			return nil, nil
		}),
	})

	_, err := root.Match(context.Background(), "get coffee-latte now", nil, nil)
	require.NoError(t, err)
	require.Len(t, gotStack, 2)
	require.Equal(t, "get", gotStack[0].Token)
	require.Equal(t, `coffee-(\w+)`, gotStack[1].Pattern)
	require.Equal(t, "coffee-latte", gotStack[1].Match.Text)
	require.Equal(t, "latte", gotStack[1].Match.Group(1))
}

func TestMatch_StackPushCopies(t *testing.T) {
	stacks := make([]MatchStack, 0, 2)

	root := NewNode(noMatch())
	get := root.Command("get", Static(nil))
	record := Func(func(_ context.Context, _ string, stack MatchStack, _ *PatternMatch, _ ValidatorState) (any, error) {
		stacks = append(stacks, stack)
		return nil, nil
	})
	get.Command("pies", record)
	get.Command("cake", record)

	_, err := root.Match(context.Background(), "get pies", nil, nil)
	require.NoError(t, err)
	_, err = root.Match(context.Background(), "get cake", nil, nil)
	require.NoError(t, err)

	require.Equal(t, "pies", stacks[0][1].Token)
	require.Equal(t, "cake", stacks[1][1].Token)
}

func TestMatch_StaticVariants(t *testing.T) {
	type receipt struct {
		Item string `json:"item"`
	}

	tests := []struct {
		name string
		exec Executor
		want any
	}{
		{name: "string", exec: Static("ok"), want: "ok"},
		{name: "structured", exec: Static(receipt{Item: "mocha"}), want: receipt{Item: "mocha"}},
		{name: "nil zero value", exec: Executor{}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewNode(noMatch())
			root.Command("do", tt.exec)

			res, err := root.Match(context.Background(), "do", nil, nil)
			require.NoError(t, err)
			require.Equal(t, tt.want, res)
		})
	}
}
