package console

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conch-tools/conch/dispatch"
)

// depth returns an executor that reports how many matchers were consumed to
// reach it, which is how these tests measure how deep a line lands.
func depth() dispatch.Executor {
	return dispatch.Func(func(_ context.Context, _ string, stack dispatch.MatchStack, _ *dispatch.PatternMatch, _ dispatch.ValidatorState) (any, error) {
		return len(stack), nil
	})
}

func newCompleterConsole(t *testing.T) *Console {
	t.Helper()
	c := New(Options{
		Out:               &bytes.Buffer{},
		NoMatch:           depth(),
		EnableSuggestions: true,
	})

	get := c.Root().Register(dispatch.ChildSpec{
		Matchers: []dispatch.Matcher{dispatch.Literal("get")},
		Executor: depth(),
	})
	get.Command("pies", depth())
	get.Command("pizza", depth())
	c.Root().Command("getter", depth())
	c.Root().Register(dispatch.ChildSpec{
		Matchers: []dispatch.Matcher{dispatch.Pattern(`coffee-(.+)`)},
		Executor: depth(),
	})
	return c
}

func TestComplete_StrictExtensionsOnly(t *testing.T) {
	c := newCompleterConsole(t)

	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "partial token",
			line: "ge",
			want: []string{"get pies", "get pizza", "get", "getter"},
		},
		{
			name: "typed line itself is excluded",
			line: "get",
			want: []string{"get pies", "get pizza", "getter"},
		},
		{
			name: "second level",
			line: "get pi",
			want: []string{"get pies", "get pizza"},
		},
		{
			name: "no extensions",
			line: "get pies",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, c.complete(tt.line))
		})
	}
}

func TestComplete_PreservesLeadingWhitespace(t *testing.T) {
	c := newCompleterConsole(t)

	got := c.complete("  get pi")
	require.Equal(t, []string{"  get pies", "  get pizza"}, got)
}

// Every completion, submitted as a full line, must land strictly deeper in
// the tree than the line it completed. A completion Match would reject is a
// completer bug. The fixture avoids sibling tokens that prefix each other
// ("get"/"getter"): completing one such sibling to the other stays at the
// same depth by construction.
func TestComplete_SuggestionsReachDeeper(t *testing.T) {
	c := New(Options{
		Out:               &bytes.Buffer{},
		NoMatch:           depth(),
		EnableSuggestions: true,
	})
	get := c.Root().Register(dispatch.ChildSpec{
		Matchers: []dispatch.Matcher{dispatch.Literal("get")},
		Executor: depth(),
	})
	get.Command("pies", depth())
	get.Command("pizza", depth())
	c.Root().Register(dispatch.ChildSpec{
		Matchers: []dispatch.Matcher{dispatch.Pattern(`coffee-(.+)`)},
		Executor: depth(),
	})
	ctx := context.Background()

	matchDepth := func(line string) int {
		res, err := c.Root().Match(ctx, line, nil, nil)
		require.NoError(t, err)
		return res.(int)
	}

	inputs := []string{"", "ge", "get", "get pi", "coffee-mo"}
	for _, input := range inputs {
		base := 0
		if input != "" {
			base = matchDepth(input)
		}
		for _, suggestion := range c.complete(input) {
			require.Greater(t, matchDepth(suggestion), base,
				"suggestion %q for input %q", suggestion, input)
		}
	}
}
