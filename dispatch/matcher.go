package dispatch

import (
	"regexp"
	"strings"
	"unicode"
)

// Matcher routes input to a child node. Two kinds exist: literal tokens
// (prefix match at position 0) and patterns (regexp, first occurrence
// anywhere in the remaining input). Matchers registered on one node are
// tried in insertion order; the first that consumes wins.
type Matcher interface {
	// key identifies a matcher within one node's child set. Registering a
	// matcher with the same key replaces the previously mapped child.
	key() string

	// consume reports whether the matcher accepts the remaining input and,
	// if so, returns the stack frame recording what was consumed plus the
	// left-trimmed remainder.
	consume(remaining string) (Frame, string, bool)

	// complete reports whether the matcher is a completion candidate for
	// the remaining input, given its leading whitespace-delimited token.
	complete(remaining, firstToken string) (completion, bool)
}

// PatternMatch records one successful pattern matcher application.
type PatternMatch struct {
	// Text is the full matched span.
	Text string
	// Groups holds the full match followed by capture groups, in the order
	// regexp.FindStringSubmatch returns them.
	Groups []string
	// Start and End delimit the matched span in the input it was found in.
	Start, End int
}

// Group returns capture group i, or "" when the group is absent.
func (m *PatternMatch) Group(i int) string {
	if m == nil || i < 0 || i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

// completion is the per-matcher outcome of a Suggest candidacy check.
type completion struct {
	frame  Frame  // what a match would have consumed
	rest   string // left-trimmed input after the consumed span
	prefix string // composed before each sub-suggestion
	bare   string // standalone candidate ("" when the matcher has none)
}

type literalMatcher struct {
	token string
}

// Literal returns a matcher that consumes the given token as a case-sensitive
// prefix of the remaining input, ending at a word boundary. An empty token
// would match every input, so
// Literal panics on "" the same way regexp.MustCompile panics on a bad
// expression: both are registration-time caller errors.
func Literal(token string) Matcher {
	if token == "" {
		panic("dispatch: Literal called with empty token")
	}
	return literalMatcher{token: token}
}

func (l literalMatcher) key() string { return "lit\x00" + l.token }

func (l literalMatcher) consume(remaining string) (Frame, string, bool) {
	if !strings.HasPrefix(remaining, l.token) {
		return Frame{}, "", false
	}
	// The token must end the input or sit on a word boundary: "getter"
	// never routes into "get". Suggestion applies the same condition, so
	// the two stay consistent.
	if len(remaining) > len(l.token) && !isSpace(remaining[len(l.token)]) {
		return Frame{}, "", false
	}
	rest := trimLeadingSpace(remaining[len(l.token):])
	return Frame{Token: l.token}, rest, true
}

func (l literalMatcher) complete(remaining, firstToken string) (completion, bool) {
	if !strings.HasPrefix(l.token, firstToken) {
		return completion{}, false
	}
	// The text right after the token must be empty or whitespace; otherwise
	// "get" would be suggested as a continuation of the distinct word
	// "getter".
	if len(remaining) > len(l.token) && !isSpace(remaining[len(l.token)]) {
		return completion{}, false
	}
	rest := ""
	if len(remaining) > len(l.token) {
		rest = trimLeadingSpace(remaining[len(l.token):])
	}
	return completion{
		frame:  Frame{Token: l.token},
		rest:   rest,
		prefix: l.token,
		bare:   l.token,
	}, true
}

type patternMatcher struct {
	re *regexp.Regexp
}

// Pattern returns a matcher for the given regular expression. The expression
// is compiled with regexp.MustCompile, so a malformed expression panics at
// registration time. Matching is unanchored: the first occurrence anywhere in
// the remaining input is consumed.
func Pattern(expr string) Matcher {
	return patternMatcher{re: regexp.MustCompile(expr)}
}

// Regexp returns a matcher that uses an already compiled expression.
func Regexp(re *regexp.Regexp) Matcher {
	return patternMatcher{re: re}
}

func (p patternMatcher) key() string { return "pat\x00" + p.re.String() }

func (p patternMatcher) consume(remaining string) (Frame, string, bool) {
	loc := p.re.FindStringSubmatchIndex(remaining)
	if loc == nil {
		return Frame{}, "", false
	}
	pm := newPatternMatch(remaining, loc)
	// The matched span is removed wherever it occurred, not just as a
	// prefix strip.
	rest := trimLeadingSpace(remaining[:loc[0]] + remaining[loc[1]:])
	return Frame{Pattern: p.re.String(), Match: pm}, rest, true
}

func (p patternMatcher) complete(remaining, firstToken string) (completion, bool) {
	loc := p.re.FindStringSubmatchIndex(firstToken)
	if loc == nil {
		return completion{}, false
	}
	// firstToken is a prefix of remaining, so span indexes carry over. The
	// same whitespace-or-end condition as for literals applies after the
	// matched span.
	if loc[1] < len(remaining) && !isSpace(remaining[loc[1]]) {
		return completion{}, false
	}
	pm := newPatternMatch(firstToken, loc)
	rest := trimLeadingSpace(remaining[:loc[0]] + remaining[loc[1]:])
	return completion{
		frame:  Frame{Pattern: p.re.String(), Match: pm},
		rest:   rest,
		prefix: pm.Text,
		bare:   pm.Group(1),
	}, true
}

func newPatternMatch(input string, loc []int) *PatternMatch {
	groups := make([]string, 0, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, input[loc[i]:loc[i+1]])
	}
	return &PatternMatch{
		Text:   input[loc[0]:loc[1]],
		Groups: groups,
		Start:  loc[0],
		End:    loc[1],
	}
}

func trimLeadingSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

func isSpace(b byte) bool {
	return unicode.IsSpace(rune(b))
}

// firstToken returns the leading whitespace-delimited segment of s.
func firstToken(s string) string {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s
	}
	return s[:i]
}
