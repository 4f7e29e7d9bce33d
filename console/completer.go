package console

import (
	"context"
	"strings"
	"unicode"
)

// complete is the liner completer: it asks the tree for candidate
// continuations of the typed line and keeps only strict extensions of it,
// so completion never proposes a line Match would not reach deeper on.
func (c *Console) complete(line string) []string {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	lead := line[:len(line)-len(trimmed)]

	candidates, _, err := c.root.Suggest(context.Background(), trimmed, nil, false)
	if err != nil {
		c.log.Warn("console: suggest failed: %v", err)
		return nil
	}

	var out []string
	for _, cand := range candidates {
		if cand == trimmed || !strings.HasPrefix(cand, trimmed) {
			continue
		}
		out = append(out, lead+cand)
	}
	return out
}
