package console

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/pretty"

	"github.com/conch-tools/conch/internal/ui/style"
)

// resultPrefix marks rendered dispatch results on the console.
const resultPrefix = "=> "

// render prints one dispatch result. Strings get the fixed prefix, errors go
// to OnError, nil prints nothing, and anything structured is rendered as
// indented JSON.
func (c *Console) render(res any) {
	switch v := res.(type) {
	case nil:
	case string:
		fmt.Fprintln(c.out, style.Muted(resultPrefix)+v)
	case error:
		c.opts.OnError(v)
	default:
		c.renderStructured(v)
	}
}

func (c *Console) renderStructured(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		// Not everything marshals (channels, funcs); fall back to the
		// fmt rendering rather than losing the result.
		fmt.Fprintln(c.out, style.Muted(resultPrefix)+fmt.Sprintf("%+v", v))
		return
	}
	b = pretty.Pretty(b)
	if style.Enabled() {
		b = pretty.Color(b, nil)
	}
	fmt.Fprintf(c.out, "%s%s", style.Muted(resultPrefix), b)
}

func (c *Console) printError(err error) {
	fmt.Fprintln(os.Stderr, style.Error("error: "+err.Error()))
}
