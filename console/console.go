// Package console is the interactive front end over a dispatch tree: a
// readline loop that feeds submitted lines into Match, renders the results,
// and serves tab-completion from Suggest. One line is dispatched at a time;
// the tree itself carries no loop state.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/peterh/liner"

	"github.com/conch-tools/conch/dispatch"
)

// continuationMarker ends a line that should be buffered and joined with the
// next one before dispatch.
const continuationMarker = `\`

// Options configures a Console. This surface, together with Register on the
// root node, is everything declarative tree builders are allowed to touch.
type Options struct {
	// Prompt is printed before each input line. Defaults to "> ".
	Prompt string

	// ContinuationPrompt is printed while a continuation buffer is
	// pending. Defaults to "... ".
	ContinuationPrompt string

	// NoMatch is the root executor: it resolves whenever no registered
	// command consumes the submitted line.
	NoMatch dispatch.Executor

	// EnableSuggestions turns on tab-completion via the dispatch tree.
	EnableSuggestions bool

	// OnSuggest, when set, becomes the root node's suggestor.
	OnSuggest dispatch.Suggestor

	// OnClose runs once when the input stream closes or Stop is called.
	OnClose func()

	// OnError receives every error raised while dispatching a line,
	// including recovered panics. Defaults to printing a styled message
	// on stderr.
	OnError func(error)

	// HistoryFile, when set, persists the line editor's history between
	// sessions. This is line-editing furniture only; dispatched commands
	// are never replayed from it.
	HistoryFile string

	// Out receives rendered results. Defaults to os.Stdout.
	Out io.Writer

	// Logger receives diagnostics. Defaults to a no-op.
	Logger Logger
}

// Console owns the root of a dispatch tree plus the line-input loop around
// it. Construct with New, register commands on Root, then call Run.
type Console struct {
	root *dispatch.Node
	opts Options
	out  io.Writer
	log  Logger

	lineMu sync.Mutex
	line   *liner.State

	mu               sync.Mutex
	pending          string // continuation buffer
	busy             bool
	awaitingQuestion bool
	stopped          bool
}

// New builds a Console around a fresh root node configured from opts.
func New(opts Options) *Console {
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}
	if opts.ContinuationPrompt == "" {
		opts.ContinuationPrompt = "... "
	}

	root := dispatch.NewNode(opts.NoMatch)
	if opts.OnSuggest != nil {
		root.SetSuggestor(opts.OnSuggest)
	}

	c := &Console{
		root: root,
		opts: opts,
		out:  opts.Out,
		log:  opts.Logger,
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.log == nil {
		c.log = nopLogger{}
	}
	if c.opts.OnError == nil {
		c.opts.OnError = c.printError
	}
	return c
}

// Root returns the tree's root node for command registration.
func (c *Console) Root() *dispatch.Node { return c.root }

// Register registers a child spec directly beneath the root.
func (c *Console) Register(spec dispatch.ChildSpec) *dispatch.Node {
	return c.root.Register(spec)
}

// Run drives the prompt/read/dispatch loop until the input stream closes,
// the prompt is aborted, or Stop is called. OnClose runs exactly once on the
// way out.
func (c *Console) Run(ctx context.Context) error {
	line := c.reader()
	defer c.Close()

	for {
		text, err := line.Prompt(c.promptText())
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				c.log.Debug("console: input stream closed")
				c.close()
				return nil
			}
			c.close()
			return fmt.Errorf("read line: %w", err)
		}

		if strings.TrimSpace(text) != "" {
			line.AppendHistory(text)
		}

		c.HandleLine(ctx, text)

		if c.isStopped() {
			c.close()
			return nil
		}
	}
}

// HandleLine processes one submitted line: continuation buffering first,
// then a single serialized dispatch through the tree, then rendering. It is
// exported so hosts with their own input source can drive the console
// without Run.
func (c *Console) HandleLine(ctx context.Context, line string) {
	c.mu.Lock()
	if c.awaitingQuestion {
		c.mu.Unlock()
		c.log.Debug("console: dropping line while a question is pending")
		return
	}

	joined := c.pending + line
	if strings.HasSuffix(joined, continuationMarker) {
		c.pending = strings.TrimSuffix(joined, continuationMarker) + " "
		c.mu.Unlock()
		return
	}
	c.pending = ""

	if c.busy {
		c.mu.Unlock()
		c.log.Warn("console: dispatch already in progress, dropping line %q", line)
		return
	}
	c.busy = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
	}()

	trimmed := strings.TrimSpace(joined)
	if trimmed == "" {
		return
	}

	res, err := c.dispatchLine(ctx, trimmed)
	if err != nil {
		c.opts.OnError(err)
		return
	}
	c.render(res)
}

// dispatchLine is the one place dispatch failures are caught: errors are
// returned as-is and panic values are normalized, so a thrown plain string
// reaches OnError as an error with that exact message.
func (c *Console) dispatchLine(ctx context.Context, line string) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return c.root.Match(ctx, line, nil, nil)
}

// Question prompts for one direct answer, suppressing normal line dispatch
// until it resolves. Safe to call before Run: the line reader initializes
// lazily.
func (c *Console) Question(text string) (string, error) {
	line := c.reader()

	c.mu.Lock()
	c.awaitingQuestion = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.awaitingQuestion = false
		c.mu.Unlock()
	}()

	return line.Prompt(text)
}

// Stop asks Run to exit after the current line finishes.
func (c *Console) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()
}

// Close releases the line reader, restoring the terminal and saving history.
func (c *Console) Close() {
	c.lineMu.Lock()
	defer c.lineMu.Unlock()
	if c.line == nil {
		return
	}
	c.saveHistory(c.line)
	c.line.Close()
	c.line = nil
}

func (c *Console) promptText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != "" {
		return c.opts.ContinuationPrompt
	}
	return c.opts.Prompt
}

func (c *Console) isStopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}

func (c *Console) close() {
	if c.opts.OnClose != nil {
		c.opts.OnClose()
	}
}

// reader lazily initializes the liner state so Question works before the
// main loop starts.
func (c *Console) reader() *liner.State {
	c.lineMu.Lock()
	defer c.lineMu.Unlock()
	if c.line != nil {
		return c.line
	}

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	if c.opts.EnableSuggestions {
		line.SetCompleter(c.complete)
	}
	c.loadHistory(line)

	c.line = line
	return line
}

func (c *Console) loadHistory(line *liner.State) {
	if c.opts.HistoryFile == "" {
		return
	}
	f, err := os.Open(c.opts.HistoryFile)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()
	if _, err := line.ReadHistory(f); err != nil {
		c.log.Warn("console: could not read history: %v", err)
	}
}

func (c *Console) saveHistory(line *liner.State) {
	if c.opts.HistoryFile == "" {
		return
	}
	f, err := os.Create(c.opts.HistoryFile)
	if err != nil {
		c.log.Warn("console: could not save history: %v", err)
		return
	}
	defer func() { _ = f.Close() }()
	if _, err := line.WriteHistory(f); err != nil {
		c.log.Warn("console: could not write history: %v", err)
	}
}
