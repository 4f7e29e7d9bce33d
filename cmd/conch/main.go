package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/conch-tools/conch/console"
	"github.com/conch-tools/conch/dispatch"
	"github.com/conch-tools/conch/internal/actions"
	"github.com/conch-tools/conch/internal/cli"
	"github.com/conch-tools/conch/internal/config"
	"github.com/conch-tools/conch/internal/log"
	"github.com/conch-tools/conch/internal/paths"
	"github.com/conch-tools/conch/internal/store"
	"github.com/conch-tools/conch/internal/ui/style"
	"github.com/conch-tools/conch/internal/usage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		if ue, ok := err.(*usage.Error); ok {
			os.Exit(ue.GetExitCode())
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}

	// Enable styling if stdout is a terminal and the config allows it
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && cfg.Color
	style.Init(enableColor)

	if err := log.Init(paths.LogFilePath(), log.ParseLevel(cfg.LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "conch: logging disabled: %v\n", err)
	}
	defer func() { _ = log.Close() }()

	st, err := store.Open(cfg.ResolvedDBPath())
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.SeedDefaultMenu(); err != nil {
		return err
	}

	c := console.New(console.Options{
		Prompt:            style.Prompt(cfg.Prompt),
		NoMatch:           dispatch.Func(actions.NoMatch()),
		EnableSuggestions: cfg.Suggestions,
		HistoryFile:       cfg.ResolvedHistoryFile(),
		Logger:            log.GetLogger(),
		OnClose: func() {
			fmt.Println(style.Muted("Come back soon."))
		},
		OnError: func(err error) {
			log.Error("dispatch: %v", err)
			fmt.Fprintln(os.Stderr, style.Error("error: "+err.Error()))
		},
	})

	deps := actions.Deps{
		Store:    st,
		Admin:    actions.AdminFromEnv,
		Question: c.Question,
		Stop:     c.Stop,
	}
	cli.BuildTree(c, deps)

	return c.Run(context.Background())
}
