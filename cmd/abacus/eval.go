package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/germanamz/abacus/pkg/abacusdir"
	"github.com/germanamz/abacus/pkg/calc"
	"github.com/germanamz/abacus/pkg/config"
	"github.com/germanamz/abacus/pkg/keymap"
	"github.com/germanamz/abacus/pkg/session"
)

// runEval presses the keys given as arguments and prints the final display.
// Warnings go to stderr; the exit status stays zero for them.
func runEval(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: abacus eval [flags] <keys>...\n\nPress calculator keys and print the display, e.g. abacus eval 2+3x4=\n\nFlags:\n")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to configuration file")
	dir := fs.String("abacus-dir", ".abacus", "path to .abacus directory")
	showPending := fs.Bool("pending", false, "also print the stored operand and operator")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("eval: no keys given")
	}

	cfg, err := config.LoadOrDefault(abacusdir.ResolveConfigPath(*configPath, abacusdir.New(*dir)))
	if err != nil {
		return err
	}

	log, closer, err := newLogger(cfg.Log.File, cfg.LogLevel(), stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	events, err := keymap.Fields(strings.Join(fs.Args(), " "))
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}

	sess := session.New(session.Options{MaxInputLength: cfg.MaxInputLength, Logger: log})

	scr, signals, err := sess.PressAll(ctx, events...)
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}

	for _, sig := range signals {
		if sig == calc.SignalDivisionByZero {
			fmt.Fprintf(stderr, "warning: %s\n", divisionByZeroText)
		}
	}

	if *showPending && scr.Secondary != "" {
		fmt.Fprintln(stdout, scr.Secondary)
	}
	fmt.Fprintln(stdout, scr.Primary)

	return nil
}

func evalMain(ctx context.Context) {
	if err := runEval(ctx, os.Args[2:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
