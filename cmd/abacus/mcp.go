package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/germanamz/abacus/pkg/abacusdir"
	"github.com/germanamz/abacus/pkg/config"
	"github.com/germanamz/abacus/pkg/mcpserver"
	"github.com/germanamz/abacus/pkg/session"
)

// runMCP serves one calculator session as MCP tools over in/out until ctx is
// cancelled or the client disconnects. Logs go to stderr since stdout
// carries the protocol.
func runMCP(ctx context.Context, args []string, in io.Reader, out, stderr io.Writer) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: abacus mcp [flags]\n\nServe the calculator as MCP tools over stdio.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to configuration file")
	dir := fs.String("abacus-dir", ".abacus", "path to .abacus directory")
	if err := fs.Parse(args); err != nil {
		return err
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

	sess := session.New(session.Options{MaxInputLength: cfg.MaxInputLength, Logger: log})

	srv := mcpserver.New("abacus", version)
	srv.Register(mcpserver.CalculatorTools(sess)...)

	log.InfoContext(ctx, "mcp server started", "session", sess.ID())

	return srv.Serve(ctx, in, out)
}

func mcpMain(ctx context.Context) {
	if err := runMCP(ctx, os.Args[2:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
