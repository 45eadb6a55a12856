package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/abacus/pkg/abacusdir"
	"github.com/germanamz/abacus/pkg/config"
	"github.com/germanamz/abacus/pkg/session"
)

const version = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "init":
			initCmd := flag.NewFlagSet("init", flag.ExitOnError)
			initCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: abacus init [flags]\n\nInitialize a .abacus directory with a config file.\n\nFlags:\n")
				initCmd.PrintDefaults()
			}
			dir := initCmd.String("abacus-dir", ".abacus", "path to .abacus directory")
			yes := initCmd.Bool("yes", false, "write the default config without asking")
			_ = initCmd.Parse(os.Args[2:])

			ask := runWizard
			if *yes {
				ask = nil
			}

			if err := runInit(*dir, ask); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			return
		case "eval":
			evalMain(ctx)
			return
		case "mcp":
			mcpMain(ctx)
			return
		case "version":
			fmt.Println(version)
			return
		}
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: abacus [flags]\n       abacus <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  init     Initialize a .abacus directory with a config file\n  eval     Press keys and print the display\n  mcp      Serve the calculator as MCP tools over stdio\n  version  Print the version\n")
	}

	configPath := flag.String("config", "", "path to configuration file (default: .abacus/config.yaml or abacus.yaml)")
	abacusDir := flag.String("abacus-dir", ".abacus", "path to .abacus directory")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(ctx, *configPath, *abacusDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, abacusDirPath string) error {
	d := abacusdir.New(abacusDirPath)

	cfg, err := config.LoadOrDefault(abacusdir.ResolveConfigPath(configPath, d))
	if err != nil {
		return err
	}

	// The terminal owns stdout, so logs only go to a file: the configured one,
	// or the local log of an initialized .abacus directory.
	logPath := cfg.Log.File
	if logPath == "" && d.Exists() {
		if err := abacusdir.EnsureStructure(d); err != nil {
			return err
		}
		logPath = d.LogPath()
	}

	log, closer, err := newLogger(logPath, cfg.LogLevel(), nil)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	sess := session.New(session.Options{MaxInputLength: cfg.MaxInputLength, Logger: log})
	log.InfoContext(ctx, "calculator started", "session", sess.ID(), "version", version)

	flushStdinBuffer()

	p := tea.NewProgram(
		newAppModel(ctx, sess, cfg, log),
		tea.WithContext(ctx),
		tea.WithFilter(filterStaleEscapes),
	)

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
