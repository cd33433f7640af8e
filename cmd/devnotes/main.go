package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nzaccagnino/devnotes/internal/config"
	"github.com/nzaccagnino/devnotes/internal/editor"
	"github.com/nzaccagnino/devnotes/internal/i18n"
	"github.com/nzaccagnino/devnotes/internal/logging"
	"github.com/nzaccagnino/devnotes/internal/notes"
	"github.com/nzaccagnino/devnotes/internal/storage"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T().Error, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "devnotes",
		Short:         "Local notes with folders, favorites and trash",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdinIsTerminal() {
				return runList(cmd.OutOrStdout(), notes.ViewContext{View: notes.ViewNotes})
			}
			return runTUI()
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default: config.yml next to the executable)")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCommand.AddCommand(
		newListCommand(),
		newFolderCommand(),
		newNoteCommand(),
		newEmptyTrashCommand(),
	)
	return rootCommand
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// app bundles what every command needs once configuration is resolved.
type app struct {
	cfg        *config.Config
	logger     zerolog.Logger
	storage    storage.Storage
	store      *notes.Store
	scratchpad *editor.Scratchpad
	closers    []io.Closer
}

// openApp loads configuration, runs first-time setup when interactive and
// opens the configured storage. tui selects file logging so log lines never
// land on the terminal the UI draws on.
func openApp(tui bool) (*app, error) {
	path := configFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if !config.ConfigExists(path) && stdinIsTerminal() {
		if err := firstTimeSetup(os.Stdin, os.Stdout, path); err != nil {
			return nil, fmt.Errorf("failed to run setup: %w", err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Language != "" {
		i18n.SetLanguage(i18n.Language(cfg.Language))
	}

	logOpts := logging.Options{Level: cfg.LogLevel, Debug: debugMode, Console: os.Stderr}
	if tui {
		logOpts.File = cfg.LogFile
	}
	logger, logCloser, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}

	st, err := storage.Open(storage.Kind(cfg.Storage), cfg.StoragePath(), storage.WithLogger(logger))
	if err != nil {
		logCloser.Close()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	logger.Debug().Str("storage", cfg.Storage).Str("path", cfg.StoragePath()).Msg("storage opened")

	return &app{
		cfg:        cfg,
		logger:     logger,
		storage:    st,
		store:      notes.New(st, notes.WithLogger(logger)),
		scratchpad: editor.NewScratchpad(st),
		closers:    []io.Closer{st, logCloser},
	}, nil
}

func (a *app) Close() {
	a.store.Close()
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("close failed")
		}
	}
}

func firstTimeSetup(in io.Reader, out io.Writer, configPath string) error {
	en, it := i18n.For(i18n.English), i18n.For(i18n.Italian)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s / %s\n", en.SetupWelcome, it.SetupWelcome)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s / %s\n", en.SetupLanguage, it.SetupLanguage)
	fmt.Fprintln(out, "  [1] English")
	fmt.Fprintln(out, "  [2] Italiano")
	fmt.Fprint(out, "  > ")

	choice, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read input: %w", err)
	}

	language := i18n.English
	if strings.TrimSpace(choice) == "2" {
		language = i18n.Italian
	}
	i18n.SetLanguage(language)

	cfg := config.Default()
	cfg.Language = string(language)
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	t := i18n.T()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  "+t.SetupDone)
	fmt.Fprintln(out, "  "+t.SetupEdit)
	fmt.Fprintln(out)

	return nil
}
