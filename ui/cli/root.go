// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/blockbatch/settings/internal/config"
	"github.com/blockbatch/settings/internal/i18n"
	"github.com/blockbatch/settings/internal/logging"
	"github.com/blockbatch/settings/internal/model"
	"github.com/blockbatch/settings/internal/settings"
	"github.com/blockbatch/settings/ui/tui"
)

// environment is what the commands need from the outside world.
type environment struct {
	clipboard settings.Clipboard
	// interactive reports whether stdin and stdout are terminals.
	interactive func() bool
	// width is the terminal width of stdout, 0 when unknown.
	width  func() int
	runTUI func(ctx context.Context, opts tui.Options) error
}

func defaultEnvironment() environment {
	return environment{
		clipboard: settings.SystemClipboard{},
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		width: func() int {
			w, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				return 0
			}
			return w
		},
		runTUI: tui.Run,
	}
}

// app holds the flag values and the resolved configuration of one run.
type app struct {
	env environment

	cfgFile string
	verbose bool

	cfg     config.Config
	tab     model.Tab
	logFile io.Closer
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	a := &app{env: defaultEnvironment()}
	defer a.close()
	initLanguage(os.Args[1:])
	return a.rootCmd().ExecuteContext(context.Background())
}

// errUnknownLanguage is returned for a language without an embedded locale.
var errUnknownLanguage = errors.New("unsupported language")

// initLanguage applies --language or BLOCKBATCH_LANGUAGE before the command
// tree is built, so help and flag usage are translated. The config file is
// only read in setup and cannot affect help output.
func initLanguage(args []string) {
	lang := os.Getenv("BLOCKBATCH_LANGUAGE")
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--language="); ok {
			lang = v
		} else if arg == "--language" && i+1 < len(args) {
			lang = args[i+1]
		}
	}
	if lang = strings.ToLower(lang); knownLanguage(lang) {
		i18n.SetLang(lang)
	}
}

func knownLanguage(lang string) bool {
	_, ok := i18n.GetAvailableLocales()[lang]
	return ok
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "blockbatch",
		Short:         i18n.T("cli.root.short"),
		Long:          i18n.T("cli.root.long"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}

	cmd.Version = compositeVersion(resolveBuildVersion(nil))
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.Flags().BoolP("version", "V", false, i18n.T("cli.flag.version"))
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, i18n.T("cli.flag.verbose"))
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", i18n.T("cli.flag.config"))
	cmd.PersistentFlags().String("language", "en", i18n.T("cli.flag.language"))
	cmd.PersistentFlags().String("log-file", "", i18n.T("cli.flag.log_file"))
	cmd.Flags().String("tab", "", i18n.T("cli.flag.tab"))

	cmd.AddCommand(
		newVersionCmd(),
		a.walletsCmd(),
	)
	return cmd
}

// setup loads the configuration and applies it to logging and i18n.
func (a *app) setup(cmd *cobra.Command) error {
	var explicit *string
	if a.cfgFile != "" {
		explicit = &a.cfgFile
	}

	cfg, used, err := config.LoadConfig[config.Config](cmd, config.Defaults(), explicit)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	a.cfg = cfg

	lang := strings.ToLower(cmp.Or(cfg.Language, "en"))
	if !knownLanguage(lang) {
		available := slices.Sorted(maps.Keys(i18n.GetAvailableLocales()))
		return fmt.Errorf("%w %q (available: %s)", errUnknownLanguage, cfg.Language, strings.Join(available, ", "))
	}
	if lang != i18n.GetLang() {
		i18n.SetLang(lang)
	}

	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	if a.verbose {
		logging.SetDebug(true)
	}
	if cfg.Log.File != "" {
		closer, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		a.logFile = closer
	}

	// The first run leaves a file behind for users to edit.
	if used == "" && explicit == nil {
		def := config.Default()
		if path, err := config.WriteConfigFile(&def, false); err != nil {
			logging.Warnf("could not write default config file: %v", err)
		} else {
			logging.Infof("%s", i18n.T("cli.config_written", path))
		}
	} else if used != "" {
		logging.Debugf("config: using %s", used)
	}

	tab, err := model.ParseTab(cfg.DefaultTab)
	if err != nil {
		return fmt.Errorf("invalid default tab: %w", err)
	}
	a.tab = tab
	return nil
}

func (a *app) runTUI(cmd *cobra.Command) error {
	if !a.env.interactive() {
		return errors.New(i18n.T("cli.no_terminal"))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The alt screen owns the terminal from here on.
	if a.logFile == nil {
		logging.SetOutput(io.Discard)
		defer logging.SetOutput(os.Stderr)
	}

	page := settings.New(
		settings.WithTab(a.tab),
		settings.WithClipboard(a.env.clipboard),
	)
	return a.env.runTUI(ctx, tui.Options{Page: page})
}

func (a *app) close() {
	if a.logFile == nil {
		return
	}
	logging.SetOutput(os.Stderr)
	if err := a.logFile.Close(); err != nil {
		logging.Errorf("closing log file: %v", err)
	}
	a.logFile = nil
}
