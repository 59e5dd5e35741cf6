// Package cli wires the pbc30 commands together with cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Makepad-fr/pbc30/internal/config"
	"github.com/Makepad-fr/pbc30/internal/logging"
	"github.com/Makepad-fr/pbc30/internal/store"
	"github.com/Makepad-fr/pbc30/internal/tracker"
	"github.com/Makepad-fr/pbc30/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks bad invocations (exit 2).
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// reportedError has already been shown to the user.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Run executes the command line and returns an exit code
// (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	return RunWith(context.Background(), args, os.Stdout, os.Stderr)
}

// RunWith is Run with explicit context and output streams.
func RunWith(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{v: viper.New(), out: stdout, errOut: stderr, log: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	// cobra skips post-run hooks when RunE fails
	_ = a.log.Sync()
	if err == nil {
		return ExitOK
	}
	var re reportedError
	if !errors.As(err, &re) {
		ui.Fail(stderr, err.Error())
	}
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, root.UsageString())
		return ExitUsage
	}
	return ExitError
}

type app struct {
	v       *viper.Viper
	cfg     *config.Config
	log     *zap.Logger
	out     io.Writer
	errOut  io.Writer
	cfgFile string
	verbose bool
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pbc30",
		Short: "Challenge board for the 30-day personal brand challenge",
		Long: `pbc30 shows a fixed list of daily challenges as post-it cards.
Done and missed challenges reveal their title; pending ones stay hidden.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q", args[0])
			}
			return nil
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: a.runBoard,
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.config/pbc30/pbc30.yaml)")
	pf.StringP("data", "d", "", "challenge file (.json, .yaml); embedded data when empty")
	pf.String("theme", "", "terminal theme: classic, neon or mono")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.Flags().Bool("group", false, "group cards by status")
	root.Flags().Int("columns", 0, "cards per row")

	root.AddCommand(a.boardCmd(), a.summaryCmd(), a.htmlCmd(), a.tuiCmd(), a.validateCmd())
	return root
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"data":    "data.path",
	"theme":   "board.theme",
	"group":   "board.group",
	"columns": "board.columns",
	"watch":   "tui.watch",
}

// setup loads configuration and builds the logger before any command.
// Flags only win over config and env when they were set explicitly.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = a.v.BindPFlag(key, f)
		}
	}

	if err := config.Init(a.v, a.cfgFile); err != nil {
		return usageError{err}
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return usageError{err}
	}
	a.cfg = cfg

	if cmd.Name() == "tui" && cfg.Log.File == "" {
		// the TUI owns the terminal; only log to a file
		return nil
	}
	log, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File, Verbose: a.verbose})
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug("config loaded", zap.String("file", a.v.ConfigFileUsed()), zap.String("data", cfg.Data.Path))
	return nil
}

// load reads the collection once and builds the board.
func (a *app) load() (tracker.Board, error) {
	snap, err := store.Load(a.cfg.Data.Path)
	if err != nil {
		a.log.Debug("load failed", zap.Error(err))
		return tracker.Board{}, err
	}
	a.log.Debug("challenges loaded", zap.String("source", snap.Source()), zap.Int("challenges", snap.Len()))
	b, err := tracker.Build(snap)
	if err != nil {
		a.log.Debug("build failed", zap.Error(err))
		return tracker.Board{}, err
	}
	a.log.Debug("board built",
		zap.Int("done", b.Counts.Done),
		zap.Int("pending", b.Counts.Pending),
		zap.Int("missed", b.Counts.Missed))
	return b, nil
}

func (a *app) renderer() ui.Renderer {
	theme, _ := ui.ThemeByName(a.cfg.Board.Theme)
	return ui.Renderer{
		Theme: theme,
		Page:  a.cfg.UIPage(),
		Options: ui.Options{
			Columns: a.cfg.Board.Columns,
			Group:   a.cfg.Board.Group,
		},
	}
}
