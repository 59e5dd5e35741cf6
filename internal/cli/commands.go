package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/pbc30/internal/store"
	"github.com/Makepad-fr/pbc30/internal/tracker"
	"github.com/Makepad-fr/pbc30/internal/tui"
	"github.com/Makepad-fr/pbc30/internal/ui"
	"github.com/Makepad-fr/pbc30/internal/web"
)

func (a *app) boardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the summary strip and the card grid",
		Args:  noArgs,
		RunE:  a.runBoard,
	}
	cmd.Flags().Bool("group", false, "group cards by status")
	cmd.Flags().Int("columns", 0, "cards per row")
	return cmd
}

func (a *app) runBoard(cmd *cobra.Command, args []string) error {
	r := a.renderer()
	b, err := a.load()
	if err != nil {
		fmt.Fprintln(a.errOut, r.Error(err))
		return reportedError{err}
	}
	fmt.Fprintln(a.out, r.Board(b))
	return nil
}

func (a *app) summaryCmd() *cobra.Command {
	var summaryJSON bool
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print challenge counts by status",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.load()
			if err != nil {
				return err
			}
			if summaryJSON {
				return writeSummaryJSON(a.out, b.Counts)
			}
			fmt.Fprintln(a.out, a.renderer().Summary(b.Counts))
			return nil
		},
	}
	cmd.Flags().BoolVar(&summaryJSON, "json", false, "output counts as JSON")
	return cmd
}

func writeSummaryJSON(w io.Writer, c tracker.Counts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		tracker.Counts
		Total int `json:"total"`
	}{c, c.Total()})
}

func (a *app) htmlCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "html",
		Short: "Write the board as a static HTML page",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" || output == "-" {
				return a.writeHTML(a.out)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := a.writeHTML(f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", output, err)
			}
			a.log.Debug("page written", zap.String("path", output))
			ui.OK(a.errOut, "wrote "+output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// writeHTML renders the board, or the error page when loading fails.
func (a *app) writeHTML(w io.Writer) error {
	page := a.cfg.UIPage()
	b, loadErr := a.load()
	if loadErr != nil {
		if err := web.RenderError(w, page, loadErr); err != nil {
			return err
		}
		return loadErr
	}
	return web.Render(w, page, a.cfg.Board.Columns, b)
}

func (a *app) tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the board interactively",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.TUI.Watch && a.cfg.Data.Path == "" {
				return usageErrorf("--watch needs a data file (--data)")
			}
			return tui.Run(cmd.Context(), tui.Options{
				Renderer: a.renderer(),
				Path:     a.cfg.Data.Path,
				Watch:    a.cfg.TUI.Watch,
				Load:     store.Load,
				Log:      a.log,
			})
		},
	}
	cmd.Flags().Bool("watch", false, "reload when the data file changes")
	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the challenge file without rendering it",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := store.Load(a.cfg.Data.Path)
			if err != nil {
				return err
			}
			if _, err := tracker.Build(snap); err != nil {
				return err
			}
			ui.OK(a.out, fmt.Sprintf("%d challenges ok (%s)", snap.Len(), snap.Source()))
			return nil
		},
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("%s takes no arguments, got %q", cmd.Name(), args)
	}
	return nil
}
