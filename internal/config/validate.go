package config

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/Makepad-fr/pbc30/internal/ui"
)

// ValidationError names one invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

// Validate checks every field and returns all problems found.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if c.Board.Columns < 1 || c.Board.Columns > 12 {
		errs = append(errs, ValidationError{"board.columns", c.Board.Columns, "must be between 1 and 12"})
	}
	if !slices.Contains(ui.Themes(), strings.ToLower(c.Board.Theme)) {
		errs = append(errs, ValidationError{"board.theme", c.Board.Theme, "must be one of " + strings.Join(ui.Themes(), ", ")})
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, ValidationError{"log.level", c.Log.Level, "must be debug, info, warn or error"})
	}
	if strings.TrimSpace(c.Page.Title) == "" {
		errs = append(errs, ValidationError{"page.title", c.Page.Title, "must not be empty"})
	}
	return errs
}
