// Package store reads the challenge collection once at startup.
// Documents look like {"challenges": [{"id", "title", "text", "status"}]}
// and are validated completely before a snapshot is handed out.
package store

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Makepad-fr/pbc30/internal/model"
)

// EmbeddedSource names the built-in data set.
const EmbeddedSource = "embedded"

//go:embed data/challenges.json
var embedded []byte

// Format selects the document decoder.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFor picks the decoder from a file extension. Unknown extensions
// are read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// LoadError describes why a document was refused. Err is one of the
// model sentinels.
type LoadError struct {
	Source string
	Index  int    // record index, -1 for document-level problems
	Field  string // offending field, if any
	Detail string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString(e.Source)
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Index >= 0 {
		fmt.Fprintf(&b, ": challenge[%d]", e.Index)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ".%s", e.Field)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads the collection at path, or the embedded data set when path
// is empty. A missing file is malformed input, not an empty board.
func Load(path string) (model.Snapshot, error) {
	if path == "" {
		return Decode(embedded, FormatJSON, EmbeddedSource)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Snapshot{}, &LoadError{Source: path, Index: -1, Detail: "file not found", Err: model.ErrMalformedInput}
		}
		return model.Snapshot{}, fmt.Errorf("read file: %w", err)
	}
	return Decode(b, FormatFor(path), path)
}

// Decode parses and validates a document. Any invalid record rejects the
// whole document.
func Decode(b []byte, f Format, source string) (model.Snapshot, error) {
	var doc document
	var err error
	switch f {
	case FormatYAML:
		err = decodeYAML(b, &doc)
	default:
		err = decodeJSON(b, &doc)
	}
	if err != nil {
		return model.Snapshot{}, &LoadError{Source: source, Index: -1, Detail: err.Error(), Err: model.ErrMalformedInput}
	}
	challenges, err := doc.validate(source)
	if err != nil {
		return model.Snapshot{}, err
	}
	return model.NewSnapshot(source, time.Now(), challenges), nil
}

type record struct {
	ID     *int    `json:"id" yaml:"id"`
	Title  *string `json:"title" yaml:"title"`
	Text   *string `json:"text" yaml:"text"`
	Status *string `json:"status" yaml:"status"`
}

type document struct {
	Challenges *[]*record `json:"challenges" yaml:"challenges"`
}

func (d document) validate(source string) ([]model.Challenge, error) {
	if d.Challenges == nil {
		return nil, &LoadError{Source: source, Index: -1, Field: "challenges", Detail: "missing", Err: model.ErrMalformedInput}
	}
	recs := *d.Challenges
	out := make([]model.Challenge, 0, len(recs))
	seen := make(map[int]int, len(recs))
	for i, r := range recs {
		malformed := func(field, detail string) error {
			return &LoadError{Source: source, Index: i, Field: field, Detail: detail, Err: model.ErrMalformedInput}
		}
		switch {
		case r == nil:
			return nil, malformed("", "null record")
		case r.ID == nil:
			return nil, malformed("id", "missing")
		case r.Title == nil:
			return nil, malformed("title", "missing")
		case r.Text == nil:
			return nil, malformed("text", "missing")
		case r.Status == nil:
			return nil, malformed("status", "missing")
		case *r.ID < 0:
			return nil, malformed("id", fmt.Sprintf("negative id %d", *r.ID))
		}
		status, err := model.ParseStatus(*r.Status)
		if err != nil {
			return nil, &LoadError{Source: source, Index: i, Field: "status", Detail: fmt.Sprintf("%q", *r.Status), Err: model.ErrInvalidStatus}
		}
		if first, dup := seen[*r.ID]; dup {
			return nil, &LoadError{Source: source, Index: i, Field: "id", Detail: fmt.Sprintf("id %d already used by challenge[%d]", *r.ID, first), Err: model.ErrDuplicateID}
		}
		seen[*r.ID] = i
		out = append(out, model.Challenge{ID: *r.ID, Title: *r.Title, Text: *r.Text, Status: status})
	}
	return out, nil
}
