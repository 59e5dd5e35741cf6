package web

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/pbc30/internal/model"
	"github.com/Makepad-fr/pbc30/internal/tracker"
	"github.com/Makepad-fr/pbc30/internal/ui"
)

var page = ui.Page{
	Title:     "Mert Bozkir",
	TitleURL:  "https://www.instagram.com/mert_xai",
	Subtitle:  "#PBC30 - Personal Brand Building Challenge",
	Credit:    "Jim Tang",
	CreditURL: "https://www.instagram.com/jimruitang",
}

func render(t *testing.T, challenges []model.Challenge) string {
	t.Helper()
	b, err := tracker.Build(model.NewSnapshot("test", time.Time{}, challenges))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, page, 6, b))
	return buf.String()
}

func TestRenderScenarioA(t *testing.T) {
	out := render(t, []model.Challenge{
		{ID: 0, Title: "Launch", Status: model.StatusDone},
		{ID: 1, Title: "Post", Status: model.StatusPending},
		{ID: 7, Title: "Record", Status: model.StatusMissed},
	})

	assert.Contains(t, out, "Done: 1")
	assert.Contains(t, out, "Pending: 1")
	assert.Contains(t, out, "Missed: 1")

	assert.Contains(t, out, `<div class="note rotate-1" id="challenge-0" data-status="done">`)
	assert.Contains(t, out, `<div class="note -rotate-1" id="challenge-1" data-status="pending">`)
	assert.Contains(t, out, `<div class="note rotate-2" id="challenge-7" data-status="missed">`)
	assert.Contains(t, out, `<h3 class="text-green">Launch</h3>`)
	assert.Contains(t, out, `<h3 class="text-gray"></h3>`)
	assert.Contains(t, out, `<h3 class="text-red">Record</h3>`)
	assert.NotContains(t, out, "Post</h3>")
	assert.Contains(t, out, `aria-label="cross"`)

	assert.Less(t, strings.Index(out, "challenge-0"), strings.Index(out, "challenge-1"))
	assert.Less(t, strings.Index(out, "challenge-1"), strings.Index(out, "challenge-7"))
}

func TestRenderEscapesTitles(t *testing.T) {
	out := render(t, []model.Challenge{
		{ID: 3, Title: "<script>alert(1)</script>", Status: model.StatusDone},
	})
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderEmpty(t *testing.T) {
	out := render(t, nil)
	assert.Contains(t, out, "Done: 0")
	assert.Contains(t, out, "Pending: 0")
	assert.Contains(t, out, "Missed: 0")
	assert.NotContains(t, out, `class="note`)
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderError(&buf, page, errors.New("data.json: invalid status")))
	out := buf.String()

	assert.Contains(t, out, "Could not load challenges")
	assert.Contains(t, out, "data.json: invalid status")
	assert.NotContains(t, out, `id="summary"`)
	assert.NotContains(t, out, `class="note`)
}

func TestRenderChrome(t *testing.T) {
	out := render(t, nil)
	assert.Contains(t, out, `href="https://www.instagram.com/mert_xai"`)
	assert.Contains(t, out, "#PBC30 - Personal Brand Building Challenge")
	assert.Contains(t, out, "Inspired by")
	assert.Contains(t, out, "repeat(6, 1fr)")
}
