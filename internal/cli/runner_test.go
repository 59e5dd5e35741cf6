package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioA = `{"challenges":[
	{"id":0,"title":"Launch","text":"","status":"done"},
	{"id":1,"title":"Post","text":"","status":"pending"},
	{"id":7,"title":"Record","text":"","status":"missed"}
]}`

// isolate keeps user config files and PBC30_* variables out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	for _, kv := range os.Environ() {
		if k, _, _ := strings.Cut(kv, "="); strings.HasPrefix(k, "PBC30_") {
			t.Setenv(k, "")
			os.Unsetenv(k)
		}
	}
	return dir
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = RunWith(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestBoardEmbedded(t *testing.T) {
	isolate(t)
	code, out, _ := run(t, "--theme", "mono")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Done: 10")
	assert.Contains(t, out, "Pending: 18")
	assert.Contains(t, out, "Missed: 2")
	assert.Contains(t, out, "#PBC30 - Personal Brand Building Challenge")
	assert.Contains(t, out, "#30")
}

func TestBoardScenarioA(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "challenges.json", scenarioA)

	code, out, _ := run(t, "board", "--data", p, "--theme", "mono", "--columns", "3")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Launch")
	assert.Contains(t, out, "Record")
	assert.NotContains(t, out, "Post")
}

func TestSummaryJSON(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "challenges.json", scenarioA)

	code, out, _ := run(t, "summary", "--json", "--data", p)
	require.Equal(t, ExitOK, code)

	var got map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]int{"pending": 1, "done": 1, "missed": 1, "total": 3}, got)
}

func TestSummaryEmpty(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "empty.yaml", "challenges: []\n")

	code, out, _ := run(t, "summary", "--data", p, "--theme", "mono")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "* Done: 0    * Pending: 0    * Missed: 0\n", out)
}

func TestInvalidStatusRejectsLoad(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "challenges.json", `{"challenges":[
		{"id":1,"title":"a","text":"","status":"done"},
		{"id":2,"title":"b","text":"","status":"skipped"}
	]}`)

	code, out, errOut := run(t, "board", "--data", p, "--theme", "mono")
	assert.Equal(t, ExitError, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Could not load challenges")
	assert.Contains(t, errOut, "invalid status")

	code, _, errOut = run(t, "validate", "--data", p)
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, `challenge[1].status: "skipped"`)
}

func TestValidateOK(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "challenges.json", scenarioA)

	code, out, _ := run(t, "validate", "--data", p)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "3 challenges ok")
}

func TestHTMLToFile(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "challenges.json", scenarioA)
	page := filepath.Join(dir, "index.html")

	code, _, errOut := run(t, "html", "--data", p, "-o", page)
	require.Equal(t, ExitOK, code, errOut)

	b, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Contains(t, string(b), `id="challenge-7"`)
	assert.Contains(t, string(b), "Missed: 1")
}

func TestHTMLErrorPage(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "challenges.json", `{"challenges":[{"id":1,"title":"a","text":"","status":"done"},{"id":1,"title":"b","text":"","status":"done"}]}`)

	code, out, _ := run(t, "html", "--data", p)
	assert.Equal(t, ExitError, code)
	assert.Contains(t, out, "Could not load challenges")
	assert.Contains(t, out, "duplicate id")
	assert.NotContains(t, out, `class="note`)
}

func TestConfigFile(t *testing.T) {
	dir := isolate(t)
	data := writeFile(t, dir, "challenges.json", scenarioA)
	cfg := writeFile(t, dir, "pbc30.yaml", "data:\n  path: "+data+"\nboard:\n  theme: mono\npage:\n  title: Someone\n")

	code, out, _ := run(t, "--config", cfg)
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Someone")
	assert.Contains(t, out, "Launch")
}

func TestUsageErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"frobnicate"}},
		{"unknown flag", []string{"board", "--nope"}},
		{"extra argument", []string{"summary", "extra"}},
		{"bad theme", []string{"board", "--theme", "sparkly"}},
		{"bad columns", []string{"board", "--columns", "99"}},
		{"missing config", []string{"--config", "/does/not/exist.yaml"}},
		{"watch without data", []string{"tui", "--watch"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, tt.args...)
			assert.Equal(t, ExitUsage, code)
			assert.Contains(t, errOut, "Usage:")
		})
	}
}

func TestIsolateClearsEnvironment(t *testing.T) {
	t.Setenv("PBC30_BOARD_GROUP", "true")
	t.Setenv("PBC30_PAGE_TITLE", "Leaked")
	isolate(t)

	code, out, _ := run(t, "--theme", "mono")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Mert Bozkir")
	assert.NotContains(t, out, "Leaked")
}

func TestLogSyncedOnLoadFailure(t *testing.T) {
	dir := isolate(t)
	p := writeFile(t, dir, "challenges.json", `{"challenges":[{"id":1,"title":"a","text":"","status":"skipped"}]}`)
	logFile := filepath.Join(dir, "pbc30.log")
	t.Setenv("PBC30_LOG_FILE", logFile)

	code, _, _ := run(t, "board", "--data", p, "--verbose")
	require.Equal(t, ExitError, code)

	b, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"load failed"`)
}

func TestHTMLWriteFailureIsReported(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("needs /dev/full")
	}
	dir := isolate(t)
	p := writeFile(t, dir, "challenges.json", scenarioA)

	code, _, errOut := run(t, "html", "--data", p, "-o", "/dev/full")
	assert.Equal(t, ExitError, code)
	assert.NotContains(t, errOut, "wrote")
}
