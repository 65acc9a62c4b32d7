package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/cards/internal/model"
	"github.com/Makepad-fr/cards/internal/state"
)

const seedJSON = `[
  {"id": 1, "label": "First", "description": "# First card\n\nHello **there**.", "options": {"a": false, "b": false}},
  {"id": 2, "label": "Second", "options": {"a": false, "b": true}}
]`

type env struct {
	t   *testing.T
	dir string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CARDS_CONFIG", filepath.Join(dir, "config.yaml"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seed.json"), []byte(seedJSON), 0o644))
	return &env{t: t, dir: dir}
}

// run executes the root command with deterministic output flags appended.
func (e *env) run(args ...string) (string, error) {
	e.t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args,
		"--no-color",
		"--theme", "mono",
		"--seed-file", filepath.Join(e.dir, "seed.json"),
		"--log-file", filepath.Join(e.dir, "cards.log"),
	))
	err := cmd.Execute()
	return out.String(), err
}

func (e *env) appState(args ...string) state.AppState {
	e.t.Helper()
	out, err := e.run(append(args, "--json")...)
	require.NoError(e.t, err, out)
	var app state.AppState
	require.NoError(e.t, json.Unmarshal([]byte(out), &app), out)
	return app
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in      string
		want    state.Action
		wantErr bool
	}{
		{in: "add", want: state.Action{Type: state.AddItem}},
		{in: "ADD_ITEM", want: state.Action{Type: state.AddItem}},
		{in: "rm", want: state.Action{Type: state.RemoveItem}},
		{in: "remove", want: state.Action{Type: state.RemoveItem}},
		{in: "reverse", want: state.Action{Type: state.ReverseList}},
		{in: "reset", want: state.Action{Type: state.ResetData}},
		{in: "toggle:1:a", want: state.Toggle("1", "a")},
		{in: "toggle:x:key:with:colons", want: state.Toggle("x", "key:with:colons")},
		{in: "toggle:1", wantErr: true},
		{in: "toggle::a", wantErr: true},
		{in: "SET_INITIAL_DATA", wantErr: true},
		{in: "explode", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAction(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, 2, ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListPlain(t *testing.T) {
	e := newEnv(t)

	out, err := e.run("ls")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "+"), out)
	assert.Contains(t, out, "Cards  x 1  - 1  Total 2   Reverse (off)")
	assert.Contains(t, out, " 1. - First #1")
	assert.Contains(t, out, " 2. x Second #2")
	assert.Contains(t, out, "[x] b")
	assert.Contains(t, out, "1/4")
}

func TestListGroup(t *testing.T) {
	e := newEnv(t)

	out, err := e.run("ls", "--group")
	require.NoError(t, err)

	active := strings.Index(out, "Active")
	idle := strings.Index(out, "Clear")
	second := strings.Index(out, "Second")
	first := strings.Index(out, "First")
	require.True(t, active >= 0 && idle >= 0)
	assert.Less(t, active, second)
	assert.Less(t, second, idle)
	assert.Less(t, idle, first)
}

func TestRunToggleThenReset(t *testing.T) {
	e := newEnv(t)

	app := e.appState("run", "toggle:1:a")
	require.Len(t, app.Items, 2)
	assert.Equal(t, "{a:true b:false}", app.Items[0].Options.String())

	app = e.appState("run", "toggle:1:a", "reset")
	assert.Equal(t, "{a:false b:false}", app.Items[0].Options.String())
	assert.Equal(t, "{a:false b:false}", app.Items[1].Options.String())
}

func TestRunReverseAndReset(t *testing.T) {
	e := newEnv(t)

	app := e.appState("run", "reverse")
	assert.True(t, app.IsReversed)
	assert.Equal(t, []model.ID{"2", "1"}, app.ItemIDs)

	app = e.appState("run", "reverse", "reset")
	assert.False(t, app.IsReversed)
	assert.Equal(t, []model.ID{"1", "2"}, app.ItemIDs)
}

func TestRunRemoveThenAddUsesFreshID(t *testing.T) {
	e := newEnv(t)

	app := e.appState("run", "rm", "add")

	assert.Equal(t, []model.ID{"1", "3"}, app.ItemIDs)
	assert.Equal(t, []string{"a", "b"}, app.Items[1].Options.Keys())
	assert.Equal(t, 0, app.Items[1].Options.CountSet())
}

func TestRunRemoveOnEmpty(t *testing.T) {
	e := newEnv(t)

	app := e.appState("run", "rm", "rm", "rm")
	assert.Empty(t, app.ItemIDs)
}

func TestRunUnknownToggleIsNoop(t *testing.T) {
	e := newEnv(t)

	app := e.appState("run", "toggle:9:a", "toggle:1:zzz")
	assert.Equal(t, "{a:false b:false}", app.Items[0].Options.String())
}

func TestRunUsageErrors(t *testing.T) {
	e := newEnv(t)

	_, err := e.run("run")
	assert.Equal(t, 2, ExitCode(err))

	_, err = e.run("run", "explode")
	assert.Equal(t, 2, ExitCode(err))

	_, err = e.run("ls", "--bogus")
	assert.Equal(t, 2, ExitCode(err))

	_, err = e.run("ls", "--ids", "snowflake")
	assert.Equal(t, 2, ExitCode(err))
}

func TestShow(t *testing.T) {
	e := newEnv(t)

	out, err := e.run("show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "First")
	assert.Contains(t, out, "First card")
	assert.Contains(t, out, "[ ] a")

	_, err = e.run("show", "404")
	assert.Equal(t, 2, ExitCode(err))

	_, err = e.run("show")
	assert.Equal(t, 2, ExitCode(err))
}

func TestMissingSeedFile(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.Remove(filepath.Join(e.dir, "seed.json")))

	_, err := e.run("ls")
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, err.Error(), "load seed")
}

func TestConfigInitAndPath(t *testing.T) {
	e := newEnv(t)
	p := filepath.Join(e.dir, "config.yaml")

	out, err := e.run("config", "path")
	require.NoError(t, err)
	assert.Equal(t, p, strings.TrimSpace(out))

	out, err = e.run("config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+p)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "theme: mono")

	_, err = e.run("config", "init")
	assert.Equal(t, 2, ExitCode(err))

	_, err = e.run("config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigFileFeedsFakeSeed(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("seed:\n  count: 3\n  options: [x, y, z]\nids: uuid\n"), 0o644))
	t.Setenv("CARDS_CONFIG", cfgPath)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run", "add", "--json", "--log-file", filepath.Join(dir, "cards.log")})
	require.NoError(t, cmd.Execute())

	var app state.AppState
	require.NoError(t, json.Unmarshal(out.Bytes(), &app))
	require.Len(t, app.ItemIDs, 4)
	assert.Len(t, string(app.ItemIDs[3]), 36)
	assert.Equal(t, []string{"x", "y", "z"}, app.Items[0].Options.Keys())
}
