package cli

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/grocery/internal/config"
	"github.com/idilsaglam/grocery/internal/model"
	"github.com/idilsaglam/grocery/internal/store/session"
	"github.com/idilsaglam/grocery/internal/tui"
)

type env struct {
	t   *testing.T
	cfg *config.Config
	ui  int
}

func newEnv(t *testing.T) *env {
	return &env{t: t, cfg: &config.Config{
		Storage: config.StorageConfig{Backend: "file", Dir: t.TempDir()},
		Session: config.SessionConfig{ID: "test"},
		Log:     config.LogConfig{Level: "warn"},
		UI:      config.UIConfig{Theme: "mono", Locale: "en", Sort: "input"},
	}}
}

func (e *env) run(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = Run(args, Options{
		Config: e.cfg,
		Stdout: &out,
		Stderr: &errOut,
		runUI: func(tui.Model) error {
			e.ui++
			return nil
		},
	})
	return code, out.String(), errOut.String()
}

// stored reads the session list the way a fresh process would.
func (e *env) stored() []model.Item {
	kv := session.NewFileKV(session.Dir(e.cfg.Storage.Dir, e.cfg.Session.ID))
	return session.NewAdapter(kv, nil).Load()
}

func (e *env) idOf(name string) string {
	e.t.Helper()
	for _, it := range e.stored() {
		if it.Name == name {
			return strconv.FormatInt(it.ID, 10)
		}
	}
	e.t.Fatalf("no item named %q", name)
	return ""
}

func TestHelp(t *testing.T) {
	e := newEnv(t)
	code, out, _ := e.run("help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Subcommands:")

	code, _, _ = e.run()
	assert.Equal(t, 2, code)
}

func TestUnknownSubcommand(t *testing.T) {
	code, _, stderr := newEnv(t).run("fly")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown subcommand: fly")
}

func TestAdd(t *testing.T) {
	e := newEnv(t)
	code, out, _ := e.run("add", "-q", "5", "Brown", "Rice")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "added 5 Brown Rice")

	items := e.stored()
	require.Len(t, items, 1)
	assert.Equal(t, "Brown Rice", items[0].Name)
	assert.Equal(t, 5, items[0].Quantity)
	assert.False(t, items[0].Checked)
}

func TestAddDefaultsToOne(t *testing.T) {
	e := newEnv(t)
	code, _, _ := e.run("add", "Salt")
	require.Equal(t, 0, code)
	assert.Equal(t, 1, e.stored()[0].Quantity)
}

func TestAddRejects(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stderr string
	}{
		{"no name", []string{"add"}, "usage"},
		{"empty name", []string{"add", "  "}, "Please fill in the item name"},
		{"quantity too high", []string{"add", "-q", "11", "Rice"}, "between 1 and 10"},
		{"quantity zero", []string{"add", "-q", "0", "Rice"}, "between 1 and 10"},
		{"bad flag", []string{"add", "-z", "Rice"}, "flag provided but not defined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			code, _, stderr := e.run(tt.args...)
			assert.Equal(t, 2, code)
			assert.Contains(t, stderr, tt.stderr)
			assert.Empty(t, e.stored())
		})
	}
}

func TestCheckAndRemove(t *testing.T) {
	e := newEnv(t)
	e.run("add", "-q", "5", "Rice")
	e.run("add", "Salt")

	code, out, _ := e.run("check", e.idOf("Salt"))
	require.Equal(t, 0, code)
	assert.Contains(t, out, "toggled")
	assert.True(t, e.stored()[1].Checked)

	code, out, _ = e.run("rm", e.idOf("Rice"))
	require.Equal(t, 0, code)
	assert.Contains(t, out, "removed")
	require.Len(t, e.stored(), 1)
	assert.Equal(t, "Salt", e.stored()[0].Name)
}

func TestUnknownIDIsSilentNoop(t *testing.T) {
	e := newEnv(t)
	e.run("add", "Rice")
	before := e.stored()

	for _, cmd := range []string{"check", "rm"} {
		code, out, stderr := e.run(cmd, "12345")
		assert.Equal(t, 0, code)
		assert.Empty(t, out)
		assert.Empty(t, stderr)
	}
	assert.Equal(t, before, e.stored())
}

func TestBadIDArgs(t *testing.T) {
	e := newEnv(t)
	code, _, stderr := e.run("check", "abc")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "not a number")

	code, _, _ = e.run("rm")
	assert.Equal(t, 2, code)
}

func TestList(t *testing.T) {
	e := newEnv(t)
	e.run("add", "salt")
	e.run("add", "Banana")
	e.run("add", "apple")
	e.run("check", e.idOf("apple"))

	code, out, _ := e.run("ls", "-sort", "name")
	require.Equal(t, 0, code)
	iApple, iBanana, iSalt := strings.Index(out, "apple"), strings.Index(out, "Banana"), strings.Index(out, "salt")
	assert.Less(t, iApple, iBanana)
	assert.Less(t, iBanana, iSalt)
	assert.Contains(t, out, "Sort by item name")
	assert.Contains(t, out, "3 item(s) in the list, 1 purchased (33%)")

	_, out, _ = e.run("ls", "-sort", "checked")
	assert.Contains(t, out, "apple")
	assert.NotContains(t, out, "Banana")

	code, _, stderr := e.run("ls", "-sort", "price")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown sort mode")
}

func TestListEmpty(t *testing.T) {
	_, out, _ := newEnv(t).run("ls")
	assert.Contains(t, out, "no items")
	assert.Contains(t, out, "0 item(s) in the list, 0 purchased (0%)")
}

func TestShoppingTrip(t *testing.T) {
	e := newEnv(t)
	stats := func() string {
		_, out, _ := e.run("stats")
		return strings.TrimSpace(out)
	}

	e.run("add", "-q", "5", "Rice")
	e.run("add", "-q", "1", "Salt")
	e.run("check", e.idOf("Salt"))
	assert.Equal(t, "2 item(s) in the list, 1 purchased (50%)", stats())

	e.run("rm", e.idOf("Rice"))
	assert.Equal(t, "1 item(s) in the list, 1 purchased (100%)", stats())

	code, out, _ := e.run("clear")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "cleared")
	assert.Equal(t, "0 item(s) in the list, 0 purchased (0%)", stats())
}

func TestSessionsAreSeparate(t *testing.T) {
	e := newEnv(t)
	e.run("add", "Rice")

	e.cfg.Session.ID = "other"
	assert.Empty(t, e.stored())
	_, out, _ := e.run("stats")
	assert.Contains(t, out, "0 item(s)")
}

func TestUI(t *testing.T) {
	e := newEnv(t)
	code, _, _ := e.run("ui")
	assert.Equal(t, 0, code)
	assert.Equal(t, 1, e.ui)
}
