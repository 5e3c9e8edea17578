package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/displayconf/internal/config"
	"github.com/1broseidon/displayconf/internal/monitor"
	"github.com/1broseidon/displayconf/internal/platform"
)

type fakeBackend struct {
	monitor.List
	closed bool
}

func (f *fakeBackend) Monitors() ([]monitor.Handle, error) { return f.List, nil }
func (f *fakeBackend) Close()                              { f.closed = true }

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := a.rootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "display.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestPrintDefaults(t *testing.T) {
	out, err := run(t, newApp(), "print", "--defaults")
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	cfg, err := config.Decode([]byte(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if cfg != config.DefaultDisplayConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	good := writeConfig(t, "title: ok\n")
	out, err := run(t, newApp(), "validate", "--config", good)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.HasPrefix(out, "OK: ") {
		t.Fatalf("expected OK, got %q", out)
	}

	bad := writeConfig(t, "dimensions: big\n")
	_, err = run(t, newApp(), "validate", "--config", bad)
	var serr *config.SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("expected schema error, got %v", err)
	}

	unknown := writeConfig(t, "vsync: true\n")
	if _, err := run(t, newApp(), "validate", "--config", unknown); err != nil {
		t.Fatalf("expected lenient validate to pass, got %v", err)
	}
	if _, err := run(t, newApp(), "validate", "--strict", "--config", unknown); err == nil {
		t.Fatalf("expected strict validate to fail")
	}
}

func TestValidate_ConfigFromEnv(t *testing.T) {
	bad := writeConfig(t, "visibility: [1]\n")
	t.Setenv("DISPLAYCONF_CONFIG", bad)
	if _, err := run(t, newApp(), "validate"); err == nil {
		t.Fatalf("expected config from env to be validated")
	}
}

func TestExplain(t *testing.T) {
	path := writeConfig(t, "dimensions: [640, 480]\n")
	out, err := run(t, newApp(), "explain", "dimensions", "--config", path)
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if !strings.HasPrefix(out, "dimensions = [640, 480] (") || !strings.Contains(out, ":1:") {
		t.Fatalf("unexpected explain output %q", out)
	}

	out, err = run(t, newApp(), "explain", "title", "--config", path)
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if out != "title = Amethyst game (default)\n" {
		t.Fatalf("unexpected explain output %q", out)
	}
}

func TestBuilder_WithoutFullscreenSkipsBackend(t *testing.T) {
	a := newApp()
	a.openBackend = func(string, *slog.Logger) (platform.Backend, error) {
		t.Fatalf("backend should not be opened")
		return nil, nil
	}
	path := writeConfig(t, "title: X\nresizable: false\n")
	out, err := run(t, a, "builder", "--config", path)
	if err != nil {
		t.Fatalf("builder: %v", err)
	}
	if !strings.Contains(out, "title: X") || !strings.Contains(out, "resizable: false") {
		t.Fatalf("unexpected builder output:\n%s", out)
	}
}

func TestBuilder_FullscreenResolvesAgainstBackend(t *testing.T) {
	backend := &fakeBackend{List: monitor.List{{Index: 0, Name: "eDP-1"}, {Index: 1, Name: "HDMI-1"}}}
	a := newApp()
	a.openBackend = func(string, *slog.Logger) (platform.Backend, error) { return backend, nil }

	path := writeConfig(t, "fullscreen: HDMI-1\n")
	out, err := run(t, a, "builder", "--json", "--config", path)
	if err != nil {
		t.Fatalf("builder: %v", err)
	}
	if !strings.Contains(out, `"name": "HDMI-1"`) {
		t.Fatalf("expected HDMI-1 fullscreen, got:\n%s", out)
	}
	if !backend.closed {
		t.Fatalf("expected backend to be closed")
	}

	missing := writeConfig(t, "fullscreen: 5\n")
	_, err = run(t, a, "builder", "--config", missing)
	if !errors.Is(err, monitor.ErrNotFound) {
		t.Fatalf("expected resolution error, got %v", err)
	}
}

func TestMonitors(t *testing.T) {
	backend := &fakeBackend{List: monitor.List{
		{Index: 0, Name: "eDP-1", Width: 1920, Height: 1080},
		{Index: 1, Name: "HDMI-1", X: 1920, Width: 2560, Height: 1440, Primary: true},
	}}
	a := newApp()
	a.openBackend = func(string, *slog.Logger) (platform.Backend, error) { return backend, nil }

	out, err := run(t, a, "monitors")
	if err != nil {
		t.Fatalf("monitors: %v", err)
	}
	if !strings.Contains(out, "2560x1440+1920+0 *") {
		t.Fatalf("expected primary geometry, got:\n%s", out)
	}
	if !strings.Contains(out, "fullscreen: {index: 1, name: HDMI-1}") {
		t.Fatalf("expected primary hint, got:\n%s", out)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "display.yaml")
	if _, err := run(t, newApp(), "init", "--config", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	res, err := config.LoadFromPath(path, config.LoadOptions{Strict: true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config != config.DefaultDisplayConfig() {
		t.Fatalf("expected defaults, got %+v", res.Config)
	}

	if _, err := run(t, newApp(), "init", "--config", path); err == nil {
		t.Fatalf("expected init to refuse to overwrite")
	}
	if _, err := run(t, newApp(), "init", "--force", "--config", path); err != nil {
		t.Fatalf("init --force: %v", err)
	}
}

func TestInit_StatFailureDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("keep"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := run(t, newApp(), "init", "--config", filepath.Join(blocker, "display.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to check") {
		t.Fatalf("expected stat error, got %v", err)
	}
	data, err := os.ReadFile(blocker)
	if err != nil || string(data) != "keep" {
		t.Fatalf("expected blocker untouched, got %q (%v)", data, err)
	}
}

func TestEdit_RequiresTerminal(t *testing.T) {
	backend := &fakeBackend{List: monitor.List{{Index: 0, Name: "eDP-1"}}}
	a := newApp()
	a.openBackend = func(string, *slog.Logger) (platform.Backend, error) { return backend, nil }

	path := writeConfig(t, "title: ok\n")
	_, err := run(t, a, "edit", "--config", path)
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Fatalf("expected terminal error, got %v", err)
	}
	if !backend.closed {
		t.Fatalf("expected backend to be closed")
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := newLogger(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatalf("expected invalid level error")
	}
	logger, err := newLogger(&bytes.Buffer{}, "debug")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger")
	}
}
