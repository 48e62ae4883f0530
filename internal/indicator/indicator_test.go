package indicator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rbright/windowcaster/internal/config"
	"github.com/rbright/windowcaster/internal/fsm"
	"github.com/stretchr/testify/require"
)

func TestNotifierHyprLifecycle(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "hypr-args.log")
	t.Setenv("HYPR_ARGS_FILE", argsFile)
	installStub(t, "hyprctl", `printf '%s\n' "$*" >> "${HYPR_ARGS_FILE}"`)

	cfg := config.Default().Indicator
	cfg.Enable = true
	cfg.TimeoutMS = 1500

	notifier := New(cfg, nil)
	notifier.ClientConnected("10.0.0.2:5511")
	notifier.ClientEvicted("10.0.0.2:5511")
	notifier.ClientDisconnected("10.0.0.3:6000")
	notifier.StateChanged(fsm.StateRunning)
	notifier.StateChanged(fsm.StateStopped)
	notifier.Close()

	lines := readLines(t, argsFile)
	require.Equal(t, []string{
		"--quiet dispatch notify 5 1500 rgb(a6e3a1) Client connected: 10.0.0.2:5511",
		"--quiet dispatch notify 0 1500 rgb(f9e2af) Client evicted: 10.0.0.2:5511",
		"--quiet dispatch dismissnotify",
		"--quiet dispatch dismissnotify",
	}, lines)
}

func TestNotifierDisabledSkipsDispatch(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "hypr-args.log")
	t.Setenv("HYPR_ARGS_FILE", argsFile)
	installStub(t, "hyprctl", `printf '%s\n' "$*" >> "${HYPR_ARGS_FILE}"`)

	cfg := config.Default().Indicator
	cfg.Enable = false

	notifier := New(cfg, nil)
	notifier.ClientConnected("a")
	notifier.ClientEvicted("a")
	notifier.ClientDisconnected("a")
	notifier.StateChanged(fsm.StateStopped)
	notifier.Close()

	_, err := os.Stat(argsFile)
	require.True(t, os.IsNotExist(err))
}

func TestNotifierDesktopBackendReplacesAndDismisses(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "busctl-args.log")
	t.Setenv("BUSCTL_ARGS_FILE", argsFile)
	installStub(t, "busctl", `
printf '%s\n' "$*" >> "${BUSCTL_ARGS_FILE}"
if [[ "$*" == *" Notify "* ]]; then
  echo 'u 41'
fi
`)

	cfg := config.Default().Indicator
	cfg.Enable = true
	cfg.Backend = "desktop"
	cfg.TimeoutMS = 2000

	notifier := New(cfg, nil)
	notifier.ClientConnected("first")
	notifier.ClientEvicted("first")
	notifier.ClientDisconnected("second")
	notifier.ClientDisconnected("second")
	notifier.Close()

	lines := readLines(t, argsFile)
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "Notify susssasa{sv}i windowcaster 0  Client connected: first  0 0 2000")
	require.Contains(t, lines[1], "Notify susssasa{sv}i windowcaster 41  Client evicted: first  0 0 2000")
	require.Contains(t, lines[2], "CloseNotification u 41")
}

func TestNotifierPlaysCuesWhenSoundEnabled(t *testing.T) {
	cfg := config.Default().Indicator
	cfg.SoundEnable = true

	var mu sync.Mutex
	var played []cueKind
	notifier := New(cfg, nil)
	notifier.cue = func(_ context.Context, kind cueKind) error {
		mu.Lock()
		defer mu.Unlock()
		played = append(played, kind)
		return nil
	}

	notifier.ClientConnected("a")
	notifier.ClientEvicted("a")
	notifier.ClientDisconnected("b")
	notifier.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []cueKind{cueConnect, cueEvict, cueDisconnect}, played)
}

func TestNotifierCloseIsIdempotentAndDropsLateEvents(t *testing.T) {
	cfg := config.Default().Indicator
	cfg.SoundEnable = true

	calls := 0
	notifier := New(cfg, nil)
	notifier.cue = func(context.Context, cueKind) error {
		calls++
		return nil
	}
	notifier.Close()
	notifier.Close()
	notifier.ClientConnected("late")
	require.Zero(t, calls)
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func installStub(t *testing.T, name string, body string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	script := "#!/usr/bin/env bash\nset -euo pipefail\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	t.Setenv("PATH", dir+":"+os.Getenv("PATH"))
}
