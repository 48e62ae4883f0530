package hypr

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rbright/windowcaster/internal/wire"
)

const clientsJSON = `[
  {"address":"0x55d0c0ffee","mapped":true,"hidden":false,"class":" firefox ","title":" Mozilla Firefox ","pid":10,"size":[1280,720]},
  {"address":"0x1234","mapped":false,"hidden":false,"class":"kitty","title":"unmapped","pid":11},
  {"address":"0x5678","mapped":true,"hidden":true,"class":"kitty","title":"hidden","pid":12},
  {"address":"0x9abc","mapped":true,"hidden":false,"class":"bar","title":"  ","pid":13},
  {"address":"zzz","mapped":true,"hidden":false,"class":"bad","title":"bad address","pid":14},
  {"address":"0xa0","mapped":true,"hidden":false,"class":"kitty","title":"term","pid":15}
]`

func TestDirectoryEnumerateFiltersVisibleClients(t *testing.T) {
	installHyprctlStub(t, `
if [[ "${1:-}" == "-j" && "${2:-}" == "clients" ]]; then
  cat <<'JSON'
`+clientsJSON+`
JSON
  exit 0
fi
exit 1
`)

	entries, err := Directory{}.Enumerate(context.Background())
	require.NoError(t, err)
	require.Equal(t, []wire.WindowEntry{
		{Handle: 0x55d0c0ffee, Title: "Mozilla Firefox", ClassName: "firefox"},
		{Handle: 0xa0, Title: "term", ClassName: "kitty"},
	}, entries)

	require.True(t, Directory{}.IsValid(context.Background(), 0xa0))
	require.False(t, Directory{}.IsValid(context.Background(), 0x1234))
	require.False(t, Directory{}.IsValid(context.Background(), 0x5678))
}

func TestDirectoryQueryFailureIsInvalid(t *testing.T) {
	installHyprctlStub(t, `
echo 'no instance' >&2
exit 1
`)

	_, err := Directory{}.Enumerate(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no instance")
	require.False(t, Directory{}.IsValid(context.Background(), 1))
}

func TestQueryClientsRejectsMalformedJSON(t *testing.T) {
	installHyprctlStub(t, `echo '{not json'`)

	_, err := QueryClients(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode hyprctl clients json")
}

func TestClientHandle(t *testing.T) {
	handle, err := Client{Address: " 0xdeadbeef "}.Handle()
	require.NoError(t, err)
	require.Equal(t, uint64(0xdeadbeef), handle)

	_, err = Client{Address: ""}.Handle()
	require.Error(t, err)

	_, err = Client{Address: "0xnothex"}.Handle()
	require.Error(t, err)
}

func TestNotifyAndDismissUseHyprctlDispatch(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "hypr-args.log")
	t.Setenv("HYPR_ARGS_FILE", argsFile)
	installHyprctlStub(t, `
printf '%s\n' "$*" >> "${HYPR_ARGS_FILE}"
`)

	err := Notify(context.Background(), 1, 1200, "", "Client connected: 10.0.0.2")
	require.NoError(t, err)

	err = DismissNotify(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "--quiet dispatch notify 1 1200 rgb(89b4fa) Client connected: 10.0.0.2", lines[0])
	require.Equal(t, "--quiet dispatch dismissnotify", lines[1])
}

func TestNotifyReturnsCombinedOutputOnFailure(t *testing.T) {
	installHyprctlStub(t, `
echo 'boom from hyprctl' >&2
exit 1
`)

	err := Notify(context.Background(), 3, 1000, "rgb(f38ba8)", "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom from hyprctl")
}

func installHyprctlStub(t *testing.T, body string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "hyprctl")
	script := "#!/usr/bin/env bash\nset -euo pipefail\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	t.Setenv("PATH", dir+":"+os.Getenv("PATH"))
}
