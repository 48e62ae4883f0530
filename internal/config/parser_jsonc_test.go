package config

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeJSONCRemovesCommentsAndTrailingCommas(t *testing.T) {
	input := `
{
  // line comment
  "items": [
    "one", /* block comment */
    "two",
  ],
  "nested": {
    "enabled": true,
  },
}
`

	normalized, err := normalizeJSONC(input)
	require.NoError(t, err)
	require.NotContains(t, normalized, "//")
	require.NotContains(t, normalized, "/*")
	require.NotContains(t, normalized, ",]")
	require.NotContains(t, normalized, ",}")
}

func TestNormalizeJSONCRetainsCommentLikeTextInsideStrings(t *testing.T) {
	input := `{"value":"contains // and /* comment-like */ text",}`
	normalized, err := normalizeJSONC(input)
	require.NoError(t, err)
	require.Contains(t, normalized, "// and /* comment-like */")
}

func TestNormalizeJSONCUnterminatedBlockCommentFails(t *testing.T) {
	_, err := normalizeJSONC("{ /* unterminated ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unterminated block comment")
}

func TestEnsureSingleJSONValueRejectsExtraPayload(t *testing.T) {
	decoder := json.NewDecoder(strings.NewReader(`{"one":1}{"two":2}`))
	var payload map[string]any
	require.NoError(t, decoder.Decode(&payload))

	err := ensureSingleJSONValue(decoder)
	require.Error(t, err)
	require.Contains(t, err.Error(), "multiple JSON values")
}

func TestOffsetToLineCol(t *testing.T) {
	content := "line1\nline2\nline3"
	line, col := offsetToLineCol(content, 1)
	require.Equal(t, 1, line)
	require.Equal(t, 1, col)

	line, col = offsetToLineCol(content, 8)
	require.Equal(t, 2, line)
	require.Equal(t, 2, col)

	line, col = offsetToLineCol(content, 999)
	require.Equal(t, 3, line)
	require.Equal(t, 5, col)
}

func TestJSONCHandleUnmarshal(t *testing.T) {
	var h jsoncHandle
	require.NoError(t, h.UnmarshalJSON([]byte(`94540768`)))
	require.Equal(t, jsoncHandle(94540768), h)

	require.NoError(t, h.UnmarshalJSON([]byte(`"0x5a1d3e0"`)))
	require.Equal(t, jsoncHandle(0x5a1d3e0), h)

	require.NoError(t, h.UnmarshalJSON([]byte(`" 42 "`)))
	require.Equal(t, jsoncHandle(42), h)

	err := h.UnmarshalJSON([]byte(`"window"`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid window handle")

	err = h.UnmarshalJSON([]byte(`true`))
	require.Error(t, err)
}

func TestParseJSONCOverlaysSections(t *testing.T) {
	cfg, warnings, err := parseJSONC(`{
  // bind only on loopback
  "listen": {"host": " 127.0.0.1 ", "port": 23456},
  "protocol": {"max_frame_bytes": 1048576, "max_frame_pixels": 65536, "request_timeout_ms": 250},
  "client": {"addr": "10.0.0.5:23456"},
  "directory": {
    "backend": "STATIC",
    "windows": [
      {"handle": "0x10", "title": "Firefox", "class_name": "firefox"},
      {"handle": 17, "title": "kitty"},
    ],
  },
  "renderer": {"backend": "command", "command": "imv -"},
  "admin": {"http_addr": "127.0.0.1:9100"},
  "journal": {"enable": false},
  "log": {"level": " DEBUG "},
}`, Default())
	require.NoError(t, err)
	require.Empty(t, warnings)

	require.Equal(t, "127.0.0.1:23456", cfg.Listen.Addr())
	require.Equal(t, 1048576, cfg.Protocol.MaxFrameBytes)
	require.Equal(t, 65536, cfg.Protocol.MaxFramePixels)
	require.Equal(t, 4096, cfg.Protocol.ReadBufferBytes)
	require.Equal(t, int64(250), cfg.Protocol.RequestTimeout().Milliseconds())
	require.Equal(t, "10.0.0.5:23456", cfg.Client.Addr)
	require.Equal(t, "static", cfg.Directory.Backend)
	require.Equal(t, []StaticWindow{
		{Handle: 0x10, Title: "Firefox", ClassName: "firefox"},
		{Handle: 17, Title: "kitty"},
	}, cfg.Directory.Windows)
	require.Equal(t, []string{"imv", "-"}, cfg.Renderer.Command.Argv)
	require.Equal(t, "127.0.0.1:9100", cfg.Admin.HTTPAddr)
	require.Empty(t, cfg.Admin.GRPCAddr)
	require.False(t, cfg.Journal.Enable)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestParseJSONCRejectsInvalidCommandArgv(t *testing.T) {
	_, _, err := parseJSONC(`{"renderer":{"backend":"command","command":"unterminated ' quote"}}`, Default())
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid renderer.command")
}

func TestParseJSONCRejectsUnknownField(t *testing.T) {
	_, _, err := parseJSONC(`{"listen":{"hostname":"x"}}`, Default())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown field")
}

func TestParseJSONCTrimsIndicatorFields(t *testing.T) {
	cfg, _, err := parseJSONC(`{
  "indicator": {
    "enable": true,
    "backend": " desktop ",
    "desktop_app_name": "  windowcaster-indicator  ",
    "sound_enable": true,
    "sound_evict_file": " /tmp/evict.wav "
  }
}`, Default())
	require.NoError(t, err)
	require.True(t, cfg.Indicator.Enable)
	require.Equal(t, "desktop", cfg.Indicator.Backend)
	require.Equal(t, "windowcaster-indicator", cfg.Indicator.DesktopAppName)
	require.True(t, cfg.Indicator.SoundEnable)
	require.Equal(t, "/tmp/evict.wav", cfg.Indicator.SoundEvictFile)
}

func TestParseJSONCRejectsMultipleTopLevelValues(t *testing.T) {
	_, _, err := parseJSONC(`{"journal":{"enable":false}}{"journal":{"enable":true}}`, Default())
	require.Error(t, err)
	require.True(
		t,
		strings.Contains(err.Error(), "multiple JSON values") || strings.Contains(err.Error(), "unknown field"),
		"unexpected error: %v",
		err,
	)
}

func TestParseJSONCTypeErrorIncludesLocation(t *testing.T) {
	_, _, err := parseJSONC(`{
  "listen": {"port": "12345"}
}`, Default())
	require.Error(t, err)
	require.Contains(t, err.Error(), "line")
	require.Contains(t, err.Error(), "column")
}

func TestParseEmptyContentReturnsBase(t *testing.T) {
	cfg, warnings, err := Parse("  \n", Default())
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, Default(), cfg)
}
