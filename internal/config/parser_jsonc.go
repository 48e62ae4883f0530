package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type jsoncConfig struct {
	Listen    *jsoncListen    `json:"listen"`
	Protocol  *jsoncProtocol  `json:"protocol"`
	Client    *jsoncClient    `json:"client"`
	Directory *jsoncDirectory `json:"directory"`
	Renderer  *jsoncRenderer  `json:"renderer"`
	Indicator *jsoncIndicator `json:"indicator"`
	Admin     *jsoncAdmin     `json:"admin"`
	Journal   *jsoncJournal   `json:"journal"`
	Log       *jsoncLog       `json:"log"`
}

type jsoncListen struct {
	Host *string `json:"host"`
	Port *int    `json:"port"`
}

type jsoncProtocol struct {
	MaxFrameBytes    *int `json:"max_frame_bytes"`
	MaxFramePixels   *int `json:"max_frame_pixels"`
	ReadBufferBytes  *int `json:"read_buffer_bytes"`
	RequestTimeoutMS *int `json:"request_timeout_ms"`
}

type jsoncClient struct {
	Addr           *string `json:"addr"`
	DialTimeoutMS  *int    `json:"dial_timeout_ms"`
	ReplyTimeoutMS *int    `json:"reply_timeout_ms"`
}

type jsoncDirectory struct {
	Backend *string       `json:"backend"`
	Windows []jsoncWindow `json:"windows"`
}

type jsoncWindow struct {
	Handle    jsoncHandle `json:"handle"`
	Title     string      `json:"title"`
	ClassName string      `json:"class_name"`
}

type jsoncRenderer struct {
	Backend   *string `json:"backend"`
	OutputDir *string `json:"output_dir"`
	Command   *string `json:"command"`
}

type jsoncIndicator struct {
	Enable              *bool   `json:"enable"`
	Backend             *string `json:"backend"`
	DesktopAppName      *string `json:"desktop_app_name"`
	TimeoutMS           *int    `json:"timeout_ms"`
	SoundEnable         *bool   `json:"sound_enable"`
	SoundConnectFile    *string `json:"sound_connect_file"`
	SoundEvictFile      *string `json:"sound_evict_file"`
	SoundDisconnectFile *string `json:"sound_disconnect_file"`
}

type jsoncAdmin struct {
	HTTPAddr *string `json:"http_addr"`
	GRPCAddr *string `json:"grpc_addr"`
}

type jsoncJournal struct {
	Enable *bool   `json:"enable"`
	Path   *string `json:"path"`
}

type jsoncLog struct {
	Level *string `json:"level"`
}

// jsoncHandle accepts a JSON number or a string such as "0x5a1d3e0".
type jsoncHandle uint64

func (h *jsoncHandle) UnmarshalJSON(data []byte) error {
	var number uint64
	if err := json.Unmarshal(data, &number); err == nil {
		*h = jsoncHandle(number)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("expected window handle number or string")
	}
	parsed, err := strconv.ParseUint(strings.TrimSpace(text), 0, 64)
	if err != nil {
		return fmt.Errorf("invalid window handle %q", text)
	}
	*h = jsoncHandle(parsed)
	return nil
}

func parseJSONC(content string, base Config) (Config, []Warning, error) {
	normalized, err := normalizeJSONC(content)
	if err != nil {
		return Config{}, nil, err
	}

	decoder := json.NewDecoder(strings.NewReader(normalized))
	decoder.DisallowUnknownFields()

	var payload jsoncConfig
	if err := decoder.Decode(&payload); err != nil {
		return Config{}, nil, wrapJSONDecodeError(normalized, err)
	}
	if err := ensureSingleJSONValue(decoder); err != nil {
		return Config{}, nil, wrapJSONDecodeError(normalized, err)
	}

	cfg := base
	if err := payload.applyTo(&cfg); err != nil {
		return Config{}, nil, err
	}

	warnings, err := Validate(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, warnings, nil
}

func (payload jsoncConfig) applyTo(cfg *Config) error {
	if payload.Listen != nil {
		if payload.Listen.Host != nil {
			cfg.Listen.Host = strings.TrimSpace(*payload.Listen.Host)
		}
		if payload.Listen.Port != nil {
			cfg.Listen.Port = *payload.Listen.Port
		}
	}

	if payload.Protocol != nil {
		if payload.Protocol.MaxFrameBytes != nil {
			cfg.Protocol.MaxFrameBytes = *payload.Protocol.MaxFrameBytes
		}
		if payload.Protocol.MaxFramePixels != nil {
			cfg.Protocol.MaxFramePixels = *payload.Protocol.MaxFramePixels
		}
		if payload.Protocol.ReadBufferBytes != nil {
			cfg.Protocol.ReadBufferBytes = *payload.Protocol.ReadBufferBytes
		}
		if payload.Protocol.RequestTimeoutMS != nil {
			cfg.Protocol.RequestTimeoutMS = *payload.Protocol.RequestTimeoutMS
		}
	}

	if payload.Client != nil {
		if payload.Client.Addr != nil {
			cfg.Client.Addr = strings.TrimSpace(*payload.Client.Addr)
		}
		if payload.Client.DialTimeoutMS != nil {
			cfg.Client.DialTimeoutMS = *payload.Client.DialTimeoutMS
		}
		if payload.Client.ReplyTimeoutMS != nil {
			cfg.Client.ReplyTimeoutMS = *payload.Client.ReplyTimeoutMS
		}
	}

	if payload.Directory != nil {
		if payload.Directory.Backend != nil {
			cfg.Directory.Backend = strings.ToLower(strings.TrimSpace(*payload.Directory.Backend))
		}
		if payload.Directory.Windows != nil {
			cfg.Directory.Windows = make([]StaticWindow, 0, len(payload.Directory.Windows))
			for _, window := range payload.Directory.Windows {
				cfg.Directory.Windows = append(cfg.Directory.Windows, StaticWindow{
					Handle:    uint64(window.Handle),
					Title:     window.Title,
					ClassName: window.ClassName,
				})
			}
		}
	}

	if payload.Renderer != nil {
		if payload.Renderer.Backend != nil {
			cfg.Renderer.Backend = strings.ToLower(strings.TrimSpace(*payload.Renderer.Backend))
		}
		if payload.Renderer.OutputDir != nil {
			cfg.Renderer.OutputDir = strings.TrimSpace(*payload.Renderer.OutputDir)
		}
		if payload.Renderer.Command != nil {
			raw := *payload.Renderer.Command
			argv, err := parseArgv(raw)
			if err != nil {
				return fmt.Errorf("invalid renderer.command: %w", err)
			}
			cfg.Renderer.Command = CommandConfig{Raw: raw, Argv: argv}
		}
	}

	if payload.Indicator != nil {
		in := payload.Indicator
		if in.Enable != nil {
			cfg.Indicator.Enable = *in.Enable
		}
		if in.Backend != nil {
			cfg.Indicator.Backend = strings.TrimSpace(*in.Backend)
		}
		if in.DesktopAppName != nil {
			cfg.Indicator.DesktopAppName = strings.TrimSpace(*in.DesktopAppName)
		}
		if in.TimeoutMS != nil {
			cfg.Indicator.TimeoutMS = *in.TimeoutMS
		}
		if in.SoundEnable != nil {
			cfg.Indicator.SoundEnable = *in.SoundEnable
		}
		if in.SoundConnectFile != nil {
			cfg.Indicator.SoundConnectFile = strings.TrimSpace(*in.SoundConnectFile)
		}
		if in.SoundEvictFile != nil {
			cfg.Indicator.SoundEvictFile = strings.TrimSpace(*in.SoundEvictFile)
		}
		if in.SoundDisconnectFile != nil {
			cfg.Indicator.SoundDisconnectFile = strings.TrimSpace(*in.SoundDisconnectFile)
		}
	}

	if payload.Admin != nil {
		if payload.Admin.HTTPAddr != nil {
			cfg.Admin.HTTPAddr = strings.TrimSpace(*payload.Admin.HTTPAddr)
		}
		if payload.Admin.GRPCAddr != nil {
			cfg.Admin.GRPCAddr = strings.TrimSpace(*payload.Admin.GRPCAddr)
		}
	}

	if payload.Journal != nil {
		if payload.Journal.Enable != nil {
			cfg.Journal.Enable = *payload.Journal.Enable
		}
		if payload.Journal.Path != nil {
			cfg.Journal.Path = strings.TrimSpace(*payload.Journal.Path)
		}
	}

	if payload.Log != nil && payload.Log.Level != nil {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(*payload.Log.Level))
	}

	return nil
}

func normalizeJSONC(content string) (string, error) {
	withoutComments, err := stripJSONCComments(content)
	if err != nil {
		return "", err
	}
	return stripJSONCTrailingCommas(withoutComments), nil
}

func stripJSONCComments(content string) (string, error) {
	var out strings.Builder
	out.Grow(len(content))

	inString := false
	escape := false
	lineComment := false
	blockComment := false

	for i := 0; i < len(content); i++ {
		ch := content[i]

		if lineComment {
			if ch == '\n' {
				lineComment = false
				out.WriteByte(ch)
				continue
			}
			if ch == '\r' {
				lineComment = false
				out.WriteByte(ch)
				continue
			}
			out.WriteByte(' ')
			continue
		}

		if blockComment {
			if ch == '*' && i+1 < len(content) && content[i+1] == '/' {
				blockComment = false
				out.WriteString("  ")
				i++
				continue
			}
			if ch == '\n' || ch == '\r' || ch == '\t' {
				out.WriteByte(ch)
			} else {
				out.WriteByte(' ')
			}
			continue
		}

		if inString {
			out.WriteByte(ch)
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		if ch == '"' {
			inString = true
			out.WriteByte(ch)
			continue
		}

		if ch == '/' && i+1 < len(content) {
			next := content[i+1]
			if next == '/' {
				lineComment = true
				out.WriteString("  ")
				i++
				continue
			}
			if next == '*' {
				blockComment = true
				out.WriteString("  ")
				i++
				continue
			}
		}

		out.WriteByte(ch)
	}

	if blockComment {
		return "", fmt.Errorf("unterminated block comment in JSONC")
	}

	return out.String(), nil
}

func stripJSONCTrailingCommas(content string) string {
	var out strings.Builder
	out.Grow(len(content))

	inString := false
	escape := false

	for i := 0; i < len(content); i++ {
		ch := content[i]

		if inString {
			out.WriteByte(ch)
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		if ch == '"' {
			inString = true
			out.WriteByte(ch)
			continue
		}

		if ch == ',' {
			j := i + 1
			for j < len(content) && isJSONWhitespace(content[j]) {
				j++
			}
			if j < len(content) && (content[j] == '}' || content[j] == ']') {
				continue
			}
		}

		out.WriteByte(ch)
	}

	return out.String()
}

func isJSONWhitespace(ch byte) bool {
	switch ch {
	case ' ', '\n', '\r', '\t':
		return true
	default:
		return false
	}
}

func ensureSingleJSONValue(decoder *json.Decoder) error {
	var extra struct{}
	err := decoder.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		return fmt.Errorf("multiple JSON values are not allowed")
	}
	return err
}

func wrapJSONDecodeError(content string, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(content, syntaxErr.Offset)
		return fmt.Errorf("line %d column %d: %w", line, col, err)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := offsetToLineCol(content, typeErr.Offset)
		return fmt.Errorf("line %d column %d: %w", line, col, err)
	}

	return err
}

func offsetToLineCol(content string, offset int64) (int, int) {
	if offset <= 0 {
		return 1, 1
	}

	limit := int(offset)
	if limit > len(content) {
		limit = len(content)
	}

	line := 1
	col := 1
	for i := 0; i < limit-1; i++ {
		if content[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
