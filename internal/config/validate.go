package config

import (
	"fmt"
	"net"
	"strings"
)

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if cfg.Listen.Port < 0 || cfg.Listen.Port > 65535 {
		return nil, fmt.Errorf("listen.port must be within 0..65535")
	}
	if cfg.Listen.Port == 0 {
		warnings = append(warnings, Warning{Message: "listen.port=0 binds an ephemeral port"})
	}

	if cfg.Protocol.MaxFrameBytes <= 0 {
		return nil, fmt.Errorf("protocol.max_frame_bytes must be > 0")
	}
	if int64(cfg.Protocol.MaxFrameBytes) > int64(^uint32(0)) {
		return nil, fmt.Errorf("protocol.max_frame_bytes must fit a 32-bit length prefix")
	}
	if cfg.Protocol.MaxFramePixels <= 0 {
		return nil, fmt.Errorf("protocol.max_frame_pixels must be > 0")
	}
	if cfg.Protocol.ReadBufferBytes <= 0 {
		return nil, fmt.Errorf("protocol.read_buffer_bytes must be > 0")
	}
	if cfg.Protocol.RequestTimeoutMS < 0 {
		return nil, fmt.Errorf("protocol.request_timeout_ms must be >= 0")
	}
	if cfg.Protocol.RequestTimeoutMS == 0 {
		warnings = append(warnings, Warning{Message: "protocol.request_timeout_ms=0 disables request timeouts"})
	}

	if _, _, err := net.SplitHostPort(cfg.Client.Addr); err != nil {
		return nil, fmt.Errorf("client.addr must be host:port: %w", err)
	}
	if cfg.Client.DialTimeoutMS <= 0 {
		return nil, fmt.Errorf("client.dial_timeout_ms must be > 0")
	}
	if cfg.Client.ReplyTimeoutMS <= 0 {
		return nil, fmt.Errorf("client.reply_timeout_ms must be > 0")
	}

	switch cfg.Directory.Backend {
	case "hypr":
		if len(cfg.Directory.Windows) > 0 {
			warnings = append(warnings, Warning{Message: "directory.windows is ignored unless directory.backend=static"})
		}
	case "static":
		if len(cfg.Directory.Windows) == 0 {
			warnings = append(warnings, Warning{Message: "directory.backend=static has no windows; every render will be rejected"})
		}
		seen := make(map[uint64]struct{}, len(cfg.Directory.Windows))
		for _, window := range cfg.Directory.Windows {
			if _, dup := seen[window.Handle]; dup {
				return nil, fmt.Errorf("directory.windows lists handle 0x%x more than once", window.Handle)
			}
			seen[window.Handle] = struct{}{}
		}
	default:
		return nil, fmt.Errorf("directory.backend must be one of: hypr, static")
	}

	switch cfg.Renderer.Backend {
	case "file":
	case "command":
		if len(cfg.Renderer.Command.Argv) == 0 {
			return nil, fmt.Errorf("renderer.command must not be empty when renderer.backend=command")
		}
	default:
		return nil, fmt.Errorf("renderer.backend must be one of: file, command")
	}

	backend := strings.ToLower(strings.TrimSpace(cfg.Indicator.Backend))
	if backend == "" {
		return nil, fmt.Errorf("indicator.backend must not be empty")
	}
	if backend != "hypr" && backend != "desktop" {
		return nil, fmt.Errorf("indicator.backend must be one of: hypr, desktop")
	}
	if backend == "desktop" && strings.TrimSpace(cfg.Indicator.DesktopAppName) == "" {
		return nil, fmt.Errorf("indicator.desktop_app_name must not be empty when indicator.backend=desktop")
	}
	if cfg.Indicator.TimeoutMS < 0 {
		return nil, fmt.Errorf("indicator.timeout_ms must be >= 0")
	}

	for name, addr := range map[string]string{
		"admin.http_addr": cfg.Admin.HTTPAddr,
		"admin.grpc_addr": cfg.Admin.GRPCAddr,
	} {
		if addr == "" {
			continue
		}
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return nil, fmt.Errorf("%s must be host:port: %w", name, err)
		}
	}
	if cfg.Admin.HTTPAddr != "" && cfg.Admin.HTTPAddr == cfg.Admin.GRPCAddr {
		return nil, fmt.Errorf("admin.http_addr and admin.grpc_addr must differ")
	}

	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return nil, fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}

	return warnings, nil
}
