// Package doctor runs runtime readiness diagnostics for config, tools, sinks, and the listener.
package doctor

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/rbright/windowcaster/internal/admin"
	"github.com/rbright/windowcaster/internal/config"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// Paths are the resolved on-disk locations the server would use.
type Paths struct {
	FramesDir   string
	JournalPath string
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes environment/config/runtime checks for a loaded config.
func Run(ctx context.Context, loaded config.Loaded, paths Paths) Report {
	cfg := loaded.Config
	checks := []Check{}

	message := fmt.Sprintf("loaded %q", loaded.Path)
	if !loaded.Exists {
		message = fmt.Sprintf("%q not found; using defaults", loaded.Path)
	}
	checks = append(checks, Check{Name: "config", Pass: true, Message: message})

	checks = append(checks, checkListen(cfg.Listen.Addr()))

	usesHypr := cfg.Directory.Backend == "hypr" || (cfg.Indicator.Enable && cfg.Indicator.Backend == "hypr")
	if usesHypr {
		checks = append(checks, checkEnv("HYPRLAND_INSTANCE_SIGNATURE", func(v string) bool {
			return strings.TrimSpace(v) != ""
		}, "Hyprland session detected", "HYPRLAND_INSTANCE_SIGNATURE is empty"))
		checks = append(checks, checkBinary("hyprctl", "window directory and notifications use hyprctl"))
	}
	if cfg.Directory.Backend == "static" {
		checks = append(checks, Check{
			Name:    "directory",
			Pass:    len(cfg.Directory.Windows) > 0,
			Message: fmt.Sprintf("static backend with %d window(s)", len(cfg.Directory.Windows)),
		})
	}

	switch cfg.Renderer.Backend {
	case "command":
		checks = append(checks, checkCommand(cfg.Renderer.Command.Argv, "renderer.command"))
	default:
		checks = append(checks, checkWritableDir("renderer.output_dir", paths.FramesDir))
	}

	if cfg.Indicator.Enable && cfg.Indicator.Backend == "desktop" {
		checks = append(checks, checkBinary("busctl", "desktop notifications use busctl"))
	}
	if cfg.Indicator.SoundEnable && hasCueFiles(cfg.Indicator) {
		checks = append(checks, checkBinary("pw-play", "cue files play through pw-play"))
	}

	if cfg.Journal.Enable {
		checks = append(checks, checkWritableDir("journal", filepath.Dir(paths.JournalPath)))
	}

	if cfg.Admin.GRPCAddr != "" {
		checks = append(checks, checkAdminHealth(ctx, cfg.Admin.GRPCAddr))
	}

	return Report{Checks: checks}
}

// checkEnv validates an environment variable through a caller-supplied predicate.
func checkEnv(name string, predicate func(string) bool, okMsg, failMsg string) Check {
	value := os.Getenv(name)
	if predicate(value) {
		return Check{Name: name, Pass: true, Message: okMsg}
	}
	return Check{Name: name, Pass: false, Message: failMsg}
}

// checkCommand validates that argv contains a runnable command.
func checkCommand(argv []string, name string) Check {
	if len(argv) == 0 {
		return Check{Name: name, Pass: false, Message: "command is empty"}
	}
	return checkBinary(argv[0], fmt.Sprintf("%s command is available", name))
}

// checkBinary validates that a binary exists in PATH.
func checkBinary(bin string, okMsg string) Check {
	path, err := exec.LookPath(bin)
	if err != nil {
		return Check{Name: bin, Pass: false, Message: fmt.Sprintf("binary not found in PATH: %s", bin)}
	}
	return Check{Name: bin, Pass: true, Message: fmt.Sprintf("found at %s (%s)", path, okMsg)}
}

// checkListen binds addr briefly. An address already served by a live
// windowcaster still passes.
func checkListen(addr string) Check {
	ln, err := net.Listen("tcp", addr)
	if err == nil {
		_ = ln.Close()
		return Check{Name: "listen", Pass: true, Message: fmt.Sprintf("%s is bindable", addr)}
	}

	conn, dialErr := net.DialTimeout("tcp", dialable(addr), 500*time.Millisecond)
	if dialErr == nil {
		_ = conn.Close()
		return Check{Name: "listen", Pass: true, Message: fmt.Sprintf("%s is in use and accepting connections", addr)}
	}
	return Check{Name: "listen", Pass: false, Message: fmt.Sprintf("cannot bind %s: %v", addr, err)}
}

// checkWritableDir creates dir if needed and checks it with a temp file.
func checkWritableDir(name, dir string) Check {
	if strings.TrimSpace(dir) == "" {
		return Check{Name: name, Pass: false, Message: "path is empty"}
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return Check{Name: name, Pass: false, Message: fmt.Sprintf("create %s: %v", dir, err)}
	}
	tmp, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return Check{Name: name, Pass: false, Message: fmt.Sprintf("%s is not writable: %v", dir, err)}
	}
	_ = tmp.Close()
	_ = os.Remove(tmp.Name())
	return Check{Name: name, Pass: true, Message: fmt.Sprintf("%s is writable", dir)}
}

// checkAdminHealth queries the gRPC health service of a running server.
func checkAdminHealth(ctx context.Context, addr string) Check {
	status, err := admin.CheckHealth(ctx, addr, 2*time.Second)
	if err != nil {
		return Check{Name: "admin.health", Pass: false, Message: err.Error()}
	}
	if status != healthpb.HealthCheckResponse_SERVING {
		return Check{Name: "admin.health", Pass: false, Message: fmt.Sprintf("%s reports %s", addr, status)}
	}
	return Check{Name: "admin.health", Pass: true, Message: fmt.Sprintf("%s reports SERVING", addr)}
}

func hasCueFiles(cfg config.IndicatorConfig) bool {
	return cfg.SoundConnectFile != "" || cfg.SoundEvictFile != "" || cfg.SoundDisconnectFile != ""
}

// dialable maps wildcard hosts to loopback.
func dialable(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	switch host {
	case "", "0.0.0.0":
		host = "127.0.0.1"
	case "::":
		host = "::1"
	}
	return net.JoinHostPort(host, port)
}
