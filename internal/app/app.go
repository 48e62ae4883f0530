// Package app wires configuration, logging, and the windowcaster components
// behind each CLI command.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rbright/windowcaster/internal/admin"
	"github.com/rbright/windowcaster/internal/cli"
	"github.com/rbright/windowcaster/internal/client"
	"github.com/rbright/windowcaster/internal/config"
	"github.com/rbright/windowcaster/internal/directory"
	"github.com/rbright/windowcaster/internal/dispatch"
	"github.com/rbright/windowcaster/internal/doctor"
	"github.com/rbright/windowcaster/internal/hypr"
	"github.com/rbright/windowcaster/internal/indicator"
	"github.com/rbright/windowcaster/internal/journal"
	"github.com/rbright/windowcaster/internal/logging"
	"github.com/rbright/windowcaster/internal/metrics"
	"github.com/rbright/windowcaster/internal/render"
	"github.com/rbright/windowcaster/internal/server"
	"github.com/rbright/windowcaster/internal/session"
	"github.com/rbright/windowcaster/internal/version"
	"github.com/rbright/windowcaster/internal/wire"
)

const shutdownTimeout = 5 * time.Second

type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Ready, when set, receives the bound listener address once serve is up.
	Ready func(addr string)
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText("windowcaster"))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, parsed.HelpText)
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	level, err := logging.ParseLevel(cfgLoaded.Config.Log.Level)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	logRuntime, err := logging.New(level)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	for _, w := range cfgLoaded.Warnings {
		msg := w.Message
		if w.Line > 0 {
			msg = fmt.Sprintf("line %d: %s", w.Line, w.Message)
		}
		fmt.Fprintf(r.Stderr, "warning: %s\n", msg)
		logger.Warn("config warning", "line", w.Line, "message", w.Message)
	}

	logger.Info("command start",
		"command", parsed.Command,
		"config", cfgLoaded.Path,
		"log", logRuntime.Path,
	)

	cfg := cfgLoaded.Config
	paths, err := resolvePaths(cfg)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	switch parsed.Command {
	case cli.CommandServe:
		return r.commandServe(ctx, cfg, paths, logger)
	case cli.CommandDoctor:
		report := doctor.Run(ctx, cfgLoaded, paths)
		fmt.Fprintln(r.Stdout, report.String())
		if report.OK() {
			return 0
		}
		return 1
	case cli.CommandHistory:
		return r.commandHistory(ctx, paths.JournalPath, parsed.Limit)
	case cli.CommandList, cli.CommandImage, cli.CommandVideo, cli.CommandStop:
		return r.commandClient(ctx, cfg, parsed, logger)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}
}

// resolvePaths fills state-directory defaults for frame output and the journal.
func resolvePaths(cfg config.Config) (doctor.Paths, error) {
	paths := doctor.Paths{
		FramesDir:   cfg.Renderer.OutputDir,
		JournalPath: cfg.Journal.Path,
	}
	if paths.FramesDir != "" && paths.JournalPath != "" {
		return paths, nil
	}

	stateDir, err := logging.StateDir()
	if err != nil {
		return doctor.Paths{}, fmt.Errorf("resolve state dir: %w", err)
	}
	if paths.FramesDir == "" {
		paths.FramesDir = filepath.Join(stateDir, "frames")
	}
	if paths.JournalPath == "" {
		paths.JournalPath = filepath.Join(stateDir, "journal.db")
	}
	return paths, nil
}

func (r Runner) commandServe(ctx context.Context, cfg config.Config, paths doctor.Paths, logger *slog.Logger) int {
	m := metrics.New()

	var windows dispatch.WindowDirectory = hypr.Directory{}
	if cfg.Directory.Backend == "static" {
		windows = directory.NewStatic(cfg.Directory.Windows)
	}

	var sink render.Sink = render.FileSink{Dir: paths.FramesDir}
	if cfg.Renderer.Backend == "command" {
		sink = render.CommandSink{Argv: cfg.Renderer.Command.Argv}
	}
	renderer := render.New(sink, logger, render.WithMaxPixels(cfg.Protocol.MaxFramePixels))

	dispatchOpts := []dispatch.Option{
		dispatch.WithLogger(logger),
		dispatch.WithMetrics(m),
		dispatch.WithTimeout(cfg.Protocol.RequestTimeout()),
	}
	if cfg.Journal.Enable {
		store, err := journal.Open(paths.JournalPath)
		if err != nil {
			fmt.Fprintf(r.Stderr, "error: %v\n", err)
			return 1
		}
		defer func() { _ = store.Close() }()
		dispatchOpts = append(dispatchOpts, dispatch.WithJournal(store))
	}
	dispatcher := dispatch.New(windows, renderer, dispatchOpts...)

	sess := session.New(dispatcher,
		session.WithLogger(logger),
		session.WithMaxFrame(cfg.Protocol.MaxFrameBytes),
		session.WithMetrics(m),
	)

	observers := []server.Observer{m}
	var health *admin.Health
	if cfg.Admin.GRPCAddr != "" {
		health = admin.NewHealth()
		observers = append(observers, health)
	}
	if cfg.Indicator.Enable || cfg.Indicator.SoundEnable {
		notifier := indicator.New(cfg.Indicator, logger)
		defer notifier.Close()
		observers = append(observers, notifier)
	}

	listener := server.NewListener(cfg.Listen.Addr(), sess,
		server.WithLogger(logger),
		server.WithObserver(observers...),
		server.WithReadBufferSize(cfg.Protocol.ReadBufferBytes),
	)

	if err := listener.Start(ctx); err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("listener start failed", "error", err.Error())
		return 1
	}
	defer func() { _ = listener.Stop() }()

	adminSrv := admin.New(cfg.Admin.HTTPAddr, cfg.Admin.GRPCAddr,
		admin.NewRouter(m.Handler(), func() admin.Report {
			report := admin.Report{
				Listener: listener.State(),
				Client:   sess.RemoteAddr(),
				Renderer: renderer.Snapshot(),
				Version:  version.Current(),
			}
			if addr := listener.Addr(); addr != nil {
				report.Addr = addr.String()
			}
			return report
		}),
		health, logger)
	if err := adminSrv.Start(ctx); err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("admin start failed", "error", err.Error())
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		_ = adminSrv.Shutdown(shutdownCtx)
	}()

	addr := listener.Addr().String()
	fmt.Fprintf(r.Stdout, "listening on %s\n", addr)
	if r.Ready != nil {
		r.Ready(addr)
	}

	<-ctx.Done()
	logger.Info("shutdown requested")
	if err := listener.Stop(); err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func (r Runner) commandHistory(ctx context.Context, path string, limit int) int {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintln(r.Stdout, "no journal entries")
		return 0
	}

	store, err := journal.Open(path)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	defer func() { _ = store.Close() }()

	entries, err := store.Recent(ctx, limit)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	if len(entries) == 0 {
		fmt.Fprintln(r.Stdout, "no journal entries")
		return 0
	}
	for _, e := range entries {
		fmt.Fprintln(r.Stdout, formatEntry(e))
	}
	return 0
}

func formatEntry(e journal.Entry) string {
	outcome := "ok"
	if !e.Success {
		outcome = "FAIL"
	}
	line := fmt.Sprintf("%s %-4s %-12s target=0x%X", e.ReceivedAt.Local().Format(time.RFC3339), outcome, e.Kind, e.TargetWindow)
	if e.Content != "" {
		line += fmt.Sprintf(" content=%s bytes=%d", e.Content, e.PayloadBytes)
	}
	line += fmt.Sprintf(" took=%s", e.Duration)
	if e.Message != "" {
		line += fmt.Sprintf(" %q", e.Message)
	}
	return line
}

func (r Runner) commandClient(ctx context.Context, cfg config.Config, parsed cli.Parsed, logger *slog.Logger) int {
	addr := cfg.Client.Addr
	if parsed.Addr != "" {
		addr = parsed.Addr
	}

	dialCtx, cancel := context.WithTimeout(ctx, cfg.Client.DialTimeout())
	conn, err := client.Dial(dialCtx, addr,
		client.WithMaxFrame(cfg.Protocol.MaxFrameBytes),
		client.WithReplyTimeout(cfg.Client.ReplyTimeout()),
	)
	cancel()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	defer func() { _ = conn.Close() }()
	logger.Debug("connected", "addr", addr)

	switch parsed.Command {
	case cli.CommandList:
		return r.commandList(ctx, conn, parsed)
	case cli.CommandImage:
		return r.commandImage(ctx, conn, parsed)
	case cli.CommandVideo:
		return r.commandVideo(ctx, conn, parsed)
	default:
		status, err := conn.StopRender(ctx, parsed.Window)
		return r.reportStatus(status, err)
	}
}

func (r Runner) commandList(ctx context.Context, conn *client.Client, parsed cli.Parsed) int {
	entries, err := conn.ListWindows(ctx)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	entries = client.FilterWindows(entries, parsed.Filter)
	if len(entries) == 0 {
		fmt.Fprintln(r.Stdout, "no matching windows")
		return 0
	}

	fmt.Fprintf(r.Stdout, "found %d window(s):\n", len(entries))
	for _, entry := range entries {
		if parsed.Verbose {
			fmt.Fprintln(r.Stdout, client.FormatWindowVerbose(entry))
			continue
		}
		fmt.Fprintln(r.Stdout, client.FormatWindow(entry))
	}
	return 0
}

func (r Runner) commandImage(ctx context.Context, conn *client.Client, parsed cli.Parsed) int {
	data, err := os.ReadFile(parsed.File)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	status, err := conn.Render(ctx, wire.RenderCommand{
		TargetWindow: parsed.Window,
		Content:      wire.ContentImage,
		Data:         data,
		Width:        parsed.Width,
		Height:       parsed.Height,
	})
	return r.reportStatus(status, err)
}

func (r Runner) commandVideo(ctx context.Context, conn *client.Client, parsed cli.Parsed) int {
	f, err := os.Open(parsed.File)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	failed := 0
	sent, err := conn.StreamVideo(ctx, client.Stream{
		Target: parsed.Window,
		Width:  parsed.Width,
		Height: parsed.Height,
		FPS:    parsed.FPS,
	}, f, func(result client.FrameResult) {
		if !result.Status.Success {
			failed++
			fmt.Fprintf(r.Stderr, "warning: frame %d: %s\n", result.Index, result.Status.Message)
		}
	})
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(r.Stdout, "sent %d frame(s), %d failed\n", sent, failed)
	if sent > 0 && failed == sent {
		return 1
	}
	return 0
}

func (r Runner) reportStatus(status wire.Status, err error) int {
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	if !status.Success {
		fmt.Fprintf(r.Stderr, "error: server: %s\n", status.Message)
		return 1
	}
	fmt.Fprintln(r.Stdout, "ok")
	return 0
}
