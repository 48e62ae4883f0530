package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
)

// FileSink writes each frame as <dir>/0x<target>.png, replacing it atomically.
type FileSink struct {
	Dir string
}

func (s FileSink) Open(context.Context, uint64) error {
	if s.Dir == "" {
		return fmt.Errorf("file sink output directory is empty")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s FileSink) Present(_ context.Context, target uint64, img image.Image) error {
	tmp, err := os.CreateTemp(s.Dir, ".frame-*.png")
	if err != nil {
		return fmt.Errorf("create frame file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if err := png.Encode(tmp, img); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode frame png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close frame file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(target)); err != nil {
		return fmt.Errorf("publish frame file: %w", err)
	}
	return nil
}

// Path returns the frame file for target.
func (s FileSink) Path(target uint64) string {
	return filepath.Join(s.Dir, fmt.Sprintf("0x%x.png", target))
}

// CommandSink pipes each frame as PNG to argv. The target handle is exported
// to the command as WINDOWCASTER_TARGET.
type CommandSink struct {
	Argv []string
}

func (s CommandSink) Open(context.Context, uint64) error {
	if len(s.Argv) == 0 {
		return fmt.Errorf("command argv cannot be empty")
	}
	if _, err := exec.LookPath(s.Argv[0]); err != nil {
		return fmt.Errorf("frame command %q not found: %w", s.Argv[0], err)
	}
	return nil
}

func (s CommandSink) Present(ctx context.Context, target uint64, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode frame png: %w", err)
	}
	env := append(os.Environ(), fmt.Sprintf("WINDOWCASTER_TARGET=0x%x", target))
	return runCommandWithInput(ctx, s.Argv, env, buf.Bytes())
}

// runCommandWithInput executes argv and writes input to stdin.
func runCommandWithInput(ctx context.Context, argv []string, env []string, input []byte) error {
	if len(argv) == 0 {
		return fmt.Errorf("command argv cannot be empty")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = env
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("open stdin for %s: %w", argv[0], err)
	}

	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		return fmt.Errorf("start command %s: %w", argv[0], err)
	}

	if len(input) > 0 {
		if _, err := stdin.Write(input); err != nil {
			_ = stdin.Close()
			_ = cmd.Wait()
			return fmt.Errorf("write stdin for %s: %w", argv[0], err)
		}
	}
	_ = stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("wait for %s: %w", argv[0], err)
	}
	return nil
}
