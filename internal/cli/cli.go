// Package cli parses windowcaster command lines into a Parsed invocation.
package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rbright/windowcaster/internal/client"
)

type Command string

const (
	CommandServe   Command = "serve"
	CommandList    Command = "list"
	CommandImage   Command = "image"
	CommandVideo   Command = "video"
	CommandStop    Command = "stop"
	CommandHistory Command = "history"
	CommandDoctor  Command = "doctor"
	CommandVersion Command = "version"
	CommandHelp    Command = "help"
)

// DefaultFPS paces video streaming when --fps is not given.
const DefaultFPS = 30

// DefaultHistoryLimit is the number of journal entries history prints.
const DefaultHistoryLimit = 20

type Parsed struct {
	Command    Command
	ConfigPath string
	Addr       string
	ShowHelp   bool
	HelpText   string

	Filter  string
	Verbose bool

	Window uint64
	File   string
	Width  uint32
	Height uint32
	FPS    int

	Limit int
}

// Parse interprets args (without the program name).
func Parse(args []string) (Parsed, error) {
	var parsed Parsed
	var out bytes.Buffer

	root := newRoot("windowcaster", &parsed)
	root.SetOut(&out)
	root.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return Parsed{}, err
	}
	if parsed.ShowHelp {
		parsed.Command = CommandHelp
		parsed.HelpText = out.String()
	}
	return parsed, nil
}

// HelpText is the top-level usage text.
func HelpText(binaryName string) string {
	var parsed Parsed
	root := newRoot(binaryName, &parsed)
	return root.UsageString()
}

func newRoot(binaryName string, parsed *Parsed) *cobra.Command {
	var showVersion bool

	root := &cobra.Command{
		Use:   binaryName,
		Short: "Render images and video into desktop windows over TCP",
		Long: `windowcaster serves a single-client TCP protocol for listing desktop
windows and painting image or raw RGB24 video frames onto them. The same
binary is also the client.

Window handles accept hexadecimal (0x5a1d3e0) or decimal form.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				parsed.Command = CommandVersion
				return nil
			}
			return cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.Flags().BoolVar(&showVersion, "version", false, "Show version")
	root.PersistentFlags().StringVar(&parsed.ConfigPath, "config", "", "Config file path (default: $XDG_CONFIG_HOME/windowcaster/config.jsonc)")
	root.PersistentFlags().StringVar(&parsed.Addr, "addr", "", "Server address for client commands (default: client.addr from config)")

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		parsed.ShowHelp = true
		defaultHelp(cmd, args)
	})

	root.AddCommand(
		simpleCmd(parsed, CommandServe, "Run the frame server in the foreground"),
		listCmd(parsed),
		imageCmd(parsed),
		videoCmd(parsed),
		stopCmd(parsed),
		historyCmd(parsed),
		simpleCmd(parsed, CommandDoctor, "Run configuration and environment checks"),
		simpleCmd(parsed, CommandVersion, "Print version information"),
	)
	return root
}

func simpleCmd(parsed *Parsed, name Command, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(name),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			parsed.Command = name
			return nil
		},
	}
}

func listCmd(parsed *Parsed) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(CommandList),
		Short: "List windows available as render targets",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			parsed.Command = CommandList
			return nil
		},
	}
	cmd.Flags().StringVarP(&parsed.Filter, "filter", "f", "", "Only show windows whose title contains this text (case-insensitive)")
	cmd.Flags().BoolVarP(&parsed.Verbose, "verbose", "v", false, "Print one labeled block per window")
	return cmd
}

func imageCmd(parsed *Parsed) *cobra.Command {
	var window string
	cmd := &cobra.Command{
		Use:   string(CommandImage),
		Short: "Render an image file onto a window",
		Long: `Render an image onto a window. Without --width/--height the file is sent
as-is and must be PNG, JPEG, or GIF. With both set the file holds packed
RGB24 pixels of exactly that size.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			handle, err := client.ParseHandle(window)
			if err != nil {
				return err
			}
			if (parsed.Width == 0) != (parsed.Height == 0) {
				return fmt.Errorf("--width and --height must be given together")
			}
			parsed.Command = CommandImage
			parsed.Window = handle
			return nil
		},
	}
	cmd.Flags().StringVarP(&window, "window", "w", "", "Target window handle")
	cmd.Flags().StringVarP(&parsed.File, "file", "f", "", "Image file path")
	cmd.Flags().Uint32Var(&parsed.Width, "width", 0, "Raw RGB24 width in pixels")
	cmd.Flags().Uint32Var(&parsed.Height, "height", 0, "Raw RGB24 height in pixels")
	_ = cmd.MarkFlagRequired("window")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func videoCmd(parsed *Parsed) *cobra.Command {
	var window string
	cmd := &cobra.Command{
		Use:   string(CommandVideo),
		Short: "Stream a raw RGB24 video file onto a window",
		Long: `Stream a raw RGB24 video onto a window, one frame per request. Produce
the input with, for example:

  ffmpeg -i clip.mp4 -f rawvideo -pix_fmt rgb24 clip.rgb`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			handle, err := client.ParseHandle(window)
			if err != nil {
				return err
			}
			if parsed.Width == 0 || parsed.Height == 0 {
				return fmt.Errorf("--width and --height must be > 0")
			}
			if parsed.FPS <= 0 {
				return fmt.Errorf("--fps must be > 0")
			}
			parsed.Command = CommandVideo
			parsed.Window = handle
			return nil
		},
	}
	cmd.Flags().StringVarP(&window, "window", "w", "", "Target window handle")
	cmd.Flags().StringVarP(&parsed.File, "file", "f", "", "Raw RGB24 video file path")
	cmd.Flags().Uint32Var(&parsed.Width, "width", 0, "Frame width in pixels")
	cmd.Flags().Uint32Var(&parsed.Height, "height", 0, "Frame height in pixels")
	cmd.Flags().IntVar(&parsed.FPS, "fps", DefaultFPS, "Frames per second")
	_ = cmd.MarkFlagRequired("window")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func stopCmd(parsed *Parsed) *cobra.Command {
	var window string
	cmd := &cobra.Command{
		Use:   string(CommandStop),
		Short: "Stop rendering and clear a window",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			handle, err := client.ParseHandle(window)
			if err != nil {
				return err
			}
			parsed.Command = CommandStop
			parsed.Window = handle
			return nil
		},
	}
	cmd.Flags().StringVarP(&window, "window", "w", "", "Target window handle")
	_ = cmd.MarkFlagRequired("window")
	return cmd
}

func historyCmd(parsed *Parsed) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(CommandHistory),
		Short: "Print recently dispatched requests from the journal",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if parsed.Limit <= 0 {
				return fmt.Errorf("--limit must be > 0")
			}
			parsed.Command = CommandHistory
			return nil
		},
	}
	cmd.Flags().IntVarP(&parsed.Limit, "limit", "n", DefaultHistoryLimit, "Number of entries")
	return cmd
}
