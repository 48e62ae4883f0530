// Package config resolves, parses, validates, and defaults windowcaster configuration.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the fully materialized runtime configuration.
type Config struct {
	Listen    ListenConfig
	Protocol  ProtocolConfig
	Client    ClientConfig
	Directory DirectoryConfig
	Renderer  RendererConfig
	Indicator IndicatorConfig
	Admin     AdminConfig
	Journal   JournalConfig
	Log       LogConfig
}

// ListenConfig is the server bind address.
type ListenConfig struct {
	Host string
	Port int
}

// Addr joins host and port.
func (l ListenConfig) Addr() string {
	return net.JoinHostPort(l.Host, strconv.Itoa(l.Port))
}

// ProtocolConfig bounds framing and request handling.
type ProtocolConfig struct {
	MaxFrameBytes int
	// MaxFramePixels caps decoded frame dimensions, which an encoded image
	// can declare far beyond its compressed size.
	MaxFramePixels   int
	ReadBufferBytes  int
	RequestTimeoutMS int
}

// RequestTimeout is the per-request deadline; zero disables it.
func (p ProtocolConfig) RequestTimeout() time.Duration {
	return time.Duration(p.RequestTimeoutMS) * time.Millisecond
}

// ClientConfig controls the CLI client commands.
type ClientConfig struct {
	Addr           string
	DialTimeoutMS  int
	ReplyTimeoutMS int
}

func (c ClientConfig) DialTimeout() time.Duration {
	return time.Duration(c.DialTimeoutMS) * time.Millisecond
}

func (c ClientConfig) ReplyTimeout() time.Duration {
	return time.Duration(c.ReplyTimeoutMS) * time.Millisecond
}

// DirectoryConfig selects the window directory backend.
type DirectoryConfig struct {
	Backend string
	Windows []StaticWindow
}

// StaticWindow is one window served by the static directory backend.
type StaticWindow struct {
	Handle    uint64
	Title     string
	ClassName string
}

// RendererConfig selects where painted frames go.
type RendererConfig struct {
	Backend   string
	OutputDir string
	Command   CommandConfig
}

// IndicatorConfig controls client lifecycle notifications and audio cues.
type IndicatorConfig struct {
	Enable              bool
	Backend             string
	DesktopAppName      string
	TimeoutMS           int
	SoundEnable         bool
	SoundConnectFile    string
	SoundEvictFile      string
	SoundDisconnectFile string
}

// AdminConfig enables the HTTP and gRPC admin endpoints. Empty disables.
type AdminConfig struct {
	HTTPAddr string
	GRPCAddr string
}

// JournalConfig controls the request journal. An empty Path resolves under
// the state directory.
type JournalConfig struct {
	Enable bool
	Path   string
}

// LogConfig controls runtime log verbosity.
type LogConfig struct {
	Level string
}

// CommandConfig stores a raw command string and its parsed argv form.
type CommandConfig struct {
	Raw  string
	Argv []string
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Line    int
	Message string
}
