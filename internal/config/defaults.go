package config

// DefaultPort is the listen port used by both server and client defaults.
const DefaultPort = 12345

// Default returns the canonical runtime configuration used when no file is present.
func Default() Config {
	return Config{
		Listen: ListenConfig{Host: "0.0.0.0", Port: DefaultPort},
		Protocol: ProtocolConfig{
			MaxFrameBytes:    32 << 20,
			MaxFramePixels:   4096 * 4096,
			ReadBufferBytes:  4096,
			RequestTimeoutMS: 5000,
		},
		Client: ClientConfig{
			Addr:           "127.0.0.1:12345",
			DialTimeoutMS:  3000,
			ReplyTimeoutMS: 10000,
		},
		Directory: DirectoryConfig{Backend: "hypr"},
		Renderer:  RendererConfig{Backend: "file"},
		Indicator: IndicatorConfig{
			Enable:         false,
			Backend:        "hypr",
			DesktopAppName: "windowcaster",
			TimeoutMS:      2500,
			SoundEnable:    false,
		},
		Journal: JournalConfig{Enable: true},
		Log:     LogConfig{Level: "info"},
	}
}
