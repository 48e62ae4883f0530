package hypr

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rbright/windowcaster/internal/wire"
)

// Client is the subset of a `hyprctl -j clients` entry used for targeting.
type Client struct {
	Address string `json:"address"`
	Mapped  bool   `json:"mapped"`
	Hidden  bool   `json:"hidden"`
	Class   string `json:"class"`
	Title   string `json:"title"`
	PID     int    `json:"pid"`
	Size    [2]int `json:"size"`
}

// Handle parses the hex client address into an opaque window handle.
func (c Client) Handle() (uint64, error) {
	addr := strings.TrimPrefix(strings.TrimSpace(c.Address), "0x")
	if addr == "" {
		return 0, fmt.Errorf("client %q has empty address", c.Title)
	}
	handle, err := strconv.ParseUint(addr, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parse client address %q: %w", c.Address, err)
	}
	return handle, nil
}

// Visible reports whether the client is mapped, not hidden, and titled.
func (c Client) Visible() bool {
	return c.Mapped && !c.Hidden && strings.TrimSpace(c.Title) != ""
}

// QueryClients returns every client Hyprland knows about.
func QueryClients(ctx context.Context) ([]Client, error) {
	output, err := runHyprctlJSON(ctx, "clients")
	if err != nil {
		return nil, err
	}

	var clients []Client
	if err := json.Unmarshal(output, &clients); err != nil {
		return nil, fmt.Errorf("decode hyprctl clients json: %w", err)
	}
	return clients, nil
}

// Directory lists visible Hyprland clients as render targets.
type Directory struct{}

// Enumerate returns visible clients in hyprctl order.
func (Directory) Enumerate(ctx context.Context) ([]wire.WindowEntry, error) {
	clients, err := QueryClients(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]wire.WindowEntry, 0, len(clients))
	for _, client := range clients {
		if !client.Visible() {
			continue
		}
		handle, err := client.Handle()
		if err != nil {
			continue
		}
		entries = append(entries, wire.WindowEntry{
			Handle:    handle,
			Title:     strings.TrimSpace(client.Title),
			ClassName: strings.TrimSpace(client.Class),
		})
	}
	return entries, nil
}

// IsValid reports whether handle names a visible client. Query failures count
// as invalid.
func (d Directory) IsValid(ctx context.Context, handle uint64) bool {
	entries, err := d.Enumerate(ctx)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.Handle == handle {
			return true
		}
	}
	return false
}
