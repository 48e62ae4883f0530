package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecentNewestFirst(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(ctx, Entry{ReceivedAt: at, Kind: "list_windows", Success: true}))
	require.NoError(t, store.Record(ctx, Entry{
		ReceivedAt:   at.Add(time.Second),
		Kind:         "render",
		TargetWindow: 0xffffffffffffffff,
		Content:      "image",
		PayloadBytes: 12,
		Success:      false,
		Message:      "invalid window handle",
		Duration:     1500 * time.Microsecond,
	}))

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "render", entries[0].Kind)
	require.Equal(t, uint64(0xffffffffffffffff), entries[0].TargetWindow)
	require.Equal(t, "image", entries[0].Content)
	require.Equal(t, 12, entries[0].PayloadBytes)
	require.False(t, entries[0].Success)
	require.Equal(t, "invalid window handle", entries[0].Message)
	require.Equal(t, 1500*time.Microsecond, entries[0].Duration)
	require.True(t, entries[0].ReceivedAt.Equal(at.Add(time.Second)))

	require.Equal(t, "list_windows", entries[1].Kind)
	require.True(t, entries[1].Success)
}

func TestRecentHonorsLimit(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, Entry{Kind: "stop_render", Success: true}))
	}

	entries, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Greater(t, entries[0].ID, entries[1].ID)
	require.False(t, entries[0].ReceivedAt.IsZero())

	none, err := store.Recent(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, none)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Record(context.Background(), Entry{Kind: "render", Success: true}))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	n, err := second.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestOpenAppliesPragmas(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	var mode string
	require.NoError(t, store.db.QueryRowContext(ctx, `PRAGMA journal_mode`).Scan(&mode))
	require.Equal(t, "wal", mode)

	var busy int
	require.NoError(t, store.db.QueryRowContext(ctx, `PRAGMA busy_timeout`).Scan(&busy))
	require.Equal(t, 5000, busy)
}

func TestConcurrentStoresShareJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	writer, err := Open(path)
	require.NoError(t, err)
	defer writer.Close()
	reader, err := Open(path)
	require.NoError(t, err)
	defer reader.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, writer.Record(ctx, Entry{Kind: "render", Success: true}))
		entries, err := reader.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, i+1)
	}
}

func TestRecentRejectsCorruptTimestamp(t *testing.T) {
	store := openTemp(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		`INSERT INTO requests (received_at, kind, success) VALUES ('not-a-time', 'render', 1)`)
	require.NoError(t, err)

	_, err = store.Recent(ctx, 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "received_at")
}
