package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, Entry{
		RunID: "run-1", Project: "demo", Framework: "react", Industry: "salon",
		Outcome: "success", Pages: 4, Files: 20, Duration: 120 * time.Millisecond,
	}))
	require.NoError(t, s.Record(ctx, Entry{
		RunID: "run-2", Project: "demo", Framework: "vue", Industry: "salon",
		Outcome: "warning", Pages: 5, Files: 24, Warnings: 1,
	}))

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "run-2", entries[0].RunID, "newest first")
	assert.Equal(t, "run-1", entries[1].RunID)
	assert.Equal(t, 120*time.Millisecond, entries[1].Duration)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestRecentHonorsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, Entry{RunID: "r", Project: "p", Framework: "react", Industry: "x", Outcome: "success"}))
	}
	entries, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRecentOnEmptyStore(t *testing.T) {
	s := openTestStore(t)
	entries, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
