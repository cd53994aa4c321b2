package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teicheck/teicheck/internal/adapters/outbound/history"
	"github.com/teicheck/teicheck/internal/domain"
)

func TestLoad_NoHistoryReturnsNil(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.RunEntry{
		Timestamp:   "2026-08-22T12:00:00Z",
		CommitHash:  "abc123",
		Collections: 1,
		Resources:   3,
		Passed:      3,
		Failed:      1,
	}
	require.NoError(t, h.Save(dir, entry))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestSave_AppendsPreservingOrder(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "2026-08-20T00:00:00Z"}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "2026-08-21T00:00:00Z"}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2026-08-20T00:00:00Z", entries[0].Timestamp)
	assert.Equal(t, "2026-08-21T00:00:00Z", entries[1].Timestamp)
}
