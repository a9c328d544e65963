package usage

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
	s, err := Open(filepath.Join(t.TempDir(), "usage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndTop(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	clock := time.Unix(1700000000, 0)
	s.now = func() time.Time { return clock }

	require.NoError(t, s.Record(ctx, "ship it 🚀🚀 👍"))
	clock = clock.Add(time.Minute)
	require.NoError(t, s.Record(ctx, "👨‍👩‍👧 and 👍🏽"))
	require.NoError(t, s.Record(ctx, "no emoji at all"))

	top, err := s.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 4)

	assert.Equal(t, "🚀", top[0].Glyph)
	assert.Equal(t, 2, top[0].Count)
	assert.Equal(t, clock.Unix(), top[1].LastUsed.Unix())
	assert.ElementsMatch(t, []string{"👨‍👩‍👧", "👍🏽"}, []string{top[1].Glyph, top[2].Glyph})
	assert.Equal(t, "👍", top[3].Glyph)

	top, err = s.Top(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Record(ctx, "🎉"))
	require.NoError(t, s.Reset(ctx))

	top, err := s.Top(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}
