package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/f3rmion/memenhance/internal/meme"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(context.Background(), filepath.Join(t.TempDir(), "faces.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRecordAndTop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "memenhance.catalog")
	defer teardown()
	//
	ctx := context.Background()
	c := openTemp(t)
	clock := time.Unix(1700000000, 0)
	c.now = func() time.Time { return clock }
	//
	body := meme.AnalyzeLine("ヘ( ^_^)ノ ＼(^_^ )Gimme (ツ) Five")
	require.NoError(t, c.Record(ctx, body.Memes))
	clock = clock.Add(time.Hour)
	require.NoError(t, c.Record(ctx, meme.AnalyzeLine("so ( ^_^) again").Memes))
	//
	top, err := c.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, " ^_^", top[0].Face)
	assert.Equal(t, 2, top[0].Count)
	assert.Equal(t, "ヘ( ^_^)ノ", top[0].Sample)
	assert.Equal(t, int64(1700000000), top[0].FirstSeen.Unix())
	assert.Equal(t, int64(1700003600), top[0].LastSeen.Unix())
	assert.Equal(t, 1, top[1].Count)
	//
	top, err = c.Top(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	c := openTemp(t)
	require.NoError(t, c.Record(ctx, meme.AnalyzeLine("(ツ)").Memes))
	e, err := c.Lookup(ctx, "ツ")
	require.NoError(t, err)
	assert.Equal(t, 1, e.Count)
	//
	_, err = c.Lookup(ctx, "-_-")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRecordNothing(t *testing.T) {
	c := openTemp(t)
	require.NoError(t, c.Record(context.Background(), nil))
	top, err := c.Top(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, top)
}
