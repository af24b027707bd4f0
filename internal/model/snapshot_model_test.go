package model

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSnapshot = `{
  "tiers": [
    {"id": "legend", "label": "LEGEND", "capacity": 30, "promoteTop": 0, "demoteBottom": 5},
    {"id": "bronze", "label": "BRONZE"}
  ],
  "ranks": {
    "legend": {
      "last": [{"tiktokId": "aya", "diamonds": 320000, "liveMatch": 1200, "days": 24, "hours": 150, "pt": 612.4}],
      "this": [{"tiktokId": "ren", "diamonds": "81000", "days": null}]
    }
  }
}`

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleSnapshot), 0o600))

	raw, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, raw.Tiers, 2)
	assert.Equal(t, "bronze", raw.Tiers[1].ID)

	snap, err := Normalize(raw)
	require.NoError(t, err)
	prev := snap.Entries("legend", PeriodPrevious)
	require.Len(t, prev, 1)
	assert.Equal(t, int64(320000), prev[0].Diamonds)
	require.NotNil(t, prev[0].Points)
	assert.Equal(t, int64(612), CalcScore(prev[0]))

	cur := snap.Entries("legend", PeriodCurrent)
	require.Len(t, cur, 1)
	assert.Equal(t, int64(81000), cur[0].Diamonds)
	assert.Equal(t, 0.0, cur[0].Days)
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotMissing)
}

func TestFileSource_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := NewFileSource(path).Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSnapshotMissing)
}

type fakeRedis struct {
	val string
	err error
	key string
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.key = key
	return redis.NewStringResult(f.val, f.err)
}

func TestRedisSource_Load(t *testing.T) {
	fake := &fakeRedis{val: sampleSnapshot}
	src := &RedisSource{client: fake, Key: "standings:snapshot"}

	raw, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "standings:snapshot", fake.key)
	assert.Len(t, raw.Tiers, 2)
	assert.Len(t, raw.Ranks["legend"]["last"], 1)
}

func TestRedisSource_Errors(t *testing.T) {
	_, err := (&RedisSource{client: &fakeRedis{err: redis.Nil}, Key: "k"}).Load(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotMissing)

	boom := errors.New("connection refused")
	_, err = (&RedisSource{client: &fakeRedis{err: boom}, Key: "k"}).Load(context.Background())
	assert.ErrorIs(t, err, boom)
}
