package svc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tier_standings/internal/model"
)

type fakeSource struct {
	mu    sync.Mutex
	raw   *model.RawSnapshot
	err   error
	loads int
}

func (f *fakeSource) Load(context.Context) (*model.RawSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	return f.raw, f.err
}

func (f *fakeSource) set(raw *model.RawSnapshot, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.raw, f.err = raw, err
}

func (f *fakeSource) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loads
}

func rawWithTier(id string) *model.RawSnapshot {
	return &model.RawSnapshot{
		Tiers: []model.RawTier{{ID: id, Capacity: 10}},
		Ranks: map[string]map[string][]model.RawEntry{
			id: {"previous": {{ID: "aya", Diamonds: 12000.0}}},
		},
	}
}

func TestSnapshotStore_Refresh(t *testing.T) {
	src := &fakeSource{raw: rawWithTier("gold")}
	store := NewSnapshotStore(src)
	assert.Nil(t, store.Current())

	require.NoError(t, store.Refresh(context.Background()))
	snap := store.Current()
	require.NotNil(t, snap)
	_, ok := snap.Tier("gold")
	assert.True(t, ok)

	src.set(nil, errors.New("redis down"))
	assert.Error(t, store.Refresh(context.Background()))
	assert.Same(t, snap, store.Current(), "failed refresh keeps the last snapshot")

	src.set(&model.RawSnapshot{Tiers: []model.RawTier{{ID: ""}}}, nil)
	err := store.Refresh(context.Background())
	assert.ErrorIs(t, err, model.ErrInvalidSnapshot)
	assert.Same(t, snap, store.Current())

	src.set(rawWithTier("silver"), nil)
	require.NoError(t, store.Refresh(context.Background()))
	_, ok = store.Current().Tier("silver")
	assert.True(t, ok)
}

func TestSnapshotStore_StartRefresh(t *testing.T) {
	src := &fakeSource{raw: rawWithTier("gold")}
	store := NewSnapshotStore(src)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.StartRefresh(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return src.count() >= 2 && store.Current() != nil
	}, time.Second, 5*time.Millisecond)
}

func TestSnapshotStore_StartRefreshDisabled(t *testing.T) {
	src := &fakeSource{raw: rawWithTier("gold")}
	store := NewSnapshotStore(src)
	store.StartRefresh(context.Background(), 0)

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, src.count())
}
