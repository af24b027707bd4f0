package svc

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"

	"tier_standings/internal/model"
)

// SnapshotStore 持有当前快照，刷新时整体替换
// 刷新失败时保留上一次成功加载的快照
type SnapshotStore struct {
	source model.Source
	cur    atomic.Pointer[model.Snapshot]
}

func NewSnapshotStore(source model.Source) *SnapshotStore {
	return &SnapshotStore{source: source}
}

// Current 尚未加载成功时返回 nil
func (s *SnapshotStore) Current() *model.Snapshot {
	return s.cur.Load()
}

// Refresh 从数据源加载、校验并替换快照
func (s *SnapshotStore) Refresh(ctx context.Context) error {
	raw, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot failed: %w", err)
	}
	snap, err := model.Normalize(raw)
	if err != nil {
		return fmt.Errorf("normalize snapshot failed: %w", err)
	}
	s.cur.Store(snap)

	entries := 0
	for _, periods := range snap.Buckets {
		for _, list := range periods {
			entries += len(list)
		}
	}
	logx.WithContext(ctx).Infow("snapshot loaded",
		logx.Field("tiers", len(snap.Tiers)),
		logx.Field("entries", entries))
	return nil
}

// StartRefresh 按固定间隔刷新，ctx 结束时退出
func (s *SnapshotStore) StartRefresh(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	threading.GoSafe(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					logx.WithContext(ctx).Errorw("refresh snapshot failed", logx.Field("error", err.Error()))
				}
			}
		}
	})
}
