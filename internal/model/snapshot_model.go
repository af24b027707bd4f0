package model

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/zeromicro/go-zero/core/jsonx"
)

// Source 提供原始快照，只读
type Source interface {
	Load(ctx context.Context) (*RawSnapshot, error)
}

// ErrSnapshotMissing 数据源中没有快照
var ErrSnapshotMissing = errors.New("snapshot missing")

// FileSource 从本地 JSON 文件读取快照
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Load(_ context.Context) (*RawSnapshot, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotMissing, s.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot file failed: %w", err)
	}
	return decodeSnapshot(data)
}

// stringGetter 只用到 redis 的 GET
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisSource 从 Redis 字符串键读取快照 JSON
type RedisSource struct {
	client stringGetter
	Key    string
}

func NewRedisSource(client *redis.Client, key string) *RedisSource {
	return &RedisSource{client: client, Key: key}
}

func (s *RedisSource) Load(ctx context.Context) (*RawSnapshot, error) {
	data, err := s.client.Get(ctx, s.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: redis key %s", ErrSnapshotMissing, s.Key)
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot from redis failed: %w", err)
	}
	return decodeSnapshot(data)
}

func decodeSnapshot(data []byte) (*RawSnapshot, error) {
	var raw RawSnapshot
	if err := jsonx.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode snapshot failed: %w", err)
	}
	return &raw, nil
}
