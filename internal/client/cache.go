package client

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/pkg/consts"
	"Photoshare/internal/pkg/redis"
	"context"
	"sync"

	json "github.com/goccy/go-json"
)

// SummaryCache 评论摘要缓存，策略为 write-once-read-many：
// Put 只在键不存在时写入且永不过期，Get 命中即返回，不做任何回源校验。
// 数据陈旧是这里刻意选择的取舍；将来要加淘汰策略时换一个实现即可，接口不动。
type SummaryCache interface {
	Get(ctx context.Context, userID string) ([]dto.CommentSummary, bool, error)
	Put(ctx context.Context, userID string, comments []dto.CommentSummary) error
}

type redisSummaryCache struct{}

// NewRedisSummaryCache 基于 Redis 的持久缓存实现
func NewRedisSummaryCache() SummaryCache {
	return &redisSummaryCache{}
}

func (s *redisSummaryCache) Get(ctx context.Context, userID string) ([]dto.CommentSummary, bool, error) {
	value, err := redis.GetValue(ctx, consts.CommentCacheKey+userID)
	if err != nil {
		return nil, false, err
	}
	// 存进去的永远是 JSON 数组，空串只会是未命中
	if value == "" {
		return nil, false, nil
	}

	var comments []dto.CommentSummary
	if err := json.Unmarshal([]byte(value), &comments); err != nil {
		return nil, false, err
	}
	return comments, true, nil
}

func (s *redisSummaryCache) Put(ctx context.Context, userID string, comments []dto.CommentSummary) error {
	data, err := json.Marshal(comments)
	if err != nil {
		return err
	}
	_, err = redis.SetIfAbsent(ctx, consts.CommentCacheKey+userID, string(data))
	return err
}

type memorySummaryCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemorySummaryCache 进程内缓存实现，语义与 Redis 版一致
func NewMemorySummaryCache() SummaryCache {
	return &memorySummaryCache{entries: make(map[string][]byte)}
}

func (s *memorySummaryCache) Get(ctx context.Context, userID string) ([]dto.CommentSummary, bool, error) {
	s.mu.RLock()
	data, ok := s.entries[consts.CommentCacheKey+userID]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	var comments []dto.CommentSummary
	if err := json.Unmarshal(data, &comments); err != nil {
		return nil, false, err
	}
	return comments, true, nil
}

func (s *memorySummaryCache) Put(ctx context.Context, userID string, comments []dto.CommentSummary) error {
	data, err := json.Marshal(comments)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	key := consts.CommentCacheKey + userID
	if _, ok := s.entries[key]; ok {
		return nil
	}
	s.entries[key] = data
	return nil
}
