package service

import (
	"context"
	"encoding/json"
	"errors"
	"explore_ia_backend/internal/quiz"
	"explore_ia_backend/internal/util"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionKey 一个用户在一个模块上最多一个进行中的测验
type SessionKey struct {
	UserID uint
	Module string
}

func (k SessionKey) String() string {
	return fmt.Sprintf("%d:%s", k.UserID, k.Module)
}

// SessionStore 保存测验会话快照，未找到时返回 util.ErrSessionNotFound
type SessionStore interface {
	Load(ctx context.Context, key SessionKey) (quiz.Snapshot, error)
	Save(ctx context.Context, key SessionKey, snap quiz.Snapshot) error
	Delete(ctx context.Context, key SessionKey) error
}

type memoryEntry struct {
	snap    quiz.Snapshot
	expires time.Time
}

// MemorySessionStore 进程内会话存储，单实例部署使用
type MemorySessionStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	entries   map[SessionKey]memoryEntry
	now       func() time.Time
	lastSweep time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:     ttl,
		entries: make(map[SessionKey]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemorySessionStore) Load(ctx context.Context, key SessionKey) (quiz.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return quiz.Snapshot{}, util.ErrSessionNotFound
	}
	if m.now().After(e.expires) {
		delete(m.entries, key)
		return quiz.Snapshot{}, util.ErrSessionNotFound
	}
	return e.snap, nil
}

func (m *MemorySessionStore) Save(ctx context.Context, key SessionKey, snap quiz.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.entries[key] = memoryEntry{snap: snap, expires: now.Add(m.ttl)}

	// 每个 TTL 周期最多清理一次过期会话
	if now.Sub(m.lastSweep) >= m.ttl {
		for k, e := range m.entries {
			if now.After(e.expires) {
				delete(m.entries, k)
			}
		}
		m.lastSweep = now
	}
	return nil
}

func (m *MemorySessionStore) Delete(ctx context.Context, key SessionKey) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// RedisSessionStore 会话以 JSON 快照形式存入 Redis，多实例部署共享
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
	Prefix string
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl, Prefix: "explore_ia:quiz:"}
}

func (r *RedisSessionStore) redisKey(key SessionKey) string {
	return r.Prefix + key.String()
}

func (r *RedisSessionStore) Load(ctx context.Context, key SessionKey) (quiz.Snapshot, error) {
	raw, err := r.Client.Get(ctx, r.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return quiz.Snapshot{}, util.ErrSessionNotFound
	}
	if err != nil {
		return quiz.Snapshot{}, err
	}

	var snap quiz.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return quiz.Snapshot{}, fmt.Errorf("%w: %v", quiz.ErrCorruptSnapshot, err)
	}
	return snap, nil
}

func (r *RedisSessionStore) Save(ctx context.Context, key SessionKey, snap quiz.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, r.redisKey(key), raw, r.TTL).Err()
}

func (r *RedisSessionStore) Delete(ctx context.Context, key SessionKey) error {
	return r.Client.Del(ctx, r.redisKey(key)).Err()
}
