package search

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RecentStore keeps each session's most recent search queries, newest
// first, without duplicates.
type RecentStore interface {
	// Add moves query to the front of the session's list and returns the
	// updated list.
	Add(ctx context.Context, sessionID, query string) ([]string, error)
	List(ctx context.Context, sessionID string) ([]string, error)
}

// pushRecent returns [query, ...recent without query] capped at limit.
func pushRecent(recent []string, query string, limit int) []string {
	out := make([]string, 0, limit)
	out = append(out, query)
	for _, s := range recent {
		if len(out) == limit {
			break
		}
		if s != query {
			out = append(out, s)
		}
	}
	return out
}

// MemoryRecentStore is the default RecentStore. Lists are lost on restart.
// Sessions idle for longer than the idle TTL are dropped, and when
// maxSessions is reached the least recently used session makes room.
type MemoryRecentStore struct {
	mu          sync.RWMutex
	limit       int
	maxSessions int
	idleTTL     time.Duration
	now         func() time.Time
	lastSweep   time.Time
	sessions    map[string]*recentEntry
}

type recentEntry struct {
	queries []string
	touched time.Time
}

// DefaultMaxRecentSessions caps the sessions a MemoryRecentStore holds.
const DefaultMaxRecentSessions = 10000

const sweepEvery = time.Minute

func NewMemoryRecentStore(limit int) *MemoryRecentStore {
	return &MemoryRecentStore{
		limit:       limit,
		maxSessions: DefaultMaxRecentSessions,
		idleTTL:     recentTTL,
		now:         time.Now,
		sessions:    make(map[string]*recentEntry),
	}
}

func (s *MemoryRecentStore) Add(_ context.Context, sessionID, query string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= sweepEvery {
		s.sweep(now)
	}

	e, ok := s.sessions[sessionID]
	if !ok || s.expired(e, now) {
		if !ok && len(s.sessions) >= s.maxSessions {
			s.evictOldest()
		}
		e = &recentEntry{}
		s.sessions[sessionID] = e
	}
	e.queries = pushRecent(e.queries, query, s.limit)
	e.touched = now
	return append([]string(nil), e.queries...), nil
}

func (s *MemoryRecentStore) List(_ context.Context, sessionID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[sessionID]
	if !ok || s.expired(e, s.now()) {
		return []string{}, nil
	}
	return append([]string{}, e.queries...), nil
}

// Len returns the number of sessions currently held.
func (s *MemoryRecentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryRecentStore) expired(e *recentEntry, now time.Time) bool {
	return now.Sub(e.touched) > s.idleTTL
}

// sweep and evictOldest expect s.mu to be held.
func (s *MemoryRecentStore) sweep(now time.Time) {
	for id, e := range s.sessions {
		if s.expired(e, now) {
			delete(s.sessions, id)
		}
	}
	s.lastSweep = now
}

func (s *MemoryRecentStore) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, e := range s.sessions {
		if oldestID == "" || e.touched.Before(oldest) {
			oldestID, oldest = id, e.touched
		}
	}
	delete(s.sessions, oldestID)
}

// recentTTL bounds how long an idle session's searches are kept.
const recentTTL = 30 * 24 * time.Hour

// RedisRecentStore keeps each session's searches in a Redis list.
type RedisRecentStore struct {
	rdb   *redis.Client
	limit int
}

func NewRedisRecentStore(rdb *redis.Client, limit int) *RedisRecentStore {
	return &RedisRecentStore{rdb: rdb, limit: limit}
}

func recentKey(sessionID string) string {
	return "recent_searches:" + sessionID
}

func (s *RedisRecentStore) Add(ctx context.Context, sessionID, query string) ([]string, error) {
	key := recentKey(sessionID)
	var lrange *redis.StringSliceCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, key, 0, query)
		pipe.LPush(ctx, key, query)
		pipe.LTrim(ctx, key, 0, int64(s.limit-1))
		pipe.Expire(ctx, key, recentTTL)
		lrange = pipe.LRange(ctx, key, 0, -1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lrange.Val(), nil
}

func (s *RedisRecentStore) List(ctx context.Context, sessionID string) ([]string, error) {
	out, err := s.rdb.LRange(ctx, recentKey(sessionID), 0, int64(s.limit-1)).Result()
	if err != nil {
		return nil, err
	}
	return out, nil
}
