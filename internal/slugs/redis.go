package slugs

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"
)

const reservationTTL = 24 * time.Hour

// RedisAllocator reserves slugs in a shared Redis keyspace using SETNX,
// so multiple dispatcher processes sharing one Redis instance never hand
// out the same slug. Mirrors the lock pattern the teacher uses for its
// matchmaking queue locks (SetNX-based mutual exclusion).
type RedisAllocator struct {
	client *redis.Client
	prefix string
	rnd    *rand.Rand
}

// NewRedisAllocator wraps a redis client. keyPrefix namespaces the
// reservation keys (e.g. "chimera:slug:").
func NewRedisAllocator(client *redis.Client, keyPrefix string, seed int64) *RedisAllocator {
	return &RedisAllocator{client: client, prefix: keyPrefix, rnd: rand.New(rand.NewSource(seed))}
}

// Generate reserves a slug via SETNX, falling back to local retry if the
// Redis lock is already held or temporarily unreachable.
func (a *RedisAllocator) Generate(isTaken func(slug string) bool) string {
	ctx := context.Background()
	for {
		slug := fmt.Sprintf("%s-%s", adjectives[a.rnd.Intn(len(adjectives))], nouns[a.rnd.Intn(len(nouns))])
		if isTaken(slug) {
			continue
		}

		ok, err := a.client.SetNX(ctx, a.prefix+slug, "1", reservationTTL).Result()
		if err != nil {
			// Redis unreachable: fall back to local uniqueness check only.
			return slug
		}
		if ok {
			return slug
		}
	}
}
