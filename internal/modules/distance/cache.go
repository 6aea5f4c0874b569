// README: Redis-backed TTL cache for measured distance results.
package distance

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache memoizes measured estimates per station pair so repeated taxi
// syntheses for the same pair skip the remote call. Heuristic estimates are
// never stored. Misses and Redis errors are equivalent: the caller just goes
// to the providers.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

func cacheKey(departure, arrival string) string {
	return "distance:" + strings.ToLower(departure) + "|" + strings.ToLower(arrival)
}

func (c *Cache) Get(ctx context.Context, departure, arrival string) (Estimate, bool) {
	raw, err := c.redis.Get(ctx, cacheKey(departure, arrival)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).Debug("distance cache read failed")
		}
		return Estimate{}, false
	}

	var est Estimate
	if err := json.Unmarshal(raw, &est); err != nil || est.Source != SourceMeasured {
		return Estimate{}, false
	}
	return est, true
}

func (c *Cache) Put(ctx context.Context, departure, arrival string, est Estimate) {
	if est.Source != SourceMeasured {
		return
	}
	raw, err := json.Marshal(est)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, cacheKey(departure, arrival), raw, c.ttl).Err(); err != nil {
		logrus.WithError(err).Debug("distance cache write failed")
	}
}
