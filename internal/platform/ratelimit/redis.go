package ratelimit

import (
	"context"
	"strconv"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

// windowCounter increments KEYS[1] and starts its expiry on the first hit,
// in one round trip.
var windowCounter = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// Redis enforces a fixed one-minute window per key shared by every replica.
type Redis struct {
	client redis.Scripter
	prefix string
	max    int64
	window time.Duration
	now    func() time.Time
}

func NewRedis(client redis.Scripter, prefix string, cfg Config) *Redis {
	cfg = cfg.normalized()
	return &Redis{
		client: client,
		prefix: prefix,
		// Same ceiling as the memory bucket: Burst at once, then one refill
		// per 1/PerMinute of a minute, the last landing on the next window.
		max:    int64(cfg.PerMinute + cfg.Burst - 1),
		window: time.Minute,
		now:    time.Now,
	}
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	bucket := r.now().Unix() / int64(r.window/time.Second)
	redisKey := r.prefix + key + ":" + strconv.FormatInt(bucket, 10)

	count, err := windowCounter.Run(ctx, r.client, []string{redisKey}, r.window.Milliseconds()).Int64()
	if err != nil {
		return false, crerr.Wrapf(err, "increment rate limit key %s", redisKey)
	}

	return count <= r.max, nil
}
