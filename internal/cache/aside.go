package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Aside implements the cache-aside pattern: it tries to fill dest from the
// cached JSON at key, and on a miss invokes load and writes the result back
// with the given TTL. When Redis is unavailable it degrades to calling load
// directly; cache write failures are silent because the loaded value is
// already in hand.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, load func() error) error {
	if client != nil {
		if data, err := client.Get(ctx, key).Bytes(); err == nil {
			if jsonErr := json.Unmarshal(data, dest); jsonErr == nil {
				return nil
			}
			// Corrupt entry; drop it and fall through to the loader.
			client.Del(ctx, key)
		}
	}

	if err := load(); err != nil {
		return err
	}

	if client != nil {
		if data, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, data, ttl)
		}
	}
	return nil
}
