// Package cache provides Redis caching utilities for the application.
package cache

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"newsroom/internal/observability"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Pool sizing for the handful of hot lookups this service caches. The cache
// is a read accelerator, so connection pressure stays low.
const (
	poolSize     = 10
	minIdleConns = 2
	dialTimeout  = 2 * time.Second
)

type metricsHook struct{}

func (h metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrorRate.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (h metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrorRate.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// InitRedis initializes the Redis client with the given address, either a
// bare host:port or a redis:// URL. Failures leave the client nil and the
// application serving without a cache.
func InitRedis(addr string) {
	opts, err := parseOptions(addr)
	if err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		client = nil
		return
	}

	opts.PoolSize = poolSize
	opts.MinIdleConns = minIdleConns
	opts.DialTimeout = dialTimeout

	client = redis.NewClient(opts)
	client.AddHook(metricsHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		client = nil
		return
	}
	log.Printf("Redis connected at %s", opts.Addr)
}

func parseOptions(addr string) (*redis.Options, error) {
	if strings.Contains(addr, "://") {
		opts, err := redis.ParseURL(addr)
		if err != nil {
			return nil, errors.New("invalid REDIS_URL " + addr + ": " + err.Error())
		}
		return opts, nil
	}
	return &redis.Options{Addr: addr}, nil
}

// GetClient returns the current Redis client instance.
func GetClient() *redis.Client {
	return client
}
