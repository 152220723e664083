// Package redis provides a wrapper around the go-redis client library
// for improved testing and abstraction.
package redis

import (
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a Redis client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr: endpoint,
	}
	applyOptions(redisOpts, opts)

	return redis.NewClient(redisOpts), nil
}

// NewClientFromURL creates a Redis client from a redis:// or rediss:// URL
func NewClientFromURL(url string, opts *Options) (Client, error) {
	if url == "" {
		return nil, errors.New("redis: url is required")
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}

	if opts == nil {
		opts = &Options{}
	}
	applyOptions(redisOpts, opts)

	return redis.NewClient(redisOpts), nil
}

func applyOptions(redisOpts *redis.Options, opts *Options) {
	if opts.PoolSize > 0 {
		redisOpts.PoolSize = opts.PoolSize
	}
	if opts.MinIdleConns > 0 {
		redisOpts.MinIdleConns = opts.MinIdleConns
	}
	if opts.ConnMaxIdleTime > 0 {
		redisOpts.ConnMaxIdleTime = opts.ConnMaxIdleTime
	}
	if opts.MaxRetries != 0 {
		redisOpts.MaxRetries = opts.MaxRetries
	}
	if opts.UseTLS && redisOpts.TLSConfig == nil {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
}
