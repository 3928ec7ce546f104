// Package redis wraps the go-redis client so stores can be tested against
// mocks or miniredis.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

// Options configures Redis client behavior
type Options struct {
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
	UseTLS       bool
}

func (o *Options) tlsConfig() *tls.Config {
	if !o.UseTLS {
		return nil
	}
	return &tls.Config{
		InsecureSkipVerify: true, // #nosec G402
	}
}

// NewClient creates a Redis client for a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:         endpoint,
		MinIdleConns: opts.MinIdleConns,
		PoolSize:     opts.PoolSize,
		MaxRetries:   opts.MaxRetries,
		DialTimeout:  opts.DialTimeout,
		TLSConfig:    opts.tlsConfig(),
	}), nil
}

// NewClusterClient creates a Redis client for cluster mode
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:        endpoints,
		MinIdleConns: opts.MinIdleConns,
		PoolSize:     opts.PoolSize,
		MaxRetries:   opts.MaxRetries,
		DialTimeout:  opts.DialTimeout,
		TLSConfig:    opts.tlsConfig(),
	}), nil
}

// Connect picks a single instance or cluster client from the endpoint
// count and pings it
func Connect(ctx context.Context, endpoints []string, opts *Options) (Client, error) {
	var (
		client Client
		err    error
	)
	if len(endpoints) == 1 {
		client, err = NewClient(endpoints[0], opts)
	} else {
		client, err = NewClusterClient(endpoints, opts)
	}
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis: ping failed")
	}
	return client, nil
}
