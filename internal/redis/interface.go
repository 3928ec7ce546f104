package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client is the subset of go-redis the stores depend on. It is the full
// universal client so single instance and cluster deployments share code.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations
type Pipeliner interface {
	redis.Pipeliner
}
