package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisClient *redis.Client

// NewRedis starts the singleton miniredis instance and returns a client for it.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisClient = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisClient
}

// ClearRedis removes every key so cached reports cannot leak across scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
