package testinternals

import (
	"context"
	"net"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

// StartRedis runs a redis container and returns its host port.
func StartRedis(t *testing.T) string {
	t.Helper()

	dockerPool := newDockerPool(t)
	redisResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		t.Fatalf("run redis: %s", err)
	}
	t.Cleanup(func() {
		if err := dockerPool.Purge(redisResource); err != nil {
			t.Logf("purge redis container: %s", err)
		}
	})

	redisPort := redisResource.GetPort("6379/tcp")
	if err := dockerPool.Retry(func() error {
		rdb := redis.NewClient(&redis.Options{Addr: net.JoinHostPort("localhost", redisPort)})
		defer rdb.Close()
		return rdb.Ping(context.Background()).Err()
	}); err != nil {
		t.Fatalf("redis not ready: %s", err)
	}

	return redisPort
}
