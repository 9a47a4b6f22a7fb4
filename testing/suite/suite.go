// Package suite starts throwaway redis containers for repository tests.
package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	containerTTL = 120 // seconds before docker kills the container
	maxWait      = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

// New starts redis in docker and returns a flushed client. The test is skipped
// when docker is unreachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWait)
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge redis container: %v", err)
		}
	})

	// never returns error
	_ = resource.Expire(containerTTL)

	pool.MaxWait = maxWait

	var client *redis.Client
	if err = pool.Retry(func() error {
		client = redis.NewClient(&redis.Options{Addr: resource.GetHostPort(redisPort)})
		return client.Ping(ctx).Err()
	}); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	if err = client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Storage: client,
	}
}
