// Package testinternals starts throwaway dependencies for integration tests.
package testinternals

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/2beens/trainerdesk/internal/db"
)

const (
	TestDBName     = "trainerdesk"
	TestDBUser     = "postgres"
	TestDBPassword = "postgres"
)

func newDockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not create new dockertest pool: %s", err)
	}
	if err := dockerPool.Client.Ping(); err != nil {
		t.Fatalf("could not ping dockertest pool: %s", err)
	}
	dockerPool.MaxWait = time.Minute
	return dockerPool
}

// StartPostgres runs an empty postgres container and returns its host port
// once it accepts connections. The container is purged when the test finishes.
func StartPostgres(t *testing.T) string {
	t.Helper()

	dockerPool := newDockerPool(t)
	pgResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=" + TestDBUser,
			"POSTGRES_PASSWORD=" + TestDBPassword,
			"POSTGRES_DB=" + TestDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		t.Fatalf("dockerpool run postgres: %s", err)
	}
	t.Cleanup(func() {
		if err := dockerPool.Purge(pgResource); err != nil {
			t.Logf("purge postgres container: %s", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable", TestDBUser, TestDBPassword, pgPort, TestDBName)
	if err := dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	}); err != nil {
		t.Fatalf("postgres not ready: %s", err)
	}

	return pgPort
}

// Postgres runs a postgres container, applies the schema and returns a pool to it.
func Postgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgPort := StartPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     "localhost",
		DBPort:     pgPort,
		DBUser:     TestDBUser,
		DBPassword: TestDBPassword,
		DBName:     TestDBName,
	})
	if err != nil {
		t.Fatalf("new db pool: %s", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %s", err)
	}

	return pool
}
