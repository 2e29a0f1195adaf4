// Package integration provides integration tests for dialect using a real
// Couchbase server.
package integration

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/couchbase/gocb/v2"
	"github.com/testcontainers/testcontainers-go/modules/couchbase"
)

const testBucket = "travel"

// Shared container - lazily initialized
var (
	sharedContainer *CouchbaseContainer

	couchbaseOnce sync.Once

	// Track whether the container was started for cleanup
	containerStarted bool
)

// TestMain sets up the shared container for all integration tests.
func TestMain(m *testing.M) {
	// Note: We can't check testing.Short() here because flag.Parse() hasn't been called yet.
	// The individual tests check for short mode themselves.

	code := m.Run()

	ctx := context.Background()

	if containerStarted && sharedContainer != nil {
		if sharedContainer.cluster != nil {
			_ = sharedContainer.cluster.Close(nil)
		}
		if sharedContainer.container != nil {
			_ = sharedContainer.container.Terminate(ctx)
		}
	}

	os.Exit(code)
}

// getCouchbaseContainer returns the shared Couchbase container, starting it if needed.
func getCouchbaseContainer(t *testing.T) *CouchbaseContainer {
	t.Helper()

	couchbaseOnce.Do(func() {
		ctx := context.Background()

		bucket := couchbase.NewBucket(testBucket).
			WithQuota(100).
			WithReplicas(0).
			WithFlushEnabled(false).
			WithPrimaryIndex(false)

		container, err := couchbase.Run(ctx,
			"couchbase:community-7.1.1",
			couchbase.WithAdminCredentials("Administrator", "password"),
			couchbase.WithBuckets(bucket),
		)
		if err != nil {
			log.Fatalf("Failed to start couchbase container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		cluster, err := gocb.Connect(connStr, gocb.ClusterOptions{
			Username: container.Username(),
			Password: container.Password(),
		})
		if err != nil {
			log.Fatalf("Failed to connect to couchbase: %v", err)
		}

		if err := cluster.WaitUntilReady(30*time.Second, nil); err != nil {
			log.Fatalf("Cluster not ready: %v", err)
		}

		if err := cluster.Bucket(testBucket).WaitUntilReady(30*time.Second, nil); err != nil {
			log.Fatalf("Bucket not ready: %v", err)
		}

		sharedContainer = &CouchbaseContainer{
			container: container,
			cluster:   cluster,
			connStr:   connStr,
		}
		containerStarted = true
	})

	return sharedContainer
}
