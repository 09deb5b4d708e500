package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/billing/model"
)

// cluster backs the idempotency keyspace.
var cluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// replayCache stores one record per (resource, key) pair. Records expire
// after 24 hours; a retry after that window is treated as a new request.
var replayCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyRecord](
	cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
