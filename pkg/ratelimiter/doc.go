// Package ratelimiter is a token bucket limiter for the HTTP API.
//
// Every decode request may trigger an outbound fetch, so the API can be
// limited per client IP:
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(bucket, ratelimiter.ClientIPKey))
//
// Config carries env tags (RATE_LIMIT_CAPACITY, RATE_LIMIT_REFILL_RATE,
// RATE_LIMIT_INTERVAL). A zero capacity means the limiter is not installed.
//
// MemoryStore is process-local. Denied requests do not consume tokens.
package ratelimiter
