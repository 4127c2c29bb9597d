// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cache memoizes certificate records keyed by normalized hostname.
//
// Concurrent lookups for the same uncached hostname collapse into a single
// underlying fetch ([singleflight]); every caller receives that fetch's
// outcome. Successful records are stored, failures never are, so a transient
// failure heals on the next lookup without an invalidation path.
//
// By default entries live for the process lifetime with no size bound. A
// maximum entry count and a TTL can be configured; both are backed by an
// [expirable LRU].
//
// [singleflight]: https://pkg.go.dev/golang.org/x/sync/singleflight
// [expirable LRU]: https://pkg.go.dev/github.com/hashicorp/golang-lru/v2/expirable
package cache
