// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fallback

import (
	"context"
	"sync"
)

// AsyncCache is the cooperative analog of Cache: it wraps a channel of
// bundle results instead of a synchronous sequence and memoizes each
// item as it arrives, so every item is produced at most once even
// across awaiters that request the same index. The lock is held across
// the channel receive, which is correct under the cooperative,
// single-threaded scheduling model this package targets: there is
// never more than one active awaiter per cache to contend over it.
type AsyncCache struct {
	mu    sync.Mutex
	ch    <-chan BundleResult
	items []BundleResult
	done  bool
}

func newAsyncCache(ch <-chan BundleResult) *AsyncCache {
	return &AsyncCache{ch: ch}
}

// At returns the idx-th bundle result, awaiting further items from the
// channel as needed. ok is false once the channel has closed before
// reaching idx; a non-nil error means ctx was cancelled while awaiting.
func (c *AsyncCache) At(ctx context.Context, idx int) (BundleResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for idx >= len(c.items) && !c.done {
		select {
		case v, ok := <-c.ch:
			if !ok {
				c.done = true
				continue
			}
			c.items = append(c.items, v)
		case <-ctx.Done():
			return BundleResult{}, false, ctx.Err()
		}
	}

	if idx >= len(c.items) {
		return BundleResult{}, false, nil
	}
	return c.items[idx], true, nil
}
