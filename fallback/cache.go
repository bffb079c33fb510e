// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fallback

import (
	"iter"
	"sync"
	"sync/atomic"
)

// Cache wraps a finite synchronous bundle sequence and memoizes each
// produced item using a double-buffered append-only slice: readers
// that only need items already pulled take a lock-free path through
// readItems, and only a reader racing ahead of the pull position pays
// for the mutex. Grounded on the copy-on-write container the bundle's
// function table uses for the same reason, adapted here from an
// arbitrary-index slice to an append-only log.
type Cache struct {
	mu    sync.Mutex
	next  func() (BundleResult, bool)
	stop  func()
	items []BundleResult
	done  bool

	readItems atomic.Pointer[[]BundleResult]
	dirty     atomic.Bool
}

func newCache(seq iter.Seq[BundleResult]) *Cache {
	next, stop := iter.Pull(seq)
	c := &Cache{next: next, stop: stop}
	empty := []BundleResult{}
	c.readItems.Store(&empty)
	return c
}

// At returns the idx-th bundle result, pulling from the underlying
// sequence only as far as necessary. ok is false once the sequence is
// exhausted before reaching idx.
func (c *Cache) At(idx int) (BundleResult, bool) {
	if !c.dirty.Load() {
		if snap := c.readItems.Load(); snap != nil && idx >= 0 && idx < len(*snap) {
			return (*snap)[idx], true
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for idx >= len(c.items) && !c.done {
		v, ok := c.next()
		if !ok {
			c.done = true
			break
		}
		c.items = append(c.items, v)
		c.dirty.Store(true)
	}

	if c.dirty.Load() {
		snap := append([]BundleResult(nil), c.items...)
		c.readItems.Store(&snap)
		c.dirty.Store(false)
	}

	if idx < 0 || idx >= len(c.items) {
		return BundleResult{}, false
	}
	return c.items[idx], true
}

// Close releases the underlying sequence's resources. It is safe to
// call more than once.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}
