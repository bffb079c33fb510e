// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

import (
	"sync"
	"weak"

	"golang.org/x/text/language"
)

// IntlMemoizer is a process-wide registry of ConcurrentMemoizer
// instances keyed by locale, so that bundles for the same locale share
// one plural-rule cache instead of rebuilding it per bundle. Entries
// are held by weak pointer: once every Bundle referencing a locale's
// memoizer has been collected, the registry drops it too rather than
// pinning every locale ever touched for the life of the process.
type IntlMemoizer struct {
	mu    sync.Mutex
	byTag map[string]weak.Pointer[ConcurrentMemoizer]
}

// NewIntlMemoizer constructs an empty registry.
func NewIntlMemoizer() *IntlMemoizer {
	return &IntlMemoizer{byTag: make(map[string]weak.Pointer[ConcurrentMemoizer])}
}

// Get returns the shared ConcurrentMemoizer for tag, creating one if
// none is registered or the previous one has already been collected.
func (r *IntlMemoizer) Get(tag language.Tag) *ConcurrentMemoizer {
	key := tag.String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if wp, ok := r.byTag[key]; ok {
		if m := wp.Value(); m != nil {
			return m
		}
	}

	m := NewConcurrentMemoizer()
	r.byTag[key] = weak.Make(m)
	return m
}

// DefaultIntlMemoizer is the shared registry new bundles draw from
// unless a caller supplies its own.
var DefaultIntlMemoizer = NewIntlMemoizer()
