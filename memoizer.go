// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

import (
	"errors"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// ErrReentrantMemoizer is returned when a memoizer is re-entered from
// within one of its own callbacks.
var ErrReentrantMemoizer = errors.New("fluent: reentrant memoizer access")

// PluralForm selects which CLDR rule set a plural-rule service applies:
// cardinal ("1 apple" / "2 apples") or ordinal ("1st" / "2nd"). Only
// Cardinal is exercised by the resolver today; Ordinal exists so the
// memoizer's (type, args) key space already has room for it.
type PluralForm int8

const (
	PluralCardinal PluralForm = iota
	PluralOrdinal
)

// Memoizer locates or constructs a keyed linguistic service and
// returns its result, specialized to the one Service the resolver
// needs today: plural category lookup. Go disallows type parameters on
// methods, so this collapses a generic locate-or-construct capability
// to a single concrete operation.
type Memoizer interface {
	// PluralCategory locates or constructs the plural-rule service for
	// (tag, form) and returns the CLDR category n falls into.
	PluralCategory(tag language.Tag, form PluralForm, n float64) (plural.Form, error)
}

type pluralRuleKey struct {
	locale string
	form   PluralForm
}

type pluralRuleService struct {
	tag  language.Tag
	form PluralForm
}

func (s *pluralRuleService) category(i, v, w, f, t int) plural.Form {
	if s.form == PluralOrdinal {
		return plural.Ordinal.MatchPlural(s.tag, i, v, w, f, t)
	}
	return plural.Cardinal.MatchPlural(s.tag, i, v, w, f, t)
}

// SingleThreadMemoizer is the non-concurrent Memoizer variant: reentrancy
// is detected with a plain bool flag, and a Bundle using it must not
// cross goroutines.
type SingleThreadMemoizer struct {
	services map[pluralRuleKey]*pluralRuleService
	inUse    bool
}

// NewSingleThreadMemoizer constructs an empty single-threaded memoizer.
func NewSingleThreadMemoizer() *SingleThreadMemoizer {
	return &SingleThreadMemoizer{services: make(map[pluralRuleKey]*pluralRuleService)}
}

func (m *SingleThreadMemoizer) PluralCategory(tag language.Tag, form PluralForm, n float64) (plural.Form, error) {
	if m.inUse {
		return 0, ErrReentrantMemoizer
	}
	m.inUse = true
	defer func() { m.inUse = false }()

	svc := m.lookup(tag, form)
	i, v, w, f, t := decomposeNumber(n)
	return svc.category(i, v, w, f, t), nil
}

func (m *SingleThreadMemoizer) lookup(tag language.Tag, form PluralForm) *pluralRuleService {
	key := pluralRuleKey{locale: tag.String(), form: form}
	svc, ok := m.services[key]
	if !ok {
		svc = &pluralRuleService{tag: tag, form: form}
		m.services[key] = svc
	}
	return svc
}

// ConcurrentMemoizer is the thread-safe Memoizer variant: an internal
// mutex guards the service cache, and reentrancy is detected via
// TryLock rather than a thread-identity check, since the standard
// library's sync.Mutex carries none — a goroutine that re-enters the
// same memoizer while already holding the lock would otherwise
// deadlock; TryLock turns that into a well-defined error instead.
type ConcurrentMemoizer struct {
	mu       sync.Mutex
	services map[pluralRuleKey]*pluralRuleService
}

// NewConcurrentMemoizer constructs an empty thread-safe memoizer.
func NewConcurrentMemoizer() *ConcurrentMemoizer {
	return &ConcurrentMemoizer{services: make(map[pluralRuleKey]*pluralRuleService)}
}

func (m *ConcurrentMemoizer) PluralCategory(tag language.Tag, form PluralForm, n float64) (plural.Form, error) {
	if !m.mu.TryLock() {
		return 0, ErrReentrantMemoizer
	}
	defer m.mu.Unlock()

	svc := m.lookup(tag, form)
	i, v, w, f, t := decomposeNumber(n)
	return svc.category(i, v, w, f, t), nil
}

func (m *ConcurrentMemoizer) lookup(tag language.Tag, form PluralForm) *pluralRuleService {
	key := pluralRuleKey{locale: tag.String(), form: form}
	svc, ok := m.services[key]
	if !ok {
		svc = &pluralRuleService{tag: tag, form: form}
		m.services[key] = svc
	}
	return svc
}
