// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

import (
	"testing"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

func TestSingleThreadMemoizerEnglishCardinal(t *testing.T) {
	m := NewSingleThreadMemoizer()
	tag := language.MustParse("en")

	cases := []struct {
		n    float64
		want plural.Form
	}{
		{1, plural.One},
		{0, plural.Other},
		{2, plural.Other},
		{5, plural.Other},
	}

	for _, c := range cases {
		got, err := m.PluralCategory(tag, PluralCardinal, c.n)
		if err != nil {
			t.Fatalf("PluralCategory(%v): %v", c.n, err)
		}
		if got != c.want {
			t.Errorf("PluralCategory(%v) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestConcurrentMemoizerGermanCardinal(t *testing.T) {
	m := NewConcurrentMemoizer()
	tag := language.MustParse("de")

	one, err := m.PluralCategory(tag, PluralCardinal, 1)
	if err != nil {
		t.Fatalf("PluralCategory(1): %v", err)
	}
	if one != plural.One {
		t.Errorf("PluralCategory(1) = %v, want One", one)
	}

	other, err := m.PluralCategory(tag, PluralCardinal, 3)
	if err != nil {
		t.Fatalf("PluralCategory(3): %v", err)
	}
	if other != plural.Other {
		t.Errorf("PluralCategory(3) = %v, want Other", other)
	}
}

func TestSingleThreadMemoizerRejectsReentrance(t *testing.T) {
	m := NewSingleThreadMemoizer()
	tag := language.MustParse("en")

	m.inUse = true
	if _, err := m.PluralCategory(tag, PluralCardinal, 1); err != ErrReentrantMemoizer {
		t.Fatalf("got err %v, want ErrReentrantMemoizer", err)
	}
}

func TestConcurrentMemoizerRejectsReentrance(t *testing.T) {
	m := NewConcurrentMemoizer()
	tag := language.MustParse("en")

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.PluralCategory(tag, PluralCardinal, 1); err != ErrReentrantMemoizer {
		t.Fatalf("got err %v, want ErrReentrantMemoizer", err)
	}
}

func TestMemoizerCachesServicePerLocaleAndForm(t *testing.T) {
	m := NewSingleThreadMemoizer()
	tag := language.MustParse("pl")

	if _, err := m.PluralCategory(tag, PluralCardinal, 2); err != nil {
		t.Fatalf("PluralCategory: %v", err)
	}
	if got := len(m.services); got != 1 {
		t.Fatalf("len(services) = %d, want 1", got)
	}

	if _, err := m.PluralCategory(tag, PluralCardinal, 5); err != nil {
		t.Fatalf("PluralCategory: %v", err)
	}
	if got := len(m.services); got != 1 {
		t.Fatalf("len(services) after second call = %d, want 1 (cached)", got)
	}

	if _, err := m.PluralCategory(tag, PluralOrdinal, 2); err != nil {
		t.Fatalf("PluralCategory: %v", err)
	}
	if got := len(m.services); got != 2 {
		t.Fatalf("len(services) after ordinal call = %d, want 2", got)
	}
}
