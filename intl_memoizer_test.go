// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

import (
	"runtime"
	"testing"

	"golang.org/x/text/language"
)

func TestIntlMemoizerSharesInstancePerLocale(t *testing.T) {
	r := NewIntlMemoizer()
	tag := language.MustParse("fr")

	a := r.Get(tag)
	b := r.Get(tag)
	if a != b {
		t.Fatalf("Get returned distinct instances for the same locale")
	}
}

func TestIntlMemoizerDistinctPerLocale(t *testing.T) {
	r := NewIntlMemoizer()

	fr := r.Get(language.MustParse("fr"))
	de := r.Get(language.MustParse("de"))
	if fr == de {
		t.Fatalf("Get returned the same instance for different locales")
	}
}

func TestIntlMemoizerRecreatesAfterCollection(t *testing.T) {
	r := NewIntlMemoizer()
	tag := language.MustParse("it")

	first := r.Get(tag)
	_ = first
	first = nil
	runtime.GC()
	runtime.GC()

	second := r.Get(tag)
	if second == nil {
		t.Fatalf("Get returned nil after collection")
	}
}
