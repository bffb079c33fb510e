// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

import "testing"

func TestArgsGetMissing(t *testing.T) {
	a := NewArgs()
	if _, ok := a.Get("name"); ok {
		t.Errorf("expected missing key to report not found")
	}
}

func TestArgsWithStringRoundTrip(t *testing.T) {
	a := NewArgs().WithString("name", "Anna")
	v, ok := a.Get("name")
	if !ok {
		t.Fatalf("expected name to be present")
	}
	if v.String() != "Anna" {
		t.Errorf("Get(name) = %q, want %q", v.String(), "Anna")
	}
}

func TestArgsWithDoesNotMutateReceiver(t *testing.T) {
	base := NewArgs().WithString("a", "1")
	extended := base.WithString("b", "2")

	if base.Len() != 1 {
		t.Errorf("base.Len() = %d, want 1", base.Len())
	}
	if extended.Len() != 2 {
		t.Errorf("extended.Len() = %d, want 2", extended.Len())
	}
	if _, ok := base.Get("b"); ok {
		t.Errorf("base should not see key added to extended")
	}
}

func TestArgsDuplicateNameFirstWins(t *testing.T) {
	a := NewArgs().WithString("name", "first").WithString("name", "second")
	v, ok := a.Get("name")
	if !ok {
		t.Fatalf("expected name to be present")
	}
	if v.String() != "first" {
		t.Errorf("Get(name) = %q, want %q (first match wins)", v.String(), "first")
	}
}

func TestArgsWithNumber(t *testing.T) {
	a := NewArgs().WithNumber("count", 3, "3")
	v, ok := a.Get("count")
	if !ok {
		t.Fatalf("expected count to be present")
	}
	if v.Kind() != KindNumber {
		t.Errorf("Kind() = %v, want KindNumber", v.Kind())
	}
}
