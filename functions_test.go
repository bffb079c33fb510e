// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNumberFunctionFormatsWithGrouping(t *testing.T) {
	fn := NewNumberFunction(language.English)
	got := fn([]Value{NewNumber(1234, "1234")}, nil)
	if got.String() != "1,234" {
		t.Errorf("NUMBER(1234) = %q, want %q", got.String(), "1,234")
	}
}

func TestNumberFunctionRespectsMinimumFractionDigits(t *testing.T) {
	fn := NewNumberFunction(language.German)
	got := fn([]Value{NewNumber(1234.5, "1234.5")}, map[string]Value{
		"minimumFractionDigits": NewNumber(2, "2"),
	})
	if got.String() != "1.234,50" {
		t.Errorf("NUMBER(1234.5, minimumFractionDigits: 2) = %q, want %q", got.String(), "1.234,50")
	}
}

func TestNumberFunctionMissingArgumentIsError(t *testing.T) {
	fn := NewNumberFunction(language.English)
	got := fn(nil, nil)
	if !got.IsError() {
		t.Errorf("expected NUMBER() with no arguments to be an error value")
	}
}

func TestDateTimeFunctionFormatsDate(t *testing.T) {
	fn := NewDateTimeFunction(language.English)
	got := fn([]Value{NewString("2026-03-05T10:00:00Z")}, nil)
	if got.String() != "2026-03-05" {
		t.Errorf("DATETIME(...) = %q, want %q", got.String(), "2026-03-05")
	}
}

func TestDateTimeFunctionRespectsTimeStyle(t *testing.T) {
	fn := NewDateTimeFunction(language.German)
	got := fn([]Value{NewString("2026-03-05T10:15:00Z")}, map[string]Value{
		"timeStyle": NewString("short"),
	})
	if got.String() != "05.03.2026 10:15" {
		t.Errorf("DATETIME(..., timeStyle: short) = %q, want %q", got.String(), "05.03.2026 10:15")
	}
}

func TestDateTimeFunctionRespectsDateAndTimeStyle(t *testing.T) {
	fn := NewDateTimeFunction(language.German)
	got := fn([]Value{NewString("2026-03-05T10:15:30Z")}, map[string]Value{
		"dateStyle": NewString("long"),
		"timeStyle": NewString("medium"),
	})
	if got.String() != "05.03.2026 10:15:30" {
		t.Errorf("DATETIME(..., dateStyle: long, timeStyle: medium) = %q, want %q", got.String(), "05.03.2026 10:15:30")
	}
}

func TestNumberFunctionRespectsPercentStyle(t *testing.T) {
	fn := NewNumberFunction(language.English)
	got := fn([]Value{NewNumber(0.5, "0.5")}, map[string]Value{
		"style": NewString("percent"),
	})
	want := "50 %"
	if got.String() != want {
		t.Errorf("NUMBER(0.5, style: percent) = %q, want %q", got.String(), want)
	}
}

func TestNumberFunctionRespectsCurrencyStyle(t *testing.T) {
	fn := NewNumberFunction(language.English)
	got := fn([]Value{NewNumber(10, "10")}, map[string]Value{
		"style":    NewString("currency"),
		"currency": NewString("USD"),
	})
	if got.String() != "$ 10" {
		t.Errorf("NUMBER(10, style: currency, currency: USD) = %q, want %q", got.String(), "$ 10")
	}
}

func TestBundleAddBuiltinsRegistersBothFunctions(t *testing.T) {
	b := NewBundle(language.English)
	if err := b.AddBuiltins(); err != nil {
		t.Fatalf("AddBuiltins: %v", err)
	}
	if _, ok := b.GetFunction("NUMBER"); !ok {
		t.Errorf("expected NUMBER to be registered")
	}
	if _, ok := b.GetFunction("DATETIME"); !ok {
		t.Errorf("expected DATETIME to be registered")
	}
}

func TestBundleFormatUsingBuiltinNumber(t *testing.T) {
	r := MustResource("key = You have { NUMBER($count) } items.\n")
	b := NewBundle(language.English)
	b.UseIsolating = false
	b.AddResource(r)
	if err := b.AddBuiltins(); err != nil {
		t.Fatalf("AddBuiltins: %v", err)
	}

	args := NewArgs().WithNumber("count", 1234, "1234")
	out, errs := b.Format("key", &args)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := "You have 1,234 items."
	if out != want {
		t.Errorf("Format = %q, want %q", out, want)
	}
}
