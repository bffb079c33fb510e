// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

import (
	"strconv"
	"time"

	"github.com/worldiety/fluent/date"
	"golang.org/x/text/language"
)

// NewNumberFunction returns the builtin NUMBER() function for tag:
// `{ NUMBER($value) }`, `{ NUMBER($value, minimumFractionDigits: 2) }`
// and `{ NUMBER($value, style: "percent") }` /
// `{ NUMBER($value, style: "currency", currency: "USD") }`. The style
// and currency options drive what unit FormatFloat attaches and, for
// percent, rescale the magnitude; formatting itself is delegated to
// FormatFloat's locale-aware grouping and decimal separator handling.
func NewNumberFunction(tag language.Tag) Function {
	return func(positional []Value, named map[string]Value) Value {
		if len(positional) == 0 {
			return NewError()
		}

		n, ok := numericMagnitude(positional[0])
		if !ok {
			return NewError()
		}

		decimals := 0
		if v, ok := named["minimumFractionDigits"]; ok {
			if d, ok2 := numericMagnitude(v); ok2 {
				decimals = int(d)
			}
		}

		unit := ""
		if style, ok := namedString(named, "style"); ok {
			switch style {
			case "percent":
				n *= 100
				unit = "%"
			case "currency":
				if currency, ok := namedString(named, "currency"); ok {
					unit = currency
				}
			}
		}

		return NewString(FormatFloat(tag, n, decimals, unit))
	}
}

func numericMagnitude(v Value) (float64, bool) {
	switch v.Kind() {
	case KindNumber:
		return v.num, true
	case KindString:
		n, err := strconv.ParseFloat(v.str, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func namedString(named map[string]Value, key string) (string, bool) {
	v, ok := named[key]
	if !ok || v.Kind() != KindString {
		return "", false
	}
	return v.str, true
}

// NewDateTimeFunction returns the builtin DATETIME() function for tag:
// `{ DATETIME($when) }`, `{ DATETIME($when, timeStyle: "short") }` and
// `{ DATETIME($when, dateStyle: "long", timeStyle: "medium") }`, where
// $when is an RFC 3339 timestamp string. dateStyle/timeStyle follow
// Fluent's Intl.DateTimeFormat-derived vocabulary and are translated
// here into one of the date package's three fixed per-locale patterns.
func NewDateTimeFunction(tag language.Tag) Function {
	return func(positional []Value, named map[string]Value) Value {
		if len(positional) == 0 {
			return NewError()
		}

		t, ok := parseTimeValue(positional[0])
		if !ok {
			return NewError()
		}

		dateStyle, hasDateStyle := namedString(named, "dateStyle")
		timeStyle, hasTimeStyle := namedString(named, "timeStyle")

		pattern := date.Date
		switch {
		case hasTimeStyle && timeStyle == "short":
			pattern = date.TimeMinute
		case hasTimeStyle:
			pattern = date.Time
		case hasDateStyle && dateStyle != "":
			pattern = date.Date
		}

		return NewString(date.Format(tag, pattern, t))
	}
}

func parseTimeValue(v Value) (time.Time, bool) {
	if v.Kind() != KindString {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v.str)
	return t, err == nil
}

// AddBuiltins registers the NUMBER and DATETIME functions under the
// bundle's highest-priority locale, matching the builtins every Fluent
// reference runtime ships by default. It fails only if either name is
// already registered.
func (b *Bundle) AddBuiltins() error {
	if err := b.AddFunction("NUMBER", NewNumberFunction(b.Locale())); err != nil {
		return err
	}
	return b.AddFunction("DATETIME", NewDateTimeFunction(b.Locale()))
}
