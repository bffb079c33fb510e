// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

// Args is an ordered sequence of (name, Value) pairs supplied to a
// format call. Lookups are linear and return the first match, so
// insertion order wins on duplicate names.
type Args struct {
	entries []argEntry
}

type argEntry struct {
	name  string
	value Value
}

// NewArgs builds an Args from zero or more (name, value) pairs added
// via With.
func NewArgs() Args {
	return Args{}
}

// With returns a copy of a with an additional (name, value) pair
// appended. Args is treated as immutable once handed to a format call,
// matching the Bundle's "read-only by convention after first use".
func (a Args) With(name string, value Value) Args {
	out := Args{entries: make([]argEntry, len(a.entries), len(a.entries)+1)}
	copy(out.entries, a.entries)
	out.entries = append(out.entries, argEntry{name: name, value: value})
	return out
}

// WithString is a convenience wrapper around With(name, NewString(value)).
func (a Args) WithString(name, value string) Args {
	return a.With(name, NewString(value))
}

// WithNumber is a convenience wrapper around With(name, NewNumber(value, raw)).
func (a Args) WithNumber(name string, value float64, raw string) Args {
	return a.With(name, NewNumber(value, raw))
}

// Get returns the first value bound to name, and whether one was found.
func (a Args) Get(name string) (Value, bool) {
	for _, e := range a.entries {
		if e.name == name {
			return e.value, true
		}
	}
	return Value{}, false
}

// Len reports the number of pairs.
func (a Args) Len() int { return len(a.entries) }
