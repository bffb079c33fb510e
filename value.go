// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// ValueKind tags the variant held by a Value.
type ValueKind int8

const (
	// KindString holds arbitrary text.
	KindString ValueKind = iota
	// KindNumber holds a parsed numeric magnitude plus its original
	// lexical form.
	KindNumber
	// KindError marks a value that failed to resolve; it carries no
	// displayable text of its own — callers fall back to the
	// reference's textual form instead of writing it.
	KindError
)

// Value is the runtime value produced while resolving a pattern: a
// String | Number | Error tagged union.
type Value struct {
	kind ValueKind
	str  string
	num  float64
}

// NewString wraps a literal string.
func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewNumber wraps a parsed numeric magnitude, keeping raw as its
// original lexical form, preserved verbatim until a caller formats it
// explicitly (e.g. through the NUMBER builtin).
func NewNumber(magnitude float64, raw string) Value {
	return Value{kind: KindNumber, num: magnitude, str: raw}
}

// NewError produces the Error variant.
func NewError() Value {
	return Value{kind: KindError}
}

// TryNumber parses raw as a decimal; on success it returns a Number,
// otherwise a String wrapping raw unchanged.
func TryNumber(raw string) Value {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return NewString(raw)
	}
	return NewNumber(n, raw)
}

// Kind reports the variant.
func (v Value) Kind() ValueKind { return v.kind }

// IsError reports whether v is the Error variant.
func (v Value) IsError() bool { return v.kind == KindError }

// Write appends the value's display form to w. Strings write their
// text; numbers write their original lexical form unchanged. Error has
// no display form and writes nothing — callers special-case it
// beforehand and write the reference's textual form instead.
func (v Value) Write(w *strings.Builder) {
	switch v.kind {
	case KindString, KindNumber:
		w.WriteString(v.str)
	}
}

// String returns the value's display form; see Write.
func (v Value) String() string {
	var b strings.Builder
	v.Write(&b)
	return b.String()
}

// pluralCategoryNames are the only strings FluentValue.Matches accepts
// as the String side of a (String, Number) comparison.
var pluralCategoryNames = map[string]plural.Form{
	"zero":  plural.Zero,
	"one":   plural.One,
	"two":   plural.Two,
	"few":   plural.Few,
	"many":  plural.Many,
	"other": plural.Other,
}

// Matches compares v against other for a select-expression variant
// key: string/string is byte equality, number/number is numeric
// equality, string/number consults the memoized plural-rule service
// for the number's cardinal category under tag, and any other pairing
// is false.
func (v Value) Matches(other Value, tag language.Tag, mem Memoizer) bool {
	switch {
	case v.kind == KindString && other.kind == KindString:
		return v.str == other.str
	case v.kind == KindNumber && other.kind == KindNumber:
		return v.num == other.num
	case v.kind == KindString && other.kind == KindNumber:
		return matchesCategory(v.str, other.num, tag, mem)
	case v.kind == KindNumber && other.kind == KindString:
		return matchesCategory(other.str, v.num, tag, mem)
	default:
		return false
	}
}

func matchesCategory(name string, n float64, tag language.Tag, mem Memoizer) bool {
	want, ok := pluralCategoryNames[name]
	if !ok {
		return false
	}
	got, err := mem.PluralCategory(tag, PluralCardinal, n)
	if err != nil {
		return false
	}
	return got == want
}

// decomposeNumber computes the CLDR plural operands (i, v, w, f, t) for
// a float64 magnitude, approximating trailing-zero information that
// float64 cannot retain, to drive plural.Cardinal.MatchPlural.
func decomposeNumber(n float64) (i, v, w, f, t int) {
	i = int(math.Floor(math.Abs(n)))

	frac := math.Abs(n) - float64(i)
	if frac == 0 {
		return i, 0, 0, 0, 0
	}

	const maxDigits = 9
	scale := math.Pow10(maxDigits)
	scaled := int64(math.Round(frac * scale))

	v = maxDigits
	for v > 0 && scaled%10 == 0 {
		scaled /= 10
		v--
	}

	f = int(math.Round(frac * math.Pow10(v)))
	t = int(scaled)
	w = v

	return i, v, w, f, t
}
