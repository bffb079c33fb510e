// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/worldiety/fluent/ast"
)

// maxPlaceables bounds the number of placeables a single format_pattern
// call may emit before it is truncated with a TooManyPlaceables error.
const maxPlaceables = 100

const (
	isolateStart = '⁨'
	isolateEnd   = '⁩'
)

// writePattern iterates a pattern's elements in document order, writing
// text elements verbatim (through the bundle's Transform, if any) and
// resolving placeables. It stops as soon as scope.dirty is set.
func writePattern(w *strings.Builder, s *scope, pattern *ast.Pattern) {
	multiElement := len(pattern.Elements) > 1

	for _, el := range pattern.Elements {
		if s.dirty {
			return
		}

		switch e := el.(type) {
		case *ast.TextElement:
			writeTextElement(w, s, e)
		case *ast.Placeable:
			writePlaceable(w, s, e, multiElement)
		}
	}
}

func writeTextElement(w *strings.Builder, s *scope, el *ast.TextElement) {
	text := el.Value
	if s.bundle.Transform != nil {
		text = s.bundle.Transform(text)
	}
	w.WriteString(text)
}

func writePlaceable(w *strings.Builder, s *scope, p *ast.Placeable, multiElement bool) {
	s.placeables++
	if s.placeables > maxPlaceables {
		s.addError(errTooManyPlaceables())
		s.dirty = true
		return
	}

	isolate := s.bundle.UseIsolating && multiElement && !isBareExpression(p.Expression)
	if isolate {
		w.WriteRune(isolateStart)
	}
	writeExpression(w, s, p.Expression)
	if isolate {
		w.WriteRune(isolateEnd)
	}
}

// isBareExpression reports whether expr is exempt from bidi isolation:
// a bare message reference, term reference, or string literal.
func isBareExpression(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.MessageReference, *ast.TermReference, *ast.StringLiteral:
		return true
	default:
		return false
	}
}

func writeExpression(w *strings.Builder, s *scope, expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.SelectExpression:
		writeSelectExpression(w, s, e)
	case ast.InlineExpression:
		writeInlineExpression(w, s, e)
	}
}

func writeInlineExpression(w *strings.Builder, s *scope, expr ast.InlineExpression) {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		w.WriteString(unescapeString(e.Value))
	case *ast.NumberLiteral:
		TryNumber(e.Value).Write(w)
	case *ast.MessageReference:
		writeMessageReference(w, s, e)
	case *ast.TermReference:
		writeTermReference(w, s, e)
	case *ast.FunctionReference:
		writeFunctionReference(w, s, e)
	case *ast.VariableReference:
		writeVariableReference(w, s, e)
	case *ast.PlaceableExpression:
		writeExpression(w, s, e.Inner.Expression)
	}
}

func writeMessageReference(w *strings.Builder, s *scope, ref *ast.MessageReference) {
	refText := ref.ID.Name
	if ref.Attribute != nil {
		refText = ref.ID.Name + "." + ref.Attribute.Name
	}

	msg, ok := s.bundle.lookupMessage(ref.ID.Name)
	if !ok {
		writeUnknownReference(w, s, "Unknown message: "+refText)
		return
	}

	pattern := msg.Value
	if ref.Attribute != nil {
		attr := findAttribute(msg.Attributes, ref.Attribute.Name)
		if attr == nil {
			writeUnknownReference(w, s, "Unknown attribute: "+refText)
			return
		}
		pattern = attr.Value
	}

	if pattern == nil {
		writeUnknownReference(w, s, "Unknown message: "+refText)
		return
	}

	writeReferencedPattern(w, s, pattern, refText)
}

func writeTermReference(w *strings.Builder, s *scope, ref *ast.TermReference) {
	refText := "-" + ref.ID.Name
	if ref.Attribute != nil {
		refText += "." + ref.Attribute.Name
	}

	term, ok := s.bundle.lookupTerm(ref.ID.Name)
	if !ok {
		writeUnknownReference(w, s, "Unknown term: "+refText)
		return
	}

	pattern := term.Value
	if ref.Attribute != nil {
		attr := findAttribute(term.Attributes, ref.Attribute.Name)
		if attr == nil {
			writeUnknownReference(w, s, "Unknown attribute: "+refText)
			return
		}
		pattern = attr.Value
	}

	// Positional arguments to terms are discarded by design; only
	// named arguments become local args.
	local := evalNamedArgs(ref.Arguments)
	prevLocal := s.localArgs
	s.localArgs = &local
	writeReferencedPattern(w, s, pattern, refText)
	s.localArgs = prevLocal
}

func writeFunctionReference(w *strings.Builder, s *scope, ref *ast.FunctionReference) {
	fn, ok := s.bundle.GetFunction(ref.ID.Name)
	if !ok {
		writeUnknownReference(w, s, "Unknown function: "+ref.ID.Name)
		return
	}

	positional, named := evalCallArguments(s, ref.Arguments)
	result := fn(positional, named)
	if result.IsError() {
		w.WriteString("{" + ref.ID.Name + "()}")
		return
	}
	result.Write(w)
}

func writeVariableReference(w *strings.Builder, s *scope, ref *ast.VariableReference) {
	v, ok := s.lookupVar(ref.ID.Name)
	if !ok {
		// Only reported when resolving at the top level: a term body
		// with no matching local argument silently falls through.
		if s.localArgs == nil {
			s.addError(errReference(fmt.Sprintf("Unknown variable: $%s", ref.ID.Name)))
		}
		w.WriteString("{$" + ref.ID.Name + "}")
		return
	}
	v.Write(w)
}

// writeUnknownReference records text as a Reference error and writes it
// back wrapped in braces, the shared shape of every "Unknown ..." case.
func writeUnknownReference(w *strings.Builder, s *scope, text string) {
	s.addError(errReference(text))
	w.WriteString("{" + text + "}")
}

// writeReferencedPattern enters pattern under cycle detection: if it is
// already being resolved higher up the call stack, a Cyclic error is
// recorded and refText is written in its place instead of recursing.
func writeReferencedPattern(w *strings.Builder, s *scope, pattern *ast.Pattern, refText string) {
	if s.travelled[pattern] {
		s.addError(errCyclic(refText))
		w.WriteString("{" + refText + "}")
		return
	}

	s.travelled[pattern] = true
	writePattern(w, s, pattern)
	delete(s.travelled, pattern)
}

func writeSelectExpression(w *strings.Builder, s *scope, sel *ast.SelectExpression) {
	selector := evalExpressionValue(s, sel.Selector)

	variant := defaultVariant(sel.Variants)
	if !selector.IsError() {
		for _, v := range sel.Variants {
			if variantKeyMatches(v.Key, selector, s) {
				variant = v
				break
			}
		}
	}

	if variant == nil {
		s.addError(errMissingDefault())
		return
	}

	writePattern(w, s, variant.Value)
}

func defaultVariant(variants []*ast.Variant) *ast.Variant {
	for _, v := range variants {
		if v.Default {
			return v
		}
	}
	return nil
}

func variantKeyMatches(key ast.VariantKey, value Value, s *scope) bool {
	var keyValue Value
	switch k := key.(type) {
	case *ast.Identifier:
		keyValue = NewString(k.Name)
	case *ast.NumberLiteral:
		keyValue = TryNumber(k.Value)
	default:
		return false
	}
	return keyValue.Matches(value, s.bundle.Locale(), s.bundle.memoizer)
}

// evalExpressionValue evaluates expr to a Value without writing
// anything to output. It backs select-expression selectors and function
// call positional arguments, both of which need a Value rather than
// formatted text.
func evalExpressionValue(s *scope, expr ast.Expression) Value {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		return NewString(unescapeString(e.Value))
	case *ast.NumberLiteral:
		return TryNumber(e.Value)
	case *ast.VariableReference:
		v, ok := s.lookupVar(e.ID.Name)
		if !ok {
			if s.localArgs == nil {
				s.addError(errReference(fmt.Sprintf("Unknown variable: $%s", e.ID.Name)))
			}
			return NewError()
		}
		return v
	case *ast.FunctionReference:
		fn, ok := s.bundle.GetFunction(e.ID.Name)
		if !ok {
			s.addError(errReference("Unknown function: " + e.ID.Name))
			return NewError()
		}
		positional, named := evalCallArguments(s, e.Arguments)
		return fn(positional, named)
	case *ast.PlaceableExpression:
		return evalExpressionValue(s, e.Inner.Expression)
	case *ast.MessageReference, *ast.TermReference:
		var buf strings.Builder
		writeInlineExpression(&buf, s, e.(ast.InlineExpression))
		return NewString(buf.String())
	default:
		return NewError()
	}
}

// literalToValue evaluates a named-argument value, which the grammar
// restricts to string and number literals.
func literalToValue(expr ast.InlineExpression) Value {
	switch v := expr.(type) {
	case *ast.StringLiteral:
		return NewString(unescapeString(v.Value))
	case *ast.NumberLiteral:
		return TryNumber(v.Value)
	default:
		return NewError()
	}
}

func evalNamedArgs(callArgs *ast.CallArguments) Args {
	args := NewArgs()
	if callArgs == nil {
		return args
	}
	for _, na := range callArgs.Named {
		args = args.With(na.Name.Name, literalToValue(na.Value))
	}
	return args
}

func evalCallArguments(s *scope, callArgs *ast.CallArguments) ([]Value, map[string]Value) {
	if callArgs == nil {
		return nil, nil
	}

	positional := make([]Value, 0, len(callArgs.Positional))
	for _, p := range callArgs.Positional {
		positional = append(positional, evalExpressionValue(s, p))
	}

	named := make(map[string]Value, len(callArgs.Named))
	for _, na := range callArgs.Named {
		named[na.Name.Name] = literalToValue(na.Value)
	}

	return positional, named
}

func findAttribute(attrs []*ast.Attribute, name string) *ast.Attribute {
	for _, a := range attrs {
		if a.ID.Name == name {
			return a
		}
	}
	return nil
}

// unescapeString processes the \\, \", \uXXXX and \UXXXXXX escapes of a
// string literal's raw, still-escaped source text.
func unescapeString(raw string) string {
	if !strings.Contains(raw, "\\") {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))

	i := 0
	for i < len(raw) {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			i++
			continue
		}

		switch raw[i+1] {
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '"':
			b.WriteByte('"')
			i += 2
		case 'u':
			if r, ok := parseHexRune(raw, i+2, 4); ok {
				b.WriteRune(r)
				i += 2 + 4
				continue
			}
			b.WriteByte(c)
			i++
		case 'U':
			if r, ok := parseHexRune(raw, i+2, 6); ok {
				b.WriteRune(r)
				i += 2 + 6
				continue
			}
			b.WriteByte(c)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}

func parseHexRune(s string, start, digits int) (rune, bool) {
	if start+digits > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[start:start+digits], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
