// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

import "fmt"

// ResolverErrorKind classifies a nonfatal error the resolver attaches to
// a scope while formatting a pattern. Resolver errors never abort
// resolution on their own; they are collected and formatting continues
// (TooManyPlaceables does still stop the current pattern, via
// scope.dirty, but formatting of the caller's other keys proceeds; a
// Cyclic reference only writes its textual form in place).
type ResolverErrorKind int8

const (
	// ErrKindReference marks an unresolved message, attribute, or
	// variable reference. Text describes the missing reference, e.g.
	// "Unknown message: NAME" or "Unknown variable: $NAME".
	ErrKindReference ResolverErrorKind = iota
	// ErrKindCyclic marks a message/term graph that re-entered an AST
	// node already being resolved.
	ErrKindCyclic
	// ErrKindTooManyPlaceables marks a pattern that exceeded the
	// placeable bound and had its output truncated.
	ErrKindTooManyPlaceables
	// ErrKindMissingDefault marks a SelectExpression with no default
	// variant reached at resolve time; the parser is supposed to
	// guarantee this never happens, so hitting it indicates an AST
	// built by something other than this package's parser.
	ErrKindMissingDefault
)

// ResolverError is one entry in a Scope's error vector.
type ResolverError struct {
	Kind ResolverErrorKind
	Text string
}

func (e *ResolverError) Error() string {
	switch e.Kind {
	case ErrKindReference:
		return e.Text
	case ErrKindCyclic:
		return fmt.Sprintf("cyclic reference: %s", e.Text)
	case ErrKindTooManyPlaceables:
		return "too many placeables in pattern"
	case ErrKindMissingDefault:
		return "select expression has no default variant"
	default:
		return "resolver error"
	}
}

func errReference(text string) *ResolverError {
	return &ResolverError{Kind: ErrKindReference, Text: text}
}

func errCyclic(text string) *ResolverError {
	return &ResolverError{Kind: ErrKindCyclic, Text: text}
}

func errTooManyPlaceables() *ResolverError {
	return &ResolverError{Kind: ErrKindTooManyPlaceables}
}

func errMissingDefault() *ResolverError {
	return &ResolverError{Kind: ErrKindMissingDefault}
}
