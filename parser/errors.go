// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package parser

import (
	"fmt"

	"github.com/worldiety/fluent/ast"
)

// ErrorKind classifies a recoverable parser error. Every kind carries a
// Span into the source the parser was scanning when it gave up on the
// current entry.
type ErrorKind int

const (
	ErrGeneric ErrorKind = iota
	ErrExpectedToken
	ErrExpectedCharRange
	ErrExpectedMessageField
	ErrExpectedTermField
	ErrMissingValue
	ErrMissingDefaultVariant
	ErrMultipleDefaultVariants
	ErrTermAttributeAsPlaceable
	ErrMessageReferenceAsSelector
	ErrMessageAttributeAsSelector
	ErrTermReferenceAsSelector
	ErrExpectedSimpleExpressionAsSelector
	ErrExpectedInlineExpression
	ErrInvalidUnicodeEscapeSequence
	ErrUnbalancedClosingBrace
	ErrForbiddenCallee
	ErrDuplicatedNamedArgument
	ErrPositionalArgumentFollowsNamed
)

// Error is a single recoverable parser error. The parser never stops at an
// Error: it rewinds to the start of the offending entry, skips to the next
// plausible entry start, and keeps going.
type Error struct {
	Kind ErrorKind
	Span ast.Span

	// EntryID is set for ErrExpectedMessageField and ErrExpectedTermField.
	EntryID string
	// Char is set for ErrExpectedToken.
	Char byte
	// Name is set for ErrInvalidUnicodeEscapeSequence and ErrDuplicatedNamedArgument.
	Name string
	// Low/High are set for ErrExpectedCharRange.
	Low, High byte

	message string
}

func (e *Error) Error() string {
	if e.message != "" {
		return e.message
	}

	switch e.Kind {
	case ErrExpectedToken:
		return fmt.Sprintf("expected token %q at byte %d", e.Char, e.Span.Start)
	case ErrExpectedCharRange:
		return fmt.Sprintf("expected character in range %q-%q at byte %d", e.Low, e.High, e.Span.Start)
	case ErrExpectedMessageField:
		return fmt.Sprintf("expected a value or attribute for message %q", e.EntryID)
	case ErrExpectedTermField:
		return fmt.Sprintf("expected a value for term %q", e.EntryID)
	case ErrMissingValue:
		return "expected a value"
	case ErrMissingDefaultVariant:
		return "a select expression must have a default variant"
	case ErrMultipleDefaultVariants:
		return "a select expression may only have one default variant"
	case ErrTermAttributeAsPlaceable:
		return "term attributes may not be used as placeables; use the term reference instead"
	case ErrMessageReferenceAsSelector:
		return "message references cannot be used as selectors"
	case ErrMessageAttributeAsSelector:
		return "message attributes cannot be used as selectors"
	case ErrTermReferenceAsSelector:
		return "term references without an attribute cannot be used as selectors"
	case ErrExpectedSimpleExpressionAsSelector:
		return "expected a simple expression as the selector"
	case ErrExpectedInlineExpression:
		return "expected an inline expression"
	case ErrInvalidUnicodeEscapeSequence:
		return fmt.Sprintf("invalid unicode escape sequence %q", e.Name)
	case ErrUnbalancedClosingBrace:
		return "unbalanced closing brace"
	case ErrForbiddenCallee:
		return "function names must be all-uppercase"
	case ErrDuplicatedNamedArgument:
		return fmt.Sprintf("the named argument %q was already provided", e.Name)
	case ErrPositionalArgumentFollowsNamed:
		return "positional arguments may not follow named arguments"
	default:
		return "syntax error"
	}
}

func newError(kind ErrorKind, start, end int, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Span:    ast.Span{Start: start, End: end},
		message: fmt.Sprintf(format, args...),
	}
}

func errExpectedToken(pos int, ch byte) *Error {
	return &Error{Kind: ErrExpectedToken, Span: ast.Span{Start: pos, End: pos}, Char: ch}
}

func errExpectedCharRange(pos int, lo, hi byte) *Error {
	return &Error{Kind: ErrExpectedCharRange, Span: ast.Span{Start: pos, End: pos}, Low: lo, High: hi}
}

func errExpectedMessageField(start, end int, entryID string) *Error {
	return &Error{Kind: ErrExpectedMessageField, Span: ast.Span{Start: start, End: end}, EntryID: entryID}
}

func errExpectedTermField(start, end int, entryID string) *Error {
	return &Error{Kind: ErrExpectedTermField, Span: ast.Span{Start: start, End: end}, EntryID: entryID}
}
