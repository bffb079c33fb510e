// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fallback

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// DriverErrorKind classifies an error recorded by a Driver.
type DriverErrorKind int8

const (
	// ErrKindMissingMessage marks a requested id absent from a bundle;
	// Locale is set when it names a specific bundle in the chain, and
	// absent for the terminal summary error.
	ErrKindMissingMessage DriverErrorKind = iota
	// ErrKindMissingValue marks an id that is bound but carries no
	// pattern value (attributes only) in a bundle.
	ErrKindMissingValue
	// ErrKindResolver wraps the resolver errors collected while
	// formatting an id against a specific bundle.
	ErrKindResolver
	// ErrKindSyncRequestInAsyncMode marks a synchronous call issued
	// while the driver's cache is in cooperative mode.
	ErrKindSyncRequestInAsyncMode
)

// DriverError is one entry in a Driver call's error vector.
type DriverError struct {
	Kind      DriverErrorKind
	ID        string
	Locale    language.Tag
	HasLocale bool
	Errors    []error // populated only for ErrKindResolver
}

func (e *DriverError) Error() string {
	switch e.Kind {
	case ErrKindMissingMessage:
		if e.HasLocale {
			return fmt.Sprintf("missing message %q for locale %s", e.ID, e.Locale)
		}
		return fmt.Sprintf("missing message %q in any bundle", e.ID)
	case ErrKindMissingValue:
		if e.HasLocale {
			return fmt.Sprintf("message %q has no value for locale %s", e.ID, e.Locale)
		}
		return fmt.Sprintf("message %q has no value in any bundle", e.ID)
	case ErrKindResolver:
		return fmt.Sprintf("errors formatting %q for locale %s: %s", e.ID, e.Locale, errors.Join(e.Errors...))
	case ErrKindSyncRequestInAsyncMode:
		return "synchronous format requested while the driver's cache is in cooperative mode"
	default:
		return "driver error"
	}
}

// ErrSyncRequestInAsyncMode is returned, never partially, by any
// synchronous Driver method called while the driver's cache was last
// built in cooperative (async) mode.
var ErrSyncRequestInAsyncMode = &DriverError{Kind: ErrKindSyncRequestInAsyncMode}

func errMissingMessage(id string, locale language.Tag) *DriverError {
	return &DriverError{Kind: ErrKindMissingMessage, ID: id, Locale: locale, HasLocale: true}
}

func errMissingMessageNoLocale(id string) *DriverError {
	return &DriverError{Kind: ErrKindMissingMessage, ID: id}
}

func errMissingValue(id string, locale language.Tag) *DriverError {
	return &DriverError{Kind: ErrKindMissingValue, ID: id, Locale: locale, HasLocale: true}
}

func errMissingValueNoLocale(id string) *DriverError {
	return &DriverError{Kind: ErrKindMissingValue, ID: id}
}

func errResolver(id string, locale language.Tag, errs []error) *DriverError {
	return &DriverError{Kind: ErrKindResolver, ID: id, Locale: locale, HasLocale: true, Errors: errs}
}
