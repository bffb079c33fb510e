// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

import (
	"errors"

	"github.com/worldiety/fluent/ast"
	"github.com/worldiety/fluent/parser"
	"github.com/worldiety/option"
)

// Resource pairs a parsed .ftl document with the source text it borrows
// slices from. Resources are immutable once constructed and may be
// shared by any number of Bundles, including bundles for different
// locales that happen to fall back to the same source.
type Resource struct {
	source string
	tree   *ast.Resource
	errors []*parser.Error
}

// NewResource parses source and always returns a usable Resource: the
// parser recovers from errors by emitting Junk entries, so a non-nil
// error here reports what was skipped, not a reason to discard r.
func NewResource(source string) (*Resource, error) {
	tree, errs := parser.Parse(source)
	r := &Resource{source: source, tree: tree, errors: errs}

	if len(errs) == 0 {
		return r, nil
	}

	wrapped := make([]error, len(errs))
	for i, e := range errs {
		wrapped[i] = e
	}
	return r, errors.Join(wrapped...)
}

// MustResource parses source and panics if the parser recorded any
// error, recoverable or not.
func MustResource(source string) *Resource {
	return option.Must(NewResource(source))
}

// Errors returns the parser errors recorded while parsing the resource,
// in document order.
func (r *Resource) Errors() []*parser.Error { return r.errors }

// Source returns the original text the resource was parsed from.
func (r *Resource) Source() string { return r.source }

// entry looks up a Message or Term by identifier and kind. isTerm
// distinguishes the two namespaces: Fluent messages and terms never
// collide even when spelled the same.
func (r *Resource) entry(name string, isTerm bool) ast.Entry {
	for _, e := range r.tree.Entries {
		switch v := e.(type) {
		case *ast.Message:
			if !isTerm && v.ID.Name == name {
				return v
			}
		case *ast.Term:
			if isTerm && v.ID.Name == name {
				return v
			}
		}
	}
	return nil
}
