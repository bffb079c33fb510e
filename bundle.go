// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

import (
	"fmt"
	"strings"

	"github.com/worldiety/fluent/ast"
	"golang.org/x/text/language"
)

// Function is a bundle-registered callable invoked from a FunctionReference,
// e.g. `{ NUMBER($count) }`. Positional arguments are evaluated in call
// order; named arguments are restricted by the grammar to string and
// number literals. A Function that cannot produce a value returns
// NewError(), which the resolver renders as the call's textual form.
type Function func(positional []Value, named map[string]Value) Value

// Override reports that adding a resource to a Bundle left an existing
// Message or Term binding for ID in place rather than replacing it.
type Override struct {
	ID     string
	IsTerm bool
}

// Bundle is a locale-scoped, read-mostly container of resources,
// functions, and a memoizer — the unit of formatting. A Bundle borrows
// its resources by reference rather than owning them, so the same
// Resource can back bundles for several locales that share a fallback
// source.
//
// Bundles are constructed empty, then extended with AddResource and
// AddFunction; by convention they are treated as read-only after the
// first Format call. The function table is copy-on-write, matching the
// concurrency model of a Bundle shared with a concurrent memoizer.
type Bundle struct {
	locales   []language.Tag
	resources []*Resource
	functions bufferedMap[string, Function]
	memoizer  Memoizer

	// UseIsolating wraps non-bare placeables in U+2068/U+2069 bidi
	// isolates. Defaults to true, matching Fluent's reference runtimes.
	UseIsolating bool
	// Transform, if set, is applied to every TextElement slice before
	// it is written to output. String literal unescaping runs
	// independently of Transform and is never passed through it.
	Transform func(string) string
}

// NewBundle constructs an empty Bundle for locales, using the
// process-wide DefaultIntlMemoizer to share plural-rule services with
// any other bundle for the same highest-priority locale.
func NewBundle(locales ...language.Tag) *Bundle {
	var mem Memoizer
	if len(locales) > 0 {
		mem = DefaultIntlMemoizer.Get(locales[0])
	} else {
		mem = NewConcurrentMemoizer()
	}
	return NewBundleWithMemoizer(mem, locales...)
}

// NewBundleWithMemoizer constructs an empty Bundle using memoizer
// instead of the process-wide default — typically a SingleThreadMemoizer
// for a bundle that will never cross goroutines.
func NewBundleWithMemoizer(memoizer Memoizer, locales ...language.Tag) *Bundle {
	return &Bundle{
		locales:      append([]language.Tag(nil), locales...),
		memoizer:     memoizer,
		UseIsolating: true,
	}
}

// Locales returns the bundle's locale list, highest priority first.
func (b *Bundle) Locales() []language.Tag { return b.locales }

// Locale returns the highest-priority locale, or the undefined tag if
// none was configured.
func (b *Bundle) Locale() language.Tag {
	if len(b.locales) == 0 {
		return language.Und
	}
	return b.locales[0]
}

// AddResource appends r to the bundle. Existing Message/Term bindings
// win on a name collision; colliding identifiers are reported as
// Overrides, but every non-colliding entry in r is still registered.
func (b *Bundle) AddResource(r *Resource) []Override {
	overrides := b.collectOverrides(r)
	b.resources = append(b.resources, r)
	return overrides
}

// AddResourceOverriding appends r ahead of every previously added
// resource, so r's bindings win any collision instead of being
// shadowed by it — useful for layering an override pack on top of a
// shared base.
func (b *Bundle) AddResourceOverriding(r *Resource) []Override {
	overrides := b.collectOverrides(r)
	b.resources = append([]*Resource{r}, b.resources...)
	return overrides
}

func (b *Bundle) collectOverrides(r *Resource) []Override {
	var overrides []Override
	for _, e := range r.tree.Entries {
		switch v := e.(type) {
		case *ast.Message:
			if b.lookupEntry(v.ID.Name, false) != nil {
				overrides = append(overrides, Override{ID: v.ID.Name})
			}
		case *ast.Term:
			if b.lookupEntry(v.ID.Name, true) != nil {
				overrides = append(overrides, Override{ID: v.ID.Name, IsTerm: true})
			}
		}
	}
	return overrides
}

func (b *Bundle) lookupEntry(name string, isTerm bool) ast.Entry {
	for _, res := range b.resources {
		if e := res.entry(name, isTerm); e != nil {
			return e
		}
	}
	return nil
}

func (b *Bundle) lookupMessage(name string) (*ast.Message, bool) {
	e := b.lookupEntry(name, false)
	if e == nil {
		return nil, false
	}
	return e.(*ast.Message), true
}

func (b *Bundle) lookupTerm(name string) (*ast.Term, bool) {
	e := b.lookupEntry(name, true)
	if e == nil {
		return nil, false
	}
	return e.(*ast.Term), true
}

// HasMessage reports whether id is bound to a Message in this bundle.
func (b *Bundle) HasMessage(id string) bool {
	_, ok := b.lookupMessage(id)
	return ok
}

// GetMessage returns the Message bound to id, if any.
func (b *Bundle) GetMessage(id string) (*ast.Message, bool) {
	return b.lookupMessage(id)
}

// AddFunction registers fn under name. It fails if name is already bound.
func (b *Bundle) AddFunction(name string, fn Function) error {
	if _, ok := b.functions.Get(name); ok {
		return fmt.Errorf("fluent: function %q is already registered", name)
	}
	b.functions.Put(name, fn)
	b.functions.Flush()
	return nil
}

// GetFunction returns the function registered under name, if any.
func (b *Bundle) GetFunction(name string) (Function, bool) {
	return b.functions.Get(name)
}

// FormatPattern resolves pattern against args and writes the result to
// w, returning the errors encountered. A fresh Scope is created for
// every call.
func (b *Bundle) FormatPattern(w *strings.Builder, pattern *ast.Pattern, args *Args) []error {
	scope := newScope(b, args)
	writePattern(w, scope, pattern)
	return scope.errors
}

// Format resolves the value pattern of the message bound to id. It is a
// convenience wrapper around FormatPattern for the common case of
// formatting a top-level message by name.
func (b *Bundle) Format(id string, args *Args) (string, []error) {
	msg, ok := b.lookupMessage(id)
	if !ok || msg.Value == nil {
		return "", []error{errReference(fmt.Sprintf("Unknown message: %s", id))}
	}

	var out strings.Builder
	errs := b.FormatPattern(&out, msg.Value, args)
	return out.String(), errs
}
