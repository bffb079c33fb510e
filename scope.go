// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fluent

import "github.com/worldiety/fluent/ast"

// scope carries the mutable state threaded through one FormatPattern
// call: the active argument map, the local argument map installed while
// resolving a term body, collected errors, the placeable counter, the
// set of patterns already being resolved (cycle detection), and a dirty
// flag that halts further output once tripped.
type scope struct {
	bundle *Bundle
	args   *Args

	// localArgs is non-nil only while resolving a term reference's
	// pattern, even if the term reference itself has no arguments. Its
	// installed-or-not state, not its contents, decides whether a
	// missing variable is reported (see writeVariableReference).
	localArgs *Args

	errors     []error
	placeables int
	travelled  map[*ast.Pattern]bool
	dirty      bool
}

func newScope(b *Bundle, args *Args) *scope {
	return &scope{
		bundle:    b,
		args:      args,
		travelled: make(map[*ast.Pattern]bool),
	}
}

func (s *scope) addError(err error) {
	s.errors = append(s.errors, err)
}

// lookupVar consults localArgs while they are installed (a term body
// sees only its own arguments, never args), and args otherwise.
func (s *scope) lookupVar(name string) (Value, bool) {
	if s.localArgs != nil {
		return s.localArgs.Get(name)
	}
	if s.args != nil {
		return s.args.Get(name)
	}
	return Value{}, false
}
