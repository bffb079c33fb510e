// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package parser

import (
	"testing"

	"github.com/worldiety/fluent/ast"
)

func entryNames(res *ast.Resource) []string {
	var names []string
	for _, e := range res.Entries {
		switch v := e.(type) {
		case *ast.Message:
			names = append(names, "msg:"+v.ID.Name)
		case *ast.Term:
			names = append(names, "term:"+v.ID.Name)
		case *ast.Comment:
			names = append(names, "comment")
		case *ast.Junk:
			names = append(names, "junk")
		}
	}
	return names
}

func patternText(t *testing.T, p *ast.Pattern) string {
	t.Helper()
	if len(p.Elements) != 1 {
		t.Fatalf("expected a single text element, got %d elements", len(p.Elements))
	}
	el, ok := p.Elements[0].(*ast.TextElement)
	if !ok {
		t.Fatalf("expected a text element, got %T", p.Elements[0])
	}
	return el.Value
}

func TestParseSimpleMessage(t *testing.T) {
	res, errs := Parse("hello = Hello, world!\n")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(res.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(res.Entries))
	}

	msg, ok := res.Entries[0].(*ast.Message)
	if !ok {
		t.Fatalf("expected *ast.Message, got %T", res.Entries[0])
	}
	if msg.ID.Name != "hello" {
		t.Errorf("ID.Name = %q, want hello", msg.ID.Name)
	}
	if got := patternText(t, msg.Value); got != "Hello, world!" {
		t.Errorf("pattern text = %q", got)
	}
}

func TestParseMultilinePatternDedent(t *testing.T) {
	src := "key =\n    line one\n    line two\n"
	res, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	msg := res.Entries[0].(*ast.Message)
	if got := patternText(t, msg.Value); got != "line one\nline two" {
		t.Errorf("pattern text = %q", got)
	}
}

func TestParseMultilinePatternPreservesBlankLine(t *testing.T) {
	src := "key =\n    line one\n\n    line two\n"
	res, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	msg := res.Entries[0].(*ast.Message)
	if got := patternText(t, msg.Value); got != "line one\n\nline two" {
		t.Errorf("pattern text = %q", got)
	}
}

func TestParseAttachedComment(t *testing.T) {
	src := "# a greeting\nhello = Hi\n"
	res, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(res.Entries) != 1 {
		t.Fatalf("expected the comment to attach, got entries %v", entryNames(res))
	}
	msg := res.Entries[0].(*ast.Message)
	if msg.Comment == nil || msg.Comment.Content != "a greeting" {
		t.Fatalf("comment not attached: %+v", msg.Comment)
	}
}

func TestParseStandaloneGroupComment(t *testing.T) {
	src := "## Group\n\nhello = Hi\n"
	res, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got := entryNames(res); len(got) != 2 || got[0] != "comment" || got[1] != "msg:hello" {
		t.Fatalf("entries = %v", got)
	}
}

func TestParseTermAndReference(t *testing.T) {
	src := "-brand = Acme\nwelcome = Welcome to { -brand }!\n"
	res, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	term := res.Entries[0].(*ast.Term)
	if term.ID.Name != "brand" {
		t.Errorf("term ID = %q", term.ID.Name)
	}

	msg := res.Entries[1].(*ast.Message)
	placeable, ok := msg.Value.Elements[1].(*ast.Placeable)
	if !ok {
		t.Fatalf("expected placeable, got %T", msg.Value.Elements[1])
	}
	ref, ok := placeable.Expression.(*ast.TermReference)
	if !ok || ref.ID.Name != "brand" {
		t.Fatalf("expected term reference to brand, got %+v", placeable.Expression)
	}
}

func TestParseSelectExpression(t *testing.T) {
	src := "emails = { $count ->\n    [one] One new email\n   *[other] { $count } new emails\n}\n"
	res, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	msg := res.Entries[0].(*ast.Message)
	placeable := msg.Value.Elements[0].(*ast.Placeable)
	sel, ok := placeable.Expression.(*ast.SelectExpression)
	if !ok {
		t.Fatalf("expected select expression, got %T", placeable.Expression)
	}
	if len(sel.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(sel.Variants))
	}
	if !sel.Variants[1].Default {
		t.Errorf("expected second variant to be default")
	}
}

func TestParseFunctionCallWithNamedArgument(t *testing.T) {
	src := `amount = { NUMBER($value, minimumFractionDigits: 2) }` + "\n"
	res, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	msg := res.Entries[0].(*ast.Message)
	placeable := msg.Value.Elements[0].(*ast.Placeable)
	fn, ok := placeable.Expression.(*ast.FunctionReference)
	if !ok {
		t.Fatalf("expected function reference, got %T", placeable.Expression)
	}
	if fn.ID.Name != "NUMBER" {
		t.Errorf("function name = %q", fn.ID.Name)
	}
	if len(fn.Arguments.Positional) != 1 || len(fn.Arguments.Named) != 1 {
		t.Fatalf("unexpected arguments: %+v", fn.Arguments)
	}
	if fn.Arguments.Named[0].Name.Name != "minimumFractionDigits" {
		t.Errorf("named argument = %q", fn.Arguments.Named[0].Name.Name)
	}
}

func TestParseLowercaseCalleeIsForbidden(t *testing.T) {
	_, errs := Parse("broken = { number($value) }\n")
	if len(errs) != 1 || errs[0].Kind != ErrForbiddenCallee {
		t.Fatalf("expected ErrForbiddenCallee, got %v", errs)
	}
}

func TestParseMessageReferenceAsSelectorIsRejected(t *testing.T) {
	_, errs := Parse("other = x\nbroken = { other ->\n   *[x] y\n}\n")
	if len(errs) == 0 {
		t.Fatal("expected an error")
	}
	found := false
	for _, e := range errs {
		if e.Kind == ErrMessageReferenceAsSelector {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrMessageReferenceAsSelector, got %v", errs)
	}
}

func TestParseMissingDefaultVariant(t *testing.T) {
	_, errs := Parse("broken = { $n ->\n    [one] x\n    [other] y\n}\n")
	if len(errs) != 1 || errs[0].Kind != ErrMissingDefaultVariant {
		t.Fatalf("expected ErrMissingDefaultVariant, got %v", errs)
	}
}

func TestParseJunkRecoveryKeepsSubsequentEntries(t *testing.T) {
	src := "good1 = fine\n###broken entry without a sigil space\ngood2 = also fine\n"
	res, _ := Parse(src)
	names := entryNames(res)
	if len(names) != 3 {
		t.Fatalf("expected 3 entries, got %v", names)
	}
	if names[0] != "msg:good1" || names[2] != "msg:good2" {
		t.Fatalf("entries = %v", names)
	}
}

func TestParseStringLiteralWithEscapes(t *testing.T) {
	src := `key = { "a \" b A c" }` + "\n"
	res, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	msg := res.Entries[0].(*ast.Message)
	placeable := msg.Value.Elements[0].(*ast.Placeable)
	lit, ok := placeable.Expression.(*ast.StringLiteral)
	if !ok {
		t.Fatalf("expected string literal, got %T", placeable.Expression)
	}
	if lit.Value != `a \" b A c` {
		t.Errorf("literal value = %q", lit.Value)
	}
}

func TestParseAttributeAccess(t *testing.T) {
	src := "login-input = Predefined value\n    .placeholder = email@example.com\n    .aria-label = Login input value\n"
	res, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	msg := res.Entries[0].(*ast.Message)
	if len(msg.Attributes) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(msg.Attributes))
	}
	if msg.Attributes[0].ID.Name != "placeholder" {
		t.Errorf("attribute 0 = %q", msg.Attributes[0].ID.Name)
	}
	if msg.Attributes[1].ID.Name != "aria-label" {
		t.Errorf("attribute 1 = %q", msg.Attributes[1].ID.Name)
	}
}
