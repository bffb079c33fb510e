// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

// Package parser implements a hand-written, recursive-descent parser for
// the Fluent (.ftl) syntax. It never fails outright: malformed entries are
// recovered as ast.Junk spans so that the rest of a resource still parses.
package parser

import (
	"math"
	"strings"

	"github.com/worldiety/fluent/ast"
)

// Parser turns Fluent source text into an ast.Resource plus the list of
// recoverable errors encountered along the way.
type Parser struct {
	c *cursor
}

// New creates a parser over the given source text.
func New(source string) *Parser {
	return &Parser{c: newCursor(source)}
}

// Parse parses a complete resource. It always returns a non-nil Resource;
// syntax problems are reported as Errors and as Junk entries covering the
// byte range that could not be interpreted.
func Parse(source string) (*ast.Resource, []*Error) {
	return New(source).Parse()
}

// Parse runs the parser to completion.
func (p *Parser) Parse() (*ast.Resource, []*Error) {
	var errs []*Error
	var entries []ast.Entry
	var pending *ast.Comment

	p.skipBlankBlock()

	for !p.c.atEnd() {
		start := p.c.pos
		entry, err := p.parseEntryOrJunk(start)
		if err != nil {
			errs = append(errs, err)
		}

		blankSkipped := p.skipBlankBlock()

		if comment, ok := entry.(*ast.Comment); ok && comment.Level == ast.CommentRegular && blankSkipped == 0 && !p.c.atEnd() {
			pending = comment
			continue
		}

		if pending != nil {
			switch e := entry.(type) {
			case *ast.Message:
				e.Comment = pending
				e.Span.Start = pending.Span.Start
			case *ast.Term:
				e.Comment = pending
				e.Span.Start = pending.Span.Start
			default:
				entries = append(entries, pending)
			}
			pending = nil
		}

		entries = append(entries, entry)
	}

	if pending != nil {
		entries = append(entries, pending)
	}

	return &ast.Resource{
		Span:    ast.Span{Start: 0, End: len(p.c.src)},
		Entries: entries,
	}, errs
}

// parseEntryOrJunk parses one entry. On any error it rewinds to start,
// scans forward to the next plausible entry start, and returns a Junk
// entry covering the skipped range.
func (p *Parser) parseEntryOrJunk(start int) (ast.Entry, *Error) {
	entry, err := p.parseEntry()
	if err == nil {
		if eerr := p.c.expectEOL(); eerr == nil {
			return entry, nil
		} else {
			err = eerr
		}
	}

	perr, ok := err.(*Error)
	if !ok {
		perr = newError(ErrGeneric, start, p.c.pos, "%s", err.Error())
	}

	p.c.pos = start
	for !p.c.atEnd() {
		if eolLen := p.c.eolLenAt(p.c.pos); eolLen > 0 {
			p.c.skip(eolLen)
			if p.c.atEnd() || isEntryStart(p.c.peek()) {
				break
			}
			continue
		}
		p.c.advance()
	}

	end := p.c.pos
	return &ast.Junk{
		Span:        ast.Span{Start: start, End: end},
		Content:     p.c.src[start:end],
		Annotations: []string{perr.Error()},
	}, perr
}

func (p *Parser) parseEntry() (ast.Entry, error) {
	switch p.c.peek() {
	case '#':
		return p.parseComment()
	case '-':
		return p.parseTerm()
	default:
		return p.parseMessage()
	}
}

func (p *Parser) parseComment() (ast.Entry, error) {
	start := p.c.pos
	level := -1
	var content strings.Builder

	for {
		if level == -1 {
			offset := 0
			for p.c.peekAt(offset) == '#' && level < 2 {
				offset++
				level++
			}
		}
		p.c.skip(level + 1)

		if p.c.peek() != eof && !p.c.atEOL() {
			if err := p.c.expect(' '); err != nil {
				return nil, err
			}
			lineStart := p.c.pos
			for !p.c.atEnd() && !p.c.atEOL() {
				p.c.advance()
			}
			content.WriteString(p.c.src[lineStart:p.c.pos])
		}

		continues := false
		if p.c.atEOL() {
			eolLen := p.c.eolLenAt(p.c.pos)
			sameLevel := true
			for i := 0; i <= level; i++ {
				if p.c.peekAt(eolLen+i) != '#' {
					sameLevel = false
					break
				}
			}
			if sameLevel {
				next := p.c.peekAt(eolLen + level + 1)
				if next == ' ' || next == eof || p.c.isEOLAt(p.c.pos+eolLen+level+1) {
					continues = true
				}
			}
		}

		if !continues {
			break
		}

		content.WriteByte('\n')
		p.c.skip(p.c.eolLenAt(p.c.pos))
	}

	end := p.c.pos
	lvl := ast.CommentRegular
	switch level {
	case 1:
		lvl = ast.CommentGroup
	case 2:
		lvl = ast.CommentResource
	}

	return &ast.Comment{Span: ast.Span{Start: start, End: end}, Level: lvl, Content: content.String()}, nil
}

func (p *Parser) parseTerm() (ast.Entry, error) {
	start := p.c.pos
	if err := p.c.expect('-'); err != nil {
		return nil, err
	}

	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	p.skipBlankInline()
	if err := p.c.expect('='); err != nil {
		return nil, err
	}

	value, err := p.parseOptionalPattern()
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, errExpectedTermField(start, p.c.pos, id.Name)
	}

	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}

	return &ast.Term{
		Span:       ast.Span{Start: start, End: p.c.pos},
		ID:         id,
		Value:      value,
		Attributes: attrs,
	}, nil
}

func (p *Parser) parseMessage() (ast.Entry, error) {
	start := p.c.pos
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	p.skipBlankInline()
	if err := p.c.expect('='); err != nil {
		return nil, err
	}

	value, err := p.parseOptionalPattern()
	if err != nil {
		return nil, err
	}

	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}

	if value == nil && len(attrs) == 0 {
		return nil, errExpectedMessageField(start, p.c.pos, id.Name)
	}

	return &ast.Message{
		Span:       ast.Span{Start: start, End: p.c.pos},
		ID:         id,
		Value:      value,
		Attributes: attrs,
	}, nil
}

func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	start := p.c.pos
	if !isIdentifierStart(p.c.peek()) {
		return nil, errExpectedCharRange(p.c.pos, 'a', 'z')
	}
	p.c.advance()
	for isIdentifierChar(p.c.peek()) {
		p.c.advance()
	}
	return &ast.Identifier{Span: ast.Span{Start: start, End: p.c.pos}, Name: p.c.src[start:p.c.pos]}, nil
}

func (p *Parser) skipBlankInline() {
	for isInlineBlank(p.c.peek()) {
		p.c.advance()
	}
}

// skipBlankBlock skips any number of whole blank lines (lines that contain
// only inline blanks) and returns how many bytes it consumed.
func (p *Parser) skipBlankBlock() int {
	start := p.c.pos
	for {
		save := p.c.pos
		p.skipBlankInline()
		if p.c.atEOL() {
			p.c.skip(p.c.eolLenAt(p.c.pos))
			continue
		}
		p.c.pos = save
		break
	}
	return p.c.pos - start
}

// skipBlank skips inline blanks and line terminators interchangeably, as
// used inside placeables.
func (p *Parser) skipBlank() {
	for {
		if isInlineBlank(p.c.peek()) {
			p.c.advance()
			continue
		}
		if p.c.atEOL() {
			p.c.skip(p.c.eolLenAt(p.c.pos))
			continue
		}
		break
	}
}

func (p *Parser) countBlankInlineAt(offset int) int {
	n := 0
	for isInlineBlank(p.c.peekAt(offset + n)) {
		n++
	}
	return n
}

// countBlankBlock measures, from the cursor position, how many bytes make
// up a run of wholly-blank lines, stopping right before the first line
// that has non-blank content (or isn't terminated by an EOL at all).
func (p *Parser) countBlankBlock() int {
	offset := 0
	for {
		spaces := p.countBlankInlineAt(offset)
		eolLen := p.c.eolLenAt(p.c.pos + offset + spaces)
		if eolLen == 0 {
			break
		}
		offset += spaces + eolLen
	}
	return offset
}

func isOneOf(b byte, opts ...byte) bool {
	for _, o := range opts {
		if b == o {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// parseOptionalPattern parses a Pattern if the current position plausibly
// starts one, returning (nil, nil) when there is none.
func (p *Parser) parseOptionalPattern() (*ast.Pattern, error) {
	inlineLen := p.countBlankInlineAt(0)
	first := p.c.peekAt(inlineLen)

	if first == eof {
		return nil, nil
	}

	if !p.c.isEOLAt(p.c.pos + inlineLen) {
		p.c.skip(inlineLen)
		return p.parsePattern(false)
	}

	blankBlockLen := p.countBlankBlock()
	indentLen := p.countBlankInlineAt(blankBlockLen)
	firstCh := p.c.peekAt(blankBlockLen + indentLen)

	if firstCh != '{' && (indentLen == 0 || isOneOf(firstCh, '}', '.', '[', '*')) {
		return nil, nil
	}

	p.c.skip(blankBlockLen)
	return p.parsePattern(true)
}

type patternPieceKind int8

const (
	pieceText patternPieceKind = iota
	pieceIndent
	piecePlaceable
)

type patternPiece struct {
	kind      patternPieceKind
	span      ast.Span
	value     string
	placeable *ast.Placeable
}

// parsePattern parses the body of a Pattern. block indicates the pattern's
// first line of content starts on the line after the `=`/key, requiring
// indentation to be measured and stripped per the common-indent rule.
func (p *Parser) parsePattern(block bool) (*ast.Pattern, error) {
	start := p.c.pos
	commonIndent := math.MaxInt
	var pieces []patternPiece

	if block {
		indentLen := p.countBlankInlineAt(0)
		commonIndent = indentLen
		pieces = append(pieces, patternPiece{
			kind:  pieceIndent,
			span:  ast.Span{Start: p.c.pos, End: p.c.pos + indentLen},
			value: p.c.src[p.c.pos : p.c.pos+indentLen],
		})
		p.c.skip(indentLen)
	}

scan:
	for !p.c.atEnd() {
		switch {
		case p.c.peek() == '{':
			pl, err := p.parsePlaceable()
			if err != nil {
				return nil, err
			}
			pieces = append(pieces, patternPiece{kind: piecePlaceable, span: pl.Span, placeable: pl})
		case p.c.peek() == '}':
			return nil, newError(ErrUnbalancedClosingBrace, p.c.pos, p.c.pos, "unbalanced closing brace")
		case p.c.atEOL():
			indentStart := p.c.pos
			blankBlockLen := p.countBlankBlock()
			indentLen := p.countBlankInlineAt(blankBlockLen)
			first := p.c.peekAt(blankBlockLen + indentLen)
			if first != '{' && (indentLen == 0 || isOneOf(first, '}', '.', '[', '*')) {
				break scan
			}
			commonIndent = minInt(commonIndent, indentLen)
			totalLen := blankBlockLen + indentLen
			pieces = append(pieces, patternPiece{
				kind:  pieceIndent,
				span:  ast.Span{Start: indentStart, End: indentStart + totalLen},
				value: p.c.src[indentStart : indentStart+totalLen],
			})
			p.c.skip(totalLen)
		default:
			textStart := p.c.pos
			for !p.c.atEnd() && p.c.peek() != '{' && p.c.peek() != '}' && !p.c.atEOL() {
				p.c.advance()
			}
			pieces = append(pieces, patternPiece{
				kind:  pieceText,
				span:  ast.Span{Start: textStart, End: p.c.pos},
				value: p.c.src[textStart:p.c.pos],
			})
		}
	}

	if commonIndent == math.MaxInt {
		commonIndent = 0
	}

	trimmed := make([]ast.PatternElement, 0, len(pieces))
	for _, piece := range pieces {
		if piece.kind == piecePlaceable {
			trimmed = append(trimmed, piece.placeable)
			continue
		}

		value := piece.value
		if piece.kind == pieceIndent {
			strip := commonIndent
			if strip > len(value) {
				strip = len(value)
			}
			value = value[:len(value)-strip]
			if value == "" {
				continue
			}
		}

		if len(trimmed) > 0 {
			if prev, ok := trimmed[len(trimmed)-1].(*ast.TextElement); ok {
				prev.Value += value
				prev.Span.End = piece.span.End
				continue
			}
		}

		trimmed = append(trimmed, &ast.TextElement{Span: piece.span, Value: value})
	}

	if len(trimmed) > 0 {
		if last, ok := trimmed[len(trimmed)-1].(*ast.TextElement); ok {
			v := strings.TrimRight(last.Value, " ")
			if strings.Trim(v, "\r\n") == "" {
				trimmed = trimmed[:len(trimmed)-1]
			} else {
				last.Value = v
			}
		}
	}

	return &ast.Pattern{
		Span:     ast.Span{Start: start, End: p.c.pos},
		Elements: trimmed,
	}, nil
}

func (p *Parser) parsePlaceable() (*ast.Placeable, error) {
	start := p.c.pos
	if err := p.c.expect('{'); err != nil {
		return nil, err
	}
	p.skipBlank()

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	p.skipBlank()
	if err := p.c.expect('}'); err != nil {
		return nil, err
	}

	return &ast.Placeable{Span: ast.Span{Start: start, End: p.c.pos}, Expression: expr}, nil
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	start := p.c.pos

	selector, err := p.parseInlineExpression()
	if err != nil {
		return nil, err
	}

	p.skipBlank()

	if !(p.c.peek() == '-' && p.c.peekAt(1) == '>') {
		if term, ok := selector.(*ast.TermReference); ok && term.Attribute != nil {
			return nil, newError(ErrTermAttributeAsPlaceable, start, p.c.pos, "term attribute references are not allowed outside of selectors")
		}
		return selector, nil
	}

	switch sel := selector.(type) {
	case *ast.MessageReference:
		if sel.Attribute != nil {
			return nil, newError(ErrMessageAttributeAsSelector, start, p.c.pos, "message attributes cannot be used as selectors")
		}
		return nil, newError(ErrMessageReferenceAsSelector, start, p.c.pos, "message references cannot be used as selectors")
	case *ast.PlaceableExpression:
		return nil, newError(ErrExpectedSimpleExpressionAsSelector, start, p.c.pos, "expected a simple expression as the selector")
	case *ast.TermReference:
		if sel.Attribute == nil {
			return nil, newError(ErrTermReferenceAsSelector, start, p.c.pos, "term references without an attribute cannot be used as selectors")
		}
	}

	p.c.skip(2)
	p.skipBlankInline()
	if err := p.c.expectEOL(); err != nil {
		return nil, err
	}

	variants, err := p.parseVariants()
	if err != nil {
		return nil, err
	}

	return &ast.SelectExpression{
		Span:     ast.Span{Start: start, End: p.c.pos},
		Selector: selector.(ast.InlineExpression),
		Variants: variants,
	}, nil
}

func (p *Parser) parseInlineExpression() (ast.InlineExpression, error) {
	start := p.c.pos
	peek := p.c.peek()

	switch {
	case peek == '{':
		inner, err := p.parsePlaceable()
		if err != nil {
			return nil, err
		}
		return &ast.PlaceableExpression{Span: inner.Span, Inner: inner}, nil

	case isASCIIDigit(peek) || (peek == '-' && isASCIIDigit(p.c.peekAt(1))):
		return p.parseNumber()

	case peek == '"':
		return p.parseString()

	case peek == '$':
		p.c.skip(1)
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.VariableReference{Span: ast.Span{Start: start, End: p.c.pos}, ID: id}, nil

	case peek == '-':
		p.c.skip(1)
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}

		var attr *ast.Identifier
		if p.c.peek() == '.' {
			p.c.skip(1)
			attr, err = p.parseIdentifier()
			if err != nil {
				return nil, err
			}
		}

		var args *ast.CallArguments
		blankLen := p.countBlankLen()
		if p.c.peekAt(blankLen) == '(' {
			p.c.skip(blankLen)
			args, err = p.parseCallArguments()
			if err != nil {
				return nil, err
			}
		}

		return &ast.TermReference{
			Span:      ast.Span{Start: start, End: p.c.pos},
			ID:        id,
			Attribute: attr,
			Arguments: args,
		}, nil
	}

	if !isIdentifierStart(peek) {
		return nil, newError(ErrExpectedInlineExpression, start, p.c.pos, "expected an inline expression")
	}

	idStart := p.c.pos
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	blankLen := p.countBlankLen()
	if p.c.peekAt(blankLen) == '(' {
		if hasLowercase(id.Name) {
			return nil, newError(ErrForbiddenCallee, idStart, p.c.pos, "function names must be all-uppercase")
		}
		p.c.skip(blankLen)
		args, err := p.parseCallArguments()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionReference{Span: ast.Span{Start: start, End: p.c.pos}, ID: id, Arguments: args}, nil
	}

	var attr *ast.Identifier
	if p.c.peek() == '.' {
		p.c.skip(1)
		attr, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}

	return &ast.MessageReference{Span: ast.Span{Start: start, End: p.c.pos}, ID: id, Attribute: attr}, nil
}

// countBlankLen measures a mix of inline blanks and line terminators ahead
// of the cursor without consuming them, mirroring skipBlank's rules.
func (p *Parser) countBlankLen() int {
	n := 0
	for {
		if isInlineBlank(p.c.peekAt(n)) {
			n++
			continue
		}
		if eolLen := p.c.eolLenAt(p.c.pos + n); eolLen > 0 {
			n += eolLen
			continue
		}
		break
	}
	return n
}

func hasLowercase(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			return true
		}
	}
	return false
}

func (p *Parser) parseCallArguments() (*ast.CallArguments, error) {
	start := p.c.pos
	var positional []ast.InlineExpression
	var named []*ast.NamedArgument
	seen := map[string]bool{}

	if err := p.c.expect('('); err != nil {
		return nil, err
	}
	p.skipBlank()

	for p.c.peek() != ')' {
		argStart := p.c.pos
		arg, err := p.parseCallArgument()
		if err != nil {
			return nil, err
		}

		if named1, ok := arg.(*ast.NamedArgument); ok {
			if seen[named1.Name.Name] {
				return nil, &Error{Kind: ErrDuplicatedNamedArgument, Span: ast.Span{Start: argStart, End: p.c.pos}, Name: named1.Name.Name}
			}
			seen[named1.Name.Name] = true
			named = append(named, named1)
		} else if len(named) > 0 {
			return nil, newError(ErrPositionalArgumentFollowsNamed, argStart, p.c.pos, "positional arguments may not follow named arguments")
		} else {
			positional = append(positional, arg.(ast.InlineExpression))
		}

		p.skipBlank()
		if p.c.peek() == ',' {
			p.c.skip(1)
			p.skipBlank()
			continue
		}
		break
	}

	if err := p.c.expect(')'); err != nil {
		return nil, err
	}

	return &ast.CallArguments{
		Span:       ast.Span{Start: start, End: p.c.pos},
		Positional: positional,
		Named:      named,
	}, nil
}

// parseCallArgument parses either a positional inline expression or a
// `name: literal` named argument, returned as ast.InlineExpression or
// *ast.NamedArgument respectively.
func (p *Parser) parseCallArgument() (ast.Node, error) {
	start := p.c.pos
	expr, err := p.parseInlineExpression()
	if err != nil {
		return nil, err
	}

	p.skipBlank()
	if p.c.peek() != ':' {
		return expr, nil
	}

	ref, ok := expr.(*ast.MessageReference)
	if !ok || ref.Attribute != nil {
		return nil, newError(ErrExpectedInlineExpression, start, p.c.pos, "argument name must be a simple identifier")
	}

	p.c.skip(1)
	p.skipBlank()

	value, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}

	return &ast.NamedArgument{
		Span:  ast.Span{Start: start, End: p.c.pos},
		Name:  ref.ID,
		Value: value,
	}, nil
}

func (p *Parser) parseVariants() ([]*ast.Variant, error) {
	start := p.c.pos
	var variants []*ast.Variant
	haveDefault := false

	p.skipBlank()

	for p.c.peek() == '[' || (p.c.peek() == '*' && p.c.peekAt(1) == '[') {
		variantStart := p.c.pos
		isDefault := false
		if p.c.peek() == '*' {
			if haveDefault {
				return nil, newError(ErrMultipleDefaultVariants, variantStart, variantStart, "a select expression may only have one default variant")
			}
			haveDefault = true
			isDefault = true
			p.c.skip(1)
		}

		if err := p.c.expect('['); err != nil {
			return nil, err
		}
		p.skipBlank()

		key, err := p.parseVariantKey()
		if err != nil {
			return nil, err
		}
		p.skipBlank()

		if err := p.c.expect(']'); err != nil {
			return nil, err
		}

		pattern, err := p.parseOptionalPattern()
		if err != nil {
			return nil, err
		}
		if pattern == nil {
			return nil, newError(ErrMissingValue, variantStart, p.c.pos, "a variant requires a value")
		}

		variants = append(variants, &ast.Variant{
			Span:    ast.Span{Start: variantStart, End: p.c.pos},
			Key:     key,
			Value:   pattern,
			Default: isDefault,
		})

		if err := p.c.expectEOL(); err != nil {
			return nil, err
		}
		p.skipBlank()
	}

	if len(variants) == 0 {
		return nil, newError(ErrMissingValue, start, p.c.pos, "a select expression requires at least one variant")
	}
	if !haveDefault {
		return nil, newError(ErrMissingDefaultVariant, start, p.c.pos, "a select expression must have a default variant")
	}

	return variants, nil
}

func (p *Parser) parseVariantKey() (ast.VariantKey, error) {
	if p.c.atEOL() || p.c.atEnd() {
		return nil, newError(ErrMissingValue, p.c.pos, p.c.pos, "a variant key is required")
	}
	if isASCIIDigit(p.c.peek()) || p.c.peek() == '-' {
		return p.parseNumber()
	}
	return p.parseIdentifier()
}

func (p *Parser) parseAttributes() ([]*ast.Attribute, error) {
	var attrs []*ast.Attribute

	blankLen := p.countBlankLen()
	for p.c.peekAt(blankLen) == '.' {
		p.c.skip(blankLen)
		attr, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
		blankLen = p.countBlankLen()
	}

	return attrs, nil
}

func (p *Parser) parseAttribute() (*ast.Attribute, error) {
	start := p.c.pos
	if err := p.c.expect('.'); err != nil {
		return nil, err
	}

	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	p.skipBlankInline()
	if err := p.c.expect('='); err != nil {
		return nil, err
	}

	value, err := p.parseOptionalPattern()
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, newError(ErrMissingValue, start, p.c.pos, "an attribute requires a value")
	}

	return &ast.Attribute{Span: ast.Span{Start: start, End: p.c.pos}, ID: id, Value: value}, nil
}

func (p *Parser) parseLiteral() (ast.InlineExpression, error) {
	peek := p.c.peek()
	if isASCIIDigit(peek) || peek == '-' {
		return p.parseNumber()
	}
	if peek == '"' {
		return p.parseString()
	}
	return nil, newError(ErrExpectedInlineExpression, p.c.pos, p.c.pos, "expected a string or number literal")
}

func (p *Parser) parseNumber() (*ast.NumberLiteral, error) {
	start := p.c.pos
	if p.c.peek() == '-' {
		p.c.advance()
	}
	for isASCIIDigit(p.c.peek()) {
		p.c.advance()
	}
	if p.c.peek() == '.' {
		p.c.advance()
		digits := 0
		for isASCIIDigit(p.c.peek()) {
			p.c.advance()
			digits++
		}
		if digits == 0 {
			return nil, newError(ErrExpectedCharRange, p.c.pos, p.c.pos, "expected a digit after the decimal point")
		}
	}
	return &ast.NumberLiteral{Span: ast.Span{Start: start, End: p.c.pos}, Value: p.c.src[start:p.c.pos]}, nil
}

func (p *Parser) parseString() (*ast.StringLiteral, error) {
	start := p.c.pos
	if err := p.c.expect('"'); err != nil {
		return nil, err
	}

	var buf strings.Builder
	for !p.c.atEnd() && p.c.peek() != '"' && !p.c.atEOL() {
		if p.c.peek() == '\\' {
			seq, err := p.parseEscapeSequence()
			if err != nil {
				return nil, err
			}
			buf.WriteString(seq)
			continue
		}
		buf.WriteByte(p.c.advance())
	}

	if err := p.c.expect('"'); err != nil {
		return nil, err
	}

	return &ast.StringLiteral{Span: ast.Span{Start: start, End: p.c.pos}, Value: buf.String()}, nil
}

func (p *Parser) parseEscapeSequence() (string, error) {
	if err := p.c.expect('\\'); err != nil {
		return "", err
	}

	switch p.c.peek() {
	case '\\', '"', '{':
		return "\\" + string(p.c.advance()), nil
	case 'u':
		return p.parseUnicodeEscapeSequence('u', 4)
	case 'U':
		return p.parseUnicodeEscapeSequence('U', 6)
	default:
		return "", newError(ErrInvalidUnicodeEscapeSequence, p.c.pos, p.c.pos, "unknown escape sequence")
	}
}

func (p *Parser) parseUnicodeEscapeSequence(marker byte, digits int) (string, error) {
	if err := p.c.expect(marker); err != nil {
		return "", err
	}

	raw := "\\" + string(marker)
	for i := 0; i < digits; i++ {
		if !isHexDigit(p.c.peek()) {
			return "", &Error{Kind: ErrInvalidUnicodeEscapeSequence, Span: ast.Span{Start: p.c.pos, End: p.c.pos}, Name: raw}
		}
		raw += string(p.c.advance())
	}
	return raw, nil
}
