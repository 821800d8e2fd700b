// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parser implements the GBLN grammar (spec §4.2-§4.3):
// recursive-descent, one token of lookahead, dispatching to package
// coerce for every scalar it produces.
package parser

import (
	"github.com/gbln-org/gbln/coerce"
	"github.com/gbln-org/gbln/lexer"
	"github.com/gbln-org/gbln/reporter"
	"github.com/gbln-org/gbln/token"
	"github.com/gbln-org/gbln/value"
)

// Parser holds a lexer, its current lookahead token, and the nesting
// depth guard. It is not safe for concurrent use; create one Parser per
// parse.
type Parser struct {
	lex *lexer.Lexer
	src []byte
	cur token.Token

	depth    int
	maxDepth int // 0 means unlimited
}

// New creates a Parser over src with no nesting limit. Its lookahead is
// already primed with the first token.
func New(src []byte) (*Parser, error) {
	return NewWithMaxDepth(src, 0)
}

// NewWithMaxDepth is like New but rejects input nested more than
// maxDepth objects/arrays deep with InvalidSyntax, guarding the
// recursive descent against unbounded stack growth on adversarial
// input. maxDepth of 0 means unlimited.
func NewWithMaxDepth(src []byte, maxDepth int) (*Parser, error) {
	p := &Parser{lex: lexer.New(src), src: src, maxDepth: maxDepth}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse parses src into a single Value, matching spec §6.2's parse(text).
// It is equivalent to constructing a Parser and calling ParseDocument,
// provided for callers that don't need to reuse the Parser.
func Parse(src []byte, maxDepth int) (*value.Value, error) {
	p, err := NewWithMaxDepth(src, maxDepth)
	if err != nil {
		return nil, err
	}
	return p.ParseDocument()
}

// ParseDocument parses the entire token stream as a single document
// value and requires that nothing but EOF follows it (spec §4.2
// document := value).
func (p *Parser) ParseDocument() (*value.Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != token.EOF {
		return nil, reporter.Newf(reporter.UnexpectedToken, p.posOf(p.cur.Offset),
			"unexpected trailing input: %s", p.cur)
	}
	return v, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) posOf(offset int) reporter.Position {
	return reporter.PositionOf(p.src, offset)
}

func (p *Parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return reporter.Newf(reporter.InvalidSyntax, p.posOf(p.cur.Offset),
			"maximum nesting depth of %d exceeded", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// parseValue parses a document-position value (spec §4.2 value): an
// anonymous object, an anonymous array, a top-level typed array
// (spec §9 "Open: top-level typed arrays"), or a named value that gets
// wrapped into a single-field anonymous object (spec §4.2 Wrapping
// rule). Unlike parseArrayElement, a bare Ident with no continuation is
// not a valid document by itself: every one of value's four grammar
// alternatives requires more than a lone identifier.
func (p *Parser) parseValue() (*value.Value, error) {
	switch p.cur.Kind {
	case token.EOF:
		return nil, reporter.New(reporter.UnexpectedEof, p.posOf(p.cur.Offset), "unexpected end of input; expected a value")
	case token.LBrace:
		return p.parseObjectBody()
	case token.LBracket:
		return p.parseArrayBody(nil)
	case token.Lt:
		return p.parseBareTypedValue()
	case token.Ident:
		name := p.cur.Lexeme
		namePos := p.cur.Offset
		if err := p.advance(); err != nil {
			return nil, err
		}
		child, err := p.parseAfterIdent(name, namePos)
		if err != nil {
			return nil, err
		}
		return wrapSingleField(name, child, p.posOf(namePos))
	default:
		return nil, reporter.Newf(reporter.UnexpectedToken, p.posOf(p.cur.Offset),
			"unexpected token %s at start of value", p.cur)
	}
}

// parseAfterIdent parses whatever follows a field key or a to-be-wrapped
// top-level name: typeHint?payload, a bare payload (inferred scalar),
// or a nested object/array (spec §4.3 dispatch table). name/namePos are
// used only for diagnostics.
func (p *Parser) parseAfterIdent(name string, namePos int) (*value.Value, error) {
	switch p.cur.Kind {
	case token.Lt:
		tag, err := p.parseTypeHint()
		if err != nil {
			return nil, err
		}
		switch p.cur.Kind {
		case token.LParen:
			payload, pos, err := p.expectPayload()
			if err != nil {
				return nil, err
			}
			return coerce.Coerce(tag, payload, p.posOf(pos))
		case token.LBracket:
			return p.parseArrayBody(&tag)
		default:
			return nil, reporter.Newf(reporter.UnexpectedToken, p.posOf(p.cur.Offset),
				"expected '(' or '[' after type hint <%s>, found %s", tag, p.cur)
		}
	case token.LParen:
		payload, pos, err := p.expectPayload()
		if err != nil {
			return nil, err
		}
		return coerce.Coerce(inferTag(payload), payload, p.posOf(pos))
	case token.LBrace:
		return p.parseObjectBody()
	case token.LBracket:
		return p.parseArrayBody(nil)
	default:
		return nil, reporter.Newf(reporter.UnexpectedToken, p.posOf(p.cur.Offset),
			"expected '<', '(', '{', or '[' after %q, found %s", name, p.cur)
	}
}

// parseBareTypedValue parses a type hint with no preceding Ident:
// either a top-level typed array <tag>[...] (spec §9 "Open: top-level
// typed arrays") or a bare typed scalar <tag>(payload). The latter is
// the nameless counterpart of typedScalar, needed so the serializer can
// give every heterogeneous-array scalar element an explicit tag (spec
// §4.4) and have it parse back to the exact same non-canonical type;
// see DESIGN.md.
func (p *Parser) parseBareTypedValue() (*value.Value, error) {
	tag, err := p.parseTypeHint()
	if err != nil {
		return nil, err
	}
	switch p.cur.Kind {
	case token.LBracket:
		return p.parseArrayBody(&tag)
	case token.LParen:
		payload, pos, err := p.expectPayload()
		if err != nil {
			return nil, err
		}
		return coerce.Coerce(tag, payload, p.posOf(pos))
	default:
		return nil, reporter.Newf(reporter.UnexpectedToken, p.posOf(p.cur.Offset),
			"expected '(' or '[' after type hint <%s>, found %s", tag, p.cur)
	}
}

// parseTypeHint parses '<' Ident '>' (spec §4.2 typeHint), assuming
// p.cur is the '<'. It leaves p.cur positioned just past the '>'.
func (p *Parser) parseTypeHint() (value.Tag, error) {
	if err := p.advance(); err != nil { // consume '<'
		return 0, err
	}
	if p.cur.Kind != token.Ident {
		return 0, reporter.Newf(reporter.InvalidTypeHint, p.posOf(p.cur.Offset),
			"expected a type tag after '<', found %s", p.cur)
	}
	hint := p.cur.Lexeme
	hintPos := p.cur.Offset
	if err := p.advance(); err != nil { // consume tag ident
		return 0, err
	}
	if p.cur.Kind != token.Gt {
		return 0, reporter.Newf(reporter.InvalidTypeHint, p.posOf(p.cur.Offset),
			"expected '>' to close type hint <%s, found %s", hint, p.cur)
	}
	if err := p.advance(); err != nil { // consume '>'
		return 0, err
	}
	tag, ok := value.TagFromHint(hint)
	if !ok {
		return 0, reporter.Newf(reporter.InvalidTypeHint, p.posOf(hintPos), "unknown type tag %q", hint).
			WithSuggestion("valid tags: i8 i16 i32 i64 u8 u16 u32 u64 f32 f64 s8 s16 s32 s64 b n")
	}
	return tag, nil
}

// expectPayload parses '(' rawBytes? ')' (spec §4.2 payload), assuming
// p.cur is the '('. It returns the raw content and the byte offset of
// the opening '(', and leaves p.cur positioned just past the ')'.
func (p *Parser) expectPayload() (string, int, error) {
	pos := p.cur.Offset
	payload, err := p.lex.Payload()
	if err != nil {
		return "", pos, err
	}
	if err := p.advance(); err != nil {
		return "", pos, err
	}
	return payload, pos, nil
}

// parseObjectBody parses '{' field* '}' (spec §4.2 object), assuming
// p.cur is the '{'. Fields accumulate as (key, child) pairs; a repeated
// key fires DuplicateKey (spec §4.3).
func (p *Parser) parseObjectBody() (*value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	startPos := p.cur.Offset
	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}
	obj := value.NewObject()
	for {
		switch p.cur.Kind {
		case token.RBrace:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return obj, nil
		case token.EOF:
			return nil, reporter.Newf(reporter.UnexpectedEof, p.posOf(p.cur.Offset),
				"unexpected end of input inside object opened at offset %d", startPos)
		case token.Ident:
			key := p.cur.Lexeme
			keyPos := p.cur.Offset
			if err := p.advance(); err != nil {
				return nil, err
			}
			child, err := p.parseAfterIdent(key, keyPos)
			if err != nil {
				return nil, err
			}
			if err := value.ObjectInsert(obj, key, child); err != nil {
				return nil, reporter.Newf(reporter.DuplicateKey, p.posOf(keyPos), "duplicate key %q", key)
			}
		default:
			return nil, reporter.Newf(reporter.UnexpectedToken, p.posOf(p.cur.Offset),
				"expected field name or '}', found %s", p.cur)
		}
	}
}

// parseArrayBody parses '[' element* ']' (spec §4.2 array body),
// assuming p.cur is the '['. When elemTag is non-nil the array was
// declared with a uniform type hint and every element is coerced
// through it directly from its raw lexeme or payload; otherwise each
// element is a full value production with independent inference.
func (p *Parser) parseArrayBody(elemTag *value.Tag) (*value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	startPos := p.cur.Offset
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	var arr *value.Value
	if elemTag != nil {
		arr = value.NewTypedArray(*elemTag)
	} else {
		arr = value.NewArray()
	}
	for {
		switch p.cur.Kind {
		case token.RBracket:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return arr, nil
		case token.EOF:
			return nil, reporter.Newf(reporter.UnexpectedEof, p.posOf(p.cur.Offset),
				"unexpected end of input inside array opened at offset %d", startPos)
		default:
			var elem *value.Value
			var err error
			if elemTag != nil {
				elem, err = p.parseTypedArrayElement(*elemTag)
			} else {
				elem, err = p.parseArrayElement()
			}
			if err != nil {
				return nil, err
			}
			if err := value.ArrayPush(arr, elem); err != nil {
				return nil, err
			}
		}
	}
}

// parseTypedArrayElement reads one element of a uniformly-typed array:
// either a bare Ident lexeme or a parenthesized payload, coerced
// directly through tag (spec §4.3: "every element is forced through
// that type's coercer").
func (p *Parser) parseTypedArrayElement(tag value.Tag) (*value.Value, error) {
	switch p.cur.Kind {
	case token.Ident:
		lexeme := p.cur.Lexeme
		pos := p.cur.Offset
		if err := p.advance(); err != nil {
			return nil, err
		}
		return coerce.Coerce(tag, lexeme, p.posOf(pos))
	case token.LParen:
		payload, pos, err := p.expectPayload()
		if err != nil {
			return nil, err
		}
		return coerce.Coerce(tag, payload, p.posOf(pos))
	default:
		return nil, reporter.Newf(reporter.UnexpectedToken, p.posOf(p.cur.Offset),
			"expected array element, found %s", p.cur)
	}
}

// parseArrayElement reads one element of an untyped array (spec §4.2
// element := value | Ident). A bare Ident with no '<','(','{','['
// continuation is a scalar element inferred from its own lexeme (spec
// §4.3 inference rules); an Ident with a continuation is a full nested
// value, following the same Wrapping rule as a top-level name.
func (p *Parser) parseArrayElement() (*value.Value, error) {
	switch p.cur.Kind {
	case token.LBrace:
		return p.parseObjectBody()
	case token.LBracket:
		return p.parseArrayBody(nil)
	case token.Lt:
		return p.parseBareTypedValue()
	case token.Ident:
		lexeme := p.cur.Lexeme
		pos := p.cur.Offset
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.cur.Kind {
		case token.Lt, token.LParen, token.LBrace, token.LBracket:
			child, err := p.parseAfterIdent(lexeme, pos)
			if err != nil {
				return nil, err
			}
			return wrapSingleField(lexeme, child, p.posOf(pos))
		default:
			return coerce.Coerce(inferTag(lexeme), lexeme, p.posOf(pos))
		}
	default:
		return nil, reporter.Newf(reporter.UnexpectedToken, p.posOf(p.cur.Offset),
			"expected array element, found %s", p.cur)
	}
}

func wrapSingleField(name string, child *value.Value, pos reporter.Position) (*value.Value, error) {
	obj := value.NewObject()
	if err := value.ObjectInsert(obj, name, child); err != nil {
		return nil, reporter.Newf(reporter.DuplicateKey, pos, "duplicate key %q", name)
	}
	return obj, nil
}
