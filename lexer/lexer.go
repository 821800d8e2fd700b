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

// Package lexer turns GBLN source text into a forward stream of tokens
// (spec §4.1). It performs no lookahead beyond the byte currently under
// the cursor; all disambiguation between grammar productions happens one
// layer up, in the parser.
package lexer

import (
	"unicode/utf8"

	"github.com/gbln-org/gbln/reporter"
	"github.com/gbln-org/gbln/token"
)

// isIdentByte reports whether b may appear inside an Ident lexeme, per
// spec §6.1: [A-Za-z0-9_\-.+].
func isIdentByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '_', b == '-', b == '.', b == '+':
		return true
	default:
		return false
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// Lexer scans a fixed byte slice of GBLN source text.
type Lexer struct {
	src []byte
	pos int
}

// New returns a Lexer over src. The caller retains ownership of src; the
// lexer never mutates it.
func New(src []byte) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) pos0() reporter.Position {
	return reporter.PositionOf(l.src, l.pos)
}

func (l *Lexer) skipSpace() {
	for !l.eof() && isSpace(l.src[l.pos]) {
		l.pos++
	}
}

// Next returns the next token in the stream. At end of input it returns
// a token.EOF token repeatedly; it never returns an error for EOF itself.
func (l *Lexer) Next() (token.Token, error) {
	l.skipSpace()
	if l.eof() {
		return token.Token{Kind: token.EOF, Offset: l.pos}, nil
	}

	start := l.pos
	b := l.src[l.pos]

	switch b {
	case '{':
		l.pos++
		return token.Token{Kind: token.LBrace, Lexeme: "{", Offset: start}, nil
	case '}':
		l.pos++
		return token.Token{Kind: token.RBrace, Lexeme: "}", Offset: start}, nil
	case '[':
		l.pos++
		return token.Token{Kind: token.LBracket, Lexeme: "[", Offset: start}, nil
	case ']':
		l.pos++
		return token.Token{Kind: token.RBracket, Lexeme: "]", Offset: start}, nil
	case '(':
		l.pos++
		return token.Token{Kind: token.LParen, Lexeme: "(", Offset: start}, nil
	case ')':
		l.pos++
		return token.Token{Kind: token.RParen, Lexeme: ")", Offset: start}, nil
	case '<':
		l.pos++
		return token.Token{Kind: token.Lt, Lexeme: "<", Offset: start}, nil
	case '>':
		l.pos++
		return token.Token{Kind: token.Gt, Lexeme: ">", Offset: start}, nil
	}

	if isIdentByte(b) {
		for !l.eof() && isIdentByte(l.src[l.pos]) {
			l.pos++
		}
		return token.Token{Kind: token.Ident, Lexeme: string(l.src[start:l.pos]), Offset: start}, nil
	}

	r, size := utf8.DecodeRune(l.src[l.pos:])
	l.pos += size
	return token.Token{}, reporter.Newf(reporter.UnexpectedChar, reporter.PositionOf(l.src, start),
		"unexpected character %q", r).WithSuggestion(
		"GBLN identifiers may only contain letters, digits, '_', '-', '.', '+'; structural characters are { } [ ] ( ) < >")
}

// Payload reads the raw string content of a parenthesized payload. It
// must be called immediately after Next() has returned the opening
// token.LParen; it consumes bytes up to (and including) the matching
// ')' and returns everything in between, unmodified and untokenized, per
// spec §4.1 ("parentheses do not nest inside string content").
func (l *Lexer) Payload() (string, error) {
	start := l.pos
	for {
		if l.eof() {
			return "", reporter.New(reporter.UnterminatedString, l.pos0(),
				"unterminated string literal: missing closing ')'")
		}
		if l.src[l.pos] == ')' {
			content := string(l.src[start:l.pos])
			l.pos++
			return content, nil
		}
		l.pos++
	}
}
