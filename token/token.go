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

// Package token defines the token kinds produced by the GBLN lexer
// (spec §4.1) and shared by the parser.
package token

// Kind identifies the lexical class of a Token.
type Kind int

const (
	// EOF marks the end of input. It is always the final token emitted.
	EOF Kind = iota
	LBrace
	RBrace
	LBracket
	RBracket
	LParen
	RParen
	Lt
	Gt
	Ident
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Lt:
		return "'<'"
	case Gt:
		return "'>'"
	case Ident:
		return "identifier"
	default:
		return "unknown"
	}
}

// Token is a single lexeme with its source position. Offset is the byte
// offset of the token's first byte; for Ident, Lexeme holds the raw
// bytes. Parenthesized payload content is not a Token: the lexer returns
// it from Payload as a plain string.
type Token struct {
	Kind   Kind
	Lexeme string
	Offset int
}

func (t Token) String() string {
	if t.Kind == Ident {
		return t.Lexeme
	}
	return t.Kind.String()
}
