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

// Package reporter implements the structured diagnostic model shared by
// the lexer, parser and coercer: a Position, a Kind enum ordered to match
// a stable external ABI, and a process-wide last-error facade.
package reporter

import "fmt"

// Kind identifies a diagnostic family. Values are numbered to match a
// stable external ABI shared with non-Go bindings of this core; do not
// renumber existing entries.
type Kind int

const (
	UnexpectedChar Kind = iota
	UnterminatedString
	UnexpectedToken
	UnexpectedEof
	InvalidSyntax
	IntOutOfRange
	StringTooLong
	TypeMismatch
	InvalidTypeHint
	DuplicateKey
	NullPointer
	Io
)

func (k Kind) String() string {
	switch k {
	case UnexpectedChar:
		return "UnexpectedChar"
	case UnterminatedString:
		return "UnterminatedString"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnexpectedEof:
		return "UnexpectedEof"
	case InvalidSyntax:
		return "InvalidSyntax"
	case IntOutOfRange:
		return "IntOutOfRange"
	case StringTooLong:
		return "StringTooLong"
	case TypeMismatch:
		return "TypeMismatch"
	case InvalidTypeHint:
		return "InvalidTypeHint"
	case DuplicateKey:
		return "DuplicateKey"
	case NullPointer:
		return "NullPointer"
	case Io:
		return "Io"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Diagnostic is a GBLN error: a Kind, a human message, the source position
// that caused it, and an optional human-oriented suggestion. It implements
// error so callers that only want a message can treat it as one, and
// Unwrap lets errors.As/errors.Is see through it when a Diagnostic wraps
// a lower-level cause.
type Diagnostic struct {
	Kind       Kind
	Pos        Position
	Message    string
	Suggestion string
	cause      error
}

// New creates a Diagnostic positioned at pos with the given kind and
// message.
func New(kind Kind, pos Position, message string) *Diagnostic {
	return &Diagnostic{Kind: kind, Pos: pos, Message: message}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(kind Kind, pos Position, format string, args ...any) *Diagnostic {
	return New(kind, pos, fmt.Sprintf(format, args...))
}

// WithSuggestion returns a copy of d carrying the given suggestion text.
func (d *Diagnostic) WithSuggestion(suggestion string) *Diagnostic {
	d2 := *d
	d2.Suggestion = suggestion
	return &d2
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s (at %s)", d.Kind, d.Message, d.Pos)
}

func (d *Diagnostic) Unwrap() error {
	return d.cause
}

// GetPosition reports the source position this diagnostic is anchored to.
func (d *Diagnostic) GetPosition() Position {
	return d.Pos
}

var _ error = (*Diagnostic)(nil)
