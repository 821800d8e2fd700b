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

// Package serialize renders a value.Value tree back to GBLN source text
// (spec §4.4), in compact or pretty mode. The round-trip law requires
// that parsing this output reproduce an equal value tree; see the
// package tests for the property check.
package serialize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gbln-org/gbln/value"
)

// Mode selects compact or pretty rendering.
type Mode int

const (
	Compact Mode = iota
	Pretty
)

// Indent is the pretty-mode indentation unit (spec §4.4: "two-space
// indent").
const Indent = "  "

// Serialize renders v as GBLN source text in the given mode. The root
// may be an Object, an Array, or a scalar; a root scalar is written as
// <tag>(payload).
func Serialize(v *value.Value, mode Mode) (string, error) {
	var sb strings.Builder
	if err := writeValue(&sb, v, mode, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// CompactPrint is a convenience wrapper for Serialize(v, Compact).
func CompactPrint(v *value.Value) (string, error) { return Serialize(v, Compact) }

// PrettyPrint is a convenience wrapper for Serialize(v, Pretty).
func PrettyPrint(v *value.Value) (string, error) { return Serialize(v, Pretty) }

func writeValue(sb *strings.Builder, v *value.Value, mode Mode, depth int) error {
	switch v.TypeOf() {
	case value.Object:
		return writeObject(sb, v, mode, depth)
	case value.Array:
		return writeArrayBody(sb, v, mode, depth)
	default:
		// A root scalar is written with its tag (e.g. "<i64>(5)"), which
		// parseBareTypedValue reads back with the tag intact.
		return writeTaggedScalar(sb, v)
	}
}

func writeObject(sb *strings.Builder, v *value.Value, mode Mode, depth int) error {
	keys := v.ObjectKeys()
	sb.WriteByte('{')
	if mode == Pretty && len(keys) > 0 {
		sb.WriteByte('\n')
	}
	for _, key := range keys {
		child, _ := v.ObjectGet(key)
		if mode == Pretty {
			sb.WriteString(strings.Repeat(Indent, depth+1))
		}
		if err := writeField(sb, key, child, mode, depth+1); err != nil {
			return err
		}
		if mode == Pretty {
			sb.WriteByte('\n')
		}
	}
	if mode == Pretty && len(keys) > 0 {
		sb.WriteString(strings.Repeat(Indent, depth))
	}
	sb.WriteByte('}')
	return nil
}

// writeField renders key<tag>(payload), key{...}, or key<tag>[...]/key[...]
// for one object field.
func writeField(sb *strings.Builder, key string, child *value.Value, mode Mode, depth int) error {
	switch child.TypeOf() {
	case value.Object:
		sb.WriteString(key)
		return writeObject(sb, child, mode, depth)
	case value.Array:
		sb.WriteString(key)
		return writeArrayBody(sb, child, mode, depth)
	default:
		sb.WriteString(key)
		return writeTaggedScalar(sb, child)
	}
}

func writeArrayBody(sb *strings.Builder, v *value.Value, mode Mode, depth int) error {
	elemTag, uniform := v.ElemTag()
	if uniform {
		sb.WriteString("<" + elemTag.String() + ">")
	}
	sb.WriteByte('[')
	n := v.ArrayLen()
	if mode == Pretty && n > 0 {
		sb.WriteByte('\n')
	}
	for i := 0; i < n; i++ {
		elem, _ := v.ArrayGet(i)
		if mode == Pretty {
			sb.WriteString(strings.Repeat(Indent, depth+1))
		}
		var writeErr error
		switch {
		case uniform:
			// Uniformly-typed array: the array's own hint already
			// names every element's type, so elements carry only
			// their raw payload (parenthesized when it is not a
			// single bare identifier lexeme).
			writeErr = writeRawPayload(sb, elem)
		case elem.TypeOf() == value.Object || elem.TypeOf() == value.Array:
			writeErr = writeValue(sb, elem, mode, depth+1)
		default:
			// Heterogeneous array: each scalar element needs its own
			// explicit tag (spec §4.4 "per-element scalars carrying
			// their own hints") so a non-canonical scalar type (e.g.
			// i8 rather than the inferred i64) survives round-trip.
			writeErr = writeTaggedScalar(sb, elem)
		}
		if writeErr != nil {
			return writeErr
		}
		if mode == Pretty {
			sb.WriteByte('\n')
		} else if i < n-1 {
			sb.WriteByte(' ')
		}
	}
	if mode == Pretty && n > 0 {
		sb.WriteString(strings.Repeat(Indent, depth))
	}
	sb.WriteByte(']')
	return nil
}

func writeTaggedScalar(sb *strings.Builder, v *value.Value) error {
	sb.WriteString("<" + v.TypeOf().String() + ">(")
	payload, err := scalarPayload(v)
	if err != nil {
		return err
	}
	sb.WriteString(payload)
	sb.WriteByte(')')
	return nil
}

func writeRawPayload(sb *strings.Builder, v *value.Value) error {
	payload, err := scalarPayload(v)
	if err != nil {
		return err
	}
	bare := payload != ""
	for i := 0; i < len(payload) && bare; i++ {
		c := payload[i]
		bare = c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' ||
			c == '_' || c == '-' || c == '.' || c == '+'
	}
	if !bare {
		sb.WriteByte('(')
		sb.WriteString(payload)
		sb.WriteByte(')')
		return nil
	}
	sb.WriteString(payload)
	return nil
}

// scalarPayload renders a scalar's raw lexeme, without parentheses or a
// type hint: the text that would appear between '(' and ')'.
func scalarPayload(v *value.Value) (string, error) {
	switch v.TypeOf() {
	case value.Null:
		return "", nil
	case value.Bool:
		b, _ := v.AsBool()
		if b {
			return "t", nil
		}
		return "f", nil
	case value.I8, value.I16, value.I32, value.I64:
		i, _ := asI64(v)
		return strconv.FormatInt(i, 10), nil
	case value.U8, value.U16, value.U32, value.U64:
		u, _ := asU64(v)
		return strconv.FormatUint(u, 10), nil
	case value.F32:
		f, _ := v.AsF32()
		return strconv.FormatFloat(float64(f), 'g', -1, 32), nil
	case value.F64:
		f, _ := v.AsF64()
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case value.S8, value.S16, value.S32, value.S64:
		s, _ := v.AsString()
		if strings.ContainsRune(s, ')') {
			return "", fmt.Errorf("serialize: string payload containing ')' cannot be represented (spec §9 open question on string escaping): %q", s)
		}
		return s, nil
	default:
		return "", fmt.Errorf("serialize: %s is not a scalar", v.TypeOf())
	}
}

func asI64(v *value.Value) (int64, bool) {
	switch v.TypeOf() {
	case value.I8:
		x, ok := v.AsI8()
		return int64(x), ok
	case value.I16:
		x, ok := v.AsI16()
		return int64(x), ok
	case value.I32:
		x, ok := v.AsI32()
		return int64(x), ok
	default:
		return v.AsI64()
	}
}

func asU64(v *value.Value) (uint64, bool) {
	switch v.TypeOf() {
	case value.U8:
		x, ok := v.AsU8()
		return uint64(x), ok
	case value.U16:
		x, ok := v.AsU16()
		return uint64(x), ok
	case value.U32:
		x, ok := v.AsU32()
		return uint64(x), ok
	default:
		return v.AsU64()
	}
}
