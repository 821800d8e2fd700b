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

package value

import "fmt"

// Value is the tagged union described in spec §3: exactly one scalar
// class, an Object, or an Array. The zero Value is not valid; always go
// through a constructor.
//
// A Value tree is acyclic and exclusively owned by its root (spec §3
// Lifecycle): container fields never alias a subtree that is also
// reachable elsewhere, which ObjectInsert/ArrayPush enforce by cloning
// any child handed to them.
type Value struct {
	tag Tag

	i int64  // I8, I16, I32, I64
	u uint64 // U8, U16, U32, U64
	f float64
	b bool
	s string // string payload, all four sN tags

	keys []string         // Object: insertion order, for deterministic iteration
	obj  map[string]*Value // Object: key -> child

	arr    []*Value // Array elements
	arrTag *Tag     // Array: non-nil if declared with a uniform element type hint
}

// TypeOf returns v's tag, matching spec §6.2's type_of.
func (v *Value) TypeOf() Tag {
	if v == nil {
		return Null
	}
	return v.tag
}

// IsNull reports whether v holds the null scalar.
func (v *Value) IsNull() bool {
	return v.TypeOf() == Null
}

func newScalar(tag Tag) *Value {
	return &Value{tag: tag}
}

// NewNull returns the null scalar.
func NewNull() *Value {
	return newScalar(Null)
}

// NewBool returns a Bool scalar.
func NewBool(b bool) *Value {
	v := newScalar(Bool)
	v.b = b
	return v
}

// NewI8/NewI16/NewI32/NewI64 construct signed integer scalars. The
// caller's Go integer width guarantees the value already fits, so these
// never fail.
func NewI8(x int8) *Value { v := newScalar(I8); v.i = int64(x); return v }
func NewI16(x int16) *Value { v := newScalar(I16); v.i = int64(x); return v }
func NewI32(x int32) *Value { v := newScalar(I32); v.i = int64(x); return v }
func NewI64(x int64) *Value { v := newScalar(I64); v.i = x; return v }

// NewU8/NewU16/NewU32/NewU64 construct unsigned integer scalars.
func NewU8(x uint8) *Value { v := newScalar(U8); v.u = uint64(x); return v }
func NewU16(x uint16) *Value { v := newScalar(U16); v.u = uint64(x); return v }
func NewU32(x uint32) *Value { v := newScalar(U32); v.u = uint64(x); return v }
func NewU64(x uint64) *Value { v := newScalar(U64); v.u = x; return v }

// NewF32/NewF64 construct IEEE-754 float scalars.
func NewF32(x float32) *Value { v := newScalar(F32); v.f = float64(x); return v }
func NewF64(x float64) *Value { v := newScalar(F64); v.f = x; return v }

// NewString constructs a string scalar tagged tag (one of S8/S16/S32/S64),
// rejecting payloads whose UTF-8 byte length exceeds tag's 2^N bound
// (spec §3, §6.2 new_str).
func NewString(tag Tag, s string) (*Value, error) {
	if !tag.IsString() {
		return nil, fmt.Errorf("value: %s is not a string tag", tag)
	}
	if uint64(len(s)) > tag.MaxStringLen() {
		return nil, fmt.Errorf("value: string of %d bytes exceeds max length %d for %s", len(s), tag.MaxStringLen(), tag)
	}
	v := newScalar(tag)
	v.s = s
	return v, nil
}

// NewObject returns a new, empty Object.
func NewObject() *Value {
	return &Value{tag: Object, obj: map[string]*Value{}}
}

// NewArray returns a new, empty, untyped Array. Use NewTypedArray for an
// array declared with a uniform element type hint.
func NewArray() *Value {
	return &Value{tag: Array}
}

// NewTypedArray returns a new, empty Array whose elements must all carry
// elemTag (spec §4.3 "If a type hint decorated the array, every element
// is forced through that type's coercer").
func NewTypedArray(elemTag Tag) *Value {
	t := elemTag
	return &Value{tag: Array, arrTag: &t}
}

// ElemTag reports the uniform element tag of a typed array, if any.
func (v *Value) ElemTag() (Tag, bool) {
	if v == nil || v.tag != Array || v.arrTag == nil {
		return 0, false
	}
	return *v.arrTag, true
}
