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

// The As* accessors never coerce: they report ok=false whenever v's
// actual tag doesn't match the requested one, rather than attempting a
// numeric conversion (spec §6.2).

func (v *Value) AsI8() (int8, bool) {
	if v.TypeOf() != I8 {
		return 0, false
	}
	return int8(v.i), true
}

func (v *Value) AsI16() (int16, bool) {
	if v.TypeOf() != I16 {
		return 0, false
	}
	return int16(v.i), true
}

func (v *Value) AsI32() (int32, bool) {
	if v.TypeOf() != I32 {
		return 0, false
	}
	return int32(v.i), true
}

func (v *Value) AsI64() (int64, bool) {
	if v.TypeOf() != I64 {
		return 0, false
	}
	return v.i, true
}

func (v *Value) AsU8() (uint8, bool) {
	if v.TypeOf() != U8 {
		return 0, false
	}
	return uint8(v.u), true
}

func (v *Value) AsU16() (uint16, bool) {
	if v.TypeOf() != U16 {
		return 0, false
	}
	return uint16(v.u), true
}

func (v *Value) AsU32() (uint32, bool) {
	if v.TypeOf() != U32 {
		return 0, false
	}
	return uint32(v.u), true
}

func (v *Value) AsU64() (uint64, bool) {
	if v.TypeOf() != U64 {
		return 0, false
	}
	return v.u, true
}

func (v *Value) AsF32() (float32, bool) {
	if v.TypeOf() != F32 {
		return 0, false
	}
	return float32(v.f), true
}

func (v *Value) AsF64() (float64, bool) {
	if v.TypeOf() != F64 {
		return 0, false
	}
	return v.f, true
}

func (v *Value) AsBool() (bool, bool) {
	if v.TypeOf() != Bool {
		return false, false
	}
	return v.b, true
}

// AsString returns v's payload if v is any of the four string tags. The
// specific sN width is available via TypeOf.
func (v *Value) AsString() (string, bool) {
	if v == nil || !v.tag.IsString() {
		return "", false
	}
	return v.s, true
}

// ObjectGet implements object_get: ok is false when v is not an Object
// or key is not present. A present key mapped to the null value returns
// (nullValue, true), distinct from absence (spec §3 Invariants).
func (v *Value) ObjectGet(key string) (*Value, bool) {
	if v.TypeOf() != Object {
		return nil, false
	}
	child, ok := v.obj[key]
	return child, ok
}

// ObjectKeys returns the object's keys in insertion order.
func (v *Value) ObjectKeys() []string {
	if v.TypeOf() != Object {
		return nil
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// ObjectLen returns the number of fields in v, or 0 if v is not an
// Object.
func (v *Value) ObjectLen() int {
	if v.TypeOf() != Object {
		return 0
	}
	return len(v.keys)
}

// ArrayGet implements array_get: ok is false when v is not an Array or
// i is out of bounds.
func (v *Value) ArrayGet(i int) (*Value, bool) {
	if v.TypeOf() != Array {
		return nil, false
	}
	if i < 0 || i >= len(v.arr) {
		return nil, false
	}
	return v.arr[i], true
}

// ArrayLen returns the number of elements in v, or 0 if v is not an
// Array.
func (v *Value) ArrayLen() int {
	if v.TypeOf() != Array {
		return 0
	}
	return len(v.arr)
}
