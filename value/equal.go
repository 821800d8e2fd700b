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

// Equal implements the round-trip equality of spec §4.4: scalar tags
// and payloads compare exactly, array sequences compare element-wise,
// and objects compare as multisets of (key, child) pairs (so field
// order never affects equality, matching spec §3's "iteration order is
// not guaranteed").
//
// go-cmp (github.com/google/go-cmp) recognizes this method automatically
// and will use it instead of reflecting into Value's unexported fields,
// which is why the round-trip property tests in this module's test
// suite can cmp.Diff(*Value, *Value) directly.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == nil && other == nil
	}
	if v.tag != other.tag {
		return false
	}
	switch v.tag {
	case Null:
		return true
	case Bool:
		return v.b == other.b
	case I8, I16, I32, I64:
		return v.i == other.i
	case U8, U16, U32, U64:
		return v.u == other.u
	case F32, F64:
		return v.f == other.f
	case S8, S16, S32, S64:
		return v.s == other.s
	case Object:
		if len(v.keys) != len(other.keys) {
			return false
		}
		for k, child := range v.obj {
			oc, ok := other.obj[k]
			if !ok || !child.Equal(oc) {
				return false
			}
		}
		return true
	case Array:
		if len(v.arr) != len(other.arr) {
			return false
		}
		if (v.arrTag == nil) != (other.arrTag == nil) {
			return false
		}
		if v.arrTag != nil && *v.arrTag != *other.arrTag {
			return false
		}
		for i, elem := range v.arr {
			if !elem.Equal(other.arr[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
