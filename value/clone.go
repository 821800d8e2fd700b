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

// Clone returns a deep copy of the value tree rooted at v, so that
// inserting v into a container never lets two trees alias the same
// descendant (spec §3 Invariants: "a value tree is acyclic and
// exclusively owned by its root").
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	out := *v
	switch v.tag {
	case Object:
		out.obj = make(map[string]*Value, len(v.obj))
		out.keys = append([]string(nil), v.keys...)
		for _, k := range v.keys {
			out.obj[k] = v.obj[k].Clone()
		}
	case Array:
		out.arr = make([]*Value, len(v.arr))
		for i, elem := range v.arr {
			out.arr[i] = elem.Clone()
		}
		if v.arrTag != nil {
			t := *v.arrTag
			out.arrTag = &t
		}
	}
	return &out
}
