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

import (
	"fmt"

	"github.com/gbln-org/gbln/reporter"
)

// ObjectInsert transfers ownership of child into obj under key (spec
// §3 Lifecycle, §6.2 object_insert). child is cloned first so the tree
// stays exclusively owned by its root even if the caller keeps a
// reference to the value they passed in. Returns DuplicateKey if the
// key is already present (spec §3 Invariants: keys are unique within an
// object).
func ObjectInsert(obj *Value, key string, child *Value) error {
	if obj.TypeOf() != Object {
		return fmt.Errorf("value: ObjectInsert target is not an object")
	}
	if key == "" {
		return fmt.Errorf("value: object key must not be empty")
	}
	if _, exists := obj.obj[key]; exists {
		return reporter.Newf(reporter.DuplicateKey, reporter.Position{}, "duplicate key %q", key)
	}
	obj.obj[key] = child.Clone()
	obj.keys = append(obj.keys, key)
	return nil
}

// ArrayPush transfers ownership of child into arr (spec §6.2
// array_push). If arr was constructed with NewTypedArray, child's tag
// must match the array's declared element type, or push is refused with
// TypeMismatch.
func ArrayPush(arr *Value, child *Value) error {
	if arr.TypeOf() != Array {
		return fmt.Errorf("value: ArrayPush target is not an array")
	}
	if arr.arrTag != nil && child.TypeOf() != *arr.arrTag {
		return reporter.Newf(reporter.TypeMismatch, reporter.Position{},
			"cannot push value of type %s into array of %s", child.TypeOf(), *arr.arrTag)
	}
	arr.arr = append(arr.arr, child.Clone())
	return nil
}
