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

package parser

import (
	"regexp"

	"github.com/gbln-org/gbln/value"
)

// intLiteral and floatLiteral mirror spec §4.3's inference regexes
// exactly; keeping them as the literal patterns (rather than a hand
// rolled scanner) makes the correspondence to the spec text auditable.
var (
	intLiteral   = regexp.MustCompile(`^-?[0-9]+$`)
	floatLiteral = regexp.MustCompile(`^-?[0-9]+\.[0-9]+([eE][-+]?[0-9]+)?$`)
)

// inferTag implements spec §4.3's inference rules for a lexeme that
// arrived with no type hint: booleans by literal spelling, then
// integers, then floats, then strings, choosing one canonical tag per
// shape (i64 / f64 / s64) so that inference is stable and round-trips
// through the serializer (spec §9 "Inference determinism").
func inferTag(lexeme string) value.Tag {
	switch lexeme {
	case "t", "true", "f", "false":
		return value.Bool
	}
	if lexeme == "" {
		return value.S8
	}
	if intLiteral.MatchString(lexeme) {
		return value.I64
	}
	if floatLiteral.MatchString(lexeme) {
		return value.F64
	}
	return value.S64
}
