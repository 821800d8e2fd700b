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

// Package gbln wires the lexer, parser, coerce, and serialize
// sub-packages into the public surface described in spec §6.2: Parse,
// SerializeCompact, SerializePretty, and a concurrent batch helper,
// mirroring the way the teacher's root protocompile package wires
// ast/parser/reporter/linker into Compiler.
package gbln

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/gbln-org/gbln/parser"
	"github.com/gbln-org/gbln/reporter"
	"github.com/gbln-org/gbln/serialize"
	"github.com/gbln-org/gbln/value"
)

// Options configures a single parse call (ParseOptions, ParseAllOptions);
// the serializers take no Options. The zero value is the default:
// unlimited nesting depth and slog.Default() as the logger. There is no
// functional-options or config-file layer;
// this struct is the entire configuration surface (spec has no
// deployment-time configuration distinct from call-site parameters).
type Options struct {
	// MaxDepth bounds object/array nesting; 0 means unlimited.
	MaxDepth int

	// Logger receives a debug-level trace of each parse attempt; nil
	// means slog.Default(). It is never required for correct operation.
	Logger *slog.Logger
}

// Parse parses text with default Options, matching spec §6.2 parse(text).
func Parse(text string) (*value.Value, error) {
	return ParseOptions(text, Options{})
}

// ParseOptions parses text under opts. On failure it also records the
// diagnostic in the process-wide last-error facade (spec §4.5, §7).
func ParseOptions(text string, opts Options) (*value.Value, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("gbln parse", slog.Group("gbln", "op", "parse", "bytes", len(text)))

	v, err := parser.Parse([]byte(text), opts.MaxDepth)
	if err != nil {
		var diag *reporter.Diagnostic
		if errors.As(err, &diag) {
			reporter.Record(diag)
		}
		return nil, err
	}
	return v, nil
}

// SerializeCompact renders v as compact GBLN source, matching spec
// §6.2 serialize(value).
func SerializeCompact(v *value.Value) (string, error) {
	return serialize.Serialize(v, serialize.Compact)
}

// SerializePretty renders v as two-space-indented GBLN source.
func SerializePretty(v *value.Value) (string, error) {
	return serialize.Serialize(v, serialize.Pretty)
}

// ParseAll parses every text in texts concurrently, mirroring the
// teacher's use of golang.org/x/sync for independent fan-out work.
// Each text is parsed by its own goroutine; the first failure is
// returned, and parses that have not yet started when it happens are
// skipped (a parse already under way runs to completion). Results
// preserve the order of texts.
func ParseAll(texts []string) ([]*value.Value, error) {
	return ParseAllOptions(context.Background(), texts, Options{})
}

// ParseAllOptions is ParseAll with explicit Options and a cancellable
// context. Once ctx is cancelled, parses that have not yet started are
// skipped and ctx's error is returned; a parse already under way is not
// interrupted.
func ParseAllOptions(ctx context.Context, texts []string, opts Options) ([]*value.Value, error) {
	results := make([]*value.Value, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := ParseOptions(text, opts)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
