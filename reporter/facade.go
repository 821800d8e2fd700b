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

package reporter

import "sync"

// lastError is the process-wide single-slot store described in spec
// §4.5. It is guarded by a mutex rather than made thread-local: the
// minimum contract only requires "not synchronized across threads" be
// documented, and a mutex-guarded process-wide slot is the simplest
// implementation that satisfies it. Callers needing per-goroutine
// isolation should not rely on this facade for control flow; it exists
// purely for the last-error-message ABI in §6.2.
var lastError struct {
	mu   sync.Mutex
	diag *Diagnostic
}

// Record stores d as the most recently observed diagnostic. Passing nil
// clears the slot.
func Record(d *Diagnostic) {
	lastError.mu.Lock()
	defer lastError.mu.Unlock()
	lastError.diag = d
}

// Last returns the most recently recorded diagnostic, or nil if none has
// been recorded (or the slot was cleared).
func Last() *Diagnostic {
	lastError.mu.Lock()
	defer lastError.mu.Unlock()
	return lastError.diag
}

// LastMessage implements last_error_message() from spec §6.2.
func LastMessage() (string, bool) {
	d := Last()
	if d == nil {
		return "", false
	}
	return d.Error(), true
}

// LastSuggestion implements last_error_suggestion() from spec §6.2.
func LastSuggestion() (string, bool) {
	d := Last()
	if d == nil || d.Suggestion == "" {
		return "", false
	}
	return d.Suggestion, true
}

// Clear resets the last-error slot. Exposed mainly for tests that need
// isolation between cases that intentionally trigger errors.
func Clear() {
	Record(nil)
}
