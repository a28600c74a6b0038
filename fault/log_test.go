// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/skiplist/fault"
)

// conditional panic must do nothing for a nil error
func TestPanicIfErrorNil(t *testing.T) {
	fault.PanicIfError("no-op", nil)
}

// conditional panic must carry the message and the error text
func TestPanicIfError(t *testing.T) {
	defer func() {
		r := recover()
		if nil == r {
			t.Fatal("no panic occurred")
		}
		s, ok := r.(string)
		if !ok {
			t.Fatalf("panic value is not a string: %#v", r)
		}
		expected := "structure check failed with error: record not found"
		if expected != s {
			t.Fatalf("panic message: actual: %q  expected: %q", s, expected)
		}
	}()
	fault.PanicIfError("structure check", fault.ErrNotFound)
}

// critical logging must work before any logger channel is set up
func TestCriticalfUninitialised(t *testing.T) {
	fault.Criticalf("benchmark failed: %s", fault.ErrAllocationFailed)
}
