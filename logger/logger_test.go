// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package logger

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSetLogger_NilIsIgnored(t *testing.T) {
	var calls int32
	SetLogger(func(level LogLevel, msg string, keyvals ...interface{}) {
		atomic.AddInt32(&calls, 1)
	})
	SetLogger(nil)
	Debug("still routed to the previous logger")
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected the prior logger to remain active, got %d calls", calls)
	}
}

func TestDebug_ConcurrentFromManyWorkers(t *testing.T) {
	var calls int32
	SetLogger(func(level LogLevel, msg string, keyvals ...interface{}) {
		atomic.AddInt32(&calls, 1)
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Debug("worker log line", "worker", n, true)
		}(i)
	}
	wg.Wait()

	if atomic.LoadInt32(&calls) != 50 {
		t.Fatalf("expected 50 log calls from concurrent workers, got %d", calls)
	}
}

func TestDebug_TraceFlagIsStrippedFromKeyvals(t *testing.T) {
	var gotKeyvals []interface{}
	SetLogger(func(level LogLevel, msg string, keyvals ...interface{}) {
		gotKeyvals = keyvals
	})
	Debug("msg", "k", "v", true)
	if len(gotKeyvals) != 2 {
		t.Fatalf("expected the trailing trace bool to be stripped, got %v", gotKeyvals)
	}
}
