package sf

import (
	"runtime"
	"sync/atomic"
)

// AssertCapture records the location of the first assertion failure, when
// debug capture is enabled via EnableAssertCapture. It is a diagnostic aid
// only; the hot path does not depend on it.
type AssertCapture struct {
	File string
	Line int
}

var (
	assertCaptureEnabled atomic.Bool
	assertCaptured       atomic.Bool
	assertFile           atomic.Value // string
	assertLine           atomic.Int64
)

// EnableAssertCapture turns on recording of the first Assert failure's
// call site. Disabled by default, matching the "optionally records
// file/line... when debug-capture is enabled" contract.
func EnableAssertCapture(enabled bool) {
	assertCaptureEnabled.Store(enabled)
	if enabled {
		assertCaptured.Store(false)
	}
}

// LastAssertCapture returns the first captured assertion failure site since
// the last EnableAssertCapture(true) call, and whether one was captured.
func LastAssertCapture() (AssertCapture, bool) {
	if !assertCaptured.Load() {
		return AssertCapture{}, false
	}
	file, _ := assertFile.Load().(string)
	return AssertCapture{File: file, Line: int(assertLine.Load())}, true
}

// Assert returns E_ASSERT if cond is false, else SUCCESS. It never panics:
// invariant violations are runtime-core errors like any other, to be
// propagated by the caller, not process-terminating exceptions.
func Assert(cond bool) Result {
	if cond {
		return SUCCESS
	}
	if assertCaptureEnabled.Load() && assertCaptured.CompareAndSwap(false, true) {
		_, file, line, ok := runtime.Caller(1)
		if ok {
			assertFile.Store(file)
			assertLine.Store(int64(line))
		}
	}
	return E_ASSERT
}
