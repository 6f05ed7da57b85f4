package testing

import (
	"sync"
	"testing"

	"github.com/go-drift/slimy/pkg/errors"
)

// ErrorRecorder is an errors.ErrorHandler that keeps everything reported
// to it. It is safe for concurrent use.
type ErrorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.WidgetError
	panics []*errors.PanicError
}

// CaptureErrors installs a new ErrorRecorder as the global error handler
// and restores the default handler when the test ends.
func CaptureErrors(t testing.TB) *ErrorRecorder {
	t.Helper()
	r := &ErrorRecorder{}
	errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return r
}

// HandleError records err.
func (r *ErrorRecorder) HandleError(err *errors.WidgetError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// HandlePanic records err.
func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns the recorded errors in report order.
func (r *ErrorRecorder) Errors() []*errors.WidgetError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.WidgetError(nil), r.errs...)
}

// Panics returns the recorded panics in report order.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}
