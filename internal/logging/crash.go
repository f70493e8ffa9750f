package logging

import (
	"context"
	"runtime/debug"
)

// RecoverPanic logs a panic with its stack trace and panics again.
// Use it deferred at the top of long-running goroutines.
func RecoverPanic(ctx context.Context, where string) {
	r := recover()
	if r == nil {
		return
	}

	FromContext(ctx).Error().
		Str("where", where).
		Interface("panic", r).
		Str("stack", string(debug.Stack())).
		Msg("PANIC")

	panic(r)
}
