package services

import (
	"context"
	"time"
)

// mailTimeout bounds the recipient lookup done for the e-mail copy of a message.
const mailTimeout = 30 * time.Second

// detached keeps the values of ctx but not its cancellation, so work started
// from a request can finish after the response is written. The returned
// context expires after timeout.
func detached(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}
