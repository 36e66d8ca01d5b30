// Package retry provides bounded retry with exponential backoff for
// transient upstream failures. Clients never retry on their own; call
// sites opt in by wrapping a call in Do.
package retry

import (
	"context"
	"time"

	"github.com/bioseek/bioseek/internal/errors"
)

// Retryable reports whether err is worth retrying. Only transport errors
// and remote server failures qualify; validation, parse and not-found
// errors are final on the first attempt.
func Retryable(err error) bool {
	switch errors.GetKind(err) {
	case errors.KindNetwork, errors.KindRemote:
		return true
	}
	return false
}

// Do runs fn up to attempts times, sleeping baseDelay doubled after each
// failed attempt. It returns nil as soon as fn succeeds, the last error
// once attempts are exhausted or the error is not retryable, and the
// context error if ctx is cancelled while waiting.
func Do(ctx context.Context, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	delay := baseDelay
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if !Retryable(err) || i == attempts-1 {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
	return err
}
