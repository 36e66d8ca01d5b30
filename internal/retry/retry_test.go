package retry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bioseek/bioseek/internal/errors"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestDoRetriesTransientError(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.Network("test", "example.org", fmt.Errorf("connection refused"))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return errors.Remote("test", 503, "Service Unavailable")
	})
	if err == nil {
		t.Fatal("Do() should return the last error after exhausting attempts")
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
	if !errors.IsKind(err, errors.KindRemote) {
		t.Errorf("error kind = %v, want remote", errors.GetKind(err))
	}
}

func TestDoDoesNotRetryFinalErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"validation", errors.Usage("test", "bad input")},
		{"not found", errors.NotFound("test", "no match", "")},
		{"parse", errors.Parse("test", fmt.Errorf("unexpected token"))},
		{"plain", fmt.Errorf("some error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Do(context.Background(), 5, time.Millisecond, func() error {
				calls++
				return tt.err
			})
			if err == nil {
				t.Fatal("Do() should return the error")
			}
			if calls != 1 {
				t.Errorf("fn called %d times, want 1 (error is not retryable)", calls)
			}
		})
	}
}

func TestDoRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, 3, time.Minute, func() error {
		return errors.Network("test", "example.org", fmt.Errorf("timeout"))
	})
	if err != context.Canceled {
		t.Errorf("Do() error = %v, want context.Canceled", err)
	}
}

func TestDoClampsAttempts(t *testing.T) {
	calls := 0
	Do(context.Background(), 0, time.Millisecond, func() error {
		calls++
		return errors.Remote("test", 500, "Internal Server Error")
	})
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}
