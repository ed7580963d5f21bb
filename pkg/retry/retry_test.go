package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDo(t *testing.T) {
	t.Run("succeeds without retrying", func(t *testing.T) {
		p := Policy{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}
		calls := 0
		err := p.Do(context.Background(), func() error {
			calls++
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})

	t.Run("retries up to the attempt budget", func(t *testing.T) {
		p := Policy{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}
		boom := errors.New("boom")
		calls := 0
		err := p.Do(context.Background(), func() error {
			calls++
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected last error, got %v", err)
		}
		if calls != 3 {
			t.Fatalf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("recovers mid-schedule", func(t *testing.T) {
		p := Policy{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}
		calls := 0
		err := p.Do(context.Background(), func() error {
			calls++
			if calls < 2 {
				return errors.New("transient")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 2 {
			t.Fatalf("expected 2 calls, got %d", calls)
		}
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		p := Policy{MaxAttempts: 10, InitialInterval: 50 * time.Millisecond, MaxInterval: time.Second}
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		err := p.Do(ctx, func() error {
			calls++
			return errors.New("still failing")
		})
		if err == nil {
			t.Fatal("expected an error after cancellation")
		}
		if calls >= 10 {
			t.Fatalf("expected early stop, got %d calls", calls)
		}
	})
}
