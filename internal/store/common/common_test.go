package common

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetryDDLSucceedsAfterTransientFailures(t *testing.T) {
	opts := Options{DDLTimeout: time.Second, DDLPoll: time.Millisecond}

	attempts := 0
	err := RetryDDL(context.Background(), opts, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("not ready")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RetryDDL returned error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
}

func TestRetryDDLGivesUpAfterBudget(t *testing.T) {
	opts := Options{DDLTimeout: 10 * time.Millisecond, DDLPoll: 3 * time.Millisecond}
	boom := errors.New("table busy")

	err := RetryDDL(context.Background(), opts, func(ctx context.Context) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected budget error wrapping the cause, got %v", err)
	}
}

func TestRetryDDLHonorsContextCancellation(t *testing.T) {
	opts := Options{DDLTimeout: time.Minute, DDLPoll: 5 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := RetryDDL(ctx, opts, func(ctx context.Context) error {
		return errors.New("never ready")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}

func TestNormalizedDefaults(t *testing.T) {
	opts := Options{}.Normalized()

	if opts.DDLTimeout != 40*time.Second {
		t.Errorf("Expected 40s default timeout, got %s", opts.DDLTimeout)
	}
	if opts.DDLPoll != 3*time.Second {
		t.Errorf("Expected 3s default poll, got %s", opts.DDLPoll)
	}
}

func TestEncodeDecodeDoc(t *testing.T) {
	rec := map[string]interface{}{
		"id":      "q1",
		"options": []string{"a", "b", "c", "d"},
	}

	doc, err := EncodeDoc(rec)
	if err != nil {
		t.Fatalf("EncodeDoc failed: %v", err)
	}

	got, err := DecodeDoc(doc)
	if err != nil {
		t.Fatalf("DecodeDoc failed: %v", err)
	}
	if got["id"] != "q1" {
		t.Errorf("Unexpected id: %v", got["id"])
	}
	opts, ok := got["options"].([]interface{})
	if !ok || len(opts) != 4 {
		t.Errorf("Unexpected options shape: %v", got["options"])
	}
}
