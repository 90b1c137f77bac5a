package common

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Options configures an adapter at construction time. Tables is the
// full table set in creation order; the timeout/poll pair is the DDL
// admission-control budget.
type Options struct {
	Tables     []string
	DDLTimeout time.Duration
	DDLPoll    time.Duration
}

func (o Options) Normalized() Options {
	if o.DDLTimeout <= 0 {
		o.DDLTimeout = 40 * time.Second
	}
	if o.DDLPoll <= 0 {
		o.DDLPoll = 3 * time.Second
	}
	return o
}

// RetryDDL runs fn until it succeeds or the budget is spent, sleeping
// the poll interval between attempts. Schema statements are the only
// operations the harness retries.
func RetryDDL(ctx context.Context, opts Options, fn func(context.Context) error) error {
	deadline := time.Now().Add(opts.DDLTimeout)

	var lastErr error
	for {
		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}

		if time.Now().Add(opts.DDLPoll).After(deadline) {
			return fmt.Errorf("schema statement did not complete within %s: %w", opts.DDLTimeout, lastErr)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.DDLPoll):
		}
	}
}

// EncodeDoc serializes a record for the SQL adapters' single JSON
// document column.
func EncodeDoc(rec map[string]interface{}) ([]byte, error) {
	doc, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return doc, nil
}

// DecodeDoc is the inverse of EncodeDoc. Arrays come back as
// []interface{} and timestamps as RFC3339 strings; callers that need
// typed fields convert at the model layer.
func DecodeDoc(doc []byte) (map[string]interface{}, error) {
	var rec map[string]interface{}
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return rec, nil
}
