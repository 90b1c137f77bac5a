package bench

import (
	"errors"
	"testing"
	"time"
)

func TestMeasureRecordsSuccessfulWork(t *testing.T) {
	r := NewSilentRunner()

	duration, err := r.Measure("Sleep", func() error {
		time.Sleep(5 * time.Millisecond)
		return nil
	})
	if err != nil {
		t.Fatalf("Measure returned error: %v", err)
	}
	if duration < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms, got %s", duration)
	}

	timings := r.Timings()
	if len(timings) != 1 {
		t.Fatalf("Expected one timing entry, got %d", len(timings))
	}
	if timings[0].Name != "Sleep" || timings[0].Duration != duration {
		t.Errorf("Unexpected entry: %+v", timings[0])
	}
}

func TestMeasureFailureRecordsNothing(t *testing.T) {
	r := NewSilentRunner()
	boom := errors.New("store unavailable")

	_, err := r.Measure("Broken", func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped original error, got %v", err)
	}

	if len(r.Timings()) != 0 {
		t.Errorf("Failed phase must not appear in the log: %v", r.Timings())
	}
}

func TestMeasureKeepsOrderAndDuplicates(t *testing.T) {
	r := NewSilentRunner()

	names := []string{"Insert Users", "Retrieve Users", "Insert Users"}
	for _, name := range names {
		if _, err := r.Measure(name, func() error { return nil }); err != nil {
			t.Fatalf("Measure(%s) failed: %v", name, err)
		}
	}

	timings := r.Timings()
	if len(timings) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(timings))
	}
	for i, name := range names {
		if timings[i].Name != name {
			t.Errorf("Entry %d: expected %q, got %q", i, name, timings[i].Name)
		}
		if timings[i].Duration < 0 {
			t.Errorf("Entry %d has negative duration", i)
		}
	}
}

func TestTimingsReturnsCopy(t *testing.T) {
	r := NewSilentRunner()
	r.Measure("A", func() error { return nil })

	timings := r.Timings()
	timings[0].Name = "mutated"

	if r.Timings()[0].Name != "A" {
		t.Error("Mutating the returned slice leaked into the runner")
	}
}
