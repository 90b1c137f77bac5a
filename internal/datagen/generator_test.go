package datagen

import (
	"strings"
	"testing"
)

func TestGeneratorDeterministicWithSeed(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 20; i++ {
		if a.Name() != b.Name() {
			t.Fatal("Expected identical names from equal seeds")
		}
		if a.Email() != b.Email() {
			t.Fatal("Expected identical emails from equal seeds")
		}
		if a.CatchPhrase() != b.CatchPhrase() {
			t.Fatal("Expected identical phrases from equal seeds")
		}
		if got, want := a.UUID(), b.UUID(); got != want {
			t.Fatalf("Expected identical ids from equal seeds at draw %d: %s vs %s", i, got, want)
		}
	}
}

func TestGeneratorSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	same := 0
	for i := 0; i < 10; i++ {
		if a.UUID() == b.UUID() {
			same++
		}
	}
	if same == 10 {
		t.Error("Different seeds produced identical id streams")
	}
}

func TestGeneratedFieldsNonEmpty(t *testing.T) {
	g := New(1)

	for i := 0; i < 100; i++ {
		for name, value := range map[string]string{
			"name":        g.Name(),
			"email":       g.Email(),
			"catchphrase": g.CatchPhrase(),
			"sentence":    g.Sentence(),
			"text":        g.Text(),
			"word":        g.Word(),
			"uuid":        g.UUID(),
		} {
			if strings.TrimSpace(value) == "" {
				t.Fatalf("Generated %s is empty", name)
			}
		}
	}
}

func TestUUIDUnique(t *testing.T) {
	g := New(7)
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id := g.UUID()
		if seen[id] {
			t.Fatalf("Duplicate UUID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestSampleIndexesDistinct(t *testing.T) {
	g := New(3)

	for trial := 0; trial < 50; trial++ {
		sample, err := g.SampleIndexes(10, 4)
		if err != nil {
			t.Fatalf("SampleIndexes returned error: %v", err)
		}
		if len(sample) != 4 {
			t.Fatalf("Expected 4 samples, got %d", len(sample))
		}
		seen := make(map[int]bool)
		for _, idx := range sample {
			if idx < 0 || idx >= 10 {
				t.Fatalf("Sample index %d out of range", idx)
			}
			if seen[idx] {
				t.Fatalf("Duplicate index %d in sample", idx)
			}
			seen[idx] = true
		}
	}
}

func TestSampleIndexesTooLarge(t *testing.T) {
	g := New(3)

	if _, err := g.SampleIndexes(2, 3); err == nil {
		t.Error("Expected error when sample exceeds population")
	}
}

func TestChoiceCoversAllValues(t *testing.T) {
	g := New(9)
	values := []string{"student", "instructor"}
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		seen[g.Choice(values)] = true
	}

	for _, v := range values {
		if !seen[v] {
			t.Errorf("Choice never returned %q across 200 draws", v)
		}
	}
}
