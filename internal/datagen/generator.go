package datagen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator produces the fake field values the dataset builder fills
// records with. All randomness flows through one seedable source so a
// fixed seed reproduces the exact same dataset.
type Generator struct {
	rand    *rand.Rand
	counter int
}

func New(seed int64) *Generator {
	return &Generator{rand: rand.New(rand.NewSource(seed))}
}

func NewRandom() *Generator {
	return New(time.Now().UnixNano())
}

var (
	firstNames = []string{"John", "Jane", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	domains    = []string{"example.com", "test.com", "demo.com", "mail.com"}

	buzzAdjectives = []string{"Adaptive", "Balanced", "Centralized", "Distributed", "Ergonomic", "Focused", "Integrated", "Persistent", "Scalable", "Versatile"}
	buzzNouns      = []string{"Framework", "Methodology", "Paradigm", "Architecture", "Workflow", "Pipeline", "Interface", "Toolchain", "Curriculum", "Knowledgebase"}

	words = []string{
		"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
		"lambda", "sigma", "omega", "vector", "matrix", "kernel", "cursor", "schema",
	}

	sentences = []string{
		"This is a sample text generated for testing purposes.",
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
		"The quick brown fox jumps over the lazy dog.",
		"Software development requires careful planning and execution.",
		"Database design is crucial for application performance.",
		"Every lesson builds on the material covered before it.",
		"Practice problems reinforce the concepts from the lecture.",
	}
)

// UUID returns a fresh random id, drawn from the generator's own
// source so seeded runs produce the same ids. Collision-freedom within
// a run is a property of UUIDv4, not re-checked by callers.
func (g *Generator) UUID() string {
	id, err := uuid.NewRandomFromReader(g.rand)
	if err != nil {
		// math/rand readers never fail.
		return uuid.NewString()
	}
	return id.String()
}

func (g *Generator) Name() string {
	return firstNames[g.rand.Intn(len(firstNames))] + " " + lastNames[g.rand.Intn(len(lastNames))]
}

func (g *Generator) Email() string {
	g.counter++
	return fmt.Sprintf("user%d_%d@%s", g.counter, g.rand.Intn(100000), domains[g.rand.Intn(len(domains))])
}

// CatchPhrase builds a course-title style phrase.
func (g *Generator) CatchPhrase() string {
	return buzzAdjectives[g.rand.Intn(len(buzzAdjectives))] + " " + buzzNouns[g.rand.Intn(len(buzzNouns))]
}

func (g *Generator) Sentence() string {
	return sentences[g.rand.Intn(len(sentences))]
}

func (g *Generator) Text() string {
	n := 2 + g.rand.Intn(3)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = g.Sentence()
	}
	return strings.Join(parts, " ")
}

func (g *Generator) Word() string {
	return words[g.rand.Intn(len(words))]
}

// Choice picks one value uniformly from a non-empty set.
func (g *Generator) Choice(values []string) string {
	return values[g.rand.Intn(len(values))]
}

// DateTimeThisYear returns a timestamp between Jan 1 of the current
// year and now, truncated to millisecond precision to match the
// store's timestamp columns.
func (g *Generator) DateTimeThisYear() time.Time {
	now := time.Now()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	span := now.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(g.rand.Int63n(int64(span)))).Truncate(time.Millisecond)
}

// SampleIndexes returns k distinct indexes drawn from [0, n) without
// replacement, in random order. Returns an error when k > n.
func (g *Generator) SampleIndexes(n, k int) ([]int, error) {
	if k > n {
		return nil, fmt.Errorf("sample size %d exceeds population size %d", k, n)
	}
	perm := g.rand.Perm(n)
	return perm[:k], nil
}
