// Package names picks human-readable task identifiers from a word list.
package names

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	todoerrors "github.com/dbmrq/todo/internal/errors"
)

// DefaultMaxAttempts is how many words are drawn before giving up.
const DefaultMaxAttempts = 100

// DefaultWordList is the word list written by `todo init`.
//
//go:embed nouns.txt
var DefaultWordList string

// ReadWords parses one word per line, dropping blank lines and surrounding whitespace.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

// LoadWords reads the word list at path. A missing or empty list is an error.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, todoerrors.WordListMissing(path, err)
	}
	defer f.Close()

	words, err := ReadWords(f)
	if err != nil {
		return nil, todoerrors.WordListMissing(path, err)
	}
	if len(words) == 0 {
		return nil, todoerrors.WordListEmpty(path)
	}
	return words, nil
}

// Generator draws random words until it finds one that is not taken.
type Generator struct {
	words       []string
	rng         *rand.Rand
	maxAttempts int
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source, mainly for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithMaxAttempts bounds the number of draws per Pick. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// NewGenerator creates a Generator over words.
func NewGenerator(words []string, opts ...Option) *Generator {
	g := &Generator{
		words:       words,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Len returns the number of words available.
func (g *Generator) Len() int {
	return len(g.words)
}

// MaxAttempts returns the draw limit per Pick.
func (g *Generator) MaxAttempts() int {
	return g.maxAttempts
}

// Pick returns a random word for which taken reports false.
// It fails with an ErrNames error after MaxAttempts draws.
func (g *Generator) Pick(taken func(string) bool) (string, error) {
	if len(g.words) == 0 {
		return "", todoerrors.New(todoerrors.ErrNames, "word list is empty")
	}

	rejected := make(map[string]struct{})
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		word := g.words[g.rng.IntN(len(g.words))]
		if taken == nil || !taken(word) {
			return word, nil
		}
		rejected[word] = struct{}{}
	}
	return "", todoerrors.NamesExhausted(g.maxAttempts, len(rejected))
}
