// internal/puzzle/puzzle.go
//
// Provides the puzzle played by a session: one secret word and the ordered
// clues that lead to it.
//
// Responsibilities:
//   - Decode the embedded puzzle document (assets/puzzle.yaml).
//   - Validate it (non-empty lowercase secret, no blank clues).
//   - Hand out immutable copies so a running session can never see it change.
//
// The embedded puzzle is decoded exactly once (sync.Once); Default returns the
// cached value afterwards.

package puzzle

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/clue-play/assets"
)

var (
	ErrEmptySecret    = errors.New("puzzle: secret word is empty")
	ErrSecretNotLower = errors.New("puzzle: secret word must be lowercase")
	ErrBlankClue      = errors.New("puzzle: clue is blank")
)

// Puzzle is a secret word plus the clues revealed, in order, while guessing it.
type Puzzle struct {
	secret string
	clues  []string
}

// document mirrors the on-disk YAML layout.
type document struct {
	Secret string   `yaml:"secret"`
	Clues  []string `yaml:"clues"`
}

var (
	defaultOnce sync.Once
	defaultP    Puzzle
	defaultErr  error
)

// Default returns the puzzle compiled into the binary.
func Default() (Puzzle, error) {
	defaultOnce.Do(func() {
		raw, err := assets.PuzzleYAML()
		if err != nil {
			defaultErr = fmt.Errorf("read embedded puzzle: %w", err)
			return
		}
		defaultP, defaultErr = Parse(raw)
	})
	return defaultP, defaultErr
}

// Parse decodes a YAML puzzle document and validates it.
func Parse(data []byte) (Puzzle, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Puzzle{}, fmt.Errorf("decode puzzle: %w", err)
	}
	return New(doc.Secret, doc.Clues)
}

// New builds a validated Puzzle. The clue slice is copied.
//
// The secret is taken as-is: it must already be lowercase, since guesses are
// lowercased before comparison and the secret never is.
func New(secret string, clues []string) (Puzzle, error) {
	if secret == "" {
		return Puzzle{}, ErrEmptySecret
	}
	if secret != strings.ToLower(secret) {
		return Puzzle{}, fmt.Errorf("%w: %q", ErrSecretNotLower, secret)
	}
	for i, c := range clues {
		if strings.TrimSpace(c) == "" {
			return Puzzle{}, fmt.Errorf("%w: #%d", ErrBlankClue, i+1)
		}
	}
	return Puzzle{secret: secret, clues: append([]string(nil), clues...)}, nil
}

// Secret returns the secret word.
func (p Puzzle) Secret() string { return p.secret }

// ClueCount reports how many clues the puzzle has.
func (p Puzzle) ClueCount() int { return len(p.clues) }

// Clue returns the clue at i and whether it exists.
func (p Puzzle) Clue(i int) (string, bool) {
	if i < 0 || i >= len(p.clues) {
		return "", false
	}
	return p.clues[i], true
}
