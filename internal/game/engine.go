// internal/game/engine.go
//
// Core engine for a single clue game session.
// Responsibilities:
//   - Print the welcome text and walk the clues in order.
//   - Read one guess per clue and compare it with the secret word.
//   - Track state transitions: not_started → awaiting_guess → success/exhausted.
//   - Close the LineInterface exactly once on reaching a terminal state.
//
// Notes:
//   - Guesses are lowercased (full Unicode case mapping) and compared with
//     exact equality. No trimming: " javascript" is a miss.
//   - The secret is only disclosed when the clues run out.
//   - randomID() tags log lines so one run's events can be grouped.
package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/clue-play/internal/puzzle"
)

// ErrAlreadyStarted is returned by Start on a session that has been started before.
var ErrAlreadyStarted = errors.New("game: session already started")

// Session drives one puzzle from the welcome text to a terminal state.
// A Session is not safe for concurrent use.
type Session struct {
	ID string

	puzzle puzzle.Puzzle
	line   LineInterface
	lower  cases.Caser

	index int
	state State
}

// New constructs a session for p that talks through line.
func New(p puzzle.Puzzle, line LineInterface) *Session {
	return &Session{
		ID:     randomID(),
		puzzle: p,
		line:   line,
		lower:  cases.Lower(language.Und),
		state:  StateNotStarted,
	}
}

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// ClueIndex reports the index of the clue currently shown (or, once
// exhausted, the clue count).
func (s *Session) ClueIndex() int { return s.index }

// Start prints the welcome text and plays until the secret is guessed or the
// clues run out. It returns nil on either outcome.
//
// If reading a guess fails the session stops in awaiting_guess and the error
// is returned; the LineInterface is left open for the caller to release.
func (s *Session) Start(ctx context.Context) error {
	if s.state != StateNotStarted {
		return ErrAlreadyStarted
	}
	log.Debug().Str("session", s.ID).Int("clues", s.puzzle.ClueCount()).Msg("session started")

	s.line.Write(MsgWelcome)
	s.line.Write(MsgInstructions)

	for index := 0; ; index++ {
		guess, done, err := s.presentClue(ctx, index)
		if err != nil || done {
			return err
		}
		if s.evaluateGuess(index, guess) {
			return nil
		}
	}
}

// presentClue shows the clue at index and reads a guess for it.
// done is true when there was no clue left and the session is exhausted.
func (s *Session) presentClue(ctx context.Context, index int) (guess string, done bool, err error) {
	s.index = index
	clue, ok := s.puzzle.Clue(index)
	if !ok {
		s.line.Write(MsgExhausted + " " + s.puzzle.Secret())
		s.finish(StateExhausted)
		return "", true, nil
	}

	s.state = StateAwaitingGuess
	s.line.Write(MsgCluePrefix + " " + clue)
	log.Debug().Str("session", s.ID).Int("clue", index).Msg("awaiting guess")

	guess, err = s.line.Prompt(ctx, PromptText)
	if err != nil {
		return "", false, fmt.Errorf("read guess for clue %d: %w", index+1, err)
	}
	return guess, false, nil
}

// evaluateGuess compares guess with the secret and reports whether the
// session ended with it.
func (s *Session) evaluateGuess(index int, guess string) bool {
	if s.lower.String(guess) == s.puzzle.Secret() {
		s.line.Write(MsgSuccess)
		s.finish(StateSuccess)
		return true
	}
	log.Debug().Str("session", s.ID).Int("clue", index).Msg("incorrect guess")
	s.line.Write(MsgIncorrect)
	return false
}

// finish enters a terminal state and releases the LineInterface.
func (s *Session) finish(st State) {
	s.state = st
	if err := s.line.Close(); err != nil {
		log.Warn().Err(err).Str("session", s.ID).Msg("close line interface")
	}
	log.Debug().Str("session", s.ID).Str("state", string(st)).Int("clue", s.index).Msg("session finished")
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
