// internal/game/types.go
//
// Core type definitions for the clue game.
// Defines:
//   - State: where a session is in its lifecycle.
//   - LineInterface: the line-oriented prompt/response channel a session talks through.
//   - The fixed user-facing text.

package game

import "context"

// State represents the lifecycle position of a Session.
// Possible values:
//   - "not_started":    Start has not been called yet.
//   - "awaiting_guess": a clue is on screen and a guess is being read.
//   - "success":        the player guessed the secret word.
//   - "exhausted":      every clue was shown without a correct guess.
type State string

const (
	StateNotStarted    State = "not_started"
	StateAwaitingGuess State = "awaiting_guess"
	StateSuccess       State = "success"
	StateExhausted     State = "exhausted"
)

// Terminal reports whether no further transitions are possible from s.
func (s State) Terminal() bool {
	return s == StateSuccess || s == StateExhausted
}

// LineInterface is the text channel a Session plays over.
type LineInterface interface {
	// Prompt shows text and blocks until one line of input arrives.
	Prompt(ctx context.Context, text string) (string, error)

	// Write outputs one line.
	Write(line string)

	// Close releases the underlying input and output.
	Close() error
}

// User-facing text. Reproduced verbatim; do not reword.
const (
	MsgWelcome      = "¡Bienvenido al juego de adivinanzas!"
	MsgInstructions = "Tienes que adivinar la palabra secreta basada en las pistas."
	MsgCluePrefix   = "Pista:"
	MsgSuccess      = "¡Felicidades! Adivinaste la palabra secreta."
	MsgIncorrect    = "Respuesta incorrecta. Vamos a la siguiente pista."
	MsgExhausted    = "¡Lo siento, te has quedado sin pistas! La palabra secreta era:"

	PromptText = "¿Cuál es tu respuesta? "
)
