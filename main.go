package main

import (
	"context"
	"errors"
	"os"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/clue-play/internal/console"
	"github.com/robalobadob/clue-play/internal/game"
	"github.com/robalobadob/clue-play/internal/puzzle"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	p, err := puzzle.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load puzzle")
	}

	con, err := console.New(console.Options{
		In:       readline.NewCancelableStdin(os.Stdin),
		Out:      os.Stdout,
		Terminal: readline.DefaultIsTerminal(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open console")
	}

	os.Exit(exitCode(play(context.Background(), p, con)))
}

// play runs one session over line. On a read failure the session leaves line
// open, so it is closed here.
func play(ctx context.Context, p puzzle.Puzzle, line game.LineInterface) error {
	s := game.New(p, line)
	err := s.Start(ctx)
	if err != nil {
		log.Debug().Err(err).Str("session", s.ID).Msg("session aborted")
		_ = line.Close()
	}
	return err
}

// exitCode maps the outcome of play to a process status. Running out of
// input ends the game quietly, like a finished one.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, console.ErrInputClosed):
		return 0
	case errors.Is(err, console.ErrInterrupted):
		return 130
	default:
		log.Error().Err(err).Msg("game ended with error")
		return 1
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
