// internal/console/console.go
//
// Terminal implementation of game.LineInterface.
//
// Backed by github.com/chzyer/readline. On a real terminal it gets line
// editing; when stdin is a pipe (or in tests) raw mode is never entered and
// input is read line by line.

package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
)

var (
	// ErrInputClosed means stdin reached EOF while a line was expected.
	ErrInputClosed = errors.New("console: input closed")
	// ErrInterrupted means the user pressed Ctrl-C at the prompt.
	ErrInterrupted = errors.New("console: interrupted")
	// ErrClosed is returned by Prompt after Close.
	ErrClosed = errors.New("console: closed")
)

// Options selects the streams a Console uses.
type Options struct {
	In  io.ReadCloser
	Out io.Writer

	// Terminal enables raw mode and line editing. Leave false for pipes.
	Terminal bool
}

// Console is a readline-backed prompt/response channel.
type Console struct {
	rl       *readline.Instance
	out      io.Writer
	terminal bool

	mu     sync.Mutex
	closed bool
}

// New opens a Console over the given streams.
func New(opts Options) (*Console, error) {
	in := opts.In
	if !opts.Terminal {
		in = normalizeLineEndings(in)
	}
	cfg := &readline.Config{
		Stdin:           in,
		Stdout:          opts.Out,
		InterruptPrompt: "^C",
		FuncIsTerminal:  func() bool { return opts.Terminal },
	}
	if !opts.Terminal {
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	return &Console{rl: rl, out: opts.Out, terminal: opts.Terminal}, nil
}

// Prompt shows text and reads one line. The trailing newline is stripped,
// nothing else is.
func (c *Console) Prompt(ctx context.Context, text string) (string, error) {
	if c.isClosed() {
		return "", ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if c.terminal {
		c.rl.SetPrompt(text)
	} else {
		// readline does not draw prompts without a terminal.
		_, _ = io.WriteString(c.out, text)
	}

	line, err := c.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", ErrInputClosed
	case err != nil:
		return "", fmt.Errorf("read line: %w", err)
	}
	return line, nil
}

// Write prints line followed by a newline.
func (c *Console) Write(line string) {
	if _, err := fmt.Fprintln(c.rl.Stdout(), line); err != nil {
		log.Debug().Err(err).Msg("console write failed")
	}
}

// Close releases readline. Calling it more than once is a no-op.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.rl.Close()
}

func (c *Console) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
