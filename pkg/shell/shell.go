package shell

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/Neev4n/kernel-shell/pkg/heap"
	"github.com/Neev4n/kernel-shell/pkg/registry"
	"github.com/Neev4n/kernel-shell/pkg/textutil"
)

// exit error
var ErrExit = errors.New("exit")

const Prompt = "> "

// Shell is one interactive session. It owns the heap and the list built on
// it; nothing is shared between sessions.
type Shell struct {
	console  Console
	heap     *heap.Region
	list     *registry.List
	commands []Command
	logger   *zap.Logger
}

type Option func(*Shell)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a shell that allocates from region and talks through console.
func New(console Console, region *heap.Region, opts ...Option) *Shell {
	s := &Shell{
		console: console,
		heap:    region,
		list:    registry.New(region),
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.registerBuiltins()
	return s
}

// Run reads and executes commands until exit or end of input.
func (s *Shell) Run() error {
	for {
		s.printf(Prompt)

		var buf lineBuffer
		line, err := s.readLine(&buf)

		if err != nil {
			return s.stop(err)
		}

		if err := s.dispatch(string(line)); err != nil {
			return s.stop(err)
		}
	}
}

func (s *Shell) dispatch(name string) error {
	cmd, err := s.lookup(name)

	if errors.Is(err, ErrUnknownCommand) {
		s.logger.Debug("unknown command", zap.String("input", name))
		s.printf("Unknown command. Type 'help' for a list of commands.\n")
		return nil
	}

	s.logger.Debug("dispatching command", zap.String("command", cmd.Name))
	return cmd.Run(s)
}

// stop turns the error that ended the loop into Run's result.
func (s *Shell) stop(err error) error {
	switch {
	case errors.Is(err, ErrExit):
		s.logger.Info("session ended", zap.String("reason", "exit"))
		return nil
	case errors.Is(err, io.EOF):
		s.logger.Info("session ended", zap.String("reason", "end of input"))
		return nil
	}

	s.logger.Error("console failure", zap.Error(err))
	return err
}

func (s *Shell) printf(template string, args ...textutil.Arg) {
	textutil.Format(s.console, template, args...)
}

// List exposes the session's registry.
func (s *Shell) List() *registry.List {
	return s.list
}

// Heap exposes the session's heap region.
func (s *Shell) Heap() *heap.Region {
	return s.heap
}
