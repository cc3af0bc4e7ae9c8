package shell

import (
	"errors"
	"fmt"

	"github.com/Neev4n/kernel-shell/pkg/textutil"
)

var ErrUnknownCommand = errors.New("unknown command")

// type Builtin
type Builtin func(s *Shell) error

// Command is one entry of the fixed command table.
type Command struct {
	Name        string
	Description string
	Run         Builtin
}

// lookup returns the first command whose name equals name exactly.
func (s *Shell) lookup(name string) (Command, error) {

	for _, cmd := range s.commands {
		if textutil.Compare(name, cmd.Name) == 0 {
			return cmd, nil
		}
	}

	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)

}

// Commands returns the command table in match order.
func (s *Shell) Commands() []Command {
	out := make([]Command, len(s.commands))
	copy(out, s.commands)
	return out
}
