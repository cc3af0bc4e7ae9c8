package shell

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Neev4n/kernel-shell/pkg/cipher"
	"github.com/Neev4n/kernel-shell/pkg/heap"
	"github.com/Neev4n/kernel-shell/pkg/textutil"
)

func (s *Shell) registerBuiltins() {

	s.commands = []Command{
		{Name: "help", Description: "Display this help message", Run: runHelp},
		{Name: "sum", Description: "Calculate the sum of two integers", Run: runSum},
		{Name: "encrypt", Description: "Encrypt a message with a Caesar cipher", Run: runEncrypt},
		{Name: "decrypt", Description: "Decrypt a message with a Caesar cipher", Run: runDecrypt},
		{Name: "addnode", Description: "Add a node to the linked list", Run: runAddNode},
		{Name: "displaylist", Description: "Display the linked list", Run: runDisplayList},
		{Name: "clearlist", Description: "Clear the linked list", Run: runClearList},
		{Name: "exit", Description: "Exit the program", Run: runExit},
	}
}

func runHelp(s *Shell) error {
	s.printf("Available commands:\n")

	for _, cmd := range s.commands {
		s.printf("%s: %s\n", textutil.Str(cmd.Name), textutil.Str(cmd.Description))
	}

	return nil
}

func runSum(s *Shell) error {
	a, err := s.promptInt("Enter first integer: ")
	if err != nil {
		return err
	}

	b, err := s.promptInt("Enter second integer: ")
	if err != nil {
		return err
	}

	s.printf("The sum is: %d\n", textutil.Int(a+b))
	return nil
}

func runEncrypt(s *Shell) error {
	return runCaesar(s, "encrypt", "Encrypted message: %s\n", cipher.Encrypt)
}

func runDecrypt(s *Shell) error {
	return runCaesar(s, "decrypt", "Decrypted message: %s\n", cipher.Decrypt)
}

func runCaesar(s *Shell, verb, result string, transform func([]byte, int)) error {
	shift, err := s.promptInt("Enter shift value: ")
	if err != nil {
		return err
	}

	var buf lineBuffer
	message, err := s.prompt("Enter message to "+verb+": ", &buf)
	if err != nil {
		return err
	}

	transform(message, shift)
	s.printf(result, textutil.Str(string(message)))
	return nil
}

func runAddNode(s *Shell) error {
	value, err := s.promptInt("Enter integer to add to the linked list: ")
	if err != nil {
		return err
	}

	if err := s.list.Append(value); err != nil {
		if !errors.Is(err, heap.ErrOutOfMemory) {
			return err
		}

		s.logger.Warn("node allocation failed",
			zap.Int("value", value),
			zap.Int("remaining", s.heap.Remaining()),
			zap.Error(err))
		s.printf("Out of memory\n")
		s.printf("Failed to create a new node\n")
		s.printf("Failed to create a new node\n")
	}

	return nil
}

func runDisplayList(s *Shell) error {
	s.printf("%s\n", textutil.Str(s.list.Display()))
	return nil
}

func runClearList(s *Shell) error {
	s.list.Reset()
	return nil
}

func runExit(s *Shell) error {
	return ErrExit
}
