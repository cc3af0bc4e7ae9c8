package shell

import (
	"github.com/Neev4n/kernel-shell/pkg/textutil"
)

// LineCapacity is the size of every line buffer, terminator slot included.
const LineCapacity = 256

type lineBuffer [LineCapacity]byte

// trimNewline cuts line at its first '\n'.
func trimNewline(line []byte) []byte {
	if i := textutil.IndexByte(line, '\n'); i != textutil.NotFound {
		return line[:i]
	}

	return line
}

// readLine reads one line into buf and returns it without the newline. The
// returned slice aliases buf.
func (s *Shell) readLine(buf *lineBuffer) ([]byte, error) {
	n, err := s.console.ReadLine(buf[:])

	if err != nil {
		return nil, err
	}

	return trimNewline(buf[:n]), nil
}

// prompt writes label and reads the answer.
func (s *Shell) prompt(label string, buf *lineBuffer) ([]byte, error) {
	s.printf(label)
	return s.readLine(buf)
}

// promptInt writes label and parses the answer with textutil.ParseInt.
func (s *Shell) promptInt(label string) (int, error) {
	var buf lineBuffer

	line, err := s.prompt(label, &buf)

	if err != nil {
		return 0, err
	}

	return textutil.ParseInt(string(line)), nil
}
