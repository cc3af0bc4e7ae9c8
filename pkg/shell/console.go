package shell

import (
	"bufio"
	"errors"
	"io"
)

var ErrLineCapacity = errors.New("line buffer needs room for at least one byte")

// StreamConsole is a Console over a byte stream such as stdin/stdout, a pty
// or an opened serial device.
type StreamConsole struct {
	in   *bufio.Reader
	out  *bufio.Writer
	echo bool
	err  error // first write error

	// last byte read was '\r'; a '\n' right after it belongs to the same newline
	pendingCR bool
}

type ConsoleOption func(*StreamConsole)

// WithEcho makes the console write received bytes back, for raw serial lines
// where the terminal does no local echo.
func WithEcho(echo bool) ConsoleOption {
	return func(c *StreamConsole) {
		c.echo = echo
	}
}

func NewStreamConsole(r io.Reader, w io.Writer, opts ...ConsoleOption) *StreamConsole {
	c := &StreamConsole{
		in:  bufio.NewReader(r),
		out: bufio.NewWriter(w),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *StreamConsole) PutChar(ch byte) {
	if c.err != nil {
		return
	}

	c.err = c.out.WriteByte(ch)
}

// ReadLine flushes pending output, then reads up to a newline. A lone '\r'
// or a "\r\n" pair both count as one newline, even when the '\n' only
// arrives on a later read. A partial line at end of input is returned
// without error; the next call reports io.EOF.
func (c *StreamConsole) ReadLine(buf []byte) (int, error) {
	limit := len(buf) - 1
	if limit < 1 {
		return 0, ErrLineCapacity
	}

	if err := c.Flush(); err != nil {
		return 0, err
	}

	n := 0
	for n < limit {
		ch, err := c.in.ReadByte()
		if err != nil {
			if n > 0 && errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}

		if c.pendingCR {
			c.pendingCR = false
			if ch == '\n' {
				continue
			}
		}

		if ch == '\r' {
			c.pendingCR = true
			ch = '\n'
		}

		if c.echo {
			c.echoByte(ch)
		}

		buf[n] = ch
		n++

		if ch == '\n' {
			break
		}
	}

	return n, nil
}

func (c *StreamConsole) echoByte(ch byte) {
	if ch == '\n' {
		c.PutChar('\r')
	}
	c.PutChar(ch)
	_ = c.Flush()
}

// Flush writes buffered output and returns the first write error seen.
func (c *StreamConsole) Flush() error {
	if c.err != nil {
		return c.err
	}

	c.err = c.out.Flush()
	return c.err
}
