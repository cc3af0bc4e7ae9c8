package shell

// Console is the character I/O boundary the shell talks through.
type Console interface {
	// PutChar writes one byte.
	PutChar(c byte)

	// ReadLine blocks until a newline or len(buf)-1 bytes have been
	// received and returns how many bytes were stored. The newline is kept
	// when it fits.
	ReadLine(buf []byte) (int, error)
}
