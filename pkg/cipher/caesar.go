// Package cipher implements the Caesar shift used by the encrypt and decrypt
// commands. It is a teaching toy, not a security primitive.
package cipher

const alphabet = 26

// Shift rotates every ASCII letter in s by amount positions within its own
// case, in place. Other bytes are left alone.
func Shift(s []byte, amount int) {
	k := amount % alphabet

	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
			s[i] = rotate(c, 'a', k)
		case c >= 'A' && c <= 'Z':
			s[i] = rotate(c, 'A', k)
		}
	}
}

func rotate(c, first byte, k int) byte {
	return first + byte(((int(c-first)+k)%alphabet+alphabet)%alphabet)
}

func Encrypt(s []byte, shift int) {
	Shift(s, shift)
}

// Decrypt undoes Encrypt with the same shift.
func Decrypt(s []byte, shift int) {
	Shift(s, -(shift % alphabet))
}
