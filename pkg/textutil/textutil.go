// Package textutil holds the small string helpers the shell is built on.
package textutil

// NotFound is returned by IndexByte when the byte does not occur.
const NotFound = -1

// Compare compares a and b byte by byte. The end of a string counts as byte
// 0, so the result is the difference of the first mismatching bytes and zero
// only for exact equality.
func Compare(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}

	return int(at(a, i)) - int(at(b, i))
}

func at(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// ParseInt reads an optional '-' and then decimal digits, stopping at the
// first byte that is not a digit. Input with no digits yields 0.
func ParseInt(s string) int {
	if s == "" {
		return 0
	}

	sign := 1
	i := 0
	if s[0] == '-' {
		sign = -1
		i++
	}

	n := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}

	return n * sign
}

// IndexByte returns the index of the first c in s, or NotFound.
func IndexByte(s []byte, c byte) int {
	for i := range s {
		if s[i] == c {
			return i
		}
	}

	return NotFound
}
