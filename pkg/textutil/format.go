package textutil

import "strings"

// CharWriter receives output one byte at a time.
type CharWriter interface {
	PutChar(c byte)
}

type argKind int

const (
	kindString argKind = iota
	kindInt
)

// Arg is a value for one Format placeholder. Only Str and Int build them.
type Arg struct {
	kind argKind
	s    string
	n    int
}

// Str is the argument for a %s placeholder.
func Str(s string) Arg { return Arg{kind: kindString, s: s} }

// Int is the argument for a %d placeholder.
func Int(n int) Arg { return Arg{kind: kindInt, n: n} }

// Format writes template to w, replacing %s and %d with args in order.
//
// Nothing else is a placeholder. An unknown verb, a trailing '%', or a
// placeholder without a matching argument is written as-is.
func Format(w CharWriter, template string, args ...Arg) {
	next := 0

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 >= len(template) {
			w.PutChar(c)
			continue
		}

		verb := template[i+1]
		want, ok := verbKind(verb)
		if !ok || next >= len(args) || args[next].kind != want {
			w.PutChar(c)
			continue
		}

		a := args[next]
		next++
		i++

		switch a.kind {
		case kindString:
			putString(w, a.s)
		case kindInt:
			putInt(w, a.n)
		}
	}
}

func verbKind(verb byte) (argKind, bool) {
	switch verb {
	case 's':
		return kindString, true
	case 'd':
		return kindInt, true
	}
	return 0, false
}

func putString(w CharWriter, s string) {
	for i := 0; i < len(s); i++ {
		w.PutChar(s[i])
	}
}

func putInt(w CharWriter, n int) {
	if n == 0 {
		w.PutChar('0')
		return
	}

	// uint conversion keeps the most negative int representable
	u := uint(n)
	if n < 0 {
		w.PutChar('-')
		u = -u
	}

	var digits [20]byte
	p := len(digits)
	for u > 0 {
		p--
		digits[p] = byte('0' + u%10)
		u /= 10
	}

	for _, d := range digits[p:] {
		w.PutChar(d)
	}
}

type builderWriter struct {
	b *strings.Builder
}

func (bw builderWriter) PutChar(c byte) {
	bw.b.WriteByte(c)
}

// Sprint returns what Format would write.
func Sprint(template string, args ...Arg) string {
	var b strings.Builder
	Format(builderWriter{b: &b}, template, args...)
	return b.String()
}
