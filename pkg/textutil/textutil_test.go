package textutil

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		sign int
	}{
		{name: "equal", a: "help", b: "help", sign: 0},
		{name: "both empty", a: "", b: "", sign: 0},
		{name: "case sensitive", a: "Help", b: "help", sign: -1},
		{name: "prefix is smaller", a: "sum", b: "summary", sign: -1},
		{name: "longer is greater", a: "exit2", b: "exit", sign: 1},
		{name: "first mismatch decides", a: "addnode", b: "abc", sign: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			switch {
			case tt.sign == 0:
				assert.Zero(t, got)
			case tt.sign < 0:
				assert.Negative(t, got)
			default:
				assert.Positive(t, got)
			}
		})
	}
}

func TestCompare_Reflexive(t *testing.T) {
	for _, s := range []string{"", "a", "displaylist", "Hello, World!", "\x00\xff"} {
		assert.Zero(t, Compare(s, s), "Compare(%q, %q)", s, s)
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{input: "", expected: 0},
		{input: "-5", expected: -5},
		{input: "12abc", expected: 12},
		{input: "abc", expected: 0},
		{input: "0", expected: 0},
		{input: "-", expected: 0},
		{input: "42", expected: 42},
		{input: "-0017", expected: -17},
		{input: " 7", expected: 0},
		{input: "+7", expected: 0},
		{input: "3\n", expected: 3},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseInt(tt.input))
		})
	}
}

func TestIndexByte(t *testing.T) {
	assert.Equal(t, 3, IndexByte([]byte("abc\n"), '\n'))
	assert.Equal(t, 0, IndexByte([]byte("\n\n"), '\n'))
	assert.Equal(t, NotFound, IndexByte([]byte("abc"), '\n'))
	assert.Equal(t, NotFound, IndexByte(nil, 'x'))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []Arg
		expected string
	}{
		{name: "plain", template: "> ", expected: "> "},
		{name: "string", template: "Encrypted message: %s\n", args: []Arg{Str("def")}, expected: "Encrypted message: def\n"},
		{name: "positive", template: "The sum is: %d\n", args: []Arg{Int(1234)}, expected: "The sum is: 1234\n"},
		{name: "negative", template: "%d", args: []Arg{Int(-56)}, expected: "-56"},
		{name: "zero", template: "%d -> ", args: []Arg{Int(0)}, expected: "0 -> "},
		{name: "mixed", template: "%s=%d", args: []Arg{Str("x"), Int(3)}, expected: "x=3"},
		{name: "unknown verb", template: "100%x", args: []Arg{Int(1)}, expected: "100%x"},
		{name: "trailing percent", template: "50%", expected: "50%"},
		{name: "missing argument", template: "%d and %d", args: []Arg{Int(1)}, expected: "1 and %d"},
		{name: "kind mismatch", template: "%s", args: []Arg{Int(1)}, expected: "%s"},
		{name: "no width", template: "%5d", args: []Arg{Int(1)}, expected: "%5d"},
		{name: "empty string arg", template: "[%s]", args: []Arg{Str("")}, expected: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sprint(tt.template, tt.args...))
		})
	}
}

func TestFormat_IntExtremes(t *testing.T) {
	assert.Equal(t, strconv.Itoa(math.MaxInt), Sprint("%d", Int(math.MaxInt)))
	assert.Equal(t, strconv.Itoa(math.MinInt), Sprint("%d", Int(math.MinInt)))
}
