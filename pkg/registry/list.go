// Package registry keeps the shell's singly linked list of integers.
//
// Nodes are stored inside blocks taken from a heap.Region, so every append
// costs NodeSize bytes of the region and a full region makes Append fail.
// Each node is encoded as a little-endian value followed by the offset of the
// next node, with noNode marking the tail.
package registry

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/Neev4n/kernel-shell/pkg/heap"
	"github.com/Neev4n/kernel-shell/pkg/textutil"
)

const (
	// NodeSize is the number of heap bytes one node occupies.
	NodeSize = 16

	valueOffset = 0
	nextOffset  = 8

	noNode = -1
)

// EmptyMessage is what Display returns for an empty list.
const EmptyMessage = "list is empty"

// List is a forward-only chain of nodes rooted at head.
type List struct {
	region *heap.Region
	head   int
}

func New(region *heap.Region) *List {
	return &List{region: region, head: noNode}
}

// Append adds value after the current tail. When the region cannot fit
// another node the list is left unchanged and the allocation error is
// returned.
func (l *List) Append(value int) error {
	b, err := l.region.Allocate(NodeSize)
	if err != nil {
		return fmt.Errorf("append %d: %w", value, err)
	}

	n := b.Offset
	l.putValue(n, value)
	l.putNext(n, noNode)

	if l.head == noNode {
		l.head = n
		return nil
	}

	tail := l.head
	for l.next(tail) != noNode {
		tail = l.next(tail)
	}
	l.putNext(tail, n)

	return nil
}

// Walk calls fn with each value in insertion order.
func (l *List) Walk(fn func(value int)) {
	for n := l.head; n != noNode; n = l.next(n) {
		fn(l.value(n))
	}
}

// Display renders the list as "1 -> 2 -> NULL", or EmptyMessage.
func (l *List) Display() string {
	if l.Empty() {
		return EmptyMessage
	}

	var sb strings.Builder
	l.Walk(func(v int) {
		sb.WriteString(textutil.Sprint("%d -> ", textutil.Int(v)))
	})
	sb.WriteString("NULL")

	return sb.String()
}

// Reset drops every node. Their heap blocks are released, which does not
// give the memory back.
func (l *List) Reset() {
	n := l.head
	for n != noNode {
		next := l.next(n)
		l.region.Release(l.region.BlockAt(n, NodeSize))
		n = next
	}

	l.head = noNode
}

func (l *List) Empty() bool {
	return l.head == noNode
}

func (l *List) Len() int {
	count := 0
	l.Walk(func(int) { count++ })
	return count
}

func (l *List) node(n int) []byte {
	return l.region.At(n, NodeSize)
}

func (l *List) value(n int) int {
	return int(int64(binary.LittleEndian.Uint64(l.node(n)[valueOffset:])))
}

func (l *List) next(n int) int {
	return int(int64(binary.LittleEndian.Uint64(l.node(n)[nextOffset:])))
}

func (l *List) putValue(n, v int) {
	binary.LittleEndian.PutUint64(l.node(n)[valueOffset:], uint64(int64(v)))
}

func (l *List) putNext(n, next int) {
	binary.LittleEndian.PutUint64(l.node(n)[nextOffset:], uint64(int64(next)))
}
