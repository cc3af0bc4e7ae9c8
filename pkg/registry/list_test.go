package registry

import (
	"testing"

	"github.com/Neev4n/kernel-shell/pkg/heap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_AppendDisplayReset(t *testing.T) {
	l := New(heap.New(0x10000, 0x10000))

	require.NoError(t, l.Append(1))
	require.NoError(t, l.Append(2))
	require.NoError(t, l.Append(3))

	assert.Equal(t, "1 -> 2 -> 3 -> NULL", l.Display())
	assert.Equal(t, 3, l.Len())

	l.Reset()
	assert.True(t, l.Empty())
	assert.Equal(t, "list is empty", l.Display())
}

func TestList_EmptyDisplay(t *testing.T) {
	l := New(heap.New(0, 64))
	assert.Equal(t, EmptyMessage, l.Display())
	assert.Zero(t, l.Len())
}

func TestList_NegativeAndZeroValues(t *testing.T) {
	l := New(heap.New(0, 4*NodeSize))

	for _, v := range []int{-7, 0, 42} {
		require.NoError(t, l.Append(v))
	}

	var got []int
	l.Walk(func(v int) { got = append(got, v) })

	assert.Equal(t, []int{-7, 0, 42}, got)
	assert.Equal(t, "-7 -> 0 -> 42 -> NULL", l.Display())
}

func TestList_OutOfMemoryLeavesListUnchanged(t *testing.T) {
	region := heap.New(0, 2*NodeSize)
	l := New(region)

	require.NoError(t, l.Append(1))
	require.NoError(t, l.Append(2))

	err := l.Append(3)
	require.ErrorIs(t, err, heap.ErrOutOfMemory)

	assert.Equal(t, "1 -> 2 -> NULL", l.Display())
	assert.Equal(t, 0, region.Remaining())
}

func TestList_ResetDoesNotReclaim(t *testing.T) {
	region := heap.New(0, 3*NodeSize)
	l := New(region)

	require.NoError(t, l.Append(1))
	require.NoError(t, l.Append(2))
	l.Reset()

	assert.Equal(t, NodeSize, region.Remaining())

	require.NoError(t, l.Append(9))
	assert.Equal(t, "9 -> NULL", l.Display())

	require.ErrorIs(t, l.Append(10), heap.ErrOutOfMemory)
	assert.Equal(t, "9 -> NULL", l.Display())
}

func TestList_NodesUseHeapBytes(t *testing.T) {
	region := heap.New(0x4000, 10*NodeSize)
	l := New(region)

	for i := 0; i < 10; i++ {
		require.NoError(t, l.Append(i))
	}

	assert.Equal(t, 10, region.Allocations())
	assert.Equal(t, 10*NodeSize, region.Used())
	assert.Equal(t, 10, l.Len())
}
