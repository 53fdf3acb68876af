package queue

import (
	"testing"

	"github.com/glahaie/schedsim/internal/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func desc(pid int) *workload.Descriptor {
	return workload.NewDescriptor(pid, 0, pid, []workload.Burst{{Kind: workload.CPU, Ticks: 1}})
}

func TestQueue_AppendAndFIFO(t *testing.T) {
	q := New()
	a, b := desc(1), desc(2)
	q.Append(a)
	q.Append(b)

	require.Equal(t, 2, q.Len())
	head, ok := q.Head()
	require.True(t, ok)
	assert.Same(t, a, head)

	p, ok := q.PopHead()
	require.True(t, ok)
	assert.Same(t, a, p)
	assert.Equal(t, 1, q.Len())
}

func TestQueue_PopHeadOnEmpty(t *testing.T) {
	q := New()
	_, ok := q.PopHead()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}

func TestQueue_RemoveByIdentityRemovesOnlyFirstMatch(t *testing.T) {
	q := New()
	a, b, c := desc(1), desc(1), desc(2)
	q.Append(a)
	q.Append(b)
	q.Append(c)

	removed := q.RemoveByIdentity(a)
	assert.True(t, removed)
	assert.Equal(t, []*workload.Descriptor{b, c}, q.Items())

	assert.False(t, q.RemoveByIdentity(a))
}

func TestQueue_SortStableIsStableOnEqualKeys(t *testing.T) {
	q := New()
	a := workload.NewDescriptor(9, 0, 1, []workload.Burst{{Kind: workload.CPU, Ticks: 3}})
	b := workload.NewDescriptor(9, 0, 2, []workload.Burst{{Kind: workload.CPU, Ticks: 3}})
	c := workload.NewDescriptor(9, 0, 3, []workload.Burst{{Kind: workload.CPU, Ticks: 1}})
	q.Append(a)
	q.Append(b)
	q.Append(c)

	q.SortStable(func(x, y *workload.Descriptor) bool { return x.Remaining() < y.Remaining() })
	assert.Equal(t, []*workload.Descriptor{c, a, b}, q.Items())
}
