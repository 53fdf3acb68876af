package policy

import (
	"testing"

	"github.com/glahaie/schedsim/internal/queue"
	"github.com/glahaie/schedsim/internal/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func desc(pid, sourceOrder, burst int) *workload.Descriptor {
	return workload.NewDescriptor(pid, 0, sourceOrder, []workload.Burst{{Kind: workload.CPU, Ticks: burst}})
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New(Kind(99))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSJF_SelectsSmallestHeadBurst(t *testing.T) {
	pol, err := New(SJF)
	require.NoError(t, err)
	assert.Equal(t, SJF, pol.Kind())
	assert.False(t, pol.PreemptsOnAdmission())
	assert.False(t, pol.QuantumEnforced())

	q := queue.New()
	long := desc(1, 1, 5)
	short := desc(2, 2, 2)
	q.Append(long)
	q.Append(short)

	got := pol.Select(q)
	assert.Same(t, short, got)
	assert.Equal(t, 1, q.Len())
}

func TestSJF_TieBrokenBySourceOrder(t *testing.T) {
	pol, _ := New(SJF)
	q := queue.New()
	second := desc(1, 2, 3)
	first := desc(2, 1, 3)
	q.Append(second)
	q.Append(first)

	got := pol.Select(q)
	assert.Same(t, first, got)
}

func TestSJFP_Preempts(t *testing.T) {
	pol, err := New(SJFP)
	require.NoError(t, err)
	assert.Equal(t, SJFP, pol.Kind())
	assert.True(t, pol.PreemptsOnAdmission())
	assert.False(t, pol.QuantumEnforced())
}

func TestRR_SelectsFIFO(t *testing.T) {
	pol, err := New(RR)
	require.NoError(t, err)
	assert.Equal(t, RR, pol.Kind())
	assert.False(t, pol.PreemptsOnAdmission())
	assert.True(t, pol.QuantumEnforced())

	q := queue.New()
	first := desc(1, 1, 9)
	second := desc(2, 2, 1)
	q.Append(first)
	q.Append(second)

	got := pol.Select(q)
	assert.Same(t, first, got)
}

func TestRR_SelectOnEmptyPanics(t *testing.T) {
	pol, _ := New(RR)
	assert.Panics(t, func() {
		pol.Select(queue.New())
	})
}
