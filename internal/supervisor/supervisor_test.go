package supervisor

import (
	"strings"
	"testing"

	"github.com/glahaie/schedsim/internal/policy"
	"github.com/glahaie/schedsim/internal/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_OrdersResultsSJFThenSJFPThenRR(t *testing.T) {
	w := workload.New([]*workload.Descriptor{
		workload.NewDescriptor(1, 0, 1, []workload.Burst{{Kind: workload.CPU, Ticks: 5}}),
		workload.NewDescriptor(2, 1, 2, []workload.Burst{{Kind: workload.CPU, Ticks: 2}}),
	})

	results, err := Run(w, 2)
	require.NoError(t, err)

	assert.Equal(t, policy.SJF, results.Runs[0].Kind)
	assert.Equal(t, policy.SJFP, results.Runs[1].Kind)
	assert.Equal(t, policy.RR, results.Runs[2].Kind)

	assert.True(t, strings.HasPrefix(string(results.Runs[0].Stream), "Resultat du processus pour: SJF\n"))
	assert.True(t, strings.HasPrefix(string(results.Runs[1].Stream), "Resultat du processus pour: SJFP\n"))
	assert.True(t, strings.HasPrefix(string(results.Runs[2].Stream), "Resultat du processus pour: RR 2\n"))
}

func TestRun_DoesNotCrossContaminateWorkloads(t *testing.T) {
	w := workload.New([]*workload.Descriptor{
		workload.NewDescriptor(1, 0, 1, []workload.Burst{{Kind: workload.CPU, Ticks: 5}}),
		workload.NewDescriptor(2, 1, 2, []workload.Burst{{Kind: workload.CPU, Ticks: 2}}),
	})

	first, err := Run(w, 2)
	require.NoError(t, err)
	second, err := Run(w, 2)
	require.NoError(t, err)

	for i := range first.Runs {
		assert.Equal(t, string(first.Runs[i].Stream), string(second.Runs[i].Stream))
	}
}

func TestRun_RejectsBadQuantumBeforeAnyGoroutineStarts(t *testing.T) {
	w := workload.New([]*workload.Descriptor{
		workload.NewDescriptor(1, 0, 1, []workload.Burst{{Kind: workload.CPU, Ticks: 1}}),
	})
	_, err := Run(w, 0)
	assert.Error(t, err)
}
