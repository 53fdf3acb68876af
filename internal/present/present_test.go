package present

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/glahaie/schedsim/internal/supervisor"
	"github.com/glahaie/schedsim/internal/workload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) *supervisor.Results {
	t.Helper()
	w := workload.New([]*workload.Descriptor{
		workload.NewDescriptor(1, 0, 1, []workload.Burst{{Kind: workload.CPU, Ticks: 5}}),
		workload.NewDescriptor(2, 1, 2, []workload.Burst{{Kind: workload.CPU, Ticks: 2}}),
	})
	results, err := supervisor.Run(w, 2)
	require.NoError(t, err)
	return results
}

func TestStream_ConcatenatesInOrder(t *testing.T) {
	results := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, Stream(&buf, results))

	out := buf.String()
	assert.True(t, strings.Contains(out, "Resultat du processus pour: SJF\n"))
	assert.True(t, strings.Index(out, "SJF\n") < strings.Index(out, "SJFP\n"))
	assert.True(t, strings.Index(out, "SJFP\n") < strings.Index(out, "RR 2\n"))
}

func TestJSON_RoundTripsIntervals(t *testing.T) {
	results := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, results))

	var decoded []jsonPolicy
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "SJF", decoded[0].Policy)
	assert.Equal(t, "RR", decoded[2].Policy)
	assert.Equal(t, 2, decoded[2].Quantum)
	assert.NotEmpty(t, decoded[0].Intervals)
}

func TestPretty_WritesAHeaderPerPolicy(t *testing.T) {
	results := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, results))
	out := buf.String()
	assert.Contains(t, out, "POLICY SJF")
	assert.Contains(t, out, "POLICY RR 2")
}

func TestHTML_IsWellFormedEnough(t *testing.T) {
	results := fixture(t)
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, results))
	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "SJF")
	assert.Contains(t, out, "PID 1")
}
