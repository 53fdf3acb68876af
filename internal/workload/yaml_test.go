package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestDump_MarshalsToYAML(t *testing.T) {
	w := New([]*Descriptor{
		NewDescriptor(1, 0, 1, []Burst{{Kind: CPU, Ticks: 5}, {Kind: IO, Ticks: 2}}),
	})

	out, err := yaml.Marshal(w.Dump())
	assert.NoError(t, err)
	assert.Contains(t, string(out), "pid: 1")
	assert.Contains(t, string(out), "kind: CPU")
	assert.Contains(t, string(out), "kind: IO")
}
