package workload

// Snapshot is a YAML-friendly view of a parsed Workload, used by the
// schedsim CLI's --dump-yaml debug flag so a run's resolved input can be
// inspected without re-deriving it from the text format by hand.
type Snapshot struct {
	Processes []ProcessSnapshot `yaml:"processes"`
}

// ProcessSnapshot mirrors one Descriptor's fixed, parser-assigned fields.
// The mutable progress fields (remaining, run slice, quantum) are run-time
// state, not part of the parsed description, so they have no place here.
type ProcessSnapshot struct {
	PID         int            `yaml:"pid"`
	Arrival     int            `yaml:"arrival"`
	SourceOrder int            `yaml:"source_order"`
	Bursts      []BurstSnapshot `yaml:"bursts"`
}

// BurstSnapshot renders a Burst's kind as a string instead of the internal
// enum, so the dump reads directly as "CPU"/"IO" rather than 0/1.
type BurstSnapshot struct {
	Kind  string `yaml:"kind"`
	Ticks int    `yaml:"ticks"`
}

// Dump builds a Snapshot of w in source order, for YAML marshalling.
func (w *Workload) Dump() Snapshot {
	snap := Snapshot{Processes: make([]ProcessSnapshot, 0, len(w.Procs))}
	for _, p := range w.Procs {
		bursts := make([]BurstSnapshot, 0, len(p.Bursts))
		for _, b := range p.Bursts {
			bursts = append(bursts, BurstSnapshot{Kind: b.Kind.String(), Ticks: b.Ticks})
		}
		snap.Processes = append(snap.Processes, ProcessSnapshot{
			PID:         p.PID,
			Arrival:     p.Arrival,
			SourceOrder: p.SourceOrder,
			Bursts:      bursts,
		})
	}
	return snap
}
