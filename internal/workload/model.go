package workload

import "sort"

// BurstKind distinguishes a CPU-bound burst from an I/O-blocking one. The
// original C source encoded this as the sign of an integer; a tagged
// variant makes the "leading burst may be CPU or I/O" invariant checkable
// by the type system instead of by convention.
type BurstKind int

const (
	CPU BurstKind = iota
	IO
)

func (k BurstKind) String() string {
	if k == IO {
		return "IO"
	}
	return "CPU"
}

// Burst is one contiguous run of CPU use or I/O wait. Ticks is always > 0;
// the sign that distinguished the two kinds in the source program is
// carried explicitly in Kind instead.
type Burst struct {
	Kind  BurstKind
	Ticks int
}

// State is one of the five states a descriptor may occupy at any tick.
type State int

const (
	NewState State = iota
	Ready
	Running
	Blocked
	Terminated
)

func (s State) String() string {
	switch s {
	case NewState:
		return "NEW"
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Blocked:
		return "BLOCKED"
	case Terminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// Descriptor is one process. PID, Arrival, SourceOrder and Bursts are fixed
// at construction; the remaining fields are mutated by the tick engine over
// the course of one simulation run.
type Descriptor struct {
	PID         int
	Arrival     int
	SourceOrder int
	Bursts      []Burst

	headIdx       int
	remaining     int
	state         State
	runSliceStart int
	quantumUsed   int
}

// NewDescriptor constructs a descriptor ready for admission at its arrival
// tick. bursts must be non-empty; the caller (the parser) is responsible
// for merging consecutive same-kind bursts before calling this.
func NewDescriptor(pid, arrival, sourceOrder int, bursts []Burst) *Descriptor {
	if len(bursts) == 0 {
		panic("workload: descriptor constructed with no bursts")
	}
	d := &Descriptor{
		PID:         pid,
		Arrival:     arrival,
		SourceOrder: sourceOrder,
		Bursts:      bursts,
	}
	d.reset()
	return d
}

func (d *Descriptor) reset() {
	d.headIdx = 0
	d.remaining = d.Bursts[0].Ticks
	d.state = NewState
	d.runSliceStart = 0
	d.quantumUsed = 0
}

func (d *Descriptor) clone() *Descriptor {
	bursts := make([]Burst, len(d.Bursts))
	copy(bursts, d.Bursts)
	nd := &Descriptor{PID: d.PID, Arrival: d.Arrival, SourceOrder: d.SourceOrder, Bursts: bursts}
	nd.reset()
	return nd
}

// HasHead reports whether there is still a burst to consume.
func (d *Descriptor) HasHead() bool { return d.headIdx < len(d.Bursts) }

// HeadKind returns the kind of the current head burst. It panics if the
// process has already terminated — callers must check HasHead first.
func (d *Descriptor) HeadKind() BurstKind {
	if !d.HasHead() {
		panic("workload: HeadKind called on a terminated descriptor")
	}
	return d.Bursts[d.headIdx].Kind
}

// Remaining returns the ticks left in the current head burst. For a process
// that has not yet run this is also "time until the next block or
// termination", which is what the SJF/SJFP policies select on.
func (d *Descriptor) Remaining() int { return d.remaining }

// Terminated reports whether every burst has been consumed.
func (d *Descriptor) Terminated() bool { return !d.HasHead() }

// Tick consumes one tick of the current head burst (CPU or I/O — the
// decrement-to-zero bookkeeping is identical for both, only the RUNNING vs
// BLOCKED interpretation differs, which the caller already knows from the
// queue it pulled the descriptor out of). It reports whether the head burst
// was fully consumed this tick.
func (d *Descriptor) Tick() (consumed bool) {
	d.remaining--
	if d.remaining <= 0 {
		d.headIdx++
		if d.HasHead() {
			d.remaining = d.Bursts[d.headIdx].Ticks
		} else {
			d.remaining = 0
		}
		return true
	}
	return false
}

func (d *Descriptor) State() State       { return d.state }
func (d *Descriptor) SetState(s State)   { d.state = s }
func (d *Descriptor) RunSliceStart() int { return d.runSliceStart }
func (d *Descriptor) SetRunSliceStart(t int) {
	d.runSliceStart = t
}
func (d *Descriptor) QuantumUsed() int { return d.quantumUsed }
func (d *Descriptor) ResetQuantum()    { d.quantumUsed = 0 }
func (d *Descriptor) IncQuantum() int {
	d.quantumUsed++
	return d.quantumUsed
}

// Identity reports the (pid, arrival) pair the source program used for
// queue removal. It is exposed for diagnostics; the parser's duplicate
// check builds the same (pid, arrival) key from the parsed fields, and the
// queue package itself removes by pointer identity,
// which a distinct *Descriptor always has even when two input lines share
// a (pid, arrival) pair.
func (d *Descriptor) Identity() (pid, arrival int) { return d.PID, d.Arrival }

// Workload is the full set of descriptors for one simulation run.
type Workload struct {
	// Procs holds every descriptor in source order.
	Procs []*Descriptor
	// ArrivalOrder holds the same descriptors sorted by Arrival ascending,
	// ties broken by SourceOrder ascending. The tick engine admits
	// arrivals by walking this slice.
	ArrivalOrder []*Descriptor
}

// New builds a Workload from parsed descriptors, in the order the parser
// produced them (source order).
func New(procs []*Descriptor) *Workload {
	order := make([]*Descriptor, len(procs))
	copy(order, procs)
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].Arrival != order[j].Arrival {
			return order[i].Arrival < order[j].Arrival
		}
		return order[i].SourceOrder < order[j].SourceOrder
	})
	return &Workload{Procs: procs, ArrivalOrder: order}
}

// Clone returns an independent copy of the workload, every descriptor reset
// to its NEW state. The three policies run on separate clones so that one
// simulation's progress can never leak into another's.
func (w *Workload) Clone() *Workload {
	byOld := make(map[*Descriptor]*Descriptor, len(w.Procs))
	procs := make([]*Descriptor, len(w.Procs))
	for i, d := range w.Procs {
		nd := d.clone()
		procs[i] = nd
		byOld[d] = nd
	}
	order := make([]*Descriptor, len(w.ArrivalOrder))
	for i, d := range w.ArrivalOrder {
		order[i] = byOld[d]
	}
	return &Workload{Procs: procs, ArrivalOrder: order}
}
