package policy

import (
	"errors"
	"fmt"

	"github.com/glahaie/schedsim/internal/queue"
	"github.com/glahaie/schedsim/internal/workload"
)

// ErrUnknownKind is returned by New for a Kind outside {SJF, SJFP, RR}.
var ErrUnknownKind = errors.New("policy: unknown kind")

// Kind names one of the three supported scheduling algorithms.
type Kind int

const (
	SJF Kind = iota
	SJFP
	RR
)

func (k Kind) String() string {
	switch k {
	case SJF:
		return "SJF"
	case SJFP:
		return "SJFP"
	case RR:
		return "RR"
	default:
		return "unknown"
	}
}

// Policy is the shared strategy interface the tick engine drives. A Policy
// is stateless: it borrows the ready queue for the duration of one call and
// retains nothing across calls.
type Policy interface {
	// Kind reports which algorithm this value implements.
	Kind() Kind

	// Select removes and returns the next process to run from ready.
	// ready must be non-empty; callers check IsEmpty before calling.
	Select(ready *queue.Queue) *workload.Descriptor

	// PreemptsOnAdmission reports whether a process newly admitted to
	// ready this tick (by arrival, unblock, or quantum expiry) may force
	// the current RUNNING process back to READY this same tick.
	PreemptsOnAdmission() bool

	// QuantumEnforced reports whether a RUNNING process is bounded to a
	// fixed number of consecutive ticks before forced return to READY.
	QuantumEnforced() bool
}

// New resolves kind to a concrete, stateless Policy value.
func New(kind Kind) (Policy, error) {
	switch kind {
	case SJF:
		return sjfPolicy{preempts: false}, nil
	case SJFP:
		return sjfPolicy{preempts: true}, nil
	case RR:
		return rrPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

// sjfPolicy implements both SJF and SJFP: the selection rule is identical
// (smallest head-burst remaining, ties by source order); only whether a
// new admission preempts the running process differs.
type sjfPolicy struct {
	preempts bool
}

func (p sjfPolicy) Kind() Kind {
	if p.preempts {
		return SJFP
	}
	return SJF
}

func (sjfPolicy) Select(ready *queue.Queue) *workload.Descriptor {
	items := ready.Items()
	best := items[0]
	for _, it := range items[1:] {
		if it.Remaining() < best.Remaining() ||
			(it.Remaining() == best.Remaining() && it.SourceOrder < best.SourceOrder) {
			best = it
		}
	}
	ready.RemoveByIdentity(best)
	return best
}

func (p sjfPolicy) PreemptsOnAdmission() bool { return p.preempts }
func (sjfPolicy) QuantumEnforced() bool       { return false }

// rrPolicy selects FIFO and never preempts on admission; preemption is
// driven purely by quantum expiry, enforced by the tick engine.
type rrPolicy struct{}

func (rrPolicy) Kind() Kind { return RR }

func (rrPolicy) Select(ready *queue.Queue) *workload.Descriptor {
	p, ok := ready.PopHead()
	if !ok {
		panic("policy: Select called on an empty ready queue")
	}
	return p
}

func (rrPolicy) PreemptsOnAdmission() bool { return false }
func (rrPolicy) QuantumEnforced() bool     { return true }
