package engine

import (
	"fmt"
	"io"
	"sort"

	"github.com/glahaie/schedsim/internal/policy"
	"github.com/glahaie/schedsim/internal/queue"
	"github.com/glahaie/schedsim/internal/workload"
)

// Interval is one maximal, contiguous span during which a single process
// (or nothing) owned the CPU.
type Interval struct {
	Idle  bool
	PID   int
	Start int
	End   int
}

// Run advances w through one full simulation under pol and returns the
// emitted interval list together with summary statistics. w is mutated in
// place — callers that need to run more than one policy over the same
// workload must pass distinct workload.Workload.Clone results.
//
// The loop below follows the six phases of the tick engine exactly in the
// order they are specified: admit arrivals, advance blocked, advance
// running, merge staging into ready, dispatch, advance the clock. A
// process dispatched in the dispatch phase of tick t is not decremented
// until the advance-running phase of tick t+1 — that one-tick lag between
// "selected" and "first charged tick" is what makes run_slice_start and the
// emitted interval ends line up with the number of ticks actually spent.
func Run(w *workload.Workload, pol policy.Policy, quantum int) ([]Interval, *Stats, error) {
	if pol.QuantumEnforced() && quantum < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadQuantum, quantum)
	}

	ready := queue.New()
	blocked := queue.New()
	arrival := w.ArrivalOrder
	arrivalPos := 0

	var intervals []Interval
	stats := newStats()

	var running *workload.Descriptor
	idle := false
	idleStart := 0
	t := 0

	for arrivalPos < len(arrival) || !ready.IsEmpty() || !blocked.IsEmpty() || running != nil {
		var newReady []*workload.Descriptor
		preemption := false

		// Phase 1: admit arrivals.
		for arrivalPos < len(arrival) && arrival[arrivalPos].Arrival <= t {
			p := arrival[arrivalPos]
			arrivalPos++
			if p.HeadKind() == workload.IO {
				p.SetState(workload.Blocked)
				blocked.Append(p)
			} else {
				p.SetState(workload.Ready)
				newReady = append(newReady, p)
				if pol.Kind() == policy.SJFP {
					preemption = true
				}
			}
		}

		// Phase 2: advance blocked.
		for _, p := range append([]*workload.Descriptor(nil), blocked.Items()...) {
			if !p.Tick() {
				continue
			}
			blocked.RemoveByIdentity(p)
			if p.Terminated() {
				p.SetState(workload.Terminated)
				continue
			}
			p.SetState(workload.Ready)
			newReady = append(newReady, p)
			if pol.Kind() == policy.SJFP {
				preemption = true
			}
		}

		// Phase 3: advance running.
		var prior *workload.Descriptor
		if running != nil {
			consumed := running.Tick()
			running.IncQuantum()
			switch {
			case consumed && running.Terminated():
				running.SetState(workload.Terminated)
				prior, running = running, nil
			case consumed:
				running.SetState(workload.Blocked)
				running.ResetQuantum()
				blocked.Append(running)
				prior, running = running, nil
			case pol.QuantumEnforced() && running.QuantumUsed() >= quantum:
				running.SetState(workload.Ready)
				running.ResetQuantum()
				newReady = append(newReady, running)
				prior, running = running, nil
			case pol.Kind() == policy.SJFP && preemption:
				running.SetState(workload.Ready)
				running.ResetQuantum()
				newReady = append(newReady, running)
				prior, running = running, nil
			}
		}

		// Phase 4: merge staging into ready. Only Round-Robin's FIFO
		// order is externally observable, so only RR needs the
		// source-order re-sort when several processes arrive together.
		if pol.Kind() == policy.RR && len(newReady) > 1 {
			sort.SliceStable(newReady, func(i, j int) bool {
				return newReady[i].SourceOrder < newReady[j].SourceOrder
			})
		}
		for _, p := range newReady {
			ready.Append(p)
		}

		// Phase 5: dispatch.
		if running == nil {
			switch {
			case ready.IsEmpty():
				if !idle {
					idleStart = t
					idle = true
				}
				if prior != nil {
					intervals = append(intervals, Interval{PID: prior.PID, Start: prior.RunSliceStart(), End: t})
					stats.recordRunning(prior.PID, t-prior.RunSliceStart())
				}
			default:
				if idle {
					intervals = append(intervals, Interval{Idle: true, Start: idleStart, End: t})
					stats.IdleTicks += t - idleStart
					idle = false
				}
				next := pol.Select(ready)
				next.SetState(workload.Running)
				// Re-selecting prior continues its slice: no interval is
				// emitted and its run_slice_start is kept.
				if prior != next {
					if prior != nil {
						intervals = append(intervals, Interval{PID: prior.PID, Start: prior.RunSliceStart(), End: t})
						stats.recordRunning(prior.PID, t-prior.RunSliceStart())
					}
					next.SetRunSliceStart(t)
				}
				running = next
			}
		}

		t++
	}

	// The loop condition includes "running != nil", so the loop can only
	// exit with running already nil, and whatever interval that closed is
	// always emitted inline by phase 5 in the same tick. A trailing open
	// IDLE span, by contrast, is never flushed: there is no future event
	// to bound it, so the stream simply ends at the last interval it did
	// emit.
	if running != nil {
		panic("engine: simulation loop exited with a process still running")
	}
	if len(intervals) > 0 {
		stats.clock = intervals[len(intervals)-1].End
	}

	return intervals, stats, nil
}

// Simulate is the engine's single entry point: it runs w to completion
// under pol (quantum honoured only when pol.QuantumEnforced()) and writes
// the bit-exact timeline grammar to sink.
func Simulate(w *workload.Workload, pol policy.Policy, quantum int, sink io.Writer) error {
	intervals, _, err := Run(w, pol, quantum)
	if err != nil {
		return err
	}
	return WriteTimeline(sink, pol.Kind(), quantum, intervals)
}

// WriteTimeline renders intervals in the fixed grammar:
//
//	"Resultat du processus pour: " policy_name "\n"
//	("PID " pid " : " start "-" end "\n" | "IDLE : " start "-" end "\n")*
func WriteTimeline(sink io.Writer, kind policy.Kind, quantum int, intervals []Interval) error {
	header := kind.String()
	if kind == policy.RR {
		header = fmt.Sprintf("RR %d", quantum)
	}
	if _, err := fmt.Fprintf(sink, "Resultat du processus pour: %s\n", header); err != nil {
		return err
	}
	for _, iv := range intervals {
		var err error
		if iv.Idle {
			_, err = fmt.Fprintf(sink, "IDLE : %d-%d\n", iv.Start, iv.End)
		} else {
			_, err = fmt.Fprintf(sink, "PID %d : %d-%d\n", iv.PID, iv.Start, iv.End)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
