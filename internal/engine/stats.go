package engine

// Stats accumulates the summary counters the testable properties in the
// specification are phrased against (§8: running-ticks sum, idle-ticks sum,
// final clock value), computed by Run as a side effect of the same bookkeeping
// that produces the interval list rather than by re-scanning it afterwards.
type Stats struct {
	// IdleTicks is the total number of ticks spent in an IDLE interval.
	IdleTicks int

	running map[int]int
	clock   int
}

func newStats() *Stats {
	return &Stats{running: make(map[int]int)}
}

func (s *Stats) recordRunning(pid, ticks int) {
	s.running[pid] += ticks
}

// RunningTicks returns the number of ticks pid spent RUNNING across the run.
func (s *Stats) RunningTicks(pid int) int { return s.running[pid] }

// TotalRunningTicks returns the sum of RUNNING ticks across every process,
// which must equal the sum of positive burst magnitudes in the input.
func (s *Stats) TotalRunningTicks() int {
	total := 0
	for _, v := range s.running {
		total += v
	}
	return total
}

// Clock returns the final tick value at stream end: the end of the last
// emitted interval, or 0 if the run produced no intervals at all.
func (s *Stats) Clock() int { return s.clock }
