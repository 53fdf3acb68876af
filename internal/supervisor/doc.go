// Package supervisor fans the three policies out for concurrent execution
// and collects their output streams back into the fixed presentation order
// SJF, SJFP, RR (spec.md §1, §6.4). The original program does this with one
// fork()+pipe() per policy (ordon.c:138-169); a single Go process has no
// need for OS-process isolation to get the same non-interference guarantee
// — each policy already runs against its own workload.Workload.Clone, so a
// goroutine per policy with a sync.WaitGroup is the direct, idiomatic
// replacement, not a library-shaped gap.
package supervisor
