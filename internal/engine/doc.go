// Package engine is the scheduler simulation core: a single event loop,
// parameterised over a policy.Policy, that advances a virtual clock one
// tick at a time and emits the resulting timeline.
//
// Run executes the six ordered phases of one tick (admit arrivals, advance
// blocked, advance running, merge staging into ready, dispatch, advance the
// clock) until every process has terminated, and returns the interval list
// plus summary Stats. Simulate wraps Run with the bit-exact text format
// described by the timeline grammar and writes it to a sink.
//
// The engine is strictly single-threaded and synchronous: there is no
// suspension inside a tick, and ordering between phases is part of the
// observable contract. Running the three policies concurrently (one
// goroutine per policy, each against its own workload.Workload.Clone) is
// the supervisor's concern, not this package's.
package engine
