// Package policy selects, for one of the three supported scheduling
// algorithms, which ready process runs next and whether an admission event
// should force the currently-running process back onto the ready queue.
//
// The shape is lifted from how the teacher package picks a telemetry
// backend: a small Kind enum with a String method, and a constructor that
// resolves the enum to a concrete strategy value. Here the "backend" is an
// algorithm (SJF, SJFP, RR) instead of a cgroup version, and there is no
// detection step — the caller names the policy it wants.
package policy
