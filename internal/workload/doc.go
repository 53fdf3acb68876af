// Package workload holds the in-memory description of a scheduling run: the
// immutable process descriptors produced by the parser, and the small set of
// mutable progress fields the tick engine advances on each descriptor.
//
// Overview
//
//   - Descriptor: one process. Arrival, PID and SourceOrder never change once
//     parsed; Bursts is consumed head-first as the engine advances the
//     process through RUNNING and BLOCKED.
//
//   - Workload: the full set of descriptors for one run, exposed in two
//     views — Procs (source order, used for tie-breaking) and ArrivalOrder
//     (sorted by arrival then SourceOrder, used to admit processes as the
//     clock advances).
//
//   - Clone: the three policies must not share mutable state, so the
//     supervisor clones a Workload once per policy before simulating. Clone
//     resets every descriptor's progress fields back to NEW, exactly as if
//     freshly parsed.
package workload
