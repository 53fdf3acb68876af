// Package queue provides the ready/blocked process queues the tick engine
// drives. It is deliberately a thin ordered collection, not a priority
// queue: Round-Robin needs FIFO semantics, and the SJF variants perform a
// full linear scan with a comparator on every selection, so there is
// nothing to gain from a heap.
package queue
