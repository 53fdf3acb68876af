// Package parser turns the workload text format into the in-memory
// workload.Workload the engine drives, supplementing the "external
// collaborator" the core specification fixes the output contract for but
// scopes the format itself out of.
//
// One process per non-blank line: "pid arrival burst burst...", whitespace
// separated, mirroring the original C program's lireFichier. Consecutive
// same-signed burst values are merged into a single burst, same as the
// source; unlike the source, malformed input returns a sentinel error
// instead of calling exit(), since this is a library boundary, not a CLI.
package parser
