package engine

import "errors"

// ErrBadQuantum is returned by Run/Simulate when the policy enforces a
// quantum but the supplied value is not >= 1. This is a caller error (the
// supervisor validates the flag before ever reaching the engine), not a
// simulation-time invariant violation, so it is a sentinel error rather
// than a panic.
var ErrBadQuantum = errors.New("engine: quantum must be >= 1 for a quantum-enforced policy")
