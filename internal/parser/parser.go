package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/glahaie/schedsim/internal/workload"
)

type identity struct {
	pid     int
	arrival int
}

// Parse reads the workload text format from r and returns a fully-formed
// Workload, ready for engine.Run. Each non-blank line describes one
// process: whitespace-separated integers "pid arrival burst burst...".
// Consecutive burst values sharing a sign are merged into a single Burst,
// exactly as the original program's line reader does; source_order is the
// 1-based position of the line among process lines (blank lines are
// skipped and do not consume a source_order slot).
func Parse(r io.Reader) (*workload.Workload, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var procs []*workload.Descriptor
	seen := make(map[identity]int) // identity -> line number, for the error message
	sourceOrder := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sourceOrder++

		fields := strings.Fields(line)
		ints := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrNotInteger, f)
			}
			ints = append(ints, v)
		}
		if len(ints) < 3 {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrTooFewFields)
		}

		pid, arrival := ints[0], ints[1]
		if pid < 0 {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrNegativePID)
		}
		if arrival < 0 {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrNegativeArrival)
		}

		id := identity{pid, arrival}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("line %d: %w: (pid=%d, arrival=%d) first seen on line %d",
				lineNo, ErrDuplicateIdentity, pid, arrival, prev)
		}
		seen[id] = lineNo

		bursts, err := mergeBursts(ints[2:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		procs = append(procs, workload.NewDescriptor(pid, arrival, sourceOrder, bursts))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(procs) == 0 {
		return nil, ErrEmptyWorkload
	}

	return workload.New(procs), nil
}

// mergeBursts folds a run of signed integers into alternating CPU/IO
// bursts, merging consecutive values of the same sign into one burst the
// way the source program's neg-flag accumulation loop does.
func mergeBursts(vals []int) ([]workload.Burst, error) {
	var bursts []workload.Burst
	for _, v := range vals {
		if v == 0 {
			return nil, ErrZeroBurst
		}
		kind := workload.CPU
		magnitude := v
		if v < 0 {
			kind = workload.IO
			magnitude = -v
		}
		if n := len(bursts); n > 0 && bursts[n-1].Kind == kind {
			bursts[n-1].Ticks += magnitude
		} else {
			bursts = append(bursts, workload.Burst{Kind: kind, Ticks: magnitude})
		}
	}
	return bursts, nil
}
