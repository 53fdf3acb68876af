package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/glahaie/schedsim/internal/cli"
	"github.com/glahaie/schedsim/internal/parser"
	"github.com/glahaie/schedsim/internal/present"
	"github.com/glahaie/schedsim/internal/supervisor"
)

type opts struct {
	quantum  int
	jsonPath string
	htmlPath string
	pretty   bool
	dumpYAML bool
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "schedsim <file> <quantum>",
		Short: "Discrete-time CPU scheduling simulator",
		Long: `schedsim replays a workload file through three scheduling policies —
Shortest-Job-First (non-preemptive and preemptive) and Round-Robin — and
prints each policy's CPU-ownership timeline.

Workload format: one process per line, whitespace separated,
"pid arrival burst burst...", with CPU bursts positive and I/O-blocking
bursts negative.

Examples:
  schedsim workload.txt 2
  schedsim --json out.json --html report.html workload.txt 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args)
		},
	}

	root.Flags().StringVar(&o.jsonPath, "json", "", "write a JSON export of all three timelines")
	root.Flags().StringVar(&o.htmlPath, "html", "", "write a single-file HTML report")
	root.Flags().BoolVar(&o.pretty, "pretty", false, "also print a tabwriter-aligned table per policy")
	root.Flags().BoolVar(&o.dumpYAML, "dump-yaml", false, "dump the parsed workload as YAML instead of simulating")

	if err := root.Execute(); err != nil {
		cli.Fatalf(err.Error())
	}
}

func run(o opts, args []string) error {
	path, quantumArg := args[0], args[1]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening workload file: %w", err)
	}
	defer f.Close()

	w, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing workload: %w", err)
	}

	if o.dumpYAML {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(w.Dump())
	}

	quantum, err := parsePositiveInt(quantumArg)
	if err != nil {
		return fmt.Errorf("parsing quantum: %w", err)
	}

	results, err := supervisor.Run(w, quantum)
	if err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}

	if err := present.Stream(os.Stdout, results); err != nil {
		return fmt.Errorf("writing timeline: %w", err)
	}

	if o.pretty {
		if err := present.Pretty(os.Stdout, results); err != nil {
			return fmt.Errorf("writing pretty table: %w", err)
		}
	}
	if o.jsonPath != "" {
		if err := writeTo(o.jsonPath, func(f *os.File) error { return present.JSON(f, results) }); err != nil {
			return fmt.Errorf("writing json: %w", err)
		}
	}
	if o.htmlPath != "" {
		if err := writeTo(o.htmlPath, func(f *os.File) error { return present.HTML(f, results) }); err != nil {
			return fmt.Errorf("writing html: %w", err)
		}
	}

	return nil
}

func writeTo(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render(f)
}

func parsePositiveInt(s string) (int, error) {
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if v < 1 {
		return 0, fmt.Errorf("quantum must be >= 1, got %d", v)
	}
	return v, nil
}
