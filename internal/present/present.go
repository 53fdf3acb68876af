package present

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"text/tabwriter"

	"github.com/glahaie/schedsim/internal/supervisor"
)

// Stream writes the bit-exact grammar of spec.md §6.2 for every policy run,
// concatenated in the fixed SJF/SJFP/RR order — the default, always-on
// output of the schedsim CLI.
func Stream(w io.Writer, results *supervisor.Results) error {
	for _, run := range results.Runs {
		if _, err := w.Write(run.Stream); err != nil {
			return err
		}
	}
	return nil
}

// jsonInterval mirrors engine.Interval for the --json export, trading the
// internal Idle bool for an explicit "kind" the way the teacher's row type
// (cmd/consumption/main.go) names every exported field for a stable wire
// shape instead of reusing an internal struct verbatim.
type jsonInterval struct {
	Kind  string `json:"kind"`
	PID   int    `json:"pid,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type jsonPolicy struct {
	Policy    string         `json:"policy"`
	Quantum   int            `json:"quantum,omitempty"`
	Intervals []jsonInterval `json:"intervals"`
}

// JSON writes one JSON array entry per policy with its decoded interval
// list, grounded on cmd/consumption/main.go's streamed JSON array writer.
func JSON(w io.Writer, results *supervisor.Results) error {
	out := make([]jsonPolicy, 0, len(results.Runs))
	for _, run := range results.Runs {
		jp := jsonPolicy{Policy: run.Kind.String(), Quantum: run.Quantum}
		for _, iv := range run.Intervals {
			ji := jsonInterval{Start: iv.Start, End: iv.End}
			if iv.Idle {
				ji.Kind = "idle"
			} else {
				ji.Kind = "pid"
				ji.PID = iv.PID
			}
			jp.Intervals = append(jp.Intervals, ji)
		}
		out = append(out, jp)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Pretty renders a tabwriter-aligned interval table per policy, the
// terminal-friendly alternative to the raw grammar, grounded on
// cmd/consumption/main.go's newTable/printTableHeader/printTableRow.
func Pretty(w io.Writer, results *supervisor.Results) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, run := range results.Runs {
		header := run.Kind.String()
		if run.Kind.String() == "RR" {
			header = fmt.Sprintf("RR %d", run.Quantum)
		}
		fmt.Fprintf(tw, "POLICY %s\n", header)
		fmt.Fprintln(tw, "SLOT\tSTART\tEND\tTICKS")
		for _, iv := range run.Intervals {
			slot := fmt.Sprintf("PID %d", iv.PID)
			if iv.Idle {
				slot = "IDLE"
			}
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", slot, iv.Start, iv.End, iv.End-iv.Start)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// HTML writes a single-file report: one Gantt-style interval table per
// policy, grounded on cmd/consumption/main.go's writeHTML/tpl.
func HTML(w io.Writer, results *supervisor.Results) error {
	return htmlTpl.Execute(w, results)
}

var htmlTpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"sub": func(a, b int) int { return a - b },
}).Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Scheduler Simulation Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px;margin-bottom:24px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
.idle{color:#888;font-style:italic}
</style>
<h1>Scheduler Simulation Report</h1>
{{range .Runs}}
<h2>{{.Kind}}{{if .Quantum}} (quantum {{.Quantum}}){{end}}</h2>
<table>
<thead><tr><th>slot</th><th>start</th><th>end</th><th>ticks</th></tr></thead>
<tbody>
{{range .Intervals}}
<tr{{if .Idle}} class="idle"{{end}}>
<td>{{if .Idle}}IDLE{{else}}PID {{.PID}}{{end}}</td>
<td>{{.Start}}</td>
<td>{{.End}}</td>
<td>{{sub .End .Start}}</td>
</tr>
{{end}}
</tbody>
</table>
{{end}}
</html>`))
