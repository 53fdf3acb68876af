// Package present renders a supervisor.Results in the output formats the
// original distillation scoped out as "presentation". The default,
// bit-exact grammar stream (spec.md §6.2) is always available unchanged;
// --json, --html and --pretty are additive views over the same interval
// data, grounded on the teacher's own JSON-array writer, html/template
// report and tabwriter table (cmd/consumption/main.go).
package present
