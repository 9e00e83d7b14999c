package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/teamalloc/internal/api/response"
	"github.com/mcoot/teamalloc/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// CheckResult is the outcome of validating an existing assignment
type CheckResult struct {
	Report model.ValidationReport `json:"report"`
	Stats  []model.TeamStats      `json:"stats,omitempty"`
}

// HealthResult is the server health response
type HealthResult struct {
	Status string `json:"status"`
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a note for humans; JSON output carries data only
func (o *Output) PrintMessage(msg string) {
	if o.format != OutputJSON {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *model.Run:
		o.printRun(v)
	case CheckResult:
		o.printReport(v.Report)
		if len(v.Stats) > 0 {
			o.printStats(v.Stats)
		}
	case []model.TeamStats:
		o.printStats(v)
	case response.Run:
		o.printRemoteRun(v)
	case response.RunList:
		o.printRunList(v)
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printRun(r *model.Run) {
	fmt.Fprintf(o.w, "Run: %s\n", r.ID)
	fmt.Fprintf(o.w, "Status: %s\n", r.Status)
	fmt.Fprintf(o.w, "Seed: %d\n", r.Seed)
	fmt.Fprintf(o.w, "People: %d in %d teams\n", len(r.People), r.Layout.TeamCount())

	if len(r.Orphaned) > 0 {
		fmt.Fprintln(o.w, "Pairs that could not be seated together:")
		for _, p := range r.Orphaned {
			fmt.Fprintf(o.w, "  - %s\n", p)
		}
	}

	o.printReport(r.Report)
}

func (o *Output) printReport(r model.ValidationReport) {
	if r.Valid {
		fmt.Fprintln(o.w, "Validation: OK")
		return
	}

	fmt.Fprintf(o.w, "Validation: FAILED (%d violations)\n", len(r.Violations))
	for _, v := range r.Violations {
		fmt.Fprintf(o.w, "  [%s] %s\n", v.Kind, v.Message)
	}
}

func (o *Output) printStats(rows []model.TeamStats) {
	fmt.Fprintf(o.w, "\n%-8s %7s %10s %9s %5s %9s  %s\n", "Team", "Members", "Compagnons", "Divisions", "Pairs", "Deviation", "Division list")
	for _, s := range rows {
		fmt.Fprintf(o.w, "%-8s %7d %10d %9d %5d %+9d  %s\n",
			s.Team.Label(), s.Members, s.Compagnons, s.DivisionCount, s.Pairs, s.PairDeviation,
			strings.Join(s.Divisions, ", "))
	}
}

func (o *Output) printRemoteRun(r response.Run) {
	fmt.Fprintf(o.w, "Run: %s\n", r.ID)
	fmt.Fprintf(o.w, "Created: %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(o.w, "Status: %s\n", r.Status)
	fmt.Fprintf(o.w, "Seed: %d\n", r.Seed)
	fmt.Fprintf(o.w, "Valid: %t\n", r.Valid)

	for _, p := range r.Orphaned {
		fmt.Fprintf(o.w, "Orphaned pair: %s-%s\n", p.Inviter, p.Guest)
	}
	for _, v := range r.Violations {
		fmt.Fprintf(o.w, "  [%s] %s\n", v.Kind, v.Message)
	}

	fmt.Fprintln(o.w, "\nTeams:")
	for _, t := range r.Teams {
		fmt.Fprintf(o.w, "  %s (%d/%d): %s\n", t.Label, len(t.Members), t.Capacity, strings.Join(t.Members, ", "))
	}
}

func (o *Output) printRunList(l response.RunList) {
	if len(l.Runs) == 0 {
		fmt.Fprintln(o.w, "No runs")
		return
	}
	for _, r := range l.Runs {
		valid := "valid"
		if !r.Valid {
			valid = fmt.Sprintf("%d violations", r.Violations)
		}
		fmt.Fprintf(o.w, "%s  %s  %-8s  %d people  %d teams  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Status, r.People, r.Teams, valid)
	}
}
