package response

import (
	"time"

	"github.com/mcoot/teamalloc/internal/model"
)

// Team is one team of a run with its members in assignment order
type Team struct {
	Label    string   `json:"label"`
	Capacity int      `json:"capacity"`
	Members  []string `json:"members"`
}

// Pair is an inviter and guest
type Pair struct {
	Inviter string `json:"inviter"`
	Guest   string `json:"guest"`
}

// Violation is one validation failure
type Violation struct {
	Kind     string `json:"kind"`
	Team     string `json:"team,omitempty"`
	Pair     *Pair  `json:"pair,omitempty"`
	Person   string `json:"person,omitempty"`
	Expected int    `json:"expected,omitempty"`
	Actual   int    `json:"actual,omitempty"`
	Message  string `json:"message"`
}

// TeamStats is one row of the run summary
type TeamStats struct {
	Team          string   `json:"team"`
	Members       int      `json:"members"`
	Compagnons    int      `json:"compagnons"`
	DivisionCount int      `json:"division_count"`
	Divisions     []string `json:"divisions"`
	Pairs         int      `json:"pairs"`
	PairDeviation int      `json:"pair_deviation"`
}

// Run is a full allocation run
type Run struct {
	ID         string       `json:"id"`
	CreatedAt  time.Time    `json:"created_at"`
	Status     string       `json:"status"`
	Seed       uint64       `json:"seed"`
	Layout     model.Layout `json:"layout"`
	Valid      bool         `json:"valid"`
	Teams      []Team       `json:"teams"`
	Orphaned   []Pair       `json:"orphaned"`
	Violations []Violation  `json:"violations"`
	Stats      []TeamStats  `json:"stats"`
}

// RunSummary is the list view of a run
type RunSummary struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Status     string    `json:"status"`
	Seed       uint64    `json:"seed"`
	People     int       `json:"people"`
	Teams      int       `json:"teams"`
	Valid      bool      `json:"valid"`
	Violations int       `json:"violations"`
}

// RunList wraps the list of runs
type RunList struct {
	Runs []RunSummary `json:"runs"`
}

// PairFromModel converts model.Pair
func PairFromModel(p model.Pair) Pair {
	return Pair{Inviter: string(p.Inviter), Guest: string(p.Guest)}
}

// ViolationFromModel converts model.Violation
func ViolationFromModel(v model.Violation) Violation {
	out := Violation{
		Kind:     string(v.Kind),
		Person:   string(v.Person),
		Expected: v.Expected,
		Actual:   v.Actual,
		Message:  v.Message,
	}
	if v.Team != nil {
		out.Team = v.Team.Label()
	}
	if v.Pair != nil {
		p := PairFromModel(*v.Pair)
		out.Pair = &p
	}
	return out
}

// TeamStatsFromModel converts model.TeamStats
func TeamStatsFromModel(s model.TeamStats) TeamStats {
	return TeamStats{
		Team:          s.Team.Label(),
		Members:       s.Members,
		Compagnons:    s.Compagnons,
		DivisionCount: s.DivisionCount,
		Divisions:     s.Divisions,
		Pairs:         s.Pairs,
		PairDeviation: s.PairDeviation,
	}
}

// TeamsFromModel groups the run's people by team, in roster order. Every
// team of the layout is listed, including empty ones.
func TeamsFromModel(layout model.Layout, people []model.Person, assignment model.Assignment) []Team {
	teams := make([]Team, layout.TeamCount())
	for i := range teams {
		id := model.TeamID(i)
		teams[i] = Team{Label: id.Label(), Capacity: layout.Capacity(id), Members: []string{}}
	}
	for _, p := range people {
		id, ok := assignment[p.ID]
		if !ok || !layout.Contains(id) {
			continue
		}
		teams[id].Members = append(teams[id].Members, string(p.ID))
	}
	return teams
}

// RunFromModel converts model.Run
func RunFromModel(r *model.Run) Run {
	orphaned := make([]Pair, len(r.Orphaned))
	for i, p := range r.Orphaned {
		orphaned[i] = PairFromModel(p)
	}

	violations := make([]Violation, len(r.Report.Violations))
	for i, v := range r.Report.Violations {
		violations[i] = ViolationFromModel(v)
	}

	stats := make([]TeamStats, len(r.Stats))
	for i, s := range r.Stats {
		stats[i] = TeamStatsFromModel(s)
	}

	return Run{
		ID:         string(r.ID),
		CreatedAt:  r.CreatedAt,
		Status:     string(r.Status),
		Seed:       r.Seed,
		Layout:     r.Layout,
		Valid:      r.Report.Valid,
		Teams:      TeamsFromModel(r.Layout, r.People, r.Assignment),
		Orphaned:   orphaned,
		Violations: violations,
		Stats:      stats,
	}
}

// RunSummaryFromModel converts model.Run to its list view
func RunSummaryFromModel(r *model.Run) RunSummary {
	return RunSummary{
		ID:         string(r.ID),
		CreatedAt:  r.CreatedAt,
		Status:     string(r.Status),
		Seed:       r.Seed,
		People:     len(r.People),
		Teams:      r.Layout.TeamCount(),
		Valid:      r.Report.Valid,
		Violations: len(r.Report.Violations),
	}
}
