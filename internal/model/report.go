package model

// ViolationKind identifies which invariant a violation breaks
type ViolationKind string

const (
	ViolationUnassigned  ViolationKind = "unassigned"
	ViolationTeamCount   ViolationKind = "team_count"
	ViolationTeamSize    ViolationKind = "team_size"
	ViolationUnknownTeam ViolationKind = "unknown_team"
	ViolationPairSplit   ViolationKind = "pair_split"
)

// Violation is one broken invariant found by the validator
type Violation struct {
	Kind     ViolationKind `json:"kind"`
	Team     *TeamID       `json:"team,omitempty"`
	Pair     *Pair         `json:"pair,omitempty"`
	Person   PersonID      `json:"person,omitempty"`
	Expected int           `json:"expected,omitempty"`
	Actual   int           `json:"actual,omitempty"`
	Message  string        `json:"message"`
}

// ValidationReport aggregates every violation found
type ValidationReport struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

// ByKind returns the violations of one kind
func (r ValidationReport) ByKind(kind ViolationKind) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Kind == kind {
			out = append(out, v)
		}
	}
	return out
}

// TeamStats is one row of the summary table
type TeamStats struct {
	Team          TeamID   `json:"team"`
	Members       int      `json:"members"`
	Compagnons    int      `json:"compagnons"`
	DivisionCount int      `json:"division_count"`
	Divisions     []string `json:"divisions"`
	Pairs         int      `json:"pairs"`
	PairDeviation int      `json:"pair_deviation"`
}
