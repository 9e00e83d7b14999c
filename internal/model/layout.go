package model

import "fmt"

// Layout bounds. Anything larger cannot describe a real event and would
// overflow the capacity arithmetic.
const (
	MaxTeams    = 10_000
	MaxTeamSize = 1_000
)

// Layout describes the team capacity schedule: PrimaryTeams teams of
// PrimarySize followed by SecondaryTeams teams of SecondarySize
type Layout struct {
	PrimaryTeams   int `json:"primary_teams" yaml:"primary_teams"`
	PrimarySize    int `json:"primary_size" yaml:"primary_size"`
	SecondaryTeams int `json:"secondary_teams" yaml:"secondary_teams"`
	SecondarySize  int `json:"secondary_size" yaml:"secondary_size"`
}

// DefaultLayout is 60 teams of 8 plus 2 teams of 7
func DefaultLayout() Layout {
	return Layout{
		PrimaryTeams:   60,
		PrimarySize:    8,
		SecondaryTeams: 2,
		SecondarySize:  7,
	}
}

// TeamCount returns the total number of teams
func (l Layout) TeamCount() int {
	return l.PrimaryTeams + l.SecondaryTeams
}

// Capacity returns the size of the given team, or 0 if it is out of range
func (l Layout) Capacity(id TeamID) int {
	switch {
	case id < 0 || int(id) >= l.TeamCount():
		return 0
	case int(id) < l.PrimaryTeams:
		return l.PrimarySize
	default:
		return l.SecondarySize
	}
}

// Contains reports whether the team exists in this layout
func (l Layout) Contains(id TeamID) bool {
	return id >= 0 && int(id) < l.TeamCount()
}

// TotalCapacity returns the number of seats across all teams
func (l Layout) TotalCapacity() int {
	return l.PrimaryTeams*l.PrimarySize + l.SecondaryTeams*l.SecondarySize
}

// NewTeams creates the empty teams for this layout
func (l Layout) NewTeams() []*Team {
	teams := make([]*Team, l.TeamCount())
	for i := range teams {
		id := TeamID(i)
		teams[i] = &Team{ID: id, Capacity: l.Capacity(id)}
	}
	return teams
}

// Validate checks the layout describes at least one non-empty team
func (l Layout) Validate() error {
	if l.PrimaryTeams < 0 || l.SecondaryTeams < 0 {
		return fmt.Errorf("%w: team counts must not be negative", ErrInvalidLayout)
	}
	if l.PrimaryTeams > MaxTeams || l.SecondaryTeams > MaxTeams || l.TeamCount() > MaxTeams {
		return fmt.Errorf("%w: at most %d teams are allowed", ErrInvalidLayout, MaxTeams)
	}
	if l.PrimarySize > MaxTeamSize || l.SecondarySize > MaxTeamSize {
		return fmt.Errorf("%w: team size must not exceed %d", ErrInvalidLayout, MaxTeamSize)
	}
	if l.TeamCount() == 0 {
		return fmt.Errorf("%w: at least one team is required", ErrInvalidLayout)
	}
	if l.PrimaryTeams > 0 && l.PrimarySize <= 0 {
		return fmt.Errorf("%w: primary_size must be positive", ErrInvalidLayout)
	}
	if l.SecondaryTeams > 0 && l.SecondarySize <= 0 {
		return fmt.Errorf("%w: secondary_size must be positive", ErrInvalidLayout)
	}
	return nil
}
