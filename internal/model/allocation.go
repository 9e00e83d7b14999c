package model

// Assignment maps every placed person to their team
type Assignment map[PersonID]TeamID

// Members groups the assignment by team, in roster order
func (a Assignment) Members(roster *Roster) map[TeamID][]*Person {
	out := make(map[TeamID][]*Person)
	for _, p := range roster.People() {
		if team, ok := a[p.ID]; ok {
			out[team] = append(out[team], p)
		}
	}
	return out
}

// AllocationStatus describes whether every pair was co-located
type AllocationStatus string

const (
	AllocationStatusComplete AllocationStatus = "complete"
	AllocationStatusPartial  AllocationStatus = "partial" // some pairs orphaned
)

// Allocation is the output of a single allocator run
type Allocation struct {
	Teams      []*Team
	Pairs      []Pair
	Quotas     []int
	Assignment Assignment
	Orphaned   []Pair
	Status     AllocationStatus
}

// Place puts people on a team and records the assignment
func (a *Allocation) Place(team *Team, people ...*Person) {
	team.add(people...)
	for _, p := range people {
		a.Assignment[p.ID] = team.ID
	}
}

// IsAssigned reports whether the person already has a team
func (a *Allocation) IsAssigned(id PersonID) bool {
	_, ok := a.Assignment[id]
	return ok
}
