package model

import (
	"fmt"
	"strconv"
	"strings"
)

const teamLabelPrefix = "Team_"

// TeamID is the zero-based index of a team
type TeamID int

// Label returns the display name, e.g. Team_01 for index 0
func (id TeamID) Label() string {
	return fmt.Sprintf("%s%02d", teamLabelPrefix, int(id)+1)
}

func (id TeamID) String() string {
	return id.Label()
}

// MarshalText encodes the team as its label
func (id TeamID) MarshalText() ([]byte, error) {
	return []byte(id.Label()), nil
}

// UnmarshalText decodes a team label
func (id *TeamID) UnmarshalText(text []byte) error {
	parsed, err := ParseTeamLabel(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseTeamLabel converts a Team_NN label back to its TeamID
func ParseTeamLabel(label string) (TeamID, error) {
	num, ok := strings.CutPrefix(strings.TrimSpace(label), teamLabelPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTeamLabel, label)
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTeamLabel, label)
	}
	return TeamID(n - 1), nil
}

// Team is a fixed-capacity group filled in assignment order
type Team struct {
	ID       TeamID
	Capacity int
	Members  []*Person
}

// Size returns the current member count
func (t *Team) Size() int {
	return len(t.Members)
}

// Remaining returns the number of free slots
func (t *Team) Remaining() int {
	return t.Capacity - len(t.Members)
}

// HasRoom reports whether n more people fit
func (t *Team) HasRoom(n int) bool {
	return n <= t.Remaining()
}

// PairCount counts the inviters on the team
func (t *Team) PairCount() int {
	return CountInviters(t.Members)
}

// MemberIDs returns member IDs in assignment order
func (t *Team) MemberIDs() []PersonID {
	ids := make([]PersonID, len(t.Members))
	for i, m := range t.Members {
		ids[i] = m.ID
	}
	return ids
}

func (t *Team) add(people ...*Person) {
	t.Members = append(t.Members, people...)
}

// CountInviters counts the inviters among the given people
func CountInviters(people []*Person) int {
	n := 0
	for _, p := range people {
		if p.IsInviter() {
			n++
		}
	}
	return n
}
