package model

import (
	"fmt"
	"sort"
)

// PersonID uniquely identifies a person across the roster
type PersonID string

// Person is one roster entry
type Person struct {
	ID          PersonID `json:"id"`
	Division    string   `json:"division,omitempty"`  // empty when unknown
	IsCompagnon bool     `json:"compagnon"`
	GuestID     PersonID `json:"guest_id,omitempty"` // set only on inviters
}

// IsInviter reports whether the person brings a guest
func (p *Person) IsInviter() bool {
	return p.GuestID != ""
}

// HasDivision reports whether the person has a division label
func (p *Person) HasDivision() bool {
	return p.Division != ""
}

// Pair is an inviter and the guest that must share their team
type Pair struct {
	Inviter PersonID `json:"inviter"`
	Guest   PersonID `json:"guest"`
}

func (p Pair) String() string {
	return fmt.Sprintf("%s-%s", p.Inviter, p.Guest)
}

// Roster is the immutable set of people taking part in an allocation.
// Iteration order is the input order.
type Roster struct {
	people []*Person
	index  map[PersonID]*Person
}

// NewRoster builds a roster, rejecting empty and duplicate identifiers
func NewRoster(people []Person) (*Roster, error) {
	r := &Roster{
		people: make([]*Person, 0, len(people)),
		index:  make(map[PersonID]*Person, len(people)),
	}
	for i := range people {
		p := people[i]
		if p.ID == "" {
			return nil, fmt.Errorf("%w: row %d", ErrEmptyPersonID, i+1)
		}
		if _, exists := r.index[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePerson, p.ID)
		}
		r.people = append(r.people, &p)
		r.index[p.ID] = &p
	}
	return r, nil
}

// People returns every person in roster order
func (r *Roster) People() []*Person {
	return r.people
}

// Get looks a person up by ID
func (r *Roster) Get(id PersonID) (*Person, bool) {
	p, ok := r.index[id]
	return p, ok
}

// Len returns the number of people
func (r *Roster) Len() int {
	return len(r.people)
}

// Divisions returns the sorted distinct non-empty divisions
func (r *Roster) Divisions() []string {
	seen := make(map[string]struct{})
	var divisions []string
	for _, p := range r.people {
		if !p.HasDivision() {
			continue
		}
		if _, ok := seen[p.Division]; ok {
			continue
		}
		seen[p.Division] = struct{}{}
		divisions = append(divisions, p.Division)
	}
	sort.Strings(divisions)
	return divisions
}

// Snapshot returns a copy of the people, used when persisting a run
func (r *Roster) Snapshot() []Person {
	out := make([]Person, len(r.people))
	for i, p := range r.people {
		out[i] = *p
	}
	return out
}
