package request

import (
	"github.com/mcoot/teamalloc/internal/model"
)

// Person is one roster entry in a request body
type Person struct {
	ID        string `json:"id"`
	GuestID   string `json:"guest_id,omitempty"`
	Division  string `json:"division,omitempty"`
	Compagnon bool   `json:"compagnon"`
}

// CreateAllocationRequest is the request body for running an allocation.
// Layout and Seed fall back to the server's configuration when omitted.
type CreateAllocationRequest struct {
	People []Person      `json:"people"`
	Layout *model.Layout `json:"layout,omitempty"`
	Seed   *uint64       `json:"seed,omitempty"`
}

// ToPeople converts the request roster to model people, keeping order
func (r CreateAllocationRequest) ToPeople() []model.Person {
	people := make([]model.Person, len(r.People))
	for i, p := range r.People {
		people[i] = model.Person{
			ID:          model.PersonID(p.ID),
			GuestID:     model.PersonID(p.GuestID),
			Division:    p.Division,
			IsCompagnon: p.Compagnon,
		}
	}
	return people
}
