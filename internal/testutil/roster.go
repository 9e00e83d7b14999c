package testutil

import (
	"fmt"

	"github.com/mcoot/teamalloc/internal/model"
)

// Divisions used by the generated rosters
var Divisions = []string{"Commercial", "Finance", "Logistique", "Production", "RH"}

// ScenarioPeople builds a roster of size people holding pairCount
// inviter/guest pairs. Pair members share a division and are not
// compagnons; singles cycle through Divisions and alternate the flag,
// with every seventh single missing a division.
func ScenarioPeople(size, pairCount int) []model.Person {
	people := make([]model.Person, 0, size)
	for i := 0; i < pairCount; i++ {
		division := Divisions[i%len(Divisions)]
		inviter := model.PersonID(fmt.Sprintf("inv-%03d", i))
		guest := model.PersonID(fmt.Sprintf("gst-%03d", i))
		people = append(people,
			model.Person{ID: inviter, Division: division, GuestID: guest},
			model.Person{ID: guest, Division: division},
		)
	}
	for i := 0; len(people) < size; i++ {
		p := model.Person{
			ID:          model.PersonID(fmt.Sprintf("p-%03d", i)),
			Division:    Divisions[i%len(Divisions)],
			IsCompagnon: i%2 == 0,
		}
		if i%7 == 0 {
			p.Division = ""
		}
		people = append(people, p)
	}
	return people
}

// MustRoster builds a roster or panics; for fixtures known to be valid
func MustRoster(people []model.Person) *model.Roster {
	r, err := model.NewRoster(people)
	if err != nil {
		panic(err)
	}
	return r
}
