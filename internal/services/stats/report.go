package stats

import (
	"sort"

	"github.com/mcoot/teamalloc/internal/model"
)

// Report summarizes every team of the layout: composition, division spread
// and how far its pair count sits from the even share of pairs. The roster
// must already have passed pairs.Extract.
func Report(roster *model.Roster, layout model.Layout, assignment model.Assignment) []model.TeamStats {
	teamCount := layout.TeamCount()
	if teamCount == 0 {
		return nil
	}

	// Every inviter heads exactly one pair once pairs.Extract has accepted the roster
	totalPairs := model.CountInviters(roster.People())
	evenShare := totalPairs / teamCount
	members := assignment.Members(roster)

	out := make([]model.TeamStats, 0, teamCount)
	for i := 0; i < teamCount; i++ {
		team := model.TeamID(i)
		people := members[team]

		row := model.TeamStats{
			Team:      team,
			Members:   len(people),
			Divisions: divisions(people),
			Pairs:     model.CountInviters(people),
		}
		for _, p := range people {
			if p.IsCompagnon {
				row.Compagnons++
			}
		}
		row.DivisionCount = len(row.Divisions)
		row.PairDeviation = row.Pairs - evenShare

		out = append(out, row)
	}
	return out
}

func divisions(people []*model.Person) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range people {
		if !p.HasDivision() {
			continue
		}
		if _, ok := seen[p.Division]; !ok {
			seen[p.Division] = struct{}{}
			out = append(out, p.Division)
		}
	}
	sort.Strings(out)
	return out
}
