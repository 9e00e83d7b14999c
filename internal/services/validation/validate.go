package validation

import (
	"fmt"
	"sort"

	"github.com/mcoot/teamalloc/internal/model"
)

// Validate checks a completed assignment against the team layout and the
// pairing constraint. Every check runs; nothing is repaired.
func Validate(roster *model.Roster, pairs []model.Pair, layout model.Layout, assignment model.Assignment) model.ValidationReport {
	var violations []model.Violation
	violations = append(violations, checkComplete(roster, assignment)...)
	violations = append(violations, checkCapacities(roster, layout, assignment)...)
	violations = append(violations, checkPairs(pairs, assignment)...)

	return model.ValidationReport{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}

// checkComplete reports everyone without a team
func checkComplete(roster *model.Roster, assignment model.Assignment) []model.Violation {
	var out []model.Violation
	for _, p := range roster.People() {
		if _, ok := assignment[p.ID]; !ok {
			out = append(out, model.Violation{
				Kind:    model.ViolationUnassigned,
				Person:  p.ID,
				Message: fmt.Sprintf("%s has no team", p.ID),
			})
		}
	}
	return out
}

// checkCapacities compares realized team count and sizes with the layout.
// Sizes must match capacity exactly.
func checkCapacities(roster *model.Roster, layout model.Layout, assignment model.Assignment) []model.Violation {
	var out []model.Violation

	sizes := make(map[model.TeamID]int)
	for _, p := range roster.People() {
		if team, ok := assignment[p.ID]; ok {
			sizes[team]++
		}
	}

	realized := make([]model.TeamID, 0, len(sizes))
	for team := range sizes {
		realized = append(realized, team)
	}
	sort.Slice(realized, func(i, j int) bool { return realized[i] < realized[j] })

	for _, team := range realized {
		if !layout.Contains(team) {
			out = append(out, model.Violation{
				Kind:    model.ViolationUnknownTeam,
				Team:    &team,
				Actual:  sizes[team],
				Message: fmt.Sprintf("%s is not part of the layout", team.Label()),
			})
		}
	}

	if len(realized) != layout.TeamCount() {
		out = append(out, model.Violation{
			Kind:     model.ViolationTeamCount,
			Expected: layout.TeamCount(),
			Actual:   len(realized),
			Message:  fmt.Sprintf("%d teams created instead of %d", len(realized), layout.TeamCount()),
		})
	}

	for i := 0; i < layout.TeamCount(); i++ {
		team := model.TeamID(i)
		want := layout.Capacity(team)
		if got := sizes[team]; got != want {
			out = append(out, model.Violation{
				Kind:     model.ViolationTeamSize,
				Team:     &team,
				Expected: want,
				Actual:   got,
				Message:  fmt.Sprintf("%s has %d members instead of %d", team.Label(), got, want),
			})
		}
	}

	return out
}

// checkPairs reports pairs whose members sit on different teams. Pairs with
// an unassigned member are already covered by checkComplete.
func checkPairs(pairs []model.Pair, assignment model.Assignment) []model.Violation {
	var out []model.Violation
	for _, pair := range pairs {
		inviterTeam, ok1 := assignment[pair.Inviter]
		guestTeam, ok2 := assignment[pair.Guest]
		if !ok1 || !ok2 || inviterTeam == guestTeam {
			continue
		}
		out = append(out, model.Violation{
			Kind:    model.ViolationPairSplit,
			Pair:    &pair,
			Message: fmt.Sprintf("pair %s is split between %s and %s", pair, inviterTeam.Label(), guestTeam.Label()),
		})
	}
	return out
}
