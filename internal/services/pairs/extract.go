package pairs

import (
	"fmt"

	"github.com/mcoot/teamalloc/internal/model"
)

// Extract derives the inviter/guest pairs from the roster, in roster order.
// A person may belong to at most one pair.
func Extract(roster *model.Roster) ([]model.Pair, error) {
	var pairs []model.Pair
	member := make(map[model.PersonID]model.Pair)

	claim := func(id model.PersonID, pair model.Pair) error {
		if prev, taken := member[id]; taken {
			return fmt.Errorf("%w: %s is in %s and %s", model.ErrPersonInMultiplePairs, id, prev, pair)
		}
		member[id] = pair
		return nil
	}

	for _, p := range roster.People() {
		if !p.IsInviter() {
			continue
		}
		if p.GuestID == p.ID {
			return nil, fmt.Errorf("%w: %s", model.ErrSelfInvite, p.ID)
		}
		if _, ok := roster.Get(p.GuestID); !ok {
			return nil, fmt.Errorf("%w: %s invites %s", model.ErrUnknownGuest, p.ID, p.GuestID)
		}

		pair := model.Pair{Inviter: p.ID, Guest: p.GuestID}
		if err := claim(pair.Inviter, pair); err != nil {
			return nil, err
		}
		if err := claim(pair.Guest, pair); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}
