package allocation

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sort"

	"github.com/mcoot/teamalloc/internal/dependencies/random"
	"github.com/mcoot/teamalloc/internal/model"
	"github.com/mcoot/teamalloc/internal/services/pairs"
	"github.com/mcoot/teamalloc/internal/services/quota"
	"github.com/mcoot/teamalloc/internal/services/scoring"
)

// Quota weights applied on top of the diversity score during pair placement
const (
	QuotaBonus           = 3.0
	QuotaOverflowPenalty = 2.0
)

// Service places a roster into teams. Placement is greedy and never
// revisits a decision: pairs first, then everyone left.
type Service struct {
	scorer scoring.ServiceInterface
	logger *slog.Logger
}

// New creates a new allocation Service
func New(scorer scoring.ServiceInterface, logger *slog.Logger) *Service {
	return &Service{
		scorer: scorer,
		logger: logger,
	}
}

// Allocate assigns every person in roster to a team of layout. rng orders
// the single-placement pass; the same seed gives the same result.
//
// An allocation whose pairs could not all be placed together is returned
// with Status partial and the affected pairs in Orphaned.
func (s *Service) Allocate(roster *model.Roster, layout model.Layout, rng random.Random) (*model.Allocation, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if layout.TotalCapacity() != roster.Len() {
		return nil, fmt.Errorf("%w: %d seats for %d people",
			model.ErrCapacityMismatch, layout.TotalCapacity(), roster.Len())
	}

	extracted, err := pairs.Extract(roster)
	if err != nil {
		return nil, err
	}

	alloc := &model.Allocation{
		Teams:      layout.NewTeams(),
		Pairs:      extracted,
		Quotas:     quota.Plan(len(extracted), layout.TeamCount()),
		Assignment: make(model.Assignment, roster.Len()),
		Status:     model.AllocationStatusComplete,
	}

	s.placePairs(roster, alloc)

	if err := s.placeSingles(roster, alloc, rng); err != nil {
		return nil, err
	}

	if len(alloc.Orphaned) > 0 {
		alloc.Status = model.AllocationStatusPartial
	}

	s.logger.Info("allocation complete",
		slog.Int("people", roster.Len()),
		slog.Int("teams", len(alloc.Teams)),
		slog.Int("pairs", len(alloc.Pairs)),
		slog.Int("orphaned_pairs", len(alloc.Orphaned)),
		slog.String("status", string(alloc.Status)),
	)

	return alloc, nil
}

// pairCandidate is a pair with the static potential used to order placement
type pairCandidate struct {
	inviter    *model.Person
	guest      *model.Person
	divisions  int
	compagnons int
}

// placePairs seats each pair on the best team with two free slots.
// Pairs richest in divisions, then compagnons, go first.
func (s *Service) placePairs(roster *model.Roster, alloc *model.Allocation) {
	candidates := make([]pairCandidate, 0, len(alloc.Pairs))
	for _, pair := range alloc.Pairs {
		inviter, _ := roster.Get(pair.Inviter)
		guest, _ := roster.Get(pair.Guest)
		c := pairCandidate{inviter: inviter, guest: guest}
		for _, p := range []*model.Person{inviter, guest} {
			if p.HasDivision() {
				c.divisions++
			}
			if p.IsCompagnon {
				c.compagnons++
			}
		}
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].divisions != candidates[j].divisions {
			return candidates[i].divisions > candidates[j].divisions
		}
		return candidates[i].compagnons > candidates[j].compagnons
	})

	for _, c := range candidates {
		if alloc.IsAssigned(c.inviter.ID) || alloc.IsAssigned(c.guest.ID) {
			continue
		}

		best := s.bestTeamForPair(alloc, c)
		if best == nil {
			pair := model.Pair{Inviter: c.inviter.ID, Guest: c.guest.ID}
			alloc.Orphaned = append(alloc.Orphaned, pair)
			s.logger.Warn("no team can seat pair together",
				slog.String("inviter", string(pair.Inviter)),
				slog.String("guest", string(pair.Guest)),
			)
			continue
		}

		alloc.Place(best, c.inviter, c.guest)
		s.logger.Debug("pair placed",
			slog.String("inviter", string(c.inviter.ID)),
			slog.String("guest", string(c.guest.ID)),
			slog.String("team", best.ID.Label()),
		)
	}
}

// bestTeamForPair returns the first team with the highest pair score, or
// nil if no team has two free slots
func (s *Service) bestTeamForPair(alloc *model.Allocation, c pairCandidate) *model.Team {
	var best *model.Team
	bestScore := math.Inf(-1)

	for i, team := range alloc.Teams {
		if !team.HasRoom(2) {
			continue
		}

		withInviter := append(slices.Clone(team.Members), c.inviter)
		score := s.scorer.Score(team.Members, c.inviter) + s.scorer.Score(withInviter, c.guest)

		current := team.PairCount()
		target := alloc.Quotas[i]
		if current < target {
			score += QuotaBonus
		}
		if current > target {
			score -= QuotaOverflowPenalty * float64(current-target)
		}

		if score > bestScore {
			best, bestScore = team, score
		}
	}

	return best
}

// placeSingles seats everyone still unassigned, in shuffled order, on the
// best team with a free slot. Smaller teams get a slight edge.
func (s *Service) placeSingles(roster *model.Roster, alloc *model.Allocation, rng random.Random) error {
	var remaining []*model.Person
	for _, p := range roster.People() {
		if !alloc.IsAssigned(p.ID) {
			remaining = append(remaining, p)
		}
	}

	rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})

	for _, p := range remaining {
		var best *model.Team
		bestScore := math.Inf(-1)

		for _, team := range alloc.Teams {
			if !team.HasRoom(1) {
				continue
			}
			score := s.scorer.Score(team.Members, p) + 1/float64(team.Size()+1)
			if score > bestScore {
				best, bestScore = team, score
			}
		}

		if best == nil {
			return fmt.Errorf("%w: cannot place %s", model.ErrNoCapacity, p.ID)
		}
		alloc.Place(best, p)
	}

	return nil
}
