package scoring

import (
	"github.com/mcoot/teamalloc/internal/model"
)

// Service computes how desirable a team is for a candidate
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// Score rates adding candidate to a team currently holding members.
// Higher is better. An empty team scores 0 for everyone.
func (s *Service) Score(members []*model.Person, candidate *model.Person) float64 {
	if len(members) == 0 {
		return 0
	}

	return s.divisionScore(members, candidate) +
		s.compagnonScore(members, candidate) +
		s.pairScore(members, candidate)
}

// divisionScore rewards a division the team does not have yet
func (s *Service) divisionScore(members []*model.Person, candidate *model.Person) float64 {
	if !candidate.HasDivision() {
		return 0
	}
	for _, m := range members {
		if m.Division == candidate.Division {
			return 0
		}
	}
	return DivisionNoveltyWeight
}

// compagnonScore rewards candidates that pull the compagnon ratio toward half
func (s *Service) compagnonScore(members []*model.Person, candidate *model.Person) float64 {
	holders := 0
	for _, m := range members {
		if m.IsCompagnon {
			holders++
		}
	}
	half := float64(len(members)) / 2

	switch {
	case candidate.IsCompagnon && float64(holders) < half:
		return CompagnonBalanceWeight
	case !candidate.IsCompagnon && float64(holders) > half:
		return CompagnonBalanceWeight
	default:
		return 0
	}
}

// pairScore spreads pairs across teams; it only applies to inviters,
// which head the pair being placed
func (s *Service) pairScore(members []*model.Person, candidate *model.Person) float64 {
	if !candidate.IsInviter() {
		return 0
	}

	switch pairs := model.CountInviters(members); pairs {
	case 0:
		return FirstPairBonus
	case 1:
		return SecondPairBonus
	default:
		return -PairCrowdingPenalty * float64(pairs)
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(members []*model.Person, candidate *model.Person) float64
}

var _ ServiceInterface = (*Service)(nil)
