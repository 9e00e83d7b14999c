package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/teamalloc/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

// Helper to build a person; divisions and flags are all that scoring reads
func person(id, division string, compagnon bool) *model.Person {
	return &model.Person{ID: model.PersonID(id), Division: division, IsCompagnon: compagnon}
}

func inviter(id, division string, compagnon bool) *model.Person {
	p := person(id, division, compagnon)
	p.GuestID = model.PersonID(id + "-guest")
	return p
}

func (s *ServiceSuite) TestEmptyTeamIsNeutral() {
	s.Equal(0.0, s.service.Score(nil, person("a", "Sales", true)))
	s.Equal(0.0, s.service.Score(nil, inviter("a", "Sales", true)))
}

// Division novelty

func (s *ServiceSuite) TestNewDivisionScores() {
	team := []*model.Person{person("a", "Sales", false), person("b", "Ops", true)}

	s.Equal(1.0, s.service.Score(team, person("c", "Legal", false)))
}

func (s *ServiceSuite) TestExistingDivisionDoesNotScore() {
	team := []*model.Person{person("a", "Sales", false), person("b", "Ops", true)}

	s.Equal(0.0, s.service.Score(team, person("c", "Ops", false)))
}

func (s *ServiceSuite) TestMissingDivisionDoesNotScore() {
	team := []*model.Person{person("a", "", false), person("b", "Ops", true)}

	s.Equal(0.0, s.service.Score(team, person("c", "", false)))
}

// Compagnon balance

func (s *ServiceSuite) TestCompagnonJoinsTeamShortOfCompagnons() {
	team := []*model.Person{person("a", "X", false), person("b", "X", false), person("c", "X", true)}

	s.Equal(1.0, s.service.Score(team, person("d", "X", true)))
}

func (s *ServiceSuite) TestNonCompagnonJoinsTeamHeavyOnCompagnons() {
	team := []*model.Person{person("a", "X", true), person("b", "X", true), person("c", "X", false)}

	s.Equal(1.0, s.service.Score(team, person("d", "X", false)))
}

func (s *ServiceSuite) TestBalancedTeamGivesNoCompagnonScore() {
	team := []*model.Person{person("a", "X", true), person("b", "X", false)}

	s.Equal(0.0, s.service.Score(team, person("c", "X", true)))
	s.Equal(0.0, s.service.Score(team, person("d", "X", false)))
}

// Pair pressure

func (s *ServiceSuite) TestInviterPrefersTeamWithoutPairs() {
	team := []*model.Person{person("a", "X", true), person("b", "X", false)}

	s.Equal(2.0, s.service.Score(team, inviter("c", "X", false)))
}

func (s *ServiceSuite) TestInviterWithOnePairOnTeam() {
	team := []*model.Person{inviter("a", "X", true), person("b", "X", false)}

	s.Equal(1.0, s.service.Score(team, inviter("c", "X", false)))
}

func (s *ServiceSuite) TestInviterPenalizedByCrowdedTeam() {
	team := []*model.Person{
		inviter("a", "X", true), person("a-guest", "X", false),
		inviter("b", "X", true), person("b-guest", "X", false),
		inviter("c", "X", false), person("c-guest", "X", true),
	}

	s.Equal(-1.5, s.service.Score(team, inviter("d", "X", false)))
}

func (s *ServiceSuite) TestPairPressureIgnoredForNonInviters() {
	team := []*model.Person{person("a", "X", true), person("b", "X", false)}

	s.Equal(0.0, s.service.Score(team, person("c", "X", false)))
}

// Composite

func (s *ServiceSuite) TestTermsAdd() {
	team := []*model.Person{person("a", "Ops", false), person("b", "Ops", false)}

	// new division + compagnon balance + first pair
	s.Equal(4.0, s.service.Score(team, inviter("c", "Sales", true)))
}

func (s *ServiceSuite) TestScoreIsPure() {
	team := []*model.Person{person("a", "Ops", false), inviter("b", "Sales", true)}
	candidate := inviter("c", "Legal", true)

	first := s.service.Score(team, candidate)
	second := s.service.Score(team, candidate)

	s.Equal(first, second)
	s.Len(team, 2)
}
