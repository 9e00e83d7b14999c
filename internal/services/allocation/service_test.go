package allocation

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/teamalloc/internal/dependencies/mocks"
	"github.com/mcoot/teamalloc/internal/dependencies/random"
	"github.com/mcoot/teamalloc/internal/model"
	"github.com/mcoot/teamalloc/internal/services/scoring"
	"github.com/mcoot/teamalloc/internal/services/validation"
	"github.com/mcoot/teamalloc/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(scoring.New(), testutil.TestLogger(s.T()))
}

func (s *ServiceSuite) roster(people ...model.Person) *model.Roster {
	r, err := model.NewRoster(people)
	s.Require().NoError(err)
	return r
}

func (s *ServiceSuite) validate(roster *model.Roster, layout model.Layout, alloc *model.Allocation) model.ValidationReport {
	return validation.Validate(roster, alloc.Pairs, layout, alloc.Assignment)
}

// Full-size scenario

func (s *ServiceSuite) TestDefaultLayoutSpreadsPairsOnePerTeam() {
	layout := model.DefaultLayout()
	roster := s.roster(testutil.ScenarioPeople(494, 30)...)

	alloc, err := s.service.Allocate(roster, layout, random.NewSeeded(42))
	s.Require().NoError(err)

	s.Equal(model.AllocationStatusComplete, alloc.Status)
	s.Empty(alloc.Orphaned)
	s.Len(alloc.Assignment, 494)

	for i, team := range alloc.Teams {
		s.Equal(team.Capacity, team.Size(), "team %s", team.ID)
		if i < 30 {
			s.Equal(1, team.PairCount(), "team %s", team.ID)
		} else {
			s.Equal(0, team.PairCount(), "team %s", team.ID)
		}
	}

	report := s.validate(roster, layout, alloc)
	s.True(report.Valid, "violations: %v", report.Violations)
}

func (s *ServiceSuite) TestSameSeedGivesSameAssignment() {
	layout := model.DefaultLayout()
	roster := s.roster(testutil.ScenarioPeople(494, 30)...)

	first, err := s.service.Allocate(roster, layout, random.NewSeeded(7))
	s.Require().NoError(err)
	second, err := s.service.Allocate(roster, layout, random.NewSeeded(7))
	s.Require().NoError(err)

	s.Equal(first.Assignment, second.Assignment)
	for i := range first.Teams {
		s.Equal(first.Teams[i].MemberIDs(), second.Teams[i].MemberIDs())
	}
}

func (s *ServiceSuite) TestDoesNotMutateRoster() {
	people := testutil.ScenarioPeople(494, 30)
	roster := s.roster(people...)

	_, err := s.service.Allocate(roster, model.DefaultLayout(), random.NewSeeded(42))
	s.Require().NoError(err)

	s.Equal(people, roster.Snapshot())
}

// Pair placement

func (s *ServiceSuite) TestOrphanedPairIsPlacedSeparatelyAndFlagged() {
	// three teams of three: three pairs fill two seats each, the fourth
	// pair cannot sit together anywhere
	layout := model.Layout{PrimaryTeams: 3, PrimarySize: 3}
	roster := s.roster(
		model.Person{ID: "a1", GuestID: "a2"}, model.Person{ID: "a2"},
		model.Person{ID: "b1", GuestID: "b2"}, model.Person{ID: "b2"},
		model.Person{ID: "c1", GuestID: "c2"}, model.Person{ID: "c2"},
		model.Person{ID: "d1", GuestID: "d2"}, model.Person{ID: "d2"},
		model.Person{ID: "single"},
	)

	alloc, err := s.service.Allocate(roster, layout, s.random)
	s.Require().NoError(err)

	s.Equal(model.AllocationStatusPartial, alloc.Status)
	s.Equal([]model.Pair{{Inviter: "d1", Guest: "d2"}}, alloc.Orphaned)
	s.Len(alloc.Assignment, 9)
	s.NotEqual(alloc.Assignment["d1"], alloc.Assignment["d2"])

	report := s.validate(roster, layout, alloc)
	s.False(report.Valid)
	s.Len(report.Violations, 1)
	split := report.ByKind(model.ViolationPairSplit)
	s.Require().Len(split, len(alloc.Orphaned))
	s.Equal(alloc.Orphaned[0], *split[0].Pair)
}

func (s *ServiceSuite) TestRichestPairsArePlacedFirst() {
	layout := model.Layout{PrimaryTeams: 2, PrimarySize: 2}
	roster := s.roster(
		model.Person{ID: "plain", GuestID: "plain-guest"}, model.Person{ID: "plain-guest"},
		model.Person{ID: "rich", Division: "Ops", GuestID: "rich-guest"}, model.Person{ID: "rich-guest", Division: "RH"},
	)

	alloc, err := s.service.Allocate(roster, layout, s.random)
	s.Require().NoError(err)

	s.Equal(model.TeamID(0), alloc.Assignment["rich"])
	s.Equal(model.TeamID(0), alloc.Assignment["rich-guest"])
	s.Equal(model.TeamID(1), alloc.Assignment["plain"])
	s.Equal(model.TeamID(1), alloc.Assignment["plain-guest"])
}

func (s *ServiceSuite) TestPairMembersStayTogether() {
	layout := model.Layout{PrimaryTeams: 4, PrimarySize: 4, SecondaryTeams: 1, SecondarySize: 3}
	roster := s.roster(testutil.ScenarioPeople(19, 6)...)

	alloc, err := s.service.Allocate(roster, layout, random.NewSeeded(1))
	s.Require().NoError(err)

	s.Equal(model.AllocationStatusComplete, alloc.Status)
	for _, pair := range alloc.Pairs {
		s.Equal(alloc.Assignment[pair.Inviter], alloc.Assignment[pair.Guest], "pair %s", pair)
	}
	s.True(s.validate(roster, layout, alloc).Valid)
}

func (s *ServiceSuite) TestQuotasFollowPlanner() {
	layout := model.Layout{PrimaryTeams: 2, PrimarySize: 4, SecondaryTeams: 1, SecondarySize: 3}
	roster := s.roster(testutil.ScenarioPeople(11, 4)...)

	alloc, err := s.service.Allocate(roster, layout, s.random)
	s.Require().NoError(err)

	s.Equal([]int{2, 1, 1}, alloc.Quotas)
}

// Single placement

func (s *ServiceSuite) TestNoPairsUsesSinglePlacementOnly() {
	layout := model.Layout{PrimaryTeams: 2, PrimarySize: 3, SecondaryTeams: 1, SecondarySize: 2}
	roster := s.roster(testutil.ScenarioPeople(8, 0)...)

	alloc, err := s.service.Allocate(roster, layout, random.NewSeeded(42))
	s.Require().NoError(err)

	s.Empty(alloc.Pairs)
	s.Equal(model.AllocationStatusComplete, alloc.Status)
	for _, team := range alloc.Teams {
		s.Equal(team.Capacity, team.Size())
	}
	s.True(s.validate(roster, layout, alloc).Valid)
}

func (s *ServiceSuite) TestSinglesTieBreakOnLowestTeam() {
	layout := model.Layout{PrimaryTeams: 2, PrimarySize: 2}
	roster := s.roster(
		model.Person{ID: "p1"}, model.Person{ID: "p2"},
		model.Person{ID: "p3"}, model.Person{ID: "p4"},
	)

	alloc, err := s.service.Allocate(roster, layout, s.random)
	s.Require().NoError(err)

	s.Equal([]model.PersonID{"p1", "p3"}, alloc.Teams[0].MemberIDs())
	s.Equal([]model.PersonID{"p2", "p4"}, alloc.Teams[1].MemberIDs())
}

func (s *ServiceSuite) TestSinglesFollowShuffledOrder() {
	layout := model.Layout{PrimaryTeams: 2, PrimarySize: 2}
	roster := s.roster(
		model.Person{ID: "p1"}, model.Person{ID: "p2"},
		model.Person{ID: "p3"}, model.Person{ID: "p4"},
	)
	s.random.Permutation = []int{3, 2, 1, 0}

	alloc, err := s.service.Allocate(roster, layout, s.random)
	s.Require().NoError(err)

	s.Equal(1, s.random.ShuffleCalls)
	s.Equal([]model.PersonID{"p4", "p2"}, alloc.Teams[0].MemberIDs())
	s.Equal([]model.PersonID{"p3", "p1"}, alloc.Teams[1].MemberIDs())
}

// Errors

func (s *ServiceSuite) TestCapacityMismatchIsFatal() {
	roster := s.roster(testutil.ScenarioPeople(10, 2)...)

	alloc, err := s.service.Allocate(roster, model.Layout{PrimaryTeams: 2, PrimarySize: 4}, s.random)

	s.ErrorIs(err, model.ErrCapacityMismatch)
	s.Nil(alloc)
	s.Zero(s.random.ShuffleCalls)
}

func (s *ServiceSuite) TestInvalidLayout() {
	roster := s.roster(testutil.ScenarioPeople(4, 0)...)

	_, err := s.service.Allocate(roster, model.Layout{PrimaryTeams: 2, PrimarySize: 0, SecondaryTeams: 1, SecondarySize: 4}, s.random)

	s.ErrorIs(err, model.ErrInvalidLayout)
}

func (s *ServiceSuite) TestOversizedLayoutIsRejectedBeforeCapacityCheck() {
	roster := s.roster(model.Person{ID: "only"})

	// 4 * 2^62 wraps to zero, so the seat total alone would match the roster
	layout := model.Layout{PrimaryTeams: 1 << 62, PrimarySize: 4, SecondaryTeams: 1, SecondarySize: 1}
	alloc, err := s.service.Allocate(roster, layout, s.random)

	s.ErrorIs(err, model.ErrInvalidLayout)
	s.Nil(alloc)
}

func (s *ServiceSuite) TestUnknownGuestStopsAllocation() {
	roster := s.roster(model.Person{ID: "a", GuestID: "nobody"}, model.Person{ID: "b"})

	_, err := s.service.Allocate(roster, model.Layout{PrimaryTeams: 1, PrimarySize: 2}, s.random)

	s.ErrorIs(err, model.ErrUnknownGuest)
	s.Zero(s.random.ShuffleCalls)
}

func (s *ServiceSuite) TestOverlappingPairsAreRejected() {
	roster := s.roster(
		model.Person{ID: "a", GuestID: "b"},
		model.Person{ID: "b", GuestID: "c"},
		model.Person{ID: "c"},
	)

	_, err := s.service.Allocate(roster, model.Layout{PrimaryTeams: 1, PrimarySize: 3}, s.random)

	s.ErrorIs(err, model.ErrPersonInMultiplePairs)
}
