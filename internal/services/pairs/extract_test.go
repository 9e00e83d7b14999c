package pairs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/teamalloc/internal/model"
)

func roster(t *testing.T, people ...model.Person) *model.Roster {
	t.Helper()
	r, err := model.NewRoster(people)
	require.NoError(t, err)
	return r
}

func TestExtractPreservesRosterOrder(t *testing.T) {
	r := roster(t,
		model.Person{ID: "c", GuestID: "d"},
		model.Person{ID: "a", GuestID: "b"},
		model.Person{ID: "b"},
		model.Person{ID: "d"},
		model.Person{ID: "e"},
	)

	pairs, err := Extract(r)
	require.NoError(t, err)

	assert.Equal(t, []model.Pair{
		{Inviter: "c", Guest: "d"},
		{Inviter: "a", Guest: "b"},
	}, pairs)
}

func TestExtractNoPairs(t *testing.T) {
	r := roster(t, model.Person{ID: "a"}, model.Person{ID: "b"})

	pairs, err := Extract(r)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestExtractUnknownGuest(t *testing.T) {
	r := roster(t, model.Person{ID: "a", GuestID: "ghost"})

	_, err := Extract(r)
	assert.ErrorIs(t, err, model.ErrUnknownGuest)
	assert.Contains(t, err.Error(), "ghost")
}

func TestExtractSelfInvite(t *testing.T) {
	r := roster(t, model.Person{ID: "a", GuestID: "a"})

	_, err := Extract(r)
	assert.ErrorIs(t, err, model.ErrSelfInvite)
}

func TestExtractRejectsGuestWhoAlsoInvites(t *testing.T) {
	r := roster(t,
		model.Person{ID: "a", GuestID: "b"},
		model.Person{ID: "b", GuestID: "c"},
		model.Person{ID: "c"},
	)

	_, err := Extract(r)
	assert.ErrorIs(t, err, model.ErrPersonInMultiplePairs)
}

func TestExtractRejectsSharedGuest(t *testing.T) {
	r := roster(t,
		model.Person{ID: "a", GuestID: "c"},
		model.Person{ID: "b", GuestID: "c"},
		model.Person{ID: "c"},
	)

	_, err := Extract(r)
	assert.ErrorIs(t, err, model.ErrPersonInMultiplePairs)
}
