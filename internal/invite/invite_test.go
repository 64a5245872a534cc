package invite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/invite"
)

func TestValidSyntax(t *testing.T) {
	valid := []string{"a@b.com", "ana.silva@mail.example.org", "  joe@site.io  ", "x+tag@d.co"}
	invalid := []string{"", "   ", "not-an-email", "a@b", "@b.com", "a@.com", "a@b.", "Ana <ana@b.com>", "a b@c.com"}

	for _, s := range valid {
		assert.True(t, invite.ValidSyntax(s), "expected %q to be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, invite.ValidSyntax(s), "expected %q to be invalid", s)
	}
}

func TestAdd_NormalizesAndAppends(t *testing.T) {
	set, err := invite.EmailSet{}.Add("A@B.com")

	require.NoError(t, err)
	assert.Equal(t, invite.EmailSet{"a@b.com"}, set)
}

func TestAdd_InvalidEmail(t *testing.T) {
	set, err := invite.EmailSet{}.Add("not-an-email")

	assert.ErrorIs(t, err, invite.ErrInvalidEmail)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, set)
}

func TestAdd_DuplicateAfterNormalization(t *testing.T) {
	set, err := invite.EmailSet{}.Add("ana@example.com")
	require.NoError(t, err)

	again, err := set.Add("  ANA@example.com ")

	assert.ErrorIs(t, err, invite.ErrDuplicateEmail)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 1, again.Len())
	assert.Equal(t, set, again)
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	var set invite.EmailSet
	var err error
	for _, e := range []string{"c@x.com", "a@x.com", "b@x.com"} {
		set, err = set.Add(e)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"c@x.com", "a@x.com", "b@x.com"}, set.Slice())
}

func TestAdd_DoesNotMutateReceiver(t *testing.T) {
	base := make(invite.EmailSet, 1, 4)
	base[0] = "a@x.com"

	first, err := base.Add("b@x.com")
	require.NoError(t, err)
	second, err := base.Add("c@x.com")
	require.NoError(t, err)

	assert.Equal(t, invite.EmailSet{"a@x.com"}, base)
	assert.Equal(t, invite.EmailSet{"a@x.com", "b@x.com"}, first)
	assert.Equal(t, invite.EmailSet{"a@x.com", "c@x.com"}, second)
}

func TestRemove(t *testing.T) {
	set := invite.EmailSet{"a@x.com", "b@x.com", "c@x.com"}

	assert.Equal(t, invite.EmailSet{"a@x.com", "c@x.com"}, set.Remove("b@x.com"))
	assert.Equal(t, invite.EmailSet{"a@x.com", "b@x.com", "c@x.com"}, set, "receiver unchanged")
}

func TestRemove_AbsentIsNoOp(t *testing.T) {
	set := invite.EmailSet{"a@x.com"}

	got := set.Remove("z@x.com")

	assert.Equal(t, set, got)
}

func TestSummary(t *testing.T) {
	assert.Empty(t, invite.EmailSet{}.Summary())
	assert.Equal(t, "2 guest(s) invited", invite.EmailSet{"a@x.com", "b@x.com"}.Summary())
}
