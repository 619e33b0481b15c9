package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	r := New()

	alice, err := r.Add("  Alice ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", alice.Name)
	assert.NotEmpty(t, alice.ID)

	bob, err := r.Add("Bob")
	require.NoError(t, err)
	assert.NotEqual(t, alice.ID, bob.ID)

	people := r.People()
	require.Len(t, people, 2)
	assert.Equal(t, alice.ID, people[0].ID)
	assert.Equal(t, bob.ID, people[1].ID)
}

func TestAdd_RejectsBlankNames(t *testing.T) {
	r := New()
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := r.Add(name)
		assert.ErrorIs(t, err, ErrEmptyName, "name %q", name)
	}
	assert.Equal(t, 0, r.Len())
}

func TestAdd_DuplicateNamesAreDistinctPeople(t *testing.T) {
	r := New()
	a, err := r.Add("Sam")
	require.NoError(t, err)
	b, err := r.Add("Sam")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, r.Len())
}

func TestRename(t *testing.T) {
	r := New()
	alice, _ := r.Add("Alice")
	bob, _ := r.Add("Bob")

	renamed, err := r.Rename(alice.ID, " Alicia ")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, renamed.ID)
	assert.Equal(t, "Alicia", renamed.Name)
	assert.Equal(t, 0, r.Position(alice.ID))
	assert.Equal(t, 1, r.Position(bob.ID))

	got, ok := r.Get(alice.ID)
	require.True(t, ok)
	assert.Equal(t, "Alicia", got.Name)
}

func TestRename_Failures(t *testing.T) {
	r := New()
	alice, _ := r.Add("Alice")

	_, err := r.Rename(alice.ID, "  ")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = r.Rename(alice.ID, "Alice ")
	assert.ErrorIs(t, err, ErrNameUnchanged)

	_, err = r.Rename("missing", "Zed")
	assert.ErrorIs(t, err, ErrPersonNotFound)

	got, _ := r.Get(alice.ID)
	assert.Equal(t, "Alice", got.Name)
}

func TestRemove(t *testing.T) {
	r := New()
	alice, _ := r.Add("Alice")
	bob, _ := r.Add("Bob")
	charlie, _ := r.Add("Charlie")

	require.NoError(t, r.Remove(bob.ID))
	assert.False(t, r.Has(bob.ID))
	assert.Equal(t, 0, r.Position(alice.ID))
	assert.Equal(t, 1, r.Position(charlie.ID))
	assert.Equal(t, -1, r.Position(bob.ID))

	assert.ErrorIs(t, r.Remove(bob.ID), ErrPersonNotFound)
	assert.Equal(t, 2, r.Len())
}

func TestClone_IsIndependent(t *testing.T) {
	r := New()
	alice, _ := r.Add("Alice")

	c := r.Clone()
	_, err := r.Rename(alice.ID, "Alicia")
	require.NoError(t, err)
	_, err = r.Add("Bob")
	require.NoError(t, err)

	got, _ := c.Get(alice.ID)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, 1, c.Len())
}
