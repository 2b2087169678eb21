package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okravets/abook/internal/models"
)

func noteTexts(notes []*models.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Text()
	}
	return out
}

func TestNoteBookAddGetChangeDelete(t *testing.T) {
	nb := NewNoteBook()
	n := models.NewNote("buy milk")
	nb.Add(n)

	got, ok := nb.Get(n.ID())
	require.True(t, ok)
	assert.Equal(t, "buy milk", got.Text())

	require.NoError(t, nb.Change(n.ID(), "buy oat milk"))
	got, _ = nb.Get(n.ID())
	assert.Equal(t, "buy oat milk", got.Text())

	require.ErrorIs(t, nb.Change("unknown", "x"), models.ErrNotFound)

	require.NoError(t, nb.Delete(n.ID()))
	_, ok = nb.Get(n.ID())
	assert.False(t, ok)

	// Deleting twice is an error, not a silent no-op
	require.ErrorIs(t, nb.Delete(n.ID()), models.ErrNotFound)
}

func TestNoteBookIDsSurviveDeletions(t *testing.T) {
	nb := NewNoteBook()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		n := models.NewNote("note")
		nb.Add(n)
		require.False(t, seen[n.ID()])
		seen[n.ID()] = true
		require.NoError(t, nb.Delete(n.ID()))
	}
}

func TestNoteBookSearch(t *testing.T) {
	nb := NewNoteBook()
	nb.Add(models.NewNote("Plan the Trip to Lviv"))
	nb.Add(models.NewNote("water the plants"))
	nb.Add(models.NewNote("call mum"))

	matches := nb.Search("plan")
	assert.Equal(t, []string{"Plan the Trip to Lviv", "water the plants"}, noteTexts(matches),
		"substring match, case-insensitive")

	assert.Empty(t, nb.Search("dentist"))
}

func TestNoteBookSearchByTag(t *testing.T) {
	nb := NewNoteBook()
	nb.Add(models.NewNote("standup notes", "work"))
	nb.Add(models.NewNote("groceries", "errand"))
	nb.Add(models.NewNote("retro notes", "work", "urgent"))

	matches := nb.SearchByTag("work")
	assert.Equal(t, []string{"standup notes", "retro notes"}, noteTexts(matches))
	assert.Empty(t, nb.SearchByTag("personal"))
}

func TestNoteBookSortedByTag(t *testing.T) {
	nb := NewNoteBook()
	nb.Add(models.NewNote("untagged"))
	nb.Add(models.NewNote("work note", "work"))
	nb.Add(models.NewNote("errand note", "errand"))

	sorted := nb.SortedByTag()
	assert.Equal(t, []string{"errand note", "work note", "untagged"}, noteTexts(sorted),
		"tagged notes sort by tag, untagged come last")
}

func TestNoteBookResolve(t *testing.T) {
	nb := NewNoteBook()
	created := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	nb.Add(models.RestoreNote("aaa111", created, "first", nil))
	nb.Add(models.RestoreNote("aab222", created, "second", nil))

	n, err := nb.Resolve("aaa111")
	require.NoError(t, err)
	assert.Equal(t, "first", n.Text())

	n, err = nb.Resolve("aab")
	require.NoError(t, err)
	assert.Equal(t, "second", n.Text(), "unique prefix resolves")

	_, err = nb.Resolve("aa")
	require.Error(t, err, "ambiguous prefix must not guess")

	_, err = nb.Resolve("zzz")
	require.ErrorIs(t, err, models.ErrNotFound)
}
