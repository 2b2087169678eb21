package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okravets/abook/internal/book"
	"github.com/okravets/abook/internal/models"
)

func TestContactsTable(t *testing.T) {
	rec, err := models.NewRecord("Ann")
	require.NoError(t, err)
	require.NoError(t, rec.AddPhone("5551212"))
	require.NoError(t, rec.AddBirthday("15.03.1990"))

	out := Contacts([]*models.Record{rec})
	for _, want := range []string{"Name", "Ann", "5551212", "15.03.1990", models.Placeholder} {
		assert.Contains(t, out, want)
	}
}

func TestBirthdaysTable(t *testing.T) {
	rows := []book.BirthdayReminder{
		{
			Name:           "Ann",
			Congratulation: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			Phone:          "5551212",
		},
	}
	out := Birthdays(rows)
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "10.06.2024")
	assert.Contains(t, out, "5551212")
}

func TestNotesTable(t *testing.T) {
	n := models.RestoreNote("aaa111-rest", time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), "buy milk", []string{"errand"})
	out := Notes([]*models.Note{n})
	assert.Contains(t, out, "aaa111")
	assert.Contains(t, out, "01.06.2024")
	assert.Contains(t, out, "errand")
	assert.Contains(t, out, "buy milk")
}
