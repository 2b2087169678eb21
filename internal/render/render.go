// Package render turns records, notes and birthday reminders into
// terminal text. Every function is stateless: data in, styled string
// out. Nothing here mutates the books or shares a console object.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/okravets/abook/internal/book"
	"github.com/okravets/abook/internal/models"
	"github.com/okravets/abook/internal/ui/styles"
)

func newTable(headers ...string) *table.Table {
	s := styles.NewStyles()
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.TableBorder).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			return s.TableCell
		}).
		Headers(headers...)
}

// Contact renders a single record as a plain line.
func Contact(rec *models.Record) string {
	return rec.String()
}

// Contacts renders all records as a table, one row per contact.
func Contacts(recs []*models.Record) string {
	t := newTable("Name", "Phones", "Emails", "Address", "Birthday")
	for _, rec := range recs {
		t.Row(
			rec.Name().String(),
			joinPhones(rec.Phones()),
			joinEmails(rec.Emails()),
			addressOrPlaceholder(rec),
			birthdayOrPlaceholder(rec),
		)
	}
	return t.Render()
}

// Birthdays renders upcoming-birthday reminders as a table.
func Birthdays(rows []book.BirthdayReminder) string {
	t := newTable("Name", "Congratulation date", "Phone")
	for _, r := range rows {
		t.Row(r.Name, r.Congratulation.Format(models.BirthdayLayout), r.Phone)
	}
	return t.Render()
}

// Notes renders notes as a table, one row per note.
func Notes(notes []*models.Note) string {
	t := newTable("Id", "Created", "Tags", "Text")
	for _, n := range notes {
		tags := models.Placeholder
		if len(n.Tags()) > 0 {
			tags = strings.Join(n.Tags(), ", ")
		}
		t.Row(models.ShortID(n.ID()), n.CreatedAt().Format("02.01.2006"), tags, n.Text())
	}
	return t.Render()
}

func joinPhones(phones []models.Phone) string {
	if len(phones) == 0 {
		return models.Placeholder
	}
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}

func joinEmails(emails []models.Email) string {
	if len(emails) == 0 {
		return models.Placeholder
	}
	parts := make([]string, len(emails))
	for i, e := range emails {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}

func addressOrPlaceholder(rec *models.Record) string {
	if a, ok := rec.Address(); ok {
		return a.String()
	}
	return models.Placeholder
}

func birthdayOrPlaceholder(rec *models.Record) string {
	if b, ok := rec.Birthday(); ok {
		return b.String()
	}
	return models.Placeholder
}
