package book

import (
	"time"

	"github.com/okravets/abook/internal/models"
)

// BirthdayReminder is one row of the upcoming-birthdays query.
type BirthdayReminder struct {
	Name string
	// Congratulation is the birthday's next occurrence, shifted off
	// weekends: Saturday moves to Monday (+2), Sunday to Monday (+1).
	Congratulation time.Time
	// Phone is the contact's first phone number, or the placeholder
	// when the contact has none.
	Phone string
}

// UpcomingBirthdays returns a reminder for every contact whose next
// birthday occurrence falls within [today, today+days], both ends
// inclusive. The occurrence is this year's month/day, rolled to next
// year when it has already passed. A 29.02 birthday is observed on
// 01.03 in non-leap years. Results come back in listing order; a
// negative days window matches nothing.
func (ab *AddressBook) UpcomingBirthdays(today time.Time, days int) []BirthdayReminder {
	if days < 0 {
		return nil
	}

	today = truncateToDay(today)
	limit := today.AddDate(0, 0, days)

	var out []BirthdayReminder
	for _, name := range ab.order {
		rec := ab.records[name]
		bd, ok := rec.Birthday()
		if !ok {
			continue
		}

		occurrence := nextOccurrence(bd.Date(), today)
		if occurrence.After(limit) {
			continue
		}

		phone := models.Placeholder
		if phones := rec.Phones(); len(phones) > 0 {
			phone = phones[0].String()
		}

		out = append(out, BirthdayReminder{
			Name:           name,
			Congratulation: adjustToWeekday(occurrence),
			Phone:          phone,
		})
	}
	return out
}

// nextOccurrence returns the first occurrence of birthday's month/day
// on or after today. time.Date normalizes 29.02 to 01.03 in non-leap
// years, which is the observance we document.
func nextOccurrence(birthday, today time.Time) time.Time {
	occ := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, today.Location())
	if occ.Before(today) {
		occ = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, today.Location())
	}
	return occ
}

func adjustToWeekday(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
