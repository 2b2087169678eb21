package models

import (
	"regexp"
	"strings"
	"time"
)

// BirthdayLayout is the textual form birthdays are entered and rendered in.
const BirthdayLayout = "02.01.2006"

var (
	emailPattern   = regexp.MustCompile(`^[A-Za-z0-9_.+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)
	addressPattern = regexp.MustCompile(`^[\w\s,]+$`)
	phoneSeparator = regexp.MustCompile(`[\s().-]`)
)

// Name is a contact's display name. It doubles as the contact's key
// inside an address book; uniqueness is enforced by the book.
type Name struct {
	value string
}

// ParseName validates and wraps a display name.
func ParseName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, &ValidationError{Field: "name", Value: raw, Reason: "must not be empty"}
	}
	return Name{value: trimmed}, nil
}

func (n Name) String() string { return n.value }

// Phone is a validated phone number. The value is kept as entered;
// equality is decided on the normalized digits.
type Phone struct {
	value string
	norm  string
}

// ParsePhone validates a phone number. Separators (spaces, dashes,
// dots and parentheses) are allowed and ignored for comparison.
func ParsePhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Phone{}, &ValidationError{Field: "phone", Value: raw, Reason: "must not be empty"}
	}
	norm := normalizePhone(trimmed)
	digits := strings.TrimPrefix(norm, "+")
	if len(digits) < 5 {
		return Phone{}, &ValidationError{Field: "phone", Value: raw, Reason: "too few digits"}
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Phone{}, &ValidationError{Field: "phone", Value: raw, Reason: "contains non-digit characters"}
		}
	}
	return Phone{value: trimmed, norm: norm}, nil
}

func normalizePhone(raw string) string {
	return phoneSeparator.ReplaceAllString(raw, "")
}

func (p Phone) String() string { return p.value }

// Matches reports whether raw denotes the same number as p,
// ignoring separators.
func (p Phone) Matches(raw string) bool {
	return p.norm == normalizePhone(strings.TrimSpace(raw))
}

// Email is a validated email address.
type Email struct {
	value string
}

// ParseEmail validates an email address of the shape local@domain with
// at least one dot-separated domain label.
func ParseEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if !emailPattern.MatchString(trimmed) {
		return Email{}, &ValidationError{Field: "email", Value: raw, Reason: "must look like name@example.com"}
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string { return e.value }

// Matches reports whether raw is exactly this address.
func (e Email) Matches(raw string) bool {
	return e.value == strings.TrimSpace(raw)
}

// Address is a free-text postal address limited to word characters,
// whitespace and commas.
type Address struct {
	value string
}

// ParseAddress validates a postal address.
func ParseAddress(raw string) (Address, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Address{}, &ValidationError{Field: "address", Value: raw, Reason: "must not be empty"}
	}
	if !addressPattern.MatchString(trimmed) {
		return Address{}, &ValidationError{Field: "address", Value: raw, Reason: "only letters, digits, spaces and commas are allowed"}
	}
	return Address{value: trimmed}, nil
}

func (a Address) String() string { return a.value }

// Birthday is a calendar date in DD.MM.YYYY form.
type Birthday struct {
	date time.Time
}

// ParseBirthday validates a birthday. The date must exist on the
// calendar and must not be in the future.
func ParseBirthday(raw string) (Birthday, error) {
	trimmed := strings.TrimSpace(raw)
	date, err := time.Parse(BirthdayLayout, trimmed)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Value: raw, Reason: "must be a real date in DD.MM.YYYY form"}
	}
	if date.After(time.Now()) {
		return Birthday{}, &ValidationError{Field: "birthday", Value: raw, Reason: "must not be in the future"}
	}
	return Birthday{date: date}, nil
}

func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }

// Date returns the underlying calendar date.
func (b Birthday) Date() time.Time { return b.date }
