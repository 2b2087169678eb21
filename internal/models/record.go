package models

import (
	"fmt"
	"strings"
)

// Placeholder stands in for absent fields in rendered output.
const Placeholder = "----------"

// Record is one contact: a name, any number of phones and emails, an
// optional address and an optional write-once birthday.
//
// Field mutators validate their input and fail without touching the
// record. Duplicate phones/emails are not rejected here; that policy
// belongs to the command layer, which checks FindPhone/FindEmail first.
type Record struct {
	name     Name
	phones   []Phone
	emails   []Email
	address  *Address
	birthday *Birthday
}

// NewRecord creates a record for the given contact name.
func NewRecord(name string) (*Record, error) {
	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name.
func (r *Record) Name() Name { return r.name }

// Phones returns the contact's phone numbers in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Emails returns the contact's email addresses in insertion order.
func (r *Record) Emails() []Email {
	out := make([]Email, len(r.emails))
	copy(out, r.emails)
	return out
}

// Address returns the contact's address, if one is set.
func (r *Record) Address() (Address, bool) {
	if r.address == nil {
		return Address{}, false
	}
	return *r.address, true
}

// Birthday returns the contact's birthday, if one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates and appends a phone number.
func (r *Record) AddPhone(raw string) error {
	p, err := ParsePhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone looks up a phone by value, ignoring separators.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, p := range r.phones {
		if p.Matches(raw) {
			return p, true
		}
	}
	return Phone{}, false
}

// EditPhone replaces oldRaw with newRaw in place. The new value is
// validated first and the old one must be present, so a failed edit
// leaves the record untouched.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	p, err := ParsePhone(newRaw)
	if err != nil {
		return err
	}
	for i, existing := range r.phones {
		if existing.Matches(oldRaw) {
			r.phones[i] = p
			return nil
		}
	}
	return fmt.Errorf("phone %s: %w", oldRaw, ErrNotFound)
}

// RemovePhone removes every phone matching raw. Absent values are a no-op.
func (r *Record) RemovePhone(raw string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if !p.Matches(raw) {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// AddEmail validates and appends an email address.
func (r *Record) AddEmail(raw string) error {
	e, err := ParseEmail(raw)
	if err != nil {
		return err
	}
	r.emails = append(r.emails, e)
	return nil
}

// FindEmail looks up an email by exact value.
func (r *Record) FindEmail(raw string) (Email, bool) {
	for _, e := range r.emails {
		if e.Matches(raw) {
			return e, true
		}
	}
	return Email{}, false
}

// EditEmail replaces oldRaw with newRaw in place, with the same
// all-or-nothing contract as EditPhone.
func (r *Record) EditEmail(oldRaw, newRaw string) error {
	e, err := ParseEmail(newRaw)
	if err != nil {
		return err
	}
	for i, existing := range r.emails {
		if existing.Matches(oldRaw) {
			r.emails[i] = e
			return nil
		}
	}
	return fmt.Errorf("email %s: %w", oldRaw, ErrNotFound)
}

// RemoveEmail removes every email matching raw. Absent values are a no-op.
func (r *Record) RemoveEmail(raw string) {
	kept := r.emails[:0]
	for _, e := range r.emails {
		if !e.Matches(raw) {
			kept = append(kept, e)
		}
	}
	r.emails = kept
}

// SetAddress validates and sets the address, overwriting any previous
// value. Unlike the birthday there is no already-set guard.
func (r *Record) SetAddress(raw string) error {
	a, err := ParseAddress(raw)
	if err != nil {
		return err
	}
	r.address = &a
	return nil
}

// AddBirthday validates and sets the birthday. The field is write-once.
func (r *Record) AddBirthday(raw string) error {
	if r.birthday != nil {
		return &AlreadySetError{Field: "birthday"}
	}
	b, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// ShowBirthday renders the contact's birthday line.
func (r *Record) ShowBirthday() string {
	if r.birthday == nil {
		return "No birthday set"
	}
	return fmt.Sprintf("%s's birthday is on %s", r.name, r.birthday)
}

// Renamed returns a copy of the record carrying a new name. The
// receiver is left untouched; address books use this for renames.
func (r *Record) Renamed(name string) (*Record, error) {
	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	clone := *r
	clone.name = n
	clone.phones = append([]Phone(nil), r.phones...)
	clone.emails = append([]Email(nil), r.emails...)
	return &clone, nil
}

// String renders a stable one-line summary of all fields.
func (r *Record) String() string {
	phones := Placeholder
	if len(r.phones) > 0 {
		parts := make([]string, len(r.phones))
		for i, p := range r.phones {
			parts[i] = p.String()
		}
		phones = strings.Join(parts, "; ")
	}

	emails := Placeholder
	if len(r.emails) > 0 {
		parts := make([]string, len(r.emails))
		for i, e := range r.emails {
			parts[i] = e.String()
		}
		emails = strings.Join(parts, "; ")
	}

	address := Placeholder
	if r.address != nil {
		address = r.address.String()
	}

	birthday := Placeholder
	if r.birthday != nil {
		birthday = r.birthday.String()
	}

	return fmt.Sprintf("Contact name: %s, birthday: %s, phones: %s, emails: %s, address: %s",
		r.name, birthday, phones, emails, address)
}
