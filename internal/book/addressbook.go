// Package book holds the in-memory collections the assistant works
// on: an AddressBook of contact records keyed by name and a NoteBook
// of notes keyed by id. Both keep insertion order so listings are
// deterministic.
package book

import (
	"fmt"
	"strings"

	"github.com/okravets/abook/internal/models"
)

// AddressBook is the keyed collection of contact records. At most one
// record exists per name.
type AddressBook struct {
	records map[string]*models.Record
	order   []string
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*models.Record)}
}

// Add inserts the record under its name, replacing any record already
// stored under that name. Callers that want already-exists semantics
// check Find first.
func (ab *AddressBook) Add(rec *models.Record) {
	name := rec.Name().String()
	if _, exists := ab.records[name]; !exists {
		ab.order = append(ab.order, name)
	}
	ab.records[name] = rec
}

// Find returns the record stored under the exact name.
func (ab *AddressBook) Find(name string) (*models.Record, bool) {
	rec, ok := ab.records[name]
	return rec, ok
}

// Delete removes the record stored under name. Unknown names are a no-op.
func (ab *AddressBook) Delete(name string) {
	if _, ok := ab.records[name]; !ok {
		return
	}
	delete(ab.records, name)
	for i, n := range ab.order {
		if n == name {
			ab.order = append(ab.order[:i], ab.order[i+1:]...)
			break
		}
	}
}

// Rename moves the record stored under oldName to newName as one
// operation. It fails without mutation when oldName is unknown or
// newName is taken, so a half-renamed book is never observable.
func (ab *AddressBook) Rename(oldName, newName string) error {
	rec, ok := ab.records[oldName]
	if !ok {
		return fmt.Errorf("contact %s: %w", oldName, models.ErrNotFound)
	}
	if oldName == newName {
		return nil
	}
	if _, taken := ab.records[newName]; taken {
		return fmt.Errorf("contact %s: %w", newName, models.ErrDuplicate)
	}
	renamed, err := rec.Renamed(newName)
	if err != nil {
		return err
	}
	renamedName := renamed.Name().String()
	if renamedName != oldName {
		if _, taken := ab.records[renamedName]; taken {
			return fmt.Errorf("contact %s: %w", renamedName, models.ErrDuplicate)
		}
	}
	delete(ab.records, oldName)
	ab.records[renamedName] = renamed
	for i, n := range ab.order {
		if n == oldName {
			ab.order[i] = renamedName
			break
		}
	}
	return nil
}

// All returns every record in insertion order.
func (ab *AddressBook) All() []*models.Record {
	out := make([]*models.Record, 0, len(ab.order))
	for _, name := range ab.order {
		out = append(out, ab.records[name])
	}
	return out
}

// Len returns the number of records.
func (ab *AddressBook) Len() int { return len(ab.records) }

// SearchInFields returns the records where any field starts with term,
// case-insensitively: the name, any phone, any email, the address, or
// the birthday rendered as DD.MM.YYYY. The match is on prefixes, not
// substrings. Results come back in listing order.
func (ab *AddressBook) SearchInFields(term string) []*models.Record {
	prefix := strings.ToLower(strings.TrimSpace(term))
	if prefix == "" {
		return nil
	}

	var matched []*models.Record
	for _, name := range ab.order {
		rec := ab.records[name]
		if recordMatches(rec, prefix) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func recordMatches(rec *models.Record, prefix string) bool {
	if hasPrefixFold(rec.Name().String(), prefix) {
		return true
	}
	for _, p := range rec.Phones() {
		if hasPrefixFold(p.String(), prefix) {
			return true
		}
	}
	for _, e := range rec.Emails() {
		if hasPrefixFold(e.String(), prefix) {
			return true
		}
	}
	if addr, ok := rec.Address(); ok && hasPrefixFold(addr.String(), prefix) {
		return true
	}
	if bd, ok := rec.Birthday(); ok && hasPrefixFold(bd.String(), prefix) {
		return true
	}
	return false
}

func hasPrefixFold(s, lowerPrefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), lowerPrefix)
}
