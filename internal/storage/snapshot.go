package storage

import (
	"time"

	"github.com/okravets/abook/internal/book"
	"github.com/okravets/abook/internal/models"
)

// Load reads the stored snapshot into fresh books. A missing or
// unreadable store yields empty books together with the error, so the
// session can still start; rows that no longer validate are skipped.
func (s *Store) Load() (*book.AddressBook, *book.NoteBook, error) {
	ab := book.NewAddressBook()
	nb := book.NewNoteBook()

	if err := s.loadContacts(ab); err != nil {
		return book.NewAddressBook(), book.NewNoteBook(), err
	}
	if err := s.loadNotes(nb); err != nil {
		return book.NewAddressBook(), book.NewNoteBook(), err
	}
	return ab, nb, nil
}

func (s *Store) loadContacts(ab *book.AddressBook) error {
	phones, err := s.loadValues("contact_phones")
	if err != nil {
		return err
	}
	emails, err := s.loadValues("contact_emails")
	if err != nil {
		return err
	}

	rows, err := s.Query("SELECT name, address, birthday FROM contacts ORDER BY position")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var address, birthday *string
		if err := rows.Scan(&name, &address, &birthday); err != nil {
			return err
		}

		rec, err := models.NewRecord(name)
		if err != nil {
			continue
		}
		// Values were validated when entered; ones that no longer
		// parse are dropped rather than failing the whole load.
		for _, p := range phones[name] {
			_ = rec.AddPhone(p)
		}
		for _, e := range emails[name] {
			_ = rec.AddEmail(e)
		}
		if address != nil {
			_ = rec.SetAddress(*address)
		}
		if birthday != nil {
			_ = rec.AddBirthday(*birthday)
		}
		ab.Add(rec)
	}
	return rows.Err()
}

// loadValues reads an ordered per-contact value table (phones or
// emails) into a name-keyed map.
func (s *Store) loadValues(table string) (map[string][]string, error) {
	rows, err := s.Query("SELECT contact_name, value FROM " + table + " ORDER BY contact_name, position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string][]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		values[name] = append(values[name], value)
	}
	return values, rows.Err()
}

func (s *Store) loadNotes(nb *book.NoteBook) error {
	tagRows, err := s.Query("SELECT note_id, tag FROM note_tags ORDER BY note_id, position")
	if err != nil {
		return err
	}
	defer tagRows.Close()

	tags := make(map[string][]string)
	for tagRows.Next() {
		var id, tag string
		if err := tagRows.Scan(&id, &tag); err != nil {
			return err
		}
		tags[id] = append(tags[id], tag)
	}
	if err := tagRows.Err(); err != nil {
		return err
	}

	rows, err := s.Query("SELECT id, created_at, body FROM notes ORDER BY position")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, body string
		var createdAt time.Time
		if err := rows.Scan(&id, &createdAt, &body); err != nil {
			return err
		}
		nb.Add(models.RestoreNote(id, createdAt, body, tags[id]))
	}
	return rows.Err()
}

// Save writes a full snapshot of both books in one transaction,
// replacing whatever was stored before.
func (s *Store) Save(ab *book.AddressBook, nb *book.NoteBook) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"contact_phones", "contact_emails", "contacts", "note_tags", "notes"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	for pos, rec := range ab.All() {
		name := rec.Name().String()

		var address, birthday *string
		if a, ok := rec.Address(); ok {
			v := a.String()
			address = &v
		}
		if b, ok := rec.Birthday(); ok {
			v := b.String()
			birthday = &v
		}
		if _, err := tx.Exec(
			"INSERT INTO contacts (name, position, address, birthday) VALUES (?, ?, ?, ?)",
			name, pos, address, birthday,
		); err != nil {
			return err
		}

		for i, p := range rec.Phones() {
			if _, err := tx.Exec(
				"INSERT INTO contact_phones (contact_name, position, value) VALUES (?, ?, ?)",
				name, i, p.String(),
			); err != nil {
				return err
			}
		}
		for i, e := range rec.Emails() {
			if _, err := tx.Exec(
				"INSERT INTO contact_emails (contact_name, position, value) VALUES (?, ?, ?)",
				name, i, e.String(),
			); err != nil {
				return err
			}
		}
	}

	for pos, note := range nb.All() {
		if _, err := tx.Exec(
			"INSERT INTO notes (id, position, created_at, body) VALUES (?, ?, ?, ?)",
			note.ID(), pos, note.CreatedAt(), note.Text(),
		); err != nil {
			return err
		}
		for i, tag := range note.Tags() {
			if _, err := tx.Exec(
				"INSERT INTO note_tags (note_id, position, tag) VALUES (?, ?, ?)",
				note.ID(), i, tag,
			); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}
