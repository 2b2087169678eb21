package book

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okravets/abook/internal/models"
)

// NoteBook is the keyed collection of notes. Ids are random and never
// reused, so deleting a note can not free its id for a later one.
type NoteBook struct {
	notes map[string]*models.Note
	order []string
}

// NewNoteBook creates an empty note book.
func NewNoteBook() *NoteBook {
	return &NoteBook{notes: make(map[string]*models.Note)}
}

// Add inserts the note under its id.
func (nb *NoteBook) Add(note *models.Note) {
	if _, exists := nb.notes[note.ID()]; !exists {
		nb.order = append(nb.order, note.ID())
	}
	nb.notes[note.ID()] = note
}

// Get returns the note with the exact id.
func (nb *NoteBook) Get(id string) (*models.Note, bool) {
	note, ok := nb.notes[id]
	return note, ok
}

// Resolve returns the note whose id is exactly id or starts with it
// uniquely, so short id prefixes work interactively. An ambiguous
// prefix is an error, not a guess.
func (nb *NoteBook) Resolve(idPrefix string) (*models.Note, error) {
	if note, ok := nb.notes[idPrefix]; ok {
		return note, nil
	}
	var found *models.Note
	for _, id := range nb.order {
		if strings.HasPrefix(id, idPrefix) {
			if found != nil {
				return nil, fmt.Errorf("note id %s is ambiguous", idPrefix)
			}
			found = nb.notes[id]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("note %s: %w", idPrefix, models.ErrNotFound)
	}
	return found, nil
}

// Change replaces the text of the note with the given id.
func (nb *NoteBook) Change(id, text string) error {
	note, ok := nb.notes[id]
	if !ok {
		return fmt.Errorf("note %s: %w", id, models.ErrNotFound)
	}
	note.SetText(text)
	return nil
}

// Delete removes the note with the given id. Unknown ids are an
// error; the legacy silent no-op variant was deliberately dropped.
func (nb *NoteBook) Delete(id string) error {
	if _, ok := nb.notes[id]; !ok {
		return fmt.Errorf("note %s: %w", id, models.ErrNotFound)
	}
	delete(nb.notes, id)
	for i, n := range nb.order {
		if n == id {
			nb.order = append(nb.order[:i], nb.order[i+1:]...)
			break
		}
	}
	return nil
}

// All returns every note in insertion order.
func (nb *NoteBook) All() []*models.Note {
	out := make([]*models.Note, 0, len(nb.order))
	for _, id := range nb.order {
		out = append(out, nb.notes[id])
	}
	return out
}

// Len returns the number of notes.
func (nb *NoteBook) Len() int { return len(nb.notes) }

// Search returns the notes whose text contains term, ignoring case.
// Substring matching here mirrors the contact search's case folding.
func (nb *NoteBook) Search(term string) []*models.Note {
	needle := strings.ToLower(term)
	var out []*models.Note
	for _, id := range nb.order {
		note := nb.notes[id]
		if strings.Contains(strings.ToLower(note.Text()), needle) {
			out = append(out, note)
		}
	}
	return out
}

// SearchByTag returns the notes carrying the exact tag.
func (nb *NoteBook) SearchByTag(tag string) []*models.Note {
	var out []*models.Note
	for _, id := range nb.order {
		if nb.notes[id].HasTag(tag) {
			out = append(out, nb.notes[id])
		}
	}
	return out
}

// SortedByTag returns all notes ordered by their tag list, untagged
// notes last. Ties keep insertion order.
func (nb *NoteBook) SortedByTag() []*models.Note {
	out := nb.All()
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := tagKey(out[i]), tagKey(out[j])
		if (ti == "") != (tj == "") {
			return ti != ""
		}
		return ti < tj
	})
	return out
}

func tagKey(n *models.Note) string {
	return strings.Join(n.Tags(), "\x00")
}
