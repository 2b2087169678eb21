package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note is a free-text entry with a generated id, a creation timestamp
// and a set of tags. The id and timestamp never change; ids are random
// so they stay unique across restarts and are never reused.
type Note struct {
	id        string
	createdAt time.Time
	text      string
	tags      []string
}

// NewNote creates a note with a fresh id and the current time.
func NewNote(text string, tags ...string) *Note {
	n := &Note{
		id:        uuid.NewString(),
		createdAt: time.Now(),
		text:      text,
	}
	for _, tag := range tags {
		n.AddTag(tag)
	}
	return n
}

// RestoreNote rebuilds a previously saved note with its original id
// and creation time. Used by the storage layer when loading.
func RestoreNote(id string, createdAt time.Time, text string, tags []string) *Note {
	n := &Note{id: id, createdAt: createdAt, text: text}
	for _, tag := range tags {
		n.AddTag(tag)
	}
	return n
}

// ID returns the note's identifier.
func (n *Note) ID() string { return n.id }

// CreatedAt returns the note's creation time.
func (n *Note) CreatedAt() time.Time { return n.createdAt }

// Text returns the note's body.
func (n *Note) Text() string { return n.text }

// SetText replaces the note's body.
func (n *Note) SetText(text string) { n.text = text }

// Tags returns the note's tags in insertion order.
func (n *Note) Tags() []string {
	out := make([]string, len(n.tags))
	copy(out, n.tags)
	return out
}

// HasTag reports whether the note carries the given tag.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag adds a tag. Adding a tag the note already has is a no-op.
func (n *Note) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" || n.HasTag(tag) {
		return
	}
	n.tags = append(n.tags, tag)
}

// RemoveTag removes a tag. Removing an absent tag is a no-op.
func (n *Note) RemoveTag(tag string) {
	kept := n.tags[:0]
	for _, t := range n.tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	n.tags = kept
}

// String renders a one-line summary of the note.
func (n *Note) String() string {
	tags := Placeholder
	if len(n.tags) > 0 {
		tags = strings.Join(n.tags, ", ")
	}
	return fmt.Sprintf("Note %s (%s), tags: %s: %s",
		ShortID(n.id), n.createdAt.Format("02.01.2006 15:04"), tags, n.text)
}

// ShortID returns the first id block, enough to address a note
// interactively.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
