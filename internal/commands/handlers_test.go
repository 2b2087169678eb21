package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okravets/abook/internal/book"
	"github.com/okravets/abook/internal/models"
)

func newTestSession() *Session {
	sess := NewSession(book.NewAddressBook(), book.NewNoteBook())
	// Monday 03.06.2024
	sess.Now = func() time.Time { return time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC) }
	return sess
}

func dispatch(t *testing.T, r *Registry, sess *Session, line string) string {
	t.Helper()
	out, err := r.Dispatch(line, sess)
	require.NoError(t, err, "line=%q", line)
	return out
}

func TestDispatchBasics(t *testing.T) {
	r := NewRegistry()
	sess := newTestSession()

	assert.Equal(t, "How can I help you?", dispatch(t, r, sess, "hello"))
	assert.Equal(t, "How can I help you?", dispatch(t, r, sess, "  HELLO  "), "command names are case-insensitive")

	out := dispatch(t, r, sess, "")
	assert.Empty(t, out)

	_, err := r.Dispatch("frobnicate", sess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")

	help := dispatch(t, r, sess, "help")
	assert.Contains(t, help, "add <name> <phone>")
	assert.Contains(t, help, "birthdays")
}

func TestSplit(t *testing.T) {
	name, args := Split("  add  Ann   5551212 ")
	assert.Equal(t, "add", name)
	assert.Equal(t, []string{"Ann", "5551212"}, args)

	name, args = Split("")
	assert.Empty(t, name)
	assert.Nil(t, args)

	assert.True(t, IsExit("close"))
	assert.True(t, IsExit("exit"))
	assert.False(t, IsExit("delete"))
}

func TestAddContactFlow(t *testing.T) {
	r := NewRegistry()
	sess := newTestSession()

	assert.Equal(t, "Contact added.", dispatch(t, r, sess, "add Ann 5551212"))
	assert.Equal(t, "Contact Ann already has this phone number.", dispatch(t, r, sess, "add Ann 5551212"))
	assert.Equal(t, "Phone number added to existing contact Ann.", dispatch(t, r, sess, "add Ann 5552323"))

	_, err := r.Dispatch("add Ann", sess)
	require.Error(t, err, "missing phone is a usage error")

	_, err = r.Dispatch("add Bob not-a-phone", sess)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	_, ok := sess.Contacts.Find("Bob")
	assert.False(t, ok, "rejected contact is not inserted")
}

func TestChangeCommand(t *testing.T) {
	r := NewRegistry()
	sess := newTestSession()
	dispatch(t, r, sess, "add Ann 5551212")

	assert.Equal(t, "Phone updated for Ann.", dispatch(t, r, sess, "change Ann phone 5551212 5559999"))

	_, err := r.Dispatch("change Ann phone 5551212 5559999", sess)
	require.ErrorIs(t, err, models.ErrNotFound, "the old number is gone after the edit")

	_, err = r.Dispatch("change Nobody phone 1 2", sess)
	require.ErrorIs(t, err, models.ErrNotFound)

	_, err = r.Dispatch("change Ann shoe 1 2", sess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")

	assert.Equal(t, "Address updated for Ann.", dispatch(t, r, sess, "change Ann address 7 Side Lane"))

	assert.Equal(t, "Contact Ann renamed to Annabel.", dispatch(t, r, sess, "change Ann name Annabel"))
	_, ok := sess.Contacts.Find("Annabel")
	assert.True(t, ok)
}

func TestRenameCommand(t *testing.T) {
	r := NewRegistry()
	sess := newTestSession()
	dispatch(t, r, sess, "add Ann 5551212")
	dispatch(t, r, sess, "add Bob 5552323")

	assert.Equal(t, "Contact Ann renamed to Zoe.", dispatch(t, r, sess, "rename Ann Zoe"))

	_, err := r.Dispatch("rename Zoe Bob", sess)
	require.ErrorIs(t, err, models.ErrDuplicate)
}

func TestDeleteCommand(t *testing.T) {
	r := NewRegistry()
	sess := newTestSession()
	dispatch(t, r, sess, "add Ann 5551212")

	assert.Equal(t, "Contact 'Ann' has been deleted.", dispatch(t, r, sess, "delete Ann"))
	assert.Equal(t, "Contact 'Ann' not found.", dispatch(t, r, sess, "delete Ann"))
}

func TestBirthdayCommands(t *testing.T) {
	r := NewRegistry()
	sess := newTestSession()
	dispatch(t, r, sess, "add Ann 5551212")

	assert.Equal(t, "Birthday added to existing contact Ann.", dispatch(t, r, sess, "add-birthday Ann 04.06.1990"))
	assert.Equal(t, "Contact with birthday added.", dispatch(t, r, sess, "add-birthday Newbie 15.03.1990"))

	_, err := r.Dispatch("add-birthday Ann 05.06.1990", sess)
	var already *models.AlreadySetError
	require.ErrorAs(t, err, &already)

	assert.Equal(t, "Ann's birthday is on 04.06.1990", dispatch(t, r, sess, "show-birthday Ann"))

	out := dispatch(t, r, sess, "birthdays")
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "04.06.2024")
	assert.NotContains(t, out, "Newbie", "March birthday is outside the 7-day window in June")

	_, err = r.Dispatch("birthdays soon", sess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "integer")

	_, err = r.Dispatch("birthdays -1", sess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")

	assert.Equal(t, "No birthdays within 0 days.", dispatch(t, r, sess, "birthdays 0"))
}

func TestEmailAndAddressCommands(t *testing.T) {
	r := NewRegistry()
	sess := newTestSession()
	dispatch(t, r, sess, "add Ann 5551212")

	assert.Equal(t, "Email added to contact Ann.", dispatch(t, r, sess, "add-email Ann ann@example.com"))
	assert.Equal(t, "Contact Ann already has this email.", dispatch(t, r, sess, "add-email Ann ann@example.com"))

	_, err := r.Dispatch("add-email Ann broken", sess)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)

	assert.Equal(t, "Address set for contact Ann.", dispatch(t, r, sess, "add-address Ann 12 Main Street, Kyiv"))
	rec, _ := sess.Contacts.Find("Ann")
	addr, ok := rec.Address()
	require.True(t, ok)
	assert.Equal(t, "12 Main Street, Kyiv", addr.String())

	_, err = r.Dispatch("add-address Nobody 1 Street", sess)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestSearchCommand(t *testing.T) {
	r := NewRegistry()
	sess := newTestSession()

	assert.Equal(t, "No contacts.", dispatch(t, r, sess, "search jo"))

	dispatch(t, r, sess, "add John 5551212")
	dispatch(t, r, sess, "add Bojohn 5552323")

	out := dispatch(t, r, sess, "search jo")
	assert.Contains(t, out, "John")
	assert.NotContains(t, out, "Bojohn", "search is prefix-only")

	assert.Equal(t, "No matches found.", dispatch(t, r, sess, "search zzz"))
}

func TestNoteCommands(t *testing.T) {
	r := NewRegistry()
	sess := newTestSession()

	assert.Equal(t, "No notes.", dispatch(t, r, sess, "all-notes"))

	out := dispatch(t, r, sess, "add-note buy milk #errand #home")
	assert.Contains(t, out, "added")
	require.Equal(t, 1, sess.Notes.Len())

	note := sess.Notes.All()[0]
	assert.Equal(t, "buy milk", note.Text())
	assert.Equal(t, []string{"errand", "home"}, note.Tags())

	_, err := r.Dispatch("add-note #only-tags", sess)
	require.Error(t, err, "a note needs text")

	short := models.ShortID(note.ID())
	dispatch(t, r, sess, "change-note "+short+" buy oat milk")
	assert.Equal(t, "buy oat milk", sess.Notes.All()[0].Text())

	out = dispatch(t, r, sess, "find-note OAT")
	assert.Contains(t, out, "buy oat milk")
	assert.Equal(t, "No matching notes.", dispatch(t, r, sess, "find-note dentist"))

	out = dispatch(t, r, sess, "find-tag errand")
	assert.Contains(t, out, "buy oat milk")
	assert.Equal(t, "No notes with that tag.", dispatch(t, r, sess, "find-tag work"))

	dispatch(t, r, sess, "add-tag "+short+" #urgent")
	assert.True(t, sess.Notes.All()[0].HasTag("urgent"))
	dispatch(t, r, sess, "remove-tag "+short+" urgent")
	assert.False(t, sess.Notes.All()[0].HasTag("urgent"))

	dispatch(t, r, sess, "delete-note "+short)
	assert.Equal(t, 0, sess.Notes.Len())

	_, err = r.Dispatch("delete-note "+short, sess)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestEndToEndContact(t *testing.T) {
	r := NewRegistry()
	sess := newTestSession()

	dispatch(t, r, sess, "add Ann 5551212")
	dispatch(t, r, sess, "add-birthday Ann 15.03.1990")

	out := dispatch(t, r, sess, "phone Ann")
	for _, want := range []string{"Ann", "15.03.1990", "5551212"} {
		assert.True(t, strings.Contains(out, want), "output %q should contain %q", out, want)
	}
}
