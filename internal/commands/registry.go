// Package commands is the seam between the terminal front end and the
// books: it tokenizes a command line, dispatches to the matching
// handler and returns user-facing text. Arity and number-parse
// problems are reported here; the books only ever see clean calls.
package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/okravets/abook/internal/book"
)

// Session is the state a command runs against: the two live books and
// the session defaults.
type Session struct {
	Contacts *book.AddressBook
	Notes    *book.NoteBook

	// BirthdayWindow is the default window for the birthdays command.
	BirthdayWindow int

	// Now supplies the reference time; tests pin it.
	Now func() time.Time
}

// NewSession creates a session over the given books.
func NewSession(contacts *book.AddressBook, notes *book.NoteBook) *Session {
	return &Session{
		Contacts:       contacts,
		Notes:          notes,
		BirthdayWindow: 7,
		Now:            time.Now,
	}
}

// Handler runs one command against the session and returns the text to
// show the user.
type Handler func(args []string, sess *Session) (string, error)

// Command describes one command the assistant understands.
type Command struct {
	Name  string
	Usage string
	Help  string
	Run   Handler
}

// Registry holds every command in registration order.
type Registry struct {
	commands []Command
	byName   map[string]Command
}

// NewRegistry builds the registry with the full command set.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]Command)}

	r.register(Command{"hello", "hello", "Greet the assistant", handleHello})
	r.register(Command{"help", "help", "Show available commands", r.handleHelp})
	r.register(Command{"add", "add <name> <phone>", "Add a contact, or a phone to an existing contact", handleAdd})
	r.register(Command{"change", "change <name> <field> ...", "Change a contact field (phone, email, address, name)", handleChange})
	r.register(Command{"phone", "phone <name>", "Show a contact", handlePhone})
	r.register(Command{"all", "all", "Show all contacts", handleAll})
	r.register(Command{"delete", "delete <name>", "Delete a contact", handleDelete})
	r.register(Command{"rename", "rename <old> <new>", "Rename a contact", handleRename})
	r.register(Command{"add-birthday", "add-birthday <name> <DD.MM.YYYY>", "Add a birthday to a contact", handleAddBirthday})
	r.register(Command{"show-birthday", "show-birthday <name>", "Show a contact's birthday", handleShowBirthday})
	r.register(Command{"birthdays", "birthdays [days]", "Show upcoming birthdays (default window 7 days)", handleBirthdays})
	r.register(Command{"add-email", "add-email <name> <email>", "Add an email to a contact", handleAddEmail})
	r.register(Command{"add-address", "add-address <name> <address>", "Set a contact's address", handleAddAddress})
	r.register(Command{"search", "search <term>", "Search contacts by any field prefix", handleSearch})
	r.register(Command{"add-note", "add-note <text> [#tag ...]", "Add a note, trailing #words become tags", handleAddNote})
	r.register(Command{"all-notes", "all-notes", "Show all notes", handleAllNotes})
	r.register(Command{"change-note", "change-note <id> <text>", "Replace a note's text", handleChangeNote})
	r.register(Command{"delete-note", "delete-note <id>", "Delete a note", handleDeleteNote})
	r.register(Command{"find-note", "find-note <term>", "Search notes by text", handleFindNote})
	r.register(Command{"find-tag", "find-tag <tag>", "Show notes carrying a tag", handleFindTag})
	r.register(Command{"add-tag", "add-tag <id> <tag>", "Add a tag to a note", handleAddTag})
	r.register(Command{"remove-tag", "remove-tag <id> <tag>", "Remove a tag from a note", handleRemoveTag})
	r.register(Command{"sort-notes", "sort-notes", "Show all notes ordered by tag", handleSortNotes})
	r.register(Command{"close", "close", "Save and exit", handleGoodbye})
	r.register(Command{"exit", "exit", "Save and exit", handleGoodbye})

	return r
}

func (r *Registry) register(cmd Command) {
	r.commands = append(r.commands, cmd)
	r.byName[cmd.Name] = cmd
}

// Names returns every command name, sorted, for autocompletion.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for _, cmd := range r.commands {
		names = append(names, cmd.Name)
	}
	sort.Strings(names)
	return names
}

// Split tokenizes a raw input line into a command name and arguments.
func Split(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// IsExit reports whether name is one of the exit commands.
func IsExit(name string) bool {
	return name == "close" || name == "exit"
}

// Dispatch parses the line and runs the matching command.
func (r *Registry) Dispatch(line string, sess *Session) (string, error) {
	name, args := Split(line)
	if name == "" {
		return "", nil
	}
	cmd, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("unknown command %q, type 'help' to list commands", name)
	}
	return cmd.Run(args, sess)
}

func handleHello(_ []string, _ *Session) (string, error) {
	return "How can I help you?", nil
}

func handleGoodbye(_ []string, _ *Session) (string, error) {
	return "Good bye!", nil
}

func (r *Registry) handleHelp(_ []string, _ *Session) (string, error) {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	width := 0
	for _, cmd := range r.commands {
		if len(cmd.Usage) > width {
			width = len(cmd.Usage)
		}
	}
	for _, cmd := range r.commands {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, cmd.Usage, cmd.Help)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
