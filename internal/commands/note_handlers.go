package commands

import (
	"fmt"
	"strings"

	"github.com/okravets/abook/internal/models"
	"github.com/okravets/abook/internal/render"
)

// splitNoteArgs separates note text from trailing #tag words.
func splitNoteArgs(args []string) (text string, tags []string) {
	var words []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "#") && len(arg) > 1 {
			tags = append(tags, strings.TrimPrefix(arg, "#"))
			continue
		}
		words = append(words, arg)
	}
	return strings.Join(words, " "), tags
}

func handleAddNote(args []string, sess *Session) (string, error) {
	text, tags := splitNoteArgs(args)
	if text == "" {
		return "", fmt.Errorf("usage: add-note <text> [#tag ...]")
	}
	note := models.NewNote(text, tags...)
	sess.Notes.Add(note)
	return fmt.Sprintf("Note %s added.", models.ShortID(note.ID())), nil
}

func handleAllNotes(_ []string, sess *Session) (string, error) {
	if sess.Notes.Len() == 0 {
		return "No notes.", nil
	}
	return render.Notes(sess.Notes.All()), nil
}

func handleChangeNote(args []string, sess *Session) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("usage: change-note <id> <text>")
	}
	note, err := sess.Notes.Resolve(args[0])
	if err != nil {
		return "", err
	}
	if err := sess.Notes.Change(note.ID(), strings.Join(args[1:], " ")); err != nil {
		return "", err
	}
	return fmt.Sprintf("Note %s updated.", models.ShortID(note.ID())), nil
}

func handleDeleteNote(args []string, sess *Session) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: delete-note <id>")
	}
	note, err := sess.Notes.Resolve(args[0])
	if err != nil {
		return "", err
	}
	if err := sess.Notes.Delete(note.ID()); err != nil {
		return "", err
	}
	return fmt.Sprintf("Note %s deleted.", models.ShortID(note.ID())), nil
}

func handleFindNote(args []string, sess *Session) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: find-note <term>")
	}
	matches := sess.Notes.Search(strings.Join(args, " "))
	if len(matches) == 0 {
		return "No matching notes.", nil
	}
	return render.Notes(matches), nil
}

func handleFindTag(args []string, sess *Session) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: find-tag <tag>")
	}
	matches := sess.Notes.SearchByTag(strings.TrimPrefix(args[0], "#"))
	if len(matches) == 0 {
		return "No notes with that tag.", nil
	}
	return render.Notes(matches), nil
}

func handleAddTag(args []string, sess *Session) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: add-tag <id> <tag>")
	}
	note, err := sess.Notes.Resolve(args[0])
	if err != nil {
		return "", err
	}
	note.AddTag(strings.TrimPrefix(args[1], "#"))
	return fmt.Sprintf("Tag added to note %s.", models.ShortID(note.ID())), nil
}

func handleRemoveTag(args []string, sess *Session) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: remove-tag <id> <tag>")
	}
	note, err := sess.Notes.Resolve(args[0])
	if err != nil {
		return "", err
	}
	note.RemoveTag(strings.TrimPrefix(args[1], "#"))
	return fmt.Sprintf("Tag removed from note %s.", models.ShortID(note.ID())), nil
}

func handleSortNotes(_ []string, sess *Session) (string, error) {
	if sess.Notes.Len() == 0 {
		return "No notes.", nil
	}
	return render.Notes(sess.Notes.SortedByTag()), nil
}
