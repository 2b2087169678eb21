package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okravets/abook/internal/models"
	"github.com/okravets/abook/internal/render"
)

func handleAdd(args []string, sess *Session) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: add <name> <phone>")
	}
	name, phone := args[0], args[1]

	if rec, ok := sess.Contacts.Find(name); ok {
		if _, has := rec.FindPhone(phone); has {
			return fmt.Sprintf("Contact %s already has this phone number.", name), nil
		}
		if err := rec.AddPhone(phone); err != nil {
			return "", err
		}
		return fmt.Sprintf("Phone number added to existing contact %s.", name), nil
	}

	rec, err := models.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	sess.Contacts.Add(rec)
	return "Contact added.", nil
}

func handleChange(args []string, sess *Session) (string, error) {
	if len(args) < 3 {
		return "", fmt.Errorf("usage: change <name> <field> <args>, fields: phone, email, address, name")
	}
	name, field := args[0], strings.ToLower(args[1])

	rec, ok := sess.Contacts.Find(name)
	if !ok {
		return "", fmt.Errorf("contact %s: %w", name, models.ErrNotFound)
	}

	switch field {
	case "phone":
		if len(args) != 4 {
			return "", fmt.Errorf("usage: change <name> phone <old> <new>")
		}
		if err := rec.EditPhone(args[2], args[3]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Phone updated for %s.", name), nil
	case "email":
		if len(args) != 4 {
			return "", fmt.Errorf("usage: change <name> email <old> <new>")
		}
		if err := rec.EditEmail(args[2], args[3]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Email updated for %s.", name), nil
	case "address":
		if err := rec.SetAddress(strings.Join(args[2:], " ")); err != nil {
			return "", err
		}
		return fmt.Sprintf("Address updated for %s.", name), nil
	case "name":
		if len(args) != 3 {
			return "", fmt.Errorf("usage: change <name> name <new>")
		}
		if err := sess.Contacts.Rename(name, args[2]); err != nil {
			return "", err
		}
		return fmt.Sprintf("Contact %s renamed to %s.", name, args[2]), nil
	default:
		return "", fmt.Errorf("unknown field %q, fields: phone, email, address, name", field)
	}
}

func handlePhone(args []string, sess *Session) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: phone <name>")
	}
	rec, ok := sess.Contacts.Find(args[0])
	if !ok {
		return "", fmt.Errorf("contact %s: %w", args[0], models.ErrNotFound)
	}
	return render.Contact(rec), nil
}

func handleAll(_ []string, sess *Session) (string, error) {
	if sess.Contacts.Len() == 0 {
		return "No contacts.", nil
	}
	return render.Contacts(sess.Contacts.All()), nil
}

func handleDelete(args []string, sess *Session) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: delete <name>")
	}
	name := args[0]
	if _, ok := sess.Contacts.Find(name); !ok {
		return fmt.Sprintf("Contact '%s' not found.", name), nil
	}
	sess.Contacts.Delete(name)
	return fmt.Sprintf("Contact '%s' has been deleted.", name), nil
}

func handleRename(args []string, sess *Session) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: rename <old> <new>")
	}
	if err := sess.Contacts.Rename(args[0], args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s renamed to %s.", args[0], args[1]), nil
}

func handleAddBirthday(args []string, sess *Session) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: add-birthday <name> <DD.MM.YYYY>")
	}
	name, birthday := args[0], args[1]

	if rec, ok := sess.Contacts.Find(name); ok {
		if err := rec.AddBirthday(birthday); err != nil {
			return "", err
		}
		return fmt.Sprintf("Birthday added to existing contact %s.", name), nil
	}

	rec, err := models.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := rec.AddBirthday(birthday); err != nil {
		return "", err
	}
	sess.Contacts.Add(rec)
	return "Contact with birthday added.", nil
}

func handleShowBirthday(args []string, sess *Session) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: show-birthday <name>")
	}
	rec, ok := sess.Contacts.Find(args[0])
	if !ok {
		return "", fmt.Errorf("contact %s: %w", args[0], models.ErrNotFound)
	}
	return rec.ShowBirthday(), nil
}

func handleBirthdays(args []string, sess *Session) (string, error) {
	days := sess.BirthdayWindow
	switch len(args) {
	case 0:
	case 1:
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("the number of days must be an integer, usage: birthdays [days]")
		}
		if parsed < 0 {
			return "", fmt.Errorf("the number of days must not be negative")
		}
		days = parsed
	default:
		return "", fmt.Errorf("usage: birthdays [days]")
	}

	if sess.Contacts.Len() == 0 {
		return "No contacts.", nil
	}
	upcoming := sess.Contacts.UpcomingBirthdays(sess.Now(), days)
	if len(upcoming) == 0 {
		return fmt.Sprintf("No birthdays within %d days.", days), nil
	}
	return render.Birthdays(upcoming), nil
}

func handleAddEmail(args []string, sess *Session) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: add-email <name> <email>")
	}
	name, email := args[0], args[1]

	rec, ok := sess.Contacts.Find(name)
	if !ok {
		return "", fmt.Errorf("contact %s: %w", name, models.ErrNotFound)
	}
	if _, has := rec.FindEmail(email); has {
		return fmt.Sprintf("Contact %s already has this email.", name), nil
	}
	if err := rec.AddEmail(email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Email added to contact %s.", name), nil
}

func handleAddAddress(args []string, sess *Session) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("usage: add-address <name> <address>")
	}
	name := args[0]

	rec, ok := sess.Contacts.Find(name)
	if !ok {
		return "", fmt.Errorf("contact %s: %w", name, models.ErrNotFound)
	}
	if err := rec.SetAddress(strings.Join(args[1:], " ")); err != nil {
		return "", err
	}
	return fmt.Sprintf("Address set for contact %s.", name), nil
}

func handleSearch(args []string, sess *Session) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: search <term>")
	}
	if sess.Contacts.Len() == 0 {
		return "No contacts.", nil
	}
	matches := sess.Contacts.SearchInFields(args[0])
	if len(matches) == 0 {
		return "No matches found.", nil
	}
	return render.Contacts(matches), nil
}
