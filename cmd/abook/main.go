package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okravets/abook/internal/book"
	"github.com/okravets/abook/internal/commands"
	"github.com/okravets/abook/internal/config"
	"github.com/okravets/abook/internal/storage"
	"github.com/okravets/abook/internal/ui"
	"github.com/okravets/abook/internal/ui/styles"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("abook %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: bad config, using defaults: %v\n", err)
		cfg = config.Default()
	}
	styles.SetTheme(cfg.Theme)

	path := cfg.DBPath()
	if path == "" {
		path, err = storage.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving data directory: %v\n", err)
			os.Exit(1)
		}
	}

	contacts := book.NewAddressBook()
	notes := book.NewNoteBook()
	var history []string
	var recordHistory func(string)

	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open %s (%v); changes will not be saved\n", path, err)
	} else {
		defer store.Close()
		contacts, notes, err = store.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read saved data (%v); starting empty\n", err)
		}
		history, _ = store.History(200)
		recordHistory = func(line string) { _ = store.AppendHistory(line) }
	}

	sess := commands.NewSession(contacts, notes)
	sess.BirthdayWindow = cfg.BirthdaysAhead
	registry := commands.NewRegistry()

	app := ui.NewApp(sess, registry, history, recordHistory)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}

	if store != nil {
		if err := store.Save(contacts, notes); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving data: %v\n", err)
			os.Exit(1)
		}
		_ = store.SetSetting("last_saved", time.Now().Format(time.RFC3339))
	}
}
