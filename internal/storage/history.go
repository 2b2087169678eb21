package storage

// historyLimit caps how many prompt lines the store keeps.
const historyLimit = 1000

// History returns the most recent prompt lines, oldest first.
func (s *Store) History(limit int) ([]string, error) {
	rows, err := s.Query("SELECT line FROM history ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Reverse into chronological order
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}

// AppendHistory records a prompt line and prunes entries beyond the cap.
func (s *Store) AppendHistory(line string) error {
	if _, err := s.Exec("INSERT INTO history (line) VALUES (?)", line); err != nil {
		return err
	}
	_, err := s.Exec(`
		DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY id DESC LIMIT ?
		)
	`, historyLimit)
	return err
}
