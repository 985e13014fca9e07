package dict

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"shiritori.exe.dev/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS words (
	kanji TEXT NOT NULL,
	kana TEXT NOT NULL,
	rank INTEGER NOT NULL,
	noun INTEGER NOT NULL
);`

// Open opens (creating if needed) the word cache database.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open word cache: %w", err)
	}
	return db, nil
}

// Migrate creates the cache schema.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrate word cache: %w", err)
	}
	return nil
}

// SaveWords replaces the cached word list in a single transaction.
func SaveWords(db *sql.DB, words []game.Word) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM words`); err != nil {
		return fmt.Errorf("clear word cache: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO words (kanji, kana, rank, noun) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, w := range words {
		if _, err := stmt.Exec(w.Kanji, w.Kana, w.Rank, w.Noun); err != nil {
			return fmt.Errorf("insert word %q: %w", w.Kana, err)
		}
	}
	return tx.Commit()
}

// LoadWords returns the cached word list; an empty slice means the cache
// is cold.
func LoadWords(db *sql.DB) ([]game.Word, error) {
	rows, err := db.Query(`SELECT kanji, kana, rank, noun FROM words`)
	if err != nil {
		return nil, fmt.Errorf("load word cache: %w", err)
	}
	defer rows.Close()

	var words []game.Word
	for rows.Next() {
		var w game.Word
		if err := rows.Scan(&w.Kanji, &w.Kana, &w.Rank, &w.Noun); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load word cache: %w", err)
	}
	return words, nil
}

// Words returns the vocabulary, serving from the cache when warm and
// otherwise parsing jmdictPath and filling the cache.
func Words(db *sql.DB, jmdictPath string) ([]game.Word, error) {
	words, err := LoadWords(db)
	if err != nil {
		return nil, err
	}
	if len(words) > 0 {
		slog.Info("word cache hit", "words", len(words))
		return words, nil
	}

	slog.Info("word cache cold, parsing dictionary", "path", jmdictPath)
	words, err = ParseFile(jmdictPath)
	if err != nil {
		return nil, err
	}
	if err := SaveWords(db, words); err != nil {
		return nil, err
	}
	return words, nil
}
