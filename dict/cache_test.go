package dict

import (
	"compress/gzip"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"shiritori.exe.dev/game"
)

func openTestCache(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.sqlite3")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func TestCacheRoundTrip(t *testing.T) {
	db := openTestCache(t)
	words := []game.Word{
		{Kanji: "朝", Kana: "あさ", Rank: 3, Noun: true},
		{Kanji: "", Kana: "ゆっくり", Rank: 6, Noun: false},
	}
	if err := SaveWords(db, words); err != nil {
		t.Fatalf("SaveWords: %v", err)
	}

	got, err := LoadWords(db)
	if err != nil {
		t.Fatalf("LoadWords: %v", err)
	}
	if len(got) != len(words) {
		t.Fatalf("got %d words, want %d", len(got), len(words))
	}
	for i := range words {
		if got[i] != words[i] {
			t.Errorf("word %d = %+v, want %+v", i, got[i], words[i])
		}
	}
}

func TestSaveWordsReplaces(t *testing.T) {
	db := openTestCache(t)
	if err := SaveWords(db, []game.Word{{Kana: "あさ", Rank: 1, Noun: true}}); err != nil {
		t.Fatalf("SaveWords: %v", err)
	}
	if err := SaveWords(db, []game.Word{{Kana: "さる", Rank: 2, Noun: true}}); err != nil {
		t.Fatalf("SaveWords: %v", err)
	}
	got, err := LoadWords(db)
	if err != nil {
		t.Fatalf("LoadWords: %v", err)
	}
	if len(got) != 1 || got[0].Kana != "さる" {
		t.Errorf("got %v, want only さる", got)
	}
}

func TestLoadWordsCold(t *testing.T) {
	db := openTestCache(t)
	got, err := LoadWords(db)
	if err != nil {
		t.Fatalf("LoadWords: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty cold cache, got %v", got)
	}
}

func TestWordsFillsAndServesCache(t *testing.T) {
	db := openTestCache(t)
	dictPath := filepath.Join(t.TempDir(), "jmdict.xml.gz")
	writeGzip(t, dictPath, sampleJMdict)

	words, err := Words(db, dictPath)
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}

	// A warm cache never touches the dictionary file.
	again, err := Words(db, filepath.Join(t.TempDir(), "missing.xml"))
	if err != nil {
		t.Fatalf("Words with warm cache: %v", err)
	}
	if len(again) != len(words) {
		t.Errorf("warm cache returned %d words, want %d", len(again), len(words))
	}
}

func writeGzip(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(content)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
}
