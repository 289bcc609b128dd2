package stats

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordle/apps/solo/internal/db"
)

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "stats"))
	c, err := fs.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c != (Counts{}) {
		t.Fatalf("expected empty counts, got %v", c)
	}
}

func TestFileStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stats")
	fs := NewFileStore(path)
	want := Counts{3, 1, 4, 1, 5, 9, 2}
	if err := fs.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "3 1 4 1 5 9 2" {
		t.Fatalf("unexpected file contents %q", b)
	}
	got, err := fs.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFileStore_Corrupt(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"short":    "1 2 3",
		"negative": "1 2 3 4 5 6 -1",
		"garbage":  "1 2 3 4 5 six 7",
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := NewFileStore(path).Load(); !errors.Is(err, ErrCorrupt) {
			t.Fatalf("%s: expected ErrCorrupt, got %v", name, err)
		}
	}
}

func TestFileStore_ReadsMultiLineLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats")
	if err := os.WriteFile(path, []byte("0 1 2\n3 4 5 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tr, err := NewTracker(NewFileStore(path))
	if err != nil {
		t.Fatalf("tracker: %v", err)
	}
	if tr.Record().GamesPlayed() != 21 {
		t.Fatalf("expected 21 games, got %d", tr.Record().GamesPlayed())
	}
}

func TestSQLiteStore_SaveLoad(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "data", "app.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer conn.Close()

	st := NewSQLiteStore(conn)
	c, err := st.Load()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if c != (Counts{}) {
		t.Fatalf("expected empty counts, got %v", c)
	}

	tr, err := NewTracker(st)
	if err != nil {
		t.Fatalf("tracker: %v", err)
	}
	_ = tr.RecordWin(2)
	_ = tr.RecordWin(2)
	_ = tr.RecordLoss()

	got, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != (Counts{0, 2, 0, 0, 0, 0, 1}) {
		t.Fatalf("unexpected counts %v", got)
	}
}

func TestSQLiteStore_MigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")
	for i := 0; i < 2; i++ {
		conn, err := db.Open(path)
		if err != nil {
			t.Fatalf("open #%d: %v", i, err)
		}
		if err := NewSQLiteStore(conn).Save(Counts{1, 0, 0, 0, 0, 0, 0}); err != nil {
			t.Fatalf("save #%d: %v", i, err)
		}
		conn.Close()
	}
}
