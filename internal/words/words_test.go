package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeList(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_EmbeddedFallback(t *testing.T) {
	l, err := Load("", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !l.Contains("crane") || !l.IsAnswer("crane") {
		t.Fatal("expected crane to be an embedded answer")
	}
	if !l.Contains("erase") {
		t.Fatal("expected erase to be an allowed guess")
	}
	a, g := l.Stats()
	if a == 0 || g < a {
		t.Fatalf("unexpected counts answers=%d allowed=%d", a, g)
	}
}

func TestLoad_BothFiles(t *testing.T) {
	dir := t.TempDir()
	ans := writeList(t, dir, "answers.txt", "# answers\nCRANE\n\nslate\ntoolong\nab1de\n")
	allow := writeList(t, dir, "allowed.txt", "erase\n")
	l, err := Load(ans, allow)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a, g := l.Stats()
	if a != 2 || g != 3 {
		t.Fatalf("got answers=%d allowed=%d, want 2 and 3", a, g)
	}
	if l.IsAnswer("erase") {
		t.Fatal("erase should only be allowed")
	}
	if !l.Contains("ERASE") {
		t.Fatal("lookups should be case-insensitive")
	}
}

func TestLoad_AllowedOnlyDoublesAsAnswers(t *testing.T) {
	allow := writeList(t, t.TempDir(), "allowed.txt", "lolly\n")
	l, err := Load("", allow)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := l.RandomAnswer(); got != "LOLLY" {
		t.Fatalf("RandomAnswer = %q, want LOLLY", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt"), ""); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNew_Empty(t *testing.T) {
	if _, err := New([]string{"abc", "12345"}, nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestRandomAnswer_IsUppercaseAnswer(t *testing.T) {
	l, err := New([]string{"crane", "slate"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		w := l.RandomAnswer()
		if w != strings.ToUpper(w) || !l.IsAnswer(w) {
			t.Fatalf("unexpected answer %q", w)
		}
	}
}
