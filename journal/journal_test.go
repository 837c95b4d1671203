package journal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// --- Normalization ---

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		err  error
	}{
		{"plain", "the sunrise", "the sunrise", nil},
		{"trimmed", "  tea  ", "tea", nil},
		{"folded", "a\nlong\tday", "a long day", nil},
		{"blank", "   ", "", ErrEmptyEntry},
		{"empty", "", "", ErrEmptyEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalize(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTexts(t *testing.T) {
	got := Texts([]Entry{{Text: "a"}, {Text: "b"}})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Texts = %v", got)
	}
}

// --- File journal ---

func TestFileJournalMissingFileIsEmpty(t *testing.T) {
	j, err := OpenFile(filepath.Join(t.TempDir(), "journal.txt"))
	if err != nil {
		t.Fatal(err)
	}
	entries, err := j.Entries(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want 0", len(entries))
	}
}

func TestFileJournalAppendAndList(t *testing.T) {
	ctx := context.Background()
	j, err := OpenFile(filepath.Join(t.TempDir(), "journal.txt"))
	if err != nil {
		t.Fatal(err)
	}
	for _, text := range []string{"warm bread", " a call from home ", "rain"} {
		if _, err := j.Append(ctx, text); err != nil {
			t.Fatalf("Append(%q): %v", text, err)
		}
	}
	if _, err := j.Append(ctx, "  "); !errors.Is(err, ErrEmptyEntry) {
		t.Errorf("blank Append err = %v, want ErrEmptyEntry", err)
	}

	entries, err := j.Entries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"warm bread", "a call from home", "rain"}
	if len(entries) != len(want) {
		t.Fatalf("entries = %d, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Text != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, e.Text, want[i])
		}
		if e.ID != int64(i+1) {
			t.Errorf("entries[%d].ID = %d, want %d", i, e.ID, i+1)
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("entries[%d] has no timestamp", i)
		}
	}
}

func TestFileJournalReadsHandEditedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	content := "2026-01-02T03:04:05Z\tstamped\n\nbare line\n2026-01-02T03:04:05Z\t   \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	j, _ := OpenFile(path)
	entries, err := j.Entries(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Text != "stamped" || entries[0].CreatedAt.Year() != 2026 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Text != "bare line" || !entries[1].CreatedAt.IsZero() {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestOpenFileEmptyPath(t *testing.T) {
	if _, err := OpenFile(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		text    string
		stamped bool
		ok      bool
	}{
		{"stamped", "2026-01-02T03:04:05Z\tquiet tea", "quiet tea", true, true},
		{"stamped crlf", "2026-01-02T03:04:05Z\tquiet tea\r", "quiet tea", true, true},
		{"stamped blank body", "2026-01-02T03:04:05Z\t   ", "", false, false},
		{"stamped empty body", "2026-01-02T03:04:05Z\t", "", false, false},
		{"bare", "  bare line  ", "bare line", false, true},
		{"tab only", "\t", "", false, false},
		{"tab without stamp", "note\tmore", "note\tmore", false, true},
		{"blank", "   ", "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := parseLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v (entry %+v)", ok, tt.ok, e)
			}
			if !ok {
				return
			}
			if e.Text != tt.text {
				t.Errorf("text = %q, want %q", e.Text, tt.text)
			}
			if e.CreatedAt.IsZero() == tt.stamped {
				t.Errorf("stamped = %v, want %v", !e.CreatedAt.IsZero(), tt.stamped)
			}
		})
	}
}

// --- SQLite journal ---

func TestSQLiteJournalAppendAndList(t *testing.T) {
	ctx := context.Background()
	j, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	first, err := j.Append(ctx, "morning light")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := j.Append(ctx, "a kind note"); err != nil {
		t.Fatal(err)
	}
	if _, err := j.Append(ctx, ""); !errors.Is(err, ErrEmptyEntry) {
		t.Errorf("blank Append err = %v, want ErrEmptyEntry", err)
	}

	entries, err := j.Entries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].ID != first.ID || entries[0].Text != "morning light" {
		t.Errorf("entries[0] = %+v, want id %d", entries[0], first.ID)
	}
	if !entries[0].CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", entries[0].CreatedAt, first.CreatedAt)
	}
}

func TestSQLiteJournalReopenKeepsEntries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := j.Append(ctx, "kept"); err != nil {
		t.Fatal(err)
	}
	j.Close()

	j, err = OpenSQLite(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()
	entries, err := j.Entries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Text != "kept" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestOpenPicksBackendByExtension(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	src, err := Open(ctx, filepath.Join(dir, "g.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := src.(*SQLiteJournal); !ok {
		t.Errorf(".sqlite opened %T", src)
	}
	src.Close()

	src, err = Open(ctx, filepath.Join(dir, "g.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := src.(*FileJournal); !ok {
		t.Errorf(".txt opened %T", src)
	}
}

// --- Watch ---

func TestWatchDeliversAppends(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	j, _ := OpenFile(filepath.Join(t.TempDir(), "journal.txt"))
	w, err := Watch(ctx, j)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if _, err := j.Append(ctx, "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := j.Append(ctx, "second"); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case entries := <-w.Updates:
			if len(entries) == 2 {
				return
			}
		case <-deadline:
			t.Fatal("no update with both entries")
		}
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	j, _ := OpenFile(filepath.Join(dir, "journal.txt"))
	w, err := Watch(ctx, j)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case entries := <-w.Updates:
		t.Errorf("unexpected update %+v", entries)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatchStopClosesUpdates(t *testing.T) {
	j, _ := OpenFile(filepath.Join(t.TempDir(), "journal.txt"))
	w, err := Watch(context.Background(), j)
	if err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
	if _, ok := <-w.Updates; ok {
		t.Error("Updates still open after Stop")
	}
}
