// Package journal stores gratitude entries. The garden only consumes the
// entries' text and count; this package is the boundary to wherever they are
// kept: a plain text file that can be watched for edits, or a SQLite
// database.
package journal

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"
)

// ErrEmptyEntry is returned when an entry is blank after trimming.
var ErrEmptyEntry = errors.New("journal: empty entry")

// Entry is one gratitude entry.
type Entry struct {
	ID        int64
	Text      string
	CreatedAt time.Time
}

// Source is an append-only list of gratitude entries.
type Source interface {
	// Entries returns every entry in the order it was appended.
	Entries(ctx context.Context) ([]Entry, error)
	// Append stores a new entry and returns it.
	Append(ctx context.Context, text string) (Entry, error)
	// Close releases the source.
	Close() error
}

// Open opens the journal at path. Paths ending in .db, .sqlite or .sqlite3
// open a SQLite journal; anything else is a line-oriented text file.
func Open(ctx context.Context, path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(ctx, path)
	default:
		return OpenFile(path)
	}
}

// Texts returns the text of each entry.
func Texts(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text
	}
	return out
}

// normalize trims text and folds it onto one line.
func normalize(text string) (string, error) {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return "", ErrEmptyEntry
	}
	return text, nil
}
