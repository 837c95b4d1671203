package journal

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// FileJournal keeps entries in a text file, one per line as
// "<RFC 3339 timestamp>\t<text>". Lines without a timestamp are read as bare
// text, so a hand-edited file works too. Blank lines are skipped.
type FileJournal struct {
	path string
	mu   sync.Mutex
}

// OpenFile returns a journal backed by the file at path. The file is created
// on first Append; a missing file reads as an empty journal.
func OpenFile(path string) (*FileJournal, error) {
	if path == "" {
		return nil, fmt.Errorf("open journal: empty path")
	}
	return &FileJournal{path: path}, nil
}

// Path returns the journal file path.
func (j *FileJournal) Path() string { return j.path }

// Entries reads every entry from the file.
func (j *FileJournal) Entries(ctx context.Context) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.Open(j.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e, ok := parseLine(sc.Text())
		if !ok {
			continue
		}
		e.ID = int64(len(entries) + 1)
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return entries, nil
}

// Append writes a new entry at the end of the file.
func (j *FileJournal) Append(ctx context.Context, text string) (Entry, error) {
	text, err := normalize(text)
	if err != nil {
		return Entry{}, err
	}
	existing, err := j.Entries(ctx)
	if err != nil {
		return Entry{}, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	e := Entry{ID: int64(len(existing) + 1), Text: text, CreatedAt: time.Now().UTC().Truncate(time.Second)}
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return Entry{}, fmt.Errorf("append journal: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%s\t%s\n", e.CreatedAt.Format(time.RFC3339), e.Text); err != nil {
		f.Close()
		return Entry{}, fmt.Errorf("append journal: %w", err)
	}
	if err := f.Close(); err != nil {
		return Entry{}, fmt.Errorf("append journal: %w", err)
	}
	return e, nil
}

// Close is a no-op; the file is opened per operation.
func (j *FileJournal) Close() error { return nil }

func parseLine(line string) (Entry, bool) {
	line = strings.TrimRight(line, "\r")
	if stamp, text, ok := strings.Cut(line, "\t"); ok {
		if at, err := time.Parse(time.RFC3339, strings.TrimSpace(stamp)); err == nil {
			text = strings.TrimSpace(text)
			if text == "" {
				return Entry{}, false
			}
			return Entry{Text: text, CreatedAt: at}, true
		}
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, false
	}
	return Entry{Text: line}, true
}
