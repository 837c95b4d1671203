package journal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher re-reads a FileJournal whenever its file changes on disk and
// delivers the full entry list on Updates.
type Watcher struct {
	Updates <-chan []Entry // Read-only external channel

	journal *FileJournal
	updates chan []Entry
	stop    chan struct{}
	once    sync.Once
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// Watch starts watching j's file. The parent directory is watched so the
// file may be created, replaced or truncated by other programs. Watching
// ends when ctx is cancelled or Stop is called.
func Watch(ctx context.Context, j *FileJournal) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch journal: %w", err)
	}
	dir := filepath.Dir(j.Path())
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch journal: %w", err)
	}

	ch := make(chan []Entry, 4)
	w := &Watcher{
		Updates: ch,
		journal: j,
		updates: ch,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		watcher: fw,
	}
	go w.loop(ctx)
	return w, nil
}

// Stop closes the watcher and waits for its goroutine to exit. The Updates
// channel is closed afterwards.
func (w *Watcher) Stop() {
	w.once.Do(func() { close(w.stop) })
	<-w.done
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	defer close(w.updates)
	defer w.watcher.Close()

	target := filepath.Clean(w.journal.Path())
	var pending time.Time
	ticker := time.NewTicker(watchDebounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < watchDebounce {
				continue
			}
			pending = time.Time{}
			w.emit(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			_, _ = fmt.Fprintf(os.Stderr, "[sanctuary] journal watch: %v\n", err)
		}
	}
}

func (w *Watcher) emit(ctx context.Context) {
	entries, err := w.journal.Entries(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[sanctuary] journal watch: %v\n", err)
		return
	}
	select {
	case w.updates <- entries:
	case <-ctx.Done():
	case <-w.stop:
	}
}
