package content

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 500 * time.Millisecond

// Store hands out the current Site. Reloads swap in a new snapshot; readers
// never see a partially built Site.
type Store struct {
	cur atomic.Pointer[Site]
}

// NewStore wraps an initial snapshot.
func NewStore(s *Site) *Store {
	st := &Store{}
	st.cur.Store(s)
	return st
}

// Site returns the current snapshot.
func (s *Store) Site() *Site {
	return s.cur.Load()
}

// Reload replaces the snapshot with the content of dir. On error the old
// snapshot stays in place.
func (s *Store) Reload(dir string) error {
	next, err := LoadFS(os.DirFS(dir))
	if err != nil {
		return err
	}
	s.cur.Store(next)
	return nil
}

// Watch reloads dir whenever a file in it changes, until ctx is done.
func (s *Store) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create content watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Printf("Watching %s for content changes", dir)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, func() {
				if err := s.Reload(dir); err != nil {
					log.Printf("Content reload failed, keeping previous content: %v", err)
					return
				}
				log.Printf("Content reloaded from %s", dir)
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Content watcher error: %v", err)
		}
	}
}
