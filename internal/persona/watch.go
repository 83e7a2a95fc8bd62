package persona

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// TeamWatcher reloads persona definitions when the team file changes on
// disk. Interactive sessions use it to pick up edits without a restart.
type TeamWatcher struct {
	path      string
	watcher   *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once
}

// WatchTeam watches path and calls onChange with freshly loaded
// definitions on every successful reload. Parse failures are reported via
// onError and the previous definitions stay in effect.
func WatchTeam(path string, onChange func([]Definition), onError func(error)) (*TeamWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory: editors replace files rather than writing in
	// place, which would drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	tw := &TeamWatcher{
		path:    path,
		watcher: watcher,
		done:    make(chan struct{}),
	}

	go tw.loop(onChange, onError)

	return tw, nil
}

func (tw *TeamWatcher) loop(onChange func([]Definition), onError func(error)) {
	target := filepath.Base(tw.path)
	for {
		select {
		case <-tw.done:
			return
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			defs, err := LoadTeam(tw.path)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onChange(defs)
		case <-tw.watcher.Errors:
			// Keep watching.
		}
	}
}

// Close stops the watcher. Safe to call more than once, including
// concurrently.
func (tw *TeamWatcher) Close() error {
	tw.closeOnce.Do(func() {
		close(tw.done)
	})
	return tw.watcher.Close()
}
