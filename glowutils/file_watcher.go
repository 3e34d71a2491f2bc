package glowutils

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/logging"
)

// FileWatcher watches the files behind FileSources and reloads the ones that changed.
// Change events arrive on a background goroutine and are only recorded there; the
// reload itself happens in ReloadChanged, which must be called on the GL thread.
type FileWatcher interface {
	// Watch starts watching the file of s.
	//
	// Parameters:
	//   - s: the source to keep up to date
	//
	// Returns:
	//   - error: error if the file's directory cannot be watched
	Watch(s FileSource) error

	// Unwatch stops reloading s.
	//
	// Parameters:
	//   - s: the source
	Unwatch(s FileSource)

	// Pending returns the number of sources whose file changed since the last reload.
	//
	// Returns:
	//   - int: the number of pending sources
	Pending() int

	// ReloadChanged reloads every source whose file changed.
	//
	// Returns:
	//   - int: the number of sources reloaded
	ReloadChanged() int

	// Close stops watching all files.
	//
	// Returns:
	//   - error: error from the underlying watcher
	Close() error
}

// fileWatcher implements FileWatcher with fsnotify.
type fileWatcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	sources map[string][]FileSource
	dirs    map[string]int
	dirty   map[string]struct{}
	log     zerolog.Logger
	done    chan struct{}
	once    sync.Once
}

var _ FileWatcher = &fileWatcher{}

// NewFileWatcher creates a watcher and starts its event goroutine.
//
// Returns:
//   - FileWatcher: the watcher
//   - error: error if the platform watcher cannot be created
func NewFileWatcher() (FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}
	fw := &fileWatcher{
		watcher: w,
		sources: make(map[string][]FileSource),
		dirs:    make(map[string]int),
		dirty:   make(map[string]struct{}),
		log:     logging.Component("glowutils"),
		done:    make(chan struct{}),
	}
	go fw.run()
	return fw, nil
}

func (fw *fileWatcher) run() {
	defer close(fw.done)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			fw.markDirty(filepath.Clean(event.Name))
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.log.Warn().Err(err).Msg("file watcher error")
		}
	}
}

// markDirty records that path changed if any source is backed by it.
func (fw *fileWatcher) markDirty(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if _, ok := fw.sources[path]; ok {
		fw.dirty[path] = struct{}{}
	}
}

func (fw *fileWatcher) Watch(s FileSource) error {
	path := s.Path()
	dir := filepath.Dir(path)

	fw.mu.Lock()
	defer fw.mu.Unlock()
	for _, existing := range fw.sources[path] {
		if existing == s {
			return nil
		}
	}
	// Editors commonly replace files by renaming, which drops a watch placed on the file
	// itself, so the directory is watched instead.
	if fw.dirs[dir] == 0 {
		if err := fw.watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "watch %s", dir)
		}
	}
	fw.dirs[dir]++
	fw.sources[path] = append(fw.sources[path], s)
	return nil
}

func (fw *fileWatcher) Unwatch(s FileSource) {
	path := s.Path()
	dir := filepath.Dir(path)

	fw.mu.Lock()
	defer fw.mu.Unlock()
	list := fw.sources[path]
	for i, existing := range list {
		if existing != s {
			continue
		}
		list = append(list[:i], list[i+1:]...)
		if len(list) == 0 {
			delete(fw.sources, path)
			delete(fw.dirty, path)
		} else {
			fw.sources[path] = list
		}
		fw.dirs[dir]--
		if fw.dirs[dir] == 0 {
			delete(fw.dirs, dir)
			if err := fw.watcher.Remove(dir); err != nil {
				fw.log.Debug().Err(err).Str("dir", dir).Msg("remove watch")
			}
		}
		return
	}
}

func (fw *fileWatcher) Pending() int {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return len(fw.dirty)
}

func (fw *fileWatcher) ReloadChanged() int {
	fw.mu.Lock()
	var changed []FileSource
	for path := range fw.dirty {
		changed = append(changed, fw.sources[path]...)
	}
	fw.dirty = make(map[string]struct{})
	fw.mu.Unlock()

	reloaded := 0
	for _, s := range changed {
		if err := s.Reload(); err != nil {
			fw.log.Error().Err(err).Msg("reload failed")
			continue
		}
		fw.log.Info().Str("path", s.Path()).Msg("reloaded")
		reloaded++
	}
	return reloaded
}

func (fw *fileWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		err = fw.watcher.Close()
		<-fw.done
	})
	return err
}
