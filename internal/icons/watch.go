package icons

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config at path whenever it is written or created.
// Successfully loaded configs are sent on the first channel,
// load and watcher errors on the second. Both channels are closed when
// ctx is done.
//
// The parent directory is watched rather than the file so that editors
// which save by renaming over the original are picked up.
func Watch(ctx context.Context, path string) (<-chan *Config, <-chan error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create config watcher: %w", err)
	}
	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	configs := make(chan *Config)
	errs := make(chan error)
	go func() {
		defer close(configs)
		defer close(errs)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					select {
					case errs <- err:
					case <-ctx.Done():
						return
					}
					continue
				}
				select {
				case configs <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case errs <- err:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return configs, errs, nil
}
