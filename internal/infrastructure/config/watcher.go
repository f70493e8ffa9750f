package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/deskclock/internal/logging"
)

// Change is emitted by Watch each time the settings file is replaced or
// written. Err is set when the new content does not decode.
type Change struct {
	Document *Document
	Err      error
}

// Watch follows the settings file at path and sends the freshly decoded
// document on every change. The parent directory is watched because writes
// replace the file by renaming over it. The channel is closed when ctx ends.
func Watch(ctx context.Context, path string) (<-chan Change, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	changes := make(chan Change)
	go func() {
		defer close(changes)
		defer fw.Close()

		log := logging.FromContext(ctx)
		target := filepath.Clean(path)

		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(e.Name) != target {
					continue
				}
				if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
					continue
				}
				log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify settings change detected")

				doc, err := ReadDocument(path)
				select {
				case changes <- Change{Document: doc, Err: err}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("settings watcher error")
			}
		}
	}()

	return changes, nil
}
