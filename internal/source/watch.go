package source

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/mindmap"
)

// settleDelay coalesces the bursts of events editors produce for one save.
const settleDelay = 150 * time.Millisecond

// Update is one reload of a watched document.
type Update struct {
	Doc mindmap.Mapping
	Err error
}

// Watch reports every change to the file at path until ctx is done. The
// containing directory is watched so that editors which replace the file
// on save are followed. The channel is closed when watching stops.
func Watch(ctx context.Context, path string, log *slog.Logger) (<-chan Update, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	out := make(chan Update, 1)
	go func() {
		defer close(out)
		defer w.Close()

		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				log.Debug("document changed", "path", abs, "op", event.Op.String())
				if timer == nil {
					timer = time.NewTimer(settleDelay)
				} else {
					timer.Reset(settleDelay)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				doc, err := Load(ctx, abs)
				select {
				case out <- Update{Doc: doc, Err: err}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("watch error", "path", abs, "err", err)
			}
		}
	}()
	return out, nil
}
