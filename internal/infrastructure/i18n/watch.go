package i18n

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the bundle whenever a message file in the override dir
// changes. It returns when ctx is done. Without an override dir, or when the
// dir cannot be watched, it returns nil right away and translations stay as
// loaded.
func (t *Translator) Watch(ctx context.Context) error {
	if t.dir == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		t.logger.Warn("i18n: hot reload disabled", zap.Error(err))
		return nil
	}
	defer w.Close()
	if err := w.Add(t.dir); err != nil {
		t.logger.Warn("i18n: hot reload disabled", zap.String("dir", t.dir), zap.Error(err))
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isMessageFile(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				t.Reload()
				t.logger.Info("i18n: translations reloaded", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			t.logger.Warn("i18n: watcher error", zap.Error(err))
		}
	}
}
