package workers

import (
	"context"
	"log/slog"
	"time"

	"guest-push/errors"

	"github.com/dgraph-io/badger/v4"
)

// discardRatio is the reclaimable fraction a value-log file must reach
// before Badger rewrites it. 0.5 is the value Badger documents as a
// reasonable default.
const discardRatio = 0.5

// StoreGCWorker periodically runs Badger's value-log garbage collection,
// which Badger does not schedule on its own.
type StoreGCWorker struct {
	db       *badger.DB
	log      *slog.Logger
	interval time.Duration
}

func NewStoreGCWorker(db *badger.DB, log *slog.Logger, interval time.Duration) *StoreGCWorker {
	return &StoreGCWorker{db: db, log: log, interval: interval}
}

func (w *StoreGCWorker) Run(ctx context.Context) error {
	w.log.Info("Starting store GC worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// One GC call rewrites at most one value-log file; loop
			// until Badger reports nothing left to rewrite.
			for {
				err := w.db.RunValueLogGC(discardRatio)
				if errors.Is(err, badger.ErrNoRewrite) {
					break
				}
				if err != nil {
					w.log.Warn("Value-log GC failed", "error", err)
					break
				}
				w.log.Debug("Value-log file reclaimed")
			}
		}
	}
}
