package tasks

import (
	"context"
	"sync"
	"time"

	"installations_api/internal/logging"
	"installations_api/internal/metrics"
	"installations_api/internal/models"
	"installations_api/internal/notify"
	"installations_api/internal/serializer"

	"github.com/robfig/cron/v3"
)

// BoroughSource is the storage read by the watcher.
type BoroughSource interface {
	Boroughs(ctx context.Context) ([]models.Borough, error)
	CountFollowers(ctx context.Context, boroughID uint) (int64, error)
}

// BoroughWatcher publishes a borough_updated event whenever a borough's
// date_maj differs from the value seen on the previous check. The first
// check only records the baseline.
type BoroughWatcher struct {
	source    BoroughSource
	publisher notify.Publisher

	mu     sync.Mutex
	seen   map[uint]string
	primed bool
}

func NewBoroughWatcher(source BoroughSource, publisher notify.Publisher) *BoroughWatcher {
	return &BoroughWatcher{
		source:    source,
		publisher: publisher,
		seen:      make(map[uint]string),
	}
}

// Check runs one comparison and returns how many events were published.
func (w *BoroughWatcher) Check(ctx context.Context) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	boroughs, err := w.source.Boroughs(ctx)
	if err != nil {
		return 0, err
	}

	var changed []models.Borough
	for _, b := range boroughs {
		prev, known := w.seen[b.ID]
		if w.primed && (!known || prev != b.DateMaj) {
			changed = append(changed, b)
		}
		w.seen[b.ID] = b.DateMaj
	}
	if !w.primed {
		w.primed = true
		logging.Info().Int("boroughs", len(boroughs)).Msg("borough watcher baseline recorded")
		return 0, nil
	}

	published := 0
	for _, b := range changed {
		followers, err := w.source.CountFollowers(ctx, b.ID)
		if err != nil {
			logging.Error().Err(err).Uint("borough_id", b.ID).Msg("count followers")
			continue
		}
		e := notify.NewEvent(notify.BoroughUpdated, b.ID, map[string]interface{}{
			"arrondissement": serializer.BoroughDocument(b),
			"followers":      followers,
		})
		if err := w.publisher.Publish(ctx, e); err != nil {
			logging.Error().Err(err).Uint("borough_id", b.ID).Msg("publish borough_updated")
			continue
		}
		published++
		metrics.BoroughUpdatesTotal.Inc()
	}
	if len(changed) > 0 {
		logging.Info().Int("changed", len(changed)).Int("published", published).Msg("borough updates detected")
	}
	return published, nil
}

// InitScheduler starts a cron scheduler (with seconds) that runs the watcher
// on spec. The caller stops it.
func InitScheduler(spec string, w *BoroughWatcher) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := w.Check(ctx); err != nil {
			logging.Error().Err(err).Msg("borough watcher check failed")
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logging.Info().Str("spec", spec).Msg("cron scheduler started")
	return c, nil
}
