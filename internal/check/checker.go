// Package check orchestrates one status determination: fetch, classify,
// persist, detect change.
package check

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/isawsback/isawsback/internal/classify"
	"github.com/isawsback/isawsback/internal/domain"
	"github.com/isawsback/isawsback/internal/fetch"
	"github.com/isawsback/isawsback/internal/notify"
	"github.com/isawsback/isawsback/internal/repo"
)

// Checker drives Fetcher -> Classifier -> Store and fires the change
// notification on a tri-state transition. All collaborators are injected
// so tests can substitute fakes.
type Checker struct {
	logger   *zap.Logger
	fetcher  fetch.Fetcher
	store    repo.ResultStore
	notifier notify.Notifier
	now      func() time.Time

	// mu serializes checks. Overlapping invocations (timer tick plus a
	// manual trigger) queue instead of racing, which keeps the persisted
	// timestamps monotonic and makes "previous" well-defined.
	mu   sync.Mutex
	prev *domain.Result
}

func New(logger *zap.Logger, f fetch.Fetcher, store repo.ResultStore, n notify.Notifier) *Checker {
	return &Checker{
		logger:   logger,
		fetcher:  f,
		store:    store,
		notifier: n,
		now:      time.Now,
	}
}

// SeedPrevious loads the persisted Result to become the baseline for change
// detection, so a restart does not re-announce an unchanged state. A load
// failure means no baseline, never a startup failure.
func (c *Checker) SeedPrevious(ctx context.Context) {
	r, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Warn("seed_load_error", zap.Error(err))
		return
	}
	c.mu.Lock()
	c.prev = r
	c.mu.Unlock()
}

// LoadLastResult returns the persisted Result, or nil when none exists.
func (c *Checker) LoadLastResult(ctx context.Context) (*domain.Result, error) {
	return c.store.Load(ctx)
}

// CheckNow runs one determination and always returns a Result; every
// failure mode is captured into the Result instead of an error.
//
// On a successful fetch an ambiguous classification is stored as "not
// down" (the conservative default: ambiguity must never surface as an
// alarm). Only total fetch exhaustion persists the true unknown, down=nil.
func (c *Checker) CheckNow(ctx context.Context) *domain.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.prev
	res := c.determine(ctx)

	if err := c.store.Save(ctx, res); err != nil {
		// best-effort: a storage fault never prevents returning the Result
		c.logger.Warn("save_error", zap.Error(err))
	}

	c.notifyIfChanged(ctx, prev, res)
	c.prev = res

	c.logger.Info("checked",
		zap.String("down", res.DownWord()),
		zap.String("source", res.SourceLabel()),
		zap.String("error", res.Error),
	)
	return res
}

func (c *Checker) determine(ctx context.Context) *domain.Result {
	payload, err := c.fetcher.FetchStatusText(ctx)
	if err != nil {
		return &domain.Result{
			Down:      nil,
			Source:    domain.SourceError,
			Timestamp: c.now(),
			Error:     err.Error(),
		}
	}

	verdict := classify.Classify(payload.Text)
	down := verdict == classify.Down // Unknown collapses to "not down"
	return &domain.Result{
		Down:      domain.Bool(down),
		Source:    payload.Source,
		Timestamp: c.now(),
		Raw:       domain.TruncateRaw(payload.Text),
	}
}

// notifyIfChanged fires zero or one notification: only when a previous
// Result exists and its tri-state verdict differs from the new one. Source
// or error churn without a verdict change stays silent.
func (c *Checker) notifyIfChanged(ctx context.Context, prev, next *domain.Result) {
	if c.notifier == nil || prev == nil {
		return
	}
	if domain.SameVerdict(prev.Down, next.Down) {
		return
	}
	text := ChangeMessage(prev, next)
	if err := c.notifier.Send(ctx, "isAWSback", text); err != nil {
		c.logger.Warn("notify_error", zap.Error(err))
	}
}

// ChangeMessage renders a verdict transition for the alert channels.
func ChangeMessage(prev, next *domain.Result) string {
	return fmt.Sprintf("AWS status changed: %s (was %s).", next.DownWord(), prev.DownWord())
}
