// Package scheduler owns the periodic re-invocation of the checker. The
// checker itself is stateless between calls; this layer only decides when
// to call it.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/isawsback/isawsback/internal/domain"
)

// CheckRunner is the slice of the orchestrator the poller needs.
type CheckRunner interface {
	CheckNow(ctx context.Context) *domain.Result
}

type Poller struct {
	Logger   *zap.Logger
	Checker  CheckRunner
	Interval time.Duration
	CronExpr string // when set, takes precedence over Interval
}

func NewPoller(logger *zap.Logger, c CheckRunner, interval time.Duration, cronExpr string) *Poller {
	return &Poller{
		Logger:   logger,
		Checker:  c,
		Interval: interval,
		CronExpr: cronExpr,
	}
}

// Run does an immediate pass, then re-checks on each tick until ctx is
// cancelled. Interval zero with no cron expression disables polling.
func (p *Poller) Run(ctx context.Context) {
	p.Checker.CheckNow(ctx)

	if p.CronExpr != "" {
		p.runCron(ctx)
		return
	}
	if p.Interval <= 0 {
		p.Logger.Info("poller_disabled")
		return
	}

	t := time.NewTicker(p.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			p.Logger.Info("poller_stopped")
			return
		case <-t.C:
			p.Checker.CheckNow(ctx)
		}
	}
}

func (p *Poller) runCron(ctx context.Context) {
	c := cron.New()
	_, err := c.AddFunc(p.CronExpr, func() {
		p.Checker.CheckNow(ctx)
	})
	if err != nil {
		p.Logger.Error("poller_cron_invalid",
			zap.String("expr", p.CronExpr),
			zap.Error(err),
		)
		return
	}
	c.Start()
	p.Logger.Info("poller_cron_started", zap.String("expr", p.CronExpr))
	<-ctx.Done()
	<-c.Stop().Done()
	p.Logger.Info("poller_stopped")
}
