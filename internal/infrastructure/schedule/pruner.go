package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/robfig/cron/v3"
)

// DefaultSpec runs the pruner at the top of every hour.
const DefaultSpec = "@hourly"

// Pruner is the part of the leave use case the job drives.
type Pruner interface {
	PruneSessions(ctx context.Context) (int, error)
}

// SessionPruner periodically evicts leave sessions whose window closed long ago.
type SessionPruner struct {
	cron   *cron.Cron
	pruner Pruner
	logger *slog.Logger
}

func NewSessionPruner(pruner Pruner, spec string, logger *slog.Logger) (*SessionPruner, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if spec == "" {
		spec = DefaultSpec
	}
	p := &SessionPruner{
		cron:   cron.New(),
		pruner: pruner,
		logger: logger,
	}
	if _, err := p.cron.AddFunc(spec, func() { p.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("schedule session pruner %q: %w", spec, err)
	}
	return p, nil
}

// RunOnce prunes immediately and logs the outcome.
func (p *SessionPruner) RunOnce(ctx context.Context) {
	n, err := p.pruner.PruneSessions(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "session prune failed", tint.Err(err))
		return
	}
	if n > 0 {
		p.logger.InfoContext(ctx, "pruned leave sessions", "count", n)
	}
}

// Run starts the schedule and blocks until ctx is done, then waits for a
// running prune to finish.
func (p *SessionPruner) Run(ctx context.Context) {
	p.cron.Start()
	<-ctx.Done()
	<-p.cron.Stop().Done()
}
