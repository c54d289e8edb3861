package hub

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"opendom.xyz/home-automation-service/pkg/common"
)

const DefaultPollInterval = 2 * time.Second

// Poller drives the telemetry loop: fetch a batch from the feed every
// interval and hand it to the reconciler. A failed fetch marks every sensor
// disconnected rather than leaving stale values standing.
type Poller struct {
	Feed      Feed
	Telemetry ITelemetry
	Interval  time.Duration

	inFlight atomic.Bool
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewPoller(feed Feed, telemetry ITelemetry) *Poller {
	return &Poller{
		Feed:      feed,
		Telemetry: telemetry,
		Interval:  DefaultPollInterval,
	}
}

func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})

	go p.run(ctx)
}

// Stop cancels the loop and waits for an in-flight tick to finish.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	p.Tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}

// Tick runs one poll cycle. Overlapping invocations are skipped, not queued,
// so a slow feed never piles up concurrent cycles.
func (p *Poller) Tick(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		common.GetLoggerWith(common.LoggerNameTelemetryPoller).Debug("Previous poll still in flight, skipping tick")
		return
	}
	defer p.inFlight.Store(false)

	logger := common.GetLoggerWith(common.LoggerNameTelemetryPoller)

	batch, err := p.Feed.Fetch(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		logger.Warn("Telemetry fetch failed, marking all sensors disconnected", zap.Error(err))
		p.Telemetry.MarkAllDisconnected()
		return
	}

	p.Telemetry.Reconcile(batch)
}
