package registry

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDebounceInterval is the quiet period after the last keystroke
// before a lookup fires.
const DefaultDebounceInterval = 500 * time.Millisecond

// Debouncer schedules registry lookups so that only the last keystroke of a
// typing burst reaches the upstream client. The pure parsing components have
// no opinion on debouncing and never call this; it exists for the form layer
// that owns the async lookup.
type Debouncer struct {
	client   Client
	interval time.Duration
	logger   *zap.Logger

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewDebouncer builds a Debouncer around client. A non-positive interval
// falls back to DefaultDebounceInterval; a nil logger is replaced with a
// no-op one.
func NewDebouncer(client Client, interval time.Duration, logger *zap.Logger) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Debouncer{client: client, interval: interval, logger: logger}
}

// Keystroke registers the field's latest text and (re)schedules a lookup for
// one interval later. Results are delivered to deliver on a separate
// goroutine; a keystroke arriving before the timer fires supersedes the
// pending lookup, and a lookup that finishes after it has been superseded is
// dropped rather than delivered out of order.
func (d *Debouncer) Keystroke(ctx context.Context, partial string, deliver func([]OwnerRecord, error)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		records, err := d.client.Search(ctx, partial)
		if err != nil {
			d.logger.Warn("registry lookup failed",
				zap.String("query", partial),
				zap.Error(err))
		}

		d.mu.Lock()
		superseded := seq != d.seq
		d.mu.Unlock()
		if superseded {
			return
		}
		deliver(records, err)
	})
}

// Cancel drops any pending lookup without delivering it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
