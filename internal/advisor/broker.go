package advisor

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Reply is a successful advisory delivered to the game loop.
type Reply struct {
	Text    string
	Gen     uint64        // Request generation that produced it
	Latency time.Duration // Time from Request to completion
}

// BrokerConfig configures a Broker.
type BrokerConfig struct {
	Cooldown   time.Duration // Minimum time between request starts
	RetryAfter time.Duration // Wait after a failed call instead of the full cooldown
	Timeout    time.Duration // Per-request deadline; zero means none
	Logger     *log.Logger
	Now        func() time.Time // Clock, for tests
}

type result struct {
	gen     uint64
	text    string
	err     error
	latency time.Duration
}

// Broker runs at most one advisory request at a time. A new request
// supersedes the running one, whose reply is then dropped.
//
// Methods are safe for concurrent use; the game loop polls while a session
// teardown may Close from elsewhere. The background request only writes to
// the result channel, which has capacity one.
type Broker struct {
	adv     Advisor
	cfg     BrokerConfig
	log     *log.Logger
	now     func() time.Time
	ctx     context.Context
	stop    context.CancelFunc
	results chan result

	mu       sync.Mutex
	gen      uint64
	inFlight bool
	cancel   context.CancelFunc
	readyAt  time.Time // No request starts before this
	closed   bool
}

// NewBroker wraps an Advisor. A nil Advisor yields a disabled broker
// whose Request always returns false.
func NewBroker(adv Advisor, cfg BrokerConfig) *Broker {
	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Broker{
		adv:     adv,
		cfg:     cfg,
		log:     logger,
		now:     now,
		ctx:     ctx,
		stop:    stop,
		results: make(chan result, 1),
	}
}

// Enabled reports whether the broker has an advisor to call.
func (b *Broker) Enabled() bool {
	if b == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled()
}

func (b *Broker) enabled() bool {
	return b.adv != nil && !b.closed
}

// InFlight reports whether a request is running.
func (b *Broker) InFlight() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inFlight
}

// Request starts a background advisory call for prompt, abandoning any
// call still running. It returns false when the broker is disabled or
// cooling down.
func (b *Broker) Request(prompt string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.enabled() {
		return false
	}
	now := b.now()
	if now.Before(b.readyAt) {
		return false
	}
	if b.inFlight {
		b.log.Debug("advisory superseded", "gen", b.gen)
		b.finish()
	}

	b.gen++
	gen := b.gen
	b.readyAt = now.Add(b.cfg.Cooldown)
	b.inFlight = true

	var ctx context.Context
	ctx, b.cancel = context.WithCancel(b.ctx)

	b.log.Debug("advisory requested", "gen", gen)
	go b.run(ctx, gen, prompt)
	return true
}

// run performs one call. ctx is cancelled only when the request is
// abandoned; the timeout applies to the call alone so a timed-out
// request still reports its error.
func (b *Broker) run(ctx context.Context, gen uint64, prompt string) {
	start := time.Now()
	callCtx, cancel := ctx, context.CancelFunc(func() {})
	if b.cfg.Timeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, b.cfg.Timeout)
	}
	defer cancel()

	text, err := b.adv.Advise(callCtx, prompt)
	r := result{gen: gen, text: text, err: err, latency: time.Since(start)}
	select {
	case b.results <- r:
	case <-ctx.Done():
	}
}

// Poll returns a finished reply without blocking. Failures and replies from
// superseded requests are logged and dropped. A failure shortens the
// cooldown to RetryAfter.
func (b *Broker) Poll() (Reply, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case r := <-b.results:
		if !b.inFlight || r.gen != b.gen {
			b.log.Debug("dropping stale advisory", "gen", r.gen, "current", b.gen)
			return Reply{}, false
		}
		b.finish()
		if r.err != nil {
			b.readyAt = b.now().Add(b.cfg.RetryAfter)
			b.log.Warn("advisory failed", "err", r.err, "latency", r.latency)
			return Reply{}, false
		}
		b.log.Debug("advisory received", "gen", r.gen, "latency", r.latency)
		return Reply{Text: r.text, Gen: r.gen, Latency: r.latency}, true
	default:
		return Reply{}, false
	}
}

// Cancel abandons the running request, if any. Its reply will be dropped.
// The cooldown is cleared so a new request may start immediately.
func (b *Broker) Cancel() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.abandon()
}

func (b *Broker) abandon() {
	if !b.inFlight {
		return
	}
	b.finish()
	b.readyAt = time.Time{}
}

// Close cancels any running request and disables the broker.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.abandon()
	b.closed = true
	b.stop()
}

func (b *Broker) finish() {
	b.inFlight = false
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}
