package advisor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeClock is advanced manually and only read on the test goroutine.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// gatedAdvisor blocks each call until the test releases it.
type gatedAdvisor struct {
	mu      sync.Mutex
	calls   int
	active  int
	release chan string
}

func newGatedAdvisor() *gatedAdvisor {
	return &gatedAdvisor{release: make(chan string)}
}

func (g *gatedAdvisor) Advise(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.calls++
	g.active++
	g.mu.Unlock()
	defer func() {
		g.mu.Lock()
		g.active--
		g.mu.Unlock()
	}()
	select {
	case text := <-g.release:
		return text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (g *gatedAdvisor) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// waitIdle blocks until n calls have started and all of them returned.
func (g *gatedAdvisor) waitIdle(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		g.mu.Lock()
		done := g.calls >= n && g.active == 0
		g.mu.Unlock()
		if done {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("advisor calls did not finish in time")
}

// waitActive blocks until n calls have started and exactly active are still running.
func (g *gatedAdvisor) waitActive(t *testing.T, n, active int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		g.mu.Lock()
		done := g.calls >= n && g.active == active
		g.mu.Unlock()
		if done {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("advisor calls did not reach the expected state")
}

// pollUntil polls the broker until a reply arrives or the request settles.
func pollUntil(t *testing.T, b *Broker) (Reply, bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r, ok := b.Poll(); ok {
			return r, true
		}
		if !b.InFlight() {
			return Reply{}, false
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("broker did not settle in time")
	return Reply{}, false
}

func TestBrokerDisabled(t *testing.T) {
	b := NewBroker(nil, BrokerConfig{})
	if b.Enabled() {
		t.Error("broker without advisor should be disabled")
	}
	if b.Request("hello") {
		t.Error("disabled broker should refuse requests")
	}
	if _, ok := b.Poll(); ok {
		t.Error("disabled broker should never produce replies")
	}
	b.Close()

	var nilBroker *Broker
	if nilBroker.Enabled() {
		t.Error("nil broker should report disabled")
	}
}

func TestBrokerDeliversReply(t *testing.T) {
	adv := AdvisorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "echo: " + prompt, nil
	})
	b := NewBroker(adv, BrokerConfig{Timeout: time.Second})
	defer b.Close()

	if !b.Request("ping") {
		t.Fatal("Request should start")
	}
	r, ok := pollUntil(t, b)
	if !ok {
		t.Fatal("expected a reply")
	}
	if r.Text != "echo: ping" || r.Gen != 1 {
		t.Errorf("reply = %+v", r)
	}
	if b.InFlight() {
		t.Error("broker should be idle after the reply")
	}
}

func TestBrokerNewerRequestSupersedes(t *testing.T) {
	adv := newGatedAdvisor()
	b := NewBroker(adv, BrokerConfig{})
	defer b.Close()

	if !b.Request("first") {
		t.Fatal("first request should start")
	}
	if _, ok := b.Poll(); ok {
		t.Error("Poll should not block or return before completion")
	}
	if !b.Request("second") {
		t.Fatal("newer request should supersede the running one")
	}
	if !b.InFlight() {
		t.Fatal("second request should be in flight")
	}
	adv.waitActive(t, 2, 1)

	adv.release <- "second reply"
	r, ok := pollUntil(t, b)
	if !ok || r.Text != "second reply" || r.Gen != 2 {
		t.Errorf("reply = %+v, %v; expected the second generation", r, ok)
	}
	if adv.Calls() != 2 {
		t.Errorf("advisor called %d times, expected 2", adv.Calls())
	}
}

func TestBrokerStaleReplyDropped(t *testing.T) {
	replies := make(chan string, 2)
	adv := AdvisorFunc(func(ctx context.Context, prompt string) (string, error) {
		return <-replies, nil
	})
	b := NewBroker(adv, BrokerConfig{})
	defer b.Close()

	b.Request("first")
	b.Request("second")
	replies <- "old"
	replies <- "new"

	var got []string
	deadline := time.Now().Add(2 * time.Second)
	for b.InFlight() && time.Now().Before(deadline) {
		if r, ok := b.Poll(); ok {
			got = append(got, r.Text)
		}
		time.Sleep(time.Millisecond)
	}
	if len(got) != 1 || (got[0] != "old" && got[0] != "new") {
		t.Fatalf("replies = %v, expected exactly one", got)
	}
	if r, ok := b.Poll(); ok {
		t.Errorf("superseded reply leaked: %+v", r)
	}
}

func TestBrokerCooldown(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	adv := AdvisorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "ok", nil
	})
	b := NewBroker(adv, BrokerConfig{Cooldown: 10 * time.Second, Now: clock.Now})
	defer b.Close()

	if !b.Request("a") {
		t.Fatal("first request should start")
	}
	pollUntil(t, b)

	clock.Advance(9 * time.Second)
	if b.Request("b") {
		t.Error("request inside the cooldown should be refused")
	}

	clock.Advance(time.Second)
	if !b.Request("c") {
		t.Error("request after the cooldown should start")
	}
	pollUntil(t, b)
}

func TestBrokerFailureIsDropped(t *testing.T) {
	errBoom := errors.New("boom")
	adv := AdvisorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", errBoom
	})
	b := NewBroker(adv, BrokerConfig{})
	defer b.Close()

	b.Request("x")
	if r, ok := pollUntil(t, b); ok {
		t.Errorf("failure should not produce a reply, got %+v", r)
	}
	if b.InFlight() {
		t.Error("failed request should clear the in-flight flag")
	}
}

func TestBrokerFailureShortensCooldown(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fail := true
	adv := AdvisorFunc(func(ctx context.Context, prompt string) (string, error) {
		if fail {
			return "", errors.New("unavailable")
		}
		return "ok", nil
	})
	b := NewBroker(adv, BrokerConfig{
		Cooldown:   10 * time.Second,
		RetryAfter: time.Second,
		Now:        clock.Now,
	})
	defer b.Close()

	b.Request("a")
	pollUntil(t, b)

	if b.Request("b") {
		t.Error("retry should wait RetryAfter")
	}
	clock.Advance(time.Second)
	fail = false
	if !b.Request("c") {
		t.Fatal("retry after a failure should not wait the full cooldown")
	}
	if r, ok := pollUntil(t, b); !ok || r.Text != "ok" {
		t.Errorf("reply = %+v, %v", r, ok)
	}

	clock.Advance(time.Second)
	if b.Request("d") {
		t.Error("success should restart the full cooldown")
	}
}

func TestBrokerCloseFromOtherGoroutine(t *testing.T) {
	adv := AdvisorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "ok", nil
	})
	b := NewBroker(adv, BrokerConfig{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(5 * time.Millisecond)
		b.Close()
	}()

	for i := 0; ; i++ {
		b.Request("tick")
		b.Poll()
		select {
		case <-done:
			if b.Enabled() || b.Request("late") {
				t.Error("closed broker should refuse requests")
			}
			return
		default:
		}
	}
}

func TestBrokerTimeout(t *testing.T) {
	adv := newGatedAdvisor() // never released
	b := NewBroker(adv, BrokerConfig{Timeout: 20 * time.Millisecond})
	defer b.Close()

	b.Request("slow")
	if _, ok := pollUntil(t, b); ok {
		t.Error("timed out request should not produce a reply")
	}
}

func TestBrokerCancelDropsStaleReply(t *testing.T) {
	adv := newGatedAdvisor()
	b := NewBroker(adv, BrokerConfig{Cooldown: time.Hour})
	defer b.Close()

	b.Request("old")
	b.Cancel()
	if b.InFlight() {
		t.Fatal("Cancel should clear the in-flight flag")
	}
	adv.waitIdle(t, 1)

	if !b.Request("new") {
		t.Fatal("Cancel should clear the cooldown")
	}
	adv.release <- "fresh"

	r, ok := pollUntil(t, b)
	if !ok || r.Text != "fresh" || r.Gen != 2 {
		t.Errorf("reply = %+v, %v; expected generation 2", r, ok)
	}
}

func TestBrokerClose(t *testing.T) {
	adv := newGatedAdvisor()
	b := NewBroker(adv, BrokerConfig{})

	b.Request("x")
	b.Close()
	b.Close() // idempotent

	if b.Enabled() || b.Request("y") {
		t.Error("closed broker should refuse requests")
	}
}
