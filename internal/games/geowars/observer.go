package geowars

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geowars/internal/advisor"
	"github.com/vovakirdan/geowars/internal/config"
	"github.com/vovakirdan/geowars/internal/core"
	"github.com/vovakirdan/geowars/internal/registry"
)

// observer turns gameplay events into advisory prompts and holds the
// most recent reply for display.
type observer struct {
	adv registry.Advisory
	cfg config.AdvisorConfig
	log *log.Logger

	text        string
	remaining   float64 // Seconds the text stays visible
	killsAtLast int

	pending string // Trigger waiting for the advisory to accept it
	levelUp bool   // pending came from a level-up
}

func newObserver(adv registry.Advisory, cfg config.AdvisorConfig, logger *log.Logger) *observer {
	return &observer{adv: adv, cfg: cfg, log: logger}
}

// Online reports whether prompts can be sent at all.
func (o *observer) Online() bool {
	return o.adv != nil && o.cfg.Enabled && o.adv.Enabled()
}

// Text returns the visible advisory, or "".
func (o *observer) Text() string {
	return o.text
}

// poll picks up a finished reply. Failed requests never produce one,
// so the current text stays as it was.
func (o *observer) poll() {
	if o.adv == nil {
		return
	}
	r, ok := o.adv.Poll()
	if !ok {
		return
	}
	o.text = o.cfg.Prefix + r.Text
	o.remaining = o.cfg.Display.Seconds()
	o.log.Info("observer", "text", r.Text, "latency", r.Latency)
}

// react records the strongest trigger among events and keeps offering
// it to the advisory until a request is accepted. A level-up replaces a
// waiting hit; a hit never replaces a waiting level-up.
func (o *observer) react(events []core.Event, w *World) {
	if !o.Online() {
		return
	}

	for _, e := range events {
		switch e.Kind {
		case core.EventLevelUp:
			o.pending = fmt.Sprintf("level %d reached", w.Level())
			o.levelUp = true
		case core.EventPlayerHit:
			if o.cfg.PromptOnHit && !o.levelUp {
				o.pending = "the player's ship was hit"
			}
		case core.EventShot, core.EventEnemyDestroyed, core.EventGameOver:
		}
	}
	if o.pending == "" {
		return
	}

	prompt := advisor.BuildPrompt(advisor.Situation{
		Trigger:     o.pending,
		Score:       w.Score(),
		Level:       w.Level(),
		Lives:       w.Lives(),
		Enemies:     w.Enemies(),
		RecentKills: w.Kills() - o.killsAtLast,
	})
	if o.adv.Request(prompt) {
		o.log.Debug("observer prompted", "trigger", o.pending)
		o.killsAtLast = w.Kills()
		o.pending = ""
		o.levelUp = false
	}
}

// advance counts down the display time.
func (o *observer) advance(dt float64) {
	if o.remaining <= 0 {
		return
	}
	o.remaining -= dt
	if o.remaining <= 0 {
		o.remaining = 0
		o.text = ""
	}
}

// reset clears the display and any waiting trigger, and abandons a
// running request.
func (o *observer) reset() {
	o.text = ""
	o.remaining = 0
	o.killsAtLast = 0
	o.pending = ""
	o.levelUp = false
	if o.adv != nil {
		o.adv.Cancel()
	}
}
