package tui

import (
	"log/slog"
	"time"
)

// profiler times frames. duration is a whole View, base is the last full re-render of
// every card, which View itself reuses from the viewport. The first frame is the mount
// phase, every later one an update.
type profiler struct {
	id      string
	log     *slog.Logger
	show    bool
	renders int
	last    time.Duration
	base    time.Duration
}

func newProfiler(id string, log *slog.Logger) *profiler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &profiler{id: id, log: log}
}

func (p *profiler) grid(start time.Time) { p.base = time.Since(start) }

func (p *profiler) frame(start time.Time) {
	p.last = time.Since(start)
	phase := "update"
	if p.renders == 0 {
		phase = "mount"
	}
	p.renders++
	p.log.Debug("render", "id", p.id, "phase", phase, "duration", p.last, "base_duration", p.base)
}

// summary is the header readout: last frame, then last grid render.
func (p *profiler) summary() string {
	return "render " + p.last.Round(time.Microsecond).String() + " / " + p.base.Round(time.Microsecond).String()
}
