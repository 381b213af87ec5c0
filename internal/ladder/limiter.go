package ladder

import (
	"time"
)

// Limiter enforces a request budget of at most `calls` requests within any
// rolling `window`. The ladder service asks scrapers to stay under two
// requests per three seconds; exceeding it gets the client blocked.
//
// Each Client owns its own Limiter so independent runs and tests do not
// share throttle state. A nil Limiter performs no limiting.
type Limiter struct {
	calls  int
	window time.Duration
	recent []time.Time

	// overridable for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter creates a limiter allowing `calls` requests per `window`
func NewLimiter(calls int, window time.Duration) *Limiter {
	return &Limiter{
		calls:  calls,
		window: window,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// Wait blocks until the next request may be issued and records it
func (l *Limiter) Wait() {
	if l == nil || l.calls <= 0 {
		return
	}
	for {
		now := l.now()

		// Drop requests that have aged out of the window
		keep := l.recent[:0]
		for _, t := range l.recent {
			if now.Sub(t) < l.window {
				keep = append(keep, t)
			}
		}
		l.recent = keep

		if len(l.recent) < l.calls {
			l.recent = append(l.recent, now)
			return
		}

		// Sleep until the oldest recorded request leaves the window
		l.sleep(l.window - now.Sub(l.recent[0]))
	}
}
