package ladder

import (
	"testing"
	"time"
)

// fakeClock drives a Limiter without real sleeping
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func newTestLimiter(calls int, window time.Duration) (*Limiter, *fakeClock) {
	clock := newFakeClock()
	l := NewLimiter(calls, window)
	l.now = clock.Now
	l.sleep = clock.Sleep
	return l, clock
}

func TestLimiterAllowsBudgetWithoutSleeping(t *testing.T) {
	l, clock := newTestLimiter(2, 3*time.Second)

	l.Wait()
	l.Wait()

	if len(clock.sleeps) != 0 {
		t.Errorf("expected no sleeps within budget, got %v", clock.sleeps)
	}
}

func TestLimiterBlocksThirdCall(t *testing.T) {
	l, clock := newTestLimiter(2, 3*time.Second)

	l.Wait()
	l.Wait()
	l.Wait()

	if len(clock.sleeps) == 0 {
		t.Fatal("expected the third call to sleep")
	}

	var total time.Duration
	for _, d := range clock.sleeps {
		total += d
	}
	if total != 3*time.Second {
		t.Errorf("expected third call to wait out the full window, slept %v", total)
	}
}

func TestLimiterWindowSlides(t *testing.T) {
	l, clock := newTestLimiter(2, 3*time.Second)

	l.Wait()
	clock.now = clock.now.Add(2 * time.Second)
	l.Wait()
	clock.now = clock.now.Add(2 * time.Second)

	// First call is now 4s old and outside the window
	l.Wait()

	if len(clock.sleeps) != 0 {
		t.Errorf("expected no sleeps once the window slid past, got %v", clock.sleeps)
	}
}

func TestNilLimiterIsNoop(t *testing.T) {
	var l *Limiter
	// Must not panic
	l.Wait()
	l.Wait()
}
