package hal

import "time"

// maxCatchUp bounds how many frames one pacer poll may report after a stall.
const maxCatchUp = 4

// framePacer turns wall clock progress into a count of due frames. It lets a
// loop running at an unrelated rate (the window's TPS) step at Interval.
type framePacer struct {
	interval time.Duration
	now      func() time.Time

	last time.Time
	acc  time.Duration
}

func newFramePacer(interval time.Duration, now func() time.Time) *framePacer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if now == nil {
		now = time.Now
	}
	return &framePacer{interval: interval, now: now}
}

// due returns the number of frames to step now. The first poll is always due.
func (p *framePacer) due() int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
		p.acc = 0
		return 1
	}

	p.acc += now.Sub(p.last)
	p.last = now

	n := p.acc / p.interval
	if n == 0 {
		return 0
	}
	p.acc = p.acc % p.interval
	if n > maxCatchUp {
		return maxCatchUp
	}
	return int(n)
}
