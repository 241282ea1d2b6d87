package core

import "time"

// Pacer spreads sim steps over wall-clock time independently of the frame
// rate, so a scan can be watched line by line.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer returns a Pacer that releases rate steps per second. The first
// step is due immediately.
func NewPacer(rate int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetRate(rate)
	p.accumulator = p.step
	return p
}

// SetRate changes the number of steps per second. Non-positive rates fall
// back to one step per second.
func (p *Pacer) SetRate(rate int) {
	if rate <= 0 {
		rate = 1
	}
	p.step = time.Second / time.Duration(rate)
}

// Due returns how many steps have become due since the last call, at most
// limit. A backlog of whole steps beyond limit is dropped; the fraction of
// a step left after a call that released exactly limit steps is kept.
func (p *Pacer) Due(limit int) int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now

	n := 0
	for p.accumulator >= p.step && n < limit {
		p.accumulator -= p.step
		n++
	}
	if n == limit && p.accumulator >= p.step {
		p.accumulator = 0
	}
	return n
}
