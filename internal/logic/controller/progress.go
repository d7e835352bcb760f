package controller

import (
	"sync"
	"time"
)

// Progress is the observed reservation size shared between the controller
// (the only writer) and readers such as the status page.
type Progress struct {
	mu         sync.RWMutex
	target     Target
	observed   int64
	observedAt time.Time
	completed  bool
}

// ProgressSnapshot is a point-in-time copy of Progress.
type ProgressSnapshot struct {
	Name       string
	Zone       string
	Observed   int64
	Target     int64
	ObservedAt time.Time
	Completed  bool
}

// NewProgress creates progress for the given target with an observed count of 0.
func NewProgress(target Target) *Progress {
	return &Progress{
		target: target,
	}
}

// Target returns the immutable target.
func (p *Progress) Target() Target {
	return p.target
}

// Observed returns the last published observed count.
func (p *Progress) Observed() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.observed
}

// Snapshot returns a copy of the current progress.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return ProgressSnapshot{
		Name:       p.target.Name,
		Zone:       p.target.Zone,
		Observed:   p.observed,
		Target:     p.target.Count,
		ObservedAt: p.observedAt,
		Completed:  p.completed,
	}
}

func (p *Progress) setObserved(count int64, at time.Time) {
	if count < 0 {
		count = 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.observed = count
	p.observedAt = at
}

func (p *Progress) setCompleted() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completed = true
}
