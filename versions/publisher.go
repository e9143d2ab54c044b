/*
Package versions publishes attribute store versions.

The attribs core produces immutable store versions and deliberately has no
notion of "the current version": swapping which version is current is the
single step that needs synchronization, and it belongs to the caller.
Publisher is a small caller-owned registry for exactly that step: it holds
the current version and broadcasts every newly published one to subscribers.

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package versions

import (
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/attribs"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'attribs'
func tracer() tracing.Trace {
	return tracing.Select("attribs")
}

// Publisher owns the "current version" of an attribute store. One logical
// writer publishes new versions; any number of readers fetch the current
// one or subscribe to updates. Publisher is an explicit registry, never a
// process-wide singleton; clients create one per logical attributed text.
type Publisher struct {
	mu      sync.RWMutex
	current attribs.Store
	cast    *caster.Caster // broadcasts published versions to subscribers
}

// NewPublisher creates a publisher with an initial store version.
func NewPublisher(initial attribs.Store) *Publisher {
	return &Publisher{
		current: initial,
		cast:    caster.New(nil),
	}
}

// Current returns the most recently published store version. The returned
// version is immutable and stays valid however long the caller holds on to
// it.
func (p *Publisher) Current() attribs.Store {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Publish makes version the current one and broadcasts it. Slow subscribers
// do not block the writer; they miss intermediate versions instead.
func (p *Publisher) Publish(version attribs.Store) {
	p.mu.Lock()
	p.current = version
	p.mu.Unlock()
	p.cast.TryPub(version)
}

// Overwrite derives a new version from the current one and publishes it.
// It is a convenience for the common single-writer loop.
func (p *Publisher) Overwrite(start, end int64, bundle attribs.Attributes) attribs.Store {
	p.mu.Lock()
	version := p.current.Overwrite(start, end, bundle)
	p.current = version
	p.mu.Unlock()
	p.cast.TryPub(version)
	return version
}

// Subscribe returns a channel of published store versions plus a cancel
// function. The channel is closed after cancel or Close.
func (p *Publisher) Subscribe(capacity uint) (<-chan attribs.Store, func()) {
	raw, ok := p.cast.Sub(nil, capacity)
	if !ok {
		tracer().Errorf("versions: subscription on closed publisher")
		closed := make(chan attribs.Store)
		close(closed)
		return closed, func() {}
	}
	out := make(chan attribs.Store, capacity)
	go func() {
		defer close(out)
		for msg := range raw {
			out <- msg.(attribs.Store)
		}
	}()
	cancel := func() { p.cast.Unsub(raw) }
	return out, cancel
}

// Close shuts the publisher down and closes all subscription channels.
// Current remains usable.
func (p *Publisher) Close() {
	p.cast.Close()
}
