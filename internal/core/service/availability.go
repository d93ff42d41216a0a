package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/rankio/rankio-api/internal/api/metrics"
	"github.com/rankio/rankio-api/internal/core/domain"
	"github.com/rankio/rankio-api/internal/core/ports"
)

// DefaultDebounceWindow is the quiescence interval applied when none is
// configured.
const DefaultDebounceWindow = 500 * time.Millisecond

// ErrAvailabilityUnknown marks an indeterminate check: the reservation
// lookup failed, so the handle is neither known available nor known taken.
var ErrAvailabilityUnknown = errors.New("availability indeterminate")

// AvailabilityChecker answers handle availability questions against the
// reservation store.
//
// Submit feeds it a stream of raw candidates, debounced over the quiescence
// window: all but the most recent candidate inside the window are
// suppressed, and exactly one reservation lookup is issued for the survivor.
// Every submission carries a monotonically increasing sequence number; a
// lookup completion is published to the observer only while its sequence is
// still the latest, so out-of-order completions can never clobber the result
// of a newer candidate.
//
// Check is the synchronous path used by the HTTP handler. Identical
// concurrent lookups are collapsed through singleflight.
type AvailabilityChecker struct {
	repo   ports.ProfileRepository
	window time.Duration
	notify func(ports.AvailabilityResult)
	log    zerolog.Logger

	group singleflight.Group

	mu    sync.Mutex
	seq   uint64
	timer *time.Timer
}

// NewAvailabilityChecker creates a checker. notify may be nil when only the
// synchronous Check path is used; window <= 0 selects the default.
func NewAvailabilityChecker(repo ports.ProfileRepository, window time.Duration, notify func(ports.AvailabilityResult), log zerolog.Logger) *AvailabilityChecker {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	if notify == nil {
		notify = func(ports.AvailabilityResult) {}
	}
	return &AvailabilityChecker{repo: repo, window: window, notify: notify, log: log}
}

// Submit registers a new candidate, superseding any candidate still inside
// the debounce window and any lookup still in flight. Invalid candidates are
// reported synchronously without touching the store.
func (c *AvailabilityChecker) Submit(ctx context.Context, raw string) {
	handle, parseErr := domain.ParseHandle(raw)

	c.mu.Lock()
	c.seq++
	seq := c.seq
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if parseErr == nil {
		c.timer = time.AfterFunc(c.window, func() {
			c.lookupAndPublish(ctx, seq, handle)
		})
	}
	c.mu.Unlock()

	if parseErr != nil {
		// Rejected before the store: no round trip for malformed input.
		c.notify(ports.AvailabilityResult{Candidate: raw, Status: ports.HandleInvalid})
	}
}

// lookupAndPublish runs after the window elapses. The sequence is checked
// twice: before spending a round trip on a superseded candidate, and again
// after completion, because a newer submission may have arrived while the
// lookup was in flight.
func (c *AvailabilityChecker) lookupAndPublish(ctx context.Context, seq uint64, handle domain.Handle) {
	if c.stale(seq) {
		return
	}

	status := c.lookup(ctx, handle)

	if c.stale(seq) {
		metrics.AvailabilityStaleDiscards.Inc()
		c.log.Debug().Str("handle", handle.String()).Msg("discarding superseded availability result")
		return
	}

	c.notify(ports.AvailabilityResult{Candidate: handle.String(), Status: status})
}

func (c *AvailabilityChecker) stale(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return seq != c.seq
}

// Check performs one immediate availability check. A failed lookup is
// surfaced as HandleUnknown together with ErrAvailabilityUnknown, never
// reinterpreted as available.
func (c *AvailabilityChecker) Check(ctx context.Context, raw string) (ports.AvailabilityResult, error) {
	handle, err := domain.ParseHandle(raw)
	if err != nil {
		return ports.AvailabilityResult{Candidate: raw, Status: ports.HandleInvalid}, nil
	}

	v, err, _ := c.group.Do(handle.String(), func() (any, error) {
		status := c.lookup(ctx, handle)
		if status == ports.HandleUnknown {
			return status, fmt.Errorf("check %q: %w", handle, ErrAvailabilityUnknown)
		}
		return status, nil
	})

	status, _ := v.(ports.Availability)
	if err != nil {
		return ports.AvailabilityResult{Candidate: handle.String(), Status: ports.HandleUnknown}, err
	}
	return ports.AvailabilityResult{Candidate: handle.String(), Status: status}, nil
}

func (c *AvailabilityChecker) lookup(ctx context.Context, handle domain.Handle) ports.Availability {
	_, err := c.repo.LookupReservation(ctx, handle)
	switch {
	case err == nil:
		metrics.AvailabilityLookups.WithLabelValues("taken").Inc()
		return ports.HandleTaken
	case errors.Is(err, domain.ErrReservationNotFound):
		metrics.AvailabilityLookups.WithLabelValues("available").Inc()
		return ports.HandleAvailable
	default:
		metrics.AvailabilityLookups.WithLabelValues("error").Inc()
		c.log.Error().Err(err).Str("handle", handle.String()).Msg("reservation lookup failed")
		return ports.HandleUnknown
	}
}
