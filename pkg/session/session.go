// Package session hosts one calculator State for an interactive caller. The
// calc engine does no locking; Session serializes key presses from any number
// of goroutines, applies the host's input length cap, logs transitions and
// publishes activity on an EventBus.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/germanamz/abacus/pkg/calc"
)

var sessionSeq atomic.Uint64

// Options configures a Session. The zero value is usable.
type Options struct {
	// ID names the session in logs and events. Generated when empty.
	ID string
	// MaxInputLength caps the operand being typed, counted in characters
	// without a leading minus sign. Zero means no cap.
	MaxInputLength int
	Logger         *slog.Logger
	// Events receives session activity. A private bus is created when nil.
	Events *EventBus
}

// Session owns the calculator state of one user.
type Session struct {
	id       string
	maxInput int
	log      *slog.Logger
	events   *EventBus

	mu    sync.Mutex
	state calc.State
}

// New creates a Session in the default calculator state.
func New(opts Options) *Session {
	id := opts.ID
	if id == "" {
		id = fmt.Sprintf("session-%d", sessionSeq.Add(1))
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	events := opts.Events
	if events == nil {
		events = NewEventBus()
	}

	return &Session{
		id:       id,
		maxInput: opts.MaxInputLength,
		log:      log.With("session", id),
		events:   events,
		state:    calc.NewState(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Events returns the bus the session publishes to.
func (s *Session) Events() *EventBus { return s.events }

// Screen returns the current rendered screen.
func (s *Session) Screen() calc.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()

	return calc.Render(s.state)
}

// State returns a snapshot of the current state.
func (s *Session) State() calc.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Press applies one key event. Input that would grow the operand past the
// length cap is ignored. A rejected event leaves the state untouched and its
// error is returned.
func (s *Session) Press(ctx context.Context, e calc.Event) (calc.Screen, calc.Signal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pressLocked(ctx, e)
}

// PressAll applies events in order and stops at the first rejected one.
// Signals raised along the way are returned in order. The session stays
// locked for the whole sequence, so concurrent scripts never interleave.
func (s *Session) PressAll(ctx context.Context, events ...calc.Event) (calc.Screen, []calc.Signal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var signals []calc.Signal
	for _, e := range events {
		_, sig, err := s.pressLocked(ctx, e)
		if err != nil {
			return calc.Render(s.state), signals, err
		}
		if sig != calc.SignalNone {
			signals = append(signals, sig)
		}
	}

	return calc.Render(s.state), signals, nil
}

// pressLocked is Press without the locking. Callers hold s.mu.
func (s *Session) pressLocked(ctx context.Context, e calc.Event) (calc.Screen, calc.Signal, error) {
	next, sig, err := calc.Apply(s.state, e)
	if err != nil {
		s.log.WarnContext(ctx, "key rejected", "key", e.Kind, "error", err)
		s.publish(Event{Kind: EventRejected, Key: e, Screen: calc.Render(s.state), Err: err})
		return calc.Render(s.state), calc.SignalNone, err
	}

	if s.exceedsCap(e, next) {
		s.log.DebugContext(ctx, "input capped", "key", e.String(), "max", s.maxInput)
		return calc.Render(s.state), calc.SignalNone, nil
	}

	s.state = next
	scr := calc.Render(next)

	s.log.DebugContext(ctx, "key pressed",
		"key", e.String(),
		"display", scr.Primary,
		"phase", next.Phase(),
	)
	s.publish(Event{Kind: EventKeyPressed, Key: e, Screen: scr})

	switch {
	case sig == calc.SignalDivisionByZero:
		s.log.InfoContext(ctx, "division by zero", "display", scr.Primary)
		s.publish(Event{Kind: EventDivisionByZero, Key: e, Screen: scr})
	case e.Kind == calc.EventClear:
		s.publish(Event{Kind: EventCleared, Key: e, Screen: scr})
	}

	return scr, sig, nil
}

// Reset returns the session to the default state.
func (s *Session) Reset(ctx context.Context) calc.Screen {
	scr, _, _ := s.Press(ctx, calc.Clear())
	return scr
}

func (s *Session) exceedsCap(e calc.Event, next calc.State) bool {
	if s.maxInput <= 0 {
		return false
	}
	if e.Kind != calc.EventDigit && e.Kind != calc.EventDecimalPoint {
		return false
	}

	n := operandLen(next.Display)
	return n > s.maxInput && n > operandLen(s.state.Display)
}

func operandLen(display string) int {
	return len(strings.TrimPrefix(display, "-"))
}

// publish stamps and sends e. Callers hold s.mu.
func (s *Session) publish(e Event) {
	e.SessionID = s.id
	e.Timestamp = time.Now()
	s.events.Publish(e)
}
