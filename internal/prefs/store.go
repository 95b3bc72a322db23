package prefs

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// AmbientFunc reports the host's light/dark preference (true = dark).
type AmbientFunc func() bool

// DarkModeFunc observes the published dark-mode value.
type DarkModeFunc func(dark bool)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for write-through failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store holds the current preference snapshot and writes every change
// through to its slot. It is meant to be driven from a single goroutine.
type Store struct {
	slot    Slot
	ambient AmbientFunc
	logger  *log.Logger
	state   State
	ready   bool

	watchers map[int]DarkModeFunc
	nextID   int
}

// Initialize restores the persisted snapshot from slot, falling back to the
// defaults (dark mode seeded from ambient) when it is missing or malformed.
// The resulting snapshot is written back to the slot.
func Initialize(slot Slot, ambient AmbientFunc, opts ...Option) *Store {
	if slot == nil {
		panic("prefs: Initialize called with a nil Slot")
	}
	s := &Store{
		slot:     slot,
		ambient:  ambient,
		logger:   log.Default(),
		watchers: make(map[int]DarkModeFunc),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state = s.restore()
	s.ready = true
	if err := s.persist(); err != nil {
		s.logger.Warn("could not persist preferences", "error", err)
	}
	return s
}

func (s *Store) restore() State {
	raw, ok, err := s.slot.Get(StorageKey)
	if err == nil && ok {
		if st, err := decodeState(raw); err == nil {
			return st
		}
	}
	return DefaultState(s.ambientDark())
}

func (s *Store) ambientDark() bool {
	if s.ambient == nil {
		return false
	}
	return s.ambient()
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mustBeReady()
	return s.state
}

// SetCompany replaces the selected company.
func (s *Store) SetCompany(c Company) error {
	s.mustBeReady()
	next := s.state
	next.Company = c
	return s.replace(next)
}

// SetView replaces the selected view. The view is kept even while the
// portfolio is selected.
func (s *Store) SetView(v View) error {
	s.mustBeReady()
	next := s.state
	next.View = v
	return s.replace(next)
}

// SetTimeRange replaces the selected time range.
func (s *Store) SetTimeRange(r TimeRange) error {
	s.mustBeReady()
	next := s.state
	next.TimeRange = r
	return s.replace(next)
}

// ToggleDarkMode flips the theme flag.
func (s *Store) ToggleDarkMode() error {
	s.mustBeReady()
	next := s.state
	next.DarkMode = !next.DarkMode
	return s.replace(next)
}

// Reset replaces the snapshot with the defaults, re-reading the ambient
// preference.
func (s *Store) Reset() error {
	s.mustBeReady()
	return s.replace(DefaultState(s.ambientDark()))
}

// WatchDarkMode calls fn with the current dark-mode value and again on every
// change. The returned func stops further calls.
func (s *Store) WatchDarkMode(fn DarkModeFunc) (cancel func()) {
	s.mustBeReady()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	fn(s.state.DarkMode)
	return func() { delete(s.watchers, id) }
}

// replace installs a complete snapshot, persists it and publishes dark mode.
// The in-memory snapshot is kept even when the write fails.
func (s *Store) replace(next State) error {
	prev := s.state
	s.state = next

	err := s.persist()
	if err != nil {
		s.logger.Warn("could not persist preferences", "error", err)
	}
	if prev.DarkMode != next.DarkMode {
		for _, fn := range s.watchers {
			fn(next.DarkMode)
		}
	}
	s.logger.Debug("preferences updated",
		"company", next.Company,
		"view", next.View,
		"range", next.TimeRange,
		"dark", next.DarkMode,
	)
	return err
}

func (s *Store) persist() error {
	raw, err := encodeState(s.state)
	if err != nil {
		return err
	}
	if err := s.slot.Set(StorageKey, raw); err != nil {
		return fmt.Errorf("writing %s: %w", StorageKey, err)
	}
	return nil
}

func (s *Store) mustBeReady() {
	if s == nil || !s.ready {
		panic("prefs: Store used before Initialize")
	}
}

type storeKey struct{}

// WithStore returns a context carrying s.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// FromContext returns the Store installed by WithStore. It panics when none
// is present: callers must run inside a context prepared at startup.
func FromContext(ctx context.Context) *Store {
	if ctx != nil {
		if s, ok := ctx.Value(storeKey{}).(*Store); ok && s != nil {
			return s
		}
	}
	panic("prefs: FromContext must be used within a context prepared by WithStore")
}
