package engine

import (
	"sync"
	"time"
)

// FrameID identifies a requested frame, zero is never issued
type FrameID uint64

// Scheduler requests a single future frame callback, the animation-frame primitive
type Scheduler interface {
	// Request arms fn to run once and returns its id
	Request(fn func()) FrameID
	// Cancel disarms id if it has not run yet
	Cancel(id FrameID)
}

// TimerScheduler releases frames on a fixed cadence using the runtime timer
// At most one frame is outstanding; a new Request replaces the previous one
type TimerScheduler struct {
	mu       sync.Mutex
	interval time.Duration
	next     FrameID
	current  FrameID
	timer    *time.Timer
	deadline time.Time
	crash    func(r any)
}

// NewTimerScheduler creates a scheduler ticking at fps frames per second
func NewTimerScheduler(fps int) *TimerScheduler {
	if fps <= 0 {
		fps = 1
	}
	return &TimerScheduler{interval: time.Second / time.Duration(fps)}
}

// SetCrashHandler installs fn to receive panics raised by frames on timer goroutines
// Without a handler the panic propagates and kills the process
func (s *TimerScheduler) SetCrashHandler(fn func(r any)) {
	s.mu.Lock()
	s.crash = fn
	s.mu.Unlock()
}

// Interval returns the frame period
func (s *TimerScheduler) Interval() time.Duration {
	return s.interval
}

func (s *TimerScheduler) Request(fn func()) FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	// Hold cadence against the previous deadline, never queue a backlog
	now := time.Now()
	s.deadline = s.deadline.Add(s.interval)
	if s.deadline.Before(now) {
		s.deadline = now
	}

	s.next++
	id := s.next
	s.current = id
	s.timer = time.AfterFunc(s.deadline.Sub(now), func() {
		s.mu.Lock()
		if s.current != id {
			s.mu.Unlock()
			return
		}
		s.current = 0
		s.timer = nil
		crash := s.crash
		s.mu.Unlock()
		if crash != nil {
			defer func() {
				if r := recover(); r != nil {
					crash(r)
				}
			}()
		}
		fn()
	})
	return id
}

func (s *TimerScheduler) Cancel(id FrameID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == 0 || s.current != id {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.current = 0
	s.timer = nil
}

// ManualScheduler holds the requested frame until Fire is called
// Used by tests and by hosts that own their own display refresh
type ManualScheduler struct {
	mu      sync.Mutex
	next    FrameID
	current FrameID
	fn      func()
}

// NewManualScheduler creates an idle manual scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Request(fn func()) FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.current = s.next
	s.fn = fn
	return s.current
}

func (s *ManualScheduler) Cancel(id FrameID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != 0 && s.current == id {
		s.current = 0
		s.fn = nil
	}
}

// Pending reports whether a frame is armed
func (s *ManualScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != 0
}

// Fire runs the armed frame, returning false when none was armed
func (s *ManualScheduler) Fire() bool {
	s.mu.Lock()
	fn := s.fn
	s.current = 0
	s.fn = nil
	s.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}
