package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"pharmacy-backend/internal/renderer"
)

// CountdownState is the display state of the limited-offer countdown
type CountdownState string

const (
	CountdownActive  CountdownState = "active"
	CountdownExpired CountdownState = "expired"
)

// Remaining holds the zero-padded day/hour/minute counters
type Remaining struct {
	Days    string `json:"days"`
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
}

// ComputeState computes the countdown state and time left at a given
// instant. It is a pure function so the transition logic is testable
// without a ticker.
func ComputeState(now, end time.Time) (CountdownState, time.Duration) {
	remaining := end.Sub(now)
	if remaining <= 0 {
		return CountdownExpired, 0
	}
	return CountdownActive, remaining
}

// Breakdown splits a remaining duration into whole days, hours and minutes
// via integer division on the millisecond difference, each zero-padded to
// two digits
func Breakdown(remaining time.Duration) Remaining {
	ms := remaining.Milliseconds()
	days := ms / 86400000
	hours := (ms % 86400000) / 3600000
	minutes := (ms % 3600000) / 60000
	return Remaining{
		Days:    fmt.Sprintf("%02d", days),
		Hours:   fmt.Sprintf("%02d", hours),
		Minutes: fmt.Sprintf("%02d", minutes),
	}
}

// CountdownSnapshot is the view of the countdown served to the public page
type CountdownSnapshot struct {
	State          CountdownState `json:"state"`
	Days           string         `json:"days,omitempty"`
	Hours          string         `json:"hours,omitempty"`
	Minutes        string         `json:"minutes,omitempty"`
	EndDate        string         `json:"endDate"`
	ExpiredMessage string         `json:"expiredMessage,omitempty"`
	ExpiredNote    string         `json:"expiredNote,omitempty"`
	Badge          string         `json:"badge,omitempty"`
}

// CountdownService drives the main-slide offer countdown. The Active to
// Expired transition is one-way for the lifetime of the process; a new end
// date requires a restart.
type CountdownService struct {
	end  time.Time
	tick time.Duration
	now  func() time.Time

	mu       sync.Mutex
	state    CountdownState
	expired  bool
	onExpire func()
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewCountdownService creates a countdown ending at end, ticking at the
// given interval. onExpire fires exactly once, on the Active to Expired
// transition; it may be nil.
func NewCountdownService(end time.Time, tick time.Duration, onExpire func()) *CountdownService {
	s := &CountdownService{
		end:      end,
		tick:     tick,
		now:      time.Now,
		state:    CountdownActive,
		onExpire: onExpire,
		stopCh:   make(chan struct{}),
	}
	return s
}

// TestEndDate returns the end date used in test mode: two minutes from now
func TestEndDate() time.Time {
	return time.Now().Add(2 * time.Minute)
}

// Start evaluates the countdown immediately, then on every tick
func (s *CountdownService) Start() {
	s.Tick()
	go func() {
		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Tick()
			case <-s.stopCh:
				return
			}
		}
	}()
}

// Stop halts the ticker
func (s *CountdownService) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// Tick evaluates the countdown once. The expired callback fires only on the
// first transition; later ticks in the expired state are no-ops.
func (s *CountdownService) Tick() {
	state, remaining := ComputeState(s.now(), s.end)

	s.mu.Lock()
	if s.expired {
		s.mu.Unlock()
		return
	}
	if state == CountdownExpired {
		s.expired = true
		s.state = CountdownExpired
		callback := s.onExpire
		s.mu.Unlock()
		log.Printf("countdown: offer expired at %s", s.end.Format(time.RFC3339))
		if callback != nil {
			callback()
		}
		return
	}
	s.state = CountdownActive
	s.mu.Unlock()

	b := Breakdown(remaining)
	log.Printf("countdown: %sd %sh %sm left until %s", b.Days, b.Hours, b.Minutes, s.end.Format(time.RFC3339))
}

// State returns the current display state
func (s *CountdownService) State() CountdownState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// EndDate returns the configured expiry instant
func (s *CountdownService) EndDate() time.Time {
	return s.end
}

// Snapshot computes the countdown view at the current instant. Once the
// service has latched into the expired state it stays expired, even if the
// clock would still read a positive remainder.
func (s *CountdownService) Snapshot() CountdownSnapshot {
	s.mu.Lock()
	latched := s.expired
	s.mu.Unlock()

	state, remaining := ComputeState(s.now(), s.end)
	if latched {
		state = CountdownExpired
	}

	if state == CountdownExpired {
		return CountdownSnapshot{
			State:          CountdownExpired,
			EndDate:        renderer.FormatArabicDate(s.end),
			ExpiredMessage: "لقد انتهى العرض",
			ExpiredNote:    "شكراً لاهتمامكم، ترقبوا عروضنا القادمة",
			Badge:          "العرض منتهي",
		}
	}

	b := Breakdown(remaining)
	return CountdownSnapshot{
		State:   CountdownActive,
		Days:    b.Days,
		Hours:   b.Hours,
		Minutes: b.Minutes,
		EndDate: renderer.FormatArabicDate(s.end),
	}
}
