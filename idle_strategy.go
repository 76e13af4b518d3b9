// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package membuf

import (
	"runtime"
	"sync/atomic"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// IdleStrategy is the back-off policy of a busy-wait loop. The loop
// calls Idle(workCount) once per tick: workCount > 0 means work was
// done this tick, 0 means the tick was idle. Reset returns the
// strategy to its most aggressive phase.
//
// Strategies carry mutable progress state and are owned by a single
// polling goroutine.
type IdleStrategy interface {
	Idle(workCount int)
	Reset()
}

// BusySpinIdleStrategy emits a CPU pause hint on every idle call and
// never yields the processor. Reset is a no-op.
type BusySpinIdleStrategy struct{}

func (BusySpinIdleStrategy) Idle(int) { spin.Yield() }

func (BusySpinIdleStrategy) Reset() {}

// SleepingIdleStrategy sleeps for a fixed duration on every idle tick.
type SleepingIdleStrategy struct {
	sleepDuration time.Duration
}

// NewSleepingIdleStrategy returns a strategy sleeping d per idle tick.
func NewSleepingIdleStrategy(d time.Duration) *SleepingIdleStrategy {
	return &SleepingIdleStrategy{sleepDuration: d}
}

func (s *SleepingIdleStrategy) Idle(workCount int) {
	if workCount == 0 {
		time.Sleep(s.sleepDuration)
	}
}

func (s *SleepingIdleStrategy) Reset() {}

// BackoffIdleStrategy progresses through spin, yield and park phases on
// consecutive idle ticks: up to maxSpins CPU pause hints, then up to
// maxYields scheduler yields, then parking with a duration that starts
// at minPark and doubles each tick up to maxPark. A work tick resets
// the progression to the spin phase.
type BackoffIdleStrategy struct {
	maxSpins  uint64
	maxYields uint64
	minPark   time.Duration
	maxPark   time.Duration

	spins  uint64
	yields uint64
	park   time.Duration
}

// NewBackoffIdleStrategy returns a strategy with the given phase limits.
func NewBackoffIdleStrategy(maxSpins, maxYields uint64, minPark, maxPark time.Duration) *BackoffIdleStrategy {
	return &BackoffIdleStrategy{
		maxSpins:  maxSpins,
		maxYields: maxYields,
		minPark:   minPark,
		maxPark:   maxPark,
		park:      minPark,
	}
}

// NewDefaultBackoffIdleStrategy returns a strategy with 10 spins,
// 5 yields and park durations from 1ns to 1ms.
func NewDefaultBackoffIdleStrategy() *BackoffIdleStrategy {
	return NewBackoffIdleStrategy(10, 5, time.Nanosecond, time.Millisecond)
}

func (s *BackoffIdleStrategy) Idle(workCount int) {
	switch {
	case workCount > 0:
		s.Reset()
	case s.spins < s.maxSpins:
		s.spins++
		spin.Yield()
	case s.yields < s.maxYields:
		s.yields++
		runtime.Gosched()
	default:
		time.Sleep(s.park)
		s.park = min(s.park*2, s.maxPark)
	}
}

func (s *BackoffIdleStrategy) Reset() {
	s.spins = 0
	s.yields = 0
	s.park = s.minPark
}

// Status words published by ControllableIdleStrategy.
const (
	StatusRunning uint64 = iota
	StatusSpinning
	StatusYielding
	StatusParking
)

// ControllableIdleStrategy delegates per the externally published
// status word: RUNNING busy-spins, PARKING blocks the caller until the
// status is changed again, and any other status falls back to the
// backoff progression. Status reads acquire and writes release, so a
// controller's writes before Park/Unpark are visible to the idling
// goroutine.
type ControllableIdleStrategy struct {
	status   atomic.Uint64
	busySpin BusySpinIdleStrategy
	backoff  *BackoffIdleStrategy
}

// NewControllableIdleStrategy returns a strategy in the RUNNING state.
func NewControllableIdleStrategy() *ControllableIdleStrategy {
	return &ControllableIdleStrategy{backoff: NewDefaultBackoffIdleStrategy()}
}

// Status returns the currently published status word.
func (s *ControllableIdleStrategy) Status() uint64 {
	return s.status.Load()
}

// SetStatus publishes a status word.
func (s *ControllableIdleStrategy) SetStatus(status uint64) {
	s.status.Store(status)
}

// Park publishes StatusParking; the idling goroutine blocks on its next
// Idle call until Unpark or SetStatus moves it out of PARKING.
func (s *ControllableIdleStrategy) Park() {
	s.status.Store(StatusParking)
}

// Unpark publishes StatusRunning, releasing a parked idler.
func (s *ControllableIdleStrategy) Unpark() {
	s.status.Store(StatusRunning)
}

func (s *ControllableIdleStrategy) Idle(workCount int) {
	switch s.status.Load() {
	case StatusRunning:
		s.busySpin.Idle(workCount)
	case StatusParking:
		// Unparking is an external event on another goroutine's
		// schedule; adaptive waiting yields the CPU while blocked.
		var aw iox.Backoff
		for s.status.Load() == StatusParking {
			aw.Wait()
		}
	default:
		s.backoff.Idle(workCount)
	}
}

func (s *ControllableIdleStrategy) Reset() {
	s.busySpin.Reset()
	s.backoff.Reset()
}
