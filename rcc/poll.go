package rcc

import "errors"

// ErrWaitTimeout is returned by bounded waiters when hardware never reaches
// the expected state. The production default never returns it.
var ErrWaitTimeout = errors.New("gave up waiting for hardware")

// A Waiter blocks until ready reports true. Hardware-confirmation waits run
// through the handle's Waiter so that a test harness can swap in a bounded
// one instead of hanging on simulated registers.
type Waiter func(ready func() bool) error

// spin is the production default: an unbounded busy wait, matching the
// hardware requirement that configuration only proceeds once the block has
// confirmed. If the condition never comes true this hangs forever.
func spin(ready func() bool) error {
	for !ready() {
	}
	return nil
}

// BoundedWaiter returns a Waiter that polls at most the given number of
// times before giving up with ErrWaitTimeout.
func BoundedWaiter(polls int) Waiter {
	return func(ready func() bool) error {
		for i := 0; i < polls; i++ {
			if ready() {
				return nil
			}
		}
		return ErrWaitTimeout
	}
}
