package main

import "time"

// frameLimiter paces the loop when vsync is off.
type frameLimiter struct {
	next time.Time
}

// wait blocks until the next frame is due at fps frames per second. A
// non-positive fps disables pacing.
func (f *frameLimiter) wait(fps int) {
	if fps <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(fps)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	if remaining := time.Until(f.next); remaining > 0 {
		time.Sleep(remaining)
	}

	// Resync after a hitch instead of rushing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
