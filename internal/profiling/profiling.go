package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight per-event CPU profiler. The host resets it before dispatching a
// batch of pointer events and reads it back to report slow handling.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
	counts = make(map[string]int)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("physics.Cast")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		counts[name]++
		mu.Unlock()
	}
}

// ResetFrame clears the accumulated totals.
func ResetFrame() {
	mu.Lock()
	clear(totals)
	clear(counts)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// Count returns how many times name was tracked since the last reset.
func Count(name string) int {
	mu.Lock()
	defer mu.Unlock()
	return counts[name]
}

// SumWithPrefix adds up every total whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range totals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n largest totals, longest first.
// Example: "interaction.PointerMove:0.4ms(3), physics.Cast:0.3ms(3)"
func TopN(n int) string {
	mu.Lock()
	type entry struct {
		name  string
		dur   time.Duration
		count int
	}
	list := make([]entry, 0, len(totals))
	for k, v := range totals {
		list = append(list, entry{name: k, dur: v, count: counts[k]})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		ms := float64(e.dur.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms(%d)", e.name, ms, e.count))
	}
	return strings.Join(parts, ", ")
}
