package schedulers

import (
	"math"
	"sort"

	"cpu-scheduler-simulator/internal/core"
)

// job is a private copy of a process plus its position in the input, which is
// the final tie-breaker everywhere.
type job struct {
	core.Process
	index int
}

// jobsByArrival copies processes and stable-sorts them by arrival time, so
// equal arrivals keep input order.
func jobsByArrival(processes []core.Process) []job {
	jobs := make([]job, len(processes))
	for i, p := range processes {
		jobs[i] = job{Process: p, index: i}
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})
	return jobs
}

// admit moves every pending job that has arrived by clock to the tail of
// queue, in arrival order.
func admit(pending, queue []job, clock float64) ([]job, []job) {
	for len(pending) > 0 && pending[0].ArrivalTime <= clock {
		queue = append(queue, pending[0])
		pending = pending[1:]
	}
	return pending, queue
}

// nextSlice caps a turn at quantum. When only rounding dust would be left over
// the slice takes the whole remainder, so the executed total matches the burst.
func nextSlice(quantum, remaining, burst float64) float64 {
	slice := math.Min(quantum, remaining)
	if remaining-slice <= core.Epsilon*burst {
		return remaining
	}
	return slice
}

// exhausted reports whether what is left of burst is rounding dust.
func exhausted(remaining, burst float64) bool {
	return remaining <= core.Epsilon*burst
}
