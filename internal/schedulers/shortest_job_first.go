package schedulers

import "cpu-scheduler-simulator/internal/core"

// ShortestJobFirst is the non-preemptive variant: a running job is never
// interrupted by a shorter arrival.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Algorithm() Algorithm { return AlgorithmSJF }

func (ShortestJobFirst) Schedule(processes []core.Process) *core.Cpu {
	return scheduleNonPreemptive(processes, burstTime)
}

func burstTime(p core.Process) float64 { return p.BurstTime }
