package schedulers

import "cpu-scheduler-simulator/internal/core"

// PriorityScheduling is non-preemptive; a lower priority value runs first.
type PriorityScheduling struct{}

func (PriorityScheduling) Algorithm() Algorithm { return AlgorithmPriority }

func (PriorityScheduling) Schedule(processes []core.Process) *core.Cpu {
	return scheduleNonPreemptive(processes, priority)
}

func priority(p core.Process) float64 { return p.Priority }
