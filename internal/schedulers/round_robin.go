package schedulers

import (
	log "github.com/sirupsen/logrus"

	"cpu-scheduler-simulator/internal/core"
)

type RoundRobin struct {
	TimeQuantum float64
}

func (RoundRobin) Algorithm() Algorithm { return AlgorithmRR }

// Schedule admits arrivals to a FIFO ready queue and grants each turn at most
// one quantum. A preempted process goes back to the tail; processes that
// arrived while it was running are admitted on the next turn, behind it.
func (r RoundRobin) Schedule(processes []core.Process) *core.Cpu {
	log.WithField("time_quantum", r.TimeQuantum).Debug("running roundRobin algorithm")

	cpu := core.NewCpu()
	pending := jobsByArrival(processes)
	remaining := make([]float64, len(processes))
	for _, j := range pending {
		remaining[j.index] = j.BurstTime
	}

	roundRobinQueue := make([]job, 0, len(processes))
	for len(pending) > 0 || len(roundRobinQueue) > 0 {
		pending, roundRobinQueue = admit(pending, roundRobinQueue, cpu.Clock)
		if len(roundRobinQueue) == 0 {
			cpu.IdleUntil(pending[0].ArrivalTime)
			continue
		}

		current := roundRobinQueue[0]
		roundRobinQueue = roundRobinQueue[1:]

		slice := nextSlice(r.TimeQuantum, remaining[current.index], current.BurstTime)
		cpu.Execute(current.Process, slice)
		remaining[current.index] -= slice

		if !exhausted(remaining[current.index], current.BurstTime) {
			log.WithField("pid", current.ProcessId).Debug("context switch detected. send proccess to roundRobin queue")
			roundRobinQueue = append(roundRobinQueue, current)
		} else {
			cpu.Complete(current.Process)
		}
	}
	return cpu
}
