package schedulers

import (
	log "github.com/sirupsen/logrus"

	"cpu-scheduler-simulator/internal/core"
)

// MultilevelFeedbackQueue has one round robin level per entry of
// LevelsTimeQuantum followed by a final fcfs level. With [5, 8] there are
// three levels: rr(5), rr(8), fcfs.
type MultilevelFeedbackQueue struct {
	LevelsTimeQuantum []float64
}

func (MultilevelFeedbackQueue) Algorithm() Algorithm { return AlgorithmMLFQ }

// Schedule always serves the highest non-empty level. New arrivals join level
// 0; a process that uses its whole quantum without finishing drops one level.
// A running slice is never cut short by a higher-level arrival.
func (m MultilevelFeedbackQueue) Schedule(processes []core.Process) *core.Cpu {
	log.WithField("levels_time_quantum", m.LevelsTimeQuantum).Debug("running mlfq algorithm")

	fcfsLevel := len(m.LevelsTimeQuantum)
	levels := make([][]job, fcfsLevel+1)

	cpu := core.NewCpu()
	pending := jobsByArrival(processes)
	remaining := make([]float64, len(processes))
	for _, j := range pending {
		remaining[j.index] = j.BurstTime
	}

	for len(pending) > 0 || !allEmpty(levels) {
		pending, levels[0] = admit(pending, levels[0], cpu.Clock)

		level := highestNonEmpty(levels)
		if level < 0 {
			cpu.IdleUntil(pending[0].ArrivalTime)
			continue
		}

		current := levels[level][0]
		levels[level] = levels[level][1:]

		slice := remaining[current.index]
		if level < fcfsLevel {
			slice = nextSlice(m.LevelsTimeQuantum[level], slice, current.BurstTime)
		}
		cpu.Execute(current.Process, slice)
		remaining[current.index] -= slice

		if exhausted(remaining[current.index], current.BurstTime) {
			cpu.Complete(current.Process)
			continue
		}

		next := level
		if level < fcfsLevel {
			next = level + 1
		}
		log.WithFields(log.Fields{"pid": current.ProcessId, "level": next}).Debug("quantum exhausted. send proccess to next level")
		levels[next] = append(levels[next], current)
	}
	return cpu
}

func highestNonEmpty(levels [][]job) int {
	for i, q := range levels {
		if len(q) > 0 {
			return i
		}
	}
	return -1
}

func allEmpty(levels [][]job) bool {
	return highestNonEmpty(levels) < 0
}
