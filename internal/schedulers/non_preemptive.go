package schedulers

import (
	log "github.com/sirupsen/logrus"

	"cpu-scheduler-simulator/internal/core"
)

// scheduleNonPreemptive repeatedly picks, among the jobs that have arrived,
// the one with the smallest key and runs it to completion. Ties go to the
// earliest arrival, then to input order. When nothing has arrived the cpu
// idles until the next arrival.
func scheduleNonPreemptive(processes []core.Process, key func(core.Process) float64) *core.Cpu {
	cpu := core.NewCpu()
	pending := jobsByArrival(processes)

	for len(pending) > 0 {
		selected := -1
		for i := range pending {
			if pending[i].ArrivalTime > cpu.Clock {
				break
			}
			if selected == -1 || runsBefore(pending[i], pending[selected], key) {
				selected = i
			}
		}
		if selected == -1 {
			cpu.IdleUntil(pending[0].ArrivalTime)
			continue
		}

		current := pending[selected]
		pending = append(pending[:selected], pending[selected+1:]...)

		log.WithFields(log.Fields{"pid": current.ProcessId, "key": key(current.Process)}).Debug("selected process")
		cpu.Execute(current.Process, current.BurstTime)
		cpu.Complete(current.Process)
	}
	return cpu
}

func runsBefore(a, b job, key func(core.Process) float64) bool {
	ka, kb := key(a.Process), key(b.Process)
	if ka != kb {
		return ka < kb
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.index < b.index
}
