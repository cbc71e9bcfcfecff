package schedulers

import (
	log "github.com/sirupsen/logrus"

	"cpu-scheduler-simulator/internal/core"
)

type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Algorithm() Algorithm { return AlgorithmFCFS }

// Schedule runs processes to completion in arrival order; equal arrivals keep
// input order.
func (FirstComeFirstServe) Schedule(processes []core.Process) *core.Cpu {
	cpu := core.NewCpu()
	for _, current := range jobsByArrival(processes) {
		cpu.IdleUntil(current.ArrivalTime)
		log.WithField("pid", current.ProcessId).Debug("send process to cpu")
		cpu.Execute(current.Process, current.BurstTime)
		cpu.Complete(current.Process)
	}
	return cpu
}
