package schedulers

import (
	"github.com/google/uuid"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/util"
)

func generateRunResult(scheduler Scheduler, processes []core.Process, cpu *core.Cpu) (core.RunResult, error) {
	proccessDetails := make([]core.ProcessResult, 0, len(processes))
	for _, p := range processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(p, cpu.ScheduleTimes[p.ProcessId]))
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime, err := util.CalculateAverage(proccessDetails)
	if err != nil {
		return core.RunResult{}, err
	}

	metric := cpu.Metric()
	result := core.RunResult{
		RunId:                 uuid.NewString(),
		Algorithm:             string(scheduler.Algorithm()),
		Gantt:                 cpu.Segments,
		Details:               proccessDetails,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		AverageResponseTime:   averageResponseTime,
		Cpu:                   metric,
	}
	if metric.TotalTime > 0 {
		result.CpuUtilization = metric.UtilizationTime / metric.TotalTime
		result.CpuThroughput = float64(len(processes)) / metric.TotalTime
	}

	switch s := scheduler.(type) {
	case RoundRobin:
		result.TimeQuantum = s.TimeQuantum
	case MultilevelFeedbackQueue:
		result.LevelsTimeQuantum = s.LevelsTimeQuantum
	}
	return result, nil
}

func generateProcessDetails(p core.Process, st *core.ScheduleTime) core.ProcessResult {
	turnAroundTime := st.Complete - p.ArrivalTime
	return core.ProcessResult{
		Process:        p,
		StartTime:      st.Execution,
		CompletionTime: st.Complete,
		TurnAroundTime: turnAroundTime,
		WaitingTime:    turnAroundTime - p.BurstTime,
		ResponseTime:   st.Execution - p.ArrivalTime,
	}
}
