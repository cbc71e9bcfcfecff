package responses

import "cpu-scheduler-simulator/internal/core"

type GanttSegment struct {
	ProcessId string  `json:"process_id"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
}

type ProcessResponse struct {
	ProcessId      string  `json:"process_id"`
	ArrivalTime    float64 `json:"arrival_time"`
	BurstTime      float64 `json:"burst_time"`
	Priority       float64 `json:"priority"`
	StartTime      float64 `json:"start_time"`
	CompletionTime float64 `json:"completion_time"`
	ResponseTime   float64 `json:"response_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           float64           `json:"time_quantum,omitempty"`
	LevelsTimeQuantum     []float64         `json:"levels_time_quantum,omitempty"`
	Gantt                 []GanttSegment    `json:"gantt"`
	TotalTime             float64           `json:"total_time"`
	IdleTime              float64           `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
}

type CompareResponse struct {
	Results []ScheduleResponse `json:"results"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	ProcessId string `json:"process_id,omitempty"`
	Index     *int   `json:"index,omitempty"`
}

func NewScheduleResponse(result core.RunResult) ScheduleResponse {
	gantt := make([]GanttSegment, 0, len(result.Gantt))
	for _, s := range result.Gantt {
		gantt = append(gantt, GanttSegment{ProcessId: s.ProcessId, Start: s.Start, End: s.End})
	}

	details := make([]ProcessResponse, 0, len(result.Details))
	for _, d := range result.Details {
		details = append(details, ProcessResponse{
			ProcessId:      d.ProcessId,
			ArrivalTime:    d.ArrivalTime,
			BurstTime:      d.BurstTime,
			Priority:       d.Priority,
			StartTime:      d.StartTime,
			CompletionTime: d.CompletionTime,
			ResponseTime:   d.ResponseTime,
			TurnAroundTime: d.TurnAroundTime,
			WaitingTime:    d.WaitingTime,
		})
	}

	return ScheduleResponse{
		RunId:                 result.RunId,
		Algorithm:             result.Algorithm,
		TimeQuantum:           result.TimeQuantum,
		LevelsTimeQuantum:     result.LevelsTimeQuantum,
		Gantt:                 gantt,
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageResponseTime:   result.AverageResponseTime,
		AverageTurnAroundTime: result.AverageTurnAroundTime,
		CpuUtilization:        result.CpuUtilization,
		CpuThroughput:         result.CpuThroughput,
		Details:               details,
	}
}

func NewCompareResponse(results []core.RunResult) CompareResponse {
	out := CompareResponse{Results: make([]ScheduleResponse, 0, len(results))}
	for _, r := range results {
		out.Results = append(out.Results, NewScheduleResponse(r))
	}
	return out
}
