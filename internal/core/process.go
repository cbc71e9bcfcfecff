package core

// Process is a schedulable unit. It is read-only once validated; schedulers
// copy it and never write back.
type Process struct {
	ProcessId   string
	ArrivalTime float64
	BurstTime   float64
	Priority    float64 // lower value = more urgent
}

// GanttSegment is one contiguous interval in which ProcessId owns the CPU.
type GanttSegment struct {
	ProcessId string  `json:"process_id"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
}

func (s GanttSegment) Duration() float64 {
	return s.End - s.Start
}

// ProcessResult holds the per-process outcome of a single run.
type ProcessResult struct {
	Process
	StartTime      float64
	CompletionTime float64
	TurnAroundTime float64
	WaitingTime    float64
	ResponseTime   float64
}

// RunResult is everything a single simulation run produces.
type RunResult struct {
	RunId             string
	Algorithm         string
	TimeQuantum       float64
	LevelsTimeQuantum []float64

	Gantt   []GanttSegment
	Details []ProcessResult // input order

	AverageWaitingTime    float64
	AverageTurnAroundTime float64
	AverageResponseTime   float64

	Cpu            CpuMetric
	CpuUtilization float64
	CpuThroughput  float64
}

// ResultsById returns the per-process results keyed by process id.
func (r RunResult) ResultsById() map[string]ProcessResult {
	byId := make(map[string]ProcessResult, len(r.Details))
	for _, d := range r.Details {
		byId[d.ProcessId] = d
	}
	return byId
}
