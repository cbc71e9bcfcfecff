package requests

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cpu-scheduler-simulator/internal/core"
)

// ProcessId accepts either a JSON string or a JSON number.
type ProcessId string

func (id *ProcessId) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProcessId(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("process_id must be a string or a number: %w", err)
	}
	*id = ProcessId(n.String())
	return nil
}

type Job struct {
	ProcessId   ProcessId `json:"process_id"`
	ArrivalTime float64   `json:"arrival_time"`
	BurstTime   float64   `json:"burst_time"`
	Priority    float64   `json:"priority"`
}

type ScheduleRequests struct {
	Jobs              []Job     `json:"jobs"`
	TimeQuantum       *float64  `json:"time_quantum,omitempty"`
	LevelsTimeQuantum []float64 `json:"levels_time_quantum,omitempty"`
}

func (r ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.Process{
			ProcessId:   string(job.ProcessId),
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		})
	}
	return processes
}
