package validator

import (
	"errors"
	"fmt"
	"math"

	"cpu-scheduler-simulator/internal/core"
)

var ErrEmptyInput = errors.New("no processes supplied")

// ValidationError names the field of the process (or run option) that broke
// its invariant. Index is -1 for run options such as the time quantum.
type ValidationError struct {
	Index     int
	ProcessId string
	Field     string
	Value     float64
	Message   string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	if e.ProcessId == "" {
		return fmt.Sprintf("process #%d: invalid %s: %s", e.Index+1, e.Field, e.Message)
	}
	return fmt.Sprintf("process %q: invalid %s: %s", e.ProcessId, e.Field, e.Message)
}

// ValidateProcesses checks every record and fails on the first violation.
// Nothing is clamped or dropped.
func ValidateProcesses(processes []core.Process) error {
	if len(processes) == 0 {
		return ErrEmptyInput
	}

	seen := make(map[string]int, len(processes))
	for i, p := range processes {
		fieldErr := func(field string, value float64, msg string) error {
			return &ValidationError{Index: i, ProcessId: p.ProcessId, Field: field, Value: value, Message: msg}
		}

		if p.ProcessId == "" {
			return fieldErr("process_id", 0, "must not be empty")
		}
		if first, ok := seen[p.ProcessId]; ok {
			return fieldErr("process_id", 0, fmt.Sprintf("duplicate of process #%d", first+1))
		}
		seen[p.ProcessId] = i

		if !isFinite(p.ArrivalTime) {
			return fieldErr("arrival_time", p.ArrivalTime, "must be a finite number")
		}
		if p.ArrivalTime < 0 {
			return fieldErr("arrival_time", p.ArrivalTime, fmt.Sprintf("must be >= 0, got %g", p.ArrivalTime))
		}
		if !isFinite(p.BurstTime) {
			return fieldErr("burst_time", p.BurstTime, "must be a finite number")
		}
		if p.BurstTime <= 0 {
			return fieldErr("burst_time", p.BurstTime, fmt.Sprintf("must be > 0, got %g", p.BurstTime))
		}
		if !isFinite(p.Priority) {
			return fieldErr("priority", p.Priority, "must be a finite number")
		}
	}
	return nil
}

func ValidateTimeQuantum(quantum float64) error {
	if !isFinite(quantum) || quantum <= 0 {
		return &ValidationError{
			Index:   -1,
			Field:   "time_quantum",
			Value:   quantum,
			Message: fmt.Sprintf("must be > 0, got %g", quantum),
		}
	}
	return nil
}

// ValidateLevelsTimeQuantum checks the per-level quanta of a multilevel
// feedback queue.
func ValidateLevelsTimeQuantum(quantums []float64) error {
	if len(quantums) == 0 {
		return &ValidationError{Index: -1, Field: "levels_time_quantum", Message: "at least one level is required"}
	}
	for i, q := range quantums {
		if !isFinite(q) || q <= 0 {
			return &ValidationError{
				Index:   -1,
				Field:   "levels_time_quantum",
				Value:   q,
				Message: fmt.Sprintf("level %d must be > 0, got %g", i, q),
			}
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
