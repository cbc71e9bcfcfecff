package schedulers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/validator"
)

type Algorithm string

const (
	AlgorithmFCFS     Algorithm = "FCFS"
	AlgorithmSJF      Algorithm = "SJF"
	AlgorithmRR       Algorithm = "RR"
	AlgorithmPriority Algorithm = "Priority"
	AlgorithmMLFQ     Algorithm = "MLFQ"
)

// Algorithms lists every supported algorithm in presentation order.
var Algorithms = []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmRR, AlgorithmPriority, AlgorithmMLFQ}

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

var algorithmAliases = map[string]Algorithm{
	"fcfs":                      AlgorithmFCFS,
	"first-come-first-serve":    AlgorithmFCFS,
	"sjf":                       AlgorithmSJF,
	"shortest-job-first":        AlgorithmSJF,
	"rr":                        AlgorithmRR,
	"round-robin":               AlgorithmRR,
	"priority":                  AlgorithmPriority,
	"mlfq":                      AlgorithmMLFQ,
	"multilevel-feedback-queue": AlgorithmMLFQ,
}

// ParseAlgorithm resolves a case-insensitive tag or alias.
func ParseAlgorithm(s string) (Algorithm, error) {
	a, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
	return a, nil
}

// Scheduler decides when and for how long each process occupies the cpu.
// Schedule must not modify processes and must not keep state between calls.
type Scheduler interface {
	Algorithm() Algorithm
	Schedule(processes []core.Process) *core.Cpu
}

// Options carries the parameters only some algorithms use.
type Options struct {
	TimeQuantum       float64   // RR
	LevelsTimeQuantum []float64 // MLFQ, one quantum per round robin level
}

func New(algorithm Algorithm, opts Options) (Scheduler, error) {
	switch algorithm {
	case AlgorithmFCFS:
		return FirstComeFirstServe{}, nil
	case AlgorithmSJF:
		return ShortestJobFirst{}, nil
	case AlgorithmPriority:
		return PriorityScheduling{}, nil
	case AlgorithmRR:
		if err := validator.ValidateTimeQuantum(opts.TimeQuantum); err != nil {
			return nil, err
		}
		return RoundRobin{TimeQuantum: opts.TimeQuantum}, nil
	case AlgorithmMLFQ:
		if err := validator.ValidateLevelsTimeQuantum(opts.LevelsTimeQuantum); err != nil {
			return nil, err
		}
		levels := append([]float64(nil), opts.LevelsTimeQuantum...)
		return MultilevelFeedbackQueue{LevelsTimeQuantum: levels}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
}

// Run validates the input, simulates it under algorithm and aggregates the
// result. Invalid input aborts the run before any scheduling happens.
func Run(algorithm Algorithm, processes []core.Process, opts Options) (core.RunResult, error) {
	if err := validator.ValidateProcesses(processes); err != nil {
		return core.RunResult{}, err
	}
	return run(algorithm, processes, opts)
}

// RunAll runs every algorithm on the same input concurrently. Results come
// back in the order of algorithms; with no algorithms given, all are run.
func RunAll(processes []core.Process, opts Options, algorithms ...Algorithm) ([]core.RunResult, error) {
	if len(algorithms) == 0 {
		algorithms = Algorithms
	}
	if err := validator.ValidateProcesses(processes); err != nil {
		return nil, err
	}

	results := make([]core.RunResult, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, algorithm := range algorithms {
		go func(i int, algorithm Algorithm) {
			defer wg.Done()
			results[i], errs[i] = run(algorithm, processes, opts)
		}(i, algorithm)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithms[i], err)
		}
	}
	return results, nil
}

func run(algorithm Algorithm, processes []core.Process, opts Options) (core.RunResult, error) {
	scheduler, err := New(algorithm, opts)
	if err != nil {
		return core.RunResult{}, err
	}

	log.WithFields(log.Fields{"algorithm": algorithm, "processes": len(processes)}).Info("running scheduler")
	cpu := scheduler.Schedule(processes)

	result, err := generateRunResult(scheduler, processes, cpu)
	if err != nil {
		return core.RunResult{}, err
	}
	log.WithFields(log.Fields{
		"run_id":                   result.RunId,
		"algorithm":                algorithm,
		"average_waiting_time":     result.AverageWaitingTime,
		"average_turn_around_time": result.AverageTurnAroundTime,
	}).Info("run completed")
	return result, nil
}
