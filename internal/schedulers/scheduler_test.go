package schedulers

import (
	"errors"
	"math"
	"testing"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/validator"
)

const tolerance = 1e-9

func abc() []core.Process {
	return []core.Process{
		{ProcessId: "A", ArrivalTime: 0, BurstTime: 5, Priority: 3},
		{ProcessId: "B", ArrivalTime: 0, BurstTime: 3, Priority: 1},
		{ProcessId: "C", ArrivalTime: 0, BurstTime: 2, Priority: 2},
	}
}

func seg(pid string, start, end float64) core.GanttSegment {
	return core.GanttSegment{ProcessId: pid, Start: start, End: end}
}

func mustRun(t *testing.T, algorithm Algorithm, processes []core.Process, opts Options) core.RunResult {
	t.Helper()
	result, err := Run(algorithm, processes, opts)
	if err != nil {
		t.Fatalf("Run(%s): %v", algorithm, err)
	}
	checkInvariants(t, processes, result)
	return result
}

func assertGantt(t *testing.T, got, want []core.GanttSegment) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("gantt = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].ProcessId != want[i].ProcessId ||
			math.Abs(got[i].Start-want[i].Start) > tolerance ||
			math.Abs(got[i].End-want[i].End) > tolerance {
			t.Fatalf("gantt[%d] = %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func assertWaiting(t *testing.T, result core.RunResult, want map[string]float64) {
	t.Helper()
	byId := result.ResultsById()
	for pid, w := range want {
		if got := byId[pid].WaitingTime; math.Abs(got-w) > tolerance {
			t.Errorf("%s waiting time = %v, want %v", pid, got, w)
		}
	}
}

// checkInvariants asserts the properties every run must satisfy regardless of
// algorithm.
func checkInvariants(t *testing.T, processes []core.Process, result core.RunResult) {
	t.Helper()

	for i, s := range result.Gantt {
		if !(s.Start < s.End) {
			t.Errorf("segment %v has start >= end", s)
		}
		if i > 0 && s.Start < result.Gantt[i-1].End-tolerance {
			t.Errorf("segment %v overlaps %v", s, result.Gantt[i-1])
		}
	}

	executed := map[string]float64{}
	for _, s := range result.Gantt {
		executed[s.ProcessId] += s.Duration()
	}

	if len(result.Details) != len(processes) {
		t.Fatalf("details = %d, want %d", len(result.Details), len(processes))
	}
	for i, p := range processes {
		d := result.Details[i]
		if d.ProcessId != p.ProcessId {
			t.Errorf("details[%d] = %s, want input order %s", i, d.ProcessId, p.ProcessId)
		}
		if math.Abs(d.TurnAroundTime-(d.WaitingTime+p.BurstTime)) > tolerance {
			t.Errorf("%s: turnaround %v != waiting %v + burst %v", p.ProcessId, d.TurnAroundTime, d.WaitingTime, p.BurstTime)
		}
		if math.Abs(executed[p.ProcessId]-p.BurstTime) > tolerance*p.BurstTime {
			t.Fatalf("%s: executed %v, want burst %v", p.ProcessId, executed[p.ProcessId], p.BurstTime)
		}
		if d.WaitingTime < -tolerance {
			t.Errorf("%s: negative waiting time %v", p.ProcessId, d.WaitingTime)
		}
	}

	m := result.Cpu
	if math.Abs(m.IdleTime+m.UtilizationTime-m.TotalTime) > 1e-6 {
		t.Errorf("idle %v + busy %v != total %v", m.IdleTime, m.UtilizationTime, m.TotalTime)
	}
}

func TestFirstComeFirstServe(t *testing.T) {
	result := mustRun(t, AlgorithmFCFS, abc(), Options{})

	assertGantt(t, result.Gantt, []core.GanttSegment{seg("A", 0, 5), seg("B", 5, 8), seg("C", 8, 10)})
	assertWaiting(t, result, map[string]float64{"A": 0, "B": 5, "C": 8})
	if math.Abs(result.AverageWaitingTime-13.0/3) > tolerance {
		t.Errorf("average waiting = %v, want 4.333", result.AverageWaitingTime)
	}
	if math.Abs(result.AverageTurnAroundTime-23.0/3) > tolerance {
		t.Errorf("average turnaround = %v, want 7.666", result.AverageTurnAroundTime)
	}
}

func TestFirstComeFirstServe_IdleJump(t *testing.T) {
	result := mustRun(t, AlgorithmFCFS, []core.Process{{ProcessId: "A", ArrivalTime: 5, BurstTime: 3}}, Options{})

	assertGantt(t, result.Gantt, []core.GanttSegment{seg("A", 5, 8)})
	assertWaiting(t, result, map[string]float64{"A": 0})
	if result.Cpu.IdleTime != 5 {
		t.Errorf("idle time = %v, want 5", result.Cpu.IdleTime)
	}
}

func TestFirstComeFirstServe_SortsByArrivalStably(t *testing.T) {
	ps := []core.Process{
		{ProcessId: "late", ArrivalTime: 4, BurstTime: 1},
		{ProcessId: "x", ArrivalTime: 1, BurstTime: 2},
		{ProcessId: "y", ArrivalTime: 1, BurstTime: 1},
	}
	result := mustRun(t, AlgorithmFCFS, ps, Options{})
	assertGantt(t, result.Gantt, []core.GanttSegment{seg("x", 1, 3), seg("y", 3, 4), seg("late", 4, 5)})
}

func TestShortestJobFirst(t *testing.T) {
	result := mustRun(t, AlgorithmSJF, abc(), Options{})

	assertGantt(t, result.Gantt, []core.GanttSegment{seg("C", 0, 2), seg("B", 2, 5), seg("A", 5, 10)})
	assertWaiting(t, result, map[string]float64{"C": 0, "B": 2, "A": 5})
	if math.Abs(result.AverageWaitingTime-7.0/3) > tolerance {
		t.Errorf("average waiting = %v, want 2.333", result.AverageWaitingTime)
	}
}

func TestShortestJobFirst_NonPreemptiveWithArrivals(t *testing.T) {
	ps := []core.Process{
		{ProcessId: "P1", ArrivalTime: 0, BurstTime: 8},
		{ProcessId: "P2", ArrivalTime: 1, BurstTime: 4},
		{ProcessId: "P3", ArrivalTime: 2, BurstTime: 9},
		{ProcessId: "P4", ArrivalTime: 3, BurstTime: 5},
	}
	result := mustRun(t, AlgorithmSJF, ps, Options{})
	assertGantt(t, result.Gantt, []core.GanttSegment{
		seg("P1", 0, 8), seg("P2", 8, 12), seg("P4", 12, 17), seg("P3", 17, 26),
	})
}

func TestShortestJobFirst_TieBreaks(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		want      []string
	}{
		{
			name: "equal arrival and burst keep input order",
			processes: []core.Process{
				{ProcessId: "first", BurstTime: 2},
				{ProcessId: "second", BurstTime: 2},
				{ProcessId: "third", BurstTime: 2},
			},
			want: []string{"first", "second", "third"},
		},
		{
			name: "equal burst prefers earlier arrival over input order",
			processes: []core.Process{
				{ProcessId: "P1", ArrivalTime: 2, BurstTime: 3},
				{ProcessId: "P2", ArrivalTime: 1, BurstTime: 3},
				{ProcessId: "P0", ArrivalTime: 0, BurstTime: 5},
			},
			want: []string{"P0", "P2", "P1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mustRun(t, AlgorithmSJF, tt.processes, Options{})
			assertOrder(t, result, tt.want)
		})
	}
}

func TestShortestJobFirst_IdleJump(t *testing.T) {
	ps := []core.Process{
		{ProcessId: "A", ArrivalTime: 0, BurstTime: 1},
		{ProcessId: "B", ArrivalTime: 10, BurstTime: 2},
		{ProcessId: "C", ArrivalTime: 10, BurstTime: 1},
	}
	result := mustRun(t, AlgorithmSJF, ps, Options{})
	assertGantt(t, result.Gantt, []core.GanttSegment{seg("A", 0, 1), seg("C", 10, 11), seg("B", 11, 13)})
	if result.Cpu.IdleTime != 9 {
		t.Errorf("idle time = %v, want 9", result.Cpu.IdleTime)
	}
}

func TestPriority(t *testing.T) {
	result := mustRun(t, AlgorithmPriority, abc(), Options{})
	assertOrder(t, result, []string{"B", "C", "A"})
	assertGantt(t, result.Gantt, []core.GanttSegment{seg("B", 0, 3), seg("C", 3, 5), seg("A", 5, 10)})
}

func TestPriority_TieBreakAndArrivals(t *testing.T) {
	ps := []core.Process{
		{ProcessId: "B", ArrivalTime: 2, BurstTime: 1, Priority: 2},
		{ProcessId: "A", ArrivalTime: 1, BurstTime: 1, Priority: 2},
		{ProcessId: "X", ArrivalTime: 0, BurstTime: 3, Priority: 5},
	}
	result := mustRun(t, AlgorithmPriority, ps, Options{})
	assertGantt(t, result.Gantt, []core.GanttSegment{seg("X", 0, 3), seg("A", 3, 4), seg("B", 4, 5)})
}

func TestRoundRobin(t *testing.T) {
	result := mustRun(t, AlgorithmRR, abc(), Options{TimeQuantum: 2})

	assertGantt(t, result.Gantt, []core.GanttSegment{
		seg("A", 0, 2), seg("B", 2, 4), seg("C", 4, 6), seg("A", 6, 8), seg("B", 8, 9), seg("A", 9, 10),
	})
	assertWaiting(t, result, map[string]float64{"A": 5, "B": 6, "C": 4})
	if result.TimeQuantum != 2 {
		t.Errorf("time quantum = %v, want 2", result.TimeQuantum)
	}
}

func TestRoundRobin_ArrivalDuringSliceQueuesBehindPreempted(t *testing.T) {
	ps := []core.Process{
		{ProcessId: "A", ArrivalTime: 0, BurstTime: 4},
		{ProcessId: "B", ArrivalTime: 1, BurstTime: 2},
	}
	result := mustRun(t, AlgorithmRR, ps, Options{TimeQuantum: 2})
	assertGantt(t, result.Gantt, []core.GanttSegment{seg("A", 0, 2), seg("A", 2, 4), seg("B", 4, 6)})
}

func TestRoundRobin_IdleJump(t *testing.T) {
	ps := []core.Process{
		{ProcessId: "A", ArrivalTime: 0, BurstTime: 1},
		{ProcessId: "B", ArrivalTime: 5, BurstTime: 3},
	}
	result := mustRun(t, AlgorithmRR, ps, Options{TimeQuantum: 2})
	assertGantt(t, result.Gantt, []core.GanttSegment{seg("A", 0, 1), seg("B", 5, 7), seg("B", 7, 8)})
	assertWaiting(t, result, map[string]float64{"A": 0, "B": 0})
}

func TestRoundRobin_FractionalQuantum(t *testing.T) {
	ps := []core.Process{{ProcessId: "A", BurstTime: 0.3}}
	result := mustRun(t, AlgorithmRR, ps, Options{TimeQuantum: 0.1})
	if len(result.Gantt) != 3 {
		t.Errorf("gantt = %v, want 3 slices", result.Gantt)
	}
}

func TestPreemptive_TinyBursts(t *testing.T) {
	ps := []core.Process{
		{ProcessId: "A", BurstTime: 5e-10},
		{ProcessId: "B", ArrivalTime: 1e-10, BurstTime: 3e-10},
	}
	tests := []struct {
		algorithm Algorithm
		opts      Options
	}{
		{AlgorithmRR, Options{TimeQuantum: 2e-10}},
		{AlgorithmMLFQ, Options{LevelsTimeQuantum: []float64{2e-10}}},
	}
	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			result := mustRun(t, tt.algorithm, ps, tt.opts)
			if len(result.Gantt) < 3 {
				t.Errorf("gantt = %v, want the bursts split into several slices", result.Gantt)
			}
		})
	}
}

func TestMultilevelFeedbackQueue(t *testing.T) {
	result := mustRun(t, AlgorithmMLFQ, abc(), Options{LevelsTimeQuantum: []float64{2}})
	assertGantt(t, result.Gantt, []core.GanttSegment{
		seg("A", 0, 2), seg("B", 2, 4), seg("C", 4, 6), seg("A", 6, 9), seg("B", 9, 10),
	})
}

func TestMultilevelFeedbackQueue_NewArrivalServedBeforeDemoted(t *testing.T) {
	ps := []core.Process{
		{ProcessId: "A", ArrivalTime: 0, BurstTime: 6},
		{ProcessId: "B", ArrivalTime: 3, BurstTime: 1},
	}
	result := mustRun(t, AlgorithmMLFQ, ps, Options{LevelsTimeQuantum: []float64{2, 4}})
	assertGantt(t, result.Gantt, []core.GanttSegment{seg("A", 0, 2), seg("A", 2, 6), seg("B", 6, 7)})

	ps[1].ArrivalTime = 1
	result = mustRun(t, AlgorithmMLFQ, ps, Options{LevelsTimeQuantum: []float64{2, 4}})
	assertGantt(t, result.Gantt, []core.GanttSegment{seg("A", 0, 2), seg("B", 2, 3), seg("A", 3, 7)})
}

func TestRun_DoesNotLeakStateBetweenRuns(t *testing.T) {
	ps := abc()
	before := append([]core.Process(nil), ps...)

	fcfs := mustRun(t, AlgorithmFCFS, ps, Options{})
	rr := mustRun(t, AlgorithmRR, ps, Options{TimeQuantum: 2})
	again := mustRun(t, AlgorithmFCFS, ps, Options{})

	for i := range ps {
		if ps[i] != before[i] {
			t.Fatalf("input mutated: %+v != %+v", ps[i], before[i])
		}
	}
	if fcfs.RunId == again.RunId {
		t.Error("expected a fresh run id per run")
	}
	assertWaiting(t, rr, map[string]float64{"A": 5, "B": 6, "C": 4})
	assertWaiting(t, again, map[string]float64{"A": 0, "B": 5, "C": 8})
	assertGantt(t, again.Gantt, fcfs.Gantt)
}

func TestRun_RejectsInvalidInput(t *testing.T) {
	if _, err := Run(AlgorithmFCFS, nil, Options{}); !errors.Is(err, validator.ErrEmptyInput) {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}

	bad := []core.Process{{ProcessId: "A", BurstTime: 0}}
	var verr *validator.ValidationError
	if _, err := Run(AlgorithmSJF, bad, Options{}); !errors.As(err, &verr) || verr.Field != "burst_time" {
		t.Errorf("err = %v, want burst_time validation error", err)
	}

	if _, err := Run(AlgorithmRR, abc(), Options{TimeQuantum: 0}); !errors.As(err, &verr) || verr.Field != "time_quantum" {
		t.Errorf("err = %v, want time_quantum validation error", err)
	}

	// the quantum is only required by round robin
	if _, err := Run(AlgorithmFCFS, abc(), Options{TimeQuantum: 0}); err != nil {
		t.Errorf("fcfs with zero quantum: %v", err)
	}

	if _, err := Run(Algorithm("LOTTERY"), abc(), Options{}); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("err = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestRunAll(t *testing.T) {
	ps := abc()
	results, err := RunAll(ps, Options{TimeQuantum: 2, LevelsTimeQuantum: []float64{2}})
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(results) != len(Algorithms) {
		t.Fatalf("results = %d, want %d", len(results), len(Algorithms))
	}
	for i, r := range results {
		if r.Algorithm != string(Algorithms[i]) {
			t.Errorf("results[%d] = %s, want %s", i, r.Algorithm, Algorithms[i])
		}
		checkInvariants(t, ps, r)
	}
	assertWaiting(t, results[0], map[string]float64{"A": 0, "B": 5, "C": 8})
	assertWaiting(t, results[2], map[string]float64{"A": 5, "B": 6, "C": 4})
}

func TestRunAll_PropagatesQuantumError(t *testing.T) {
	_, err := RunAll(abc(), Options{}, AlgorithmFCFS, AlgorithmRR)
	var verr *validator.ValidationError
	if !errors.As(err, &verr) || verr.Field != "time_quantum" {
		t.Fatalf("err = %v, want time_quantum validation error", err)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"FCFS", AlgorithmFCFS},
		{"sjf", AlgorithmSJF},
		{"Round-Robin", AlgorithmRR},
		{"rr", AlgorithmRR},
		{" Priority ", AlgorithmPriority},
		{"multilevel-feedback-queue", AlgorithmMLFQ},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseAlgorithm("srtf"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("err = %v, want ErrUnknownAlgorithm", err)
	}
}

func assertOrder(t *testing.T, result core.RunResult, want []string) {
	t.Helper()
	if len(result.Gantt) != len(want) {
		t.Fatalf("gantt = %v, want order %v", result.Gantt, want)
	}
	for i, pid := range want {
		if result.Gantt[i].ProcessId != pid {
			t.Fatalf("gantt = %v, want order %v", result.Gantt, want)
		}
	}
}
