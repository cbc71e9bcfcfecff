package core

import (
	log "github.com/sirupsen/logrus"
)

// Epsilon is the relative tolerance, as a fraction of the burst, used when
// deciding whether a remaining burst is exhausted.
const Epsilon = 1e-9

type ScheduleTime struct {
	Execution float64 // first time the process got the cpu
	Complete  float64
	Started   bool
	Completed bool
}

type CpuMetric struct {
	TotalTime       float64
	UtilizationTime float64
	IdleTime        float64
}

// Cpu is a simulated single core. The clock is simulated time and starts at 0.
type Cpu struct {
	Clock         float64
	Segments      []GanttSegment
	ScheduleTimes map[string]*ScheduleTime

	utilizationTime float64
	idleTime        float64
}

func NewCpu() *Cpu {
	return &Cpu{
		Segments:      make([]GanttSegment, 0),
		ScheduleTimes: make(map[string]*ScheduleTime),
	}
}

// IdleUntil jumps the clock forward to t. It never moves the clock backwards.
func (c *Cpu) IdleUntil(t float64) {
	if t <= c.Clock {
		return
	}
	log.WithFields(log.Fields{"from": c.Clock, "to": t}).Debug("cpu idle")
	c.idleTime += t - c.Clock
	c.Clock = t
}

// Execute runs p for d time units starting at the current clock and returns
// the emitted segment.
func (c *Cpu) Execute(p Process, d float64) GanttSegment {
	segment := GanttSegment{ProcessId: p.ProcessId, Start: c.Clock, End: c.Clock + d}
	c.Segments = append(c.Segments, segment)

	st := c.scheduleTime(p.ProcessId)
	if !st.Started {
		st.Started = true
		st.Execution = c.Clock
	}

	log.WithFields(log.Fields{"pid": p.ProcessId, "start": segment.Start, "end": segment.End}).Debug("execute")
	c.utilizationTime += d
	c.Clock = segment.End
	return segment
}

// Complete marks p as finished at the current clock.
func (c *Cpu) Complete(p Process) {
	st := c.scheduleTime(p.ProcessId)
	st.Completed = true
	st.Complete = c.Clock
	log.WithFields(log.Fields{"pid": p.ProcessId, "at": c.Clock}).Debug("process completed")
}

func (c *Cpu) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.Clock,
		UtilizationTime: c.utilizationTime,
		IdleTime:        c.idleTime,
	}
}

func (c *Cpu) scheduleTime(pid string) *ScheduleTime {
	st, ok := c.ScheduleTimes[pid]
	if !ok {
		st = &ScheduleTime{}
		c.ScheduleTimes[pid] = st
	}
	return st
}
