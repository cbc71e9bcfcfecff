package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler-simulator/internal/core"
)

const idleLabel = "idle"

func RenderTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Render writes the title, Gantt chart and schedule table of one run.
func Render(w io.Writer, result core.RunResult) {
	title := result.Algorithm
	if result.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %s)", title, formatTime(result.TimeQuantum))
	}
	RenderTitle(w, title)
	RenderGantt(w, result)
	RenderSchedule(w, result)
}

type ganttCell struct {
	label      string
	start, end float64
}

func ganttCells(segments []core.GanttSegment) []ganttCell {
	cells := make([]ganttCell, 0, len(segments))
	var clock float64
	for _, s := range segments {
		if s.Start > clock+core.Epsilon {
			cells = append(cells, ganttCell{label: idleLabel, start: clock, end: s.Start})
		}
		cells = append(cells, ganttCell{label: s.ProcessId, start: s.Start, end: s.End})
		clock = s.End
	}
	return cells
}

// RenderGantt draws the timeline, one cell per segment, with idle cells for
// gaps.
func RenderGantt(w io.Writer, result core.RunResult) {
	cells := ganttCells(result.Gantt)

	var bar, axis strings.Builder
	bar.WriteString("|")
	for _, c := range cells {
		width := len(c.label) + 2
		if width < 8 {
			width = 8
		}
		left := (width - len(c.label)) / 2
		bar.WriteString(strings.Repeat(" ", left))
		bar.WriteString(c.label)
		bar.WriteString(strings.Repeat(" ", width-left-len(c.label)))
		bar.WriteString("|")

		start := formatTime(c.start)
		axis.WriteString(start)
		if pad := width + 1 - len(start); pad > 0 {
			axis.WriteString(strings.Repeat(" ", pad))
		} else {
			axis.WriteString(" ")
		}
	}
	if len(cells) > 0 {
		axis.WriteString(formatTime(cells[len(cells)-1].end))
	}

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, axis.String())
	_, _ = fmt.Fprintln(w)
}

func RenderSchedule(w io.Writer, result core.RunResult) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Arrival", "Burst", "Start", "Exit", "Wait", "Turnaround", "Response"})
	for _, d := range result.Details {
		table.Append([]string{
			d.ProcessId,
			formatTime(d.Priority),
			formatTime(d.ArrivalTime),
			formatTime(d.BurstTime),
			formatTime(d.StartTime),
			formatTime(d.CompletionTime),
			formatTime(d.WaitingTime),
			formatTime(d.TurnAroundTime),
			formatTime(d.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", result.AverageResponseTime),
	})
	table.Render()
}

// RenderComparison writes one row per run.
func RenderComparison(w io.Writer, results []core.RunResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Total", "Idle", "Utilization", "Throughput"})
	for _, r := range results {
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			formatTime(r.Cpu.TotalTime),
			formatTime(r.Cpu.IdleTime),
			fmt.Sprintf("%.1f%%", r.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", r.CpuThroughput),
		})
	}
	table.Render()
}

func formatTime(t float64) string {
	return strconv.FormatFloat(math.Round(t*1000)/1000, 'f', -1, 64)
}
