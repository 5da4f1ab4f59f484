package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"process-scheduler/internal/responses"
)

const idleLabel = "idle"

// WriteSchedule prints a title, a textual Gantt line and the per-process
// table with averages in the footer.
func WriteSchedule(w io.Writer, response responses.ScheduleResponse) {
	title := response.Algorithm
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.TimeQuantum)
	}
	outputTitle(w, title)
	outputGantt(w, response.Trace)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// withIdle fills gaps between consecutive entries with idle segments.
func withIdle(trace []responses.TraceEntry) []responses.TraceEntry {
	out := make([]responses.TraceEntry, 0, len(trace))
	clock := 0
	for _, e := range trace {
		if e.Start > clock {
			out = append(out, responses.TraceEntry{ProcessId: idleLabel, Start: clock, Duration: e.Start - clock})
		}
		out = append(out, e)
		clock = e.Start + e.Duration
	}
	return out
}

func outputGantt(w io.Writer, trace []responses.TraceEntry) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	gantt := withIdle(trace)
	if len(gantt) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}
	_, _ = fmt.Fprint(w, "|")
	for _, e := range gantt {
		padding := strings.Repeat(" ", max(0, (8-len(e.ProcessId))/2))
		_, _ = fmt.Fprint(w, padding, e.ProcessId, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, e := range gantt {
		_, _ = fmt.Fprint(w, e.Start, "\t")
		if i == len(gantt)-1 {
			_, _ = fmt.Fprint(w, e.Start+e.Duration)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	for _, d := range response.Details {
		table.Append([]string{
			d.ProcessId,
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("CPU\n%.2f%%", response.CpuUtilization)})
	table.Render()
}
