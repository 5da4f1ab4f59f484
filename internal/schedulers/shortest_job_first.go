package schedulers

import (
	"cmp"

	"process-scheduler/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive: at every decision point the
// ready process with the smallest burst runs to completion. Ties go to the
// earliest arrival, then to input order.
func ScheduleShortestJobFirst(processes []core.Process, opts ...Option) Result {
	o := newOptions(opts)
	o.logger.Debug("running sjf algorithm", "processes", len(processes))
	st := newRunState(processes, o)
	st.runNonPreemptive(func(a, b core.Process) int {
		return cmp.Compare(a.BurstTime, b.BurstTime)
	})
	return st.result(ShortestJobFirst, 0)
}

// runNonPreemptive drives SJF and Priority. key orders two ready processes;
// equal keys fall back to arrival time and then input index.
func (st *runState) runNonPreemptive(key func(a, b core.Process) int) {
	for st.pending > 0 {
		now := st.cpu.Now()
		selected := -1
		for i, p := range st.processes {
			if st.done[i] || p.ArrivalTime > now {
				continue
			}
			if selected == -1 || readyBefore(p, st.processes[selected], key) {
				selected = i
			}
		}
		if selected == -1 {
			st.idleToNextArrival()
			continue
		}
		st.run(selected, st.remaining[selected])
	}
}

// readyBefore reports whether a should be dispatched before b. Candidates are
// visited in input order, so a strict comparison keeps the lower index on a
// full tie.
func readyBefore(a, b core.Process, key func(a, b core.Process) int) bool {
	if c := key(a, b); c != 0 {
		return c < 0
	}
	return a.ArrivalTime < b.ArrivalTime
}
