package schedulers

import (
	"process-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes in arrival order, ties broken
// by input order. Input is assumed valid; use Simulate for validation.
func ScheduleFirstComeFirstServe(processes []core.Process, opts ...Option) Result {
	o := newOptions(opts)
	o.logger.Debug("running fcfs algorithm", "processes", len(processes))
	st := newRunState(processes, o)

	// sort jobs by arrival time
	for _, i := range arrivalOrder(processes) {
		for st.cpu.Now() < processes[i].ArrivalTime {
			st.idleUntil(processes[i].ArrivalTime)
		}
		st.run(i, st.remaining[i])
	}

	return st.result(FirstComeFirstServe, 0)
}
