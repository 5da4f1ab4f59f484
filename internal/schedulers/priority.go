package schedulers

import (
	"cmp"

	"process-scheduler/internal/core"
)

// SchedulePriority is non-preemptive priority scheduling: the ready process
// with the lowest priority value runs to completion, even if a more urgent
// process arrives meanwhile.
func SchedulePriority(processes []core.Process, opts ...Option) Result {
	o := newOptions(opts)
	o.logger.Debug("running priority algorithm", "processes", len(processes))
	st := newRunState(processes, o)
	st.runNonPreemptive(func(a, b core.Process) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return st.result(PriorityScheduling, 0)
}
