package schedulers

import (
	"log/slog"

	"process-scheduler/internal/core"
)

// ScheduleRoundRobin is preemptive round robin with a fixed quantum over a
// FIFO ready queue. Processes that arrive during a slice are queued ahead of
// the process that was just preempted. quantum must be positive; use
// Simulate for validation.
func ScheduleRoundRobin(processes []core.Process, quantum int, opts ...Option) Result {
	o := newOptions(opts)
	o.logger.Debug("running roundRobin algorithm", "time_quantum", quantum, "processes", len(processes))
	st := newRunState(processes, o)
	order := arrivalOrder(processes)
	readyQueue := make([]int, 0, len(processes))

	// queued marks both waiting and running processes so admit skips them
	admit := func() {
		now := st.cpu.Now()
		for _, i := range order {
			if st.done[i] || st.queued[i] || processes[i].ArrivalTime > now {
				continue
			}
			st.queued[i] = true
			readyQueue = append(readyQueue, i)
			st.logger.Debug("send process to ready queue", slog.String("pid", processes[i].Pid), slog.Int("time", now))
		}
	}

	for st.pending > 0 {
		admit()
		if len(readyQueue) == 0 {
			st.idleToNextArrival()
			continue
		}

		current := readyQueue[0]
		readyQueue = readyQueue[1:]
		slice := st.run(current, min(quantum, st.remaining[current]))

		for _, i := range readyQueue {
			st.waiting[i] += slice.Duration
		}

		// new arrivals go ahead of the preempted process
		admit()
		if st.done[current] {
			st.queued[current] = false
			st.logger.Debug("process completed",
				slog.String("pid", processes[current].Pid),
				slog.Int("completion", slice.End()),
				slog.Int("accrued_waiting", st.waiting[current]),
			)
			continue
		}
		st.logger.Debug("context switch", slog.String("pid", processes[current].Pid), slog.Int("remaining", st.remaining[current]))
		readyQueue = append(readyQueue, current)
	}

	return st.result(RoundRobin, quantum)
}
