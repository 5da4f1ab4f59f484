package requests

import (
	"fmt"

	"process-scheduler/internal/core"
)

// Job is one process in a request body. arrival_time and burst_time are
// required; an omitted priority means 0.
type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime *int   `json:"arrival_time"`
	BurstTime   *int   `json:"burst_time"`
	Priority    int    `json:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum *int  `json:"time_quantum,omitempty"`
}

// Processes converts the request jobs in their original order.
func (r *ScheduleRequests) Processes() ([]core.Process, error) {
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		field := fmt.Sprintf("jobs[%d]", i)
		if job.ArrivalTime == nil {
			return nil, core.NewValidationError(field+".arrival_time", "required")
		}
		if job.BurstTime == nil {
			return nil, core.NewValidationError(field+".burst_time", "required")
		}
		processes = append(processes, core.Process{
			Pid:         job.ProcessId,
			ArrivalTime: *job.ArrivalTime,
			BurstTime:   *job.BurstTime,
			Priority:    job.Priority,
		})
	}
	return processes, nil
}
