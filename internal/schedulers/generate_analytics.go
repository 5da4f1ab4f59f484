package schedulers

import (
	"process-scheduler/internal/core"
	"process-scheduler/internal/responses"
	"process-scheduler/internal/util"
)

// Metrics are the scalar performance figures of one run.
type Metrics struct {
	AverageWaitingTime    float64
	AverageTurnAroundTime float64
	AverageResponseTime   float64
	CpuUtilization        float64 // percent of the makespan spent executing
	CpuThroughput         float64 // completed processes per time unit
	TotalTime             int     // makespan
	IdleTime              int
}

// CalculateMetrics reduces a trace and its timing maps to averages and
// utilisation. Utilisation is 100 * total burst / makespan and 0 for an
// empty trace.
func CalculateMetrics(processes []core.Process, trace core.Trace, waiting, turnaround map[string]int) Metrics {
	var totalBurst int
	for _, p := range processes {
		totalBurst += p.BurstTime
	}
	makespan := trace.Makespan()

	m := Metrics{
		AverageWaitingTime:    util.CalculateAverage(waiting),
		AverageTurnAroundTime: util.CalculateAverage(turnaround),
		CpuUtilization:        util.Percentage(totalBurst, makespan),
		TotalTime:             makespan,
		IdleTime:              makespan - trace.BusyTime(),
	}
	if makespan > 0 {
		m.CpuThroughput = float64(len(turnaround)) / float64(makespan)
	}
	return m
}

// GenerateResponse combines a result with its metrics. Details follow input
// order.
func GenerateResponse(processes []core.Process, result Result) responses.ScheduleResponse {
	m := CalculateMetrics(processes, result.Trace, result.WaitingTime, result.TurnAroundTime)
	m.AverageResponseTime = util.CalculateAverage(result.ResponseTime)

	response := responses.ScheduleResponse{
		RunId:                 result.RunId,
		Algorithm:             result.Policy.DisplayName(),
		TimeQuantum:           result.TimeQuantum,
		TotalTime:             m.TotalTime,
		IdleTime:              m.IdleTime,
		AverageWaitingTime:    m.AverageWaitingTime,
		AverageResponseTime:   m.AverageResponseTime,
		AverageTurnAroundTime: m.AverageTurnAroundTime,
		CpuUtilization:        m.CpuUtilization,
		CpuThroughput:         m.CpuThroughput,
		Trace:                 make([]responses.TraceEntry, 0, len(result.Trace)),
		Details:               make([]responses.ProcessResponse, 0, len(processes)),
	}
	for _, s := range result.Trace {
		response.Trace = append(response.Trace, responses.TraceEntry{
			ProcessId: s.Pid,
			Start:     s.Start,
			Duration:  s.Duration,
		})
	}
	for _, p := range processes {
		response.Details = append(response.Details, generateProcessDetails(p, result))
	}
	return response
}

func generateProcessDetails(p core.Process, result Result) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.Pid,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		CompletionTime: result.CompletionTime[p.Pid],
		ResponseTime:   result.ResponseTime[p.Pid],
		TurnAroundTime: result.TurnAroundTime[p.Pid],
		WaitingTime:    result.WaitingTime[p.Pid],
	}
}
