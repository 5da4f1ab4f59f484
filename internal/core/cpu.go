package core

// Process is the static description of one schedulable unit. Lower Priority
// values win.
type Process struct {
	Pid         string `json:"pid"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

// Slice is one contiguous CPU allocation.
type Slice struct {
	Pid      string `json:"pid"`
	Start    int    `json:"start"`
	Duration int    `json:"duration"`
}

func (s Slice) End() int {
	return s.Start + s.Duration
}

// Trace is the ordered, non-overlapping execution record of one run.
type Trace []Slice

// Makespan is the completion time of the last slice. The simulated clock
// always starts at 0.
func (t Trace) Makespan() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End()
}

// BusyTime is the sum of all slice durations.
func (t Trace) BusyTime() int {
	var busy int
	for _, s := range t {
		busy += s.Duration
	}
	return busy
}

// ServiceByPid sums the durations attributed to every pid.
func (t Trace) ServiceByPid() map[string]int {
	service := make(map[string]int)
	for _, s := range t {
		service[s.Pid] += s.Duration
	}
	return service
}

// FirstStart returns the start of the first slice for pid.
func (t Trace) FirstStart(pid string) (int, bool) {
	for _, s := range t {
		if s.Pid == pid {
			return s.Start, true
		}
	}
	return 0, false
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is the single simulated processor. It owns the clock and records every
// allocation into the trace.
type Cpu struct {
	clock  int
	trace  Trace
	metric CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{trace: make(Trace, 0)}
}

func (c *Cpu) Now() int {
	return c.clock
}

// Execute runs pid for duration units starting at the current clock.
func (c *Cpu) Execute(pid string, duration int) Slice {
	slice := Slice{Pid: pid, Start: c.clock, Duration: duration}
	c.trace = append(c.trace, slice)
	c.clock += duration
	c.metric.UtilizationTime += duration
	c.metric.TotalTime = c.clock
	return slice
}

// IdleUntil leaves the cpu idle until t. It never moves the clock backwards.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

func (c *Cpu) Trace() Trace {
	return c.trace
}

// Metric reports busy and idle time up to the last completed slice. Idle
// time spent after the last slice is not part of the run.
func (c *Cpu) Metric() CpuMetric {
	return c.metric
}
