package responses

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type TraceEntry struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	Duration  int    `json:"duration"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Trace                 []TraceEntry      `json:"trace"`
	Details               []ProcessResponse `json:"details"`
}

type AllAlgorithmsResponse struct {
	Results []ScheduleResponse `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
